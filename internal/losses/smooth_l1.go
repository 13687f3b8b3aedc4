package losses

import (
	"math"

	"github.com/NatalieHanzhina/bayesian-retinanet-go/internal/nn"
	"github.com/NatalieHanzhina/bayesian-retinanet-go/internal/tensor"
)

// SmoothL1Config configures the uncertainty-weighted smooth L1 regression
// loss.
type SmoothL1Config[B tensor.Backend] struct {
	// Sigma sets the point where the loss changes from L2 to L1: the
	// quadratic branch applies below 1/Sigma².
	Sigma float32
	// SigmaVar, when set, is used as the uncertainty scalar instead of
	// creating (and registering) a fresh one.
	SigmaVar *nn.Parameter[B]
}

// DefaultSmoothL1Config returns the standard smooth L1 settings.
func DefaultSmoothL1Config[B tensor.Backend]() SmoothL1Config[B] {
	return SmoothL1Config[B]{Sigma: 3.0}
}

// SmoothL1 creates a functor computing the smooth L1 regression loss
// weighted by a trainable uncertainty scalar.
//
// The ground truth has shape (batch, anchors, 5): four box regression
// targets followed by the anchor state. Predictions have shape
// (batch, anchors, 4).
//
// Only positive anchors contribute. Below 1/Sigma² the loss is quadratic
// with factor 1/(2·exp(sigma)); above it the linear branch uses the Gaussian
// error function of the scaled factor, keeping the loss a proper attenuated
// likelihood rather than the conventional |x| - 0.5/Sigma² tail. Both
// branches carry the sigma/2 regularizer. The sum is normalized by the
// number of positive anchors (at least 1).
//
// When cfg.SigmaVar is nil a fresh zero-initialized scalar named
// "sigma_sq_smooth_l1" is created and registered in params (params may be
// nil to skip registration).
func SmoothL1[B tensor.Backend](cfg SmoothL1Config[B], params *nn.ParamSet[B], backend B) (Func[B], *nn.Parameter[B]) {
	sigmaSquared := cfg.Sigma * cfg.Sigma
	sigma := cfg.SigmaVar
	if sigma == nil {
		sigma = nn.NewScalarParameter("sigma_sq_smooth_l1", backend)
		if params != nil {
			params.MustAdd(sigma)
		}
	}

	fn := func(yTrue, yPred *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
		coords := yTrue.Shape()[len(yTrue.Shape())-1] - 1
		regression := yPred
		regressionTarget := yTrue.Narrow(-1, 0, coords)
		anchorState := yTrue.Narrow(-1, coords, 1).Squeeze(-1)

		// only positive anchors contribute
		keep := anchorState.EqualScalar(AnchorPositive)
		regression = regression.MaskedSelect(keep)
		regressionTarget = regressionTarget.MaskedSelect(keep)

		sigmaVal := sigma.Value()
		factor := float32(1 / (2 * math.Exp(float64(sigmaVal))))
		// log(1 - erf(sqrt(factor)/sigma²)), shared by both terms of the
		// linear branch
		logErfc := tensor.Scalar(factor, backend).
			Sqrt().
			DivScalar(sigmaSquared).
			Erf().
			OneMinus().
			Log().
			Item()

		diff := regression.Sub(regressionTarget).Abs()
		regressionLoss := tensor.Where(
			diff.LowerScalar(1/sigmaSquared),
			diff.PowScalar(2).MulScalar(factor).AddScalar(0.5*sigmaVal),
			diff.MulScalar(-logErfc/sigmaSquared).
				AddScalar(logErfc+factor/(sigmaSquared*sigmaSquared)+0.5*sigmaVal),
		)

		return regressionLoss.Sum().DivScalar(normalizer(keep))
	}

	return fn, sigma
}
