package losses

import (
	"math"

	"github.com/NatalieHanzhina/bayesian-retinanet-go/internal/nn"
	"github.com/NatalieHanzhina/bayesian-retinanet-go/internal/tensor"
)

// FocalConfig configures the uncertainty-weighted focal classification loss.
type FocalConfig[B tensor.Backend] struct {
	// Alpha scales the focal weight of positive targets; negatives get
	// 1 - Alpha.
	Alpha float32
	// Gamma is the focusing exponent applied to the focal weight.
	Gamma float32
	// Cutoff is the positive-prediction threshold for soft targets: label
	// entries above it count as positive.
	Cutoff float32
	// SigmaVar, when set, is used as the uncertainty scalar instead of
	// creating (and registering) a fresh one. Sharing it couples several
	// losses to one uncertainty.
	SigmaVar *nn.Parameter[B]
}

// DefaultFocalConfig returns the standard focal loss settings.
func DefaultFocalConfig[B tensor.Backend]() FocalConfig[B] {
	return FocalConfig[B]{
		Alpha:  0.1,
		Gamma:  2.0,
		Cutoff: 0.5,
	}
}

// Focal creates a functor computing the focal classification loss weighted by
// a trainable uncertainty scalar.
//
// The ground truth has shape (batch, anchors, classes+1): per-class soft
// labels followed by the anchor state. Predictions have shape
// (batch, anchors, classes) with per-class probabilities.
//
// Ignored anchors are excluded from the loss; the sum is normalized by the
// number of positive anchors (at least 1). When cfg.SigmaVar is nil a fresh
// zero-initialized scalar named "sigma_sq_focal" is created and registered in
// params (params may be nil to skip registration). The functor and the scalar
// it reads are both returned.
func Focal[B tensor.Backend](cfg FocalConfig[B], params *nn.ParamSet[B], backend B) (Func[B], *nn.Parameter[B]) {
	sigma := cfg.SigmaVar
	if sigma == nil {
		sigma = nn.NewScalarParameter("sigma_sq_focal", backend)
		if params != nil {
			params.MustAdd(sigma)
		}
	}

	fn := func(yTrue, yPred *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
		classes := yTrue.Shape()[len(yTrue.Shape())-1] - 1
		labels := yTrue.Narrow(-1, 0, classes)
		anchorState := yTrue.Narrow(-1, classes, 1).Squeeze(-1)
		classification := yPred

		// filter out "ignore" anchors
		keep := anchorState.NotEqualScalar(AnchorIgnore)
		labels = labels.MaskedSelect(keep)
		classification = classification.MaskedSelect(keep)

		sigmaVal := sigma.Value()
		expNegSigma := float32(math.Exp(float64(-sigmaVal)))
		expNegHalfSigma := float32(math.Exp(float64(-0.5 * sigmaVal)))

		positive := labels.GreaterScalar(cfg.Cutoff)

		alphaFactor := tensor.Where(positive,
			tensor.Full(labels.Shape(), cfg.Alpha, backend),
			tensor.Full(labels.Shape(), 1-cfg.Alpha, backend))
		// The negative branch keeps the shipped double negation
		// 1 - (1 - p) rather than folding it to p.
		focalWeight := tensor.Where(positive,
			classification.OneMinus().PowScalar(expNegSigma).MulScalar(expNegHalfSigma),
			classification.OneMinus().OneMinus().PowScalar(expNegSigma).MulScalar(expNegHalfSigma))
		focalWeight = alphaFactor.Mul(focalWeight.PowScalar(cfg.Gamma))

		crossEntropy := binaryCrossEntropy(labels, classification).
			MulScalar(expNegSigma).
			AddScalar(sigmaVal / 2)

		clsLoss := focalWeight.Mul(crossEntropy)

		// normalize by the number of positive anchors
		return clsLoss.Sum().DivScalar(normalizer(anchorState.EqualScalar(AnchorPositive)))
	}

	return fn, sigma
}
