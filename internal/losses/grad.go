package losses

import (
	"github.com/NatalieHanzhina/bayesian-retinanet-go/internal/nn"
	"github.com/NatalieHanzhina/bayesian-retinanet-go/internal/tensor"
)

// sigmaGradEpsilon is the finite-difference step for SigmaGrad.
const sigmaGradEpsilon = 1e-3

// SigmaGrad estimates the derivative of the loss with respect to its
// uncertainty scalar by central finite difference.
//
// The parameter is perturbed in place and restored before returning, so the
// call is side-effect free for the caller. One gradient costs two loss
// evaluations; for a single scalar per loss that is cheaper than carrying an
// autodiff engine.
func SigmaGrad[B tensor.Backend](loss Func[B], sigma *nn.Parameter[B], yTrue, yPred *tensor.Tensor[float32, B]) float32 {
	orig := sigma.Value()

	sigma.SetValue(orig + sigmaGradEpsilon)
	plus := loss(yTrue, yPred).Item()

	sigma.SetValue(orig - sigmaGradEpsilon)
	minus := loss(yTrue, yPred).Item()

	sigma.SetValue(orig)
	return (plus - minus) / (2 * sigmaGradEpsilon)
}

// SigmaTerm couples one loss functor with its uncertainty scalar and a
// ground-truth/prediction pair for a training step.
type SigmaTerm[B tensor.Backend] struct {
	Loss  Func[B]
	Sigma *nn.Parameter[B]
	YTrue *tensor.Tensor[float32, B]
	YPred *tensor.Tensor[float32, B]
}

// SigmaGrads computes finite-difference gradients for each term, stores each
// gradient in its parameter's grad slot and returns them as an optimizer
// gradient map keyed by the parameter's raw tensor.
func SigmaGrads[B tensor.Backend](backend B, terms ...SigmaTerm[B]) map[*tensor.RawTensor]*tensor.RawTensor {
	grads := make(map[*tensor.RawTensor]*tensor.RawTensor, len(terms))
	for _, term := range terms {
		g := SigmaGrad(term.Loss, term.Sigma, term.YTrue, term.YPred)
		gradTensor := tensor.Scalar(g, backend)
		term.Sigma.SetGrad(gradTensor)
		grads[term.Sigma.Tensor().Raw()] = gradTensor.Raw()
	}
	return grads
}
