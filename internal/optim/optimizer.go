// Package optim implements the host-side optimizers that train the
// uncertainty scalars (and any other registered parameters).
//
// The loss functors re-read their sigma parameter on every evaluation, so
// the training loop is: evaluate losses, compute gradients (see
// losses.SigmaGrads), call Step, repeat.
//
// Example:
//
//	params := nn.NewParamSet[*cpu.CPUBackend]()
//	focalLoss, focalSigma := losses.Focal(losses.DefaultFocalConfig[*cpu.CPUBackend](), params, backend)
//	optimizer := optim.NewAdam(params.Parameters(), optim.DefaultAdamConfig(), backend)
//
//	for range steps {
//	    grads := losses.SigmaGrads(backend, losses.SigmaTerm[*cpu.CPUBackend]{
//	        Loss: focalLoss, Sigma: focalSigma, YTrue: yTrue, YPred: yPred,
//	    })
//	    optimizer.Step(grads)
//	    optimizer.ZeroGrad()
//	}
package optim

import (
	"github.com/NatalieHanzhina/bayesian-retinanet-go/internal/nn"
	"github.com/NatalieHanzhina/bayesian-retinanet-go/internal/tensor"
)

// Optimizer updates parameters from a gradient map.
type Optimizer interface {
	// Step applies one update to every parameter that has a gradient in the
	// map. The map is keyed by the parameter's raw tensor.
	Step(grads map[*tensor.RawTensor]*tensor.RawTensor)

	// ZeroGrad clears the gradient slot of every managed parameter.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float32
}

// getGradient looks up the gradient for a parameter. Returns nil when the
// parameter did not receive a gradient this step.
func getGradient[B tensor.Backend](param *nn.Parameter[B], grads map[*tensor.RawTensor]*tensor.RawTensor) *tensor.RawTensor {
	if param == nil {
		return nil
	}
	return grads[param.Tensor().Raw()]
}
