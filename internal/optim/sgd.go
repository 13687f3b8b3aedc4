package optim

import (
	"fmt"

	"github.com/NatalieHanzhina/bayesian-retinanet-go/internal/nn"
	"github.com/NatalieHanzhina/bayesian-retinanet-go/internal/tensor"
)

// SGD implements stochastic gradient descent with optional momentum.
//
// Without momentum:
//
//	param = param - lr * grad
//
// With momentum:
//
//	velocity = momentum * velocity + grad
//	param = param - lr * velocity
type SGD[B tensor.Backend] struct {
	params     []*nn.Parameter[B]
	lr         float32
	momentum   float32
	velocities map[*nn.Parameter[B]]*tensor.Tensor[float32, B]
	backend    B
}

// SGDConfig holds the SGD hyperparameters.
type SGDConfig struct {
	LR       float32
	Momentum float32 // in [0, 1); 0 disables momentum
}

// DefaultSGDConfig returns plain SGD with learning rate 0.01.
func DefaultSGDConfig() SGDConfig {
	return SGDConfig{LR: 0.01}
}

// NewSGD creates an SGD optimizer over the given parameters.
func NewSGD[B tensor.Backend](params []*nn.Parameter[B], config SGDConfig, backend B) *SGD[B] {
	return &SGD[B]{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*nn.Parameter[B]]*tensor.Tensor[float32, B]),
		backend:    backend,
	}
}

// Step applies one gradient-descent update. Parameters without a gradient in
// the map are skipped.
func (s *SGD[B]) Step(grads map[*tensor.RawTensor]*tensor.RawTensor) {
	for _, param := range s.params {
		grad := getGradient(param, grads)
		if grad == nil {
			continue
		}
		gradTensor := tensor.New[float32, B](grad, s.backend)

		update := gradTensor
		if s.momentum != 0 {
			velocity, ok := s.velocities[param]
			if !ok {
				velocity = tensor.Zeros[float32](param.Tensor().Shape(), s.backend)
			}
			velocity = velocity.MulScalar(s.momentum).Add(gradTensor)
			s.velocities[param] = velocity
			update = velocity
		}

		// param -= lr * update, written back in place
		updated := param.Tensor().Sub(update.MulScalar(s.lr))
		copy(param.Tensor().Data(), updated.Data())
	}
}

// ZeroGrad clears gradients for all parameters.
func (s *SGD[B]) ZeroGrad() {
	for _, param := range s.params {
		param.ZeroGrad()
	}
}

// GetLR returns the current learning rate.
func (s *SGD[B]) GetLR() float32 {
	return s.lr
}

// SetLR updates the learning rate, for scheduling.
func (s *SGD[B]) SetLR(lr float32) {
	s.lr = lr
}

// StateDict exports the momentum velocities, keyed "velocity.{index}".
// Empty when momentum is disabled.
func (s *SGD[B]) StateDict() map[string]*tensor.RawTensor {
	stateDict := make(map[string]*tensor.RawTensor)
	if s.momentum == 0 {
		return stateDict
	}
	for i, param := range s.params {
		if velocity, ok := s.velocities[param]; ok {
			stateDict[fmt.Sprintf("velocity.%d", i)] = velocity.Raw()
		}
	}
	return stateDict
}

// LoadStateDict restores momentum velocities exported by StateDict.
// Parameters missing from the dict start from a zero velocity on the next
// step. Returns an error on shape mismatch.
func (s *SGD[B]) LoadStateDict(stateDict map[string]*tensor.RawTensor) error {
	if s.momentum == 0 {
		return nil
	}
	s.velocities = make(map[*nn.Parameter[B]]*tensor.Tensor[float32, B])
	for i, param := range s.params {
		raw, ok := stateDict[fmt.Sprintf("velocity.%d", i)]
		if !ok {
			continue
		}
		if !raw.Shape().Equal(param.Tensor().Shape()) {
			return fmt.Errorf("velocity shape mismatch for parameter %d: expected %v, got %v",
				i, param.Tensor().Shape(), raw.Shape())
		}
		s.velocities[param] = tensor.New[float32, B](raw, s.backend)
	}
	return nil
}
