// Package nn provides trainable parameters and the shared parameter registry
// that couples the loss functors to the host optimizer.
package nn

import (
	"github.com/NatalieHanzhina/bayesian-retinanet-go/internal/tensor"
)

// Parameter represents a trainable parameter.
//
// Parameters are tensors whose values are mutated by an optimizer between
// loss evaluations. In this module they are the per-loss uncertainty scalars
// ("sigma"), but the type is shape-agnostic.
//
// Example:
//
//	sigma := nn.NewScalarParameter("sigma_sq_focal", backend)
//	v := sigma.Value()       // current scalar value
//	sigma.SetValue(0.5)      // host-side update
type Parameter[B tensor.Backend] struct {
	name   string
	tensor *tensor.Tensor[float32, B]
	grad   *tensor.Tensor[float32, B]
}

// NewParameter creates a new trainable parameter wrapping an initialized
// tensor.
//
// The gradient slot starts empty and is filled by whoever computes
// gradients (see losses.SigmaGrad) before an optimizer step.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[float32, B]) *Parameter[B] {
	return &Parameter[B]{
		name:   name,
		tensor: t,
	}
}

// NewScalarParameter creates a zero-initialized rank-0 float32 parameter.
//
// This matches the contract of the loss constructors: when no uncertainty
// scalar is supplied, a fresh one is created with initial value 0.
func NewScalarParameter[B tensor.Backend](name string, backend B) *Parameter[B] {
	return NewParameter(name, tensor.Zeros[float32](tensor.Shape{}, backend))
}

// Name returns the parameter name.
func (p *Parameter[B]) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter[B]) Tensor() *tensor.Tensor[float32, B] {
	return p.tensor
}

// Value returns the scalar value of a rank-0 parameter.
// Panics if the parameter is not a scalar.
func (p *Parameter[B]) Value() float32 {
	return p.tensor.Item()
}

// SetValue overwrites the scalar value of a rank-0 parameter.
// Panics if the parameter is not a scalar.
func (p *Parameter[B]) SetValue(v float32) {
	if p.tensor.NumElements() != 1 {
		panic("SetValue only works for scalar parameters")
	}
	p.tensor.Data()[0] = v
}

// Grad returns the gradient tensor.
//
// Returns nil if no gradient has been computed yet.
func (p *Parameter[B]) Grad() *tensor.Tensor[float32, B] {
	return p.grad
}

// SetGrad sets the gradient tensor.
func (p *Parameter[B]) SetGrad(grad *tensor.Tensor[float32, B]) {
	p.grad = grad
}

// ZeroGrad clears the gradient tensor.
//
// This should be called before each training iteration to avoid acting on a
// stale gradient.
func (p *Parameter[B]) ZeroGrad() {
	p.grad = nil
}
