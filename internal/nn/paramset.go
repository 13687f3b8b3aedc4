package nn

import (
	"fmt"

	"github.com/NatalieHanzhina/bayesian-retinanet-go/internal/tensor"
)

// ParamSet is the shared trainable-parameter registry.
//
// Loss constructors register freshly created uncertainty scalars here; the
// optimizer iterates over the set and mutates the values in place. Ownership
// of a registered parameter is therefore shared between the loss functor
// (which re-reads the value on every evaluation) and the optimizer (which
// writes it between evaluations).
//
// The set keeps registration order and rejects duplicate names.
type ParamSet[B tensor.Backend] struct {
	params []*Parameter[B]
	byName map[string]*Parameter[B]
}

// NewParamSet creates an empty parameter registry.
func NewParamSet[B tensor.Backend]() *ParamSet[B] {
	return &ParamSet[B]{
		byName: make(map[string]*Parameter[B]),
	}
}

// Add registers a parameter. Returns an error if a parameter with the same
// name is already registered.
func (s *ParamSet[B]) Add(p *Parameter[B]) error {
	if _, exists := s.byName[p.Name()]; exists {
		return fmt.Errorf("parameter %q already registered", p.Name())
	}
	s.params = append(s.params, p)
	s.byName[p.Name()] = p
	return nil
}

// MustAdd registers a parameter and panics on duplicate names.
// Convenience for construction-time registration.
func (s *ParamSet[B]) MustAdd(p *Parameter[B]) {
	if err := s.Add(p); err != nil {
		panic(err)
	}
}

// Get returns the parameter with the given name, or nil if not registered.
func (s *ParamSet[B]) Get(name string) *Parameter[B] {
	return s.byName[name]
}

// Parameters returns all registered parameters in registration order.
//
// The returned slice is the optimizer's view; the parameters themselves are
// shared, not copied.
func (s *ParamSet[B]) Parameters() []*Parameter[B] {
	out := make([]*Parameter[B], len(s.params))
	copy(out, s.params)
	return out
}

// Len returns the number of registered parameters.
func (s *ParamSet[B]) Len() int {
	return len(s.params)
}
