// Copyright 2026 The Bayesian RetinaNet Go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn exposes trainable parameters and the shared parameter registry.
//
// In this module the registered parameters are the per-loss uncertainty
// scalars; the registry is what couples the loss functors to the host
// optimizer.
package nn

import (
	"github.com/NatalieHanzhina/bayesian-retinanet-go/internal/nn"
	"github.com/NatalieHanzhina/bayesian-retinanet-go/tensor"
)

// Parameter is a named trainable tensor with a gradient slot.
type Parameter[B tensor.Backend] = nn.Parameter[B]

// ParamSet is an ordered, name-unique registry of trainable parameters.
type ParamSet[B tensor.Backend] = nn.ParamSet[B]

// NewParameter creates a parameter wrapping an initialized tensor.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[float32, B]) *Parameter[B] {
	return nn.NewParameter(name, t)
}

// NewScalarParameter creates a zero-initialized rank-0 float32 parameter.
func NewScalarParameter[B tensor.Backend](name string, backend B) *Parameter[B] {
	return nn.NewScalarParameter(name, backend)
}

// NewParamSet creates an empty parameter registry.
func NewParamSet[B tensor.Backend]() *ParamSet[B] {
	return nn.NewParamSet[B]()
}
