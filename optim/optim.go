// Copyright 2026 The Bayesian RetinaNet Go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim exposes the host-side optimizers that train the uncertainty
// scalars (and any other registered parameters).
package optim

import (
	"github.com/NatalieHanzhina/bayesian-retinanet-go/internal/nn"
	"github.com/NatalieHanzhina/bayesian-retinanet-go/internal/optim"
	"github.com/NatalieHanzhina/bayesian-retinanet-go/tensor"
)

// Optimizer updates parameters from a gradient map.
type Optimizer = optim.Optimizer

// SGD is stochastic gradient descent with optional momentum.
type SGD[B tensor.Backend] = optim.SGD[B]

// SGDConfig holds the SGD hyperparameters.
type SGDConfig = optim.SGDConfig

// DefaultSGDConfig returns plain SGD with learning rate 0.01.
func DefaultSGDConfig() SGDConfig {
	return optim.DefaultSGDConfig()
}

// NewSGD creates an SGD optimizer over the given parameters.
func NewSGD[B tensor.Backend](params []*nn.Parameter[B], config SGDConfig, backend B) *SGD[B] {
	return optim.NewSGD(params, config, backend)
}

// Adam is the Adam optimizer (Kingma & Ba, 2014).
type Adam[B tensor.Backend] = optim.Adam[B]

// AdamConfig holds the Adam hyperparameters.
type AdamConfig = optim.AdamConfig

// DefaultAdamConfig returns the standard Adam hyperparameters:
// lr 0.001, betas (0.9, 0.999), eps 1e-8.
func DefaultAdamConfig() AdamConfig {
	return optim.DefaultAdamConfig()
}

// NewAdam creates an Adam optimizer over the given parameters.
func NewAdam[B tensor.Backend](params []*nn.Parameter[B], config AdamConfig, backend B) *Adam[B] {
	return optim.NewAdam(params, config, backend)
}
