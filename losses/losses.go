// Copyright 2026 The Bayesian RetinaNet Go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package losses exposes the uncertainty-weighted detection losses.
//
// Example:
//
//	backend := cpu.New()
//	params := nn.NewParamSet[*cpu.Backend]()
//	focalLoss, focalSigma := losses.Focal(losses.DefaultFocalConfig[*cpu.Backend](), params, backend)
//	regLoss, regSigma := losses.SmoothL1(losses.DefaultSmoothL1Config[*cpu.Backend](), params, backend)
//
//	cls := focalLoss(yTrueCls, yPredCls) // scalar tensor
//	reg := regLoss(yTrueReg, yPredReg)
package losses

import (
	"github.com/NatalieHanzhina/bayesian-retinanet-go/internal/losses"
	"github.com/NatalieHanzhina/bayesian-retinanet-go/internal/nn"
	"github.com/NatalieHanzhina/bayesian-retinanet-go/tensor"
)

// Anchor states, stored in the last column of every ground-truth tensor.
const (
	AnchorIgnore     = losses.AnchorIgnore
	AnchorBackground = losses.AnchorBackground
	AnchorPositive   = losses.AnchorPositive
)

// Func is a loss functor: ground truth and prediction in, scalar loss out.
type Func[B tensor.Backend] = losses.Func[B]

// FocalConfig configures the focal classification loss.
type FocalConfig[B tensor.Backend] = losses.FocalConfig[B]

// DefaultFocalConfig returns the standard focal loss settings
// (alpha 0.1, gamma 2.0, cutoff 0.5).
func DefaultFocalConfig[B tensor.Backend]() FocalConfig[B] {
	return losses.DefaultFocalConfig[B]()
}

// Focal creates the uncertainty-weighted focal classification loss.
// See the internal package documentation for the exact formulation.
func Focal[B tensor.Backend](cfg FocalConfig[B], params *nn.ParamSet[B], backend B) (Func[B], *nn.Parameter[B]) {
	return losses.Focal(cfg, params, backend)
}

// SmoothL1Config configures the smooth L1 regression loss.
type SmoothL1Config[B tensor.Backend] = losses.SmoothL1Config[B]

// DefaultSmoothL1Config returns the standard smooth L1 settings (sigma 3.0).
func DefaultSmoothL1Config[B tensor.Backend]() SmoothL1Config[B] {
	return losses.DefaultSmoothL1Config[B]()
}

// SmoothL1 creates the uncertainty-weighted smooth L1 regression loss.
func SmoothL1[B tensor.Backend](cfg SmoothL1Config[B], params *nn.ParamSet[B], backend B) (Func[B], *nn.Parameter[B]) {
	return losses.SmoothL1(cfg, params, backend)
}

// SigmaGrad estimates d loss / d sigma by central finite difference.
func SigmaGrad[B tensor.Backend](loss Func[B], sigma *nn.Parameter[B], yTrue, yPred *tensor.Tensor[float32, B]) float32 {
	return losses.SigmaGrad(loss, sigma, yTrue, yPred)
}

// SigmaTerm couples one loss functor with its uncertainty scalar and a
// ground-truth/prediction pair for a training step.
type SigmaTerm[B tensor.Backend] = losses.SigmaTerm[B]

// SigmaGrads computes finite-difference gradients for each term and returns
// them as an optimizer gradient map.
func SigmaGrads[B tensor.Backend](backend B, terms ...SigmaTerm[B]) map[*tensor.RawTensor]*tensor.RawTensor {
	return losses.SigmaGrads(backend, terms...)
}

// PackClassTargets assembles the (batch, anchors, classes+1) classification
// ground-truth tensor from per-anchor soft labels and anchor states.
func PackClassTargets[B tensor.Backend](labels [][][]float32, states [][]float32, backend B) (*tensor.Tensor[float32, B], error) {
	return losses.PackClassTargets(labels, states, backend)
}

// PackBoxTargets assembles the (batch, anchors, 5) regression ground-truth
// tensor from per-anchor box targets and anchor states.
func PackBoxTargets[B tensor.Backend](boxes [][][]float32, states [][]float32, backend B) (*tensor.Tensor[float32, B], error) {
	return losses.PackBoxTargets(boxes, states, backend)
}
