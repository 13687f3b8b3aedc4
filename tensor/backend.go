// Copyright 2026 The Bayesian RetinaNet Go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/NatalieHanzhina/bayesian-retinanet-go/internal/tensor"
)

// Backend defines the interface that all compute backends must implement.
//
// The operation set covers what the detection losses exercise: element-wise
// arithmetic with broadcasting, the math functions of the loss formulas,
// comparisons, conditional selection and anchor filtering, channel
// splitting, and full reduction.
type Backend = tensor.Backend
