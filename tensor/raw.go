// Copyright 2026 The Bayesian RetinaNet Go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/NatalieHanzhina/bayesian-retinanet-go/internal/tensor"
)

// RawTensor is the low-level tensor representation: a flat byte buffer with
// shape, stride and runtime type information.
type RawTensor = tensor.RawTensor

// NewRaw creates a new RawTensor with the given shape and type.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}
