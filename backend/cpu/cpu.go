// Copyright 2026 The Bayesian RetinaNet Go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/NatalieHanzhina/bayesian-retinanet-go/internal/backend/cpu"
	"github.com/NatalieHanzhina/bayesian-retinanet-go/tensor"
)

// Backend is the CPU backend implementation.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
func New() *Backend {
	return internalcpu.New()
}
