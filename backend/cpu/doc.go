// Copyright 2026 The Bayesian RetinaNet Go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the pure Go CPU backend for tensor operations.
//
// The backend implements every operation of tensor.Backend for float32 and
// float64 tensors (comparisons produce bool tensors), with NumPy-compatible
// broadcasting and no CGO. Each operation allocates its result; nothing is
// mutated in place, so the backend is safe for concurrent use.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
package cpu
