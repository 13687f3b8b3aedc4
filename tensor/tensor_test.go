// Copyright 2026 The Bayesian RetinaNet Go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/NatalieHanzhina/bayesian-retinanet-go/internal/backend/cpu"
	"github.com/NatalieHanzhina/bayesian-retinanet-go/tensor"
)

// TestBackendInterface verifies that cpu.CPUBackend implements tensor.Backend.
func TestBackendInterface(_ *testing.T) {
	var _ tensor.Backend = (*cpu.CPUBackend)(nil)
}

// TestPublicAPI exercises the re-exported surface end to end.
func TestPublicAPI(t *testing.T) {
	backend := cpu.New()

	raw, err := tensor.NewRaw(tensor.Shape{2, 2}, tensor.Float32, tensor.CPU)
	if err != nil {
		t.Fatalf("NewRaw: %v", err)
	}
	if raw.DType() != tensor.Float32 {
		t.Errorf("DType() = %v, want Float32", raw.DType())
	}

	x, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2}, backend)
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	y := tensor.Ones[float32](tensor.Shape{2, 2}, backend)

	z := x.Add(y).MulScalar(2)
	if got := z.At(1, 1); got != 10 {
		t.Errorf("(x+1)*2 At(1,1) = %v, want 10", got)
	}

	mask := x.GreaterScalar(2)
	sel := tensor.Where(mask, x, tensor.Zeros[float32](tensor.Shape{2, 2}, backend))
	if got := sel.Sum().Item(); got != 7 {
		t.Errorf("masked sum = %v, want 7", got)
	}
}
