package tensor_test

import (
	"math"
	"testing"

	"github.com/NatalieHanzhina/bayesian-retinanet-go/internal/backend/cpu"
	"github.com/NatalieHanzhina/bayesian-retinanet-go/internal/tensor"
)

func TestFromSlice(t *testing.T) {
	backend := cpu.New()

	x, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, backend)
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	if !x.Shape().Equal(tensor.Shape{2, 3}) {
		t.Errorf("Shape() = %v, want [2 3]", x.Shape())
	}
	if got := x.At(1, 2); got != 6 {
		t.Errorf("At(1,2) = %v, want 6", got)
	}

	if _, err := tensor.FromSlice([]float32{1, 2}, tensor.Shape{3}, backend); err == nil {
		t.Error("FromSlice with wrong length: want error")
	}
}

func TestAtSetItem(t *testing.T) {
	backend := cpu.New()

	x := tensor.Zeros[float32](tensor.Shape{2, 2}, backend)
	x.Set(7, 0, 1)
	if got := x.At(0, 1); got != 7 {
		t.Errorf("At(0,1) = %v, want 7", got)
	}

	s := tensor.Scalar(float32(2.5), backend)
	if got := s.Item(); got != 2.5 {
		t.Errorf("Item() = %v, want 2.5", got)
	}
	if len(s.Shape()) != 0 {
		t.Errorf("Scalar shape = %v, want rank 0", s.Shape())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	backend := cpu.New()

	x, _ := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, backend)
	y := x.Clone()
	y.Set(99, 0)

	if got := x.At(0); got != 1 {
		t.Errorf("Clone shares storage: original At(0) = %v, want 1", got)
	}
}

func TestElementwiseChain(t *testing.T) {
	backend := cpu.New()

	x, _ := tensor.FromSlice([]float32{0.25, 0.5}, tensor.Shape{2}, backend)

	// 1 - x
	om := x.OneMinus()
	if got := om.At(0); got != 0.75 {
		t.Errorf("OneMinus At(0) = %v, want 0.75", got)
	}

	// exp(log(x)) == x
	roundTrip := x.Log().Exp()
	for i := range 2 {
		if diff := math.Abs(float64(roundTrip.At(i) - x.At(i))); diff > 1e-6 {
			t.Errorf("exp(log(x))[%d] = %v, want %v", i, roundTrip.At(i), x.At(i))
		}
	}
}

func TestComparisonAndWhere(t *testing.T) {
	backend := cpu.New()

	x, _ := tensor.FromSlice([]float32{0.2, 0.8, 0.5}, tensor.Shape{3}, backend)
	mask := x.GreaterScalar(0.5)

	hi := tensor.Full(tensor.Shape{3}, float32(1), backend)
	lo := tensor.Full(tensor.Shape{3}, float32(-1), backend)
	y := tensor.Where(mask, hi, lo)

	want := []float32{-1, 1, -1}
	for i, w := range want {
		if got := y.At(i); got != w {
			t.Errorf("Where At(%d) = %v, want %v", i, got, w)
		}
	}
}

func TestMaskedSelectFiltersRows(t *testing.T) {
	backend := cpu.New()

	x, _ := tensor.FromSlice([]float32{
		1, 2,
		3, 4,
		5, 6,
	}, tensor.Shape{1, 3, 2}, backend)
	state, _ := tensor.FromSlice([]float32{1, -1, 0}, tensor.Shape{1, 3}, backend)

	kept := x.MaskedSelect(state.NotEqualScalar(-1))
	if !kept.Shape().Equal(tensor.Shape{2, 2}) {
		t.Fatalf("MaskedSelect shape = %v, want [2 2]", kept.Shape())
	}
	want := []float32{1, 2, 5, 6}
	for i, w := range want {
		if got := kept.Data()[i]; got != w {
			t.Errorf("MaskedSelect data[%d] = %v, want %v", i, got, w)
		}
	}
}

func TestMaskedSelectEmptyResult(t *testing.T) {
	backend := cpu.New()

	x, _ := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2}, backend)
	none, _ := tensor.FromSlice([]float32{-1, -1}, tensor.Shape{2}, backend)

	kept := x.MaskedSelect(none.NotEqualScalar(-1))
	if !kept.Shape().Equal(tensor.Shape{0, 2}) {
		t.Fatalf("empty MaskedSelect shape = %v, want [0 2]", kept.Shape())
	}

	// Empty tensors flow through arithmetic and reduce to zero.
	sum := kept.MulScalar(3).AddScalar(1).Sum()
	if got := sum.Item(); got != 0 {
		t.Errorf("empty Sum = %v, want 0", got)
	}
}

func TestNarrowSqueeze(t *testing.T) {
	backend := cpu.New()

	y, _ := tensor.FromSlice([]float32{
		0.1, 0.2, 1,
		0.3, 0.4, 0,
	}, tensor.Shape{1, 2, 3}, backend)

	labels := y.Narrow(-1, 0, 2)
	if !labels.Shape().Equal(tensor.Shape{1, 2, 2}) {
		t.Errorf("Narrow shape = %v, want [1 2 2]", labels.Shape())
	}
	if got := labels.At(0, 1, 1); got != 0.4 {
		t.Errorf("Narrow At(0,1,1) = %v, want 0.4", got)
	}

	state := y.Narrow(-1, 2, 1).Squeeze(-1)
	if !state.Shape().Equal(tensor.Shape{1, 2}) {
		t.Errorf("Squeeze shape = %v, want [1 2]", state.Shape())
	}
	if got := state.At(0, 0); got != 1 {
		t.Errorf("state At(0,0) = %v, want 1", got)
	}
}

func TestBroadcastArithmetic(t *testing.T) {
	backend := cpu.New()

	a, _ := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2}, backend)
	row, _ := tensor.FromSlice([]float32{10, 20}, tensor.Shape{2}, backend)

	sum := a.Add(row)
	want := []float32{11, 22, 13, 24}
	for i, w := range want {
		if got := sum.Data()[i]; got != w {
			t.Errorf("broadcast Add data[%d] = %v, want %v", i, got, w)
		}
	}
}

func TestCastFloat64(t *testing.T) {
	backend := cpu.New()

	x, _ := tensor.FromSlice([]float32{1.5, 2.5}, tensor.Shape{2}, backend)
	y := x.Float64()
	if y.DType() != tensor.Float64 {
		t.Errorf("DType = %v, want Float64", y.DType())
	}
	if got := y.At(1); got != 2.5 {
		t.Errorf("cast At(1) = %v, want 2.5", got)
	}
}
