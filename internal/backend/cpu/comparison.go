package cpu

import (
	"fmt"

	"github.com/NatalieHanzhina/bayesian-retinanet-go/internal/tensor"
)

// Comparison operations - return bool tensors.

// Greater returns a > b element-wise.
func (cpu *CPUBackend) Greater(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.comparison("greater", a, b,
		func(x, y float32) bool { return x > y },
		func(x, y float64) bool { return x > y })
}

// Lower returns a < b element-wise.
func (cpu *CPUBackend) Lower(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.comparison("lower", a, b,
		func(x, y float32) bool { return x < y },
		func(x, y float64) bool { return x < y })
}

// Equal returns a == b element-wise.
func (cpu *CPUBackend) Equal(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.comparison("equal", a, b,
		func(x, y float32) bool { return x == y },
		func(x, y float64) bool { return x == y })
}

// NotEqual returns a != b element-wise.
func (cpu *CPUBackend) NotEqual(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.comparison("notEqual", a, b,
		func(x, y float32) bool { return x != y },
		func(x, y float64) bool { return x != y })
}

// GreaterScalar returns x > scalar element-wise.
func (cpu *CPUBackend) GreaterScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarComparison("greaterScalar", x, scalar,
		func(v, s float32) bool { return v > s },
		func(v, s float64) bool { return v > s })
}

// LowerScalar returns x < scalar element-wise.
func (cpu *CPUBackend) LowerScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarComparison("lowerScalar", x, scalar,
		func(v, s float32) bool { return v < s },
		func(v, s float64) bool { return v < s })
}

// EqualScalar returns x == scalar element-wise.
func (cpu *CPUBackend) EqualScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarComparison("equalScalar", x, scalar,
		func(v, s float32) bool { return v == s },
		func(v, s float64) bool { return v == s })
}

// NotEqualScalar returns x != scalar element-wise.
func (cpu *CPUBackend) NotEqualScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarComparison("notEqualScalar", x, scalar,
		func(v, s float32) bool { return v != s },
		func(v, s float64) bool { return v != s })
}

func (cpu *CPUBackend) scalarComparison(name string, x *tensor.RawTensor, scalar any,
	f32 func(v, s float32) bool, f64 func(v, s float64) bool,
) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), tensor.Bool, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}
	dst := result.AsBool()

	switch x.DType() {
	case tensor.Float32:
		s := scalar.(float32)
		for i, v := range x.AsFloat32() {
			dst[i] = f32(v, s)
		}
	case tensor.Float64:
		s := scalar.(float64)
		for i, v := range x.AsFloat64() {
			dst[i] = f64(v, s)
		}
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s (only float32/float64 supported)", name, x.DType()))
	}

	return result
}
