package cpu

import (
	"fmt"
	"math"

	"github.com/NatalieHanzhina/bayesian-retinanet-go/internal/tensor"
)

// Exp computes element-wise exponential: exp(x).
func (cpu *CPUBackend) Exp(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unary("exp", x,
		func(v float32) float32 { return float32(math.Exp(float64(v))) },
		math.Exp)
}

// Log computes element-wise natural logarithm: ln(x).
// Panics on non-positive input; callers clamp into (0, 1) first where the
// formula allows values at the boundary.
func (cpu *CPUBackend) Log(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unary("log", x,
		func(v float32) float32 {
			if v <= 0 {
				panic(fmt.Sprintf("log: non-positive value: %f", v))
			}
			return float32(math.Log(float64(v)))
		},
		func(v float64) float64 {
			if v <= 0 {
				panic(fmt.Sprintf("log: non-positive value: %f", v))
			}
			return math.Log(v)
		})
}

// Sqrt computes element-wise square root: sqrt(x).
func (cpu *CPUBackend) Sqrt(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unary("sqrt", x,
		func(v float32) float32 {
			if v < 0 {
				panic(fmt.Sprintf("sqrt: negative value: %f", v))
			}
			return float32(math.Sqrt(float64(v)))
		},
		func(v float64) float64 {
			if v < 0 {
				panic(fmt.Sprintf("sqrt: negative value: %f", v))
			}
			return math.Sqrt(v)
		})
}

// Abs computes element-wise absolute value: |x|.
func (cpu *CPUBackend) Abs(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unary("abs", x,
		func(v float32) float32 { return float32(math.Abs(float64(v))) },
		math.Abs)
}

// Erf computes the element-wise Gauss error function: erf(x).
func (cpu *CPUBackend) Erf(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unary("erf", x,
		func(v float32) float32 { return float32(math.Erf(float64(v))) },
		math.Erf)
}

// PowScalar raises each element to the scalar power p: x ** p.
func (cpu *CPUBackend) PowScalar(x *tensor.RawTensor, p any) *tensor.RawTensor {
	switch x.DType() {
	case tensor.Float32:
		exp := float64(p.(float32))
		return cpu.unary("pow", x,
			func(v float32) float32 { return float32(math.Pow(float64(v), exp)) },
			nil)
	case tensor.Float64:
		exp := p.(float64)
		return cpu.unary("pow", x,
			nil,
			func(v float64) float64 { return math.Pow(v, exp) })
	default:
		panic(fmt.Sprintf("pow: unsupported dtype %s (only float32/float64 supported)", x.DType()))
	}
}

// Clamp clips each element into the closed interval [lo, hi].
func (cpu *CPUBackend) Clamp(x *tensor.RawTensor, lo, hi any) *tensor.RawTensor {
	switch x.DType() {
	case tensor.Float32:
		loF, hiF := lo.(float32), hi.(float32)
		return cpu.unary("clamp", x,
			func(v float32) float32 { return min(max(v, loF), hiF) },
			nil)
	case tensor.Float64:
		loF, hiF := lo.(float64), hi.(float64)
		return cpu.unary("clamp", x,
			nil,
			func(v float64) float64 { return min(max(v, loF), hiF) })
	default:
		panic(fmt.Sprintf("clamp: unsupported dtype %s (only float32/float64 supported)", x.DType()))
	}
}
