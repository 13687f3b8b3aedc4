package cpu

import (
	"fmt"

	"github.com/NatalieHanzhina/bayesian-retinanet-go/internal/tensor"
)

// Cast converts a tensor to the given dtype.
//
// Supported conversions: float32 <-> float64, bool -> float32/float64
// (true -> 1, false -> 0). Casting to the same dtype returns a copy.
func (cpu *CPUBackend) Cast(x *tensor.RawTensor, dtype tensor.DataType) *tensor.RawTensor {
	if x.DType() == dtype {
		return x.Clone()
	}

	result, err := tensor.NewRaw(x.Shape(), dtype, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("cast: %v", err))
	}

	switch {
	case x.DType() == tensor.Float32 && dtype == tensor.Float64:
		src := x.AsFloat32()
		dst := result.AsFloat64()
		for i, v := range src {
			dst[i] = float64(v)
		}
	case x.DType() == tensor.Float64 && dtype == tensor.Float32:
		src := x.AsFloat64()
		dst := result.AsFloat32()
		for i, v := range src {
			dst[i] = float32(v)
		}
	case x.DType() == tensor.Bool && dtype == tensor.Float32:
		src := x.AsBool()
		dst := result.AsFloat32()
		for i, v := range src {
			if v {
				dst[i] = 1
			}
		}
	case x.DType() == tensor.Bool && dtype == tensor.Float64:
		src := x.AsBool()
		dst := result.AsFloat64()
		for i, v := range src {
			if v {
				dst[i] = 1
			}
		}
	default:
		panic(fmt.Sprintf("cast: unsupported conversion %s -> %s", x.DType(), dtype))
	}

	return result
}
