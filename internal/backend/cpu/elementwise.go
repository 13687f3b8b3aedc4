package cpu

import (
	"fmt"

	"github.com/NatalieHanzhina/bayesian-retinanet-go/internal/parallel"
	"github.com/NatalieHanzhina/bayesian-retinanet-go/internal/tensor"
)

// parallelCfg governs chunked parallel execution of the element loops.
var parallelCfg = parallel.DefaultConfig()

// binary dispatches a dtype-checked element-wise binary operation with
// broadcasting.
func (cpu *CPUBackend) binary(name string, a, b *tensor.RawTensor,
	f32 func(x, y float32) float32, f64 func(x, y float64) float64,
) *tensor.RawTensor {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch: %s vs %s", name, a.DType(), b.DType()))
	}

	outShape, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	result, err := tensor.NewRaw(outShape, a.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", name, err))
	}

	switch a.DType() {
	case tensor.Float32:
		if !needsBroadcast {
			applyBinary(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), f32)
		} else {
			applyBinaryBroadcast(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(),
				a.Shape(), b.Shape(), outShape, f32)
		}
	case tensor.Float64:
		if !needsBroadcast {
			applyBinary(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), f64)
		} else {
			applyBinaryBroadcast(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(),
				a.Shape(), b.Shape(), outShape, f64)
		}
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s (only float32/float64 supported)", name, a.DType()))
	}

	return result
}

// comparison dispatches an element-wise comparison with broadcasting.
// The result is a bool tensor.
func (cpu *CPUBackend) comparison(name string, a, b *tensor.RawTensor,
	f32 func(x, y float32) bool, f64 func(x, y float64) bool,
) *tensor.RawTensor {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch: %s vs %s", name, a.DType(), b.DType()))
	}

	outShape, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	result, err := tensor.NewRaw(outShape, tensor.Bool, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	switch a.DType() {
	case tensor.Float32:
		if !needsBroadcast {
			applyBinary(result.AsBool(), a.AsFloat32(), b.AsFloat32(), f32)
		} else {
			applyBinaryBroadcast(result.AsBool(), a.AsFloat32(), b.AsFloat32(),
				a.Shape(), b.Shape(), outShape, f32)
		}
	case tensor.Float64:
		if !needsBroadcast {
			applyBinary(result.AsBool(), a.AsFloat64(), b.AsFloat64(), f64)
		} else {
			applyBinaryBroadcast(result.AsBool(), a.AsFloat64(), b.AsFloat64(),
				a.Shape(), b.Shape(), outShape, f64)
		}
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s (only float32/float64 supported)", name, a.DType()))
	}

	return result
}

// unary dispatches a dtype-checked element-wise unary operation.
func (cpu *CPUBackend) unary(name string, x *tensor.RawTensor,
	f32 func(v float32) float32, f64 func(v float64) float64,
) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	switch x.DType() {
	case tensor.Float32:
		src := x.AsFloat32()
		dst := result.AsFloat32()
		parallel.ForChunks(len(src), parallelCfg, func(start, end int) {
			for i := start; i < end; i++ {
				dst[i] = f32(src[i])
			}
		})
	case tensor.Float64:
		src := x.AsFloat64()
		dst := result.AsFloat64()
		parallel.ForChunks(len(src), parallelCfg, func(start, end int) {
			for i := start; i < end; i++ {
				dst[i] = f64(src[i])
			}
		})
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s (only float32/float64 supported)", name, x.DType()))
	}

	return result
}

// applyBinary computes dst[i] = op(a[i], b[i]) for same-shape operands.
func applyBinary[T, R any](dst []R, a, b []T, op func(T, T) R) {
	parallel.ForChunks(len(dst), parallelCfg, func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = op(a[i], b[i])
		}
	})
}

// applyBinaryBroadcast computes dst = op(a, b) with NumPy broadcasting.
// Each chunk carries its own coordinate scratch.
func applyBinaryBroadcast[T, R any](dst []R, a, b []T, aShape, bShape, outShape tensor.Shape, op func(T, T) R) {
	outStrides := outShape.ComputeStrides()
	aStrides := aShape.ComputeStrides()
	bStrides := bShape.ComputeStrides()

	parallel.ForChunks(len(dst), parallelCfg, func(start, end int) {
		multiIdx := make([]int, len(outShape))
		for i := start; i < end; i++ {
			flatToMulti(i, outStrides, multiIdx)
			aIdx := broadcastIndex(multiIdx, aShape, aStrides)
			bIdx := broadcastIndex(multiIdx, bShape, bStrides)
			dst[i] = op(a[aIdx], b[bIdx])
		}
	})
}

// flatToMulti converts a flat index into multi-dimensional coordinates.
func flatToMulti(flat int, strides []int, multiIdx []int) {
	remaining := flat
	for d := range strides {
		multiIdx[d] = remaining / strides[d]
		remaining %= strides[d]
	}
}

// broadcastIndex maps output coordinates to a flat index in a (possibly
// lower-rank or size-1-dimension) operand. Shapes are right-aligned;
// dimensions of size 1 always map to coordinate 0.
func broadcastIndex(multiIdx []int, shape tensor.Shape, strides []int) int {
	offset := len(multiIdx) - len(shape)
	idx := 0
	for d := range shape {
		coord := multiIdx[d+offset]
		if shape[d] == 1 {
			coord = 0
		}
		idx += coord * strides[d]
	}
	return idx
}
