package cpu

import (
	"fmt"

	"github.com/NatalieHanzhina/bayesian-retinanet-go/internal/tensor"
)

// Where selects elements from x or y based on condition.
//
// For each element of the broadcasted shape, the result takes the x value
// where condition is true and the y value otherwise.
func (cpu *CPUBackend) Where(condition, x, y *tensor.RawTensor) *tensor.RawTensor {
	if condition.DType() != tensor.Bool {
		panic(fmt.Sprintf("where: condition must be bool, got %s", condition.DType()))
	}
	if x.DType() != y.DType() {
		panic(fmt.Sprintf("where: x and y must have same dtype, got %s and %s",
			x.DType(), y.DType()))
	}

	outShape1, _, err := tensor.BroadcastShapes(condition.Shape(), x.Shape())
	if err != nil {
		panic(fmt.Sprintf("where: failed to broadcast condition and x: %v", err))
	}
	outShape, _, err := tensor.BroadcastShapes(outShape1, y.Shape())
	if err != nil {
		panic(fmt.Sprintf("where: failed to broadcast with y: %v", err))
	}

	result, err := tensor.NewRaw(outShape, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("where: failed to create result tensor: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		whereSelect(result.AsFloat32(), condition.AsBool(), x.AsFloat32(), y.AsFloat32(),
			outShape, condition.Shape(), x.Shape(), y.Shape())
	case tensor.Float64:
		whereSelect(result.AsFloat64(), condition.AsBool(), x.AsFloat64(), y.AsFloat64(),
			outShape, condition.Shape(), x.Shape(), y.Shape())
	default:
		panic(fmt.Sprintf("where: unsupported dtype %s", x.DType()))
	}

	return result
}

func whereSelect[T any](dst []T, cond []bool, x, y []T, outShape, condShape, xShape, yShape tensor.Shape) {
	outStrides := outShape.ComputeStrides()
	condStrides := condShape.ComputeStrides()
	xStrides := xShape.ComputeStrides()
	yStrides := yShape.ComputeStrides()

	multiIdx := make([]int, len(outShape))
	for i := range dst {
		flatToMulti(i, outStrides, multiIdx)
		if cond[broadcastIndex(multiIdx, condShape, condStrides)] {
			dst[i] = x[broadcastIndex(multiIdx, xShape, xStrides)]
		} else {
			dst[i] = y[broadcastIndex(multiIdx, yShape, yStrides)]
		}
	}
}

// MaskedSelect keeps the rows of x whose mask entry is true.
//
// The mask shape must be a prefix of x's shape. Masked dimensions collapse
// into a single leading dimension of size K (the number of true entries);
// trailing dimensions are preserved:
//
//	x (B, N, C), mask (B, N)  ->  (K, C)
//	x (B, N),    mask (B, N)  ->  (K,)
//
// K may be zero; the result is then an empty tensor.
func (cpu *CPUBackend) MaskedSelect(x, mask *tensor.RawTensor) *tensor.RawTensor {
	if mask.DType() != tensor.Bool {
		panic(fmt.Sprintf("maskedSelect: mask must be bool, got %s", mask.DType()))
	}

	xShape := x.Shape()
	maskShape := mask.Shape()
	if len(maskShape) > len(xShape) {
		panic(fmt.Sprintf("maskedSelect: mask rank %d exceeds tensor rank %d", len(maskShape), len(xShape)))
	}
	for i := range maskShape {
		if maskShape[i] != xShape[i] {
			panic(fmt.Sprintf("maskedSelect: mask shape %v is not a prefix of tensor shape %v",
				maskShape, xShape))
		}
	}

	maskData := mask.AsBool()
	rows := 0
	for _, m := range maskData {
		if m {
			rows++
		}
	}

	trailing := xShape[len(maskShape):]
	outShape := append(tensor.Shape{rows}, trailing.Clone()...)

	result, err := tensor.NewRaw(outShape, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("maskedSelect: %v", err))
	}

	// Rows are contiguous blocks of the trailing dimensions; copy bytes.
	rowBytes := trailing.NumElements() * x.DType().Size()
	src := x.Data()
	dst := result.Data()
	out := 0
	for i, m := range maskData {
		if !m {
			continue
		}
		copy(dst[out*rowBytes:(out+1)*rowBytes], src[i*rowBytes:(i+1)*rowBytes])
		out++
	}

	return result
}
