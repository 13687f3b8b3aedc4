package cpu

import (
	"fmt"

	"github.com/NatalieHanzhina/bayesian-retinanet-go/internal/tensor"
)

// Reshape returns a view of the tensor with a different shape.
// The new shape must have the same number of elements.
func (cpu *CPUBackend) Reshape(t *tensor.RawTensor, newShape tensor.Shape) *tensor.RawTensor {
	if err := newShape.Validate(); err != nil {
		panic(fmt.Sprintf("reshape: invalid shape: %v", err))
	}
	if t.NumElements() != newShape.NumElements() {
		panic(fmt.Sprintf("reshape: incompatible shapes: %v -> %v (different number of elements)",
			t.Shape(), newShape))
	}
	return t.WithShape(newShape)
}

// Narrow returns the slice [start, start+length) of x along dim.
// Supports negative dim indexing (-1 = last dimension).
func (cpu *CPUBackend) Narrow(x *tensor.RawTensor, dim, start, length int) *tensor.RawTensor {
	shape := x.Shape()
	ndim := len(shape)

	if dim < 0 {
		dim = ndim + dim
	}
	if dim < 0 || dim >= ndim {
		panic(fmt.Sprintf("narrow: dimension %d out of range for %dD tensor", dim, ndim))
	}
	if start < 0 || length < 0 || start+length > shape[dim] {
		panic(fmt.Sprintf("narrow: range [%d, %d) out of bounds for dimension %d (size %d)",
			start, start+length, dim, shape[dim]))
	}

	outShape := shape.Clone()
	outShape[dim] = length

	result, err := tensor.NewRaw(outShape, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("narrow: %v", err))
	}

	// Everything after dim is contiguous: copy [start, start+length) blocks
	// for each outer index.
	elemSize := x.DType().Size()
	inner := 1
	for d := dim + 1; d < ndim; d++ {
		inner *= shape[d]
	}
	outer := 1
	for d := 0; d < dim; d++ {
		outer *= shape[d]
	}

	blockBytes := length * inner * elemSize
	srcRowBytes := shape[dim] * inner * elemSize
	srcOffset := start * inner * elemSize

	src := x.Data()
	dst := result.Data()
	for o := 0; o < outer; o++ {
		copy(dst[o*blockBytes:(o+1)*blockBytes],
			src[o*srcRowBytes+srcOffset:o*srcRowBytes+srcOffset+blockBytes])
	}

	return result
}

// Squeeze removes a dimension of size 1 at the specified position.
// Panics if the dimension size is not 1. Supports negative dim indexing.
// This is a view operation (no data copy).
func (cpu *CPUBackend) Squeeze(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	shape := x.Shape()
	ndim := len(shape)

	if dim < 0 {
		dim = ndim + dim
	}
	if dim < 0 || dim >= ndim {
		panic(fmt.Sprintf("squeeze: dimension %d out of range for %dD tensor", dim, ndim))
	}
	if shape[dim] != 1 {
		panic(fmt.Sprintf("squeeze: dimension %d has size %d, expected 1", dim, shape[dim]))
	}

	outShape := make(tensor.Shape, 0, ndim-1)
	for d, size := range shape {
		if d != dim {
			outShape = append(outShape, size)
		}
	}
	return x.WithShape(outShape)
}

// Unsqueeze adds a dimension of size 1 at the specified position.
// Supports negative dim indexing. This is a view operation (no data copy).
func (cpu *CPUBackend) Unsqueeze(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	shape := x.Shape()
	ndim := len(shape)

	if dim < 0 {
		dim = ndim + 1 + dim
	}
	if dim < 0 || dim > ndim {
		panic(fmt.Sprintf("unsqueeze: dimension %d out of range for %dD tensor", dim, ndim))
	}

	outShape := make(tensor.Shape, 0, ndim+1)
	outShape = append(outShape, shape[:dim]...)
	outShape = append(outShape, 1)
	outShape = append(outShape, shape[dim:]...)
	return x.WithShape(outShape)
}
