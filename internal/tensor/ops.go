package tensor

// Typed wrappers over the Backend operation set.

// Add performs element-wise addition with broadcasting.
//
// Example:
//
//	a := tensor.Ones[float32](Shape{3, 1}, backend)
//	b := tensor.Ones[float32](Shape{3, 5}, backend)
//	c := a.Add(b) // Shape: [3, 5] (broadcasted)
func (t *Tensor[T, B]) Add(other *Tensor[T, B]) *Tensor[T, B] {
	result := t.backend.Add(t.raw, other.raw)
	return New[T, B](result, t.backend)
}

// Sub performs element-wise subtraction with broadcasting.
func (t *Tensor[T, B]) Sub(other *Tensor[T, B]) *Tensor[T, B] {
	result := t.backend.Sub(t.raw, other.raw)
	return New[T, B](result, t.backend)
}

// Mul performs element-wise multiplication with broadcasting.
func (t *Tensor[T, B]) Mul(other *Tensor[T, B]) *Tensor[T, B] {
	result := t.backend.Mul(t.raw, other.raw)
	return New[T, B](result, t.backend)
}

// Div performs element-wise division with broadcasting.
func (t *Tensor[T, B]) Div(other *Tensor[T, B]) *Tensor[T, B] {
	result := t.backend.Div(t.raw, other.raw)
	return New[T, B](result, t.backend)
}

// AddScalar adds a scalar value to each element of the tensor.
func (t *Tensor[T, B]) AddScalar(scalar T) *Tensor[T, B] {
	result := t.backend.AddScalar(t.raw, scalar)
	return New[T, B](result, t.backend)
}

// SubScalar subtracts a scalar value from each element of the tensor.
func (t *Tensor[T, B]) SubScalar(scalar T) *Tensor[T, B] {
	result := t.backend.SubScalar(t.raw, scalar)
	return New[T, B](result, t.backend)
}

// MulScalar multiplies each element of the tensor by a scalar value.
func (t *Tensor[T, B]) MulScalar(scalar T) *Tensor[T, B] {
	result := t.backend.MulScalar(t.raw, scalar)
	return New[T, B](result, t.backend)
}

// DivScalar divides each element of the tensor by a scalar value.
func (t *Tensor[T, B]) DivScalar(scalar T) *Tensor[T, B] {
	result := t.backend.DivScalar(t.raw, scalar)
	return New[T, B](result, t.backend)
}

// OneMinus computes 1 - x for each element.
//
// The detection loss formulas use this form repeatedly (focal weight,
// binary cross-entropy complement).
func (t *Tensor[T, B]) OneMinus() *Tensor[T, B] {
	result := t.backend.AddScalar(t.backend.MulScalar(t.raw, negOne[T]()), one[T]())
	return New[T, B](result, t.backend)
}

// Exp computes the exponential (e^x) of each element.
func (t *Tensor[T, B]) Exp() *Tensor[T, B] {
	result := t.backend.Exp(t.raw)
	return New[T, B](result, t.backend)
}

// Log computes the natural logarithm (ln(x)) of each element.
func (t *Tensor[T, B]) Log() *Tensor[T, B] {
	result := t.backend.Log(t.raw)
	return New[T, B](result, t.backend)
}

// Sqrt computes the square root of each element.
func (t *Tensor[T, B]) Sqrt() *Tensor[T, B] {
	result := t.backend.Sqrt(t.raw)
	return New[T, B](result, t.backend)
}

// Abs computes the absolute value of each element.
func (t *Tensor[T, B]) Abs() *Tensor[T, B] {
	result := t.backend.Abs(t.raw)
	return New[T, B](result, t.backend)
}

// Erf computes the Gauss error function of each element.
func (t *Tensor[T, B]) Erf() *Tensor[T, B] {
	result := t.backend.Erf(t.raw)
	return New[T, B](result, t.backend)
}

// PowScalar raises each element to the scalar power p.
func (t *Tensor[T, B]) PowScalar(p T) *Tensor[T, B] {
	result := t.backend.PowScalar(t.raw, p)
	return New[T, B](result, t.backend)
}

// Clamp clips each element into the interval [lo, hi].
func (t *Tensor[T, B]) Clamp(lo, hi T) *Tensor[T, B] {
	result := t.backend.Clamp(t.raw, lo, hi)
	return New[T, B](result, t.backend)
}

// Greater returns a boolean tensor where each element is true if the
// corresponding element in this tensor is greater than the corresponding
// element in other. Supports broadcasting.
func (t *Tensor[T, B]) Greater(other *Tensor[T, B]) *Tensor[bool, B] {
	result := t.backend.Greater(t.raw, other.raw)
	return New[bool, B](result, t.backend)
}

// Lower returns a boolean tensor where each element is true if the
// corresponding element in this tensor is less than the corresponding
// element in other. Supports broadcasting.
func (t *Tensor[T, B]) Lower(other *Tensor[T, B]) *Tensor[bool, B] {
	result := t.backend.Lower(t.raw, other.raw)
	return New[bool, B](result, t.backend)
}

// Equal returns a boolean tensor where each element is true if the
// corresponding elements in this tensor and other are equal.
func (t *Tensor[T, B]) Equal(other *Tensor[T, B]) *Tensor[bool, B] {
	result := t.backend.Equal(t.raw, other.raw)
	return New[bool, B](result, t.backend)
}

// NotEqual returns a boolean tensor where each element is true if the
// corresponding elements in this tensor and other differ.
func (t *Tensor[T, B]) NotEqual(other *Tensor[T, B]) *Tensor[bool, B] {
	result := t.backend.NotEqual(t.raw, other.raw)
	return New[bool, B](result, t.backend)
}

// GreaterScalar returns a boolean tensor marking elements greater than scalar.
func (t *Tensor[T, B]) GreaterScalar(scalar T) *Tensor[bool, B] {
	result := t.backend.GreaterScalar(t.raw, scalar)
	return New[bool, B](result, t.backend)
}

// LowerScalar returns a boolean tensor marking elements less than scalar.
func (t *Tensor[T, B]) LowerScalar(scalar T) *Tensor[bool, B] {
	result := t.backend.LowerScalar(t.raw, scalar)
	return New[bool, B](result, t.backend)
}

// EqualScalar returns a boolean tensor marking elements equal to scalar.
func (t *Tensor[T, B]) EqualScalar(scalar T) *Tensor[bool, B] {
	result := t.backend.EqualScalar(t.raw, scalar)
	return New[bool, B](result, t.backend)
}

// NotEqualScalar returns a boolean tensor marking elements not equal to scalar.
func (t *Tensor[T, B]) NotEqualScalar(scalar T) *Tensor[bool, B] {
	result := t.backend.NotEqualScalar(t.raw, scalar)
	return New[bool, B](result, t.backend)
}

// Where selects elements from x or y based on condition.
//
// For each element:
//   - If condition is true, select from x
//   - If condition is false, select from y
//
// Supports broadcasting between condition, x, and y.
func Where[T DType, B Backend](cond *Tensor[bool, B], x, y *Tensor[T, B]) *Tensor[T, B] {
	result := x.backend.Where(cond.raw, x.raw, y.raw)
	return New[T, B](result, x.backend)
}

// MaskedSelect keeps the rows of the tensor whose mask entry is true.
//
// The mask shape must be a prefix of the tensor shape. Masked dimensions are
// flattened into a single leading dimension of size K (the number of true
// entries); trailing dimensions are preserved. This is the anchor-filtering
// primitive: a (batch, anchors) state mask applied to a
// (batch, anchors, classes) tensor yields (K, classes).
func (t *Tensor[T, B]) MaskedSelect(mask *Tensor[bool, B]) *Tensor[T, B] {
	result := t.backend.MaskedSelect(t.raw, mask.raw)
	return New[T, B](result, t.backend)
}

// Reshape returns a tensor with the same data but different shape.
// The new shape must have the same number of elements.
func (t *Tensor[T, B]) Reshape(newShape ...int) *Tensor[T, B] {
	result := t.backend.Reshape(t.raw, Shape(newShape))
	return New[T, B](result, t.backend)
}

// Narrow returns the slice [start, start+length) of the tensor along dim.
// Supports negative dim indexing (-1 = last dimension).
//
// Example:
//
//	y := tensor.Zeros[float32](Shape{2, 4, 5}, backend)
//	targets := y.Narrow(-1, 0, 4) // Shape: [2, 4, 4]
//	state := y.Narrow(-1, 4, 1)   // Shape: [2, 4, 1]
func (t *Tensor[T, B]) Narrow(dim, start, length int) *Tensor[T, B] {
	result := t.backend.Narrow(t.raw, dim, start, length)
	return New[T, B](result, t.backend)
}

// Squeeze removes a dimension of size 1 at the specified position.
// Panics if the dimension size is not 1. Supports negative dim indexing.
func (t *Tensor[T, B]) Squeeze(dim int) *Tensor[T, B] {
	result := t.backend.Squeeze(t.raw, dim)
	return New[T, B](result, t.backend)
}

// Unsqueeze adds a dimension of size 1 at the specified position.
// Supports negative dim indexing.
func (t *Tensor[T, B]) Unsqueeze(dim int) *Tensor[T, B] {
	result := t.backend.Unsqueeze(t.raw, dim)
	return New[T, B](result, t.backend)
}

// Sum computes the sum of all elements in the tensor, returning a scalar.
//
// The result is a tensor with shape [] (scalar). An empty tensor sums to
// zero.
func (t *Tensor[T, B]) Sum() *Tensor[T, B] {
	result := t.backend.Sum(t.raw)
	return New[T, B](result, t.backend)
}

// Float32 casts the tensor to float32 dtype.
func (t *Tensor[T, B]) Float32() *Tensor[float32, B] {
	result := t.backend.Cast(t.raw, Float32)
	return New[float32, B](result, t.backend)
}

// Float64 casts the tensor to float64 dtype.
func (t *Tensor[T, B]) Float64() *Tensor[float64, B] {
	result := t.backend.Cast(t.raw, Float64)
	return New[float64, B](result, t.backend)
}

func one[T DType]() T {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return any(float32(1)).(T)
	case float64:
		return any(float64(1)).(T)
	default:
		panic("one: unsupported type")
	}
}

func negOne[T DType]() T {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return any(float32(-1)).(T)
	case float64:
		return any(float64(-1)).(T)
	default:
		panic("negOne: unsupported type")
	}
}
