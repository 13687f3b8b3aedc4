package tensor

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// The operation set covers what the detection losses exercise: element-wise
// arithmetic with broadcasting, scalar arithmetic, the math functions of the
// loss formulas, comparisons, conditional selection and anchor filtering,
// channel splitting, and full reduction.
//
// Only the CPU backend is implemented; an accelerator backend slots in by
// implementing the same interface.
type Backend interface {
	// Name returns the backend name.
	Name() string
	// Device returns the compute device the backend allocates tensors on.
	Device() Device

	// Element-wise binary operations with NumPy-style broadcasting.
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// Scalar operations (element-wise with scalar).
	AddScalar(x *RawTensor, scalar any) *RawTensor
	SubScalar(x *RawTensor, scalar any) *RawTensor
	MulScalar(x *RawTensor, scalar any) *RawTensor
	DivScalar(x *RawTensor, scalar any) *RawTensor

	// Math operations (element-wise).
	Exp(x *RawTensor) *RawTensor                 // exponential
	Log(x *RawTensor) *RawTensor                 // natural logarithm
	Sqrt(x *RawTensor) *RawTensor                // square root
	Abs(x *RawTensor) *RawTensor                 // absolute value
	Erf(x *RawTensor) *RawTensor                 // Gauss error function
	PowScalar(x *RawTensor, p any) *RawTensor    // x ** p, scalar exponent
	Clamp(x *RawTensor, lo, hi any) *RawTensor   // clip into [lo, hi]

	// Comparison operations (element-wise, return bool tensor).
	Greater(a, b *RawTensor) *RawTensor
	Lower(a, b *RawTensor) *RawTensor
	Equal(a, b *RawTensor) *RawTensor
	NotEqual(a, b *RawTensor) *RawTensor

	// Scalar comparison operations (element-wise against a scalar).
	GreaterScalar(x *RawTensor, scalar any) *RawTensor
	LowerScalar(x *RawTensor, scalar any) *RawTensor
	EqualScalar(x *RawTensor, scalar any) *RawTensor
	NotEqualScalar(x *RawTensor, scalar any) *RawTensor

	// Selection operations.
	Where(cond, x, y *RawTensor) *RawTensor    // cond ? x : y, broadcasting
	MaskedSelect(x, mask *RawTensor) *RawTensor // keep rows where mask is true

	// Shape operations.
	Reshape(t *RawTensor, newShape Shape) *RawTensor
	Narrow(x *RawTensor, dim, start, length int) *RawTensor
	Squeeze(x *RawTensor, dim int) *RawTensor
	Unsqueeze(x *RawTensor, dim int) *RawTensor

	// Reduction operations.
	Sum(x *RawTensor) *RawTensor // total sum, scalar result

	// Type conversion.
	Cast(x *RawTensor, dtype DataType) *RawTensor
}
