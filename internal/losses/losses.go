package losses

import (
	"github.com/NatalieHanzhina/bayesian-retinanet-go/internal/tensor"
)

// Func is a loss functor: it compares a ground-truth tensor against a
// prediction tensor and returns a scalar (rank-0) loss.
//
// Shapes are not validated here; a malformed pair panics inside the tensor
// layer.
type Func[B tensor.Backend] func(yTrue, yPred *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B]

// binaryCrossEntropy computes elementwise -(t*log(p) + (1-t)*log(1-p)) with
// predictions clamped away from 0 and 1.
func binaryCrossEntropy[B tensor.Backend](target, output *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	const epsilon = 1e-7
	p := output.Clamp(epsilon, 1-epsilon)
	positive := target.Mul(p.Log())
	negative := target.OneMinus().Mul(p.OneMinus().Log())
	return positive.Add(negative).MulScalar(-1)
}

// normalizer counts the true entries of mask, floored at 1 so an empty
// selection divides by one instead of zero.
func normalizer[B tensor.Backend](mask *tensor.Tensor[bool, B]) float32 {
	n := mask.Float32().Sum().Item()
	if n < 1 {
		return 1
	}
	return n
}
