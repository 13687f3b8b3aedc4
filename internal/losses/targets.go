package losses

import (
	"fmt"

	"github.com/NatalieHanzhina/bayesian-retinanet-go/internal/tensor"
)

// PackClassTargets assembles the (batch, anchors, classes+1) classification
// ground-truth tensor from per-anchor soft labels and anchor states.
//
// labels is indexed [batch][anchor][class]; states is indexed
// [batch][anchor] and holds AnchorIgnore, AnchorBackground or
// AnchorPositive. Returns an error when the nested slices are ragged or the
// two arguments disagree on batch/anchor counts.
func PackClassTargets[B tensor.Backend](labels [][][]float32, states [][]float32, backend B) (*tensor.Tensor[float32, B], error) {
	batch, anchors, classes, err := targetDims(labels, states)
	if err != nil {
		return nil, err
	}

	data := make([]float32, batch*anchors*(classes+1))
	i := 0
	for b := 0; b < batch; b++ {
		for a := 0; a < anchors; a++ {
			i += copy(data[i:], labels[b][a])
			data[i] = states[b][a]
			i++
		}
	}
	return tensor.FromSlice(data, tensor.Shape{batch, anchors, classes + 1}, backend)
}

// PackBoxTargets assembles the (batch, anchors, 5) regression ground-truth
// tensor from per-anchor box targets and anchor states.
//
// boxes is indexed [batch][anchor] with four regression values per anchor.
func PackBoxTargets[B tensor.Backend](boxes [][][]float32, states [][]float32, backend B) (*tensor.Tensor[float32, B], error) {
	_, _, coords, err := targetDims(boxes, states)
	if err != nil {
		return nil, err
	}
	if coords != 4 {
		return nil, fmt.Errorf("pack box targets: expected 4 regression values per anchor, got %d", coords)
	}
	return PackClassTargets(boxes, states, backend)
}

// targetDims validates the nested-slice layout shared by both packers and
// returns (batch, anchors, inner) sizes.
func targetDims(values [][][]float32, states [][]float32) (int, int, int, error) {
	batch := len(values)
	if len(states) != batch {
		return 0, 0, 0, fmt.Errorf("pack targets: %d value batches vs %d state batches", batch, len(states))
	}
	if batch == 0 {
		return 0, 0, 0, fmt.Errorf("pack targets: empty batch")
	}

	anchors := len(values[0])
	inner := 0
	if anchors > 0 {
		inner = len(values[0][0])
	}
	for b := 0; b < batch; b++ {
		if len(values[b]) != anchors || len(states[b]) != anchors {
			return 0, 0, 0, fmt.Errorf("pack targets: batch %d has ragged anchor counts", b)
		}
		for a := 0; a < anchors; a++ {
			if len(values[b][a]) != inner {
				return 0, 0, 0, fmt.Errorf("pack targets: batch %d anchor %d has %d values, expected %d",
					b, a, len(values[b][a]), inner)
			}
		}
	}
	return batch, anchors, inner, nil
}
