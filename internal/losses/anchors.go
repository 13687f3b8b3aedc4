package losses

// Anchor states, stored in the last column of every ground-truth tensor.
//
// The generator marks each anchor as ignored (excluded from the loss
// entirely), background (negative) or object (positive).
const (
	AnchorIgnore     float32 = -1
	AnchorBackground float32 = 0
	AnchorPositive   float32 = 1
)
