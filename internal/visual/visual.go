// Package visual renders detection results and ground-truth annotations
// onto images, for inspecting what the losses are being trained against.
package visual

import (
	"image"
	"image/color"
)

// Box is an axis-aligned box in pixel coordinates, (X1, Y1) top-left
// inclusive and (X2, Y2) bottom-right exclusive.
type Box struct {
	X1, Y1, X2, Y2 int
}

// Rect converts the box to an image.Rectangle.
func (b Box) Rect() image.Rectangle {
	return image.Rect(b.X1, b.Y1, b.X2, b.Y2)
}

// Detection is one predicted box with its confidence and class label.
type Detection struct {
	Box   Box
	Score float32
	Label int
}

// Annotations is the ground truth for one image: parallel box and label
// slices.
type Annotations struct {
	Boxes  []Box
	Labels []int
}

// palette holds the per-label colors. Labels wrap around when there are
// more classes than palette entries.
var palette = []color.RGBA{
	{R: 31, G: 0, B: 255, A: 255},
	{R: 0, G: 159, B: 255, A: 255},
	{R: 255, G: 19, B: 0, A: 255},
	{R: 255, G: 60, B: 0, A: 255},
	{R: 26, G: 255, B: 0, A: 255},
	{R: 255, G: 139, B: 0, A: 255},
	{R: 255, G: 0, B: 38, A: 255},
	{R: 0, G: 255, B: 25, A: 255},
	{R: 255, G: 0, B: 133, A: 255},
	{R: 255, G: 172, B: 0, A: 255},
	{R: 108, G: 0, B: 255, A: 255},
	{R: 0, G: 82, B: 255, A: 255},
	{R: 0, G: 255, B: 165, A: 255},
	{R: 0, G: 255, B: 216, A: 255},
	{R: 0, G: 66, B: 255, A: 255},
	{R: 255, G: 0, B: 82, A: 255},
}

// LabelColor returns the deterministic color for a class label.
func LabelColor(label int) color.RGBA {
	if label < 0 {
		label = -label
	}
	return palette[label%len(palette)]
}
