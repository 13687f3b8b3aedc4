package visual

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DrawBox draws the outline of box onto img with the given color and line
// thickness. Parts of the box outside the image are clipped.
func DrawBox(img draw.Image, box Box, c color.Color, thickness int) {
	if thickness < 1 {
		thickness = 1
	}
	r := box.Rect()
	// top, bottom, left, right edges as filled strips
	fillRect(img, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+thickness), c)
	fillRect(img, image.Rect(r.Min.X, r.Max.Y-thickness, r.Max.X, r.Max.Y), c)
	fillRect(img, image.Rect(r.Min.X, r.Min.Y, r.Min.X+thickness, r.Max.Y), c)
	fillRect(img, image.Rect(r.Max.X-thickness, r.Min.Y, r.Max.X, r.Max.Y), c)
}

// DrawBoxes draws every box with the same color and thickness.
func DrawBoxes(img draw.Image, boxes []Box, c color.Color, thickness int) {
	for _, box := range boxes {
		DrawBox(img, box, c, thickness)
	}
}

// DrawCaption renders text just above the box, white over a black shadow so
// it stays readable on any background.
func DrawCaption(img draw.Image, box Box, caption string) {
	drawText(img, box.X1+1, box.Y1-3, caption, color.Black)
	drawText(img, box.X1, box.Y1-4, caption, color.White)
}

// DetectionStyle controls DrawDetections.
type DetectionStyle struct {
	// ScoreThreshold hides detections scoring at or below it.
	ScoreThreshold float32
	// Color overrides the per-label palette when set.
	Color color.Color
	// LabelName maps a label to its caption text; nil skips captions.
	LabelName func(label int) string
	// Thickness is the box outline width in pixels.
	Thickness int
}

// DefaultDetectionStyle returns the standard rendering settings.
func DefaultDetectionStyle() DetectionStyle {
	return DetectionStyle{
		ScoreThreshold: 0.5,
		Thickness:      2,
	}
}

// DrawDetections renders each detection above the score threshold: the box
// in its label color (or the style override) and a "name: score" caption.
func DrawDetections(img draw.Image, detections []Detection, style DetectionStyle) {
	for _, d := range detections {
		if d.Score <= style.ScoreThreshold {
			continue
		}
		c := style.Color
		if c == nil {
			c = LabelColor(d.Label)
		}
		DrawBox(img, d.Box, c, style.Thickness)
		if style.LabelName != nil {
			caption := formatCaption(style.LabelName(d.Label), d.Score)
			DrawCaption(img, d.Box, caption)
		}
	}
}

// DrawAnnotations renders ground-truth boxes, captioned with their label
// name when labelName is non-nil.
func DrawAnnotations(img draw.Image, ann Annotations, c color.Color, labelName func(label int) string) {
	for i, box := range ann.Boxes {
		boxColor := c
		if boxColor == nil {
			boxColor = LabelColor(ann.Labels[i])
		}
		DrawBox(img, box, boxColor, 2)
		if labelName != nil {
			DrawCaption(img, box, labelName(ann.Labels[i]))
		}
	}
}

func fillRect(img draw.Image, r image.Rectangle, c color.Color) {
	r = r.Intersect(img.Bounds())
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func drawText(img draw.Image, x, y int, text string, c color.Color) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

func formatCaption(name string, score float32) string {
	return fmt.Sprintf("%s: %.2f", name, score)
}
