package visual

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelColorDeterministic(t *testing.T) {
	assert.Equal(t, LabelColor(3), LabelColor(3))
	assert.Equal(t, LabelColor(1), LabelColor(1+len(palette)))
	assert.NotEqual(t, LabelColor(0), LabelColor(1))
}

func TestDrawBoxPaintsOutlineOnly(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	red := color.RGBA{R: 255, A: 255}

	DrawBox(img, Box{X1: 4, Y1: 4, X2: 16, Y2: 16}, red, 1)

	assert.Equal(t, red, img.RGBAAt(4, 4), "corner")
	assert.Equal(t, red, img.RGBAAt(10, 4), "top edge")
	assert.Equal(t, red, img.RGBAAt(4, 10), "left edge")
	assert.Equal(t, red, img.RGBAAt(15, 10), "right edge")
	assert.Equal(t, color.RGBA{}, img.RGBAAt(10, 10), "interior untouched")
	assert.Equal(t, color.RGBA{}, img.RGBAAt(2, 2), "outside untouched")
}

func TestDrawBoxClipsToImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	// Must not panic on a box hanging off the image.
	DrawBox(img, Box{X1: -5, Y1: -5, X2: 15, Y2: 15}, color.White, 2)
}

func TestDrawDetectionsScoreThreshold(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 30, 30))
	dets := []Detection{
		{Box: Box{X1: 2, Y1: 2, X2: 12, Y2: 12}, Score: 0.9, Label: 0},
		{Box: Box{X1: 15, Y1: 15, X2: 28, Y2: 28}, Score: 0.2, Label: 1},
	}

	style := DefaultDetectionStyle()
	style.Color = color.RGBA{G: 255, A: 255}
	DrawDetections(img, dets, style)

	assert.Equal(t, style.Color, img.RGBAAt(2, 2), "confident detection drawn")
	assert.Equal(t, color.RGBA{}, img.RGBAAt(15, 15), "low-score detection skipped")
}

func TestDrawDetectionsThresholdIsExclusive(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 30, 30))
	style := DefaultDetectionStyle()
	style.Color = color.RGBA{G: 255, A: 255}

	// A score exactly at the threshold is hidden; only strictly greater draws.
	DrawDetections(img, []Detection{
		{Box: Box{X1: 2, Y1: 2, X2: 12, Y2: 12}, Score: style.ScoreThreshold},
	}, style)
	assert.Equal(t, color.RGBA{}, img.RGBAAt(2, 2), "score == threshold skipped")

	DrawDetections(img, []Detection{
		{Box: Box{X1: 2, Y1: 2, X2: 12, Y2: 12}, Score: style.ScoreThreshold + 0.01},
	}, style)
	assert.Equal(t, style.Color, img.RGBAAt(2, 2), "score above threshold drawn")
}

func TestDrawAnnotationsUsesLabelColors(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 30, 30))
	ann := Annotations{
		Boxes:  []Box{{X1: 1, Y1: 10, X2: 10, Y2: 20}, {X1: 15, Y1: 10, X2: 25, Y2: 20}},
		Labels: []int{0, 1},
	}

	DrawAnnotations(img, ann, nil, nil)

	assert.Equal(t, LabelColor(0), img.RGBAAt(1, 10))
	assert.Equal(t, LabelColor(1), img.RGBAAt(15, 10))
}

func TestCropBoxes(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	blue := color.RGBA{B: 255, A: 255}
	for x := 5; x < 10; x++ {
		for y := 5; y < 10; y++ {
			img.Set(x, y, blue)
		}
	}

	crops := CropBoxes(img, []Box{
		{X1: 5, Y1: 5, X2: 10, Y2: 10},
		{X1: -10, Y1: -10, X2: -5, Y2: -5}, // fully outside
	})
	require.Len(t, crops, 2)

	assert.Equal(t, image.Rect(0, 0, 5, 5), crops[0].Bounds())
	assert.Equal(t, blue, crops[0].(*image.RGBA).RGBAAt(0, 0))
	assert.True(t, crops[1].Bounds().Empty())
}

func TestSaveCropsGroupsByLabel(t *testing.T) {
	dir := t.TempDir()
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	ann := Annotations{
		Boxes:  []Box{{X1: 0, Y1: 0, X2: 10, Y2: 10}, {X1: 10, Y1: 10, X2: 20, Y2: 20}},
		Labels: []int{0, 1},
	}
	names := map[int]string{0: "cat", 1: "dog"}

	err := SaveCrops(dir, img, ann, func(label int) string { return names[label] })
	require.NoError(t, err)

	for _, path := range []string{
		filepath.Join(dir, "cat", "0.png"),
		filepath.Join(dir, "dog", "1.png"),
	} {
		_, err := os.Stat(path)
		assert.NoError(t, err, path)
	}
}
