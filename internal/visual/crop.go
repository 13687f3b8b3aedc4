package visual

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
)

// CropBoxes cuts each box out of img. Boxes are clipped to the image
// bounds; a box fully outside yields an empty crop.
func CropBoxes(img image.Image, boxes []Box) []image.Image {
	crops := make([]image.Image, 0, len(boxes))
	for _, box := range boxes {
		r := box.Rect().Intersect(img.Bounds())
		crop := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
		draw.Draw(crop, crop.Bounds(), img, r.Min, draw.Src)
		crops = append(crops, crop)
	}
	return crops
}

// SaveCrops crops every annotated box out of img and writes each crop as a
// PNG under dir, grouped into one subdirectory per label name. Files are
// numbered in annotation order: <dir>/<label>/<index>.png.
func SaveCrops(dir string, img image.Image, ann Annotations, labelName func(label int) string) error {
	crops := CropBoxes(img, ann.Boxes)
	for i, crop := range crops {
		name := labelName(ann.Labels[i])
		subdir := filepath.Join(dir, name)
		if err := os.MkdirAll(subdir, 0o755); err != nil {
			return fmt.Errorf("save crops: %w", err)
		}

		path := filepath.Join(subdir, fmt.Sprintf("%d.png", i))
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("save crops: %w", err)
		}
		if err := png.Encode(f, crop); err != nil {
			f.Close()
			return fmt.Errorf("save crops: encode %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("save crops: %w", err)
		}
	}
	return nil
}
