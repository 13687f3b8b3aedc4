// Copyright 2026 The Bayesian RetinaNet Go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package visual exposes drawing utilities for detection results and
// ground-truth annotations.
package visual

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/NatalieHanzhina/bayesian-retinanet-go/internal/visual"
)

// Box is an axis-aligned box in pixel coordinates.
type Box = visual.Box

// Detection is one predicted box with its confidence and class label.
type Detection = visual.Detection

// Annotations is the ground truth for one image.
type Annotations = visual.Annotations

// DetectionStyle controls DrawDetections.
type DetectionStyle = visual.DetectionStyle

// DefaultDetectionStyle returns the standard rendering settings
// (score threshold 0.5, per-label colors, 2px outlines).
func DefaultDetectionStyle() DetectionStyle {
	return visual.DefaultDetectionStyle()
}

// LabelColor returns the deterministic color for a class label.
func LabelColor(label int) color.RGBA {
	return visual.LabelColor(label)
}

// DrawBox draws the outline of box onto img.
func DrawBox(img draw.Image, box Box, c color.Color, thickness int) {
	visual.DrawBox(img, box, c, thickness)
}

// DrawBoxes draws every box with the same color and thickness.
func DrawBoxes(img draw.Image, boxes []Box, c color.Color, thickness int) {
	visual.DrawBoxes(img, boxes, c, thickness)
}

// DrawCaption renders text just above the box.
func DrawCaption(img draw.Image, box Box, caption string) {
	visual.DrawCaption(img, box, caption)
}

// DrawDetections renders each detection above the style's score threshold.
func DrawDetections(img draw.Image, detections []Detection, style DetectionStyle) {
	visual.DrawDetections(img, detections, style)
}

// DrawAnnotations renders ground-truth boxes.
func DrawAnnotations(img draw.Image, ann Annotations, c color.Color, labelName func(label int) string) {
	visual.DrawAnnotations(img, ann, c, labelName)
}

// CropBoxes cuts each box out of img, clipped to the image bounds.
func CropBoxes(img image.Image, boxes []Box) []image.Image {
	return visual.CropBoxes(img, boxes)
}

// SaveCrops writes every annotated box as a PNG under dir, grouped into one
// subdirectory per label name.
func SaveCrops(dir string, img image.Image, ann Annotations, labelName func(label int) string) error {
	return visual.SaveCrops(dir, img, ann, labelName)
}
