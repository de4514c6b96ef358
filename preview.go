package main

import (
	"fmt"

	"github.com/disintegration/imaging"
)

// Computes the largest dimensions that fit into the bounding box while
// preserving the image's aspect ratio. If the image is wider than the box
// (by ratio), width is clamped to the box width; otherwise height is clamped
// to the box height.
func fitDimensions(width, height, boxWidth, boxHeight int) (int, int) {
	imgRatio := float64(width) / float64(height)
	boxRatio := float64(boxWidth) / float64(boxHeight)

	if imgRatio > boxRatio {
		return boxWidth, int(float64(boxWidth) / imgRatio)
	}
	return int(float64(boxHeight) * imgRatio), boxHeight
}

// Decodes the image at imagePath, resizes it with a Lanczos filter to fit the
// bounding box (upscaling small images like the preview box expects), and
// saves the result as a PNG to outPath.
//
// Returns the fitted width and height.
func renderPreview(imagePath string, outPath string, boxWidth, boxHeight int) (int, int, error) {
	img, err := imaging.Open(imagePath)
	if err != nil {
		return 0, 0, fmt.Errorf("error loading image: %v", err)
	}

	bounds := img.Bounds()
	width, height := fitDimensions(bounds.Dx(), bounds.Dy(), boxWidth, boxHeight)

	preview := imaging.Resize(img, width, height, imaging.Lanczos)

	if err := imaging.Save(preview, outPath); err != nil {
		return 0, 0, fmt.Errorf("error saving preview: %v", err)
	}

	return width, height, nil
}
