package imagetools

import (
	"image"
	"image/draw"

	"github.com/nfnt/resize"
)

const thumbnailSize = 120

// Thumbnail downscales to fit inside thumbnailSize x thumbnailSize,
// keeping aspect ratio. Images already small enough are returned as-is.
func Thumbnail(sourceImage image.Image) image.Image {
	bounds := sourceImage.Bounds()
	if bounds.Dx() <= thumbnailSize && bounds.Dy() <= thumbnailSize {
		return sourceImage
	}
	return resize.Thumbnail(thumbnailSize, thumbnailSize, sourceImage, resize.Lanczos3)
}

// ToRGBA converts any image to *image.RGBA with a zero origin, the
// format the GUI texture upload expects.
func ToRGBA(sourceImage image.Image) *image.RGBA {
	if rgba, ok := sourceImage.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}

	bounds := sourceImage.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), sourceImage, bounds.Min, draw.Src)
	return rgba
}
