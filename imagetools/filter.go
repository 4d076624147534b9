package imagetools

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/anthonynsimon/bild/parallel"
)

// ApplyTint multiplies every pixel with the filter color, alpha
// included. Alpha is the overall opacity in [0, 1]; values outside the
// range are clamped. A nil filter with alpha 1 returns the input as-is.
// The multiply happens in straight-alpha space so fading does not
// darken colors.
func ApplyTint(sourceImage image.Image, filter *color.NRGBA, alpha float32) image.Image {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	if filter == nil && alpha == 1 {
		return sourceImage
	}

	factors := [4]float32{1, 1, 1, alpha}
	if filter != nil {
		factors[0] = float32(filter.R) / 255.0
		factors[1] = float32(filter.G) / 255.0
		factors[2] = float32(filter.B) / 255.0
		factors[3] = alpha * float32(filter.A) / 255.0
	}

	bounds := sourceImage.Bounds()
	tinted := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(tinted, tinted.Bounds(), sourceImage, bounds.Min, draw.Src)

	parallel.Line(tinted.Rect.Dy(), func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < tinted.Rect.Dx(); x++ {
				offset := tinted.PixOffset(x, y)
				pixel := tinted.Pix[offset : offset+4 : offset+4]

				pixel[0] = uint8(float32(pixel[0]) * factors[0])
				pixel[1] = uint8(float32(pixel[1]) * factors[1])
				pixel[2] = uint8(float32(pixel[2]) * factors[2])
				pixel[3] = uint8(float32(pixel[3]) * factors[3])
			}
		}
	})
	return tinted
}
