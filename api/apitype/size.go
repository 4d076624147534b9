package apitype

import (
	"image"
)

type Size struct {
	width  int
	height int
}

func SizeOf(width int, height int) Size {
	return Size{width, height}
}

func SizeFromRectangle(rectangle image.Rectangle) Size {
	return Size{
		width:  rectangle.Dx(),
		height: rectangle.Dy(),
	}
}

func (s Size) Width() int {
	return s.width
}

func (s Size) Height() int {
	return s.height
}

func (s Size) Ratio() float32 {
	if s.height == 0 {
		return 0
	}
	return float32(s.width) / float32(s.height)
}

// FitTo returns the largest size with this aspect ratio that fits
// inside the target.
func (s Size) FitTo(target Size) Size {
	width, height := ScaleToFit(s.width, s.height, target.width, target.height)
	return Size{width, height}
}

// FillTo returns the smallest size with this aspect ratio that covers
// the whole target.
func (s Size) FillTo(target Size) Size {
	width, height := ScaleToFill(s.width, s.height, target.width, target.height)
	return Size{width, height}
}

// ScaleToFit returns the largest size with the source's aspect ratio
// that fits inside the target.
func ScaleToFit(sourceWidth int, sourceHeight int, targetWidth int, targetHeight int) (int, int) {
	ratio := float32(sourceWidth) / float32(sourceHeight)
	newWidth := int(float32(targetHeight) * ratio)
	newHeight := targetHeight

	if newWidth > targetWidth {
		newWidth = targetWidth
		newHeight = int(float32(targetWidth) / ratio)
	}
	return newWidth, newHeight
}

// ScaleToFill returns the smallest size with the source's aspect ratio
// that covers the whole target.
func ScaleToFill(sourceWidth int, sourceHeight int, targetWidth int, targetHeight int) (int, int) {
	ratio := float32(sourceWidth) / float32(sourceHeight)
	newWidth := int(float32(targetHeight) * ratio)
	newHeight := targetHeight

	if newWidth < targetWidth {
		newWidth = targetWidth
		newHeight = int(float32(targetWidth) / ratio)
	}
	return newWidth, newHeight
}
