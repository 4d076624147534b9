package apitype

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExifOrientationToAngleAndFlip(t *testing.T) {
	a := assert.New(t)

	type expected struct {
		rotation float64
		flipped  bool
	}
	cases := map[int]expected{
		1: {0, false},
		2: {0, true},
		3: {180, false},
		4: {180, true},
		5: {270, true},
		6: {270, false},
		7: {90, true},
		8: {90, false},
		0: {0, false},
		9: {0, false},
	}

	for orientation, e := range cases {
		rotation, flipped := ExifOrientationToAngleAndFlip(orientation)
		a.Equal(e.rotation, rotation, "orientation %d", orientation)
		a.Equal(e.flipped, flipped, "orientation %d", orientation)
	}
}

func TestNewExifData(t *testing.T) {
	a := assert.New(t)

	t.Run("Unchanged orientation", func(t *testing.T) {
		exifData := NewExifData(1)
		a.False(exifData.NeedsCorrection())
	})
	t.Run("Rotated", func(t *testing.T) {
		exifData := NewExifData(6)
		a.True(exifData.NeedsCorrection())
		a.Equal(270.0, exifData.Rotation())
		a.False(exifData.IsFlipped())
	})
	t.Run("Flipped", func(t *testing.T) {
		exifData := NewExifData(2)
		a.True(exifData.NeedsCorrection())
		a.Equal(0.0, exifData.Rotation())
		a.True(exifData.IsFlipped())
	})
}

func TestExifRotateImage(t *testing.T) {
	a := assert.New(t)

	sourceImage := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	sourceImage.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})

	t.Run("No correction keeps image", func(t *testing.T) {
		rotated := ExifRotateImage(sourceImage, 0, false)
		a.Equal(sourceImage.Bounds(), rotated.Bounds())
	})
	t.Run("90 degree rotation swaps dimensions", func(t *testing.T) {
		rotated := ExifRotateImage(sourceImage, 90, false)
		a.Equal(2, rotated.Bounds().Dx())
		a.Equal(4, rotated.Bounds().Dy())
	})
	t.Run("Flip keeps dimensions", func(t *testing.T) {
		flipped := ExifRotateImage(sourceImage, 0, true)
		a.Equal(4, flipped.Bounds().Dx())
		a.Equal(2, flipped.Bounds().Dy())
	})
}
