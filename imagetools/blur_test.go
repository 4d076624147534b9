package imagetools

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func checkerboard(width int, height int) *image.RGBA {
	checkered := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if (x+y)%2 == 0 {
				checkered.SetRGBA(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
			} else {
				checkered.SetRGBA(x, y, color.RGBA{A: 255})
			}
		}
	}
	return checkered
}

func TestBlur_RadiusOutOfRange(t *testing.T) {
	a := assert.New(t)

	sourceImage := checkerboard(8, 8)

	for _, radius := range []int{-1, -100, 26, 1000} {
		blurred, err := Blur(sourceImage, radius)
		a.Nil(blurred, "radius %d", radius)
		a.ErrorIs(err, ErrRadiusOutOfRange, "radius %d", radius)
	}
}

func TestBlur_ZeroRadiusBypasses(t *testing.T) {
	a := assert.New(t)

	sourceImage := checkerboard(8, 8)
	blurred, err := Blur(sourceImage, 0)

	a.Nil(err)
	a.Same(sourceImage, blurred)
}

func TestBlur_ProducesNewSameSizeImage(t *testing.T) {
	a := assert.New(t)

	sourceImage := checkerboard(16, 8)
	blurred, err := Blur(sourceImage, 5)

	a.Nil(err)
	a.NotNil(blurred)
	a.NotSame(sourceImage, blurred)
	a.Equal(16, blurred.Bounds().Dx())
	a.Equal(8, blurred.Bounds().Dy())
}

func TestBlur_SmoothsPixels(t *testing.T) {
	a := assert.New(t)

	sourceImage := checkerboard(16, 16)
	blurred, err := Blur(sourceImage, 25)
	a.Nil(err)

	// A strongly blurred checkerboard converges towards the mean, so no
	// pixel should stay at either extreme.
	r, _, _, _ := blurred.At(8, 8).RGBA()
	a.Greater(int(r>>8), 32)
	a.Less(int(r>>8), 224)
}

func TestBlur_DoesNotMutateInput(t *testing.T) {
	a := assert.New(t)

	sourceImage := checkerboard(8, 8)
	original := checkerboard(8, 8)

	_, err := Blur(sourceImage, 10)
	a.Nil(err)
	a.Equal(original.Pix, sourceImage.Pix)
}
