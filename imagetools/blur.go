package imagetools

import (
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/anthonynsimon/bild/blur"

	"vincit.fi/async-image/common/logger"
)

const (
	MinBlurRadius = 0
	MaxBlurRadius = 25
)

var ErrRadiusOutOfRange = errors.New("blur radius out of range")

// Blur applies a single-pass Gaussian blur and returns a new image of
// the same size. The input is never mutated. Radius 0 bypasses the blur
// entirely; radius outside [0, 25] is a precondition violation.
func Blur(sourceImage image.Image, radius int) (image.Image, error) {
	if radius < MinBlurRadius || radius > MaxBlurRadius {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]",
			ErrRadiusOutOfRange, radius, MinBlurRadius, MaxBlurRadius)
	}
	if radius == MinBlurRadius {
		return sourceImage, nil
	}

	startTime := time.Now()
	blurredImage := blur.Gaussian(sourceImage, float64(radius))
	if logger.IsLogLevel(logger.TRACE) {
		logger.Trace.Printf("Blurred %d x %d with radius %d in %s",
			sourceImage.Bounds().Dx(), sourceImage.Bounds().Dy(), radius, time.Since(startTime))
	}
	return blurredImage, nil
}
