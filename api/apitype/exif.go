package apitype

import (
	"image"
	"image/color"
	"io"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
)

// ExifData carries the orientation correction resolved from a JPEG's
// EXIF block: a counter-clockwise rotation in degrees and whether the
// image is mirrored horizontally.
type ExifData struct {
	orientation uint8
	rotation    float64
	flipped     bool
}

func NewExifData(orientation int) *ExifData {
	rotation, flipped := ExifOrientationToAngleAndFlip(orientation)
	return &ExifData{
		orientation: uint8(orientation),
		rotation:    rotation,
		flipped:     flipped,
	}
}

var noExifData = ExifData{orientation: 1, rotation: 0, flipped: false}

func NoExifData() *ExifData {
	return &noExifData
}

func (s *ExifData) Orientation() uint8 {
	return s.orientation
}

func (s *ExifData) Rotation() float64 {
	return s.rotation
}

func (s *ExifData) IsFlipped() bool {
	return s.flipped
}

func (s *ExifData) NeedsCorrection() bool {
	return s.rotation != 0 || s.flipped
}

// DecodeExifData resolves orientation from raw JPEG bytes. Missing or
// unreadable EXIF is not an error, the image is just used as decoded.
func DecodeExifData(reader io.Reader) *ExifData {
	decodedExif, err := exif.Decode(reader)
	if err != nil {
		return NoExifData()
	}

	tag, err := decodedExif.Get(exif.Orientation)
	if err != nil {
		return NoExifData()
	}

	orientation, err := tag.Int(0)
	if err != nil {
		return NoExifData()
	}
	return NewExifData(orientation)
}

const (
	noRotate  = 0
	rotate180 = 180
	left90    = 90
	right90   = 270

	noHorizontalFlip = false
	horizontalFlip   = true
)

func ExifOrientationToAngleAndFlip(orientation int) (float64, bool) {
	switch orientation {
	case 1:
		return noRotate, noHorizontalFlip
	case 2:
		return noRotate, horizontalFlip
	case 3:
		return rotate180, noHorizontalFlip
	case 4:
		return rotate180, horizontalFlip
	case 5:
		return right90, horizontalFlip
	case 6:
		return right90, noHorizontalFlip
	case 7:
		return left90, horizontalFlip
	case 8:
		return left90, noHorizontalFlip
	default:
		return noRotate, noHorizontalFlip
	}
}

func ExifRotateImage(loadedImage image.Image, rotation float64, flipped bool) image.Image {
	if rotation != 0 {
		loadedImage = imaging.Rotate(loadedImage, rotation, color.Black)
	}
	if flipped {
		return imaging.FlipH(loadedImage)
	}
	return loadedImage
}
