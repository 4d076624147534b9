package loader

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"time"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
	"github.com/pixiv/go-libjpeg/jpeg"

	_ "golang.org/x/image/webp"

	"vincit.fi/async-image/api/apitype"
	"vincit.fi/async-image/common/logger"
)

var jpegOptions = &jpeg.DecoderOptions{}

// decodeBytes sniffs the content type and decodes the raw bytes into an
// image. JPEG takes the libjpeg fast path with EXIF orientation
// correction; everything else goes through the registered stdlib and
// x/image decoders.
func decodeBytes(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("no data to decode")
	}

	startTime := time.Now()
	contentType := mimetype.Detect(data)

	var decodedImage image.Image
	var err error
	if contentType.Is("image/jpeg") {
		decodedImage, err = decodeJpeg(data)
	} else {
		decodedImage, err = imaging.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", contentType.String(), err)
	}
	if decodedImage == nil {
		return nil, fmt.Errorf("decode %s: decoder produced no image", contentType.String())
	}

	if logger.IsLogLevel(logger.TRACE) {
		logger.Trace.Printf("Decoded %d bytes of %s in %s",
			len(data), contentType.String(), time.Since(startTime))
	}
	return decodedImage, nil
}

func decodeJpeg(data []byte) (image.Image, error) {
	exifData := apitype.DecodeExifData(bytes.NewReader(data))

	decodedImage, err := jpeg.Decode(bytes.NewReader(data), jpegOptions)
	if err != nil {
		return nil, err
	}

	if exifData.NeedsCorrection() {
		return apitype.ExifRotateImage(decodedImage, exifData.Rotation(), exifData.IsFlipped()), nil
	}
	return decodedImage, nil
}

func decodeReader(reader io.Reader) (image.Image, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	return decodeBytes(data)
}
