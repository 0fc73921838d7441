package photoimage

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"strings"
	"unicode"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

const (
	ThumbnailWidth  = 100
	ThumbnailHeight = 100
	JPEGQuality     = 85
)

var (
	ErrEmptyImageData = fmt.Errorf("image data is empty")
)

/*
DecodeDataURI returns the bytes of a data URI such as
"data:image/png;base64,iVBOR...". Everything through the first comma is
discarded. A string without a comma is treated as bare Base64.
*/
func DecodeDataURI(dataURI string) ([]byte, error) {
	var (
		err  error
		data []byte
	)

	encoded := dataURI[strings.Index(dataURI, ",")+1:]
	encoded = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, encoded)

	if encoded == "" {
		return nil, ErrEmptyImageData
	}

	if data, err = base64.StdEncoding.DecodeString(encoded); err == nil {
		return data, nil
	}

	if data, rawErr := base64.RawStdEncoding.DecodeString(encoded); rawErr == nil {
		return data, nil
	}

	return nil, fmt.Errorf("error decoding base64 image data: %w", err)
}

func DecodeImage(data []byte) (image.Image, error) {
	var (
		err error
		img image.Image
	)

	if len(data) == 0 {
		return nil, ErrEmptyImageData
	}

	if img, err = imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true)); err != nil {
		return nil, fmt.Errorf("error decoding image: %w", err)
	}

	return img, nil
}

/*
ExtractThumbnail scales the image so it covers width x height, then crops the
center. The result is always exactly width x height. A nil or empty image
returns nil.
*/
func ExtractThumbnail(img image.Image, width, height int) image.Image {
	if img == nil || img.Bounds().Empty() || width <= 0 || height <= 0 {
		return nil
	}

	return imaging.Fill(img, width, height, imaging.Center, imaging.Lanczos)
}

// ScaleToMaxEdge shrinks the image so its longest edge is maxSize. Smaller images are returned as-is.
func ScaleToMaxEdge(img image.Image, maxSize uint) image.Image {
	if img == nil {
		return nil
	}

	bounds := img.Bounds()
	width := uint(bounds.Dx())
	height := uint(bounds.Dy())

	if maxSize == 0 || (width <= maxSize && height <= maxSize) {
		return img
	}

	var newWidth, newHeight uint

	if width > height {
		newWidth = maxSize
		newHeight = uint(float64(height) * (float64(maxSize) / float64(width)))
	} else {
		newHeight = maxSize
		newWidth = uint(float64(width) * (float64(maxSize) / float64(height)))
	}

	return resize.Resize(newWidth, newHeight, img, resize.Lanczos3)
}

func EncodeJPEG(img image.Image) ([]byte, error) {
	var (
		err error
		buf bytes.Buffer
	)

	if img == nil {
		return nil, ErrEmptyImageData
	}

	if err = imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(JPEGQuality)); err != nil {
		return nil, fmt.Errorf("error encoding jpeg: %w", err)
	}

	return buf.Bytes(), nil
}

// EncodeDataURI renders the image as a JPEG data URI suitable for an <img> src.
func EncodeDataURI(img image.Image) (string, error) {
	var (
		err  error
		data []byte
	)

	if data, err = EncodeJPEG(img); err != nil {
		return "", err
	}

	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(data), nil
}
