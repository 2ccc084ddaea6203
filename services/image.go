package services

import (
	"bytes"
	"image/jpeg"
	"io"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

const (
	maxImageWidth    = 1280
	jpegQuality      = 30
	imageContentType = "image/jpeg"
)

// CompressImage re-encodes an uploaded photo as a small JPEG. Phone cameras
// produce multi-megabyte files; complaints only need enough detail to locate
// a pile of waste, so quality is cut aggressively.
func CompressImage(r io.Reader) (*bytes.Buffer, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, errors.Wrap(err, "decoding image")
	}
	if img.Bounds().Dx() > maxImageWidth {
		img = resize.Resize(maxImageWidth, 0, img, resize.Lanczos3)
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, errors.Wrap(err, "encoding jpeg")
	}
	return &buf, nil
}
