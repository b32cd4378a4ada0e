package decoder

import (
	"image"
	_ "image/gif"  // register GIF
	_ "image/jpeg" // register JPEG
	_ "image/png"  // register PNG
	"io"
	"qrscanner/pkg/domain"
	"qrscanner/pkg/serrors"

	"github.com/go-faster/errors"
	_ "golang.org/x/image/bmp"  // register BMP
	_ "golang.org/x/image/tiff" // register TIFF
	_ "golang.org/x/image/webp" // register WebP
)

// ReadImage decodes an encoded image (PNG, JPEG, GIF, BMP, TIFF or WebP).
// Failures carry the domain.ErrImageUnreadable kind.
func ReadImage(r io.Reader) (image.Image, string, error) {
	if r == nil {
		return nil, "", serrors.With(domain.ErrImageUnreadable, "no image given")
	}

	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", serrors.Wrap(domain.ErrImageUnreadable, errors.Wrap(err, "decode image"), "could not read image")
	}

	return img, format, nil
}
