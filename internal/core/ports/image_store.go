package ports

import (
	"context"
	"io"
)

// ImageStore persists uploaded images and returns the public URL they are
// served from. Implementations reject anything that is not a jpg/jpeg/png
// with domain.ErrUnsupportedImage.
type ImageStore interface {
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
}
