package contract

import (
	"context"
	"io"
)

// IImageStorage stores an uploaded image and returns a public URI for it.
// Format and size policy is enforced at the HTTP boundary before Upload is
// called.
type IImageStorage interface {
	Upload(ctx context.Context, filename, contentType string, size int64, r io.Reader) (string, error)
}
