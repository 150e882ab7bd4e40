package ports

import (
	"context"
	"io"
)

// BlobStore persists raw uploaded bytes and serves them back by reference.
// The reference is an opaque string chosen by the caller (the attachment
// resolver generates collision-resistant names).
type BlobStore interface {
	Put(ctx context.Context, ref string, src io.Reader) error
	Open(ctx context.Context, ref string) (io.ReadCloser, error)
	Remove(ctx context.Context, ref string) error
}
