// Package blob implements the image blob store on the local filesystem.
// References are flat filenames chosen by the caller; path traversal in a
// reference is rejected before any filesystem access.
package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pressroom/newsdesk/internal/core/domain"
)

var errBadRef = errors.New("invalid blob reference")

// FsStore stores blobs as files under a single directory.
type FsStore struct {
	dir string
}

// NewFsStore creates the backing directory if needed.
func NewFsStore(dir string) (*FsStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &FsStore{dir: dir}, nil
}

func (s *FsStore) Put(ctx context.Context, ref string, src io.Reader) error {
	path, err := s.path(ref)
	if err != nil {
		return err
	}

	// Write to a temp file and rename, so a client disconnect mid-upload
	// never leaves a half-written blob under the final name.
	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return fmt.Errorf("create temp blob: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		return fmt.Errorf("write blob: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close blob: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("commit blob: %w", err)
	}
	return nil
}

// Open returns the stored bytes for ref. A traversal attempt in the
// reference and a genuinely absent blob both come back as ErrBlobNotFound,
// so the HTTP layer answers 404 either way.
func (s *FsStore) Open(ctx context.Context, ref string) (io.ReadCloser, error) {
	path, err := s.path(ref)
	if err != nil {
		return nil, domain.ErrBlobNotFound
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrBlobNotFound
		}
		return nil, fmt.Errorf("open blob: %w", err)
	}
	return f, nil
}

func (s *FsStore) Remove(ctx context.Context, ref string) error {
	path, err := s.path(ref)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove blob: %w", err)
	}
	return nil
}

func (s *FsStore) path(ref string) (string, error) {
	if ref == "" || ref != filepath.Base(ref) || strings.HasPrefix(ref, ".") {
		return "", errBadRef
	}
	return filepath.Join(s.dir, ref), nil
}
