package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pressroom/newsdesk/internal/core/domain"
	"github.com/pressroom/newsdesk/internal/core/ports"
	"github.com/pressroom/newsdesk/internal/metrics"
)

// Attachments turns an optional uploaded file into a stable image reference.
// References are UUID-derived, never timestamps: concurrent uploads cannot
// collide.
type Attachments struct {
	blobs  ports.BlobStore
	logger zerolog.Logger
}

func NewAttachments(blobs ports.BlobStore, logger zerolog.Logger) *Attachments {
	return &Attachments{blobs: blobs, logger: logger}
}

// Resolve stores the upload and returns its new reference. When no file is
// supplied the existing reference is returned unchanged, byte for byte. A
// blob store failure surfaces as ErrStorage before any repository write.
func (a *Attachments) Resolve(ctx context.Context, existingRef string, upload *ports.FileUpload) (string, error) {
	if upload == nil {
		return existingRef, nil
	}

	ref := newImageRef(upload.Filename)
	if err := a.blobs.Put(ctx, ref, upload.Content); err != nil {
		a.logger.Error().Err(err).Str("ref", ref).Msg("blob store write failed")
		return "", fmt.Errorf("%w: storing attachment", domain.ErrStorage)
	}

	metrics.UploadsStoredTotal.Inc()
	return ref, nil
}

// newImageRef builds a collision-resistant reference, keeping the original
// extension so the blob can be served with a sensible content type.
func newImageRef(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return uuid.NewString() + ext
}
