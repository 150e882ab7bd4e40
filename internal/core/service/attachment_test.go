package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/pressroom/newsdesk/internal/core/domain"
)

func TestAttachments_Resolve_NoUploadRetainsRef(t *testing.T) {
	a := NewAttachments(newStubBlobStore(), discardLogger)

	ref, err := a.Resolve(context.Background(), "existing-ref.png", nil)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if ref != "existing-ref.png" {
		t.Fatalf("existing ref must be returned unchanged, got %q", ref)
	}
}

func TestAttachments_Resolve_StoresUpload(t *testing.T) {
	blobs := newStubBlobStore()
	a := NewAttachments(blobs, discardLogger)

	ref, err := a.Resolve(context.Background(), "old.png", textUpload("new.jpeg", "bytes"))
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if ref == "" || ref == "old.png" {
		t.Fatalf("expected a fresh ref, got %q", ref)
	}
	if !strings.HasSuffix(ref, ".jpeg") {
		t.Errorf("extension must be preserved, got %q", ref)
	}
	if string(blobs.blobs[ref]) != "bytes" {
		t.Errorf("blob content mismatch for %q", ref)
	}
}

// Two uploads of the same filename must never collide.
func TestAttachments_Resolve_DistinctRefs(t *testing.T) {
	blobs := newStubBlobStore()
	a := NewAttachments(blobs, discardLogger)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		ref, err := a.Resolve(context.Background(), "", textUpload("photo.png", "x"))
		if err != nil {
			t.Fatalf("resolve failed: %v", err)
		}
		if seen[ref] {
			t.Fatalf("duplicate ref generated: %q", ref)
		}
		seen[ref] = true
	}
}

func TestAttachments_Resolve_BlobFailure(t *testing.T) {
	blobs := newStubBlobStore()
	blobs.putErr = errors.New("io error")
	a := NewAttachments(blobs, discardLogger)

	_, err := a.Resolve(context.Background(), "", textUpload("a.png", "x"))
	if !errors.Is(err, domain.ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}
}
