package blob

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/pressroom/newsdesk/internal/core/domain"
)

func TestFsStore_PutOpenRoundTrip(t *testing.T) {
	store, err := NewFsStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if err := store.Put(context.Background(), "img-1.png", strings.NewReader("png-bytes")); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	r, err := store.Open(context.Background(), "img-1.png")
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer r.Close()

	data, _ := io.ReadAll(r)
	if string(data) != "png-bytes" {
		t.Fatalf("content mismatch: %q", data)
	}
}

func TestFsStore_RejectsTraversalRefs(t *testing.T) {
	store, err := NewFsStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	for _, ref := range []string{"", "../escape.png", "a/b.png", ".hidden"} {
		if err := store.Put(context.Background(), ref, strings.NewReader("x")); err == nil {
			t.Errorf("ref %q must be rejected", ref)
		}
		if _, err := store.Open(context.Background(), ref); !errors.Is(err, domain.ErrBlobNotFound) {
			t.Errorf("open %q: expected ErrBlobNotFound, got %v", ref, err)
		}
	}
}

func TestFsStore_OpenMissing(t *testing.T) {
	store, err := NewFsStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if _, err := store.Open(context.Background(), "never-stored.png"); !errors.Is(err, domain.ErrBlobNotFound) {
		t.Fatalf("expected ErrBlobNotFound, got %v", err)
	}
}

func TestFsStore_RemoveIdempotent(t *testing.T) {
	store, err := NewFsStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	_ = store.Put(context.Background(), "img.png", strings.NewReader("x"))

	if err := store.Remove(context.Background(), "img.png"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if err := store.Remove(context.Background(), "img.png"); err != nil {
		t.Fatalf("second remove must succeed, got %v", err)
	}
	if _, err := store.Open(context.Background(), "img.png"); !errors.Is(err, domain.ErrBlobNotFound) {
		t.Fatalf("removed blob must be ErrBlobNotFound, got %v", err)
	}
}
