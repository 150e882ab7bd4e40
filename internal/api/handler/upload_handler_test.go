package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/pressroom/newsdesk/internal/core/domain"
)

type stubBlobStore struct {
	blobs map[string]string
}

func (s *stubBlobStore) Put(_ context.Context, ref string, src io.Reader) error {
	data, err := io.ReadAll(src)
	if err != nil {
		return err
	}
	s.blobs[ref] = string(data)
	return nil
}

func (s *stubBlobStore) Open(_ context.Context, ref string) (io.ReadCloser, error) {
	data, ok := s.blobs[ref]
	if !ok {
		return nil, domain.ErrBlobNotFound
	}
	return io.NopCloser(strings.NewReader(data)), nil
}

func (s *stubBlobStore) Remove(_ context.Context, ref string) error {
	delete(s.blobs, ref)
	return nil
}

func TestUploadHandler_Serve(t *testing.T) {
	e := newTestEcho()
	store := &stubBlobStore{blobs: map[string]string{"img-1.png": "png-bytes"}}
	handler := NewUploadHandler(store)

	req := httptest.NewRequest(http.MethodGet, "/uploads/img-1.png", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("ref")
	c.SetParamValues("img-1.png")

	if err := handler.Serve(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Body.String(); got != "png-bytes" {
		t.Fatalf("unexpected body %q", got)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); ct != "image/png" {
		t.Fatalf("expected image/png, got %q", ct)
	}
}

func TestUploadHandler_Serve_UnknownExtension(t *testing.T) {
	e := newTestEcho()
	store := &stubBlobStore{blobs: map[string]string{"raw-ref": "bytes"}}
	handler := NewUploadHandler(store)

	req := httptest.NewRequest(http.MethodGet, "/uploads/raw-ref", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("ref")
	c.SetParamValues("raw-ref")

	if err := handler.Serve(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); ct != echo.MIMEOctetStream {
		t.Fatalf("expected octet-stream fallback, got %q", ct)
	}
}

func TestUploadHandler_Serve_Missing(t *testing.T) {
	e := newTestEcho()
	handler := NewUploadHandler(&stubBlobStore{blobs: map[string]string{}})

	req := httptest.NewRequest(http.MethodGet, "/uploads/missing.png", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("ref")
	c.SetParamValues("missing.png")

	err := handler.Serve(c)
	if !errors.Is(err, domain.ErrBlobNotFound) {
		t.Fatalf("expected ErrBlobNotFound to propagate, got %v", err)
	}
}
