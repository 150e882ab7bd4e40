package handler

import (
	"mime"
	"net/http"
	"path/filepath"

	"github.com/labstack/echo/v4"

	"github.com/pressroom/newsdesk/internal/core/ports"
)

// UploadHandler serves stored image blobs. Going through the blob store
// instead of a static file route keeps the reference validation (no
// traversal, no dotfiles) on the only read path.
type UploadHandler struct {
	blobs ports.BlobStore
}

func NewUploadHandler(blobs ports.BlobStore) *UploadHandler {
	return &UploadHandler{blobs: blobs}
}

// Serve handles GET /uploads/:ref.
//
// @Summary      Fetch a stored image
// @Tags         uploads
// @Param        ref  path  string  true  "Image reference"
// @Success      200  {file}  binary
// @Failure      404  {object}  map[string]string
// @Router       /uploads/{ref} [get]
func (h *UploadHandler) Serve(c echo.Context) error {
	ref := c.Param("ref")

	blob, err := h.blobs.Open(c.Request().Context(), ref)
	if err != nil {
		return err
	}
	defer blob.Close()

	contentType := mime.TypeByExtension(filepath.Ext(ref))
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	return c.Stream(http.StatusOK, contentType, blob)
}
