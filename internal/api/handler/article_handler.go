package handler

import (
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pressroom/newsdesk/internal/core/domain"
	"github.com/pressroom/newsdesk/internal/core/ports"
)

// ArticleHandler handles HTTP requests for the article lifecycle.
type ArticleHandler struct {
	service ports.ArticleService
}

func NewArticleHandler(service ports.ArticleService) *ArticleHandler {
	return &ArticleHandler{service: service}
}

type articleResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	AuthorID  string `json:"author_id"`
	ImageURL  string `json:"image_url,omitempty"`
	CreatedAt string `json:"created_at"`
}

func toArticleResponse(a *domain.Article) articleResponse {
	resp := articleResponse{
		ID:        a.ID,
		Title:     a.Title,
		Body:      a.Body,
		AuthorID:  a.AuthorID,
		CreatedAt: a.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if a.ImageRef != "" {
		resp.ImageURL = "/uploads/" + a.ImageRef
	}
	return resp
}

// List handles GET /articles.
//
// @Summary      List active articles, newest first
// @Tags         articles
// @Produce      json
// @Success      200  {array}   articleResponse
// @Router       /articles [get]
func (h *ArticleHandler) List(c echo.Context) error {
	articles, err := h.service.ListActive(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]articleResponse, 0, len(articles))
	for _, a := range articles {
		resp = append(resp, toArticleResponse(a))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /articles/:id.
//
// @Summary      Get a single article
// @Tags         articles
// @Produce      json
// @Param        id  path      string  true  "Article id"
// @Success      200  {object}  articleResponse
// @Failure      404  {object}  map[string]string
// @Router       /articles/{id} [get]
func (h *ArticleHandler) Get(c echo.Context) error {
	article, err := h.service.Get(c.Request().Context(), ctxOptionalSession(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toArticleResponse(article))
}

// Create handles POST /articles (multipart form: title, body, optional image).
//
// @Summary      Create an article
// @Tags         articles
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        title  formData  string  true   "Title"
// @Param        body   formData  string  true   "Body text"
// @Param        image  formData  file    false  "Image attachment"
// @Success      201    {object}  articleResponse
// @Failure      400    {object}  map[string]string
// @Failure      401    {object}  map[string]string
// @Router       /articles [post]
func (h *ArticleHandler) Create(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	upload, closeUpload, err := formUpload(c)
	if err != nil {
		return err
	}
	defer closeUpload()

	article, err := h.service.Create(c.Request().Context(), sess, c.FormValue("title"), c.FormValue("body"), upload)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toArticleResponse(article))
}

// Edit handles PUT /articles/:id. Omitting the image field keeps the
// existing attachment unchanged.
//
// @Summary      Edit an article (owner or admin)
// @Tags         articles
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      string  true   "Article id"
// @Param        title  formData  string  true   "Title"
// @Param        body   formData  string  true   "Body text"
// @Param        image  formData  file    false  "Replacement image"
// @Success      200    {object}  articleResponse
// @Failure      403    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Router       /articles/{id} [put]
func (h *ArticleHandler) Edit(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	upload, closeUpload, err := formUpload(c)
	if err != nil {
		return err
	}
	defer closeUpload()

	article, err := h.service.Edit(c.Request().Context(), sess, c.Param("id"), c.FormValue("title"), c.FormValue("body"), upload)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toArticleResponse(article))
}

// Delete handles DELETE /articles/:id (soft delete).
//
// @Summary      Delete an article (owner or admin)
// @Tags         articles
// @Security     BearerAuth
// @Param        id  path  string  true  "Article id"
// @Success      204  "article deleted"
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /articles/{id} [delete]
func (h *ArticleHandler) Delete(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), sess, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Purge handles DELETE /admin/articles/:id (physical removal, admin only).
//
// @Summary      Physically remove an article
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  string  true  "Article id"
// @Success      204  "article purged"
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/articles/{id} [delete]
func (h *ArticleHandler) Purge(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	if err := h.service.Purge(c.Request().Context(), sess, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// formUpload extracts the optional "image" part of a multipart form. A
// missing file is not an error: it returns a nil upload, which downstream
// means "retain the existing reference".
func formUpload(c echo.Context) (*ports.FileUpload, func(), error) {
	fh, err := c.FormFile("image")
	if err != nil {
		// http.ErrMissingFile and multipart parse errors on forms without
		// a file part both mean "no file supplied".
		return nil, func() {}, nil
	}

	src, err := fh.Open()
	if err != nil {
		return nil, func() {}, echo.NewHTTPError(http.StatusBadRequest, "unreadable upload")
	}

	return &ports.FileUpload{Filename: fh.Filename, Content: src}, func() { closeFile(src) }, nil
}

func closeFile(f multipart.File) {
	_ = f.Close()
}
