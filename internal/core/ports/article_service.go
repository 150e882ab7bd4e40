package ports

import (
	"context"
	"io"

	"github.com/pressroom/newsdesk/internal/core/domain"
)

// FileUpload is an uploaded attachment as received by the transport layer.
// A nil *FileUpload means "no file supplied" and the existing image
// reference is retained.
type FileUpload struct {
	Filename string
	Content  io.Reader
}

// ArticleService defines the article lifecycle use cases. Mutating
// operations require a session and consult the ownership guard against the
// actor's live user record before touching the repository.
type ArticleService interface {
	Create(ctx context.Context, sess *domain.Session, title, body string, upload *FileUpload) (*domain.Article, error)
	Edit(ctx context.Context, sess *domain.Session, id, title, body string, upload *FileUpload) (*domain.Article, error)
	Delete(ctx context.Context, sess *domain.Session, id string) error
	// Purge physically removes an article. Admin only.
	Purge(ctx context.Context, sess *domain.Session, id string) error
	// Get returns the article. Soft-deleted articles are ErrArticleNotFound
	// for everyone except their author and admins; sess may be nil for
	// anonymous callers.
	Get(ctx context.Context, sess *domain.Session, id string) (*domain.Article, error)
	ListActive(ctx context.Context) ([]*domain.Article, error)
}
