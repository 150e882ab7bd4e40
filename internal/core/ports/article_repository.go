package ports

import (
	"context"

	"github.com/pressroom/newsdesk/internal/core/domain"
)

// ArticleUpdate carries the fields applied by Update. Title and Body always
// overwrite; ImageRef is written as given — the attachment resolver has
// already decided between a fresh reference and the retained one.
type ArticleUpdate struct {
	Title    string
	Body     string
	ImageRef string
}

// ArticleRepository defines persistence operations for articles. All
// mutations are atomic per article id: concurrent operations on the same id
// serialize, and the later-committing one wins.
type ArticleRepository interface {
	Create(ctx context.Context, a *domain.Article) (*domain.Article, error)
	FindByID(ctx context.Context, id string) (*domain.Article, error)
	// ListActive returns all non-deleted articles ordered by creation time
	// descending, ties broken by insertion order. The result is computed
	// fresh on every call.
	ListActive(ctx context.Context) ([]*domain.Article, error)
	Update(ctx context.Context, id string, upd ArticleUpdate) (*domain.Article, error)
	// SoftDelete marks the article deleted. The flag never reverts.
	SoftDelete(ctx context.Context, id string) error
	// HardPurge physically removes the record. Admin gating happens in the
	// service layer; the repository has no notion of identity.
	HardPurge(ctx context.Context, id string) error
}
