package ports

import (
	"context"
	"time"

	"github.com/pressroom/newsdesk/internal/core/domain"
)

// ArticleEventInput is the DTO handed from the service layer to the audit
// pipeline.
type ArticleEventInput struct {
	ArticleID string
	Action    domain.ArticleAction
	ActorID   string
	Timestamp time.Time
}

// AuditService records article lifecycle events.
type AuditService interface {
	Process(ctx context.Context, event ArticleEventInput) error
}

// AuditQuery reads back the recorded trail. Kept separate from AuditService
// so the dispatcher workers depend only on the write side.
type AuditQuery interface {
	// ListByArticle returns the trail in recording order. An article with no
	// recorded events yields an empty trail, not an error: purged articles
	// keep theirs.
	ListByArticle(ctx context.Context, articleID string) ([]*domain.ArticleEvent, error)
}

// AuditRepository persists audit trail entries.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.ArticleEvent) error
	ListByArticle(ctx context.Context, articleID string) ([]*domain.ArticleEvent, error)
}

// AuditSink is where services hand off events without blocking the request
// path. The queue dispatcher implements it.
type AuditSink interface {
	Enqueue(event ArticleEventInput)
}
