package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pressroom/newsdesk/internal/core/domain"
	"github.com/pressroom/newsdesk/internal/core/ports"
	"github.com/pressroom/newsdesk/internal/metrics"
)

// AuditService persists article lifecycle events and serves the recorded
// trail back to admin callers.
type AuditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) *AuditService {
	return &AuditService{repo: repo, log: log}
}

// Process validates and persists a single audit event.
func (s *AuditService) Process(ctx context.Context, in ports.ArticleEventInput) error {
	if in.ArticleID == "" || in.Action == "" {
		return fmt.Errorf("audit event: %w", domain.ErrValidation)
	}

	ts := in.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	event := &domain.ArticleEvent{
		ID:        uuid.NewString(),
		ArticleID: in.ArticleID,
		Action:    in.Action,
		ActorID:   in.ActorID,
		Timestamp: ts,
	}

	if err := s.repo.Insert(ctx, event); err != nil {
		metrics.AuditErrorsTotal.WithLabelValues("insert_failed").Inc()
		return fmt.Errorf("audit event: %w", err)
	}

	metrics.AuditProcessedTotal.WithLabelValues(string(in.Action)).Inc()
	s.log.Debug().
		Str("article_id", in.ArticleID).
		Str("action", string(in.Action)).
		Str("actor_id", in.ActorID).
		Msg("audit event recorded")

	return nil
}

// ListByArticle returns the recorded trail for one article, oldest first. No
// existence check against the articles collection: a purged article keeps
// its trail, which is the point of keeping one.
func (s *AuditService) ListByArticle(ctx context.Context, articleID string) ([]*domain.ArticleEvent, error) {
	if articleID == "" {
		return nil, domain.ErrValidation
	}
	return s.repo.ListByArticle(ctx, articleID)
}
