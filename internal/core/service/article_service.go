package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/pressroom/newsdesk/internal/core/domain"
	"github.com/pressroom/newsdesk/internal/core/ports"
	"github.com/pressroom/newsdesk/internal/metrics"
)

// ArticleService orchestrates the article lifecycle. It holds no state of
// its own: identity comes from the session argument, records live in the
// repositories. Every mutation consults the ownership guard against the
// actor's live user record before the repository is touched, so a failed
// check leaves all stores unchanged.
type ArticleService struct {
	articles    ports.ArticleRepository
	users       ports.UserRepository
	attachments *Attachments
	audit       ports.AuditSink
	logger      zerolog.Logger
}

func NewArticleService(articles ports.ArticleRepository, users ports.UserRepository, attachments *Attachments, audit ports.AuditSink, logger zerolog.Logger) *ArticleService {
	return &ArticleService{
		articles:    articles,
		users:       users,
		attachments: attachments,
		audit:       audit,
		logger:      logger,
	}
}

// Create authors a new article owned by the session's user.
func (s *ArticleService) Create(ctx context.Context, sess *domain.Session, title, body string, upload *ports.FileUpload) (*domain.Article, error) {
	if sess == nil {
		return nil, domain.ErrUnauthenticated
	}
	if title == "" || body == "" {
		return nil, domain.ErrValidation
	}

	imageRef, err := s.attachments.Resolve(ctx, "", upload)
	if err != nil {
		return nil, err
	}

	article := &domain.Article{
		Title:     title,
		Body:      body,
		AuthorID:  sess.UserID,
		ImageRef:  imageRef,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.articles.Create(ctx, article)
	if err != nil {
		s.logger.Error().Err(err).Msg("article create failed")
		return nil, err
	}

	metrics.ArticlesCreatedTotal.Inc()
	s.record(created.ID, domain.ActionCreated, sess.UserID)
	s.logger.Info().Str("article_id", created.ID).Str("author_id", sess.UserID).Msg("article created")
	return created, nil
}

// Edit overwrites title and body and, only when a new file is supplied,
// the image reference. Owner or admin only.
func (s *ArticleService) Edit(ctx context.Context, sess *domain.Session, id, title, body string, upload *ports.FileUpload) (*domain.Article, error) {
	if sess == nil {
		return nil, domain.ErrUnauthenticated
	}
	if title == "" || body == "" {
		return nil, domain.ErrValidation
	}

	article, err := s.guardMutation(ctx, sess, id)
	if err != nil {
		return nil, err
	}

	imageRef, err := s.attachments.Resolve(ctx, article.ImageRef, upload)
	if err != nil {
		return nil, err
	}

	updated, err := s.articles.Update(ctx, id, ports.ArticleUpdate{
		Title:    title,
		Body:     body,
		ImageRef: imageRef,
	})
	if err != nil {
		return nil, err
	}

	s.record(id, domain.ActionEdited, sess.UserID)
	s.logger.Info().Str("article_id", id).Str("actor_id", sess.UserID).Msg("article edited")
	return updated, nil
}

// Delete marks the article deleted. The flag never reverts; there is no
// restore operation.
func (s *ArticleService) Delete(ctx context.Context, sess *domain.Session, id string) error {
	if sess == nil {
		return domain.ErrUnauthenticated
	}

	if _, err := s.guardMutation(ctx, sess, id); err != nil {
		return err
	}

	if err := s.articles.SoftDelete(ctx, id); err != nil {
		return err
	}

	metrics.ArticlesDeletedTotal.WithLabelValues("soft").Inc()
	s.record(id, domain.ActionDeleted, sess.UserID)
	s.logger.Info().Str("article_id", id).Str("actor_id", sess.UserID).Msg("article deleted")
	return nil
}

// Purge physically removes the record. Kept separate from Delete so that
// irreversible data loss requires a second, admin-gated action.
func (s *ArticleService) Purge(ctx context.Context, sess *domain.Session, id string) error {
	if sess == nil {
		return domain.ErrUnauthenticated
	}

	actor, err := s.users.FindByID(ctx, sess.UserID)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return domain.ErrUnauthorized
	}

	if err := s.articles.HardPurge(ctx, id); err != nil {
		return err
	}

	metrics.ArticlesDeletedTotal.WithLabelValues("purge").Inc()
	s.record(id, domain.ActionPurged, sess.UserID)
	s.logger.Info().Str("article_id", id).Str("actor_id", sess.UserID).Msg("article purged")
	return nil
}

// Get returns the article. Soft-deleted articles stay visible to their
// author and to admins; everyone else gets ErrArticleNotFound.
func (s *ArticleService) Get(ctx context.Context, sess *domain.Session, id string) (*domain.Article, error) {
	article, err := s.articles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var viewer *domain.User
	if sess != nil {
		viewer, err = s.users.FindByID(ctx, sess.UserID)
		if err != nil {
			// A session pointing at a since-purged account degrades to an
			// anonymous view; any other failure must surface, not 404.
			if !errors.Is(err, domain.ErrUserNotFound) {
				return nil, err
			}
			viewer = nil
		}
	}
	if !article.VisibleTo(viewer) {
		return nil, domain.ErrArticleNotFound
	}
	return article, nil
}

// ListActive returns all non-deleted articles, newest first.
func (s *ArticleService) ListActive(ctx context.Context) ([]*domain.Article, error) {
	return s.articles.ListActive(ctx)
}

// guardMutation loads the target article and checks the ownership rule
// against the actor's live user record, so a demotion or promotion takes
// effect immediately regardless of the session snapshot.
func (s *ArticleService) guardMutation(ctx context.Context, sess *domain.Session, id string) (*domain.Article, error) {
	article, err := s.articles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	actor, err := s.users.FindByID(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}

	if !domain.CanMutate(actor, article) {
		return nil, domain.ErrUnauthorized
	}
	return article, nil
}

// record hands the event to the audit sink; failures there never affect the
// request path.
func (s *ArticleService) record(articleID string, action domain.ArticleAction, actorID string) {
	if s.audit == nil {
		return
	}
	s.audit.Enqueue(ports.ArticleEventInput{
		ArticleID: articleID,
		Action:    action,
		ActorID:   actorID,
		Timestamp: time.Now().UTC(),
	})
}
