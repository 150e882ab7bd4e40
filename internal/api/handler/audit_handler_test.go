package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pressroom/newsdesk/internal/core/domain"
)

type stubAuditQuery struct {
	listFn func(ctx context.Context, articleID string) ([]*domain.ArticleEvent, error)
}

func (s *stubAuditQuery) ListByArticle(ctx context.Context, articleID string) ([]*domain.ArticleEvent, error) {
	return s.listFn(ctx, articleID)
}

func TestAuditHandler_Events(t *testing.T) {
	e := newTestEcho()
	now := time.Now().UTC()
	stub := &stubAuditQuery{
		listFn: func(ctx context.Context, articleID string) ([]*domain.ArticleEvent, error) {
			if articleID != "a1" {
				t.Fatalf("unexpected article id %q", articleID)
			}
			return []*domain.ArticleEvent{
				{ID: "e1", ArticleID: "a1", Action: domain.ActionCreated, ActorID: "u1", Timestamp: now},
				{ID: "e2", ArticleID: "a1", Action: domain.ActionPurged, ActorID: "root", Timestamp: now.Add(time.Minute)},
			}, nil
		},
	}
	handler := NewAuditHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/admin/articles/a1/events", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("a1")

	if err := handler.Events(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []auditEventResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 events, got %d", len(resp))
	}
	if resp[0].Action != string(domain.ActionCreated) || resp[1].Action != string(domain.ActionPurged) {
		t.Fatalf("events out of order: %+v", resp)
	}
	if resp[1].ActorID != "root" {
		t.Fatalf("unexpected actor: %+v", resp[1])
	}
}

func TestAuditHandler_Events_EmptyTrail(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuditQuery{
		listFn: func(ctx context.Context, articleID string) ([]*domain.ArticleEvent, error) {
			return nil, nil
		},
	}
	handler := NewAuditHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/admin/articles/gone/events", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("gone")

	if err := handler.Events(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got := rec.Body.String(); got != "[]\n" {
		t.Fatalf("expected empty json array, got %q", got)
	}
}

func TestAuditHandler_Events_PropagatesError(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuditQuery{
		listFn: func(ctx context.Context, articleID string) ([]*domain.ArticleEvent, error) {
			return nil, domain.ErrStorage
		},
	}
	handler := NewAuditHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/admin/articles/a1/events", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("a1")

	err := handler.Events(c)
	if !errors.Is(err, domain.ErrStorage) {
		t.Fatalf("expected ErrStorage to propagate, got %v", err)
	}
}
