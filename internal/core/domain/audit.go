package domain

import "time"

// ArticleAction enumerates lifecycle events recorded in the audit trail.
type ArticleAction string

const (
	ActionCreated ArticleAction = "created"
	ActionEdited  ArticleAction = "edited"
	ActionDeleted ArticleAction = "deleted"
	ActionPurged  ArticleAction = "purged"
)

// ArticleEvent is a single audit trail entry for an article mutation.
type ArticleEvent struct {
	ID        string        `json:"id"`
	ArticleID string        `json:"article_id"`
	Action    ArticleAction `json:"action"`
	ActorID   string        `json:"actor_id"`
	Timestamp time.Time     `json:"timestamp"`
}
