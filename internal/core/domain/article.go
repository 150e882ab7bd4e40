package domain

import (
	"errors"
	"time"
)

var (
	ErrArticleNotFound = errors.New("article not found")
	ErrBlobNotFound    = errors.New("attachment not found")
	ErrUnauthorized    = errors.New("not allowed to modify this article")
	ErrUnauthenticated = errors.New("authentication required")
	ErrStorage         = errors.New("storage failure")
)

// Article is the core aggregate. AuthorID is fixed at creation and never
// changes. Deleted moves false→true exactly once; there is no restore.
type Article struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	AuthorID  string    `json:"author_id"`
	ImageRef  string    `json:"image_ref,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	Deleted   bool      `json:"-"`
}

// CanMutate is the single authorization rule for article mutations: the
// author may always mutate their own article, an admin may mutate any.
// Callers must pass the live user record, not a session snapshot, so that a
// demotion takes effect immediately.
func CanMutate(actor *User, article *Article) bool {
	if actor == nil || article == nil {
		return false
	}
	return actor.ID == article.AuthorID || actor.IsAdmin()
}

// VisibleTo reports whether a (possibly soft-deleted) article may be shown to
// the given viewer. Active articles are public; deleted ones remain visible
// only to their author and to admins.
func (a *Article) VisibleTo(viewer *User) bool {
	if !a.Deleted {
		return true
	}
	return CanMutate(viewer, a)
}
