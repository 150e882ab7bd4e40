package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pressroom/newsdesk/internal/core/domain"
)

const collectionArticleEvents = "article_events"

// AuditRepository persists the article lifecycle audit trail.
type AuditRepository struct {
	col *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{col: db.Collection(collectionArticleEvents)}
}

type eventDoc struct {
	ID        string    `bson:"_id"`
	ArticleID string    `bson:"article_id"`
	Action    string    `bson:"action"`
	ActorID   string    `bson:"actor_id"`
	Timestamp time.Time `bson:"timestamp"`
}

func (r *AuditRepository) Insert(ctx context.Context, event *domain.ArticleEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := eventDoc{
		ID:        event.ID,
		ArticleID: event.ArticleID,
		Action:    string(event.Action),
		ActorID:   event.ActorID,
		Timestamp: event.Timestamp,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

// ListByArticle returns the audit trail for one article in the order it was
// recorded.
func (r *AuditRepository) ListByArticle(ctx context.Context, articleID string) ([]*domain.ArticleEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{"article_id": articleID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer cur.Close(ctx)

	var events []*domain.ArticleEvent
	for cur.Next(ctx) {
		var doc eventDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode audit event: %w", domain.ErrStorage)
		}
		events = append(events, &domain.ArticleEvent{
			ID:        doc.ID,
			ArticleID: doc.ArticleID,
			Action:    domain.ArticleAction(doc.Action),
			ActorID:   doc.ActorID,
			Timestamp: doc.Timestamp.UTC(),
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	return events, nil
}

// EnsureIndexes creates the article_id lookup index.
func (r *AuditRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "article_id", Value: 1}, {Key: "timestamp", Value: 1}},
	})
	return err
}
