package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pressroom/newsdesk/internal/core/domain"
	"github.com/pressroom/newsdesk/internal/core/ports"
)

const collectionArticles = "articles"

// ArticleRepository persists articles. Mutations operate on single
// documents, so MongoDB serializes concurrent writes per article id:
// an edit racing a delete resolves deterministically and the deleted flag,
// once set, is never written back to false by any operation here.
type ArticleRepository struct {
	col *mongo.Collection
}

func NewArticleRepository(db *mongo.Database) *ArticleRepository {
	return &ArticleRepository{col: db.Collection(collectionArticles)}
}

type articleDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Body      string             `bson:"body"`
	AuthorID  string             `bson:"author_id"`
	ImageRef  string             `bson:"image_ref,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
	Deleted   bool               `bson:"deleted"`
}

func (d *articleDoc) toDomain() *domain.Article {
	return &domain.Article{
		ID:        d.ID.Hex(),
		Title:     d.Title,
		Body:      d.Body,
		AuthorID:  d.AuthorID,
		ImageRef:  d.ImageRef,
		CreatedAt: d.CreatedAt.UTC(),
		Deleted:   d.Deleted,
	}
}

func (r *ArticleRepository) Create(ctx context.Context, a *domain.Article) (*domain.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if a.Title == "" || a.Body == "" {
		return nil, domain.ErrValidation
	}

	doc := articleDoc{
		Title:     a.Title,
		Body:      a.Body,
		AuthorID:  a.AuthorID,
		ImageRef:  a.ImageRef,
		CreatedAt: a.CreatedAt,
		Deleted:   false,
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert article: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("insert article: %w", domain.ErrStorage)
	}
	doc.ID = id
	return doc.toDomain(), nil
}

func (r *ArticleRepository) FindByID(ctx context.Context, id string) (*domain.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrArticleNotFound
	}

	var doc articleDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrArticleNotFound
		}
		return nil, fmt.Errorf("find article: %w", err)
	}
	return doc.toDomain(), nil
}

// ListActive returns every non-deleted article ordered by creation time
// descending. ObjectIDs grow monotonically, so ascending _id breaks
// created_at ties in insertion order.
func (r *ArticleRepository) ListActive(ctx context.Context) ([]*domain.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{
		{Key: "created_at", Value: -1},
		{Key: "_id", Value: 1},
	})
	cur, err := r.col.Find(ctx, bson.M{"deleted": false}, opts)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer cur.Close(ctx)

	var articles []*domain.Article
	for cur.Next(ctx) {
		var doc articleDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode article: %w", domain.ErrStorage)
		}
		articles = append(articles, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

func (r *ArticleRepository) Update(ctx context.Context, id string, upd ports.ArticleUpdate) (*domain.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrArticleNotFound
	}

	set := bson.M{
		"title":     upd.Title,
		"body":      upd.Body,
		"image_ref": upd.ImageRef,
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc articleDoc
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrArticleNotFound
		}
		return nil, fmt.Errorf("update article: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ArticleRepository) SoftDelete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrArticleNotFound
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"deleted": true}})
	if err != nil {
		return fmt.Errorf("soft delete article: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrArticleNotFound
	}
	return nil
}

func (r *ArticleRepository) HardPurge(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrArticleNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("purge article: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrArticleNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes backing ListActive.
func (r *ArticleRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "deleted", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "author_id", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
