package mongodb

import (
	"context"
	"errors"
	"fmt"
	"somon-ai/internal/core/domain"
	"somon-ai/internal/core/port"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoCategoryRepository struct {
	collection *mongo.Collection
}

// NewCategoryRepository creates mongoCategoryRepository that implements port.CategoryRepository
func NewCategoryRepository(collection *mongo.Collection) port.CategoryRepository {
	return &mongoCategoryRepository{collection: collection}
}

// ListActive returns the active categories ordered by display order
func (r *mongoCategoryRepository) ListActive(ctx context.Context) ([]domain.Category, error) {
	opts := options.Find().SetSort(bson.D{{Key: "displayOrder", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"isActive": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []categoryDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}

	categories := make([]domain.Category, 0, len(docs))
	for _, doc := range docs {
		categories = append(categories, doc.toDomain())
	}
	return categories, nil
}

// FindByID returns the category, active or not
func (r *mongoCategoryRepository) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("category %s: %w", id, domain.ErrInvalidID)
	}
	return r.findOne(ctx, bson.M{"_id": objectID}, id)
}

// FindBySlug returns the category with the lowercase slug, active or not
func (r *mongoCategoryRepository) FindBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	return r.findOne(ctx, bson.M{"slug": strings.ToLower(slug)}, slug)
}

func (r *mongoCategoryRepository) findOne(ctx context.Context, filter bson.M, ref string) (*domain.Category, error) {
	var doc categoryDocument
	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("category %s: %w", ref, domain.ErrCategoryNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query category %s: %w", ref, err)
	}

	category := doc.toDomain()
	return &category, nil
}
