package mongodb

import (
	"context"
	"errors"
	"fmt"
	"somon-ai/internal/core/domain"
	"somon-ai/internal/core/port"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoProductRepository struct {
	collection *mongo.Collection
}

// NewProductRepository creates mongoProductRepository that implements port.ProductRepository
func NewProductRepository(collection *mongo.Collection) port.ProductRepository {
	return &mongoProductRepository{collection: collection}
}

// ListPublished returns a page of published products, newest first
func (r *mongoProductRepository) ListPublished(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	query := bson.M{"status": int(domain.ProductStatusPublished)}
	if filter.CategoryID != "" {
		categoryID, err := primitive.ObjectIDFromHex(filter.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("category %s: %w", filter.CategoryID, domain.ErrInvalidID)
		}
		query["categoryId"] = categoryID
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(filter.Skip)).
		SetLimit(int64(filter.Take))

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []productDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	products := make([]domain.Product, 0, len(docs))
	for _, doc := range docs {
		p, err := doc.toDomain()
		if err != nil {
			return nil, fmt.Errorf("failed to map product %s: %w", doc.ID.Hex(), err)
		}
		products = append(products, p)
	}
	return products, nil
}

func (r *mongoProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("product %s: %w", id, domain.ErrInvalidID)
	}

	var doc productDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("product %s: %w", id, domain.ErrProductNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query product %s: %w", id, err)
	}

	p, err := doc.toDomain()
	if err != nil {
		return nil, fmt.Errorf("failed to map product %s: %w", id, err)
	}
	return &p, nil
}

// Create inserts the product and sets its ID
func (r *mongoProductRepository) Create(ctx context.Context, product *domain.Product) error {
	doc, err := newProductDocument(*product)
	if err != nil {
		return fmt.Errorf("failed to map product: %w", err)
	}

	res, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		product.ID = oid.Hex()
	}
	return nil
}

func (r *mongoProductRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("product %s: %w", id, domain.ErrInvalidID)
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("failed to delete product %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("product %s: %w", id, domain.ErrProductNotFound)
	}
	return nil
}

func (r *mongoProductRepository) IncrementViewCount(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("product %s: %w", id, domain.ErrInvalidID)
	}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$inc": bson.M{"viewCount": 1}})
	if err != nil {
		return fmt.Errorf("failed to increment view count of %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("product %s: %w", id, domain.ErrProductNotFound)
	}
	return nil
}
