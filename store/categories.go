package store

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/isaacbabu/groceryapp/models"
)

type mongoCategories struct {
	col *mongo.Collection
}

func (s *mongoCategories) List(ctx context.Context) ([]models.Category, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}}).SetLimit(1000)
	cur, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer cur.Close(ctx)

	cats := []models.Category{}
	if err := cur.All(ctx, &cats); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	return cats, nil
}

func (s *mongoCategories) GetByID(ctx context.Context, categoryID string) (*models.Category, error) {
	var cat models.Category
	err := s.col.FindOne(ctx, bson.M{"category_id": categoryID}).Decode(&cat)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find category: %w", err)
	}
	return &cat, nil
}

// FindByNameFold does an exact-match, case-insensitive lookup. The name is
// regex-escaped so it is never treated as a pattern.
func (s *mongoCategories) FindByNameFold(ctx context.Context, name string) (*models.Category, error) {
	pattern := "^" + regexp.QuoteMeta(name) + "$"
	var cat models.Category
	err := s.col.FindOne(ctx, bson.M{
		"name": primitive.Regex{Pattern: pattern, Options: "i"},
	}).Decode(&cat)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find category by name: %w", err)
	}
	return &cat, nil
}

func (s *mongoCategories) Create(ctx context.Context, c *models.Category) error {
	if _, err := s.col.InsertOne(ctx, c); err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

func (s *mongoCategories) Delete(ctx context.Context, categoryID string) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"category_id": categoryID})
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
