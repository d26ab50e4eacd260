package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/isaacbabu/groceryapp/models"
)

type mongoItems struct {
	col *mongo.Collection
}

func (s *mongoItems) List(ctx context.Context, page, limit int) ([]models.Item, error) {
	skip := int64((page - 1) * limit)
	opts := options.Find().SetSkip(skip).SetLimit(int64(limit))
	cur, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer cur.Close(ctx)

	items := []models.Item{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	return items, nil
}

func (s *mongoItems) Count(ctx context.Context) (int64, error) {
	n, err := s.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return n, nil
}

func (s *mongoItems) Create(ctx context.Context, it *models.Item) error {
	if _, err := s.col.InsertOne(ctx, it); err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

func (s *mongoItems) Update(ctx context.Context, itemID string, upd ItemUpdate) (*models.Item, error) {
	res, err := s.col.UpdateOne(ctx,
		bson.M{"item_id": itemID},
		bson.M{"$set": bson.M{
			"name":      upd.Name,
			"rate":      upd.Rate,
			"image_url": upd.ImageURL,
			"category":  upd.Category,
		}},
	)
	if err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}

	var it models.Item
	if err := s.col.FindOne(ctx, bson.M{"item_id": itemID}).Decode(&it); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reload item: %w", err)
	}
	return &it, nil
}

func (s *mongoItems) Delete(ctx context.Context, itemID string) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"item_id": itemID})
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *mongoItems) CountByCategory(ctx context.Context, category string) (int64, error) {
	n, err := s.col.CountDocuments(ctx, bson.M{"category": category})
	if err != nil {
		return 0, fmt.Errorf("count items by category: %w", err)
	}
	return n, nil
}

func (s *mongoItems) DistinctCategories(ctx context.Context) ([]string, error) {
	raw, err := s.col.Distinct(ctx, "category", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("distinct categories: %w", err)
	}

	names := make([]string, 0, len(raw))
	for _, v := range raw {
		if name, ok := v.(string); ok {
			names = append(names, name)
		}
	}
	return names, nil
}
