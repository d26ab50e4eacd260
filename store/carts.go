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

type mongoCarts struct {
	col *mongo.Collection
}

func (s *mongoCarts) GetByUser(ctx context.Context, userID string) (*models.Cart, error) {
	var cart models.Cart
	err := s.col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&cart)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find cart: %w", err)
	}
	return &cart, nil
}

func (s *mongoCarts) Save(ctx context.Context, c *models.Cart) error {
	_, err := s.col.ReplaceOne(ctx,
		bson.M{"user_id": c.UserID},
		c,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

func (s *mongoCarts) DeleteByUser(ctx context.Context, userID string) error {
	if _, err := s.col.DeleteOne(ctx, bson.M{"user_id": userID}); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}
	return nil
}
