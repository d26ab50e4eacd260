package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/isaacbabu/groceryapp/models"
)

type mongoSessions struct {
	col *mongo.Collection
}

func (s *mongoSessions) Create(ctx context.Context, sess *models.Session) error {
	if _, err := s.col.InsertOne(ctx, sess); err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (s *mongoSessions) GetByToken(ctx context.Context, token string) (*models.Session, error) {
	var sess models.Session
	err := s.col.FindOne(ctx, bson.M{"session_token": token}).Decode(&sess)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find session: %w", err)
	}
	return &sess, nil
}

func (s *mongoSessions) Delete(ctx context.Context, token string) error {
	if _, err := s.col.DeleteOne(ctx, bson.M{"session_token": token}); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
