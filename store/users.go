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

type mongoUsers struct {
	col *mongo.Collection
}

func (s *mongoUsers) GetByID(ctx context.Context, userID string) (*models.User, error) {
	return s.findOne(ctx, bson.M{"user_id": userID})
}

func (s *mongoUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findOne(ctx, bson.M{"email": email})
}

func (s *mongoUsers) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var u models.User
	err := s.col.FindOne(ctx, filter).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}

func (s *mongoUsers) Create(ctx context.Context, u *models.User) error {
	if _, err := s.col.InsertOne(ctx, u); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *mongoUsers) UpdateLogin(ctx context.Context, userID, name, picture string, isAdmin bool) error {
	_, err := s.col.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$set": bson.M{"name": name, "picture": picture, "is_admin": isAdmin}},
	)
	if err != nil {
		return fmt.Errorf("update user login: %w", err)
	}
	return nil
}

func (s *mongoUsers) UpdateProfile(ctx context.Context, userID, phone, address string, geolocation *string) error {
	_, err := s.col.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$set": bson.M{
			"phone_number": phone,
			"home_address": address,
			"geolocation":  geolocation,
		}},
	)
	if err != nil {
		return fmt.Errorf("update user profile: %w", err)
	}
	return nil
}

func (s *mongoUsers) SetAdmin(ctx context.Context, userID string, isAdmin bool) error {
	res, err := s.col.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$set": bson.M{"is_admin": isAdmin}},
	)
	if err != nil {
		return fmt.Errorf("set admin: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *mongoUsers) ListAdmins(ctx context.Context) ([]models.AdminInfo, error) {
	opts := options.Find().
		SetProjection(bson.M{"_id": 0, "user_id": 1, "name": 1, "email": 1}).
		SetLimit(100)
	cur, err := s.col.Find(ctx, bson.M{"is_admin": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	defer cur.Close(ctx)

	admins := []models.AdminInfo{}
	if err := cur.All(ctx, &admins); err != nil {
		return nil, fmt.Errorf("decode admins: %w", err)
	}
	return admins, nil
}
