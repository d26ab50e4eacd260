package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store bundles the per-entity stores. The fields are interfaces so tests
// can construct a Store backed by fakes.
type Store struct {
	Users      UserStore
	Sessions   SessionStore
	Items      ItemStore
	Categories CategoryStore
	Carts      CartStore
	Orders     OrderStore

	client *mongo.Client
	db     *mongo.Database
}

// Connect opens the MongoDB connection and wires the entity stores.
func Connect(ctx context.Context, mongoURL, dbName string) (*Store, error) {
	opts := options.Client().
		ApplyURI(mongoURL).
		SetMaxPoolSize(50).
		SetMinPoolSize(10)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(dbName)
	return &Store{
		Users:      &mongoUsers{col: db.Collection("users")},
		Sessions:   &mongoSessions{col: db.Collection("user_sessions")},
		Items:      &mongoItems{col: db.Collection("items")},
		Categories: &mongoCategories{col: db.Collection("categories")},
		Carts:      &mongoCarts{col: db.Collection("carts")},
		Orders:     &mongoOrders{col: db.Collection("orders")},
		client:     client,
		db:         db,
	}, nil
}

// Close releases the underlying client.
func (s *Store) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

// EnsureIndexes creates the unique and query indexes, including the TTL
// index that reaps expired sessions independently of request handling.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	_, err := s.db.Collection("items").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "item_id", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "name", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("items indexes: %w", err)
	}

	_, err = s.db.Collection("users").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		return fmt.Errorf("users indexes: %w", err)
	}

	_, err = s.db.Collection("orders").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "order_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("orders indexes: %w", err)
	}

	_, err = s.db.Collection("carts").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("carts indexes: %w", err)
	}

	_, err = s.db.Collection("user_sessions").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "session_token", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "expires_at", Value: 1}}, Options: options.Index().SetExpireAfterSeconds(0)},
	})
	if err != nil {
		return fmt.Errorf("session indexes: %w", err)
	}

	return nil
}
