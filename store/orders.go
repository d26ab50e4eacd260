package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/isaacbabu/groceryapp/models"
)

type mongoOrders struct {
	col *mongo.Collection
}

func (s *mongoOrders) Create(ctx context.Context, o *models.Order) error {
	if _, err := s.col.InsertOne(ctx, o); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

func (s *mongoOrders) GetByID(ctx context.Context, orderID string) (*models.Order, error) {
	var o models.Order
	err := s.col.FindOne(ctx, bson.M{"order_id": orderID}).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find order: %w", err)
	}
	return &o, nil
}

func (s *mongoOrders) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	return s.list(ctx, bson.M{"user_id": userID})
}

func (s *mongoOrders) ListAll(ctx context.Context) ([]models.Order, error) {
	return s.list(ctx, bson.M{})
}

func (s *mongoOrders) list(ctx context.Context, filter bson.M) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(1000)
	cur, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer cur.Close(ctx)

	orders := []models.Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return orders, nil
}

func (s *mongoOrders) Update(ctx context.Context, orderID string, items []models.OrderItem, grandTotal float64) (*models.Order, error) {
	now := time.Now().UTC()
	res, err := s.col.UpdateOne(ctx,
		bson.M{"order_id": orderID},
		bson.M{"$set": bson.M{
			"items":       items,
			"grand_total": grandTotal,
			"status":      models.OrderStatusPending,
			"updated_at":  now,
		}},
	)
	if err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return s.GetByID(ctx, orderID)
}

func (s *mongoOrders) SetStatus(ctx context.Context, orderID, status string) (*models.Order, error) {
	res, err := s.col.UpdateOne(ctx,
		bson.M{"order_id": orderID},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return nil, fmt.Errorf("set order status: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return s.GetByID(ctx, orderID)
}

func (s *mongoOrders) Delete(ctx context.Context, orderID string) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"order_id": orderID})
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
