package models

import "time"

// Order statuses. Stored as an open string so new statuses can be added
// without a migration.
const (
	OrderStatusPending   = "Pending"
	OrderStatusConfirmed = "Order Confirmed"
)

type Order struct {
	OrderID     string      `bson:"order_id" json:"order_id"`
	UserID      string      `bson:"user_id" json:"user_id"`
	Items       []OrderItem `bson:"items" json:"items"`
	GrandTotal  float64     `bson:"grand_total" json:"grand_total"`
	Status      string      `bson:"status" json:"status"`
	UserName    string      `bson:"user_name" json:"user_name"`
	UserEmail   string      `bson:"user_email" json:"user_email"`
	UserPhone   *string     `bson:"user_phone" json:"user_phone"`
	UserAddress *string     `bson:"user_address" json:"user_address"`
	CreatedAt   time.Time   `bson:"created_at" json:"created_at"`
	UpdatedAt   *time.Time  `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

type OrderItem struct {
	ItemID   string  `bson:"item_id" json:"item_id" binding:"required,max=50"`
	ItemName string  `bson:"item_name" json:"item_name" binding:"required,max=200"`
	Rate     float64 `bson:"rate" json:"rate" binding:"gte=0,lte=1000000"`
	Quantity float64 `bson:"quantity" json:"quantity" binding:"gt=0,lte=10000"`
	Total    float64 `bson:"total" json:"total" binding:"gte=0"`
}
