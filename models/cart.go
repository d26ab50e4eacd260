package models

import "time"

type Cart struct {
	CartID    string     `bson:"cart_id" json:"cart_id"`
	UserID    string     `bson:"user_id" json:"user_id"`
	Items     []CartItem `bson:"items" json:"items"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updated_at"`
}

// CartItem doubles as the PUT /cart payload shape; unlike order items the
// client-sent total is stored as-is (the order layer recomputes, the cart
// layer does not).
type CartItem struct {
	ItemID   string  `bson:"item_id" json:"item_id" binding:"required,max=50"`
	ItemName string  `bson:"item_name" json:"item_name" binding:"required,max=200"`
	Rate     float64 `bson:"rate" json:"rate" binding:"gte=0,lte=1000000"`
	Quantity float64 `bson:"quantity" json:"quantity" binding:"gt=0,lte=10000"`
	Total    float64 `bson:"total" json:"total" binding:"gte=0"`
}
