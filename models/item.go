package models

import "time"

type Item struct {
	ItemID    string    `bson:"item_id" json:"item_id"`
	Name      string    `bson:"name" json:"name"`
	Rate      float64   `bson:"rate" json:"rate"`
	ImageURL  string    `bson:"image_url" json:"image_url"`
	Category  string    `bson:"category" json:"category"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
