package models

import "time"

type Category struct {
	CategoryID string    `bson:"category_id" json:"category_id"`
	Name       string    `bson:"name" json:"name"`
	IsDefault  bool      `bson:"is_default" json:"is_default"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}
