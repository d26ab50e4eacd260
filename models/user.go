package models

import "time"

type User struct {
	UserID      string    `bson:"user_id" json:"user_id"`
	Email       string    `bson:"email" json:"email"`
	Name        string    `bson:"name" json:"name"`
	Picture     string    `bson:"picture,omitempty" json:"picture,omitempty"`
	PhoneNumber *string   `bson:"phone_number" json:"phone_number"`
	HomeAddress *string   `bson:"home_address" json:"home_address"`
	Geolocation *string   `bson:"geolocation" json:"geolocation"`
	IsAdmin     bool      `bson:"is_admin" json:"is_admin"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// AdminInfo is the trimmed user projection returned by the roles listing.
type AdminInfo struct {
	UserID string `bson:"user_id" json:"user_id"`
	Name   string `bson:"name" json:"name"`
	Email  string `bson:"email" json:"email"`
}
