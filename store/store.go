// Package store holds the persistence interfaces and their MongoDB
// implementation. Handlers depend on the interfaces so tests can swap in
// the in-memory fakes from store/storetest.
package store

import (
	"context"
	"errors"

	"github.com/isaacbabu/groceryapp/models"
)

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("not found")

type UserStore interface {
	GetByID(ctx context.Context, userID string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, u *models.User) error
	// UpdateLogin refreshes the provider-supplied fields on every login.
	UpdateLogin(ctx context.Context, userID, name, picture string, isAdmin bool) error
	UpdateProfile(ctx context.Context, userID, phone, address string, geolocation *string) error
	SetAdmin(ctx context.Context, userID string, isAdmin bool) error
	ListAdmins(ctx context.Context) ([]models.AdminInfo, error)
}

type SessionStore interface {
	Create(ctx context.Context, s *models.Session) error
	GetByToken(ctx context.Context, token string) (*models.Session, error)
	// Delete is idempotent: deleting an absent token is not an error.
	Delete(ctx context.Context, token string) error
}

// ItemUpdate lists the client-settable item fields; created_at is never
// part of an update.
type ItemUpdate struct {
	Name     string
	Rate     float64
	ImageURL string
	Category string
}

type ItemStore interface {
	List(ctx context.Context, page, limit int) ([]models.Item, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, it *models.Item) error
	Update(ctx context.Context, itemID string, upd ItemUpdate) (*models.Item, error)
	Delete(ctx context.Context, itemID string) error
	CountByCategory(ctx context.Context, category string) (int64, error)
	DistinctCategories(ctx context.Context) ([]string, error)
}

type CategoryStore interface {
	List(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, categoryID string) (*models.Category, error)
	// FindByNameFold matches the exact name case-insensitively.
	FindByNameFold(ctx context.Context, name string) (*models.Category, error)
	Create(ctx context.Context, c *models.Category) error
	Delete(ctx context.Context, categoryID string) error
}

type CartStore interface {
	GetByUser(ctx context.Context, userID string) (*models.Cart, error)
	// Save upserts the single cart document keyed by user_id.
	Save(ctx context.Context, c *models.Cart) error
	DeleteByUser(ctx context.Context, userID string) error
}

type OrderStore interface {
	Create(ctx context.Context, o *models.Order) error
	GetByID(ctx context.Context, orderID string) (*models.Order, error)
	ListByUser(ctx context.Context, userID string) ([]models.Order, error)
	ListAll(ctx context.Context) ([]models.Order, error)
	// Update replaces items and grand total and resets status to Pending.
	Update(ctx context.Context, orderID string, items []models.OrderItem, grandTotal float64) (*models.Order, error)
	SetStatus(ctx context.Context, orderID, status string) (*models.Order, error)
	Delete(ctx context.Context, orderID string) error
}
