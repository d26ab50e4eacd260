// Package storetest provides in-memory store implementations for handler
// tests. Single-goroutine use only.
package storetest

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/isaacbabu/groceryapp/models"
	"github.com/isaacbabu/groceryapp/store"
)

// New builds a Store backed entirely by in-memory fakes.
func New() *store.Store {
	return &store.Store{
		Users:      &Users{ByID: map[string]*models.User{}},
		Sessions:   &Sessions{ByToken: map[string]*models.Session{}},
		Items:      &Items{},
		Categories: &Categories{},
		Carts:      &Carts{ByUser: map[string]*models.Cart{}},
		Orders:     &Orders{ByID: map[string]*models.Order{}},
	}
}

type Users struct {
	ByID map[string]*models.User
}

func (f *Users) Add(u *models.User) { f.ByID[u.UserID] = u }

func (f *Users) GetByID(_ context.Context, userID string) (*models.User, error) {
	if u, ok := f.ByID[userID]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, store.ErrNotFound
}

func (f *Users) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.ByID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *Users) Create(_ context.Context, u *models.User) error {
	cp := *u
	f.ByID[u.UserID] = &cp
	return nil
}

func (f *Users) UpdateLogin(_ context.Context, userID, name, picture string, isAdmin bool) error {
	u, ok := f.ByID[userID]
	if !ok {
		return store.ErrNotFound
	}
	u.Name, u.Picture, u.IsAdmin = name, picture, isAdmin
	return nil
}

func (f *Users) UpdateProfile(_ context.Context, userID, phone, address string, geolocation *string) error {
	u, ok := f.ByID[userID]
	if !ok {
		return store.ErrNotFound
	}
	u.PhoneNumber, u.HomeAddress, u.Geolocation = &phone, &address, geolocation
	return nil
}

func (f *Users) SetAdmin(_ context.Context, userID string, isAdmin bool) error {
	u, ok := f.ByID[userID]
	if !ok {
		return store.ErrNotFound
	}
	u.IsAdmin = isAdmin
	return nil
}

func (f *Users) ListAdmins(_ context.Context) ([]models.AdminInfo, error) {
	admins := []models.AdminInfo{}
	for _, u := range f.ByID {
		if u.IsAdmin {
			admins = append(admins, models.AdminInfo{UserID: u.UserID, Name: u.Name, Email: u.Email})
		}
	}
	sort.Slice(admins, func(i, j int) bool { return admins[i].UserID < admins[j].UserID })
	return admins, nil
}

type Sessions struct {
	ByToken map[string]*models.Session
}

func (f *Sessions) Add(s *models.Session) { f.ByToken[s.SessionToken] = s }

func (f *Sessions) Create(_ context.Context, s *models.Session) error {
	cp := *s
	f.ByToken[s.SessionToken] = &cp
	return nil
}

func (f *Sessions) GetByToken(_ context.Context, token string) (*models.Session, error) {
	if s, ok := f.ByToken[token]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, store.ErrNotFound
}

func (f *Sessions) Delete(_ context.Context, token string) error {
	delete(f.ByToken, token)
	return nil
}

type Items struct {
	All []models.Item
}

func (f *Items) List(_ context.Context, page, limit int) ([]models.Item, error) {
	start := (page - 1) * limit
	if start >= len(f.All) {
		return []models.Item{}, nil
	}
	end := start + limit
	if end > len(f.All) {
		end = len(f.All)
	}
	return append([]models.Item{}, f.All[start:end]...), nil
}

func (f *Items) Count(_ context.Context) (int64, error) { return int64(len(f.All)), nil }

func (f *Items) Create(_ context.Context, it *models.Item) error {
	f.All = append(f.All, *it)
	return nil
}

func (f *Items) Update(_ context.Context, itemID string, upd store.ItemUpdate) (*models.Item, error) {
	for i := range f.All {
		if f.All[i].ItemID == itemID {
			f.All[i].Name = upd.Name
			f.All[i].Rate = upd.Rate
			f.All[i].ImageURL = upd.ImageURL
			f.All[i].Category = upd.Category
			cp := f.All[i]
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *Items) Delete(_ context.Context, itemID string) error {
	for i := range f.All {
		if f.All[i].ItemID == itemID {
			f.All = append(f.All[:i], f.All[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *Items) CountByCategory(_ context.Context, category string) (int64, error) {
	var n int64
	for _, it := range f.All {
		if it.Category == category {
			n++
		}
	}
	return n, nil
}

func (f *Items) DistinctCategories(_ context.Context) ([]string, error) {
	seen := map[string]bool{}
	names := []string{}
	for _, it := range f.All {
		if !seen[it.Category] {
			seen[it.Category] = true
			names = append(names, it.Category)
		}
	}
	return names, nil
}

type Categories struct {
	All []models.Category
}

func (f *Categories) List(_ context.Context) ([]models.Category, error) {
	cats := append([]models.Category{}, f.All...)
	sort.Slice(cats, func(i, j int) bool { return cats[i].Name < cats[j].Name })
	return cats, nil
}

func (f *Categories) GetByID(_ context.Context, categoryID string) (*models.Category, error) {
	for _, c := range f.All {
		if c.CategoryID == categoryID {
			cp := c
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *Categories) FindByNameFold(_ context.Context, name string) (*models.Category, error) {
	for _, c := range f.All {
		if strings.EqualFold(c.Name, name) {
			cp := c
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *Categories) Create(_ context.Context, c *models.Category) error {
	f.All = append(f.All, *c)
	return nil
}

func (f *Categories) Delete(_ context.Context, categoryID string) error {
	for i := range f.All {
		if f.All[i].CategoryID == categoryID {
			f.All = append(f.All[:i], f.All[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

type Carts struct {
	ByUser map[string]*models.Cart
}

func (f *Carts) GetByUser(_ context.Context, userID string) (*models.Cart, error) {
	if c, ok := f.ByUser[userID]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, store.ErrNotFound
}

func (f *Carts) Save(_ context.Context, c *models.Cart) error {
	cp := *c
	f.ByUser[c.UserID] = &cp
	return nil
}

func (f *Carts) DeleteByUser(_ context.Context, userID string) error {
	delete(f.ByUser, userID)
	return nil
}

type Orders struct {
	ByID map[string]*models.Order
}

func (f *Orders) Add(o *models.Order) { f.ByID[o.OrderID] = o }

func (f *Orders) Create(_ context.Context, o *models.Order) error {
	cp := *o
	f.ByID[o.OrderID] = &cp
	return nil
}

func (f *Orders) GetByID(_ context.Context, orderID string) (*models.Order, error) {
	if o, ok := f.ByID[orderID]; ok {
		cp := *o
		return &cp, nil
	}
	return nil, store.ErrNotFound
}

func (f *Orders) ListByUser(_ context.Context, userID string) ([]models.Order, error) {
	orders := []models.Order{}
	for _, o := range f.ByID {
		if o.UserID == userID {
			orders = append(orders, *o)
		}
	}
	sortNewestFirst(orders)
	return orders, nil
}

func (f *Orders) ListAll(_ context.Context) ([]models.Order, error) {
	orders := []models.Order{}
	for _, o := range f.ByID {
		orders = append(orders, *o)
	}
	sortNewestFirst(orders)
	return orders, nil
}

func (f *Orders) Update(_ context.Context, orderID string, items []models.OrderItem, grandTotal float64) (*models.Order, error) {
	o, ok := f.ByID[orderID]
	if !ok {
		return nil, store.ErrNotFound
	}
	now := time.Now().UTC()
	o.Items = items
	o.GrandTotal = grandTotal
	o.Status = models.OrderStatusPending
	o.UpdatedAt = &now
	cp := *o
	return &cp, nil
}

func (f *Orders) SetStatus(_ context.Context, orderID, status string) (*models.Order, error) {
	o, ok := f.ByID[orderID]
	if !ok {
		return nil, store.ErrNotFound
	}
	o.Status = status
	cp := *o
	return &cp, nil
}

func (f *Orders) Delete(_ context.Context, orderID string) error {
	if _, ok := f.ByID[orderID]; !ok {
		return store.ErrNotFound
	}
	delete(f.ByID, orderID)
	return nil
}

func sortNewestFirst(orders []models.Order) {
	sort.Slice(orders, func(i, j int) bool { return orders[i].CreatedAt.After(orders[j].CreatedAt) })
}
