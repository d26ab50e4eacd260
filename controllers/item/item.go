package itemController

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/isaacbabu/groceryapp/cache"
	"github.com/isaacbabu/groceryapp/models"
	"github.com/isaacbabu/groceryapp/sanitize"
	"github.com/isaacbabu/groceryapp/store"
)

const listCacheTTL = 5 * time.Minute

// ItemInput is the create/update payload. Free-text fields are sanitized
// after binding; created_at is always server-assigned.
type ItemInput struct {
	Name     string  `json:"name" binding:"required,max=200"`
	Rate     float64 `json:"rate" binding:"required,gt=0,lte=1000000"`
	ImageURL string  `json:"image_url" binding:"required,max=5000000"`
	Category string  `json:"category" binding:"required,max=100"`
}

func (in *ItemInput) validate() []sanitize.FieldError {
	in.Name = sanitize.String(in.Name, sanitize.MaxNameLength)
	in.Category = sanitize.String(in.Category, sanitize.MaxCategoryLength)

	var errs []sanitize.FieldError
	if !sanitize.ValidImageURL(in.ImageURL) {
		errs = append(errs, sanitize.NewFieldError("image_url", "Invalid image URL format", in.ImageURL))
	}
	return errs
}

// GET /items?page&limit: public, read-through cached per (page, limit).
func GetItems(s *store.Store, ca *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
		if page < 1 {
			page = 1
		}
		if limit < 1 {
			limit = 10
		}
		if limit > 500 {
			limit = 500
		}

		cacheKey := fmt.Sprintf("items_page_%d_limit_%d", page, limit)
		if cached, ok := ca.Get(cacheKey, listCacheTTL); ok {
			c.JSON(http.StatusOK, cached)
			return
		}

		items, err := s.Items.List(c.Request.Context(), page, limit)
		if err != nil {
			log.Printf("failed to list items: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch items"})
			return
		}

		ca.Set(cacheKey, items)
		c.JSON(http.StatusOK, items)
	}
}

// POST /admin/items
func CreateItem(s *store.Store, ca *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": sanitize.BindingErrors(err)})
			return
		}
		if errs := input.validate(); len(errs) > 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": errs})
			return
		}

		item := &models.Item{
			ItemID:    models.NewID("item"),
			Name:      input.Name,
			Rate:      input.Rate,
			ImageURL:  input.ImageURL,
			Category:  input.Category,
			CreatedAt: time.Now().UTC(),
		}

		if err := s.Items.Create(c.Request.Context(), item); err != nil {
			log.Printf("failed to create item: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create item"})
			return
		}

		ca.InvalidateAll()
		c.JSON(http.StatusOK, item)
	}
}

// PUT /admin/items/:item_id
func UpdateItem(s *store.Store, ca *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": sanitize.BindingErrors(err)})
			return
		}
		if errs := input.validate(); len(errs) > 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": errs})
			return
		}

		item, err := s.Items.Update(c.Request.Context(), c.Param("item_id"), store.ItemUpdate{
			Name:     input.Name,
			Rate:     input.Rate,
			ImageURL: input.ImageURL,
			Category: input.Category,
		})
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		if err != nil {
			log.Printf("failed to update item: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
			return
		}

		ca.InvalidateAll()
		c.JSON(http.StatusOK, item)
	}
}

// DELETE /admin/items/:item_id
func DeleteItem(s *store.Store, ca *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := s.Items.Delete(c.Request.Context(), c.Param("item_id"))
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		if err != nil {
			log.Printf("failed to delete item: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}

		ca.InvalidateAll()
		c.JSON(http.StatusOK, gin.H{"message": "Item deleted"})
	}
}

// POST /seed-items: one-shot sample data; skips when items already exist.
func SeedItems(s *store.Store, ca *cache.Cache) gin.HandlerFunc {
	type seed struct {
		name     string
		rate     float64
		category string
		imageURL string
	}
	samples := []seed{
		{"Toor Dal (1kg)", 150.00, "Pulses", "https://images.unsplash.com/photo-1585996340258-c90e51a42c15?w=400"},
		{"Basmati Rice (5kg)", 450.00, "Rice", "https://images.unsplash.com/photo-1586201375761-83865001e31c?w=400"},
		{"Turmeric Powder (200g)", 80.00, "Spices", "https://images.unsplash.com/photo-1615485500704-8e990f9900f7?w=400"},
	}
	defaultCategories := []string{"Pulses", "Rice", "Spices"}

	return func(c *gin.Context) {
		ctx := c.Request.Context()

		count, err := s.Items.Count(ctx)
		if err != nil {
			log.Printf("failed to count items: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to seed items"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Items already exist (%d items). Skipping seed.", count)})
			return
		}

		now := time.Now().UTC()
		for _, sm := range samples {
			item := &models.Item{
				ItemID:    models.NewID("item"),
				Name:      sm.name,
				Rate:      sm.rate,
				ImageURL:  sm.imageURL,
				Category:  sm.category,
				CreatedAt: now,
			}
			if err := s.Items.Create(ctx, item); err != nil {
				log.Printf("failed to seed item: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to seed items"})
				return
			}
		}

		for _, name := range defaultCategories {
			if _, err := s.Categories.FindByNameFold(ctx, name); err == nil {
				continue
			}
			cat := &models.Category{
				CategoryID: models.NewID("cat"),
				Name:       name,
				IsDefault:  true,
				CreatedAt:  now,
			}
			if err := s.Categories.Create(ctx, cat); err != nil {
				log.Printf("failed to seed category: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to seed items"})
				return
			}
		}

		ca.InvalidateAll()
		c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Successfully seeded %d items and %d categories", len(samples), len(defaultCategories))})
	}
}
