package categoryController

import (
	"fmt"
	"log"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/isaacbabu/groceryapp/cache"
	"github.com/isaacbabu/groceryapp/models"
	"github.com/isaacbabu/groceryapp/sanitize"
	"github.com/isaacbabu/groceryapp/store"
)

const (
	listCacheTTL  = 5 * time.Minute
	namesCacheKey = "categories_list"
)

type CategoryInput struct {
	Name string `json:"name" binding:"required,max=100"`
}

// GET /categories: public name list: "All" plus sorted category names.
// Falls back to deriving names from items when the collection is empty
// (pre-categories deployments).
func GetCategories(s *store.Store, ca *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cached, ok := ca.Get(namesCacheKey, listCacheTTL); ok {
			c.JSON(http.StatusOK, cached)
			return
		}

		ctx := c.Request.Context()
		cats, err := s.Categories.List(ctx)
		if err != nil {
			log.Printf("failed to list categories: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}

		names := make([]string, 0, len(cats))
		for _, cat := range cats {
			names = append(names, cat.Name)
		}
		if len(names) == 0 {
			names, err = s.Items.DistinctCategories(ctx)
			if err != nil {
				log.Printf("failed to derive categories from items: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
				return
			}
		}
		sort.Strings(names)

		result := append([]string{"All"}, names...)
		ca.Set(namesCacheKey, result)
		c.JSON(http.StatusOK, result)
	}
}

// GET /admin/categories: full documents sorted by name.
func GetAdminCategories(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		cats, err := s.Categories.List(c.Request.Context())
		if err != nil {
			log.Printf("failed to list categories: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, cats)
	}
}

// POST /admin/categories
func CreateCategory(s *store.Store, ca *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": sanitize.BindingErrors(err)})
			return
		}

		name := sanitize.String(input.Name, sanitize.MaxCategoryLength)
		if !sanitize.ValidCategoryName(name) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"detail": []sanitize.FieldError{
					sanitize.NewFieldError("name", "Category name contains invalid characters", input.Name),
				},
			})
			return
		}

		ctx := c.Request.Context()
		if _, err := s.Categories.FindByNameFold(ctx, name); err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category already exists"})
			return
		} else if err != store.ErrNotFound {
			log.Printf("failed to check category name: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			return
		}

		category := &models.Category{
			CategoryID: models.NewID("cat"),
			Name:       name,
			IsDefault:  false,
			CreatedAt:  time.Now().UTC(),
		}
		if err := s.Categories.Create(ctx, category); err != nil {
			log.Printf("failed to create category: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			return
		}

		ca.InvalidateAll()
		c.JSON(http.StatusOK, category)
	}
}

// DELETE /admin/categories/:category_id: default categories and
// categories still referenced by items cannot be deleted.
func DeleteCategory(s *store.Store, ca *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		category, err := s.Categories.GetByID(ctx, c.Param("category_id"))
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		if err != nil {
			log.Printf("failed to fetch category: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
			return
		}

		if category.IsDefault {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot delete default categories"})
			return
		}

		// Items reference categories by name, not id.
		count, err := s.Items.CountByCategory(ctx, category.Name)
		if err != nil {
			log.Printf("failed to count items in category: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("Cannot delete category. %d items are using this category.", count),
			})
			return
		}

		if err := s.Categories.Delete(ctx, category.CategoryID); err != nil {
			log.Printf("failed to delete category: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
			return
		}

		ca.InvalidateAll()
		c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
	}
}
