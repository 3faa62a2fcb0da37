package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/recipevault/recipevault/internal/models"
)

// RecipeHandler serves the /recipes resource.
type RecipeHandler struct {
	db    *gorm.DB
	cache *recipeCache
}

func NewRecipeHandler(db *gorm.DB, cache *recipeCache) *RecipeHandler {
	return &RecipeHandler{
		db:    db,
		cache: cache,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.Engine) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("", h.CreateRecipe)
		recipes.PUT("/:id", h.UpdateRecipe)
	}
}

// ListRecipes returns all recipes, or the subset owned by ?userId=.
// The unfiltered list goes through the Redis cache when one is wired in.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	if userID := c.Query("userId"); userID != "" {
		var recipes []models.Recipe
		if err := h.db.Where("user_id = ?", userID).Find(&recipes).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipes"})
			return
		}
		c.JSON(http.StatusOK, recipes)
		return
	}

	if cached, ok := h.cache.get(c.Request.Context()); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	var recipes []models.Recipe
	if err := h.db.Find(&recipes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipes"})
		return
	}

	h.cache.set(c.Request.Context(), recipes)
	c.JSON(http.StatusOK, recipes)
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id := c.Param("id")
	var recipe models.Recipe
	if err := h.db.First(&recipe, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// CreateRecipe stores a new recipe. The server assigns the id; a
// client-proposed id is ignored so two creates can never collide.
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var recipe models.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe.ID = uuid.NewString()

	if err := h.db.Create(&recipe).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create recipe"})
		return
	}

	h.cache.invalidate(c.Request.Context())
	c.JSON(http.StatusCreated, recipe)
}

// UpdateRecipe replaces the whole resource, mirroring json-server's PUT.
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id := c.Param("id")

	var existing models.Recipe
	if err := h.db.First(&existing, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	var recipe models.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe.ID = id
	recipe.CreatedAt = existing.CreatedAt

	if err := h.db.Save(&recipe).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update recipe"})
		return
	}

	h.cache.invalidate(c.Request.Context())
	c.JSON(http.StatusOK, recipe)
}
