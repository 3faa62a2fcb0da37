package server

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/recipevault/recipevault/internal/models"
)

const (
	recipeListKey = "recipes:all"
	recipeListTTL = 30 * time.Second
)

// recipeCache caches the full recipe list in Redis. A nil client turns
// every operation into a no-op so the server runs without Redis.
type recipeCache struct {
	rdb *redis.Client
}

func newRecipeCache(rdb *redis.Client) *recipeCache {
	return &recipeCache{rdb: rdb}
}

func (c *recipeCache) get(ctx context.Context) ([]models.Recipe, bool) {
	if c.rdb == nil {
		return nil, false
	}

	data, err := c.rdb.Get(ctx, recipeListKey).Bytes()
	if err != nil {
		return nil, false
	}

	var recipes []models.Recipe
	if err := json.Unmarshal(data, &recipes); err != nil {
		return nil, false
	}
	return recipes, true
}

func (c *recipeCache) set(ctx context.Context, recipes []models.Recipe) {
	if c.rdb == nil {
		return
	}

	data, err := json.Marshal(recipes)
	if err != nil {
		return
	}
	// Cache failures are invisible to callers; the database stays the
	// source of truth.
	c.rdb.Set(ctx, recipeListKey, data, recipeListTTL)
}

func (c *recipeCache) invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	c.rdb.Del(ctx, recipeListKey)
}
