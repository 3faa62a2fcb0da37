package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/recipevault/recipevault/internal/errs"
	"github.com/recipevault/recipevault/internal/models"
)

// ListRecipes fetches the full recipe list.
func (c *Client) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	var recipes []models.Recipe
	status, err := c.do(ctx, http.MethodGet, "/recipes", nil, &recipes)
	if err != nil {
		return nil, fmt.Errorf("%w recipes: %v", errs.ErrFetchFailed, err)
	}
	if !ok(status) {
		return nil, fmt.Errorf("%w recipes: status %d", errs.ErrFetchFailed, status)
	}
	return recipes, nil
}

// GetRecipe fetches a single recipe by id.
func (c *Client) GetRecipe(ctx context.Context, id string) (*models.Recipe, error) {
	var recipe models.Recipe
	status, err := c.do(ctx, http.MethodGet, "/recipes/"+url.PathEscape(id), nil, &recipe)
	if err != nil {
		return nil, fmt.Errorf("%w recipe: %v", errs.ErrFetchFailed, err)
	}
	if status == http.StatusNotFound {
		return nil, errs.ErrRecipeNotFound
	}
	if !ok(status) {
		return nil, fmt.Errorf("%w recipe: status %d", errs.ErrFetchFailed, status)
	}
	return &recipe, nil
}

// ListUserRecipes fetches the recipes owned by the given user.
func (c *Client) ListUserRecipes(ctx context.Context, userID string) ([]models.Recipe, error) {
	var recipes []models.Recipe
	path := "/recipes?userId=" + url.QueryEscape(userID)
	status, err := c.do(ctx, http.MethodGet, path, nil, &recipes)
	if err != nil {
		return nil, fmt.Errorf("%w user recipes: %v", errs.ErrFetchFailed, err)
	}
	if !ok(status) {
		return nil, fmt.Errorf("%w user recipes: status %d", errs.ErrFetchFailed, status)
	}
	return recipes, nil
}

// CreateRecipe creates a recipe; the server assigns the id.
func (c *Client) CreateRecipe(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error) {
	var created models.Recipe
	status, err := c.do(ctx, http.MethodPost, "/recipes", recipe, &created)
	if err != nil {
		return nil, fmt.Errorf("%w recipe: %v", errs.ErrCreateFailed, err)
	}
	if !ok(status) {
		return nil, fmt.Errorf("%w recipe: status %d", errs.ErrCreateFailed, status)
	}
	return &created, nil
}

// UpdateRecipe replaces the whole recipe resource.
func (c *Client) UpdateRecipe(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error) {
	var updated models.Recipe
	path := "/recipes/" + url.PathEscape(recipe.ID)
	status, err := c.do(ctx, http.MethodPut, path, recipe, &updated)
	if err != nil {
		return nil, fmt.Errorf("%w recipe: %v", errs.ErrUpdateFailed, err)
	}
	if status == http.StatusNotFound {
		return nil, errs.ErrRecipeNotFound
	}
	if !ok(status) {
		return nil, fmt.Errorf("%w recipe: status %d", errs.ErrUpdateFailed, status)
	}
	return &updated, nil
}
