// Package store holds the application state containers: auth session,
// favorites, and the recipe catalog. Each store guards an in-memory
// snapshot behind a mutex and dispatches async work through the resource
// client. By contract each store carries a single loading flag shared by
// all of its async operations; overlapping calls race last-writer-wins on
// it, exactly like the system this one mirrors.
package store

import (
	"context"

	"github.com/recipevault/recipevault/internal/models"
)

// RecipeAPI is the slice of the resource client the stores need for the
// recipes resource.
type RecipeAPI interface {
	ListRecipes(ctx context.Context) ([]models.Recipe, error)
	GetRecipe(ctx context.Context, id string) (*models.Recipe, error)
	ListUserRecipes(ctx context.Context, userID string) ([]models.Recipe, error)
	CreateRecipe(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error)
	UpdateRecipe(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error)
}

// UserAPI is the slice of the resource client the stores need for the
// users resource.
type UserAPI interface {
	FindUsersByEmail(ctx context.Context, email string) ([]models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) (*models.User, error)
}
