package store

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/recipevault/recipevault/internal/models"
)

// CatalogStore holds the full recipe list, the single "current" recipe for
// a detail view, and the subset authored by the signed-in user.
//
// One loading flag covers every async operation; whichever of two
// overlapping requests finishes last wins the flag, the error slot, and
// currentRecipe. That is the specified behavior, not an oversight.
type CatalogStore struct {
	mu  sync.Mutex
	api RecipeAPI
	log zerolog.Logger

	recipes       []models.Recipe
	userRecipes   []models.Recipe
	currentRecipe *models.Recipe
	loading       bool
	err           error
}

// NewCatalogStore creates an empty catalog store.
func NewCatalogStore(api RecipeAPI, log zerolog.Logger) *CatalogStore {
	return &CatalogStore{
		api: api,
		log: log,
	}
}

// FetchAll loads the full recipe list.
func (s *CatalogStore) FetchAll(ctx context.Context) ([]models.Recipe, error) {
	s.begin()

	recipes, err := s.api.ListRecipes(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = err
		return nil, err
	}
	s.recipes = recipes
	return append([]models.Recipe(nil), recipes...), nil
}

// FetchByID loads a single recipe into currentRecipe.
func (s *CatalogStore) FetchByID(ctx context.Context, id string) (*models.Recipe, error) {
	s.begin()

	recipe, err := s.api.GetRecipe(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = err
		return nil, err
	}
	s.currentRecipe = recipe
	r := *recipe
	return &r, nil
}

// FetchUserRecipes loads the recipes owned by the given user.
func (s *CatalogStore) FetchUserRecipes(ctx context.Context, userID string) ([]models.Recipe, error) {
	s.begin()

	recipes, err := s.api.ListUserRecipes(ctx, userID)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = err
		return nil, err
	}
	s.userRecipes = recipes
	return append([]models.Recipe(nil), recipes...), nil
}

// Create submits a new recipe. The rating always starts at zero and the
// created recipe is appended to both list caches.
func (s *CatalogStore) Create(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error) {
	s.begin()

	recipe.Rating = 0
	created, err := s.api.CreateRecipe(ctx, recipe)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = err
		return nil, err
	}
	s.recipes = append(s.recipes, *created)
	s.userRecipes = append(s.userRecipes, *created)
	s.log.Info().Str("recipe_id", created.ID).Msg("recipe created")
	r := *created
	return &r, nil
}

// Update submits a full replacement and refreshes currentRecipe plus both
// list caches by id match.
func (s *CatalogStore) Update(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error) {
	s.begin()

	updated, err := s.api.UpdateRecipe(ctx, recipe)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = err
		return nil, err
	}

	s.currentRecipe = updated
	for i := range s.recipes {
		if s.recipes[i].ID == updated.ID {
			s.recipes[i] = *updated
			break
		}
	}
	for i := range s.userRecipes {
		if s.userRecipes[i].ID == updated.ID {
			s.userRecipes[i] = *updated
			break
		}
	}

	r := *updated
	return &r, nil
}

// Recipes returns a copy of the cached full list.
func (s *CatalogStore) Recipes() []models.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Recipe(nil), s.recipes...)
}

// UserRecipes returns a copy of the cached owned-by-user list.
func (s *CatalogStore) UserRecipes() []models.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Recipe(nil), s.userRecipes...)
}

// CurrentRecipe returns a copy of the most recently fetched or updated
// recipe, or nil.
func (s *CatalogStore) CurrentRecipe() *models.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentRecipe == nil {
		return nil
	}
	r := *s.currentRecipe
	return &r
}

// Loading reports whether any catalog operation is in flight.
func (s *CatalogStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the last catalog error.
func (s *CatalogStore) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *CatalogStore) begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	s.err = nil
}
