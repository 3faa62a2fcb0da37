package store

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/recipevault/recipevault/internal/models"
)

// FavoritesStore holds the favorite recipe ids and the hydrated recipe
// objects for those ids. Toggling is synchronous and purely local;
// hydration goes through the recipes resource.
type FavoritesStore struct {
	mu      sync.Mutex
	recipes RecipeAPI
	users   UserAPI
	log     zerolog.Logger

	favorites       []string
	favoriteRecipes []models.Recipe
	loading         bool
	err             error
}

// NewFavoritesStore creates an empty favorites store.
func NewFavoritesStore(recipes RecipeAPI, users UserAPI, log zerolog.Logger) *FavoritesStore {
	return &FavoritesStore{
		recipes: recipes,
		users:   users,
		log:     log,
	}
}

// SetFavorites replaces the id set, typically from the user record at
// login. Duplicates are dropped; the hydrated cache is reset.
func (s *FavoritesStore) SetFavorites(ids []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{}, len(ids))
	s.favorites = s.favorites[:0]
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		s.favorites = append(s.favorites, id)
	}
	s.favoriteRecipes = nil
}

// Toggle flips a recipe id in the favorites set. Removing also drops the
// hydrated recipe; adding does NOT hydrate — the caller re-hydrates via
// FetchFavoriteRecipes when it wants the object.
func (s *FavoritesStore) Toggle(recipeID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, id := range s.favorites {
		if id != recipeID {
			continue
		}
		s.favorites = append(s.favorites[:i], s.favorites[i+1:]...)
		for j, r := range s.favoriteRecipes {
			if r.ID == recipeID {
				s.favoriteRecipes = append(s.favoriteRecipes[:j], s.favoriteRecipes[j+1:]...)
				break
			}
		}
		return
	}

	s.favorites = append(s.favorites, recipeID)
}

// IsFavorite reports whether the id is currently in the set.
func (s *FavoritesStore) IsFavorite(recipeID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.favorites {
		if id == recipeID {
			return true
		}
	}
	return false
}

// Favorites returns a copy of the favorite id set.
func (s *FavoritesStore) Favorites() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.favorites...)
}

// FavoriteRecipes returns a copy of the hydrated recipe cache.
func (s *FavoritesStore) FavoriteRecipes() []models.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Recipe(nil), s.favoriteRecipes...)
}

// Loading reports whether a hydration is in flight.
func (s *FavoritesStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the last hydration error.
func (s *FavoritesStore) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// FetchFavoriteRecipes hydrates the favorite ids into recipe objects. An
// empty set resolves locally without a network call. There is no
// fetch-by-id-batch endpoint, so this fetches the full list and joins
// client-side.
func (s *FavoritesStore) FetchFavoriteRecipes(ctx context.Context) ([]models.Recipe, error) {
	s.mu.Lock()
	ids := append([]string(nil), s.favorites...)
	if len(ids) == 0 {
		s.favoriteRecipes = nil
		s.err = nil
		s.mu.Unlock()
		return nil, nil
	}
	s.loading = true
	s.err = nil
	s.mu.Unlock()

	all, err := s.recipes.ListRecipes(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = err
		return nil, err
	}

	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	hydrated := make([]models.Recipe, 0, len(ids))
	for _, r := range all {
		if _, ok := wanted[r.ID]; ok {
			hydrated = append(hydrated, r)
		}
	}

	s.favoriteRecipes = hydrated
	return append([]models.Recipe(nil), hydrated...), nil
}

// UpdateUserFavorites persists the current favorites set onto the user
// record: full profile fetch, merge, full replacement.
func (s *FavoritesStore) UpdateUserFavorites(ctx context.Context, userID string) (*models.User, error) {
	s.mu.Lock()
	ids := append(models.StringList(nil), s.favorites...)
	s.mu.Unlock()

	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Favorites = ids
	updated, err := s.users.UpdateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Debug().Str("user_id", userID).Int("count", len(ids)).Msg("favorites persisted")
	return updated, nil
}
