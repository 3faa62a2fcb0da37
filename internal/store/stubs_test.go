package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/recipevault/recipevault/internal/errs"
	"github.com/recipevault/recipevault/internal/models"
)

var errBackendDown = errors.New("backend down")

// stubAPI is an in-memory stand-in for the resource client. Setting fail
// makes every call return errBackendDown.
type stubAPI struct {
	mu      sync.Mutex
	recipes []models.Recipe
	users   []models.User
	fail    bool

	listCalls int
}

func (s *stubAPI) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listCalls++
	if s.fail {
		return nil, fmt.Errorf("%w recipes: %v", errs.ErrFetchFailed, errBackendDown)
	}
	return append([]models.Recipe(nil), s.recipes...), nil
}

func (s *stubAPI) GetRecipe(ctx context.Context, id string) (*models.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return nil, fmt.Errorf("%w recipe: %v", errs.ErrFetchFailed, errBackendDown)
	}
	for i := range s.recipes {
		if s.recipes[i].ID == id {
			r := s.recipes[i]
			return &r, nil
		}
	}
	return nil, errs.ErrRecipeNotFound
}

func (s *stubAPI) ListUserRecipes(ctx context.Context, userID string) ([]models.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return nil, fmt.Errorf("%w user recipes: %v", errs.ErrFetchFailed, errBackendDown)
	}
	var out []models.Recipe
	for _, r := range s.recipes {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *stubAPI) CreateRecipe(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return nil, fmt.Errorf("%w recipe: %v", errs.ErrCreateFailed, errBackendDown)
	}
	r := *recipe
	r.ID = uuid.NewString()
	s.recipes = append(s.recipes, r)
	return &r, nil
}

func (s *stubAPI) UpdateRecipe(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return nil, fmt.Errorf("%w recipe: %v", errs.ErrUpdateFailed, errBackendDown)
	}
	for i := range s.recipes {
		if s.recipes[i].ID == recipe.ID {
			s.recipes[i] = *recipe
			r := *recipe
			return &r, nil
		}
	}
	return nil, errs.ErrRecipeNotFound
}

func (s *stubAPI) FindUsersByEmail(ctx context.Context, email string) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return nil, fmt.Errorf("%w users: %v", errs.ErrFetchFailed, errBackendDown)
	}
	var out []models.User
	for _, u := range s.users {
		if u.Email == email {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *stubAPI) GetUser(ctx context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return nil, fmt.Errorf("%w user: %v", errs.ErrFetchFailed, errBackendDown)
	}
	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, errs.ErrUserNotFound
}

func (s *stubAPI) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return nil, fmt.Errorf("%w user: %v", errs.ErrCreateFailed, errBackendDown)
	}
	u := *user
	u.ID = uuid.NewString()
	s.users = append(s.users, u)
	return &u, nil
}

func (s *stubAPI) UpdateUser(ctx context.Context, user *models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return nil, fmt.Errorf("%w user: %v", errs.ErrUpdateFailed, errBackendDown)
	}
	for i := range s.users {
		if s.users[i].ID == user.ID {
			s.users[i] = *user
			u := *user
			return &u, nil
		}
	}
	return nil, errs.ErrUserNotFound
}
