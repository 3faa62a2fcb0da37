package store

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/recipevault/recipevault/internal/errs"
	"github.com/recipevault/recipevault/internal/models"
)

// AuthState is the session state machine.
type AuthState int

const (
	StateAnonymous AuthState = iota
	StateAuthenticating
	StateAuthenticated
	StateError
)

func (s AuthState) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// AuthStore holds at most one signed-in user record in memory. There is no
// token or expiry model: the session lives exactly as long as the store
// says it does.
type AuthStore struct {
	mu    sync.Mutex
	users UserAPI
	log   zerolog.Logger

	state AuthState
	user  *models.User
	err   error
}

// NewAuthStore creates an anonymous auth store.
func NewAuthStore(users UserAPI, log zerolog.Logger) *AuthStore {
	return &AuthStore{
		users: users,
		log:   log,
		state: StateAnonymous,
	}
}

// SignUpParams carries the fields collected by the signup form.
type SignUpParams struct {
	Email    string
	Password string
	Name     string
	Bio      string
}

// ProfileUpdate carries the optional fields of a profile edit; nil fields
// are left untouched (shallow merge).
type ProfileUpdate struct {
	Name      *string
	Bio       *string
	AvatarURL *string
}

// Login resolves credentials against the users resource. The stored value
// is a bcrypt hash, never a plaintext password, and the session user is
// held with the hash stripped.
func (s *AuthStore) Login(ctx context.Context, email, password string) (*models.User, error) {
	s.setAuthenticating()

	candidates, err := s.users.FindUsersByEmail(ctx, email)
	if err != nil {
		s.setError(err)
		return nil, err
	}

	for i := range candidates {
		u := candidates[i]
		if u.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil {
			session := u.WithoutPassword()
			s.setAuthenticated(&session)
			s.log.Info().Str("user_id", session.ID).Msg("login succeeded")
			return &session, nil
		}
	}

	s.setError(errs.ErrInvalidCredentials)
	return nil, errs.ErrInvalidCredentials
}

// SignUp creates a new user after an email-uniqueness pre-query and signs
// it in. The avatar URL is derived from the name, like the original.
func (s *AuthStore) SignUp(ctx context.Context, params SignUpParams) (*models.User, error) {
	s.setAuthenticating()

	existing, err := s.users.FindUsersByEmail(ctx, params.Email)
	if err != nil {
		s.setError(err)
		return nil, err
	}
	if len(existing) > 0 {
		s.setError(errs.ErrEmailExists)
		return nil, errs.ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		s.setError(err)
		return nil, err
	}

	user := &models.User{
		Email:        params.Email,
		PasswordHash: string(hash),
		Name:         params.Name,
		Bio:          params.Bio,
		AvatarURL:    AvatarURL(params.Name),
		Favorites:    models.StringList{},
	}

	created, err := s.users.CreateUser(ctx, user)
	if err != nil {
		s.setError(err)
		return nil, err
	}

	session := created.WithoutPassword()
	s.setAuthenticated(&session)
	s.log.Info().Str("user_id", session.ID).Msg("signup succeeded")
	return &session, nil
}

// UpdateProfile fetches the current record, shallow-merges the provided
// fields, and persists a full replacement. Authenticated only.
func (s *AuthStore) UpdateProfile(ctx context.Context, update ProfileUpdate) (*models.User, error) {
	s.mu.Lock()
	if s.state != StateAuthenticated || s.user == nil {
		s.mu.Unlock()
		return nil, errs.ErrNotAuthenticated
	}
	userID := s.user.ID
	s.mu.Unlock()

	current, err := s.users.GetUser(ctx, userID)
	if err != nil {
		s.setError(err)
		return nil, err
	}

	if update.Name != nil {
		current.Name = *update.Name
	}
	if update.Bio != nil {
		current.Bio = *update.Bio
	}
	if update.AvatarURL != nil {
		current.AvatarURL = *update.AvatarURL
	}

	persisted, err := s.users.UpdateUser(ctx, current)
	if err != nil {
		s.setError(err)
		return nil, err
	}

	session := persisted.WithoutPassword()
	s.setAuthenticated(&session)
	return &session, nil
}

// Logout clears the session locally. No backend call is made.
func (s *AuthStore) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateAnonymous
	s.user = nil
	s.err = nil
}

// State returns the current session state.
func (s *AuthStore) State() AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// CurrentUser returns a copy of the session user, or nil when anonymous.
func (s *AuthStore) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Err returns the last auth error, if the store is in the error state.
func (s *AuthStore) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *AuthStore) setAuthenticating() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateAuthenticating
	s.err = nil
}

func (s *AuthStore) setAuthenticated(user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateAuthenticated
	s.user = user
	s.err = nil
}

func (s *AuthStore) setError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateError
	s.user = nil
	s.err = err
}

// AvatarURL derives a deterministic avatar image URL from a display name.
func AvatarURL(name string) string {
	return "https://ui-avatars.com/api/?name=" + strings.ReplaceAll(name, " ", "+") + "&background=random"
}
