package store

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/recipevault/recipevault/internal/errs"
	"github.com/recipevault/recipevault/internal/models"
)

func seedUser(t *testing.T, api *stubAPI, email, password string) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := models.User{
		ID:           "u-" + email,
		Email:        email,
		PasswordHash: string(hash),
		Name:         "Seeded",
		Favorites:    models.StringList{"1"},
	}
	api.users = append(api.users, u)
	return u
}

func TestLoginSuccessStripsPassword(t *testing.T) {
	api := &stubAPI{}
	seeded := seedUser(t, api, "demo@example.com", "demo123")
	s := NewAuthStore(api, zerolog.Nop())

	user, err := s.Login(context.Background(), "demo@example.com", "demo123")
	require.NoError(t, err)

	assert.Equal(t, seeded.ID, user.ID)
	assert.Empty(t, user.PasswordHash)
	assert.Equal(t, StateAuthenticated, s.State())

	current := s.CurrentUser()
	require.NotNil(t, current)
	assert.Empty(t, current.PasswordHash)
}

func TestLoginWrongPassword(t *testing.T) {
	api := &stubAPI{}
	seedUser(t, api, "demo@example.com", "demo123")
	s := NewAuthStore(api, zerolog.Nop())

	_, err := s.Login(context.Background(), "demo@example.com", "wrong")
	assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	assert.EqualError(t, err, "Invalid email or password")
	assert.Equal(t, StateError, s.State())
	assert.Nil(t, s.CurrentUser())
}

func TestLoginUnknownEmail(t *testing.T) {
	api := &stubAPI{}
	s := NewAuthStore(api, zerolog.Nop())

	_, err := s.Login(context.Background(), "nobody@example.com", "x")
	assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
}

func TestLoginBackendFailure(t *testing.T) {
	api := &stubAPI{fail: true}
	s := NewAuthStore(api, zerolog.Nop())

	_, err := s.Login(context.Background(), "demo@example.com", "demo123")
	assert.ErrorIs(t, err, errs.ErrFetchFailed)
	assert.Equal(t, StateError, s.State())
	assert.ErrorIs(t, s.Err(), errs.ErrFetchFailed)
}

func TestSignUpCreatesHashedUser(t *testing.T) {
	api := &stubAPI{}
	s := NewAuthStore(api, zerolog.Nop())

	user, err := s.SignUp(context.Background(), SignUpParams{
		Email:    "new@example.com",
		Password: "secret",
		Name:     "New User",
		Bio:      "hello",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Empty(t, user.PasswordHash, "session user carries no hash")
	assert.Equal(t, models.StringList{}, user.Favorites)
	assert.Equal(t, "https://ui-avatars.com/api/?name=New+User&background=random", user.AvatarURL)
	assert.Equal(t, StateAuthenticated, s.State())

	// The stored record carries a bcrypt hash, never the plaintext.
	require.Len(t, api.users, 1)
	stored := api.users[0]
	assert.NotEqual(t, "secret", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret")))
}

func TestSignUpDuplicateEmail(t *testing.T) {
	api := &stubAPI{}
	seedUser(t, api, "taken@example.com", "pw")
	s := NewAuthStore(api, zerolog.Nop())

	_, err := s.SignUp(context.Background(), SignUpParams{
		Email:    "taken@example.com",
		Password: "pw2",
		Name:     "Dup",
	})
	assert.ErrorIs(t, err, errs.ErrEmailExists)
	assert.EqualError(t, err, "Email already exists")
	assert.Len(t, api.users, 1, "no second record created")
}

func TestUpdateProfileShallowMerge(t *testing.T) {
	api := &stubAPI{}
	seedUser(t, api, "demo@example.com", "demo123")
	s := NewAuthStore(api, zerolog.Nop())

	_, err := s.Login(context.Background(), "demo@example.com", "demo123")
	require.NoError(t, err)

	newBio := "updated bio"
	user, err := s.UpdateProfile(context.Background(), ProfileUpdate{Bio: &newBio})
	require.NoError(t, err)

	assert.Equal(t, "updated bio", user.Bio)
	assert.Equal(t, "Seeded", user.Name, "unset fields untouched")

	// The persisted record keeps its hash even though the session copy
	// never carries one.
	assert.NotEmpty(t, api.users[0].PasswordHash)
}

func TestUpdateProfileRequiresSession(t *testing.T) {
	s := NewAuthStore(&stubAPI{}, zerolog.Nop())

	name := "x"
	_, err := s.UpdateProfile(context.Background(), ProfileUpdate{Name: &name})
	assert.ErrorIs(t, err, errs.ErrNotAuthenticated)
}

func TestLogoutClearsSession(t *testing.T) {
	api := &stubAPI{}
	seedUser(t, api, "demo@example.com", "demo123")
	s := NewAuthStore(api, zerolog.Nop())

	_, err := s.Login(context.Background(), "demo@example.com", "demo123")
	require.NoError(t, err)

	s.Logout()
	assert.Equal(t, StateAnonymous, s.State())
	assert.Nil(t, s.CurrentUser())
	assert.NoError(t, s.Err())
}

func TestAvatarURL(t *testing.T) {
	assert.Equal(t,
		"https://ui-avatars.com/api/?name=Jane+Q+Public&background=random",
		AvatarURL("Jane Q Public"))
}
