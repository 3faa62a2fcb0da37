// Package errs contains sentinel errors used across layers for stable error mapping.
//
// The messages double as the user-facing display strings: the UI layer
// surfaces them verbatim, so their exact wording is part of the contract.
package errs

import "errors"

var (
	// ErrRecipeNotFound indicates a recipe id that does not exist.
	ErrRecipeNotFound = errors.New("Recipe not found")

	// ErrUserNotFound indicates a user id that does not exist.
	ErrUserNotFound = errors.New("User not found")

	// ErrInvalidCredentials indicates a failed email/password check.
	ErrInvalidCredentials = errors.New("Invalid email or password")

	// ErrEmailExists indicates a signup against an already registered email.
	ErrEmailExists = errors.New("Email already exists")

	// ErrNotAuthenticated indicates an operation that requires a session user.
	ErrNotAuthenticated = errors.New("Not signed in")

	// Generic network failures, per operation. Transient and permanent
	// failures are deliberately not distinguished.
	ErrFetchFailed  = errors.New("Failed to fetch")
	ErrCreateFailed = errors.New("Failed to create")
	ErrUpdateFailed = errors.New("Failed to update")
)
