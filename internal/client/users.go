package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/recipevault/recipevault/internal/errs"
	"github.com/recipevault/recipevault/internal/models"
)

// FindUsersByEmail fetches the users whose email matches exactly. The
// backend has no uniqueness endpoint, so login and signup both go through
// this pre-query.
func (c *Client) FindUsersByEmail(ctx context.Context, email string) ([]models.User, error) {
	var users []models.User
	path := "/users?email=" + url.QueryEscape(email)
	status, err := c.do(ctx, http.MethodGet, path, nil, &users)
	if err != nil {
		return nil, fmt.Errorf("%w users: %v", errs.ErrFetchFailed, err)
	}
	if !ok(status) {
		return nil, fmt.Errorf("%w users: status %d", errs.ErrFetchFailed, status)
	}
	return users, nil
}

// GetUser fetches a user by id.
func (c *Client) GetUser(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	status, err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(id), nil, &user)
	if err != nil {
		return nil, fmt.Errorf("%w user: %v", errs.ErrFetchFailed, err)
	}
	if status == http.StatusNotFound {
		return nil, errs.ErrUserNotFound
	}
	if !ok(status) {
		return nil, fmt.Errorf("%w user: status %d", errs.ErrFetchFailed, status)
	}
	return &user, nil
}

// CreateUser creates a user record; the server assigns the id.
func (c *Client) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	var created models.User
	status, err := c.do(ctx, http.MethodPost, "/users", user, &created)
	if err != nil {
		return nil, fmt.Errorf("%w user: %v", errs.ErrCreateFailed, err)
	}
	if !ok(status) {
		return nil, fmt.Errorf("%w user: status %d", errs.ErrCreateFailed, status)
	}
	return &created, nil
}

// UpdateUser replaces the whole user resource.
func (c *Client) UpdateUser(ctx context.Context, user *models.User) (*models.User, error) {
	var updated models.User
	path := "/users/" + url.PathEscape(user.ID)
	status, err := c.do(ctx, http.MethodPut, path, user, &updated)
	if err != nil {
		return nil, fmt.Errorf("%w user: %v", errs.ErrUpdateFailed, err)
	}
	if status == http.StatusNotFound {
		return nil, errs.ErrUserNotFound
	}
	if !ok(status) {
		return nil, fmt.Errorf("%w user: status %d", errs.ErrUpdateFailed, status)
	}
	return &updated, nil
}
