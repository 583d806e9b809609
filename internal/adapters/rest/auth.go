// internal/adapters/rest/auth.go
package rest

import (
	"context"
	"net/http"

	"github.com/easyboard/easyboard-go/internal/core/domain"
	"github.com/easyboard/easyboard-go/internal/core/ports"
)

// Statically assert that *Client implements the AuthAPI port.
var _ ports.AuthAPI = (*Client)(nil)

// Register creates a new account. Optional email and phone are sent as
// null when empty.
func (c *Client) Register(ctx context.Context, req ports.RegisterRequest) (*domain.Member, error) {
	body := map[string]any{
		"username": req.Username,
		"email":    nullable(req.Email),
		"phone":    nullable(req.Phone),
		"password": req.Password,
	}
	var member domain.Member
	if err := c.do(ctx, http.MethodPost, "/api/auth/register/", nil, body, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

// Login exchanges credentials for an opaque bearer token.
func (c *Client) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	body := map[string]any{
		"username": username,
		"password": password,
	}
	var result ports.LoginResult
	if err := c.do(ctx, http.MethodPost, "/api/auth/login/", nil, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
