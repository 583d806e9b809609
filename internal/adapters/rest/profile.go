// internal/adapters/rest/profile.go
package rest

import (
	"context"
	"net/http"

	"github.com/easyboard/easyboard-go/internal/core/domain"
	"github.com/easyboard/easyboard-go/internal/core/ports"
)

// Statically assert that *Client implements the ProfileAPI port.
var _ ports.ProfileAPI = (*Client)(nil)

// Me fetches the authenticated member.
func (c *Client) Me(ctx context.Context) (*domain.Member, error) {
	var member domain.Member
	if err := c.do(ctx, http.MethodGet, "/api/profile/", nil, nil, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

// Update applies a partial profile update.
func (c *Client) Update(ctx context.Context, payload map[string]any) (*domain.Member, error) {
	var member domain.Member
	if err := c.do(ctx, http.MethodPatch, "/api/profile/", nil, payload, &member); err != nil {
		return nil, err
	}
	return &member, nil
}
