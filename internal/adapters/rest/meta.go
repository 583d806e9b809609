// internal/adapters/rest/meta.go
package rest

import (
	"context"
	"net/http"

	"github.com/easyboard/easyboard-go/internal/core/domain"
	"github.com/easyboard/easyboard-go/internal/core/ports"
)

// Statically assert that *Client implements the MetaAPI port.
var _ ports.MetaAPI = (*Client)(nil)

// Categories fetches the ordered category reference list.
func (c *Client) Categories(ctx context.Context) (domain.ReferenceList, error) {
	var list domain.ReferenceList
	if err := c.do(ctx, http.MethodGet, "/api/meta/categories/", nil, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Conditions fetches the ordered condition reference list.
func (c *Client) Conditions(ctx context.Context) (domain.ReferenceList, error) {
	var list domain.ReferenceList
	if err := c.do(ctx, http.MethodGet, "/api/meta/conditions/", nil, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}
