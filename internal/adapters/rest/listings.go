// internal/adapters/rest/listings.go
package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/easyboard/easyboard-go/internal/core/domain"
	"github.com/easyboard/easyboard-go/internal/core/ports"
)

// Statically assert that *Client implements the ListingAPI port.
var _ ports.ListingAPI = (*Client)(nil)

// List fetches one page of listings filtered by the given query parameters.
func (c *Client) List(ctx context.Context, params map[string]string) (*domain.ResultPage, error) {
	var page domain.ResultPage
	if err := c.do(ctx, http.MethodGet, "/api/listings/", params, nil, &page); err != nil {
		return nil, err
	}
	if page.Results == nil {
		page.Results = []domain.Listing{}
	}
	return &page, nil
}

// Get fetches a single listing by id.
func (c *Client) Get(ctx context.Context, id int64) (*domain.Listing, error) {
	var listing domain.Listing
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/listings/%d/", id), nil, nil, &listing); err != nil {
		return nil, err
	}
	return &listing, nil
}

// Create publishes a new listing from a normalized draft payload.
func (c *Client) Create(ctx context.Context, payload map[string]any) (*domain.Listing, error) {
	var listing domain.Listing
	if err := c.do(ctx, http.MethodPost, "/api/listings/", nil, payload, &listing); err != nil {
		return nil, err
	}
	return &listing, nil
}

// Update applies a partial update to an existing listing.
func (c *Client) Update(ctx context.Context, id int64, payload map[string]any) (*domain.Listing, error) {
	var listing domain.Listing
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/listings/%d/", id), nil, payload, &listing); err != nil {
		return nil, err
	}
	return &listing, nil
}

// Delete removes a listing.
func (c *Client) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/listings/%d/", id), nil, nil, nil)
}
