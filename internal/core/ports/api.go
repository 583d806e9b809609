// internal/core/ports/api.go
package ports

import (
	"context"

	"github.com/easyboard/easyboard-go/internal/core/domain"
)

// ListingAPI defines the listings operations of the marketplace API.
type ListingAPI interface {
	List(ctx context.Context, params map[string]string) (*domain.ResultPage, error)
	Get(ctx context.Context, id int64) (*domain.Listing, error)
	Create(ctx context.Context, payload map[string]any) (*domain.Listing, error)
	Update(ctx context.Context, id int64, payload map[string]any) (*domain.Listing, error)
	Delete(ctx context.Context, id int64) error
}

// MetaAPI serves the category and condition reference lists.
type MetaAPI interface {
	Categories(ctx context.Context) (domain.ReferenceList, error)
	Conditions(ctx context.Context) (domain.ReferenceList, error)
}

// RegisterRequest is the registration payload. Email and Phone are optional
// and sent as null when empty.
type RegisterRequest struct {
	Username string
	Email    string
	Phone    string
	Password string
}

// LoginResult is the login response: an opaque bearer token plus the member
// when the API includes it.
type LoginResult struct {
	Access string         `json:"access"`
	Member *domain.Member `json:"member,omitempty"`
}

// AuthAPI defines the authentication operations.
type AuthAPI interface {
	Register(ctx context.Context, req RegisterRequest) (*domain.Member, error)
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}

// ProfileAPI defines the current-member profile operations.
type ProfileAPI interface {
	Me(ctx context.Context) (*domain.Member, error)
	Update(ctx context.Context, payload map[string]any) (*domain.Member, error)
}
