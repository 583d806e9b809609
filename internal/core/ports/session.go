// internal/core/ports/session.go
package ports

import "context"

// TokenStore holds the bearer token under a fixed name for the lifetime of
// the client process. Changes delivers the new token value (empty on clear)
// whenever the stored token is replaced, including by another process when
// the backing store is shared.
type TokenStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
	Changes() <-chan string
}
