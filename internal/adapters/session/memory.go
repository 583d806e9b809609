// internal/adapters/session/memory.go

// Package session provides the token stores backing the client's
// authentication state: an in-process store for single-process use and a
// Redis-backed one whose change notifications let several processes observe
// login and logout, the way browser tabs observe storage events.
package session

import (
	"context"
	"sync"

	"github.com/easyboard/easyboard-go/internal/core/ports"
)

// Subscriber channels are buffered; a subscriber that falls this far
// behind loses intermediate values, never the channel.
const changeBuffer = 16

// MemoryStore keeps the token in process memory. Tokens never outlive the
// process.
type MemoryStore struct {
	mu    sync.Mutex
	token string
	subs  []chan string
}

// Statically assert that *MemoryStore implements the TokenStore port.
var _ ports.TokenStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory token store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns the stored token, or "".
func (s *MemoryStore) Load(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

// Save replaces the stored token and notifies subscribers.
func (s *MemoryStore) Save(_ context.Context, token string) error {
	s.mu.Lock()
	s.token = token
	subs := make([]chan string, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- token:
		default:
		}
	}
	return nil
}

// Clear removes the stored token and notifies subscribers with "".
func (s *MemoryStore) Clear(ctx context.Context) error {
	return s.Save(ctx, "")
}

// Changes returns a channel receiving every subsequent token replacement.
func (s *MemoryStore) Changes() <-chan string {
	ch := make(chan string, changeBuffer)
	s.mu.Lock()
	s.subs = append(s.subs, ch)
	s.mu.Unlock()
	return ch
}
