// internal/core/services/session.go
package services

import (
	"context"
	"log/slog"
	"sync"

	"github.com/easyboard/easyboard-go/internal/core/domain"
	"github.com/easyboard/easyboard-go/internal/core/ports"
)

// Session is the process-wide authentication state: the token is read from
// the store once at construction and updated on successful login, logout,
// or an external change notification from the store. Token presence is the
// sole authentication signal; no expiry is checked client-side.
type Session struct {
	store  ports.TokenStore
	logger *slog.Logger

	mu     sync.Mutex
	token  string
	member *domain.Member

	done chan struct{}
}

// NewSession creates the session, performing the one-time initial read and
// starting the watcher that mirrors external token changes. The subscription
// is taken before the initial read so a save landing between the two is
// still observed.
func NewSession(ctx context.Context, store ports.TokenStore, logger *slog.Logger) *Session {
	s := &Session{
		store:  store,
		logger: logger.With(slog.String("component", "session")),
		done:   make(chan struct{}),
	}
	changes := store.Changes()
	token, err := store.Load(ctx)
	if err != nil {
		s.logger.Warn("failed to read stored token", slog.String("error", err.Error()))
	}
	s.token = token
	go s.watch(changes)
	return s
}

func (s *Session) watch(changes <-chan string) {
	for {
		select {
		case <-s.done:
			return
		case token, ok := <-changes:
			if !ok {
				return
			}
			s.mu.Lock()
			s.token = token
			if token == "" {
				s.member = nil
			}
			s.mu.Unlock()
			s.logger.Debug("session token changed externally",
				slog.Bool("authenticated", token != ""))
		}
	}
}

// Authenticated reports whether a token is present.
func (s *Session) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != ""
}

// Token returns the current bearer token, or "".
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// SetToken persists the token and updates the in-process state. Called on
// successful login.
func (s *Session) SetToken(ctx context.Context, token string) error {
	if err := s.store.Save(ctx, token); err != nil {
		return err
	}
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return nil
}

// Logout clears the stored token and the cached member.
func (s *Session) Logout(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	s.token = ""
	s.member = nil
	s.mu.Unlock()
	return nil
}

// SetMember caches the member returned by login or profile reads.
func (s *Session) SetMember(m *domain.Member) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.member = m
}

// Member returns the cached member, or nil.
func (s *Session) Member() *domain.Member {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.member
}

// Close stops the change watcher.
func (s *Session) Close() {
	close(s.done)
}
