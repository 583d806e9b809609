// internal/core/services/auth.go
package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/easyboard/easyboard-go/internal/core/domain"
	"github.com/easyboard/easyboard-go/internal/core/ports"
)

// AuthService handles registration and login. Login stores the returned
// bearer token in the session; error mapping is left to the caller via the
// domain error helpers, matching the listing forms.
type AuthService struct {
	api     ports.AuthAPI
	session *Session
	nav     ports.Navigator
	logger  *slog.Logger
}

// NewAuthService creates an auth service.
func NewAuthService(api ports.AuthAPI, session *Session, nav ports.Navigator, logger *slog.Logger) *AuthService {
	return &AuthService{
		api:     api,
		session: session,
		nav:     nav,
		logger:  logger.With(slog.String("component", "auth")),
	}
}

// Register creates an account and navigates to the login view on success.
// Username, email and phone are trimmed; the password is sent as typed.
// Username and password are required and checked before any request, so the
// failure carries field errors the forms already know how to render.
func (s *AuthService) Register(ctx context.Context, req ports.RegisterRequest) error {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)

	fields := make(map[string]string)
	if req.Username == "" {
		fields["username"] = "this field is required"
	}
	if req.Password == "" {
		fields["password"] = "this field is required"
	}
	if len(fields) > 0 {
		s.logger.Warn("registration rejected", slog.Int("missing_fields", len(fields)))
		return &domain.APIError{Fields: fields}
	}

	if _, err := s.api.Register(ctx, req); err != nil {
		s.logger.Warn("registration failed", slog.String("error", err.Error()))
		return err
	}
	s.logger.Info("account registered", slog.String("username", req.Username))
	s.nav.Navigate("/login")
	return nil
}

// Login authenticates, stores the access token and cached member, and
// navigates to the profile view.
func (s *AuthService) Login(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)

	result, err := s.api.Login(ctx, username, password)
	if err != nil {
		s.logger.Warn("login failed", slog.String("username", username))
		return err
	}
	if result.Access != "" {
		if err := s.session.SetToken(ctx, result.Access); err != nil {
			s.logger.Warn("failed to store token", slog.String("error", err.Error()))
		}
	}
	if result.Member != nil {
		s.session.SetMember(result.Member)
	}
	s.logger.Info("logged in", slog.String("username", username))
	s.nav.Navigate("/profile")
	return nil
}
