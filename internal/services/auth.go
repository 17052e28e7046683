// Package services contains the application services: authentication and
// messaging. Both mutate collections only through the session state, which
// persists every change before the call returns.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/guidolabarca009-sketch/chat-app/internal/cryptox"
	"github.com/guidolabarca009-sketch/chat-app/internal/logging"
	"github.com/guidolabarca009-sketch/chat-app/internal/models"
	"github.com/guidolabarca009-sketch/chat-app/internal/state"
	"github.com/guidolabarca009-sketch/chat-app/internal/validate"
)

// AuthService registers and authenticates users against the session state.
type AuthService struct {
	state  *state.State
	hasher cryptox.Hasher
	minLen int
	log    logging.Logger
	ids    idClock
}

// NewAuthService constructs an AuthService. minPasswordLength is the
// configured minimum password length.
func NewAuthService(st *state.State, hasher cryptox.Hasher, minPasswordLength int, log logging.Logger) *AuthService {
	return &AuthService{state: st, hasher: hasher, minLen: minPasswordLength, log: log}
}

// Register validates the credentials and creates a new user. confirmPassword
// may be empty, in which case no confirmation check is made.
//
// Failure modes: ErrInvalidUsername, ErrInvalidPassword (both wrapping the
// validator's message), ErrPasswordMismatch, ErrUsernameTaken.
func (s *AuthService) Register(ctx context.Context, username, password, confirmPassword string) (models.User, error) {
	username = strings.TrimSpace(username)

	if res := validate.Username(username); !res.OK {
		return models.User{}, fmt.Errorf("%w: %s", ErrInvalidUsername, res.Message)
	}
	if res := validate.Password(password, s.minLen); !res.OK {
		return models.User{}, fmt.Errorf("%w: %s", ErrInvalidPassword, res.Message)
	}
	if confirmPassword != "" && confirmPassword != password {
		return models.User{}, ErrPasswordMismatch
	}
	if _, exists := s.state.FindUser(username); exists {
		return models.User{}, ErrUsernameTaken
	}

	hash, err := s.hasher.Hash([]byte(password))
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	createdAt := now()
	u := models.User{
		ID:           s.ids.next(createdAt),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    createdAt,
	}
	if err := s.state.AddUser(ctx, u); err != nil {
		return models.User{}, fmt.Errorf("persist user: %w", err)
	}

	s.log.Info(ctx, "user registered", "username", username)
	return u, nil
}

// Login checks the credentials against the user collection (username matched
// case-insensitively) and, on success, sets and persists the current user.
// It returns the stored username, which may differ from the input in case.
//
// Failure modes: ErrMissingCredentials, ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", ErrMissingCredentials
	}

	u, found := s.state.FindUser(username)
	if !found || !cryptox.Verify(u.PasswordHash, []byte(password)) {
		s.log.Warn(ctx, "login rejected", "username", username)
		return "", ErrInvalidCredentials
	}

	if err := s.state.SetCurrentUser(ctx, u.Username); err != nil {
		return "", fmt.Errorf("persist session: %w", err)
	}

	s.log.Info(ctx, "user logged in", "username", u.Username)
	return u.Username, nil
}

// Logout clears the current user. The caller must supply a confirmed Intent;
// the service itself never prompts.
func (s *AuthService) Logout(ctx context.Context, intent Intent) error {
	if !intent.Confirmed() {
		return ErrNotConfirmed
	}
	if err := s.state.ClearCurrentUser(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	s.log.Info(ctx, "user logged out")
	return nil
}
