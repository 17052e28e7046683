package services

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/guidolabarca009-sketch/chat-app/internal/cryptox"
	"github.com/guidolabarca009-sketch/chat-app/internal/kv"
	"github.com/guidolabarca009-sketch/chat-app/internal/logging"
	"github.com/guidolabarca009-sketch/chat-app/internal/models"
	"github.com/guidolabarca009-sketch/chat-app/internal/state"
	"github.com/guidolabarca009-sketch/chat-app/internal/storage"
)

// ---- helpers ----

func newState(t *testing.T) (*state.State, logging.Logger) {
	t.Helper()
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	adapter := storage.NewAdapter(kv.NewMemoryStore(), log)
	return state.Load(context.Background(), adapter, log), log
}

// Low-cost bcrypt keeps the tests fast.
func newAuth(t *testing.T) (*AuthService, *state.State) {
	t.Helper()
	st, log := newState(t)
	return NewAuthService(st, cryptox.BcryptHasher{Cost: 4}, 6, log), st
}

// ---- tests ----

func TestRegisterThenLogin_RoundTrip(t *testing.T) {
	ctx := context.Background()
	auth, st := newAuth(t)

	u, err := auth.Register(ctx, "alice", "secret1", "")
	require.NoError(t, err)
	require.Equal(t, "alice", u.Username)
	require.NotEqual(t, "secret1", u.PasswordHash)

	who, err := auth.Login(ctx, "alice", "secret1")
	require.NoError(t, err)
	require.Equal(t, "alice", who)
	require.Equal(t, "alice", st.CurrentUser())
}

func TestLogin_CaseInsensitiveUsername(t *testing.T) {
	ctx := context.Background()
	auth, st := newAuth(t)

	_, err := auth.Register(ctx, "alice", "secret1", "")
	require.NoError(t, err)

	who, err := auth.Login(ctx, "Alice", "secret1")
	require.NoError(t, err)
	require.Equal(t, "alice", who, "login returns the stored username")
	require.Equal(t, "alice", st.CurrentUser())
}

func TestRegister_DuplicateUsernameAnyCase(t *testing.T) {
	ctx := context.Background()
	auth, _ := newAuth(t)

	_, err := auth.Register(ctx, "bob", "secret1", "")
	require.NoError(t, err)

	_, err = auth.Register(ctx, "bob", "other12", "")
	require.ErrorIs(t, err, ErrUsernameTaken)

	_, err = auth.Register(ctx, "BOB", "other12", "")
	require.ErrorIs(t, err, ErrUsernameTaken)
}

func TestRegister_ValidationFailures(t *testing.T) {
	ctx := context.Background()
	auth, _ := newAuth(t)

	_, err := auth.Register(ctx, "ab", "secret1", "")
	require.ErrorIs(t, err, ErrInvalidUsername)

	_, err = auth.Register(ctx, "al ice", "secret1", "")
	require.ErrorIs(t, err, ErrInvalidUsername)

	_, err = auth.Register(ctx, "alice", "short", "")
	require.ErrorIs(t, err, ErrInvalidPassword)
	require.Contains(t, err.Error(), "6", "wraps the validator's message")
}

func TestRegister_PasswordMismatch(t *testing.T) {
	ctx := context.Background()
	auth, _ := newAuth(t)

	_, err := auth.Register(ctx, "alice", "secret1", "secret2")
	require.ErrorIs(t, err, ErrPasswordMismatch)

	// Empty confirmation skips the check.
	_, err = auth.Register(ctx, "alice", "secret1", "")
	require.NoError(t, err)
}

func TestLogin_MissingCredentials(t *testing.T) {
	ctx := context.Background()
	auth, _ := newAuth(t)

	_, err := auth.Login(ctx, "", "secret1")
	require.ErrorIs(t, err, ErrMissingCredentials)

	_, err = auth.Login(ctx, "alice", "")
	require.ErrorIs(t, err, ErrMissingCredentials)

	_, err = auth.Login(ctx, "   ", "secret1")
	require.ErrorIs(t, err, ErrMissingCredentials)
}

func TestLogin_UnknownUserOrWrongPassword(t *testing.T) {
	ctx := context.Background()
	auth, st := newAuth(t)

	_, err := auth.Login(ctx, "nouser", "whatever")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.Register(ctx, "alice", "secret1", "")
	require.NoError(t, err)

	_, err = auth.Login(ctx, "alice", "wrong66")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	require.Equal(t, "", st.CurrentUser())
}

func TestLogin_AcceptsLegacyHashes(t *testing.T) {
	ctx := context.Background()
	st, log := newState(t)

	// A store written by the original client: legacy rolling hash.
	legacy, err := cryptox.LegacyHasher{}.Hash([]byte("secret1"))
	require.NoError(t, err)
	require.NoError(t, st.AddUser(ctx, models.User{
		ID: 1, Username: "olduser", PasswordHash: legacy, CreatedAt: time.Now(),
	}))

	auth := NewAuthService(st, cryptox.BcryptHasher{Cost: 4}, 6, log)
	who, err := auth.Login(ctx, "olduser", "secret1")
	require.NoError(t, err)
	require.Equal(t, "olduser", who)
}

func TestLogout_RequiresConfirmedIntent(t *testing.T) {
	ctx := context.Background()
	auth, st := newAuth(t)

	_, err := auth.Register(ctx, "alice", "secret1", "")
	require.NoError(t, err)
	_, err = auth.Login(ctx, "alice", "secret1")
	require.NoError(t, err)

	err = auth.Logout(ctx, Intent{})
	require.ErrorIs(t, err, ErrNotConfirmed)
	require.Equal(t, "alice", st.CurrentUser())

	require.NoError(t, auth.Logout(ctx, Confirm()))
	require.Equal(t, "", st.CurrentUser())
}

func TestRegister_IDsStrictlyIncreasing(t *testing.T) {
	ctx := context.Background()
	auth, _ := newAuth(t)

	a, err := auth.Register(ctx, "alice", "secret1", "")
	require.NoError(t, err)
	b, err := auth.Register(ctx, "bob", "secret1", "")
	require.NoError(t, err)
	require.Greater(t, b.ID, a.ID)
}
