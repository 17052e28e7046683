// Package cli is the presentation layer: a REPL that dispatches user actions
// into the auth and message services and re-renders after every mutation.
// The services never prompt or print; all interaction lives here.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/guidolabarca009-sketch/chat-app/internal/config"
	"github.com/guidolabarca009-sketch/chat-app/internal/cryptox"
	"github.com/guidolabarca009-sketch/chat-app/internal/filex"
	"github.com/guidolabarca009-sketch/chat-app/internal/kv"
	"github.com/guidolabarca009-sketch/chat-app/internal/logging"
	"github.com/guidolabarca009-sketch/chat-app/internal/services"
	"github.com/guidolabarca009-sketch/chat-app/internal/state"
	"github.com/guidolabarca009-sketch/chat-app/internal/storage"
)

type App struct {
	config *config.Config
	st     *state.State
	auth   *services.AuthService
	msgs   *services.MessageService
	log    logging.Logger
	db     *sql.DB

	reader *bufio.Reader
	out    io.Writer
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	log := logging.New(cfg.LogLevel).With("session", uuid.NewString())

	if err := filex.EnsureParentDir(cfg.StorePath); err != nil {
		return nil, err
	}
	db, err := kv.Open(ctx, cfg.StorePath)
	if err != nil {
		log.Error(ctx, "error initializing store", "path", cfg.StorePath, "error", err)
		return nil, err
	}

	adapter := storage.NewAdapter(kv.NewSQLiteStore(db), log)
	st := state.Load(ctx, adapter, log)

	auth := services.NewAuthService(st, cryptox.BcryptHasher{}, cfg.MinPasswordLength, log)
	msgs := services.NewMessageService(st, cfg.MaxMessageLength, log)

	return &App{
		config: cfg,
		st:     st,
		auth:   auth,
		msgs:   msgs,
		log:    log,
		db:     db,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

// Close releases the store handle.
func (a *App) Close() error {
	return a.db.Close()
}

// Run greets the user, restores a persisted session if one exists, and hands
// control to the REPL until exit or EOF.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintln(a.out, "Welcome to chat (type 'help' for commands)")
	if who := a.st.CurrentUser(); who != "" {
		toast(a.out, toastInfo, fmt.Sprintf("session restored for %s", who))
	}

	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.st.CurrentUser() != ""
}

func (a *App) status() string {
	if who := a.st.CurrentUser(); who != "" {
		return fmt.Sprintf("(%s)", who)
	}
	return ""
}

// currentUser returns the logged-in username, or toasts a hint and reports
// false when nobody is logged in.
func (a *App) currentUser() (string, bool) {
	who := a.st.CurrentUser()
	if who == "" {
		toast(a.out, toastWarning, "please login first")
		return "", false
	}
	return who, true
}
