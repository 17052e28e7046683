package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/guidolabarca009-sketch/chat-app/internal/common"
	"github.com/guidolabarca009-sketch/chat-app/internal/services"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a username, password, and confirmation, and creates
// the account. Password buffers are wiped before returning.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Choose a username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword("Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if _, err := a.auth.Register(ctx, username, string(password), string(confirm)); err != nil {
		a.showError(err)
		return err
	}

	toast(a.out, toastSuccess, "registration complete, you can now login")
	return nil
}

// Login prompts for credentials and, on success, greets the user. The
// persisted session survives restarts until logout.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	who, err := a.auth.Login(ctx, username, string(password))
	if err != nil {
		a.showError(err)
		return err
	}

	toast(a.out, toastSuccess, fmt.Sprintf("welcome back, %s", who))
	return nil
}

// Logout asks for confirmation and clears the session. Declining keeps the
// user logged in.
func (a *App) Logout(ctx context.Context) error {
	if _, ok := a.currentUser(); !ok {
		return nil
	}

	intent := GetConfirmation(a.reader, "Log out?", a.out)
	if err := a.auth.Logout(ctx, intent); err != nil {
		if errors.Is(err, services.ErrNotConfirmed) {
			toast(a.out, toastInfo, "logout cancelled")
			return nil
		}
		a.showError(err)
		return err
	}

	toast(a.out, toastInfo, "logged out")
	return nil
}

// Theme prompts for and persists the UI theme preference.
func (a *App) Theme(ctx context.Context) error {
	choice, err := getSimpleText(a.reader, "Theme (light/dark)", a.out)
	if err != nil {
		return err
	}
	if choice != "light" && choice != "dark" {
		toast(a.out, toastWarning, "theme must be light or dark")
		return nil
	}
	if err := a.st.SetTheme(ctx, choice); err != nil {
		a.showError(err)
		return err
	}
	toast(a.out, toastSuccess, fmt.Sprintf("theme set to %s", choice))
	return nil
}

// showError maps a service failure to a toast. Empty-message failures stay
// silent; shape warnings show as warnings; everything else as an error.
func (a *App) showError(err error) {
	switch {
	case errors.Is(err, services.ErrEmptyMessage):
		// Blank input draws no feedback.
	case errors.Is(err, services.ErrMissingCredentials),
		errors.Is(err, services.ErrMessageTooLong):
		toast(a.out, toastWarning, err.Error())
	default:
		toast(a.out, toastError, err.Error())
	}
}
