package services

import "errors"

// Sentinel errors, taxonomized by cause. All are recoverable at the call
// site; the presentation layer surfaces them as notifications and carries on.
// Match with errors.Is; validation failures wrap these with the validator's
// user-facing message.
var (
	// Invalid input.
	ErrInvalidUsername  = errors.New("invalid username")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrEmptyMessage     = errors.New("empty message")
	ErrMessageTooLong   = errors.New("message too long")

	// Conflict.
	ErrUsernameTaken = errors.New("username already taken")

	// Unauthorized.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotOwner           = errors.New("only the author can delete a message")

	// Not found.
	ErrMessageNotFound = errors.New("message not found")

	ErrMissingCredentials = errors.New("missing credentials")

	// Destructive operations demand a confirmed Intent.
	ErrNotConfirmed = errors.New("operation not confirmed")
)
