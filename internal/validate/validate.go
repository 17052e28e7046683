// Package validate holds the pure input validators for usernames, passwords,
// and message text. All functions are deterministic and side-effect free.
package validate

import (
	"fmt"
	"strings"
)

// MinUsernameLength is the minimum trimmed username length.
const MinUsernameLength = 3

// Result reports whether a value passed validation. Message is the
// user-facing explanation; it may be empty for failures that should stay
// silent (blank message text).
type Result struct {
	OK      bool
	Message string
}

func ok() Result { return Result{OK: true} }

func fail(format string, a ...any) Result {
	return Result{Message: fmt.Sprintf(format, a...)}
}

// Username requires at least MinUsernameLength characters after trimming and
// allows only letters, digits, and underscore.
func Username(value string) Result {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) < MinUsernameLength {
		return fail("username must be at least %d characters", MinUsernameLength)
	}
	for _, r := range trimmed {
		if !isWordChar(r) {
			return fail("only letters, digits, and underscore are allowed")
		}
	}
	return ok()
}

// Password requires at least min characters.
func Password(value string, min int) Result {
	if len(value) < min {
		return fail("password must be at least %d characters", min)
	}
	return ok()
}

// Message rejects blank text silently (empty Result.Message) and text longer
// than max characters with an explanation. Length is counted in runes so a
// multi-byte character still counts as one.
func Message(value string, max int) Result {
	if strings.TrimSpace(value) == "" {
		return Result{}
	}
	if len([]rune(value)) > max {
		return fail("maximum %d characters", max)
	}
	return ok()
}

func isWordChar(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '_':
		return true
	}
	return false
}
