// Package cryptox implements password hashing for the chat store.
//
// New accounts are hashed with bcrypt. Stores written by the original
// application contain hex values of a 32-bit rolling hash; those still verify
// through the legacy path so existing users can keep logging in.
package cryptox

import (
	"crypto/subtle"
	"strconv"
	"strings"
	"unicode/utf16"

	"golang.org/x/crypto/bcrypt"
)

// Hasher produces a password hash for storage. Implementations must be
// deterministic per input in the sense that Verify accepts what Hash produced.
type Hasher interface {
	Hash(password []byte) (string, error)
}

// BcryptHasher hashes with bcrypt at the given cost. Zero Cost means
// bcrypt.DefaultCost.
type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(password []byte) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword(password, cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// LegacyHasher reproduces the 32-bit rolling hash of the original client:
// h = h*31 + code over UTF-16 code units, truncated to int32, formatted as
// (signed) hex. Not collision resistant; kept only for verifying old stores.
type LegacyHasher struct{}

func (LegacyHasher) Hash(password []byte) (string, error) {
	var h int32
	for _, u := range utf16.Encode([]rune(string(password))) {
		h = h*31 + int32(u)
	}
	return strconv.FormatInt(int64(h), 16), nil
}

// Verify reports whether password matches the stored hash, accepting both
// bcrypt and legacy values.
func Verify(stored string, password []byte) bool {
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), password) == nil
	}
	candidate, err := LegacyHasher{}.Hash(password)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}
