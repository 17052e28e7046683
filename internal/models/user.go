// Package models defines the persisted data model: users, messages, and the
// session. All types marshal to the JSON shapes stored in the key-value store.
package models

import "time"

// User is a registered account. Usernames are unique under case-insensitive
// comparison; users are immutable once created and never deleted.
type User struct {
	// ID is the creation time in milliseconds since the Unix epoch.
	ID int64 `json:"id"`

	Username string `json:"username"`

	// PasswordHash is either a bcrypt hash or a legacy hex rolling hash
	// (see cryptox). Never the plaintext password.
	PasswordHash string `json:"passwordHash"`

	CreatedAt time.Time `json:"createdAt"`
}
