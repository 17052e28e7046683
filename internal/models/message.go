package models

import "time"

// Message is a chat message. Messages are append-only; the only mutation is
// deletion by the original author.
type Message struct {
	// ID is the creation time in milliseconds since the Unix epoch.
	ID int64 `json:"id"`

	// User is the author's username (foreign key to User.Username).
	User string `json:"user"`

	Text string `json:"text"`

	Timestamp time.Time `json:"timestamp"`

	// Edited is reserved for a future edit feature; always false today.
	Edited bool `json:"edited"`
}
