// Package state holds the in-memory mirror of the persisted collections:
// users, messages, and the current user. It is loaded once at startup and
// writes every mutated collection back through the storage adapter, whole,
// before returning. There is no partial or batched persistence; concurrent
// processes sharing a store race with last-writer-wins semantics.
package state

import (
	"context"
	"strings"

	"github.com/guidolabarca009-sketch/chat-app/internal/logging"
	"github.com/guidolabarca009-sketch/chat-app/internal/models"
	"github.com/guidolabarca009-sketch/chat-app/internal/storage"
)

// State owns the three collections exclusively. Services mutate them only
// through its methods.
type State struct {
	adapter *storage.Adapter
	log     logging.Logger

	users       []models.User
	messages    []models.Message
	currentUser string
	theme       string
}

// Load builds a State from the store. Missing or corrupt values fall back to
// empty collections and no current user.
func Load(ctx context.Context, adapter *storage.Adapter, log logging.Logger) *State {
	s := &State{adapter: adapter, log: log}

	if !adapter.Load(ctx, storage.KeyUsers, &s.users) {
		s.users = nil
	}
	if !adapter.Load(ctx, storage.KeyMessages, &s.messages) {
		s.messages = nil
	}
	if !adapter.Load(ctx, storage.KeyCurrentUser, &s.currentUser) {
		s.currentUser = ""
	}
	if !adapter.Load(ctx, storage.KeyTheme, &s.theme) {
		s.theme = ""
	}

	log.Debug(ctx, "state loaded",
		"users", len(s.users), "messages", len(s.messages), "current_user", s.currentUser)
	return s
}

// Users returns a copy of the user collection.
func (s *State) Users() []models.User {
	return append([]models.User(nil), s.users...)
}

// Messages returns a copy of the message collection in insertion order.
func (s *State) Messages() []models.Message {
	return append([]models.Message(nil), s.messages...)
}

// CurrentUser returns the logged-in username, or "" when nobody is.
func (s *State) CurrentUser() string { return s.currentUser }

// Theme returns the persisted theme preference, or "" when unset.
func (s *State) Theme() string { return s.theme }

// FindUser looks a user up by case-insensitive username.
func (s *State) FindUser(username string) (models.User, bool) {
	for _, u := range s.users {
		if strings.EqualFold(u.Username, username) {
			return u, true
		}
	}
	return models.User{}, false
}

// FindMessage looks a message up by id.
func (s *State) FindMessage(id int64) (models.Message, bool) {
	for _, m := range s.messages {
		if m.ID == id {
			return m, true
		}
	}
	return models.Message{}, false
}

// AddUser appends the user and persists the whole collection.
func (s *State) AddUser(ctx context.Context, u models.User) error {
	s.users = append(s.users, u)
	if err := s.adapter.Save(ctx, storage.KeyUsers, s.users); err != nil {
		return err
	}
	return nil
}

// AddMessage appends the message and persists the whole collection.
func (s *State) AddMessage(ctx context.Context, m models.Message) error {
	s.messages = append(s.messages, m)
	return s.adapter.Save(ctx, storage.KeyMessages, s.messages)
}

// RemoveMessage drops the message with the given id and persists the
// collection. Removing an unknown id persists the collection unchanged;
// existence checks belong to the caller.
func (s *State) RemoveMessage(ctx context.Context, id int64) error {
	kept := s.messages[:0]
	for _, m := range s.messages {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	s.messages = kept
	return s.adapter.Save(ctx, storage.KeyMessages, s.messages)
}

// SetCurrentUser records and persists the logged-in username.
func (s *State) SetCurrentUser(ctx context.Context, username string) error {
	s.currentUser = username
	return s.adapter.Save(ctx, storage.KeyCurrentUser, username)
}

// ClearCurrentUser logs the user out, removing the persisted value.
func (s *State) ClearCurrentUser(ctx context.Context) error {
	s.currentUser = ""
	return s.adapter.Remove(ctx, storage.KeyCurrentUser)
}

// SetTheme records and persists the theme preference.
func (s *State) SetTheme(ctx context.Context, theme string) error {
	s.theme = theme
	return s.adapter.Save(ctx, storage.KeyTheme, theme)
}
