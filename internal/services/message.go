package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/guidolabarca009-sketch/chat-app/internal/logging"
	"github.com/guidolabarca009-sketch/chat-app/internal/models"
	"github.com/guidolabarca009-sketch/chat-app/internal/state"
	"github.com/guidolabarca009-sketch/chat-app/internal/validate"
)

// MessageService appends, lists, and deletes messages for the current user.
type MessageService struct {
	state  *state.State
	maxLen int
	log    logging.Logger
	ids    idClock
}

// NewMessageService constructs a MessageService. maxMessageLength is the
// configured maximum message length in characters.
func NewMessageService(st *state.State, maxMessageLength int, log logging.Logger) *MessageService {
	return &MessageService{state: st, maxLen: maxMessageLength, log: log}
}

// Send validates the text, appends a message authored by currentUser, and
// persists the collection. The created message is returned.
//
// Failure modes: ErrEmptyMessage (carries no user-facing message),
// ErrMessageTooLong wrapping the validator's message.
func (s *MessageService) Send(ctx context.Context, currentUser, text string) (models.Message, error) {
	if res := validate.Message(text, s.maxLen); !res.OK {
		if res.Message == "" {
			return models.Message{}, ErrEmptyMessage
		}
		return models.Message{}, fmt.Errorf("%w: %s", ErrMessageTooLong, res.Message)
	}

	sentAt := now()
	m := models.Message{
		ID:        s.ids.next(sentAt),
		User:      currentUser,
		Text:      strings.TrimSpace(text),
		Timestamp: sentAt,
		Edited:    false,
	}
	if err := s.state.AddMessage(ctx, m); err != nil {
		return models.Message{}, fmt.Errorf("persist message: %w", err)
	}

	s.log.Debug(ctx, "message sent", "id", m.ID, "user", m.User)
	return m, nil
}

// Delete removes the message with the given id if currentUser is its author.
// The caller must supply a confirmed Intent.
//
// Failure modes: ErrMessageNotFound, ErrNotOwner, ErrNotConfirmed.
func (s *MessageService) Delete(ctx context.Context, currentUser string, id int64, intent Intent) error {
	m, found := s.state.FindMessage(id)
	if !found {
		return ErrMessageNotFound
	}
	if m.User != currentUser {
		return ErrNotOwner
	}
	if !intent.Confirmed() {
		return ErrNotConfirmed
	}

	if err := s.state.RemoveMessage(ctx, id); err != nil {
		return fmt.Errorf("persist removal: %w", err)
	}
	s.log.Debug(ctx, "message deleted", "id", id, "user", currentUser)
	return nil
}

// List returns all messages in insertion order.
func (s *MessageService) List(ctx context.Context) []models.Message {
	return s.state.Messages()
}
