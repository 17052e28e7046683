package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/guidolabarca009-sketch/chat-app/internal/services"
)

// Send prompts for message text, sends it as the current user, and re-renders
// the list.
func (a *App) Send(ctx context.Context) error {
	who, ok := a.currentUser()
	if !ok {
		return nil
	}

	text, err := getSimpleText(a.reader, "Message", a.out)
	if err != nil {
		return err
	}

	if _, err := a.msgs.Send(ctx, who, text); err != nil {
		a.showError(err)
		return err
	}

	a.render(ctx)
	return nil
}

// List renders all messages in chronological order.
func (a *App) List(ctx context.Context) error {
	if _, ok := a.currentUser(); !ok {
		return nil
	}
	a.render(ctx)
	return nil
}

// Delete prompts for a message id, asks for confirmation, and removes the
// message if the current user is its author.
func (a *App) Delete(ctx context.Context) error {
	who, ok := a.currentUser()
	if !ok {
		return nil
	}

	idText, err := getSimpleText(a.reader, "Message id", a.out)
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(idText, 10, 64)
	if err != nil {
		toast(a.out, toastWarning, "message id must be a number")
		return nil
	}

	intent := GetConfirmation(a.reader, "Delete this message?", a.out)
	if err := a.msgs.Delete(ctx, who, id, intent); err != nil {
		if errors.Is(err, services.ErrNotConfirmed) {
			toast(a.out, toastInfo, "deletion cancelled")
			return nil
		}
		a.showError(err)
		return err
	}

	toast(a.out, toastInfo, "message deleted")
	a.render(ctx)
	return nil
}

// render prints the full message list, marking the current user's own
// messages. Called after every mutation.
func (a *App) render(ctx context.Context) {
	list := a.msgs.List(ctx)
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No messages yet. Start the conversation!")
		return
	}

	who := a.st.CurrentUser()
	ref := time.Now()
	for _, m := range list {
		marker := ""
		if m.User == who {
			marker = " (you)"
		}
		fmt.Fprintf(a.out, "%d  [%s] %s%s: %s\n",
			m.ID, relativeTime(m.Timestamp, ref), m.User, marker, m.Text)
	}
}
