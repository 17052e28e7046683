package cli

import (
	"fmt"
	"time"
)

// relativeTime renders t relative to ref: "just now", minutes, hours, and an
// absolute day/month timestamp beyond 24 hours.
func relativeTime(t, ref time.Time) string {
	d := ref.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%d min ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%d h ago", int(d.Hours()))
	default:
		return t.Format("02/01 15:04")
	}
}
