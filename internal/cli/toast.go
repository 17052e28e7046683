package cli

import (
	"fmt"
	"io"
)

// toastKind classifies a user-facing notification.
type toastKind string

const (
	toastSuccess toastKind = "success"
	toastError   toastKind = "error"
	toastInfo    toastKind = "info"
	toastWarning toastKind = "warning"
)

var toastMarks = map[toastKind]string{
	toastSuccess: "✔",
	toastError:   "✖",
	toastInfo:    "ℹ",
	toastWarning: "!",
}

// toast prints a one-line, non-blocking notification. Every service failure
// surfaces through here; nothing ever halts the REPL.
func toast(w io.Writer, kind toastKind, msg string) {
	fmt.Fprintf(w, "%s %s\n", toastMarks[kind], msg)
}
