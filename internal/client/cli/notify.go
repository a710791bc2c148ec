package cli

import (
	"fmt"
	"io"
)

// Severity of a user-facing notification.
type Severity string

const (
	SeveritySuccess     Severity = "success"
	SeverityDestructive Severity = "destructive"
)

// Notifier is the notification sink collaborator: it accepts a message and
// a severity and displays it. The terminal client prints toasts inline.
type Notifier interface {
	Notify(title, description string, severity Severity)
}

// ToastWriter renders notifications as single lines on w.
type ToastWriter struct {
	w io.Writer
}

func NewToastWriter(w io.Writer) *ToastWriter {
	return &ToastWriter{w: w}
}

func (t *ToastWriter) Notify(title, description string, severity Severity) {
	marker := "ok"
	if severity == SeverityDestructive {
		marker = "!!"
	}
	fmt.Fprintf(t.w, "[%s] %s: %s\n", marker, title, description)
}
