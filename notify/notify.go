package notify

import (
	"context"
	"fmt"
	"io"
)

// Notifier tells the user how an extraction run ended
type Notifier interface {
	Notify(ctx context.Context, message string) error
}

// ConsoleNotifier prints the message in place of the browser alert
type ConsoleNotifier struct {
	w io.Writer
}

// NewConsoleNotifier creates a notifier writing to w
func NewConsoleNotifier(w io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{w: w}
}

// Notify implements Notifier
func (c *ConsoleNotifier) Notify(ctx context.Context, message string) error {
	_, err := fmt.Fprintln(c.w, message)
	return err
}
