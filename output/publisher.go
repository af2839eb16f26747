package output

import (
	"context"
	"errors"
	"fmt"
	"log"

	"booth-extractor/models"
	"booth-extractor/notify"
)

// ErrNothingExtracted is returned when a run produced no records
var ErrNothingExtracted = errors.New("failed to extract items information")

// Scope describes which control produced the records
type Scope int

const (
	ScopeAllPages Scope = iota
	ScopeCurrentPage
	ScopeSingleItem
)

// Message is the text of the confirmation shown after a successful run
func Message(scope Scope, count int, dest string) string {
	switch scope {
	case ScopeSingleItem:
		return fmt.Sprintf("Item information copied to %s!", dest)
	case ScopeCurrentPage:
		return fmt.Sprintf("Items information copied to %s! (%d items from current page)", dest, count)
	default:
		return fmt.Sprintf("Items information copied to %s! (%d items from multiple pages)", dest, count)
	}
}

// Publisher hands records to the primary sink, then to any extra sinks, then notifies.
// A primary sink failure is logged and suppresses the notification.
type Publisher struct {
	Primary   Sink
	Extra     []Sink
	Notifiers []notify.Notifier
}

// Publish delivers records. Failures of extra sinks and notifiers are only logged.
func (p *Publisher) Publish(ctx context.Context, scope Scope, records []models.ItemRecord) error {
	if len(records) == 0 {
		log.Printf("Error: %v\n", ErrNothingExtracted)
		return ErrNothingExtracted
	}

	if data, err := FormatJSON(records); err == nil {
		log.Printf("Extracted Items Information:\n%s\n", data)
	}

	if err := p.Primary.Write(ctx, records); err != nil {
		log.Printf("Error: Failed to copy to %s: %v\n", p.Primary.Name(), err)
		return fmt.Errorf("failed to write to %s: %w", p.Primary.Name(), err)
	}

	for _, sink := range p.Extra {
		if err := sink.Write(ctx, records); err != nil {
			log.Printf("Warning: Failed to write to %s: %v\n", sink.Name(), err)
		}
	}

	message := Message(scope, len(records), p.Primary.Name())
	for _, n := range p.Notifiers {
		if err := n.Notify(ctx, message); err != nil {
			log.Printf("Warning: Failed to send notification: %v\n", err)
		}
	}

	return nil
}
