package output

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"booth-extractor/models"

	"github.com/atotto/clipboard"
)

// FormatJSON renders records as a JSON array with a two-space indent
func FormatJSON(records []models.ItemRecord) ([]byte, error) {
	if records == nil {
		records = []models.ItemRecord{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode records: %w", err)
	}
	return data, nil
}

// Sink receives the records of a finished run
type Sink interface {
	// Name is used in the user notification, e.g. "clipboard"
	Name() string
	Write(ctx context.Context, records []models.ItemRecord) error
}

// ClipboardSink copies the JSON to the system clipboard
type ClipboardSink struct {
	write func(string) error
}

// NewClipboardSink creates a sink backed by the system clipboard
func NewClipboardSink() *ClipboardSink {
	return &ClipboardSink{write: clipboard.WriteAll}
}

// Name implements Sink
func (c *ClipboardSink) Name() string { return "clipboard" }

// Write implements Sink
func (c *ClipboardSink) Write(ctx context.Context, records []models.ItemRecord) error {
	data, err := FormatJSON(records)
	if err != nil {
		return err
	}
	return c.write(string(data))
}

// WriterSink writes the JSON to an io.Writer such as stdout
type WriterSink struct {
	name string
	w    io.Writer
}

// NewWriterSink creates a sink writing to w
func NewWriterSink(name string, w io.Writer) *WriterSink {
	return &WriterSink{name: name, w: w}
}

// Name implements Sink
func (s *WriterSink) Name() string { return s.name }

// Write implements Sink
func (s *WriterSink) Write(ctx context.Context, records []models.ItemRecord) error {
	data, err := FormatJSON(records)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = s.w.Write(data)
	return err
}

// FileSink writes the JSON to a file, replacing it
type FileSink struct {
	path string
}

// NewFileSink creates a sink writing to path
func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

// Name implements Sink
func (f *FileSink) Name() string { return f.path }

// Write implements Sink
func (f *FileSink) Write(ctx context.Context, records []models.ItemRecord) error {
	data, err := FormatJSON(records)
	if err != nil {
		return err
	}
	if err := os.WriteFile(f.path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", f.path, err)
	}
	return nil
}
