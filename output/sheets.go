package output

import (
	"context"
	"fmt"
	"time"

	"booth-extractor/models"
	"booth-extractor/sheets"
)

// SheetsSink writes every run to a new sheet of a Google spreadsheet
type SheetsSink struct {
	writer    *sheets.Writer
	sourceURL string
	now       func() time.Time
}

// NewSheetsSink creates a sink for the spreadsheet behind writer
func NewSheetsSink(writer *sheets.Writer, sourceURL string) *SheetsSink {
	return &SheetsSink{writer: writer, sourceURL: sourceURL, now: time.Now}
}

// Name implements Sink
func (s *SheetsSink) Name() string { return "Google Sheets" }

// Write implements Sink
func (s *SheetsSink) Write(ctx context.Context, records []models.ItemRecord) error {
	sheetName := fmt.Sprintf("Booth_%s", s.now().Format("20060102_150405"))
	_, _, err := s.writer.CreateSheetAndWriteItems(ctx, sheetName, records, s.sourceURL)
	return err
}
