package report

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/civicdocs/meeting-docs/internal/meeting"
)

// columns is the fixed CSV column order.
var columns = []string{"title", "date", "pdf_url", "file"}

// Reporter accumulates one record per downloaded document.
type Reporter struct {
	records []meeting.Record
}

// New creates an empty Reporter.
func New() *Reporter {
	return &Reporter{
		records: make([]meeting.Record, 0),
	}
}

// Add appends a download record. Records are written to the CSV in the
// order they were added.
func (r *Reporter) Add(rec meeting.Record) {
	r.records = append(r.records, rec)
}

// Count returns the number of accumulated records.
func (r *Reporter) Count() int {
	return len(r.records)
}

// Records returns the accumulated records in download order.
func (r *Reporter) Records() []meeting.Record {
	return r.records
}

// WriteCSV writes all accumulated records to path, overwriting any
// existing file. The output starts with a header row followed by one line
// per record.
func (r *Reporter) WriteCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating CSV file: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		f.Close() // nolint:errcheck
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, rec := range r.records {
		row := []string{rec.Title, rec.Date, rec.PDFURL, rec.File}
		if err := w.Write(row); err != nil {
			f.Close() // nolint:errcheck
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close() // nolint:errcheck
		return fmt.Errorf("flushing CSV: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing CSV file: %w", err)
	}

	return nil
}
