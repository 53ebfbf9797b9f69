package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/octoscout/octoscout/internal/domain"
)

// WriteCSV writes the header row and one row per record to a CSV file at
// path, creating the destination directory if absent. An empty record set
// still produces a file containing the header row.
func WriteCSV(records []*domain.ContributorRecord, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Header()); err != nil {
		return fmt.Errorf("failed to write export header: %w", err)
	}
	for _, rec := range records {
		if err := w.Write(Row(rec)); err != nil {
			return fmt.Errorf("failed to write export row for %s: %w", rec.Username, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush export file %s: %w", path, err)
	}
	return nil
}
