// Package report persists the scrape results as CSV tables, a bar chart,
// and a proof-of-execution marker. Each writer is independent: a failure
// in one never suppresses the others.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jjf3/rewindos-christmas-episodes/internal/filter"
	"github.com/jjf3/rewindos-christmas-episodes/internal/wiki"
)

// WriteEntriesCSV writes one row per entry with all fields. Reruns
// overwrite the file in place.
func WriteEntriesCSV(path string, entries []wiki.Entry) error {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			strconv.Itoa(e.Year),
			strconv.FormatBool(e.InAnimationSection),
			e.Text,
		})
	}
	return writeCSV(path, []string{"year", "in_animation_section", "entry"}, rows)
}

// WriteCountsCSV writes the year/count table in the order produced by the
// aggregator (count descending).
func WriteCountsCSV(path string, counts []filter.YearCount) error {
	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, []string{
			strconv.Itoa(c.Year),
			strconv.Itoa(c.Count),
		})
	}
	return writeCSV(path, []string{"year", "count"}, rows)
}

func writeCSV(path string, header []string, rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating dir for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("writing header to %s: %w", path, err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("writing rows to %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
