package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/jjf3/rewindos-christmas-episodes/internal/filter"
)

// chartTitle matches the published artifact name for this dataset.
const chartTitle = "US Christmas TV Episodes by Year (filtered)"

// WriteChart renders a bar chart of count per year, year ascending on the
// x-axis. Callers treat a chart failure as a warning; the CSV tables are
// written regardless.
func WriteChart(path string, counts []filter.YearCount, widthInches, heightInches float64) error {
	if len(counts) == 0 {
		return errors.New("no counts to chart")
	}

	sorted := make([]filter.YearCount, len(counts))
	copy(sorted, counts)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Year < sorted[j].Year })

	values := make(plotter.Values, len(sorted))
	labels := make([]string, len(sorted))
	for i, c := range sorted {
		values[i] = float64(c.Count)
		labels[i] = strconv.Itoa(c.Year)
	}

	p := plot.New()
	p.Title.Text = chartTitle
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Count"

	bars, err := plotter.NewBarChart(values, vg.Points(8))
	if err != nil {
		return fmt.Errorf("building bar chart: %w", err)
	}
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalX(labels...)

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating dir for %s: %w", path, err)
	}
	width := vg.Length(widthInches) * vg.Inch
	height := vg.Length(heightInches) * vg.Inch
	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("saving chart %s: %w", path, err)
	}
	return nil
}
