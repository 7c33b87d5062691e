package harness

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var csvHeader = []string{
	"Size",
	"Held-Karp Runtime (ms)",
	"Held-Karp Tour Length",
	"Local Search Runtime (ms)",
	"Local Search Tour Length",
}

// WriteCSV writes one row per record under the fixed results header.
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, rec := range records {
		row := []string{
			strconv.Itoa(rec.Size),
			formatMillis(rec.ExactRuntime),
			formatFloat(rec.ExactCost),
			formatMillis(rec.HeuristicRuntime),
			formatFloat(rec.HeuristicCost),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row for size %d: %w", rec.Size, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// SaveCSV writes records to path, truncating any existing file.
func SaveCSV(path string, records []Record) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return WriteCSV(f, records)
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#16858E"))
)

// RenderTable formats records for the terminal.
func RenderTable(records []Record) string {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			strconv.Itoa(rec.Size),
			formatMillis(rec.ExactRuntime),
			formatFloat(rec.ExactCost),
			formatMillis(rec.HeuristicRuntime),
			formatFloat(rec.HeuristicCost),
			strconv.FormatFloat(rec.Gap()*100, 'f', 1, 64) + "%",
			strconv.Itoa(rec.Restarts),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("Size", "Exact (ms)", "Exact cost", "Local (ms)", "Local cost", "Gap", "Restarts").
		Rows(rows...)

	return t.String()
}

func formatMillis(d time.Duration) string {
	return strconv.FormatFloat(float64(d)/float64(time.Millisecond), 'f', 3, 64)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
