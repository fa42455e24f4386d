// Package render writes report content as a terminal table or CSV.
package render

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/locktivity/gh-org-report/internal/report"
)

// Options controls how content is written.
type Options struct {
	// Multiline puts each entry of a multi-line cell on its own line.
	// Otherwise entries are joined with ", ".
	Multiline bool
	// Borders draws box borders around the table. Ignored for CSV.
	Borders bool
	// CSV writes comma-separated values instead of a table.
	CSV bool
}

// Render writes content to w. Columns appear in content order and rows in
// row order; a row without a cell for a column renders it empty.
func Render(w io.Writer, content report.Content, opts Options) error {
	if err := content.Validate(); err != nil {
		return fmt.Errorf("invalid content: %w", err)
	}

	records := cellText(content, opts.Multiline)
	if opts.CSV {
		return writeCSV(w, content.Columns, records)
	}
	return writeTable(w, content.Columns, records, opts)
}

func cellText(content report.Content, multiline bool) [][]string {
	records := make([][]string, 0, len(content.Rows))
	for _, row := range content.Rows {
		record := make([]string, len(content.Columns))
		for i, col := range content.Columns {
			if cell, ok := row[col]; ok {
				record[i] = cell.Text(multiline)
			}
		}
		records = append(records, record)
	}
	return records
}

func writeCSV(w io.Writer, columns []string, records [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("writing csv rows: %w", err)
	}
	return nil
}

func writeTable(w io.Writer, columns []string, records [][]string, opts Options) error {
	re := lipgloss.NewRenderer(w)
	headerStyle := re.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := re.NewStyle().Padding(0, 1)

	t := table.New().
		Headers(columns...).
		Rows(records...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	if opts.Borders {
		t = t.Border(lipgloss.NormalBorder()).
			BorderStyle(re.NewStyle()).
			BorderRow(opts.Multiline)
	} else {
		t = t.Border(lipgloss.HiddenBorder()).
			BorderTop(false).
			BorderBottom(false).
			BorderLeft(false).
			BorderRight(false).
			BorderHeader(false).
			BorderColumn(false)
	}

	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return fmt.Errorf("writing table: %w", err)
	}
	return nil
}
