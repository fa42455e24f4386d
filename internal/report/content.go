package report

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Cell is a table cell holding either a single line of text or an ordered
// list of lines.
type Cell struct {
	lines []string
	multi bool
}

// Single returns a single-line cell.
func Single(text string) Cell {
	return Cell{lines: []string{text}}
}

// Multi returns a multi-line cell with one entry per line.
func Multi(lines ...string) Cell {
	return Cell{lines: lines, multi: true}
}

// IsMulti reports whether c was built with Multi.
func (c Cell) IsMulti() bool {
	return c.multi
}

// Lines returns the lines of c.
func (c Cell) Lines() []string {
	return c.lines
}

// Text joins the lines of c with newlines, or with ", " when multiline
// output is disabled.
func (c Cell) Text(multiline bool) string {
	sep := ", "
	if multiline {
		sep = "\n"
	}
	return strings.Join(c.lines, sep)
}

// SortKey is the first line of a multi-line cell, or the whole text of a
// single-line cell.
func (c Cell) SortKey() string {
	if len(c.lines) == 0 {
		return ""
	}
	return c.lines[0]
}

// MarshalJSON encodes single-line cells as strings and multi-line cells as
// arrays of strings.
func (c Cell) MarshalJSON() ([]byte, error) {
	if c.multi {
		lines := c.lines
		if lines == nil {
			lines = []string{}
		}
		return json.Marshal(lines)
	}
	return json.Marshal(c.Text(false))
}

// Row maps column names to cells. A missing column renders as empty.
type Row map[string]Cell

// Content is the entity-independent table handed to a renderer.
type Content struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// Validate checks that every row only references known columns.
func (c Content) Validate() error {
	known := make(map[string]struct{}, len(c.Columns))
	for _, col := range c.Columns {
		if _, dup := known[col]; dup {
			return fmt.Errorf("duplicate column %q", col)
		}
		known[col] = struct{}{}
	}
	for i, row := range c.Rows {
		for col := range row {
			if _, ok := known[col]; !ok {
				return fmt.Errorf("row %d references unknown column %q", i, col)
			}
		}
	}
	return nil
}

// SortBy orders the rows by the sort key of column. Rows without the column
// sort first. Equal keys keep their previous order.
func (c *Content) SortBy(column string) {
	sort.SliceStable(c.Rows, func(i, j int) bool {
		return c.Rows[i][column].SortKey() < c.Rows[j][column].SortKey()
	})
}
