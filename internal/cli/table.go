package cli

import (
	"strings"
)

// columnGap separates table columns.
const columnGap = "  "

// Table lays out rows under a header with columns sized to their widest
// cell. Columns given a maximum width wrap at word boundaries.
type Table struct {
	headers   []string
	rows      [][]string
	maxWidths map[int]int
}

// NewTable creates a table with the given headers.
func NewTable(headers ...string) *Table {
	return &Table{
		headers:   headers,
		maxWidths: make(map[int]int),
	}
}

// SetColumnMaxWidth wraps column col at width characters. Zero removes the
// limit.
func (t *Table) SetColumnMaxWidth(col, width int) {
	t.maxWidths[col] = width
}

// AddRow appends a row, padded or truncated to the header count.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.headers))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Render returns the table with a dashed rule under the header.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	// Each row becomes a list of lines per cell.
	cells := make([][][]string, len(t.rows))
	for r, row := range t.rows {
		cells[r] = make([][]string, len(row))
		for c, cell := range row {
			cells[r][c] = wrapText(cell, t.maxWidths[c])
		}
	}

	widths := make([]int, len(t.headers))
	for c, h := range t.headers {
		widths[c] = len(h)
	}
	for _, row := range cells {
		for c, lines := range row {
			for _, line := range lines {
				widths[c] = max(widths[c], len(line))
			}
		}
	}

	var sb strings.Builder
	writeLine := func(parts []string) {
		padded := make([]string, len(parts))
		for c, p := range parts {
			padded[c] = padRight(p, widths[c])
		}
		sb.WriteString(strings.TrimRight(strings.Join(padded, columnGap), " "))
		sb.WriteByte('\n')
	}

	writeLine(t.headers)
	rule := make([]string, len(widths))
	for c, w := range widths {
		rule[c] = strings.Repeat("-", w)
	}
	writeLine(rule)

	for _, row := range cells {
		height := 1
		for _, lines := range row {
			height = max(height, len(lines))
		}
		for i := range height {
			parts := make([]string, len(row))
			for c, lines := range row {
				if i < len(lines) {
					parts[c] = lines[i]
				}
			}
			writeLine(parts)
		}
	}
	return sb.String()
}

// padRight pads s with spaces to width. Longer strings are returned as is.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// wrapText splits text into lines of at most width characters, breaking
// between words and splitting words longer than width. A width of zero or
// less disables wrapping.
func wrapText(text string, width int) []string {
	if width <= 0 || len(text) <= width {
		return []string{text}
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{text}
	}

	var (
		lines []string
		line  string
	)
	for _, word := range words {
		for len(word) > width {
			if line != "" {
				lines = append(lines, line)
				line = ""
			}
			lines = append(lines, word[:width])
			word = word[width:]
		}
		switch {
		case line == "":
			line = word
		case len(line)+1+len(word) <= width:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
