package ui

import (
	"strings"
	"unicode/utf8"
)

const (
	tableCellMaxWidth = 50
	tableCellEllipsis = "..."
	tableColumnGap    = 2
)

// TableBuilder collects rows and renders them as aligned columns.
type TableBuilder struct {
	headers []string
	rows    [][]string
	right   map[int]bool
}

// NewTableBuilder returns a builder with room for capacity rows.
func NewTableBuilder(headers []string, capacity int) *TableBuilder {
	return &TableBuilder{headers: headers, rows: make([][]string, 0, capacity)}
}

// AlignRight right-aligns the given columns, for counts and other numbers.
func (builder *TableBuilder) AlignRight(columns ...int) *TableBuilder {
	if builder.right == nil {
		builder.right = make(map[int]bool, len(columns))
	}
	for _, column := range columns {
		builder.right[column] = true
	}
	return builder
}

// AddRow appends a row to the table.
func (builder *TableBuilder) AddRow(row []string) {
	builder.rows = append(builder.rows, row)
}

// String renders the table.
func (builder *TableBuilder) String() string {
	return formatTable(builder.headers, builder.rows, builder.right)
}

// FormatTable renders headers and rows as a left-aligned table.
func FormatTable(headers []string, rows [][]string) string {
	return formatTable(headers, rows, nil)
}

func formatTable(headers []string, rows [][]string, right map[int]bool) string {
	cells := make([][]string, 0, len(rows)+1)
	cells = append(cells, normalizeRow(headers))
	for _, row := range rows {
		cells = append(cells, normalizeRow(row))
	}

	widths := make([]int, len(headers))
	for _, row := range cells {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], displayWidth(cell))
			}
		}
	}

	var builder strings.Builder
	for _, row := range cells {
		for i, cell := range row {
			last := i == len(row)-1
			padding := 0
			if i < len(widths) {
				padding = widths[i] - displayWidth(cell)
			}
			if right[i] {
				builder.WriteString(strings.Repeat(" ", padding))
				builder.WriteString(cell)
			} else {
				builder.WriteString(cell)
				if !last {
					builder.WriteString(strings.Repeat(" ", padding))
				}
			}
			if !last {
				builder.WriteString(strings.Repeat(" ", tableColumnGap))
			}
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}

func normalizeRow(row []string) []string {
	normalized := make([]string, len(row))
	for i, cell := range row {
		normalized[i] = normalizeTableCell(cell)
	}
	return normalized
}

// TruncateTableCell limits a cell to tableCellMaxWidth visible characters.
func TruncateTableCell(value string) string {
	value = normalizeTableCell(value)
	if displayWidth(value) <= tableCellMaxWidth {
		return value
	}
	return truncateVisible(value, tableCellMaxWidth-utf8.RuneCountInString(tableCellEllipsis)) + tableCellEllipsis
}

func displayWidth(value string) int {
	return utf8.RuneCountInString(stripANSICodes(value))
}

var tableCellReplacer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")

func normalizeTableCell(value string) string {
	return tableCellReplacer.Replace(value)
}

// truncateVisible keeps the first max visible runes of value, passing
// escape sequences through untouched.
func truncateVisible(value string, max int) string {
	var builder strings.Builder
	visible := 0
	for i := 0; i < len(value); {
		if end := escapeEnd(value, i); end > i {
			builder.WriteString(value[i:end])
			i = end
			continue
		}
		if visible >= max {
			break
		}
		_, size := utf8.DecodeRuneInString(value[i:])
		builder.WriteString(value[i : i+size])
		visible++
		i += size
	}
	return builder.String()
}

// escapeEnd returns the index just past an SGR sequence starting at i, or
// i when there is none.
func escapeEnd(value string, i int) int {
	if value[i] != '\x1b' || i+1 >= len(value) || value[i+1] != '[' {
		return i
	}
	end := strings.IndexByte(value[i+2:], 'm')
	if end < 0 {
		return len(value)
	}
	return i + 2 + end + 1
}

func stripANSICodes(input string) string {
	var builder strings.Builder
	for i := 0; i < len(input); {
		if end := escapeEnd(input, i); end > i {
			i = end
			continue
		}
		builder.WriteByte(input[i])
		i++
	}
	return builder.String()
}
