package report

import "strings"

// EscapeCell protects against CSV formula injection by prefixing cells
// that a spreadsheet would interpret as a formula. Facility names come
// from scraped pages, so they are untrusted.
func EscapeCell(value string) string {
	if value == "" {
		return value
	}

	switch value[0] {
	case '=', '+', '-', '@', '|', '%':
		return "'" + value
	}

	if strings.HasPrefix(value, "\t") || strings.HasPrefix(value, "\r") || strings.HasPrefix(value, "\n") {
		return "'" + value
	}

	return value
}

// EscapeRow escapes all cells in a row.
func EscapeRow(row []string) []string {
	escaped := make([]string, len(row))
	for i, cell := range row {
		escaped[i] = EscapeCell(cell)
	}
	return escaped
}
