// Package record reads delimited tabular sources line by line.
package record

import "strings"

const (
	Delimiter = ','
	Quote     = '"'
)

// SplitLine splits one delimited line into trimmed fields. A quote toggles the
// quoted state and is dropped from the value; the delimiter only separates
// fields outside a quoted span. An unterminated quote runs to end of line.
func SplitLine(line string) []string {
	fields := make([]string, 0, 8)
	var sb strings.Builder
	inQuotes := false
	for _, c := range line {
		switch {
		case c == Quote:
			inQuotes = !inQuotes
		case c == Delimiter && !inQuotes:
			fields = append(fields, strings.TrimSpace(sb.String()))
			sb.Reset()
		default:
			sb.WriteRune(c)
		}
	}
	return append(fields, strings.TrimSpace(sb.String()))
}
