package utils

import "strings"

// ParseCSVLine splits one CSV line on commas, honoring double-quoted fields.
// The dataset CSVs are ragged in places (stray quotes, short rows), which
// encoding/csv rejects outright, so the tolerant char-walk is deliberate:
// quotes toggle quoting and are dropped, fields are trimmed.
func ParseCSVLine(line string) []string {
	var result []string
	var current strings.Builder
	inQuotes := false

	for _, char := range line {
		switch {
		case char == '"':
			inQuotes = !inQuotes
		case char == ',' && !inQuotes:
			result = append(result, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(char)
		}
	}
	result = append(result, strings.TrimSpace(current.String()))
	return result
}

// SplitCSVLines breaks raw CSV content into non-blank lines.
func SplitCSVLines(content string) []string {
	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
