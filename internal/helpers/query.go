package helpers

import "strings"

// NormalizeQuery folds a multi-line statement into one line for logging.
func NormalizeQuery(query string) string {
	lines := strings.Split(query, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	return strings.TrimSpace(strings.Join(lines, " "))
}
