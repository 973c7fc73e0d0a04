package helpers

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

const memoryDatabase = ":memory:"

var uriEscaper = strings.NewReplacer("%", "%25", "?", "%3f", "#", "%23")

// SQLiteDSN creates a URI DSN for an existing SQLite database file.
//
// Relative paths are resolved against the current directory. The file is
// opened with mode=rw so a missing database fails instead of being created.
//
// Parameters:
//   - path: the path to the database file, or ":memory:"
//
// Returns:
//   - dsn: the DSN string
//   - error: an error if the operation failed
func SQLiteDSN(path string) (string, error) {
	if path == "" {
		return "", errors.New("database path is empty")
	}

	if path == memoryDatabase {
		return "file::memory:", nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving database path: %w", err)
	}

	return "file:" + uriEscaper.Replace(filepath.ToSlash(abs)) + "?mode=rw", nil
}
