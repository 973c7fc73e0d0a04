package helpers

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteDSN(t *testing.T) {
	t.Run("should open an absolute path read-write", func(t *testing.T) {
		dsn, err := SQLiteDSN("/var/lib/app/shop.db")

		require.NoError(t, err)
		assert.Equal(t, "file:/var/lib/app/shop.db?mode=rw", dsn)
	})

	t.Run("should resolve a relative path", func(t *testing.T) {
		abs, err := filepath.Abs("shop.db")
		require.NoError(t, err)

		dsn, err := SQLiteDSN("shop.db")

		require.NoError(t, err)
		assert.Equal(t, "file:"+filepath.ToSlash(abs)+"?mode=rw", dsn)
	})

	t.Run("should escape URI delimiters", func(t *testing.T) {
		dsn, err := SQLiteDSN("/tmp/a?b#c%d.db")

		require.NoError(t, err)
		assert.Equal(t, "file:/tmp/a%3fb%23c%25d.db?mode=rw", dsn)
	})

	t.Run("should keep an in-memory database", func(t *testing.T) {
		dsn, err := SQLiteDSN(":memory:")

		require.NoError(t, err)
		assert.Equal(t, "file::memory:", dsn)
	})

	t.Run("should reject an empty path", func(t *testing.T) {
		_, err := SQLiteDSN("")

		assert.EqualError(t, err, "database path is empty")
	})
}

func TestNormalizeQuery(t *testing.T) {
	query := `
		SELECT id
		  FROM users
		 WHERE active = 1
	`

	assert.Equal(t, "SELECT id FROM users WHERE active = 1", NormalizeQuery(query))
}
