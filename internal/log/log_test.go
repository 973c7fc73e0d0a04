package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("should write text records at or above the level", func(t *testing.T) {
		var buf bytes.Buffer

		logger, err := New(&buf, "warn", FormatText)
		require.NoError(t, err)

		logger.Info("hidden")
		logger.Warn("shown", "key", "value")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "msg=shown")
		assert.Contains(t, buf.String(), "key=value")
	})

	t.Run("should write json records", func(t *testing.T) {
		var buf bytes.Buffer

		logger, err := New(&buf, "DEBUG", FormatJSON)
		require.NoError(t, err)

		logger.Debug("statement executed", "kind", "select")

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "statement executed", record["msg"])
		assert.Equal(t, "select", record["kind"])
	})

	t.Run("should default to info when level is empty", func(t *testing.T) {
		var buf bytes.Buffer

		logger, err := New(&buf, "", "")
		require.NoError(t, err)

		logger.Debug("hidden")
		logger.Info("shown")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("should reject an unknown level", func(t *testing.T) {
		logger, err := New(&bytes.Buffer{}, "loud", FormatText)

		assert.Nil(t, logger)
		assert.EqualError(t, err, "unknown log level: loud")
	})

	t.Run("should reject an unknown format", func(t *testing.T) {
		logger, err := New(&bytes.Buffer{}, "info", "xml")

		assert.Nil(t, logger)
		assert.EqualError(t, err, "unknown log format: xml")
	})
}

func TestErrorHandler(t *testing.T) {
	t.Run("should log the connection error", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := New(&buf, "error", FormatText)
		require.NoError(t, err)

		ErrorHandler(logger)(errors.New("access denied"))

		assert.Contains(t, buf.String(), "level=ERROR")
		assert.Contains(t, buf.String(), `msg="database connection failed"`)
		assert.Contains(t, buf.String(), `error="access denied"`)
	})
}
