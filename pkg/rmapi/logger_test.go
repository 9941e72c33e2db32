package rmapi_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/rmapi/pkg/rmapi"
)

func TestSlogLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	logger := rmapi.NewSlogLogger(slog.New(handler))

	logger.Debug("hidden", nil)
	logger.Error("characters request failed", map[string]interface{}{
		"operation": "list_characters",
		"page":      2,
	})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "characters request failed", entry["msg"])
	assert.Equal(t, "list_characters", entry["operation"])
	assert.InDelta(t, 2, entry["page"], 0)
}

func TestNopLogger(t *testing.T) {
	t.Parallel()

	var logger rmapi.Logger = rmapi.NopLogger{}

	assert.NotPanics(t, func() {
		logger.Info("ignored", map[string]interface{}{"key": "value"})
	})
}
