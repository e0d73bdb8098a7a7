package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(&Config{Level: "loud", Output: "stdout"})
	assert.Error(t, err)
}

func TestLoggerWritesFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf).With(String("component", "usecase"))

	l.Warn("analysis warning",
		String("pair", "BTC/ETH"),
		Float64("z", 2.5),
		Int("points", 30),
		Bool("sized", false),
		Strings("warnings", []string{"a", "b"}),
		Error(errors.New("boom")),
	)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "analysis warning", entry["message"])
	assert.Equal(t, "usecase", entry["component"])
	assert.Equal(t, "BTC/ETH", entry["pair"])
	assert.Equal(t, 2.5, entry["z"])
	assert.Equal(t, 30.0, entry["points"])
	assert.Equal(t, false, entry["sized"])
	assert.Equal(t, "a, b", entry["warnings"])
	assert.Equal(t, "boom", entry["error"])
}

func TestNopDiscards(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop().Info("ignored", String("k", "v"))
	})
}
