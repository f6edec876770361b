package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithFormat_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithFormat(&buf, 0, "json")

	l.Info("score saved", "player", "ACE")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "score saved", rec["msg"])
	assert.Equal(t, "ACE", rec["player"])
}

func TestNewWithFormat_TextFallback(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithFormat(&buf, 0, "yaml")

	l.Info("hello")

	assert.Contains(t, buf.String(), "msg=hello")
}

func TestNewWithFormat_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithFormat(&buf, 4, "text")

	l.Info("dropped")
	l.Warn("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithFormat(&buf, 0, "text").With("component", "trimmer")

	l.Info("run")

	assert.Contains(t, buf.String(), "component=trimmer")
}
