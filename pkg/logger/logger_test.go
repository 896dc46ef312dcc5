package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel(" warning "))
	assert.Equal(t, slog.LevelError, ParseLevel("ERROR"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Output: &buf, Level: "info", Format: FormatJSON})

	log.Debug("hidden")
	log.Info("evaluation registered", StudentName("Ana López"), Term(3), Grade(88.5))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "evaluation registered", entry["msg"])
	assert.Equal(t, "Ana López", entry["student"])
	assert.Equal(t, 3.0, entry["term"])
	assert.Equal(t, 88.5, entry["grade"])
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Output: &buf, Level: "debug", Format: FormatText})

	log.Debug("term rejected", Err(errors.New("out of range")), Subject("Cálculo Integral"))

	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), `error="out of range"`)
	assert.Contains(t, buf.String(), `subject="Cálculo Integral"`)
}

func TestContext(t *testing.T) {
	log := Discard()
	ctx := WithContext(context.Background(), log)

	assert.Same(t, log, FromContext(ctx))
	assert.Same(t, slog.Default(), FromContext(context.Background()))
}
