package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(lvl slog.Level) (*SlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: lvl})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels(t *testing.T) {
	ctx := context.Background()
	log, buf := newBufferLogger(slog.LevelDebug)

	log.Debug(ctx, "d")
	log.Info(ctx, "i")
	log.Warn(ctx, "w")
	log.Error(ctx, "e")

	out := buf.String()
	for _, want := range []string{"level=DEBUG", "level=INFO", "level=WARN", "level=ERROR"} {
		assert.Contains(t, out, want)
	}
}

func TestSlogLogger_With(t *testing.T) {
	ctx := context.Background()
	log, buf := newBufferLogger(slog.LevelInfo)

	child := log.With("component", "session")
	child.Info(ctx, "restored", "email", "a@x.com")

	out := buf.String()
	require.Contains(t, out, "component=session")
	require.Contains(t, out, "email=a@x.com")
}

func TestNew_LevelParsing(t *testing.T) {
	// Unrecognized levels fall back to info: debug output is suppressed.
	log := New("not-a-level")
	require.NotNil(t, log)
}
