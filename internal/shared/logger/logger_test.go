package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConditionalSourceHandler(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		wantSource bool
	}{
		{"info has no source", slog.LevelInfo, false},
		{"debug has no source", slog.LevelDebug, false},
		{"warn has source", slog.LevelWarn, true},
		{"error has source", slog.LevelError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
			l := slog.New(NewConditionalSourceHandler(base, slog.LevelWarn, slog.LevelError))

			l.Log(t.Context(), tt.level, "message")

			assert.Equal(t, tt.wantSource, bytes.Contains(buf.Bytes(), []byte("source=")), buf.String())
		})
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestSlogLoggerWith(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithSlog(slog.New(slog.NewTextHandler(&buf, nil)))

	l.Named("usecase").With("request_id", "REQ-1").Infow("created", "status", "pending")

	out := buf.String()
	assert.Contains(t, out, "logger=usecase")
	assert.Contains(t, out, "request_id=REQ-1")
	assert.Contains(t, out, "status=pending")
}
