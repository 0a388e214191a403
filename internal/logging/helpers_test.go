package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestHelpersAreNilSafe(t *testing.T) {
	Info(nil, "info")
	Warn(nil, "warn")
	Error(nil, "error", errors.New("boom"))
}

func TestErrorAppendsErrorField(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	Error(logger, "failed", errors.New("boom"), FieldGameID, 7)

	out := buf.String()
	if !strings.Contains(out, "error=boom") || !strings.Contains(out, "game_id=7") {
		t.Fatalf("expected error and game id fields, got %q", out)
	}
}
