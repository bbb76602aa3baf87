package logging_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/HiddeFranke/Social-Network-Analysis---Group-Robbert1/logging"
)

// TestNew_LevelFilter checks that the named level gates output.
func TestNew_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := logging.New("warn", false, &buf)

	l.Info("dropped")
	l.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("info line leaked through warn level: %q", out)
	}
	if !strings.Contains(out, "kept") {
		t.Errorf("warn line missing: %q", out)
	}
}

// TestNew_JSON checks the JSON handler selection.
func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := logging.New("info", true, &buf)

	l.Info("hello", "k", "v")
	if !strings.Contains(buf.String(), `"msg":"hello"`) {
		t.Errorf("expected JSON output, got %q", buf.String())
	}
}

// TestNew_UnknownLevel falls back to info.
func TestNew_UnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	l := logging.New("blorp", false, &buf)

	l.Debug("dropped")
	l.Info("kept")

	if strings.Contains(buf.String(), "dropped") {
		t.Errorf("debug line leaked through default level: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "kept") {
		t.Errorf("info line missing: %q", buf.String())
	}
}

// TestFromContext_RoundTrip stores and retrieves the same logger.
func TestFromContext_RoundTrip(t *testing.T) {
	l := logging.Nop()
	ctx := logging.WithContext(context.Background(), l)

	if got := logging.FromContext(ctx); got != l {
		t.Error("FromContext returned a different logger than WithContext stored")
	}
}

// TestFromContext_Absent returns a usable nop, never nil, even for a nil
// context.
func TestFromContext_Absent(t *testing.T) {
	if logging.FromContext(context.Background()) == nil {
		t.Fatal("FromContext(empty) = nil")
	}
	var nilCtx context.Context
	if logging.FromContext(nilCtx) == nil {
		t.Fatal("FromContext(nil) = nil")
	}

	// Must not panic when used.
	logging.FromContext(context.Background()).Info("discarded")
}
