package conic

import (
	"bytes"
	"context"
	"image"
	"log/slog"
	"strings"
	"testing"
)

func TestLogger_Default(t *testing.T) {
	// The default logger discards everything and reports disabled.
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should be disabled at every level")
	}
}

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	// A parallel fill logs at debug level.
	g := NewGradient(DragFromCoords(0, 0, 20, 0), Black, White, CycleClamp)
	r := NewRenderer(WithWorkers(2))
	defer r.Close()
	pm := NewPixmap(32, 32)
	r.FillPixmap(g, pm, image.Point{})

	if !strings.Contains(buf.String(), "parallel fill") {
		t.Errorf("expected a parallel fill debug log, got %q", buf.String())
	}

	// Passing nil restores the silent default.
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should restore the silent logger")
	}
}
