package bezed

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLogger_DefaultIsSilent(t *testing.T) {
	SetLogger(nil)
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger should discard everything")
	}
}

func TestSetLogger_CapturesEditorActivity(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
	defer SetLogger(nil)

	ed := NewEditor()
	ed.Step(Pt(10, 10), PrimaryPressed, PrimaryReleased)
	ed.Step(Pt(10, 10), ToggleAlgorithm)

	out := buf.String()
	if !strings.Contains(out, "control point added") {
		t.Errorf("missing add log, got: %s", out)
	}
	if !strings.Contains(out, "mode toggled") {
		t.Errorf("missing toggle log, got: %s", out)
	}
}
