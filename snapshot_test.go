package bezed

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// demoFrame builds a frame with every feature visible: curve, handles,
// boxes, grid, and a hovered marker.
func demoFrame() Frame {
	ed := NewEditor()
	for _, p := range []Point{Pt(150, 300), Pt(150, 100), Pt(350, 100), Pt(350, 300)} {
		ed.Step(p, PrimaryPressed, PrimaryReleased)
	}
	ed.Step(Pt(350, 300), ToggleBoxes, ToggleGrid)
	return ed.Step(Pt(150, 300))
}

func TestRenderFrame_Deterministic(t *testing.T) {
	f := demoFrame()

	a := RenderFrame(f, 640, 360)
	b := RenderFrame(f, 640, 360)

	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("identical frames rendered to different pixels")
	}
}

func TestRenderFrame_DrawsMarkers(t *testing.T) {
	f := demoFrame()
	img := RenderFrame(f, 640, 360)

	// The pixel at each marker center must not be background.
	for _, m := range f.Markers {
		c := img.RGBAAt(int(m.X), int(m.Y))
		if c == snapBackground {
			t.Errorf("no marker drawn at %v", m)
		}
	}

	// A pixel away from all geometry and grid lines stays background.
	if got := img.RGBAAt(5, 5); got != snapBackground {
		t.Errorf("corner pixel = %v, want background", got)
	}
}

func TestRenderFrame_EmptyFrame(t *testing.T) {
	img := RenderFrame(Frame{Hovered: -1}, 64, 64)

	for _, xy := range [][2]int{{0, 0}, {32, 32}, {63, 63}} {
		if got := img.RGBAAt(xy[0], xy[1]); got != snapBackground {
			t.Errorf("pixel %v = %v, want background", xy, got)
		}
	}
}

func TestRenderFrameView_AppliesTransform(t *testing.T) {
	f := Frame{
		Markers: []Point{Pt(10, 10)},
		Hovered: -1,
	}

	// Scale 2x then shift: the marker lands at (120, 120).
	view := Translate(100, 100).Multiply(Scale(2, 2))
	img := RenderFrameView(f, 256, 256, view)

	if got := img.RGBAAt(120, 120); got == snapBackground {
		t.Error("transformed marker not drawn at (120, 120)")
	}
	if got := img.RGBAAt(10, 10); got != snapBackground {
		t.Error("marker drawn at untransformed position")
	}
}

func TestWritePNG(t *testing.T) {
	img := RenderFrame(demoFrame(), 320, 180)
	path := filepath.Join(t.TempDir(), "frame.png")

	if err := WritePNG(img, path); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}

	fh, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer fh.Close()

	decoded, err := png.Decode(fh)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("decoded bounds %v, want %v", decoded.Bounds(), img.Bounds())
	}
}

func TestWritePNG_BadPath(t *testing.T) {
	img := RenderFrame(Frame{Hovered: -1}, 8, 8)
	if err := WritePNG(img, filepath.Join(t.TempDir(), "missing", "frame.png")); err == nil {
		t.Error("expected error for unwritable path")
	}
}
