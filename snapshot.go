package bezed

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/vector"
)

// Headless rasterization of a Frame. This is what the bezeddemo
// command and the snapshot tests draw with; an interactive shell would
// consume the Frame directly instead.

// Snapshot colors, loosely after the interactive editor palette.
var (
	snapBackground = color.RGBA{A: 0xff}
	snapCurve      = color.RGBA{R: 0xf2, G: 0xf2, B: 0xf2, A: 0xff}
	snapMarker     = color.RGBA{R: 0xff, G: 0xa5, B: 0x00, A: 0xff}
	snapHovered    = color.RGBA{R: 0xff, G: 0xff, B: 0x00, A: 0xff}
	snapHandle     = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	snapBounds     = color.RGBA{R: 0x41, G: 0x69, B: 0xe1, A: 0xff}
	snapTight      = color.RGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}
	snapGrid       = color.RGBA{G: 0x64, A: 0xff}
	snapAxes       = color.RGBA{R: 0xc8, G: 0xc8, A: 0xff}
)

// markerRadius is the drawn size of a control point, matching the
// default pick radius so the clickable area is what the user sees.
const markerRadius = DefaultPickRadius

// RenderFrame rasterizes the frame into a new RGBA image with world
// coordinates mapped 1:1 onto pixels, the way the interactive editor
// works in screen space.
func RenderFrame(f Frame, width, height int) *image.RGBA {
	return RenderFrameView(f, width, height, Identity())
}

// RenderFrameView rasterizes the frame into a new RGBA image, mapping
// world coordinates through the given view transform. The grid is
// drawn in pixel space and is unaffected by the view.
func RenderFrameView(f Frame, width, height int, view Matrix) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(snapBackground), image.Point{}, draw.Src)

	c := canvas{dst: img, view: view}

	if f.GridVisible {
		c.drawGrid()
	}

	for _, pl := range f.Polylines {
		c.strokePolyline(pl, 2, snapCurve)
	}

	for _, h := range f.Handles {
		c.strokePolyline([]Point{h.Anchor, h.Control}, 1, snapHandle)
	}

	for _, b := range f.Boxes {
		c.strokeLoop(b.Bounds.Corners(), 1, snapBounds)
		c.strokeLoop(b.Tight.Corners, 1, snapTight)
	}

	for i, m := range f.Markers {
		col := snapMarker
		if i == f.Hovered {
			col = snapHovered
		}
		c.fillCircle(m, markerRadius, col)
	}

	return img
}

// WritePNG writes the image to path in PNG format.
func WritePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("snapshot: encode %s: %w", path, err)
	}
	return nil
}

// canvas fills vector paths into an RGBA image through a view
// transform.
type canvas struct {
	dst  *image.RGBA
	view Matrix
}

// fill rasterizes the path built by build with the given color.
func (c canvas) fill(col color.RGBA, build func(r *vector.Rasterizer)) {
	b := c.dst.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	build(r)
	r.Draw(c.dst, b, image.NewUniform(col), image.Point{})
}

// moveTo and lineTo apply the view transform before handing
// coordinates to the rasterizer.
func (c canvas) moveTo(r *vector.Rasterizer, p Point) {
	q := c.view.TransformPoint(p)
	r.MoveTo(float32(q.X), float32(q.Y))
}

func (c canvas) lineTo(r *vector.Rasterizer, p Point) {
	q := c.view.TransformPoint(p)
	r.LineTo(float32(q.X), float32(q.Y))
}

// quad appends the filled quadrilateral of one stroked line segment.
func (c canvas) quad(r *vector.Rasterizer, a, b Point, width float64) {
	n := b.Sub(a).Perp().Normalize().Mul(width / 2)
	c.moveTo(r, a.Add(n))
	c.lineTo(r, b.Add(n))
	c.lineTo(r, b.Add(n.Mul(-1)))
	c.lineTo(r, a.Add(n.Mul(-1)))
	r.ClosePath()
}

// strokePolyline strokes consecutive points as one filled path.
func (c canvas) strokePolyline(pts []Point, width float64, col color.RGBA) {
	if len(pts) < 2 {
		return
	}
	c.fill(col, func(r *vector.Rasterizer) {
		for i := 0; i+1 < len(pts); i++ {
			c.quad(r, pts[i], pts[i+1], width)
		}
	})
}

// strokeLoop strokes four corners as a closed outline.
func (c canvas) strokeLoop(corners [4]Point, width float64, col color.RGBA) {
	c.fill(col, func(r *vector.Rasterizer) {
		for i := range corners {
			c.quad(r, corners[i], corners[(i+1)%4], width)
		}
	})
}

// fillCircle fills a circle approximated by four cubic arcs.
func (c canvas) fillCircle(center Point, radius float64, col color.RGBA) {
	// Standard cubic approximation constant for a quarter circle.
	const kappa = 0.5522847498307936
	k := radius * kappa

	p := c.view.TransformPoint(center)
	x, y := p.X, p.Y
	c.fill(col, func(r *vector.Rasterizer) {
		r.MoveTo(float32(x+radius), float32(y))
		r.CubeTo(float32(x+radius), float32(y+k), float32(x+k), float32(y+radius), float32(x), float32(y+radius))
		r.CubeTo(float32(x-k), float32(y+radius), float32(x-radius), float32(y+k), float32(x-radius), float32(y))
		r.CubeTo(float32(x-radius), float32(y-k), float32(x-k), float32(y-radius), float32(x), float32(y-radius))
		r.CubeTo(float32(x+k), float32(y-radius), float32(x+radius), float32(y-k), float32(x+radius), float32(y))
		r.ClosePath()
	})
}

// drawGrid draws a 16x9 reference grid with axes through the canvas
// center, in pixel space.
func (c canvas) drawGrid() {
	b := c.dst.Bounds()
	w := float64(b.Dx())
	h := float64(b.Dy())

	grid := canvas{dst: c.dst, view: Identity()}

	grid.fill(snapGrid, func(r *vector.Rasterizer) {
		for i := 1; i < 16; i++ {
			x := w * float64(i) / 16
			grid.quad(r, Pt(x, 0), Pt(x, h), 1)
		}
		for i := 1; i < 9; i++ {
			y := h * float64(i) / 9
			grid.quad(r, Pt(0, y), Pt(w, y), 1)
		}
	})

	grid.fill(snapAxes, func(r *vector.Rasterizer) {
		grid.quad(r, Pt(w/2, 0), Pt(w/2, h), 1)
		grid.quad(r, Pt(0, h/2), Pt(w, h/2), 1)
	})
}
