// Package raster provides a reference paint backend that renders a paint
// list into an RGBA image.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/colorramp/paint/raster"
//
//	backend := raster.NewBackend()
//	if err := list.Playback(backend); err != nil {
//	    return err
//	}
//	err := backend.SavePNG("editor.png")
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/colorramp"
	"github.com/gogpu/colorramp/paint"
)

func init() {
	paint.Register("raster", func() paint.Backend {
		return NewBackend()
	})
}

// Checkerboard cell size and shades, in sRGB bytes.
const (
	checkerSize  = 4
	checkerLight = 0xCC
	checkerDark  = 0x99
)

// handleOutline is the frame color of stop handles.
var handleOutline = color.NRGBA{R: 0x1A, G: 0x1A, B: 0x1A, A: 0xFF}

// Backend renders paint commands with golang.org/x/image.
// Command colors are taken as display-encoded values and written as bytes
// without conversion.
type Backend struct {
	img   *image.RGBA
	font  *opentype.Font
	faces map[float64]font.Face
}

var _ paint.Backend = (*Backend)(nil)

// NewBackend creates a raster backend. Begin must be called before use.
func NewBackend() *Backend {
	return &Backend{faces: make(map[float64]font.Face)}
}

// Begin allocates a transparent width x height image.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("raster: invalid size %dx%d", width, height)
	}
	b.img = image.NewRGBA(image.Rect(0, 0, width, height))
	return nil
}

// End releases font faces. The image stays available.
func (b *Backend) End() error {
	for size, f := range b.faces {
		_ = f.Close()
		delete(b.faces, size)
	}
	return nil
}

// Image returns the rendered image, or nil before Begin.
func (b *Backend) Image() *image.RGBA {
	return b.img
}

// WriteTo encodes the image as PNG.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.img == nil {
		return 0, fmt.Errorf("raster: nothing rendered")
	}
	cw := &countingWriter{w: w}
	err := png.Encode(cw, b.img)
	return cw.n, err
}

// SavePNG writes the image to a PNG file.
func (b *Backend) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by the caller
	if err != nil {
		return err
	}
	if _, err := b.WriteTo(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Box fills rect. Handle brushes add a one pixel outline.
func (b *Backend) Box(rect paint.Rect, brush paint.Brush, c colorramp.RGBA) {
	r := toImageRect(rect)
	b.fill(r, c.Encode(false))
	if brush == paint.BrushWhite {
		return
	}
	src := image.NewUniform(handleOutline)
	for _, edge := range []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1),
		image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y),
		image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y),
	} {
		draw.Draw(b.img, edge.Intersect(b.img.Rect), src, image.Point{}, draw.Over)
	}
}

// Checkerboard fills rect with alternating light and dark cells.
func (b *Backend) Checkerboard(rect paint.Rect) {
	r := toImageRect(rect).Intersect(b.img.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			v := uint8(checkerLight)
			if ((x-r.Min.X)/checkerSize+(y-r.Min.Y)/checkerSize)%2 == 1 {
				v = checkerDark
			}
			b.img.SetRGBA(x, y, color.RGBA{R: v, G: v, B: v, A: 0xFF})
		}
	}
}

// Gradient composites one column per pixel, sampled at the pixel center.
func (b *Backend) Gradient(rect paint.Rect, stops []paint.GradientStop) {
	if len(stops) == 0 {
		return
	}
	r := toImageRect(rect)
	g := paint.GradientCommand{Rect: rect, Stops: stops}
	for x := r.Min.X; x < r.Max.X; x++ {
		c := g.ColorAt(float64(x) + 0.5 - rect.X)
		b.fill(image.Rect(x, r.Min.Y, x+1, r.Max.Y), c.Encode(false))
	}
}

// Text draws s with the Go Regular font.
func (b *Backend) Text(s string, x, y, size float64, c colorramp.RGBA) {
	face, err := b.face(size)
	if err != nil {
		colorramp.Logger().Warn("raster: text skipped", "err", err)
		return
	}
	d := &font.Drawer{
		Dst:  b.img,
		Src:  image.NewUniform(c.Encode(false)),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(x * 64),
			Y: fixed.Int26_6(y*64) + face.Metrics().Ascent,
		},
	}
	d.DrawString(s)
}

func (b *Backend) face(size float64) (font.Face, error) {
	if f, ok := b.faces[size]; ok {
		return f, nil
	}
	if b.font == nil {
		otf, err := opentype.Parse(goregular.TTF)
		if err != nil {
			return nil, err
		}
		b.font = otf
	}
	f, err := opentype.NewFace(b.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	b.faces[size] = f
	return f, nil
}

func (b *Backend) fill(r image.Rectangle, c color.NRGBA) {
	r = r.Intersect(b.img.Rect)
	if r.Empty() || c.A == 0 {
		return
	}
	draw.Draw(b.img, r, image.NewUniform(c), image.Point{}, draw.Over)
}

func toImageRect(r paint.Rect) image.Rectangle {
	return image.Rect(
		int(math.Round(r.X)), int(math.Round(r.Y)),
		int(math.Round(r.Right())), int(math.Round(r.Bottom())),
	)
}

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
