package raster

import (
	"bytes"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/gogpu/colorramp"
	"github.com/gogpu/colorramp/paint"
)

func TestBackendRegistered(t *testing.T) {
	b, err := paint.NewBackend("raster")
	if err != nil {
		t.Fatalf("NewBackend(raster) error = %v", err)
	}
	if _, ok := b.(*Backend); !ok {
		t.Errorf("NewBackend(raster) = %T, want *Backend", b)
	}
}

func TestBeginInvalidSize(t *testing.T) {
	if err := NewBackend().Begin(0, 10); err == nil {
		t.Error("Begin(0, 10) succeeded")
	}
}

func TestBoxAndGradient(t *testing.T) {
	l := paint.NewList(20, 10)
	l.Add(paint.GradientCommand{
		Layer: 0,
		Rect:  paint.NewRect(0, 0, 20, 10),
		Stops: []paint.GradientStop{
			{X: 0, Color: colorramp.Black},
			{X: 20, Color: colorramp.White},
		},
	})
	l.Add(paint.BoxCommand{
		Layer: 1,
		Rect:  paint.NewRect(2, 2, 4, 4),
		Brush: paint.BrushWhite,
		Color: colorramp.Red,
	})

	b := NewBackend()
	if err := l.Playback(b); err != nil {
		t.Fatal(err)
	}
	img := b.Image()
	if got := img.RGBAAt(3, 3); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("box pixel = %v, want red", got)
	}
	left, right := img.RGBAAt(8, 8), img.RGBAAt(18, 8)
	if left.R >= right.R {
		t.Errorf("gradient not increasing: x=8 %v, x=18 %v", left, right)
	}
	if right.A != 255 {
		t.Errorf("gradient alpha = %d, want 255", right.A)
	}
}

func TestHandleOutline(t *testing.T) {
	b := NewBackend()
	if err := b.Begin(16, 16); err != nil {
		t.Fatal(err)
	}
	b.Box(paint.NewRect(0, 0, 13, 16), paint.BrushColorHandle, colorramp.White)
	if got := b.Image().RGBAAt(0, 5); got.R != handleOutline.R {
		t.Errorf("outline pixel = %v, want %v", got, handleOutline)
	}
	if got := b.Image().RGBAAt(6, 8); got.R != 255 {
		t.Errorf("inner pixel = %v, want white", got)
	}
}

func TestCheckerboard(t *testing.T) {
	b := NewBackend()
	if err := b.Begin(8, 8); err != nil {
		t.Fatal(err)
	}
	b.Checkerboard(paint.NewRect(0, 0, 8, 8))
	a, c := b.Image().RGBAAt(0, 0), b.Image().RGBAAt(checkerSize, 0)
	if a.R != checkerLight || c.R != checkerDark {
		t.Errorf("checker cells = %v and %v", a, c)
	}
}

func TestTextDrawsPixels(t *testing.T) {
	b := NewBackend()
	if err := b.Begin(120, 16); err != nil {
		t.Fatal(err)
	}
	b.Text("Click", 2, 1, 12, colorramp.White)
	if err := b.End(); err != nil {
		t.Fatal(err)
	}
	drawn := false
	img := b.Image()
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			drawn = true
			break
		}
	}
	if !drawn {
		t.Error("Text() drew nothing")
	}
}

func TestWritePNG(t *testing.T) {
	b := NewBackend()
	var buf bytes.Buffer
	if _, err := b.WriteTo(&buf); err == nil {
		t.Error("WriteTo before Begin succeeded")
	}
	if err := b.Begin(4, 2); err != nil {
		t.Fatal(err)
	}
	n, err := b.WriteTo(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo() n = %d, buffer has %d", n, buf.Len())
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 4 {
		t.Errorf("decoded width = %d, want 4", img.Bounds().Dx())
	}

	path := filepath.Join(t.TempDir(), "out.png")
	if err := b.SavePNG(path); err != nil {
		t.Errorf("SavePNG() error = %v", err)
	}
}
