package material

import (
	"errors"
	"image/color"
	"testing"

	"github.com/gogpu/colorramp"
	"github.com/gogpu/colorramp/curve"
	"github.com/gogpu/colorramp/editor"
	"github.com/gogpu/gpucontext"
)

type fakeTexture struct{ w, h int }

func (t fakeTexture) Width() int  { return t.w }
func (t fakeTexture) Height() int { return t.h }

type fakeCreator struct {
	w, h int
	data []byte
}

func (c *fakeCreator) NewTextureFromRGBA(w, h int, data []byte) (gpucontext.Texture, error) {
	c.w, c.h, c.data = w, h, data
	return fakeTexture{w: w, h: h}, nil
}

func TestNewNode(t *testing.T) {
	n := New(WithName("ramp"))
	if n.Caption() != "ColorRamp" {
		t.Errorf("Caption() = %q, want ColorRamp", n.Caption())
	}
	if n.Name() != "ramp" {
		t.Errorf("Name() = %q, want ramp", n.Name())
	}
	if n.Resolution != colorramp.DefaultResolution {
		t.Errorf("Resolution = %d, want %d", n.Resolution, colorramp.DefaultResolution)
	}
	if n.Curve() != nil || n.Texture() != nil {
		t.Error("New() created the curve or texture before Refresh")
	}
	if !n.Stops.Equal(colorramp.NewStopSet()) {
		t.Errorf("Stops = %v, want default ramp", n.Stops.Stops())
	}
	if New(WithName("")).Name() != Caption {
		t.Error("WithName(\"\") replaced the default name")
	}
}

func TestRefresh(t *testing.T) {
	n := New()
	n.Resolution = 4
	n.Stops = colorramp.StopSetOf(
		colorramp.ColorStop{Color: colorramp.White, Position: 1},
		colorramp.ColorStop{Color: colorramp.Black, Position: 0},
	)
	if err := n.Refresh(); err != nil {
		t.Fatal(err)
	}
	if n.Stops.At(0).Position != 0 {
		t.Error("Refresh() did not sort the stops")
	}
	if !n.ValidCurve() {
		t.Error("ValidCurve() = false after first Refresh")
	}
	r := n.Curve()
	if r == nil || r.Name() != Caption {
		t.Fatalf("Curve() = %v, want resource named %s", r, Caption)
	}
	for ch := curve.Red; ch <= curve.Alpha; ch++ {
		if got := r.Curves().Curve(ch).NumKeys(); got != 2 {
			t.Errorf("%v keys = %d, want 2", ch, got)
		}
	}

	tex := n.Texture()
	if tex == nil || tex.Width != 4 || tex.Order != colorramp.OrderBGRA {
		t.Fatalf("Texture() = %+v, want 4 wide BGRA", tex)
	}
	want := []uint8{0, 64, 128, 191}
	for x, v := range want {
		if got := tex.At(x); got.R != v || got.A != 255 {
			t.Errorf("texel %d = %v, want gray %d", x, got, v)
		}
	}

	// A second refresh reuses the curve.
	if err := n.Refresh(); err != nil {
		t.Fatal(err)
	}
	if n.Curve() != r {
		t.Error("Refresh() replaced an existing curve")
	}
}

func TestCurveEditRebuildsTexture(t *testing.T) {
	n := New(WithByteOrder(colorramp.OrderRGBA))
	n.Resolution = 4
	if err := n.Refresh(); err != nil {
		t.Fatal(err)
	}

	ed := editor.New(n.Curve())
	m := ed.HitTest(3, 8)
	s := ed.OpenColorSession(m)
	if s == nil {
		t.Fatal("OpenColorSession() = nil")
	}
	red := colorramp.RGB(1, 0, 0)
	s.Preview(red)

	if got := n.Stops.At(0).Color; got != red {
		t.Errorf("Stops.At(0) = %v, want %v", got, red)
	}
	if got := n.Texture().At(0); got != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("texel 0 = %v, want red", got)
	}
	if !m.IsValid(n.Curve().Curves()) {
		t.Error("curve edit invalidated the editor's mark")
	}

	// Adding a stop through the editor reaches the node too.
	ed.PointerDown(gpucontext.ButtonLeft, 500, 8, 0)
	ed.PointerUp(gpucontext.ButtonLeft, 500, 8)
	if n.Stops.Len() != 3 {
		t.Errorf("Stops.Len() = %d, want 3", n.Stops.Len())
	}
}

func TestCurveMismatchInvalidatesCurve(t *testing.T) {
	n := New(WithShaderValidation(false))
	n.FactorConnected = true
	if err := n.Refresh(); err != nil {
		t.Fatal(err)
	}
	before := n.Stops.Clone()

	g := n.Curve().Curves()
	g.Curve(curve.Green).DeleteKey(g.Curve(curve.Green).Handles()[0])
	n.Curve().NotifyChanged(curve.MaskGreen)

	if n.ValidCurve() {
		t.Error("ValidCurve() = true after mismatched edit")
	}
	if !n.Stops.Equal(before) {
		t.Errorf("Stops = %v, want unchanged %v", n.Stops.Stops(), before.Stops())
	}
	if _, err := n.Compile(); !errors.Is(err, colorramp.ErrInvalidCurve) {
		t.Errorf("Compile() error = %v, want ErrInvalidCurve", err)
	}
	// Compile rewrote the curve from the stops, so the next compile succeeds.
	if _, err := n.Compile(); err != nil {
		t.Errorf("second Compile() error = %v", err)
	}
}

func TestSetStopsInsufficient(t *testing.T) {
	n := New()
	err := n.SetStops(colorramp.StopSetOf(colorramp.ColorStop{Color: colorramp.Red}))
	if !errors.Is(err, colorramp.ErrInsufficientStops) {
		t.Fatalf("SetStops() error = %v, want ErrInsufficientStops", err)
	}
	if n.Texture() != nil {
		t.Error("Texture() != nil after failed synthesis")
	}
	if _, err := n.UploadTexture(&fakeCreator{}); !errors.Is(err, colorramp.ErrInsufficientStops) {
		t.Errorf("UploadTexture() error = %v, want ErrInsufficientStops", err)
	}
	if n.Curve() == nil {
		t.Error("curve not created after failed synthesis")
	}
}

func TestUploadTexture(t *testing.T) {
	n := New()
	n.Resolution = 8
	if _, err := n.UploadTexture(&fakeCreator{}); !errors.Is(err, colorramp.ErrInsufficientStops) {
		t.Errorf("UploadTexture() before Refresh error = %v", err)
	}
	if err := n.Refresh(); err != nil {
		t.Fatal(err)
	}
	c := &fakeCreator{}
	tex, err := n.UploadTexture(c)
	if err != nil {
		t.Fatal(err)
	}
	if tex.Width() != 8 || tex.Height() != 1 || len(c.data) != 32 {
		t.Errorf("uploaded %dx%d with %d bytes, want 8x1 with 32", tex.Width(), tex.Height(), len(c.data))
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	n := New()
	d := colorramp.NewDocument(colorramp.StopSetOf(
		colorramp.ColorStop{Color: colorramp.Blue, Position: 0.8},
		colorramp.ColorStop{Color: colorramp.Red, Position: 0.2},
	), colorramp.InterpConstant, true)
	d.Resolution = 16
	if err := n.Load(d); err != nil {
		t.Fatal(err)
	}
	if n.Mode != colorramp.InterpConstant || !n.SRGB || n.Resolution != 16 {
		t.Errorf("Load() = mode %v, srgb %v, resolution %d", n.Mode, n.SRGB, n.Resolution)
	}
	if n.Stops.At(0).Color != colorramp.Red {
		t.Errorf("Stops.At(0) = %v, want red first", n.Stops.At(0))
	}
	if n.Texture().Width != 16 {
		t.Errorf("Texture().Width = %d, want 16", n.Texture().Width)
	}

	out := n.Document()
	if out.Resolution != 16 || out.Interpolation != colorramp.InterpConstant || len(out.Stops) != 2 {
		t.Errorf("Document() = %+v", out)
	}

	// Loading again replaces the curve contents too.
	if err := n.Load(colorramp.NewDocument(colorramp.NewStopSet(), colorramp.InterpLinear, false)); err != nil {
		t.Fatal(err)
	}
	if !n.Stops.Equal(colorramp.NewStopSet()) {
		t.Errorf("Stops = %v, want default ramp", n.Stops.Stops())
	}
}

func TestClose(t *testing.T) {
	n := New()
	if err := n.Refresh(); err != nil {
		t.Fatal(err)
	}
	n.Close()
	g := n.Curve().Curves()
	g.Curve(curve.Red).SetKeyValue(g.Curve(curve.Red).Handles()[0], 1)
	n.Curve().NotifyChanged(curve.MaskRed)
	if n.Stops.At(0).Color != colorramp.Black {
		t.Error("closed node still follows curve edits")
	}
}
