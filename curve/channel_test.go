package curve

import (
	"math"
	"testing"

	"github.com/gogpu/colorramp"
)

func TestChannelCurveAddKeySorted(t *testing.T) {
	var c ChannelCurve
	h1 := c.AddKey(0.8, 1, colorramp.InterpLinear)
	h2 := c.AddKey(0.2, 2, colorramp.InterpLinear)
	h3 := c.AddKey(0.5, 3, colorramp.InterpLinear)
	h4 := c.AddKey(0.5, 4, colorramp.InterpLinear)

	want := []KeyHandle{h2, h3, h4, h1}
	got := c.Handles()
	if len(got) != len(want) {
		t.Fatalf("Handles() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Handles()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
	for _, h := range want {
		if !h.IsValid() || !c.IsKeyHandleValid(h) {
			t.Errorf("handle %d not valid", h)
		}
	}
}

func TestChannelCurveHandlesSurviveEdits(t *testing.T) {
	var c ChannelCurve
	a := c.AddKey(0, 0, colorramp.InterpLinear)
	b := c.AddKey(0.5, 0.5, colorramp.InterpLinear)
	d := c.AddKey(1, 1, colorramp.InterpLinear)

	if !c.DeleteKey(a) {
		t.Fatal("DeleteKey(a) = false")
	}
	if c.DeleteKey(a) {
		t.Error("second DeleteKey(a) = true, want false")
	}
	if c.IsKeyHandleValid(a) {
		t.Error("deleted handle still valid")
	}
	if got := c.KeyValue(b); got != 0.5 {
		t.Errorf("KeyValue(b) = %v, want 0.5", got)
	}

	// Moving b past d re-sorts but keeps both handles.
	if !c.SetKeyTime(b, 2) {
		t.Fatal("SetKeyTime(b) = false")
	}
	hs := c.Handles()
	if hs[0] != d || hs[1] != b {
		t.Errorf("Handles() = %v, want [%d %d]", hs, d, b)
	}
	if got := c.KeyTime(b); got != 2 {
		t.Errorf("KeyTime(b) = %v, want 2", got)
	}

	e := c.AddKey(0.3, 0, colorramp.InterpLinear)
	if e == a {
		t.Error("AddKey reused a deleted handle")
	}
	if !c.SetKeyValue(e, 0.9) || c.KeyValue(e) != 0.9 {
		t.Error("SetKeyValue(e) did not apply")
	}
	if c.SetKeyValue(KeyHandle(0), 1) || c.SetKeyTime(KeyHandle(0), 1) {
		t.Error("zero handle accepted")
	}
}

func TestChannelCurveFindKey(t *testing.T) {
	var c ChannelCurve
	c.AddKey(0.1, 0, colorramp.InterpLinear)
	h := c.AddKey(0.5, 0, colorramp.InterpLinear)
	if got := c.FindKey(0.5004, 0.001); got != h {
		t.Errorf("FindKey(0.5004) = %d, want %d", got, h)
	}
	if got := c.FindKey(0.3, 0.001); got.IsValid() {
		t.Errorf("FindKey(0.3) = %d, want invalid", got)
	}
}

func TestChannelCurveEval(t *testing.T) {
	var c ChannelCurve
	c.Default = 0.7
	if got := c.Eval(0.5); got != 0.7 {
		t.Errorf("empty Eval() = %v, want default 0.7", got)
	}

	c.AddKey(0.2, 0, colorramp.InterpLinear)
	c.AddKey(0.6, 1, colorramp.InterpConstant)
	c.AddKey(0.8, 0.5, colorramp.InterpLinear)

	tests := []struct {
		time float64
		want float64
	}{
		{0, 0},
		{0.2, 0},
		{0.4, 0.5},
		{0.6, 1},
		{0.7, 1}, // constant segment
		{0.8, 0.5},
		{5, 0.5},
	}
	for _, tt := range tests {
		if got := c.Eval(tt.time); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Eval(%v) = %v, want %v", tt.time, got, tt.want)
		}
	}
}

func TestChannelCurveEvalSharedTime(t *testing.T) {
	var c ChannelCurve
	c.AddKey(0, 0, colorramp.InterpLinear)
	c.AddKey(0.5, 0.2, colorramp.InterpLinear)
	c.AddKey(0.5, 0.8, colorramp.InterpLinear)
	c.AddKey(1, 1, colorramp.InterpLinear)
	if got := c.Eval(0.5); got != 0.8 {
		t.Errorf("Eval(0.5) = %v, want 0.8 (later key)", got)
	}
	if got := c.Eval(0.75); math.Abs(got-0.9) > 1e-9 {
		t.Errorf("Eval(0.75) = %v, want 0.9", got)
	}
}

func TestChannelCurveReplaceKeys(t *testing.T) {
	var c ChannelCurve
	a := c.AddKey(0, 0, colorramp.InterpLinear)
	b := c.AddKey(1, 1, colorramp.InterpLinear)

	c.replaceKeys([]Key{{Time: 0.1, Value: 0.3}, {Time: 0.9, Value: 0.6}})
	if got := c.KeyTime(a); got != 0.1 {
		t.Errorf("same-count replace: KeyTime(a) = %v, want 0.1", got)
	}
	if got := c.KeyValue(b); got != 0.6 {
		t.Errorf("same-count replace: KeyValue(b) = %v, want 0.6", got)
	}

	c.replaceKeys([]Key{{Time: 0.5, Value: 1}})
	if c.NumKeys() != 1 {
		t.Fatalf("NumKeys() = %d, want 1", c.NumKeys())
	}
	if c.IsKeyHandleValid(a) || c.IsKeyHandleValid(b) {
		t.Error("old handles valid after a structural replace")
	}
}
