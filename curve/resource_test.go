package curve

import (
	"errors"
	"testing"

	"github.com/gogpu/colorramp"
)

func TestNilResourceIsNoop(t *testing.T) {
	var r *Resource
	r.Push(colorramp.NewStopSet(), colorramp.InterpLinear)
	r.NotifyChanged(MaskAll)
	cancel := r.OnChanged(func(ChannelMask) {})
	cancel()

	if r.Curves() != nil {
		t.Error("nil Resource Curves() != nil")
	}
	prior := colorramp.NewStopSet()
	if err := r.Pull(&prior); !errors.Is(err, colorramp.ErrInvalidOwner) {
		t.Errorf("nil Resource Pull() = %v, want ErrInvalidOwner", err)
	}
	if !prior.Equal(colorramp.NewStopSet()) {
		t.Error("failed Pull modified the destination")
	}
}

func TestResourcePushPull(t *testing.T) {
	r := NewResource("ramp")
	if r.Name() != "ramp" {
		t.Errorf("Name() = %q, want ramp", r.Name())
	}
	r.Push(sampleStops(), colorramp.InterpLinear)

	var got colorramp.StopSet
	if err := r.Pull(&got); err != nil {
		t.Fatal(err)
	}
	if got.Len() != 3 || got.At(1).Position != 0.4 {
		t.Errorf("Pull() = %v", got.Stops())
	}
}

func TestResourcePullMismatchKeepsPrior(t *testing.T) {
	r := NewResource("ramp")
	r.Push(sampleStops(), colorramp.InterpLinear)
	r.Curves().Curve(Blue).AddKey(0.9, 0, colorramp.InterpLinear)

	prior := colorramp.NewStopSet()
	err := r.Pull(&prior)
	if !errors.Is(err, colorramp.ErrChannelKeyMismatch) {
		t.Fatalf("Pull() = %v, want ErrChannelKeyMismatch", err)
	}
	if !prior.Equal(colorramp.NewStopSet()) {
		t.Errorf("Pull() modified prior state: %v", prior.Stops())
	}
}

func TestResourcePushKeepsHandles(t *testing.T) {
	r := NewResource("ramp")
	r.Push(colorramp.NewStopSet(), colorramp.InterpLinear)
	h := r.Curves().Curve(Red).Handles()[1]

	set := colorramp.NewStopSet()
	set.SortByPosition()
	r.Push(set, colorramp.InterpConstant)
	if !r.Curves().Curve(Red).IsKeyHandleValid(h) {
		t.Error("Push with the same key count invalidated handles")
	}

	set.Add(colorramp.ColorStop{Color: colorramp.Red, Position: 0.5})
	set.SortByPosition()
	r.Push(set, colorramp.InterpLinear)
	if r.Curves().Curve(Red).IsKeyHandleValid(h) {
		t.Error("structural Push kept a stale handle")
	}
	if r.Curves().Curve(Red).NumKeys() != 3 {
		t.Errorf("NumKeys() = %d, want 3", r.Curves().Curve(Red).NumKeys())
	}
}

func TestResourceListeners(t *testing.T) {
	r := NewResource("ramp")
	var calls []string
	cancelA := r.OnChanged(func(m ChannelMask) {
		if m != MaskAlpha {
			t.Errorf("listener got mask %b, want alpha", m)
		}
		calls = append(calls, "a")
	})
	r.OnChanged(func(ChannelMask) { calls = append(calls, "b") })

	r.NotifyChanged(MaskAlpha)
	cancelA()
	r.NotifyChanged(MaskAlpha)

	want := []string{"a", "b", "b"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("calls = %v, want %v", calls, want)
			break
		}
	}
	if r.Revision() != 2 {
		t.Errorf("Revision() = %d, want 2", r.Revision())
	}

	// Push publishes without notifying.
	r.Push(colorramp.NewStopSet(), colorramp.InterpLinear)
	if r.Revision() != 2 {
		t.Errorf("Push bumped Revision() to %d", r.Revision())
	}
}
