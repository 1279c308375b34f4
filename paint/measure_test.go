package paint

import "testing"

func TestShapingMeasurer(t *testing.T) {
	m, err := DefaultMeasurer()
	if err != nil {
		t.Fatalf("DefaultMeasurer() error = %v", err)
	}
	if got := m.Measure("", 8); got != 0 {
		t.Errorf("Measure(\"\") = %v, want 0", got)
	}
	short := m.Measure("Click", 8)
	long := m.Measure("Click in this area add color stops", 8)
	if short <= 0 {
		t.Errorf("Measure(Click) = %v, want > 0", short)
	}
	if long <= short {
		t.Errorf("Measure(long) = %v, not greater than Measure(short) = %v", long, short)
	}
	if big := m.Measure("Click", 16); big <= short {
		t.Errorf("Measure at size 16 = %v, not greater than size 8 = %v", big, short)
	}

	again, _ := DefaultMeasurer()
	if again != m {
		t.Error("DefaultMeasurer() not shared")
	}
}

func TestNewShapingMeasurerBadData(t *testing.T) {
	if _, err := NewShapingMeasurer([]byte("not a font")); err == nil {
		t.Error("NewShapingMeasurer(garbage) succeeded")
	}
}

func TestFixedMeasurer(t *testing.T) {
	m := FixedMeasurer{Advance: 0.5}
	if got := m.Measure("abcd", 8); got != 16 {
		t.Errorf("Measure() = %v, want 16", got)
	}
}
