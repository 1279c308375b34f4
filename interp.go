package colorramp

import "fmt"

// InterpMode selects how a ramp is evaluated between two stops.
type InterpMode uint8

const (
	// InterpLinear blends adjacent stops linearly (default).
	InterpLinear InterpMode = iota
	// InterpConstant holds the lower stop's color until the next stop.
	InterpConstant
)

// String returns the persisted name of the mode.
func (m InterpMode) String() string {
	switch m {
	case InterpLinear:
		return "linear"
	case InterpConstant:
		return "constant"
	default:
		return fmt.Sprintf("InterpMode(%d)", uint8(m))
	}
}

// ParseInterpMode parses "linear" or "constant".
func ParseInterpMode(s string) (InterpMode, error) {
	switch s {
	case "linear", "":
		return InterpLinear, nil
	case "constant", "step":
		return InterpConstant, nil
	default:
		return 0, fmt.Errorf("colorramp: unknown interpolation mode %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m InterpMode) MarshalText() ([]byte, error) {
	if m > InterpConstant {
		return nil, fmt.Errorf("colorramp: cannot marshal %v", m)
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *InterpMode) UnmarshalText(text []byte) error {
	v, err := ParseInterpMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
