package colorramp

import "sort"

// ColorStop is a color anchored at a position of the ramp domain.
type ColorStop struct {
	Color    RGBA    // Linear color; alpha is carried but not required
	Position float64 // Position in the domain, nominally 0.0 to 1.0
}

// StopSet is an ordered sequence of color stops.
//
// Positions are not required to be strictly increasing. Owners call
// [StopSet.SortByPosition] before sampling or converting to curves; the
// sampler tolerates duplicate positions.
//
// The zero value is an empty set. Use [NewStopSet] for the default
// black-to-white ramp.
type StopSet struct {
	stops []ColorStop
}

// NewStopSet returns the default ramp: opaque black at 0 and opaque white at 1.
func NewStopSet() StopSet {
	return StopSet{stops: []ColorStop{
		{Color: Black, Position: 0},
		{Color: White, Position: 1},
	}}
}

// StopSetOf returns a set holding a copy of stops, in the given order.
func StopSetOf(stops ...ColorStop) StopSet {
	s := StopSet{stops: make([]ColorStop, len(stops))}
	copy(s.stops, stops)
	return s
}

// Len returns the number of stops.
func (s StopSet) Len() int {
	return len(s.stops)
}

// At returns the i-th stop. It panics if i is out of range.
func (s StopSet) At(i int) ColorStop {
	return s.stops[i]
}

// Stops returns a copy of the stops in their current order.
func (s StopSet) Stops() []ColorStop {
	out := make([]ColorStop, len(s.stops))
	copy(out, s.stops)
	return out
}

// Clone returns an independent copy of s.
func (s StopSet) Clone() StopSet {
	return StopSetOf(s.stops...)
}

// Add appends a stop. The set is not re-sorted.
func (s *StopSet) Add(stop ColorStop) {
	s.stops = append(s.stops, stop)
}

// SortByPosition sorts the stops ascending by position.
// Stops sharing a position keep their relative order.
func (s *StopSet) SortByPosition() {
	sort.SliceStable(s.stops, func(i, j int) bool {
		return s.stops[i].Position < s.stops[j].Position
	})
}

// Validate reports ErrInsufficientStops when the set cannot define a ramp.
func (s StopSet) Validate() error {
	if len(s.stops) < 2 {
		return ErrInsufficientStops
	}
	return nil
}

// Equal reports whether both sets hold the same stops in the same order.
func (s StopSet) Equal(other StopSet) bool {
	if len(s.stops) != len(other.stops) {
		return false
	}
	for i := range s.stops {
		if s.stops[i] != other.stops[i] {
			return false
		}
	}
	return true
}
