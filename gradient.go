package colorramp

// Evaluate returns the ramp color at time.
//
// The stops are expected to be sorted ascending by position (see
// [StopSet.SortByPosition]). Evaluation rules:
//   - at or before the first stop, the first stop's color
//   - beyond the last stop, the last stop's color (clamp-to-edge)
//   - exactly on a stop, that stop's color
//   - strictly between stops i and i+1, a linear blend (InterpLinear) or
//     color i unchanged (InterpConstant)
//   - stops sharing a position form a hard step: the later stop wins for
//     every time at or after the shared position
//
// Evaluate returns ErrInsufficientStops when the set has fewer than two stops.
func Evaluate(set StopSet, time float64, mode InterpMode) (RGBA, error) {
	if err := set.Validate(); err != nil {
		return RGBA{}, err
	}
	if mode == InterpConstant {
		return evalConstant(set.stops, time), nil
	}
	return evalLinear(set.stops, time), nil
}

// evalLinear scans pairs in order; unsorted input falls through to the last stop.
func evalLinear(stops []ColorStop, time float64) RGBA {
	for i := 0; i < len(stops)-1; i++ {
		cur, next := stops[i], stops[i+1]
		if time <= cur.Position {
			if time == cur.Position {
				return lastAt(stops, i).Color
			}
			return cur.Color
		}
		if time < next.Position {
			// cur.Position < time < next.Position, so the span is non-zero.
			t := (time - cur.Position) / (next.Position - cur.Position)
			return cur.Color.Lerp(next.Color, t)
		}
	}
	return stops[len(stops)-1].Color
}

// evalConstant returns the color of the last stop at or before time.
func evalConstant(stops []ColorStop, time float64) RGBA {
	for i := 0; i < len(stops)-1; i++ {
		if time < stops[i+1].Position {
			return stops[i].Color
		}
	}
	return stops[len(stops)-1].Color
}

// lastAt returns the last stop in the run of stops starting at i that share
// stops[i].Position.
func lastAt(stops []ColorStop, i int) ColorStop {
	for i+1 < len(stops) && stops[i+1].Position == stops[i].Position {
		i++
	}
	return stops[i]
}

// SampleTable evaluates the ramp at n evenly spaced times k/n for k in [0,n).
func SampleTable(set StopSet, n int, mode InterpMode) ([]RGBA, error) {
	if err := set.Validate(); err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, ErrInvalidResolution
	}
	out := make([]RGBA, n)
	for k := range out {
		out[k], _ = Evaluate(set, float64(k)/float64(n), mode)
	}
	return out, nil
}
