package color

// linearToSRGBLUT maps a 12-bit linear value to an sRGB byte.
// 4096 entries keep the error within one byte of the exact curve.
var linearToSRGBLUT [4096]uint8

func init() {
	for i := range linearToSRGBLUT {
		linearToSRGBLUT[i] = linearToSRGBExact(float64(i) / 4095.0)
	}
}

// LinearToSRGBFast converts a linear component to an sRGB byte using the
// lookup table. Input outside [0,1] is clamped; NaN maps to 0.
//
// Example:
//
//	s := LinearToSRGBFast(0.5) // 188, not 128
func LinearToSRGBFast(l float64) uint8 {
	if !(l > 0) {
		return 0
	}
	if l >= 1 {
		return 255
	}
	return linearToSRGBLUT[int(l*4095.0+0.5)]
}

// linearToSRGBExact is the math.Pow reference for the table.
func linearToSRGBExact(l float64) uint8 {
	if l < 0 {
		l = 0
	}
	if l > 1 {
		l = 1
	}
	s := int(LinearToSRGB(l)*255.0 + 0.5)
	if s < 0 {
		s = 0
	}
	if s > 255 {
		s = 255
	}
	//nolint:gosec // G115: s is clamped to [0,255]
	return uint8(s)
}

// SRGBByteToLinear converts an sRGB byte back to a linear component.
func SRGBByteToLinear(s uint8) float64 {
	return SRGBToLinear(float64(s) / 255.0)
}
