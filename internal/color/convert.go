package color

import "math"

// SRGBToLinear converts an sRGB component to linear (EOTF).
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
func SRGBToLinear(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// LinearToSRGB converts a linear component to sRGB (OETF).
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
func LinearToSRGB(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}

// Quantize clamps v to [0,1] and maps it to a byte with rounding.
// NaN maps to 0.
func Quantize(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255.0 + 0.5)
}

// Encode converts one float RGBA sample to bytes in the given space.
// Only RGB are affected by SpaceSRGB; alpha is always quantized linearly.
func Encode(r, g, b, a float64, space Space) Bytes {
	if space == SpaceSRGB {
		return Bytes{
			R: LinearToSRGBFast(r),
			G: LinearToSRGBFast(g),
			B: LinearToSRGBFast(b),
			A: Quantize(a),
		}
	}
	return Bytes{
		R: Quantize(r),
		G: Quantize(g),
		B: Quantize(b),
		A: Quantize(a),
	}
}
