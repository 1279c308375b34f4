package colorramp

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"strings"

	icolor "github.com/gogpu/colorramp/internal/color"
)

// RGBA represents a linear color with red, green, blue, and alpha components.
// Components are usually in [0, 1] but the range is not enforced; values are
// only clamped when quantized to bytes.
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Gray creates an opaque gray with all RGB components set to v.
func Gray(v float64) RGBA {
	return RGBA{R: v, G: v, B: v, A: 1.0}
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Transparent = RGBA{}
)

// Lerp performs linear interpolation between two colors,
// computing c*(1-t) + other*t per channel.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R*(1-t) + other.R*t,
		G: c.G*(1-t) + other.G*t,
		B: c.B*(1-t) + other.B*t,
		A: c.A*(1-t) + other.A*t,
	}
}

// WithAlpha returns c with its alpha replaced.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = a
	return c
}

// Luminance returns the Rec. 601 style luma 0.3R + 0.59G + 0.11B.
func (c RGBA) Luminance() float64 {
	return c.R*0.3 + c.G*0.59 + c.B*0.11
}

// Encode quantizes c to 8 bits per channel. When srgb is true RGB are
// gamma-encoded with the sRGB curve; alpha is always linear.
func (c RGBA) Encode(srgb bool) color.NRGBA {
	space := icolor.SpaceLinear
	if srgb {
		space = icolor.SpaceSRGB
	}
	b := icolor.Encode(c.R, c.G, c.B, c.A, space)
	return color.NRGBA{R: b.R, G: b.G, B: b.B, A: b.A}
}

// FromSRGB8 converts an 8-bit sRGB color to a linear RGBA.
func FromSRGB8(c color.NRGBA) RGBA {
	return RGBA{
		R: icolor.SRGBByteToLinear(c.R),
		G: icolor.SRGBByteToLinear(c.G),
		B: icolor.SRGBByteToLinear(c.B),
		A: float64(c.A) / 255,
	}
}

// ParseHex parses an sRGB "#rrggbb" or "#rrggbbaa" color into a linear RGBA.
// The leading '#' is optional and alpha defaults to opaque.
func ParseHex(s string) (RGBA, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(s), "#"))
	if err != nil || (len(b) != 3 && len(b) != 4) {
		return RGBA{}, fmt.Errorf("colorramp: parse color %q: %w", s, ErrInvalidColor)
	}
	c := color.NRGBA{R: b[0], G: b[1], B: b[2], A: 255}
	if len(b) == 4 {
		c.A = b[3]
	}
	return FromSRGB8(c), nil
}
