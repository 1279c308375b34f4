package colorramp

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// ByteOrder is the in-memory order of the four channels of a texel.
type ByteOrder uint8

const (
	// OrderBGRA stores texels as B, G, R, A (default).
	OrderBGRA ByteOrder = iota
	// OrderRGBA stores texels as R, G, B, A.
	OrderRGBA
)

// String returns "BGRA" or "RGBA".
func (o ByteOrder) String() string {
	switch o {
	case OrderBGRA:
		return "BGRA"
	case OrderRGBA:
		return "RGBA"
	default:
		return fmt.Sprintf("ByteOrder(%d)", uint8(o))
	}
}

// Texture is a ramp baked into a single row of 8-bit texels, ready to be
// uploaded as a lookup texture of size Width x 1.
type Texture struct {
	// Width is the number of texels (the resolution).
	Width int
	// Pixels holds Width*4 bytes in Order.
	Pixels []byte
	// SRGB reports whether RGB bytes are already gamma-encoded.
	SRGB bool
	// Order is the channel order of Pixels.
	Order ByteOrder
}

// Synthesize bakes the ramp into a texture. Texel k holds the ramp evaluated
// at k/resolution.
//
// It returns ErrInsufficientStops for sets with fewer than two stops and
// ErrInvalidResolution for a non-positive resolution.
func Synthesize(set StopSet, mode InterpMode, opts ...TextureOption) (*Texture, error) {
	o := defaultTextureOptions()
	for _, opt := range opts {
		opt(&o)
	}

	samples, err := SampleTable(set, o.resolution, mode)
	if err != nil {
		return nil, fmt.Errorf("synthesize ramp texture: %w", err)
	}

	tex := &Texture{
		Width:  o.resolution,
		Pixels: make([]byte, 4*o.resolution),
		SRGB:   o.srgb,
		Order:  o.order,
	}
	for x, c := range samples {
		tex.set(x, c.Encode(o.srgb))
	}

	Logger().Debug("colorramp: texture synthesized",
		"resolution", o.resolution,
		"stops", set.Len(),
		"mode", mode,
		"srgb", o.srgb,
		"order", o.order)

	return tex, nil
}

// set writes texel x in the texture's byte order.
func (t *Texture) set(x int, c color.NRGBA) {
	p := t.Pixels[4*x : 4*x+4 : 4*x+4]
	if t.Order == OrderRGBA {
		p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
		return
	}
	p[0], p[1], p[2], p[3] = c.B, c.G, c.R, c.A
}

// At returns texel x. It panics if x is out of range.
func (t *Texture) At(x int) color.NRGBA {
	p := t.Pixels[4*x : 4*x+4 : 4*x+4]
	if t.Order == OrderRGBA {
		return color.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
	}
	return color.NRGBA{R: p[2], G: p[1], B: p[0], A: p[3]}
}

// Height returns 1; ramp textures are a single row.
func (t *Texture) Height() int {
	return 1
}

// RGBABytes returns a copy of the texels in R, G, B, A order.
func (t *Texture) RGBABytes() []byte {
	out := make([]byte, len(t.Pixels))
	if t.Order == OrderRGBA {
		copy(out, t.Pixels)
		return out
	}
	for x := 0; x < t.Width; x++ {
		c := t.At(x)
		out[4*x], out[4*x+1], out[4*x+2], out[4*x+3] = c.R, c.G, c.B, c.A
	}
	return out
}

// Format returns the GPU texture format matching Order and SRGB.
func (t *Texture) Format() gputypes.TextureFormat {
	switch {
	case t.Order == OrderRGBA && t.SRGB:
		return gputypes.TextureFormatRGBA8UnormSrgb
	case t.Order == OrderRGBA:
		return gputypes.TextureFormatRGBA8Unorm
	case t.SRGB:
		return gputypes.TextureFormatBGRA8UnormSrgb
	default:
		return gputypes.TextureFormatBGRA8Unorm
	}
}

// Descriptor describes the texture for a host that creates GPU textures.
// The ramp is a Width x 1 2D texture without mipmaps, sampled in shaders
// and written by copies.
func (t *Texture) Descriptor(label string) gputypes.TextureDescriptor {
	return gputypes.TextureDescriptor{
		Label: label,
		Size: gputypes.Extent3D{
			Width:              uint32(t.Width), //nolint:gosec // G115: Width is a positive texel count
			Height:             1,
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        t.Format(),
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	}
}

// Image returns the texture as an image, repeating the row height times.
// Image pixels hold the raw bytes; no color conversion is applied.
func (t *Texture) Image(height int) *image.NRGBA {
	if height < 1 {
		height = 1
	}
	img := image.NewNRGBA(image.Rect(0, 0, t.Width, height))
	row := t.RGBABytes()
	for y := 0; y < height; y++ {
		copy(img.Pix[y*img.Stride:], row)
	}
	return img
}

// Upload creates a host texture from the texels.
// gpucontext.TextureCreator takes RGBA data, so BGRA texels are reordered.
func (t *Texture) Upload(creator gpucontext.TextureCreator) (gpucontext.Texture, error) {
	if creator == nil {
		return nil, fmt.Errorf("upload ramp texture: %w", ErrInvalidOwner)
	}
	tex, err := creator.NewTextureFromRGBA(t.Width, 1, t.RGBABytes())
	if err != nil {
		return nil, fmt.Errorf("upload ramp texture: %w", err)
	}
	return tex, nil
}

// Update replaces the contents of an existing host texture with the texels,
// in RGBA order.
func (t *Texture) Update(u gpucontext.TextureUpdater) error {
	if u == nil {
		return fmt.Errorf("update ramp texture: %w", ErrInvalidOwner)
	}
	if err := u.UpdateData(t.RGBABytes()); err != nil {
		return fmt.Errorf("update ramp texture: %w", err)
	}
	return nil
}
