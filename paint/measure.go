package paint

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// TextMeasurer reports the advance width of a line of text.
type TextMeasurer interface {
	Measure(s string, size float64) float64
}

// ShapingMeasurer measures text by shaping it with HarfBuzz through
// go-text/typesetting. It is safe for concurrent use.
type ShapingMeasurer struct {
	font       *font.Font
	shaperPool sync.Pool
}

var (
	defaultMeasurerOnce sync.Once
	defaultMeasurer     *ShapingMeasurer
	defaultMeasurerErr  error
)

// NewShapingMeasurer parses TrueType/OpenType data for measuring.
func NewShapingMeasurer(ttf []byte) (*ShapingMeasurer, error) {
	face, err := font.ParseTTF(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("paint: parse font: %w", err)
	}
	return &ShapingMeasurer{
		font: face.Font,
		shaperPool: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
	}, nil
}

// DefaultMeasurer returns a shared measurer for the Go Regular font.
func DefaultMeasurer() (*ShapingMeasurer, error) {
	defaultMeasurerOnce.Do(func() {
		defaultMeasurer, defaultMeasurerErr = NewShapingMeasurer(goregular.TTF)
	})
	return defaultMeasurer, defaultMeasurerErr
}

// Measure implements TextMeasurer.
func (m *ShapingMeasurer) Measure(s string, size float64) float64 {
	runes := []rune(s)
	if len(runes) == 0 {
		return 0
	}
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(m.font),
		Size:      fixed.Int26_6(size * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}
	hb := m.shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	m.shaperPool.Put(hb)
	return float64(out.Advance) / 64
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// FixedMeasurer estimates every glyph as Advance em wide. It is meant for
// tests and hosts without font data.
type FixedMeasurer struct {
	Advance float64
}

// Measure implements TextMeasurer.
func (m FixedMeasurer) Measure(s string, size float64) float64 {
	return float64(len([]rune(s))) * m.Advance * size
}
