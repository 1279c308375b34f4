package colorramp

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Document is the persisted form of a ramp.
//
//	{"stops":[{"r":0,"g":0,"b":0,"a":1,"position":0}, {"hex":"#ff8000","position":1}],
//	 "interpolation":"linear","srgb":false,"resolution":1024}
type Document struct {
	Stops         []DocumentStop `json:"stops"`
	Interpolation InterpMode     `json:"interpolation"`
	SRGB          bool           `json:"srgb"`
	Resolution    int            `json:"resolution,omitempty"`
}

// DocumentStop is one persisted color stop. A non-empty Hex holds an sRGB
// color and takes precedence over the linear components.
type DocumentStop struct {
	R        float64 `json:"r"`
	G        float64 `json:"g"`
	B        float64 `json:"b"`
	A        float64 `json:"a"`
	Hex      string  `json:"hex,omitempty"`
	Position float64 `json:"position"`
}

// Color returns the linear color of the stop.
func (ds DocumentStop) Color() (RGBA, error) {
	if ds.Hex != "" {
		return ParseHex(ds.Hex)
	}
	return RGBA{R: ds.R, G: ds.G, B: ds.B, A: ds.A}, nil
}

// NewDocument captures a stop set and its evaluation settings.
func NewDocument(set StopSet, mode InterpMode, srgb bool) *Document {
	d := &Document{
		Stops:         make([]DocumentStop, 0, set.Len()),
		Interpolation: mode,
		SRGB:          srgb,
		Resolution:    DefaultResolution,
	}
	for _, s := range set.stops {
		d.Stops = append(d.Stops, DocumentStop{
			R: s.Color.R, G: s.Color.G, B: s.Color.B, A: s.Color.A,
			Position: s.Position,
		})
	}
	return d
}

// StopSet returns the stops in persisted order. A stop with a malformed
// hex color keeps its linear components.
func (d *Document) StopSet() StopSet {
	s := StopSet{stops: make([]ColorStop, 0, len(d.Stops))}
	for _, ds := range d.Stops {
		c, err := ds.Color()
		if err != nil {
			c = RGBA{R: ds.R, G: ds.G, B: ds.B, A: ds.A}
		}
		s.stops = append(s.stops, ColorStop{Color: c, Position: ds.Position})
	}
	return s
}

// TextureOptions returns the synthesis options recorded in the document.
// A zero resolution falls back to DefaultResolution.
func (d *Document) TextureOptions() []TextureOption {
	res := d.Resolution
	if res == 0 {
		res = DefaultResolution
	}
	return []TextureOption{WithResolution(res), WithSRGB(d.SRGB)}
}

// Synthesize bakes the document's ramp into a texture. Extra options are
// applied after the document's own settings.
func (d *Document) Synthesize(opts ...TextureOption) (*Texture, error) {
	set := d.StopSet()
	set.SortByPosition()
	return Synthesize(set, d.Interpolation, append(d.TextureOptions(), opts...)...)
}

// ReadDocument decodes a document from r.
func ReadDocument(r io.Reader) (*Document, error) {
	var d Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("colorramp: decode document: %w", err)
	}
	if d.Resolution < 0 {
		return nil, fmt.Errorf("colorramp: decode document: %w", ErrInvalidResolution)
	}
	for i, ds := range d.Stops {
		if _, err := ds.Color(); err != nil {
			return nil, fmt.Errorf("colorramp: decode document: stop %d: %w", i, err)
		}
	}
	return &d, nil
}

// LoadDocument reads a document from the named file.
func LoadDocument(path string) (*Document, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by the caller
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadDocument(f)
}

// WriteTo encodes the document as indented JSON.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("colorramp: encode document: %w", err)
	}
	data = append(data, '\n')
	n, err := w.Write(data)
	return int64(n), err
}

// Save writes the document to the named file.
func (d *Document) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by the caller
	if err != nil {
		return err
	}
	if _, err := d.WriteTo(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
