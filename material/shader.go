package material

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strconv"
	"text/template"

	"github.com/gogpu/naga"

	"github.com/gogpu/colorramp"
)

// ErrShaderCompile is returned when naga rejects the generated WGSL.
var ErrShaderCompile = errors.New("material: shader compilation failed")

//go:embed shaders/color_ramp.wgsl
var rampShaderSource string

//go:embed shaders/color_ramp_const.wgsl
var constShaderSource string

var constShaderTemplate = template.Must(template.New("color_ramp_const").Parse(constShaderSource))

// Binding slots of the ramp shader, group 0.
const (
	BindingRampTexture   = 0
	BindingRampSampler   = 1
	BindingFactorTexture = 2
)

// Shader entry points.
const (
	VertexEntryPoint   = "vs_main"
	FragmentEntryPoint = "fs_main"
)

// Shader is the compiled form of a node.
type Shader struct {
	WGSL string
	// SPIRV is empty when validation is disabled.
	SPIRV []byte
	// Constant is set when the factor input is unconnected; Value then holds
	// the output luminance and Texture is nil.
	Constant bool
	Value    float64
	Texture  *colorramp.Texture
}

// RampShaderSource returns the WGSL of the texture lookup shader.
func RampShaderSource() string { return rampShaderSource }

// ConstantShaderSource returns the WGSL of the constant shader for value.
func ConstantShaderSource(value float64) (string, error) {
	var buf bytes.Buffer
	err := constShaderTemplate.Execute(&buf, struct{ Value string }{wgslFloat(value)})
	if err != nil {
		return "", fmt.Errorf("render constant shader: %w", err)
	}
	return buf.String(), nil
}

// wgslFloat formats v as a WGSL float literal.
func wgslFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 32)
}

// Compile refreshes the node and generates its shader. With the factor
// connected it needs at least two stops and a readable private curve.
func (n *Node) Compile() (*Shader, error) {
	if !n.FactorConnected {
		lum := n.ConstFactor.Luminance()
		src, err := ConstantShaderSource(lum)
		if err != nil {
			return nil, err
		}
		return n.finish(&Shader{WGSL: src, Constant: true, Value: lum})
	}

	if n.Stops.Len() < 2 {
		return nil, fmt.Errorf("compile %s: %w", n.opts.name, colorramp.ErrInsufficientStops)
	}
	if err := n.Refresh(); err != nil {
		return nil, fmt.Errorf("compile %s: %w", n.opts.name, err)
	}
	if !n.validCurve {
		return nil, fmt.Errorf("compile %s: %w", n.opts.name, colorramp.ErrInvalidCurve)
	}
	return n.finish(&Shader{WGSL: rampShaderSource, Texture: n.texture})
}

func (n *Node) finish(s *Shader) (*Shader, error) {
	if !n.opts.validate {
		return s, nil
	}
	spirv, err := naga.Compile(s.WGSL)
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w: %w", n.opts.name, ErrShaderCompile, err)
	}
	s.SPIRV = spirv
	colorramp.Logger().Debug("material: shader compiled",
		"node", n.opts.name, "constant", s.Constant, "spirv", len(spirv))
	return s, nil
}
