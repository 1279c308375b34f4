package paint

import "github.com/gogpu/colorramp"

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdBox          CommandType = iota // Solid or brushed rectangle
	CmdCheckerboard                    // Transparency backdrop
	CmdGradient                        // Horizontal multi-stop gradient
	CmdText                            // Single line of text
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdBox:          "Box",
	CmdCheckerboard: "Checkerboard",
	CmdGradient:     "Gradient",
	CmdText:         "Text",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
	// Z returns the layer the command is drawn on.
	Z() int
}

// Brush selects the look of a box.
type Brush uint8

const (
	// BrushWhite fills the rectangle with the command color.
	BrushWhite Brush = iota
	// BrushColorHandle is the frame of a color stop handle (points down).
	BrushColorHandle
	// BrushAlphaHandle is the frame of an opacity stop handle (points up).
	BrushAlphaHandle
)

var brushNames = [...]string{
	BrushWhite:       "White",
	BrushColorHandle: "ColorHandle",
	BrushAlphaHandle: "AlphaHandle",
}

// String returns the brush name.
func (b Brush) String() string {
	if int(b) < len(brushNames) {
		return brushNames[b]
	}
	return "Unknown"
}

// Rect is an axis-aligned rectangle in widget-local units.
type Rect struct {
	X, Y, W, H float64
}

// NewRect creates a rectangle from position and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the exclusive right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Contains reports whether (x, y) lies in the half-open rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// BoxCommand fills a rectangle with a brush tinted by Color.
type BoxCommand struct {
	Layer int
	Rect  Rect
	Brush Brush
	// Color is already in display encoding.
	Color colorramp.RGBA
}

// Type implements Command.
func (BoxCommand) Type() CommandType { return CmdBox }

// Z implements Command.
func (c BoxCommand) Z() int { return c.Layer }

// CheckerboardCommand draws a checkerboard that shows through translucent
// commands above it.
type CheckerboardCommand struct {
	Layer int
	Rect  Rect
}

// Type implements Command.
func (CheckerboardCommand) Type() CommandType { return CmdCheckerboard }

// Z implements Command.
func (c CheckerboardCommand) Z() int { return c.Layer }

// GradientStop is one sample of a horizontal gradient.
type GradientStop struct {
	// X is the offset from the left edge of the gradient rectangle.
	X float64
	// Color is already in display encoding.
	Color colorramp.RGBA
}

// GradientCommand fills a rectangle with a horizontal gradient. Colors
// between stops are blended linearly; the rectangle is flat before the first
// and after the last stop.
type GradientCommand struct {
	Layer int
	Rect  Rect
	Stops []GradientStop
}

// Type implements Command.
func (GradientCommand) Type() CommandType { return CmdGradient }

// Z implements Command.
func (c GradientCommand) Z() int { return c.Layer }

// ColorAt returns the gradient color at offset x from the rectangle's left edge.
func (c GradientCommand) ColorAt(x float64) colorramp.RGBA {
	n := len(c.Stops)
	if n == 0 {
		return colorramp.Transparent
	}
	if x <= c.Stops[0].X {
		return c.Stops[0].Color
	}
	for i := 1; i < n; i++ {
		hi := c.Stops[i]
		if x < hi.X {
			lo := c.Stops[i-1]
			return lo.Color.Lerp(hi.Color, (x-lo.X)/(hi.X-lo.X))
		}
	}
	return c.Stops[n-1].Color
}

// TextCommand draws a single line of text. (X, Y) is the top-left corner of
// the line box.
type TextCommand struct {
	Layer int
	Text  string
	X, Y  float64
	Size  float64
	Color colorramp.RGBA
}

// Type implements Command.
func (TextCommand) Type() CommandType { return CmdText }

// Z implements Command.
func (c TextCommand) Z() int { return c.Layer }
