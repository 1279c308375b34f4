package paint

import (
	"fmt"
	"sort"
)

// List is an ordered list of commands for a widget of a given size.
type List struct {
	width, height int
	commands      []Command
}

// NewList returns an empty list for a width x height widget.
func NewList(width, height int) *List {
	return &List{width: width, height: height}
}

// Width returns the widget width.
func (l *List) Width() int { return l.width }

// Height returns the widget height.
func (l *List) Height() int { return l.height }

// Add appends a command.
func (l *List) Add(cmd Command) {
	l.commands = append(l.commands, cmd)
}

// Len returns the number of commands.
func (l *List) Len() int { return len(l.commands) }

// Commands returns the commands in replay order: ascending layer, insertion
// order within a layer.
func (l *List) Commands() []Command {
	out := make([]Command, len(l.commands))
	copy(out, l.commands)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Z() < out[j].Z() })
	return out
}

// Count returns the number of commands of type t.
func (l *List) Count(t CommandType) int {
	n := 0
	for _, c := range l.commands {
		if c.Type() == t {
			n++
		}
	}
	return n
}

// Playback replays the list into backend between Begin and End.
func (l *List) Playback(backend Backend) error {
	if err := backend.Begin(l.width, l.height); err != nil {
		return err
	}
	for _, cmd := range l.Commands() {
		switch c := cmd.(type) {
		case BoxCommand:
			backend.Box(c.Rect, c.Brush, c.Color)
		case CheckerboardCommand:
			backend.Checkerboard(c.Rect)
		case GradientCommand:
			backend.Gradient(c.Rect, c.Stops)
		case TextCommand:
			backend.Text(c.Text, c.X, c.Y, c.Size, c.Color)
		default:
			return fmt.Errorf("paint: unsupported command %v", cmd.Type())
		}
	}
	return backend.End()
}
