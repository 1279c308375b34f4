package editor

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/gogpu/colorramp"
)

// timeFractionDigits is the precision of the menu time field.
const timeFractionDigits = 4

var timePrinter = message.NewPrinter(language.English)

// FormatTime formats a stop time for the menu time field.
func FormatTime(t float64) string {
	return timePrinter.Sprint(number.Decimal(t,
		number.MaxFractionDigits(timeFractionDigits),
		number.NoSeparator()))
}

// ParseTime parses the menu time field. Surrounding space is ignored.
// Anything that is not a finite number yields ErrInvalidNumericInput.
func ParseTime(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("parse stop time %q: %w", s, colorramp.ErrInvalidNumericInput)
	}
	return v, nil
}

// MenuItem identifies a context menu entry.
type MenuItem uint8

const (
	// ItemChooseColor opens the color picker. Color stops only.
	ItemChooseColor MenuItem = iota
	// ItemOpacity opens the opacity slider. Alpha stops only.
	ItemOpacity
	// ItemTime is the editable stop time field.
	ItemTime
	// ItemRemove deletes the stop.
	ItemRemove
)

var menuItemLabels = [...]string{
	ItemChooseColor: "Choose Color...",
	ItemOpacity:     "Opacity",
	ItemTime:        "Time",
	ItemRemove:      "Remove Stop",
}

// String returns the entry label.
func (i MenuItem) String() string {
	if int(i) < len(menuItemLabels) {
		return menuItemLabels[i]
	}
	return "unknown"
}

// ContextMenu is the menu of one stop, opened by a secondary click.
type ContextMenu struct {
	c       *Controller
	mark    Mark
	isColor bool
}

func (c *Controller) openMenu(m Mark) {
	c.menu = &ContextMenu{c: c, mark: m, isColor: m.IsValidColorMark(c.curves())}
}

// Mark returns the stop the menu edits.
func (m *ContextMenu) Mark() Mark { return m.mark }

// IsColorStop reports whether the menu belongs to a color stop.
func (m *ContextMenu) IsColorStop() bool { return m.isColor }

// Items returns the entries, in display order.
func (m *ContextMenu) Items() []MenuItem {
	if m.isColor {
		return []MenuItem{ItemChooseColor, ItemTime, ItemRemove}
	}
	return []MenuItem{ItemOpacity, ItemTime, ItemRemove}
}

// TimeText returns the formatted time of the stop.
func (m *ContextMenu) TimeText() string {
	return FormatTime(m.mark.Time)
}

// Alpha returns the current opacity of an alpha stop.
func (m *ContextMenu) Alpha() float64 {
	return m.mark.Color(m.c.curves()).A
}

// ChooseColor opens the color picker for a color stop and closes the menu.
// It returns nil for alpha stops.
func (m *ContextMenu) ChooseColor() *ColorSession {
	if !m.isColor {
		return nil
	}
	m.c.CloseMenu()
	return m.c.OpenColorSession(m.mark)
}

// Opacity opens the opacity slider for an alpha stop. It returns nil for
// color stops.
func (m *ContextMenu) Opacity() *AlphaSession {
	if m.isColor {
		return nil
	}
	return m.c.OpenAlphaSession(m.mark)
}

// CommitTime moves the stop to the time in text. Non-numeric text is
// ignored and false is returned.
func (m *ContextMenu) CommitTime(text string) bool {
	t, err := ParseTime(text)
	if err != nil {
		colorramp.Logger().Debug("editor: time rejected", "text", text)
		return false
	}
	m.c.MoveStop(m.mark, t)
	m.mark.Time = t
	return true
}

// Remove deletes the stop and closes the menu.
func (m *ContextMenu) Remove() {
	m.c.DeleteStop(m.mark)
	m.c.CloseMenu()
}
