package editor

import (
	"math"

	"github.com/gogpu/gpucontext"
)

// HandlePointer dispatches a pointer event and reports whether it was
// handled. A primary press that follows another within
// [DoubleClickInterval] and a few units of it is delivered as
// [Controller.DoubleClick].
func (c *Controller) HandlePointer(ev gpucontext.PointerEvent) bool {
	switch ev.Type {
	case gpucontext.PointerDown:
		if ev.Button == gpucontext.ButtonLeft && c.isDoubleClick(ev) {
			c.hasLastPress = false
			return c.DoubleClick(ev.X, ev.Y)
		}
		if ev.Button == gpucontext.ButtonLeft {
			c.lastPress, c.lastPressX, c.lastPressY = ev.Timestamp, ev.X, ev.Y
			c.hasLastPress = true
		}
		return c.PointerDown(ev.Button, ev.X, ev.Y, ev.Modifiers)
	case gpucontext.PointerMove:
		return c.PointerMove(ev.X, ev.Y, ev.Buttons)
	case gpucontext.PointerUp:
		return c.PointerUp(ev.Button, ev.X, ev.Y)
	case gpucontext.PointerLeave:
		c.PointerLeave()
		return false
	case gpucontext.PointerCancel:
		c.CancelCapture()
		return true
	}
	return false
}

func (c *Controller) isDoubleClick(ev gpucontext.PointerEvent) bool {
	if !c.hasLastPress {
		return false
	}
	dt := ev.Timestamp - c.lastPress
	return dt >= 0 && dt <= DoubleClickInterval &&
		math.Abs(ev.X-c.lastPressX) <= doubleClickSlop &&
		math.Abs(ev.Y-c.lastPressY) <= doubleClickSlop
}

// PointerDown handles a button press at local (x, y).
func (c *Controller) PointerDown(button gpucontext.Button, x, y float64, mods gpucontext.Modifiers) bool {
	if !c.opts.editing {
		return false
	}
	c.lastX = x
	switch button {
	case gpucontext.ButtonLeft:
		if mods.HasShift() {
			return false
		}
		c.selected = c.HitTest(x, y)
		c.distance = 0
		c.state = StateArmedDrag
		c.captured = true
		return true
	case gpucontext.ButtonRight:
		if c.primaryHeld() {
			return true
		}
		m := c.HitTest(x, y)
		if !m.IsValid(c.curves()) {
			return false
		}
		c.selected = m
		c.distance = 0
		c.state = StateRightArmed
		c.captured = true
		return true
	}
	return false
}

// primaryHeld reports whether a primary press is armed or dragging. The
// secondary button is ignored until it is released.
func (c *Controller) primaryHeld() bool {
	return c.state == StateArmedDrag || c.state == StateDragging
}

// PointerMove handles motion to local (x, y) with the given buttons held.
func (c *Controller) PointerMove(x, y float64, buttons gpucontext.Buttons) bool {
	c.hover = c.geom.RegionAt(x, y)
	dx := x - c.lastX
	c.lastX = x
	if !c.opts.editing || !c.captured {
		return false
	}
	c.distance += math.Abs(dx)

	g := c.curves()
	if !buttons.HasLeft() || !c.selected.IsValid(g) {
		return true
	}
	if c.state != StateDragging {
		if c.distance >= DragThreshold && c.beginOpen(LabelMoveStop, c) {
			c.dragOrigin = c.selected.Time
			c.state = StateDragging
		}
		return true
	}
	c.selected.SetTime(g, c.Scale().LocalXToInput(x))
	c.notify(c.selected.Mask())
	return true
}

// PointerUp handles a button release at local (x, y).
func (c *Controller) PointerUp(button gpucontext.Button, x, y float64) bool {
	if !c.opts.editing {
		return false
	}
	switch button {
	case gpucontext.ButtonLeft:
		if c.state == StateDragging {
			c.endOpen(c)
		} else if c.distance < DragThreshold && !c.selected.IsValid(c.curves()) {
			c.addStop(c.geom.RegionAt(x, y), x)
		}
		c.resetDrag()
		return true
	case gpucontext.ButtonRight:
		if c.primaryHeld() {
			return true
		}
		if c.distance < DragThreshold && c.selected.IsValid(c.curves()) {
			c.openMenu(c.selected)
		}
		c.resetDrag()
		return true
	}
	return false
}

// DoubleClick selects the mark at (x, y) and opens its edit session: the
// color picker for a color mark, the opacity slider for an alpha mark.
func (c *Controller) DoubleClick(x, y float64) bool {
	if !c.opts.editing {
		return false
	}
	c.selected = c.HitTest(x, y)
	g := c.curves()
	switch {
	case c.selected.IsValidColorMark(g):
		c.OpenColorSession(c.selected)
		return true
	case c.selected.IsValidAlphaMark(g):
		c.OpenAlphaSession(c.selected)
		return true
	}
	return false
}

// PointerLeave clears the hover highlight.
func (c *Controller) PointerLeave() {
	c.hover = RegionNone
}

// HandleKey handles a key press. Delete and Backspace remove the selected
// stop.
func (c *Controller) HandleKey(key gpucontext.Key, _ gpucontext.Modifiers) bool {
	if !c.opts.editing {
		return false
	}
	switch key {
	case gpucontext.KeyDelete, gpucontext.KeyBackspace:
		c.DeleteStop(c.selected)
		c.selected = Mark{}
		return true
	case gpucontext.KeyEscape:
		if c.state == StateDragging {
			c.CancelCapture()
			return true
		}
	}
	return false
}

// Attach subscribes the controller to host event sources. Either source may
// be nil. The widget is assumed to fill the surface, so resize events set
// the hit testing geometry. Pointer coordinates are used as widget-local.
func (c *Controller) Attach(pointers gpucontext.PointerEventSource, events gpucontext.EventSource) {
	if pointers != nil {
		pointers.OnPointer(func(ev gpucontext.PointerEvent) {
			c.HandlePointer(ev)
		})
	}
	if events == nil {
		return
	}
	events.OnKeyPress(func(key gpucontext.Key, mods gpucontext.Modifiers) {
		c.HandleKey(key, mods)
	})
	events.OnResize(func(width, height int) {
		c.Resize(float64(width), float64(height))
	})
	events.OnFocus(func(focused bool) {
		if !focused {
			c.CancelCapture()
		}
	})
}
