package editor

import (
	"github.com/gogpu/colorramp"
	"github.com/gogpu/colorramp/curve"
)

// ColorSession is an open color picker on one color stop. The whole session
// is one transaction.
type ColorSession struct {
	c    *Controller
	mark Mark
	prev colorramp.RGBA
	done bool
}

// OpenColorSession opens the color picker on m. Any open session is
// cancelled first. It returns nil without an owner, for a mark that is not
// a valid color mark, or while a drag holds the transaction.
func (c *Controller) OpenColorSession(m Mark) *ColorSession {
	g := c.curves()
	if !m.IsValidColorMark(g) {
		return nil
	}
	c.closeSessions()
	s := &ColorSession{c: c, mark: m, prev: m.Color(g)}
	if !c.beginOpen(LabelChangeColor, s) {
		return nil
	}
	c.color = s
	return s
}

// Initial returns the color of the stop when the session opened.
func (s *ColorSession) Initial() colorramp.RGBA { return s.prev }

// Preview writes rgb to the stop while the picker is open.
func (s *ColorSession) Preview(rgb colorramp.RGBA) {
	if s.done {
		return
	}
	s.write(rgb)
}

// Commit writes rgb, remembers it for new stops and closes the session.
func (s *ColorSession) Commit(rgb colorramp.RGBA) {
	if s.done {
		return
	}
	s.write(rgb)
	s.c.lastColor.R, s.c.lastColor.G, s.c.lastColor.B = rgb.R, rgb.G, rgb.B
	s.finish()
	s.c.endOpen(s)
}

// Cancel restores the color the stop had when the session opened and
// closes the session.
func (s *ColorSession) Cancel() {
	if s.done {
		return
	}
	s.write(s.prev)
	s.finish()
	s.c.abandonOpen(s)
}

func (s *ColorSession) write(rgb colorramp.RGBA) {
	g := s.c.curves()
	if !s.mark.IsValidColorMark(g) {
		return
	}
	s.mark.SetColor(g, rgb)
	s.c.notify(curve.MaskRGB)
}

func (s *ColorSession) finish() {
	s.done = true
	if s.c.color == s {
		s.c.color = nil
	}
}

// AlphaSession is an open opacity slider on one alpha stop. A slide
// (BeginSlide .. EndSlide) is one transaction.
type AlphaSession struct {
	c       *Controller
	mark    Mark
	sliding bool
}

// OpenAlphaSession opens the opacity slider on m. It returns nil for a mark
// that is not a valid alpha mark.
func (c *Controller) OpenAlphaSession(m Mark) *AlphaSession {
	if !m.IsValidAlphaMark(c.curves()) {
		return nil
	}
	c.closeSessions()
	c.alpha = &AlphaSession{c: c, mark: m}
	return c.alpha
}

// Value returns the current opacity of the stop.
func (s *AlphaSession) Value() float64 {
	return s.mark.Color(s.c.curves()).A
}

// Sliding reports whether a slide is in progress.
func (s *AlphaSession) Sliding() bool { return s.sliding }

// BeginSlide opens the slide transaction. It does nothing while a drag
// holds the transaction.
func (s *AlphaSession) BeginSlide() {
	if s.sliding || !s.mark.IsValidAlphaMark(s.c.curves()) {
		return
	}
	s.sliding = s.c.beginOpen(LabelChangeAlpha, s)
}

// Change writes v while sliding. Outside a slide it does nothing.
func (s *AlphaSession) Change(v float64) {
	if !s.sliding {
		return
	}
	s.write(v)
}

// EndSlide closes the slide transaction.
func (s *AlphaSession) EndSlide() {
	if !s.sliding {
		return
	}
	s.sliding = false
	s.c.endOpen(s)
}

// Commit writes v and remembers it for new stops. Outside a slide the write
// gets its own transaction.
func (s *AlphaSession) Commit(v float64) {
	if !s.mark.IsValidAlphaMark(s.c.curves()) {
		return
	}
	if s.sliding || s.c.InTransaction() {
		s.write(v)
	} else {
		s.c.withTransaction(LabelChangeAlpha, func() { s.write(v) })
	}
	s.c.lastColor.A = v
}

// Close ends the session. A slide in progress is closed.
func (s *AlphaSession) Close() {
	s.EndSlide()
	if s.c.alpha == s {
		s.c.alpha = nil
	}
}

func (s *AlphaSession) write(v float64) {
	g := s.c.curves()
	if !s.mark.IsValidAlphaMark(g) {
		return
	}
	s.mark.SetColor(g, colorramp.RGBA{A: v})
	s.c.notify(curve.MaskAlpha)
}

// closeSessions cancels the color picker and closes the opacity slider.
func (c *Controller) closeSessions() {
	if c.color != nil {
		c.color.Cancel()
	}
	if c.alpha != nil {
		c.alpha.Close()
	}
}
