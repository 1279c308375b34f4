package editor

import (
	"github.com/gogpu/colorramp"
	"github.com/gogpu/colorramp/curve"
)

// Transaction labels.
const (
	LabelAddStop     = "Add Gradient Stop"
	LabelDeleteStop  = "Delete Gradient Stop"
	LabelMoveStop    = "Move Gradient Stop"
	LabelChangeTime  = "Change Gradient Stop Time"
	LabelChangeColor = "Change Gradient Stop Color"
	LabelChangeAlpha = "Change Gradient Stop Alpha"
)

// Transactor is the host's undo system. Every Begin is balanced by exactly
// one End or Abandon. Modify is called before the first mutation of owner
// inside a transaction so the host can snapshot it.
type Transactor interface {
	Begin(label string)
	End()
	Abandon()
	Modify(owner *curve.Resource)
}

// NopTransactor discards all transactions.
type NopTransactor struct{}

func (NopTransactor) Begin(string)           {}
func (NopTransactor) End()                   {}
func (NopTransactor) Abandon()               {}
func (NopTransactor) Modify(*curve.Resource) {}

// openTransaction tracks a transaction that spans several input events.
// owner is the drag or session that opened it; only the owner closes it.
type openTransaction struct {
	label string
	owner any
}

// withTransaction runs fn inside a transaction on the controller's owner.
// If fn panics the transaction is abandoned and the panic continues.
func (c *Controller) withTransaction(label string, fn func()) {
	c.tx.Begin(label)
	colorramp.Logger().Debug("editor: transaction begin", "label", label)
	done := false
	defer func() {
		if done {
			c.tx.End()
			colorramp.Logger().Debug("editor: transaction end", "label", label)
			return
		}
		c.tx.Abandon()
		colorramp.Logger().Warn("editor: transaction abandoned", "label", label)
	}()
	c.tx.Modify(c.owner)
	fn()
	done = true
}

// beginOpen opens a transaction for owner that outlives the current call.
// It reports false, and opens nothing, while another owner holds one.
func (c *Controller) beginOpen(label string, owner any) bool {
	if c.open != nil {
		colorramp.Logger().Debug("editor: transaction busy", "label", label, "open", c.open.label)
		return false
	}
	c.tx.Begin(label)
	c.tx.Modify(c.owner)
	c.open = &openTransaction{label: label, owner: owner}
	colorramp.Logger().Debug("editor: transaction begin", "label", label)
	return true
}

func (c *Controller) endOpen(owner any) {
	if c.open == nil || c.open.owner != owner {
		return
	}
	c.tx.End()
	colorramp.Logger().Debug("editor: transaction end", "label", c.open.label)
	c.open = nil
}

func (c *Controller) abandonOpen(owner any) {
	if c.open == nil || c.open.owner != owner {
		return
	}
	c.tx.Abandon()
	colorramp.Logger().Warn("editor: transaction abandoned", "label", c.open.label)
	c.open = nil
}

// InTransaction reports whether a multi-event transaction is open.
func (c *Controller) InTransaction() bool {
	return c.open != nil
}
