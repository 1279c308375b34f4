package curve

import (
	"fmt"

	"github.com/gogpu/colorramp"
)

// Resource owns the curve group of one ramp. It is the owner handle shared
// by the editor, which mutates the curves, and the ramp node, which reads
// them back.
//
// A nil *Resource stands for a missing owner: Push and NotifyChanged do
// nothing and Pull reports ErrInvalidOwner.
type Resource struct {
	name      string
	curves    *Group
	listeners []listener
	nextID    int
	revision  uint64
}

type listener struct {
	id int
	fn func(ChannelMask)
}

// NewResource returns a resource with an empty curve group.
func NewResource(name string) *Resource {
	return &Resource{name: name, curves: NewGroup()}
}

// Name returns the resource name.
func (r *Resource) Name() string {
	if r == nil {
		return ""
	}
	return r.name
}

// String implements fmt.Stringer.
func (r *Resource) String() string {
	if r == nil {
		return "curve.Resource(nil)"
	}
	return fmt.Sprintf("curve.Resource(%q)", r.name)
}

// Curves returns the live curve group, or nil for a nil resource.
func (r *Resource) Curves() *Group {
	if r == nil {
		return nil
	}
	return r.curves
}

// Revision counts change notifications. It lets observers detect edits
// without subscribing.
func (r *Resource) Revision() uint64 {
	if r == nil {
		return 0
	}
	return r.revision
}

// Push replaces the curves with the keyed form of set. Channels whose key
// count is unchanged keep their key handles, so an editor selection stays
// valid. Listeners are not notified.
func (r *Resource) Push(set colorramp.StopSet, mode colorramp.InterpMode) {
	if r == nil {
		return
	}
	r.curves.assign(FromStops(set, mode))
	colorramp.Logger().Debug("curve: pushed stops",
		"resource", r.name, "stops", set.Len(), "mode", mode)
}

// Pull rebuilds dst from the curves. On error dst is left untouched.
func (r *Resource) Pull(dst *colorramp.StopSet) error {
	if r == nil {
		return colorramp.ErrInvalidOwner
	}
	set, err := ToStops(r.curves)
	if err != nil {
		colorramp.Logger().Warn("curve: pull rejected",
			"resource", r.name,
			"red", r.curves.Curve(Red).NumKeys(),
			"green", r.curves.Curve(Green).NumKeys(),
			"blue", r.curves.Curve(Blue).NumKeys())
		return fmt.Errorf("pull %s: %w", r.name, err)
	}
	*dst = set
	colorramp.Logger().Debug("curve: pulled stops", "resource", r.name, "stops", set.Len())
	return nil
}

// OnChanged registers fn to run after every NotifyChanged call, in
// registration order. The returned function unregisters it.
func (r *Resource) OnChanged(fn func(ChannelMask)) (cancel func()) {
	if r == nil || fn == nil {
		return func() {}
	}
	r.nextID++
	id := r.nextID
	r.listeners = append(r.listeners, listener{id: id, fn: fn})
	return func() {
		for i, l := range r.listeners {
			if l.id == id {
				r.listeners = append(r.listeners[:i:i], r.listeners[i+1:]...)
				return
			}
		}
	}
}

// NotifyChanged tells listeners that the channels in mask were edited.
func (r *Resource) NotifyChanged(mask ChannelMask) {
	if r == nil {
		return
	}
	r.revision++
	for _, l := range r.listeners {
		l.fn(mask)
	}
}
