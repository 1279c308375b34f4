package curve

import (
	"sort"

	"github.com/gogpu/colorramp"
)

// KeyHandle identifies a key within one ChannelCurve. Handles survive
// insertions, deletions and re-sorting of other keys. The zero value is
// invalid.
type KeyHandle uint64

// IsValid reports whether h can refer to a key.
func (h KeyHandle) IsValid() bool {
	return h != 0
}

// Key is a single keyframe.
type Key struct {
	Time   float64
	Value  float64
	Interp colorramp.InterpMode
}

type keyEntry struct {
	handle KeyHandle
	Key
}

// ChannelCurve is a one-dimensional keyed curve.
//
// Keys are kept sorted by time. Keys sharing a time keep insertion order.
type ChannelCurve struct {
	// Default is returned by Eval when the curve has no keys.
	Default float64

	keys []keyEntry
	next KeyHandle
}

// NumKeys returns the number of keys.
func (c *ChannelCurve) NumKeys() int {
	return len(c.keys)
}

// AddKey inserts a key after any existing keys at the same time and returns
// its handle.
func (c *ChannelCurve) AddKey(time, value float64, interp colorramp.InterpMode) KeyHandle {
	c.next++
	e := keyEntry{handle: c.next, Key: Key{Time: time, Value: value, Interp: interp}}
	c.insert(e)
	return e.handle
}

func (c *ChannelCurve) insert(e keyEntry) {
	i := sort.Search(len(c.keys), func(i int) bool { return c.keys[i].Time > e.Time })
	c.keys = append(c.keys, keyEntry{})
	copy(c.keys[i+1:], c.keys[i:])
	c.keys[i] = e
}

func (c *ChannelCurve) index(h KeyHandle) int {
	if !h.IsValid() {
		return -1
	}
	for i := range c.keys {
		if c.keys[i].handle == h {
			return i
		}
	}
	return -1
}

// IsKeyHandleValid reports whether h refers to a key of this curve.
func (c *ChannelCurve) IsKeyHandleValid(h KeyHandle) bool {
	return c.index(h) >= 0
}

// DeleteKey removes the key. It reports whether the key existed.
func (c *ChannelCurve) DeleteKey(h KeyHandle) bool {
	i := c.index(h)
	if i < 0 {
		return false
	}
	c.keys = append(c.keys[:i], c.keys[i+1:]...)
	return true
}

// Key returns the key for h.
func (c *ChannelCurve) Key(h KeyHandle) (Key, bool) {
	i := c.index(h)
	if i < 0 {
		return Key{}, false
	}
	return c.keys[i].Key, true
}

// KeyTime returns the time of h, or 0 when h is not a key of this curve.
func (c *ChannelCurve) KeyTime(h KeyHandle) float64 {
	k, _ := c.Key(h)
	return k.Time
}

// KeyValue returns the value of h, or 0 when h is not a key of this curve.
func (c *ChannelCurve) KeyValue(h KeyHandle) float64 {
	k, _ := c.Key(h)
	return k.Value
}

// SetKeyTime moves a key, re-sorting the curve. It reports whether the key
// existed.
func (c *ChannelCurve) SetKeyTime(h KeyHandle, time float64) bool {
	i := c.index(h)
	if i < 0 {
		return false
	}
	e := c.keys[i]
	c.keys = append(c.keys[:i], c.keys[i+1:]...)
	e.Time = time
	c.insert(e)
	return true
}

// SetKeyValue changes the value of a key. It reports whether the key existed.
func (c *ChannelCurve) SetKeyValue(h KeyHandle, value float64) bool {
	i := c.index(h)
	if i < 0 {
		return false
	}
	c.keys[i].Value = value
	return true
}

// FindKey returns the first key whose time is within tolerance of time.
func (c *ChannelCurve) FindKey(time, tolerance float64) KeyHandle {
	for _, e := range c.keys {
		d := e.Time - time
		if d < 0 {
			d = -d
		}
		if d <= tolerance {
			return e.handle
		}
	}
	return 0
}

// Handles returns the key handles in time order.
func (c *ChannelCurve) Handles() []KeyHandle {
	out := make([]KeyHandle, len(c.keys))
	for i, e := range c.keys {
		out[i] = e.handle
	}
	return out
}

// Keys returns a copy of the keys in time order.
func (c *ChannelCurve) Keys() []Key {
	out := make([]Key, len(c.keys))
	for i, e := range c.keys {
		out[i] = e.Key
	}
	return out
}

// Reset removes all keys. Handles issued before Reset are never reused.
func (c *ChannelCurve) Reset() {
	c.keys = c.keys[:0]
}

// replaceKeys sets the curve to keys, which must be sorted by time. When the
// key count is unchanged existing handles are kept, in order.
func (c *ChannelCurve) replaceKeys(keys []Key) {
	if len(keys) == len(c.keys) {
		for i, k := range keys {
			c.keys[i].Key = k
		}
		return
	}
	c.Reset()
	for _, k := range keys {
		c.AddKey(k.Time, k.Value, k.Interp)
	}
}

// clone returns a deep copy that keeps handles.
func (c *ChannelCurve) clone() ChannelCurve {
	out := *c
	out.keys = make([]keyEntry, len(c.keys))
	copy(out.keys, c.keys)
	return out
}

// Eval returns the curve value at time.
//
// Before the first key and after the last key the curve is flat. Between two
// keys the lower key's interpolation mode applies. Of several keys sharing a
// time, the last one inserted wins.
func (c *ChannelCurve) Eval(time float64) float64 {
	n := len(c.keys)
	if n == 0 {
		return c.Default
	}
	if time < c.keys[0].Time {
		return c.keys[0].Value
	}
	// Index of the first key strictly after time.
	i := sort.Search(n, func(i int) bool { return c.keys[i].Time > time })
	if i == n {
		return c.keys[n-1].Value
	}
	// keys[i-1].Time <= time < keys[i].Time, so the span is non-zero.
	lo, hi := c.keys[i-1], c.keys[i]
	if lo.Interp == colorramp.InterpConstant {
		return lo.Value
	}
	t := (time - lo.Time) / (hi.Time - lo.Time)
	return lo.Value*(1-t) + hi.Value*t
}
