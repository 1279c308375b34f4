package paint

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/colorramp"
)

// Backend receives replayed paint commands.
//
// Begin is called once before any drawing, End once after the last command.
type Backend interface {
	// Begin prepares a width x height target.
	Begin(width, height int) error
	// End finalizes the output.
	End() error

	// Box fills rect with brush, tinted by color.
	Box(rect Rect, brush Brush, color colorramp.RGBA)
	// Checkerboard draws a transparency backdrop over rect.
	Checkerboard(rect Rect)
	// Gradient fills rect with a horizontal gradient through stops.
	Gradient(rect Rect, stops []GradientStop)
	// Text draws s with its line box's top-left corner at (x, y).
	Text(s string, x, y, size float64, color colorramp.RGBA)
}

// BackendFactory creates a new backend instance.
type BackendFactory func() Backend

var (
	registryMu sync.RWMutex
	backends   = make(map[string]BackendFactory)
)

// Register makes a backend available by name. It panics if factory is nil
// or the name is already registered.
func Register(name string, factory BackendFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("paint: Register factory is nil")
	}
	if _, dup := backends[name]; dup {
		panic("paint: Register called twice for " + name)
	}
	backends[name] = factory
}

// Unregister removes a backend. It is a no-op for unknown names.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// NewBackend creates a backend by name.
func NewBackend(name string) (Backend, error) {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("paint: unknown backend %q (forgotten import?)", name)
	}
	return factory(), nil
}

// Backends returns the sorted names of registered backends.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
