package drawq

import (
	"fmt"
	"sync"
)

// PainterFactory creates a painter for a target of the given pixel
// dimensions. Factories are registered via Register and called by
// NewPainter.
type PainterFactory func(width, height int) (Painter, error)

// Registry state - protected by mutex for thread-safe access.
var (
	registryMu sync.RWMutex
	painters   = make(map[string]PainterFactory)
)

// Register registers a painter factory with the given name.
// This function is typically called from init() in backend packages,
// following the database/sql driver pattern:
//
//	func init() {
//	    drawq.Register("raster", func(w, h int) (drawq.Painter, error) {
//	        return New(w, h), nil
//	    })
//	}
//
// Register panics if factory is nil or a painter with the same name is
// already registered, so duplicate registrations are caught during
// program initialization rather than silently overwriting backends.
func Register(name string, factory PainterFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("drawq: Register factory is nil")
	}
	if _, dup := painters[name]; dup {
		panic("drawq: Register called twice for " + name)
	}
	painters[name] = factory
}

// Unregister removes a painter from the registry.
// This is primarily useful for testing to clean up between tests.
// If the painter is not registered, this is a no-op.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(painters, name)
}

// NewPainter creates a painter by name for a target of the given
// dimensions. The name must match a previously registered backend.
//
//	import _ "github.com/gogpu/drawq/backends/raster"
//
//	painter, err := drawq.NewPainter("raster", 800, 600)
//
// Returns an error if the painter is not registered.
func NewPainter(name string, width, height int) (Painter, error) {
	registryMu.RLock()
	factory, ok := painters[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("drawq: unknown painter %q (forgotten import?)", name)
	}
	return factory(width, height)
}

// MustPainter creates a painter by name, panicking on error.
// This is useful when backend availability is guaranteed.
func MustPainter(name string, width, height int) Painter {
	p, err := NewPainter(name, width, height)
	if err != nil {
		panic(err)
	}
	return p
}
