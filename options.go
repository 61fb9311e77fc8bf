package drawq

// ContextOption configures a DrawingContext during creation.
//
// Example:
//
//	// Default: viewport covers the logical size
//	ctx := drawq.NewContext(800, 600)
//
//	// Custom viewport placement (split screen)
//	ctx := drawq.NewContext(400, 600, drawq.WithViewport(drawq.NewRect(400, 0, 400, 600)))
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for context creation.
type contextOptions struct {
	viewport   *Rect
	arenaChunk int
	ambient    RGBA
}

// defaultContextOptions returns the default context options.
func defaultContextOptions() contextOptions {
	return contextOptions{
		viewport:   nil, // derived from the logical size if nil
		arenaChunk: 0,   // arena default
		ambient:    White,
	}
}

// WithViewport places the context's output region on the target.
// Translated positions are offset by the viewport origin, and pixel
// readbacks outside the viewport resolve to black.
func WithViewport(r Rect) ContextOption {
	return func(o *contextOptions) {
		o.viewport = &r
	}
}

// WithArenaChunk sets the request arena's chunk capacity. Larger
// chunks mean fewer allocations for request-heavy frames.
func WithArenaChunk(n int) ContextOption {
	return func(o *contextOptions) {
		o.arenaChunk = n
	}
}

// WithAmbientLight sets the ambient light color composited under the
// lightmap canvas.
func WithAmbientLight(c RGBA) ContextOption {
	return func(o *contextOptions) {
		o.ambient = c
	}
}
