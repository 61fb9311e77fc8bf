package drawq

// ColorCell is a single-write cell carrying the result of a pixel
// readback. The canvas (for off-viewport positions) or the painter
// (during render dispatch) resolves the cell exactly once; application
// code reads it after the frame's render pass has returned.
//
// Resolving a cell twice is a programmer error and panics.
type ColorCell struct {
	color    RGBA
	resolved bool
}

// NewColorCell creates an unresolved cell.
func NewColorCell() *ColorCell {
	return &ColorCell{}
}

// Resolve stores the sampled color. It panics if the cell was already
// resolved, since a readback result must be written exactly once.
func (c *ColorCell) Resolve(color RGBA) {
	if c.resolved {
		panic("drawq: ColorCell resolved twice")
	}
	c.color = color
	c.resolved = true
}

// Get returns the sampled color and whether the cell has been
// resolved. Before resolution it returns the zero color and false.
func (c *ColorCell) Get() (RGBA, bool) {
	return c.color, c.resolved
}

// Resolved reports whether the cell holds a result.
func (c *ColorCell) Resolved() bool {
	return c.resolved
}
