package drawq

// Transform is the drawing state applied to every request at
// construction time: a translation subtracted from positions, a flip
// XOR'd with surface flips, an alpha multiplied into request and color
// alphas, and the clip rectangle texture draws are culled against.
//
// Translation and the clip rectangle live in the same pre-translate
// coordinate space as draw positions, so culling compares
// like-for-like.
type Transform struct {
	Translation Vector
	Flip        Flip
	Alpha       float32
	Clip        Rect
}

// DrawingContext owns one frame's drawing state: a transform stack, a
// viewport, the request arena, and two canvases sharing that arena —
// the color canvas for regular drawing and the lightmap canvas for
// light sources.
//
// A context is constructed once and reused; Clear must be called
// exactly once per frame after rendering.
type DrawingContext struct {
	width, height int
	viewport      Rect
	ambient       RGBA
	arena         *Arena
	transforms    []Transform
	color         *Canvas
	light         *Canvas
}

// NewContext creates a drawing context with the given logical size.
func NewContext(width, height int, opts ...ContextOption) *DrawingContext {
	o := defaultContextOptions()
	for _, opt := range opts {
		opt(&o)
	}

	viewport := NewRect(0, 0, float32(width), float32(height))
	if o.viewport != nil {
		viewport = *o.viewport
	}

	ctx := &DrawingContext{
		width:    width,
		height:   height,
		viewport: viewport,
		ambient:  o.ambient,
		arena:    NewArena(o.arenaChunk),
		transforms: []Transform{{
			Alpha: 1,
			Clip:  NewRect(0, 0, float32(width), float32(height)),
		}},
	}
	ctx.color = newCanvas(ctx, ctx.arena)
	ctx.light = newCanvas(ctx, ctx.arena)
	return ctx
}

// Color returns the color canvas.
func (c *DrawingContext) Color() *Canvas { return c.color }

// Light returns the lightmap canvas.
func (c *DrawingContext) Light() *Canvas { return c.light }

// Arena returns the frame's request arena.
func (c *DrawingContext) Arena() *Arena { return c.arena }

// Width returns the logical width.
func (c *DrawingContext) Width() int { return c.width }

// Height returns the logical height.
func (c *DrawingContext) Height() int { return c.height }

// Viewport returns the output region on the render target.
func (c *DrawingContext) Viewport() Rect { return c.viewport }

// AmbientColor returns the ambient light color.
func (c *DrawingContext) AmbientColor() RGBA { return c.ambient }

// SetAmbientColor sets the ambient light color.
func (c *DrawingContext) SetAmbientColor(color RGBA) { c.ambient = color }

// Transform returns the current transform.
func (c *DrawingContext) Transform() Transform {
	return c.transforms[len(c.transforms)-1]
}

// PushTransform pushes a copy of the current transform. Mutations
// apply to the copy until the matching PopTransform.
func (c *DrawingContext) PushTransform() {
	c.transforms = append(c.transforms, c.Transform())
}

// PopTransform restores the previously pushed transform. Popping the
// base transform is a programmer error and panics.
func (c *DrawingContext) PopTransform() {
	if len(c.transforms) <= 1 {
		panic("drawq: PopTransform without matching PushTransform")
	}
	c.transforms = c.transforms[:len(c.transforms)-1]
}

func (c *DrawingContext) top() *Transform {
	return &c.transforms[len(c.transforms)-1]
}

// Translation returns the current translation.
func (c *DrawingContext) Translation() Vector { return c.Transform().Translation }

// SetTranslation replaces the current translation.
func (c *DrawingContext) SetTranslation(v Vector) { c.top().Translation = v }

// Translate adds an offset to the current translation.
func (c *DrawingContext) Translate(v Vector) {
	t := c.top()
	t.Translation = t.Translation.Add(v)
}

// Flip returns the current flip.
func (c *DrawingContext) Flip() Flip { return c.Transform().Flip }

// SetFlip replaces the current flip.
func (c *DrawingContext) SetFlip(f Flip) { c.top().Flip = f }

// Alpha returns the current alpha multiplier.
func (c *DrawingContext) Alpha() float32 { return c.Transform().Alpha }

// SetAlpha replaces the current alpha multiplier.
func (c *DrawingContext) SetAlpha(a float32) { c.top().Alpha = a }

// ClipRect returns the current clip rectangle.
func (c *DrawingContext) ClipRect() Rect { return c.Transform().Clip }

// SetClipRect replaces the current clip rectangle. The rectangle is in
// the same pre-translate coordinate space as draw positions.
func (c *DrawingContext) SetClipRect(r Rect) { c.top().Clip = r }

// Render dispatches both canvases to the painter in compositing order:
// the lit part of the color canvas, then the lightmap, then the
// overlay part of the color canvas. With a single render target this
// composites lights directly over the scene; compositors with a
// separate lightmap target can instead call Canvas.Render per pass.
func (c *DrawingContext) Render(p Painter) {
	c.color.Render(p, DrawBelowLightmap)
	if c.light.Pending() > 0 {
		c.light.Render(p, DrawAll)
	}
	c.color.Render(p, DrawAboveLightmap)
}

// Clear destroys all pending requests on both canvases and resets the
// arena for the next frame. Call exactly once per frame, after
// rendering.
func (c *DrawingContext) Clear() {
	c.color.Clear()
	c.light.Clear()
	c.arena.Reset()
}
