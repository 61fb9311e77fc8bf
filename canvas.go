package drawq

import "sort"

// PaintStyle bundles the optional styling of a surface draw.
type PaintStyle struct {
	// Color modulates the texture.
	Color RGBA
	// Alpha is an extra opacity multiplier in [0, 1].
	Alpha float32
	// Blend selects the blend factors.
	Blend Blend
}

// DefaultPaintStyle returns an unmodulated, fully opaque style with
// standard alpha blending.
func DefaultPaintStyle() PaintStyle {
	return PaintStyle{Color: White, Alpha: 1, Blend: DefaultBlend()}
}

// Canvas accumulates drawing requests during a frame and dispatches
// them to a painter in sorted layer order. It holds non-owning
// references to requests; the context's arena owns their memory.
//
// On a regular level each frame carries around 50-250 requests (before
// batching it was 1000-3000).
type Canvas struct {
	context  *DrawingContext
	arena    *Arena
	requests []Request
}

func newCanvas(ctx *DrawingContext, arena *Arena) *Canvas {
	return &Canvas{
		context:  ctx,
		arena:    arena,
		requests: make([]Request, 0, 256),
	}
}

// Context returns the enclosing drawing context.
func (c *Canvas) Context() *DrawingContext { return c.context }

// Pending returns the number of queued requests.
func (c *Canvas) Pending() int { return len(c.requests) }

// Render stable-sorts the pending requests by layer and dispatches
// each one passing the filter to the painter's entry point for its
// kind. Requests failing the filter are skipped, not removed; Render
// mutates no request data and does not clear the queue, so it can run
// once per filter pass. Clearing is a separate explicit step.
func (c *Canvas) Render(p Painter, filter Filter) {
	sort.SliceStable(c.requests, func(i, j int) bool {
		return c.requests[i].base().Layer < c.requests[j].base().Layer
	})

	Logger().Debug("canvas render", "requests", len(c.requests), "filter", filter.String())

	for _, req := range c.requests {
		if !filter.admits(req.base().Layer) {
			continue
		}

		switch r := req.(type) {
		case *TextureRequest:
			p.DrawTexture(r)
		case *GradientRequest:
			p.DrawGradient(r)
		case *FillRectRequest:
			p.DrawFilledRect(r)
		case *InverseEllipseRequest:
			p.DrawInverseEllipse(r)
		case *LineRequest:
			p.DrawLine(r)
		case *TriangleRequest:
			p.DrawTriangle(r)
		case *GetPixelRequest:
			p.GetPixel(r)
		}
	}
}

// Clear releases every pending request and empties the queue. It does
// not reset the arena; the context does that after clearing all its
// canvases. Call exactly once per frame, after rendering.
func (c *Canvas) Clear() {
	for _, req := range c.requests {
		req.release()
	}
	c.requests = c.requests[:0]
}

// DrawSurface draws a surface at a position with default styling.
func (c *Canvas) DrawSurface(surface *Surface, pos Vector, layer int) {
	c.DrawSurfaceStyled(surface, pos, 0, DefaultPaintStyle(), layer)
}

// DrawSurfaceStyled draws a surface at a position, rotated by angle
// degrees and modulated by style. The draw is silently dropped when
// the destination lies entirely outside the context's clip rectangle;
// the test runs in untranslated space, before the translation is
// applied.
func (c *Canvas) DrawSurfaceStyled(surface *Surface, pos Vector, angle float32, style PaintStyle, layer int) {
	if surface == nil {
		panic("drawq: DrawSurfaceStyled called with nil surface")
	}

	clip := c.context.ClipRect()
	w := float32(surface.Width())
	h := float32(surface.Height())

	// discard clipped surface
	if pos.X > clip.Right() ||
		pos.Y > clip.Bottom() ||
		pos.X+w < clip.Left() ||
		pos.Y+h < clip.Top() {
		return
	}

	t := c.context.Transform()

	req := c.arena.AllocTexture()
	req.Layer = layer
	req.Flip = t.Flip ^ surface.Flip()
	req.Alpha = t.Alpha * style.Alpha
	req.Angle = angle
	req.Blend = style.Blend
	req.Texture = surface.Texture()
	req.SrcRects = append(req.SrcRects, surface.Region())
	req.DstRects = append(req.DstRects, RectFromSize(c.applyTranslate(pos), Size{W: w, H: h}))
	req.Color = style.Color

	c.requests = append(c.requests, req)
}

// DrawSurfacePart draws the src region of a surface's texture into the
// dst rectangle. No culling is applied; part draws are assumed
// on-screen by the caller.
func (c *Canvas) DrawSurfacePart(surface *Surface, src, dst Rect, layer int, style PaintStyle) {
	if surface == nil {
		panic("drawq: DrawSurfacePart called with nil surface")
	}

	t := c.context.Transform()

	req := c.arena.AllocTexture()
	req.Layer = layer
	req.Flip = t.Flip ^ surface.Flip()
	req.Alpha = t.Alpha * style.Alpha
	req.Blend = style.Blend
	req.Texture = surface.Texture()
	req.SrcRects = append(req.SrcRects, src)
	req.DstRects = append(req.DstRects, RectFromSize(c.applyTranslate(dst.P1), dst.Size()))
	req.Color = style.Color

	c.requests = append(c.requests, req)
}

// DrawSurfaceScaled draws the whole surface scaled into dst.
func (c *Canvas) DrawSurfaceScaled(surface *Surface, dst Rect, layer int, style PaintStyle) {
	if surface == nil {
		panic("drawq: DrawSurfaceScaled called with nil surface")
	}
	c.DrawSurfacePart(surface, surface.Region(), dst, layer, style)
}

// DrawSurfaceBatch draws many regions of one texture in a single
// request. srcRects and dstRects are parallel and must have equal
// length; each destination rectangle is translated independently.
// Batching amortizes one request and one painter call over many quads.
func (c *Canvas) DrawSurfaceBatch(surface *Surface, srcRects, dstRects []Rect, color RGBA, layer int) {
	if surface == nil {
		panic("drawq: DrawSurfaceBatch called with nil surface")
	}
	if len(srcRects) != len(dstRects) {
		panic("drawq: DrawSurfaceBatch src/dst length mismatch")
	}

	t := c.context.Transform()

	req := c.arena.AllocTexture()
	req.Layer = layer
	req.Flip = t.Flip ^ surface.Flip()
	req.Alpha = t.Alpha
	req.Blend = DefaultBlend()
	req.Texture = surface.Texture()
	req.Color = color
	req.SrcRects = append(req.SrcRects, srcRects...)
	req.DstRects = append(req.DstRects, dstRects...)
	for i, dst := range req.DstRects {
		req.DstRects[i] = RectFromSize(c.applyTranslate(dst.P1), dst.Size())
	}

	c.requests = append(c.requests, req)
}

// DrawText delegates to the font, which decomposes the string into
// lower-level draw calls against this canvas.
func (c *Canvas) DrawText(font Font, text string, pos Vector, alignment Alignment, layer int, color RGBA) {
	if font == nil {
		panic("drawq: DrawText called with nil font")
	}
	font.Draw(c, text, pos, alignment, layer, color)
}

// DrawCenterText draws text centered on the context's logical width.
func (c *Canvas) DrawCenterText(font Font, text string, pos Vector, layer int, color RGBA) {
	center := Vec(pos.X+float32(c.context.Width())/2, pos.Y)
	c.DrawText(font, text, center, AlignCenter, layer, color)
}

// DrawGradient fills region with a gradient from top to bottom along
// direction.
func (c *Canvas) DrawGradient(top, bottom RGBA, layer int, direction GradientDirection, region Rect, blend Blend) {
	t := c.context.Transform()

	req := c.arena.AllocGradient()
	req.Layer = layer
	req.Flip = t.Flip
	req.Alpha = t.Alpha
	req.Blend = blend
	req.Top = top
	req.Bottom = bottom
	req.Direction = direction
	req.Region = RectFromPoints(c.applyTranslate(region.P1), c.applyTranslate(region.P2))

	c.requests = append(c.requests, req)
}

// DrawFilledRect fills rect with color. The context alpha is
// multiplied into the request color's alpha channel.
func (c *Canvas) DrawFilledRect(rect Rect, color RGBA, layer int) {
	c.DrawRoundedRect(rect, color, 0, layer)
}

// DrawRoundedRect fills rect with color, rounding the corners by
// radius pixels.
func (c *Canvas) DrawRoundedRect(rect Rect, color RGBA, radius float32, layer int) {
	t := c.context.Transform()

	req := c.arena.AllocFillRect()
	req.Layer = layer
	req.Flip = t.Flip
	req.Alpha = t.Alpha
	req.Blend = DefaultBlend()
	req.Pos = c.applyTranslate(rect.P1)
	req.Size = rect.Size()
	req.Color = color
	req.Color.A = color.A * t.Alpha
	req.Radius = radius

	c.requests = append(c.requests, req)
}

// DrawInverseEllipse fills everything except an ellipse centered at
// pos with the given diameters.
func (c *Canvas) DrawInverseEllipse(pos Vector, size Size, color RGBA, layer int) {
	t := c.context.Transform()

	req := c.arena.AllocInverseEllipse()
	req.Layer = layer
	req.Flip = t.Flip
	req.Alpha = t.Alpha
	req.Blend = DefaultBlend()
	req.Pos = c.applyTranslate(pos)
	req.Size = size
	req.Color = color
	req.Color.A = color.A * t.Alpha

	c.requests = append(c.requests, req)
}

// DrawLine draws a line from pos1 to pos2.
func (c *Canvas) DrawLine(pos1, pos2 Vector, color RGBA, layer int) {
	t := c.context.Transform()

	req := c.arena.AllocLine()
	req.Layer = layer
	req.Flip = t.Flip
	req.Alpha = t.Alpha
	req.Blend = DefaultBlend()
	req.Pos = c.applyTranslate(pos1)
	req.DestPos = c.applyTranslate(pos2)
	req.Color = color
	req.Color.A = color.A * t.Alpha

	c.requests = append(c.requests, req)
}

// DrawTriangle fills the triangle spanned by pos1, pos2, pos3.
func (c *Canvas) DrawTriangle(pos1, pos2, pos3 Vector, color RGBA, layer int) {
	t := c.context.Transform()

	req := c.arena.AllocTriangle()
	req.Layer = layer
	req.Flip = t.Flip
	req.Alpha = t.Alpha
	req.Blend = DefaultBlend()
	req.Pos1 = c.applyTranslate(pos1)
	req.Pos2 = c.applyTranslate(pos2)
	req.Pos3 = c.applyTranslate(pos3)
	req.Color = color
	req.Color.A = color.A * t.Alpha

	c.requests = append(c.requests, req)
}

// GetPixel requests the composited color at pos. If the translated
// position is outside the viewport the cell resolves to black
// immediately and nothing is enqueued; otherwise a readback request is
// queued and the painter resolves the cell during render dispatch. The
// caller must not read the cell before Render has returned.
func (c *Canvas) GetPixel(pos Vector, cell *ColorCell) {
	if cell == nil {
		panic("drawq: GetPixel called with nil cell")
	}

	p := c.applyTranslate(pos)

	// There is no light offscreen.
	viewport := c.context.Viewport()
	if p.X >= viewport.Width() || p.Y >= viewport.Height() || p.X < 0 || p.Y < 0 {
		cell.Resolve(Black)
		return
	}

	req := c.arena.AllocGetPixel()
	req.Layer = LayerGetPixel
	req.Alpha = 1
	req.Pos = p
	req.Cell = cell

	c.requests = append(c.requests, req)
}

// applyTranslate maps a position from pre-translate space to final
// screen space: the truncated translation is subtracted and the
// viewport origin added.
func (c *Canvas) applyTranslate(pos Vector) Vector {
	translation := c.context.Translation().Trunc()
	return pos.Sub(translation).Add(c.context.Viewport().P1)
}
