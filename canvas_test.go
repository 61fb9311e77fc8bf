package drawq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordPainter captures dispatched requests in call order.
type recordPainter struct {
	calls []Request

	// pixelColor is what GetPixel resolves cells with.
	pixelColor RGBA
}

var _ Painter = (*recordPainter)(nil)

func (p *recordPainter) DrawTexture(req *TextureRequest)               { p.calls = append(p.calls, req) }
func (p *recordPainter) DrawGradient(req *GradientRequest)             { p.calls = append(p.calls, req) }
func (p *recordPainter) DrawFilledRect(req *FillRectRequest)           { p.calls = append(p.calls, req) }
func (p *recordPainter) DrawInverseEllipse(req *InverseEllipseRequest) { p.calls = append(p.calls, req) }
func (p *recordPainter) DrawLine(req *LineRequest)                     { p.calls = append(p.calls, req) }
func (p *recordPainter) DrawTriangle(req *TriangleRequest)             { p.calls = append(p.calls, req) }

func (p *recordPainter) GetPixel(req *GetPixelRequest) {
	p.calls = append(p.calls, req)
	req.Cell.Resolve(p.pixelColor)
}

func (p *recordPainter) kinds() []Kind {
	out := make([]Kind, len(p.calls))
	for i, r := range p.calls {
		out[i] = r.Kind()
	}
	return out
}

// testTexture is a Texture stub with a fixed size.
type testTexture struct {
	w, h int
}

func (t *testTexture) Width() int  { return t.w }
func (t *testTexture) Height() int { return t.h }

func testSurface(w, h int) *Surface {
	return NewSurface(&testTexture{w: w, h: h})
}

func TestRenderDispatchesInLayerOrder(t *testing.T) {
	ctx := NewContext(800, 600)
	canvas := ctx.Color()

	canvas.DrawFilledRect(NewRect(0, 0, 10, 10), White, 10)
	canvas.DrawTriangle(Vec(0, 0), Vec(10, 0), Vec(5, 10), White, 5)
	canvas.DrawLine(Vec(0, 0), Vec(10, 10), White, 10)

	p := &recordPainter{}
	canvas.Render(p, DrawAll)

	require.Equal(t, []Kind{KindTriangle, KindFillRect, KindLine}, p.kinds(),
		"same-layer requests must keep submission order below/above the lower layer")
}

func TestRenderLayersNonDecreasing(t *testing.T) {
	ctx := NewContext(800, 600)
	canvas := ctx.Color()

	for _, layer := range []int{300, -100, 50, 50, 600, 0, -300, 450, 50} {
		canvas.DrawFilledRect(NewRect(0, 0, 1, 1), White, layer)
	}

	p := &recordPainter{}
	canvas.Render(p, DrawAll)

	require.Len(t, p.calls, 9)
	prev := p.calls[0].base().Layer
	for _, r := range p.calls[1:] {
		assert.GreaterOrEqual(t, r.base().Layer, prev)
		prev = r.base().Layer
	}
}

func TestRenderStableWithinLayer(t *testing.T) {
	ctx := NewContext(800, 600)
	canvas := ctx.Color()

	for i := 0; i < 20; i++ {
		canvas.DrawFilledRect(NewRect(float32(i), 0, 1, 1), White, LayerObjects)
	}

	p := &recordPainter{}
	canvas.Render(p, DrawAll)

	require.Len(t, p.calls, 20)
	for i, r := range p.calls {
		rect := r.(*FillRectRequest)
		assert.Equal(t, float32(i), rect.Pos.X, "request %d out of submission order", i)
	}
}

func TestDrawSurfaceFullyClippedIsNoOp(t *testing.T) {
	ctx := NewContext(800, 600)
	canvas := ctx.Color()
	surface := testSurface(32, 32)

	// One position per violated clip edge.
	positions := []Vector{
		{X: 801, Y: 100},  // past right edge
		{X: 100, Y: 601},  // past bottom edge
		{X: -33, Y: 100},  // fully before left edge
		{X: 100, Y: -33},  // fully before top edge
	}
	for _, pos := range positions {
		canvas.DrawSurface(surface, pos, LayerObjects)
	}
	assert.Equal(t, 0, canvas.Pending())

	// Partially visible surfaces are kept.
	canvas.DrawSurface(surface, Vec(-16, -16), LayerObjects)
	assert.Equal(t, 1, canvas.Pending())
}

func TestDrawSurfaceCullingIgnoresTranslation(t *testing.T) {
	// The cull test runs in untranslated space: a huge camera
	// translation must not cull a draw whose untranslated position is
	// inside the clip rectangle.
	ctx := NewContext(800, 600)
	ctx.SetTranslation(Vec(10000, 10000))
	canvas := ctx.Color()

	canvas.DrawSurface(testSurface(32, 32), Vec(100, 100), LayerObjects)
	assert.Equal(t, 1, canvas.Pending())
}

func TestDrawSurfaceAppliesTranslateAndViewport(t *testing.T) {
	ctx := NewContext(800, 600, WithViewport(NewRect(40, 20, 800, 600)))
	ctx.SetTranslation(Vec(10.7, 20.3))
	canvas := ctx.Color()

	canvas.DrawFilledRect(NewRect(100, 50, 8, 8), White, LayerObjects)

	p := &recordPainter{}
	canvas.Render(p, DrawAll)

	require.Len(t, p.calls, 1)
	rect := p.calls[0].(*FillRectRequest)
	// Translation is truncated to whole pixels before being applied.
	assert.Equal(t, Vec(100-10+40, 50-20+20), rect.Pos)
}

func TestDrawSurfaceFlipXOR(t *testing.T) {
	ctx := NewContext(800, 600)
	canvas := ctx.Color()

	tex := &testTexture{w: 16, h: 16}
	flipped := NewSurfaceRegion(tex, NewRect(0, 0, 16, 16), HorizontalFlip)

	ctx.SetFlip(HorizontalFlip)
	canvas.DrawSurface(flipped, Vec(0, 0), LayerObjects)

	ctx.SetFlip(VerticalFlip)
	canvas.DrawSurface(flipped, Vec(0, 0), LayerObjects)

	p := &recordPainter{}
	canvas.Render(p, DrawAll)

	require.Len(t, p.calls, 2)
	assert.Equal(t, NoFlip, p.calls[0].(*TextureRequest).Flip)
	assert.Equal(t, HorizontalFlip|VerticalFlip, p.calls[1].(*TextureRequest).Flip)
}

func TestAlphaComposition(t *testing.T) {
	ctx := NewContext(800, 600)
	ctx.SetAlpha(0.5)
	canvas := ctx.Color()

	canvas.DrawFilledRect(NewRect(0, 0, 10, 10), NewRGBA(1, 0, 0, 0.6), LayerObjects)

	p := &recordPainter{}
	canvas.Render(p, DrawAll)

	require.Len(t, p.calls, 1)
	rect := p.calls[0].(*FillRectRequest)
	assert.InDelta(t, 0.3, rect.Color.A, 1e-6)
	assert.InDelta(t, 0.5, rect.Alpha, 1e-6)
}

func TestDrawSurfaceStyledAlphaMultiplied(t *testing.T) {
	ctx := NewContext(800, 600)
	ctx.SetAlpha(0.5)
	canvas := ctx.Color()

	style := DefaultPaintStyle()
	style.Alpha = 0.4
	canvas.DrawSurfaceStyled(testSurface(16, 16), Vec(0, 0), 0, style, LayerObjects)

	p := &recordPainter{}
	canvas.Render(p, DrawAll)

	require.Len(t, p.calls, 1)
	assert.InDelta(t, 0.2, p.calls[0].(*TextureRequest).Alpha, 1e-6)
}

func TestRenderFilter(t *testing.T) {
	ctx := NewContext(800, 600)
	canvas := ctx.Color()

	canvas.DrawSurface(testSurface(16, 16), Vec(100, 100), LayerHUD)

	p := &recordPainter{}
	canvas.Render(p, DrawAboveLightmap)
	require.Len(t, p.calls, 1, "LayerHUD is above the lightmap")

	p = &recordPainter{}
	canvas.Render(p, DrawBelowLightmap)
	require.Empty(t, p.calls)

	p = &recordPainter{}
	canvas.Render(p, DrawAll)
	require.Len(t, p.calls, 1)
}

func TestRenderFilterSkipsLightmapLayerItself(t *testing.T) {
	ctx := NewContext(800, 600)
	canvas := ctx.Color()
	canvas.DrawFilledRect(NewRect(0, 0, 1, 1), White, LayerLightmap)

	p := &recordPainter{}
	canvas.Render(p, DrawBelowLightmap)
	canvas.Render(p, DrawAboveLightmap)
	assert.Empty(t, p.calls)
}

func TestRenderIsNonDestructive(t *testing.T) {
	ctx := NewContext(800, 600)
	canvas := ctx.Color()
	canvas.DrawFilledRect(NewRect(0, 0, 1, 1), White, 0)

	p := &recordPainter{}
	canvas.Render(p, DrawAll)
	canvas.Render(p, DrawAll)

	assert.Len(t, p.calls, 2, "render must not consume the queue")
	assert.Equal(t, 1, canvas.Pending())
}

func TestClearThenRenderDispatchesNothing(t *testing.T) {
	ctx := NewContext(800, 600)
	canvas := ctx.Color()
	canvas.DrawFilledRect(NewRect(0, 0, 1, 1), White, 0)
	canvas.DrawLine(Vec(0, 0), Vec(1, 1), White, 0)

	canvas.Clear()

	p := &recordPainter{}
	canvas.Render(p, DrawAll)
	assert.Empty(t, p.calls)
	assert.Equal(t, 0, canvas.Pending())
}

func TestGetPixelOffViewportResolvesBlack(t *testing.T) {
	ctx := NewContext(800, 600)
	canvas := ctx.Color()

	for _, pos := range []Vector{{X: 800, Y: 10}, {X: 10, Y: 600}, {X: -1, Y: 10}, {X: 10, Y: -1}} {
		cell := NewColorCell()
		canvas.GetPixel(pos, cell)

		got, ok := cell.Get()
		require.True(t, ok, "off-viewport readback must resolve synchronously")
		assert.Equal(t, Black, got)
	}
	assert.Equal(t, 0, canvas.Pending())
}

func TestGetPixelInBoundsResolvesDuringRender(t *testing.T) {
	ctx := NewContext(800, 600)
	canvas := ctx.Color()

	cell := NewColorCell()
	canvas.GetPixel(Vec(400, 300), cell)

	require.Equal(t, 1, canvas.Pending())
	assert.False(t, cell.Resolved(), "in-bounds readback is deferred")

	p := &recordPainter{pixelColor: RGB(0.25, 0.5, 0.75)}
	canvas.Render(p, DrawAll)

	got, ok := cell.Get()
	require.True(t, ok)
	assert.Equal(t, RGB(0.25, 0.5, 0.75), got)
}

func TestGetPixelSortsAboveDrawing(t *testing.T) {
	ctx := NewContext(800, 600)
	canvas := ctx.Color()

	cell := NewColorCell()
	canvas.GetPixel(Vec(1, 1), cell)
	canvas.DrawFilledRect(NewRect(0, 0, 10, 10), White, LayerGUI)

	p := &recordPainter{}
	canvas.Render(p, DrawAll)

	require.Equal(t, []Kind{KindFillRect, KindGetPixel}, p.kinds())
}

func TestDrawSurfaceBatchTranslatesEachDst(t *testing.T) {
	ctx := NewContext(800, 600)
	ctx.SetTranslation(Vec(10, 20))
	canvas := ctx.Color()

	src := []Rect{NewRect(0, 0, 8, 8), NewRect(8, 0, 8, 8)}
	dst := []Rect{NewRect(100, 100, 8, 8), NewRect(200, 150, 8, 8)}
	canvas.DrawSurfaceBatch(testSurface(16, 8), src, dst, White, LayerTiles)

	p := &recordPainter{}
	canvas.Render(p, DrawAll)

	require.Len(t, p.calls, 1, "a batch is a single request")
	req := p.calls[0].(*TextureRequest)
	require.Len(t, req.DstRects, 2)
	assert.Equal(t, NewRect(90, 80, 8, 8), req.DstRects[0])
	assert.Equal(t, NewRect(190, 130, 8, 8), req.DstRects[1])
	// Source rectangles are texture-space and keep their values.
	assert.Equal(t, src, req.SrcRects)
}

func TestDrawSurfaceBatchDoesNotAliasCallerSlices(t *testing.T) {
	ctx := NewContext(800, 600)
	ctx.SetTranslation(Vec(10, 0))
	canvas := ctx.Color()

	dst := []Rect{NewRect(100, 100, 8, 8)}
	canvas.DrawSurfaceBatch(testSurface(8, 8), []Rect{NewRect(0, 0, 8, 8)}, dst, White, 0)

	assert.Equal(t, NewRect(100, 100, 8, 8), dst[0], "caller slice must not be translated in place")
}

func TestDrawGradientTranslatesBothCorners(t *testing.T) {
	ctx := NewContext(800, 600)
	ctx.SetTranslation(Vec(5, 5))
	canvas := ctx.Color()

	canvas.DrawGradient(White, Black, LayerBackground0, GradientVertical, NewRect(10, 10, 100, 100), DefaultBlend())

	p := &recordPainter{}
	canvas.Render(p, DrawAll)

	req := p.calls[0].(*GradientRequest)
	assert.Equal(t, Vec(5, 5), req.Region.P1)
	assert.Equal(t, Vec(105, 105), req.Region.P2)
}

func TestContractViolationsPanic(t *testing.T) {
	ctx := NewContext(800, 600)
	canvas := ctx.Color()

	assert.Panics(t, func() { canvas.DrawSurface(nil, Vec(0, 0), 0) })
	assert.Panics(t, func() { canvas.DrawSurfacePart(nil, Rect{}, Rect{}, 0, DefaultPaintStyle()) })
	assert.Panics(t, func() { canvas.DrawSurfaceScaled(nil, Rect{}, 0, DefaultPaintStyle()) })
	assert.Panics(t, func() { canvas.DrawSurfaceBatch(nil, nil, nil, White, 0) })
	assert.Panics(t, func() {
		canvas.DrawSurfaceBatch(testSurface(8, 8), make([]Rect, 2), make([]Rect, 1), White, 0)
	})
	assert.Panics(t, func() { canvas.DrawText(nil, "hi", Vec(0, 0), AlignLeft, 0, White) })
	assert.Panics(t, func() { canvas.GetPixel(Vec(0, 0), nil) })
}

// stubFont records the draw call it receives.
type stubFont struct {
	text      string
	pos       Vector
	alignment Alignment
	layer     int
}

func (f *stubFont) Draw(_ *Canvas, text string, pos Vector, alignment Alignment, layer int, _ RGBA) {
	f.text = text
	f.pos = pos
	f.alignment = alignment
	f.layer = layer
}

func TestDrawCenterText(t *testing.T) {
	ctx := NewContext(800, 600)
	canvas := ctx.Color()

	font := &stubFont{}
	canvas.DrawCenterText(font, "title", Vec(10, 40), LayerGUI, White)

	assert.Equal(t, "title", font.text)
	assert.Equal(t, Vec(410, 40), font.pos)
	assert.Equal(t, AlignCenter, font.alignment)
	assert.Equal(t, LayerGUI, font.layer)
}

func TestClearReleasesRequestPayloads(t *testing.T) {
	ctx := NewContext(800, 600)
	canvas := ctx.Color()

	canvas.DrawSurface(testSurface(8, 8), Vec(0, 0), 0)
	cell := NewColorCell()
	canvas.GetPixel(Vec(1, 1), cell)

	tex := canvas.requests[0].(*TextureRequest)
	pix := canvas.requests[1].(*GetPixelRequest)
	canvas.Clear()

	assert.Nil(t, tex.Texture)
	assert.Nil(t, tex.SrcRects)
	assert.Nil(t, tex.DstRects)
	assert.Nil(t, pix.Cell)
}
