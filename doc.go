// Package drawq is a per-frame deferred drawing command buffer for 2D
// games. Game and UI code issue typed drawing requests (sprites,
// gradients, filled shapes, lines, triangles, pixel reads) against a
// Canvas throughout a frame; at frame end the canvas stable-sorts the
// requests by compositing layer and dispatches them to a Painter
// backend in a single batch pass.
//
// The request stream is write-only and deferred, with one exception:
// GetPixel enqueues a readback request whose result the painter writes
// into a caller-held ColorCell during dispatch.
//
// # Frame lifecycle
//
//	ctx := drawq.NewContext(800, 600)
//	canvas := ctx.Color()
//
//	// during the frame
//	canvas.DrawSurface(sprite, drawq.Vec(100, 50), drawq.LayerObjects)
//	canvas.DrawFilledRect(drawq.NewRect(0, 0, 800, 40), hudColor, drawq.LayerHUD)
//
//	// at frame end
//	canvas.Render(painter, drawq.DrawAll)
//	ctx.Clear()
//
// Requests are allocated from a frame-scoped arena owned by the
// DrawingContext; ctx.Clear releases every pending request and recycles
// the arena storage for the next frame. All drawing, rendering, and
// clearing happens on one thread in strict call order.
//
// Painter backends register by name, following the database/sql driver
// pattern:
//
//	import _ "github.com/gogpu/drawq/backends/raster"
//
//	painter, err := drawq.NewPainter("raster", 800, 600)
package drawq
