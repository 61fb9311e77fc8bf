// Package raster provides a CPU painter backend for drawq.
// It renders dispatched requests into an *image.RGBA.
//
// The raster backend serves multiple purposes:
//   - Architecture validation for the request pipeline
//   - Reference implementation for other painters
//   - Headless rendering and pixel-accurate comparison testing
//
// # Limitations
//
// Texture rotation (TextureRequest.Angle) is not implemented; rotated
// quads are drawn axis-aligned and a warning is logged once. Blend
// factor pairs other than the standard alpha, additive, modulate, and
// copy modes fall back to alpha blending.
//
// # Example
//
//	// Import to register the painter
//	import _ "github.com/gogpu/drawq/backends/raster"
//
//	painter, _ := drawq.NewPainter("raster", 800, 600)
//
//	// Or create directly
//	p := raster.New(800, 600)
//
//	canvas.Render(p, drawq.DrawAll)
//	png.Encode(f, p.Image())
package raster

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/chewxy/math32"
	"golang.org/x/image/draw"

	"github.com/gogpu/drawq"
)

func init() {
	drawq.Register("raster", func(width, height int) (drawq.Painter, error) {
		return New(width, height), nil
	})
}

// Painter renders drawing requests into a CPU pixel buffer.
// It implements drawq.Painter.
type Painter struct {
	img    *image.RGBA
	width  int
	height int

	warnedAngle bool
	warnedBlend bool
}

var _ drawq.Painter = (*Painter)(nil)

// New creates a raster painter with a target of the given dimensions.
func New(width, height int) *Painter {
	return &Painter{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		width:  width,
		height: height,
	}
}

// Image returns the target pixel buffer.
func (p *Painter) Image() *image.RGBA { return p.img }

// Fill overwrites the whole target with a color, typically called at
// the start of a frame.
func (p *Painter) Fill(c drawq.RGBA) {
	draw.Draw(p.img, p.img.Bounds(), image.NewUniform(c.Color()), image.Point{}, draw.Src)
}

// EncodePNG writes the target as PNG.
func (p *Painter) EncodePNG(w io.Writer) error {
	return png.Encode(w, p.img)
}

// DrawTexture implements drawq.Painter.
func (p *Painter) DrawTexture(req *drawq.TextureRequest) {
	tex, ok := req.Texture.(*drawq.ImageTexture)
	if !ok {
		drawq.Logger().Warn("raster: texture is not an ImageTexture, skipping draw")
		return
	}
	if req.Angle != 0 && !p.warnedAngle {
		p.warnedAngle = true
		drawq.Logger().Warn("raster: texture rotation not implemented, drawing axis-aligned")
	}

	for i := range req.DstRects {
		p.blit(tex.RGBA(), req.SrcRects[i], req.DstRects[i], req)
	}
}

// blit maps one src region onto one dst region with flip, modulation,
// and blending.
func (p *Painter) blit(src *image.RGBA, srcRect, dstRect drawq.Rect, req *drawq.TextureRequest) {
	plain := req.Color == drawq.White && req.Alpha >= 1 && req.Flip == drawq.NoFlip &&
		(req.Blend == drawq.DefaultBlend() || req.Blend == drawq.Blend{})
	sr := image.Rect(int(srcRect.Left()), int(srcRect.Top()), int(srcRect.Right()), int(srcRect.Bottom()))
	dr := image.Rect(int(dstRect.Left()), int(dstRect.Top()), int(dstRect.Right()), int(dstRect.Bottom()))

	if plain {
		if dr.Dx() == sr.Dx() && dr.Dy() == sr.Dy() {
			draw.NearestNeighbor.Scale(p.img, dr, src, sr, draw.Over, nil)
		} else {
			draw.ApproxBiLinear.Scale(p.img, dr, src, sr, draw.Over, nil)
		}
		return
	}

	// Modulated path: nearest sampling with flip applied via source
	// indexing.
	sw, sh := sr.Dx(), sr.Dy()
	dw, dh := dr.Dx(), dr.Dy()
	if sw <= 0 || sh <= 0 || dw <= 0 || dh <= 0 {
		return
	}
	for dy := 0; dy < dh; dy++ {
		sy := dy * sh / dh
		if req.Flip&drawq.VerticalFlip != 0 {
			sy = sh - 1 - sy
		}
		for dx := 0; dx < dw; dx++ {
			sx := dx * sw / dw
			if req.Flip&drawq.HorizontalFlip != 0 {
				sx = sw - 1 - sx
			}
			texel := drawq.FromColor(src.RGBAAt(sr.Min.X+sx, sr.Min.Y+sy))
			out := texel.Mul(req.Color)
			out.A *= req.Alpha
			p.blendPixel(dr.Min.X+dx, dr.Min.Y+dy, out, req.Blend)
		}
	}
}

// DrawGradient implements drawq.Painter.
func (p *Painter) DrawGradient(req *drawq.GradientRequest) {
	x1, y1 := int(req.Region.Left()), int(req.Region.Top())
	x2, y2 := int(req.Region.Right()), int(req.Region.Bottom())
	if x2 <= x1 || y2 <= y1 {
		return
	}

	for y := y1; y < y2; y++ {
		for x := x1; x < x2; x++ {
			var t float32
			if req.Direction == drawq.GradientHorizontal {
				t = span(x, x1, x2)
			} else {
				t = span(y, y1, y2)
			}
			c := lerpColor(req.Top, req.Bottom, t)
			c.A *= req.Alpha
			p.blendPixel(x, y, c, req.Blend)
		}
	}
}

// span maps v in [lo, hi) to [0, 1].
func span(v, lo, hi int) float32 {
	if hi-lo <= 1 {
		return 0
	}
	return float32(v-lo) / float32(hi-lo-1)
}

func lerpColor(a, b drawq.RGBA, t float32) drawq.RGBA {
	return drawq.RGBA{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}

// DrawFilledRect implements drawq.Painter.
func (p *Painter) DrawFilledRect(req *drawq.FillRectRequest) {
	x1, y1 := int(req.Pos.X), int(req.Pos.Y)
	x2, y2 := int(req.Pos.X+req.Size.W), int(req.Pos.Y+req.Size.H)
	radius := math32.Min(req.Radius, math32.Min(req.Size.W, req.Size.H)/2)

	for y := y1; y < y2; y++ {
		for x := x1; x < x2; x++ {
			if radius > 0 && outsideRoundedCorner(x, y, x1, y1, x2, y2, radius) {
				continue
			}
			p.blendPixel(x, y, req.Color, req.Blend)
		}
	}
}

// outsideRoundedCorner reports whether the pixel falls in a clipped
// corner of the rounded rectangle.
func outsideRoundedCorner(x, y, x1, y1, x2, y2 int, radius float32) bool {
	fx, fy := float32(x)+0.5, float32(y)+0.5
	cx := math32.Max(float32(x1)+radius, math32.Min(fx, float32(x2)-radius))
	cy := math32.Max(float32(y1)+radius, math32.Min(fy, float32(y2)-radius))
	dx, dy := fx-cx, fy-cy
	return dx*dx+dy*dy > radius*radius
}

// DrawInverseEllipse implements drawq.Painter.
func (p *Painter) DrawInverseEllipse(req *drawq.InverseEllipseRequest) {
	rx := req.Size.W / 2
	ry := req.Size.H / 2
	if rx <= 0 || ry <= 0 {
		return
	}

	for y := 0; y < p.height; y++ {
		dy := (float32(y) + 0.5 - req.Pos.Y) / ry
		for x := 0; x < p.width; x++ {
			dx := (float32(x) + 0.5 - req.Pos.X) / rx
			if dx*dx+dy*dy > 1 {
				p.blendPixel(x, y, req.Color, req.Blend)
			}
		}
	}
}

// DrawLine implements drawq.Painter.
func (p *Painter) DrawLine(req *drawq.LineRequest) {
	x1, y1 := int(req.Pos.X), int(req.Pos.Y)
	x2, y2 := int(req.DestPos.X), int(req.DestPos.Y)

	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy

	for {
		p.blendPixel(x1, y1, req.Color, req.Blend)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x1 += sx
		}
		if e2 <= dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// DrawTriangle implements drawq.Painter.
func (p *Painter) DrawTriangle(req *drawq.TriangleRequest) {
	minX := int(math32.Floor(math32.Min(req.Pos1.X, math32.Min(req.Pos2.X, req.Pos3.X))))
	maxX := int(math32.Ceil(math32.Max(req.Pos1.X, math32.Max(req.Pos2.X, req.Pos3.X))))
	minY := int(math32.Floor(math32.Min(req.Pos1.Y, math32.Min(req.Pos2.Y, req.Pos3.Y))))
	maxY := int(math32.Ceil(math32.Max(req.Pos1.Y, math32.Max(req.Pos2.Y, req.Pos3.Y))))

	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			pt := drawq.Vec(float32(x)+0.5, float32(y)+0.5)
			if insideTriangle(pt, req.Pos1, req.Pos2, req.Pos3) {
				p.blendPixel(x, y, req.Color, req.Blend)
			}
		}
	}
}

// insideTriangle tests containment with edge functions, accepting both
// winding orders.
func insideTriangle(pt, a, b, c drawq.Vector) bool {
	d1 := edge(pt, a, b)
	d2 := edge(pt, b, c)
	d3 := edge(pt, c, a)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func edge(pt, a, b drawq.Vector) float32 {
	return (pt.X-b.X)*(a.Y-b.Y) - (a.X-b.X)*(pt.Y-b.Y)
}

// GetPixel implements drawq.Painter. It samples the composited target
// and resolves the request's cell.
func (p *Painter) GetPixel(req *drawq.GetPixelRequest) {
	x, y := int(req.Pos.X), int(req.Pos.Y)
	if x < 0 || y < 0 || x >= p.width || y >= p.height {
		req.Cell.Resolve(drawq.Black)
		return
	}
	c := p.img.RGBAAt(x, y)
	req.Cell.Resolve(drawq.RGB(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255))
}

// blendPixel composites a color onto one target pixel.
func (p *Painter) blendPixel(x, y int, c drawq.RGBA, blend drawq.Blend) {
	if x < 0 || y < 0 || x >= p.width || y >= p.height {
		return
	}

	dst := p.img.RGBAAt(x, y)
	dr := float32(dst.R) / 255
	dg := float32(dst.G) / 255
	db := float32(dst.B) / 255
	da := float32(dst.A) / 255

	var or, og, ob, oa float32
	switch blend {
	case drawq.BlendNone:
		or, og, ob, oa = c.R, c.G, c.B, c.A
	case drawq.BlendAdd:
		or = c.R*c.A + dr
		og = c.G*c.A + dg
		ob = c.B*c.A + db
		oa = da
	case drawq.BlendMod:
		or = c.R * dr
		og = c.G * dg
		ob = c.B * db
		oa = da
	default:
		// A zero Blend and the standard pair both mean alpha
		// blending; anything else falls back to it with a warning.
		if blend != drawq.DefaultBlend() && blend != (drawq.Blend{}) && !p.warnedBlend {
			p.warnedBlend = true
			drawq.Logger().Warn("raster: unsupported blend factors, using alpha blending",
				"src", blend.Src.String(), "dst", blend.Dst.String())
		}
		or = c.R*c.A + dr*(1-c.A)
		og = c.G*c.A + dg*(1-c.A)
		ob = c.B*c.A + db*(1-c.A)
		oa = c.A + da*(1-c.A)
	}

	p.img.SetRGBA(x, y, color.RGBA{
		R: clampByte(or),
		G: clampByte(og),
		B: clampByte(ob),
		A: clampByte(oa),
	})
}

func clampByte(v float32) uint8 {
	return uint8(math32.Max(0, math32.Min(255, math32.Round(v*255))))
}
