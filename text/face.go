package text

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/drawq"
)

// FaceFont draws text through a golang.org/x/image/font.Face. Each
// distinct string is rasterized once into a white-on-transparent
// surface, cached, and drawn as one texture request tinted by the
// requested color.
type FaceFont struct {
	face  font.Face
	cache map[string]*drawq.Surface
}

var _ drawq.Font = (*FaceFont)(nil)

// NewFaceFont creates a font over a face. The face must outlive the
// font; faces are not safe for concurrent use and neither is FaceFont.
func NewFaceFont(face font.Face) *FaceFont {
	if face == nil {
		panic("drawq/text: NewFaceFont called with nil face")
	}
	return &FaceFont{
		face:  face,
		cache: make(map[string]*drawq.Surface),
	}
}

// TextWidth returns the advance width of s in pixels.
func (f *FaceFont) TextWidth(s string) float32 {
	return float32(font.MeasureString(f.face, s).Ceil())
}

// Draw implements drawq.Font. pos is the top-left corner of the text
// box; multi-line strings are not supported by the face path.
func (f *FaceFont) Draw(canvas *drawq.Canvas, text string, pos drawq.Vector, alignment drawq.Alignment, layer int, col drawq.RGBA) {
	if text == "" {
		return
	}

	surf := f.render(text)
	x := alignStart(pos.X, float32(surf.Width()), alignment)

	style := drawq.DefaultPaintStyle()
	style.Color = col
	canvas.DrawSurfaceStyled(surf, drawq.Vec(x, pos.Y), 0, style, layer)
}

// render rasterizes a string into a cached surface. Glyphs are drawn
// white so the request color can tint them at dispatch time.
func (f *FaceFont) render(text string) *drawq.Surface {
	if surf, ok := f.cache[text]; ok {
		return surf
	}

	metrics := f.face.Metrics()
	ascent := metrics.Ascent.Ceil()
	height := ascent + metrics.Descent.Ceil()
	width := font.MeasureString(f.face, text).Ceil()
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	drawer := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: f.face,
		Dot:  fixed.P(0, ascent),
	}
	drawer.DrawString(text)

	surf := drawq.SurfaceFromImage(img)
	f.cache[text] = surf
	return surf
}
