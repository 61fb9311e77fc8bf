package drawq

import (
	"image"
	"image/draw"
)

// Texture is the backend-native handle of an uploaded image. The
// canvas only queries its pixel size; painters assert to their own
// concrete texture type during dispatch.
type Texture interface {
	// Width returns the texture width in pixels.
	Width() int
	// Height returns the texture height in pixels.
	Height() int
}

// ImageTexture is a CPU-resident texture backed by an *image.RGBA.
// It is the texture type understood by software painters.
type ImageTexture struct {
	rgba *image.RGBA
}

// NewImageTexture creates a texture from any image, copying the pixels
// into RGBA form.
func NewImageTexture(img image.Image) *ImageTexture {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return &ImageTexture{rgba: rgba}
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return &ImageTexture{rgba: rgba}
}

// Width returns the texture width in pixels.
func (t *ImageTexture) Width() int { return t.rgba.Bounds().Dx() }

// Height returns the texture height in pixels.
func (t *ImageTexture) Height() int { return t.rgba.Bounds().Dy() }

// RGBA returns the backing pixel buffer. Painters read it; callers
// must not mutate it while requests referencing the texture are
// pending.
func (t *ImageTexture) RGBA() *image.RGBA { return t.rgba }

// Surface is a drawable view of a texture: a source region plus an
// intrinsic flip. Surfaces are cheap values; many surfaces can share
// one texture (sprite sheets).
type Surface struct {
	texture Texture
	region  Rect
	flip    Flip
}

// NewSurface creates a surface covering the whole texture.
func NewSurface(tex Texture) *Surface {
	if tex == nil {
		panic("drawq: NewSurface called with nil texture")
	}
	return &Surface{
		texture: tex,
		region:  NewRect(0, 0, float32(tex.Width()), float32(tex.Height())),
	}
}

// NewSurfaceRegion creates a surface covering a sub-region of the
// texture, drawn with the given intrinsic flip.
func NewSurfaceRegion(tex Texture, region Rect, flip Flip) *Surface {
	if tex == nil {
		panic("drawq: NewSurfaceRegion called with nil texture")
	}
	return &Surface{texture: tex, region: region, flip: flip}
}

// SurfaceFromImage uploads an image as an ImageTexture and returns a
// surface covering it.
func SurfaceFromImage(img image.Image) *Surface {
	return NewSurface(NewImageTexture(img))
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return int(s.region.Width()) }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return int(s.region.Height()) }

// Region returns the source region in texture coordinates.
func (s *Surface) Region() Rect { return s.region }

// Flip returns the surface's intrinsic flip.
func (s *Surface) Flip() Flip { return s.flip }

// Texture returns the underlying texture handle.
func (s *Surface) Texture() Texture { return s.texture }

// WithFlip returns a copy of the surface with the given intrinsic flip.
func (s *Surface) WithFlip(f Flip) *Surface {
	out := *s
	out.flip = f
	return &out
}
