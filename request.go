package drawq

// Kind identifies the type of a drawing request.
type Kind uint8

const (
	// KindTexture draws one or more textured quads.
	KindTexture Kind = iota
	// KindGradient fills a region with a two-color gradient.
	KindGradient
	// KindFillRect fills an axis-aligned, optionally rounded rectangle.
	KindFillRect
	// KindInverseEllipse fills everything outside an ellipse.
	KindInverseEllipse
	// KindLine draws a one-pixel line.
	KindLine
	// KindTriangle fills a triangle.
	KindTriangle
	// KindGetPixel reads back the composited color at a position.
	KindGetPixel
)

// kindNames maps Kind values to their string representation.
var kindNames = [...]string{
	KindTexture:        "Texture",
	KindGradient:       "Gradient",
	KindFillRect:       "FillRect",
	KindInverseEllipse: "InverseEllipse",
	KindLine:           "Line",
	KindTriangle:       "Triangle",
	KindGetPixel:       "GetPixel",
}

// String returns the string representation of a Kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Request is implemented by all drawing request types. The set of
// kinds is closed; requests are immutable once constructed and live
// for exactly one frame.
type Request interface {
	// Kind returns the request's kind.
	Kind() Kind

	base() *Base
	release()
}

// Base holds the fields shared by every drawing request. All spatial
// payload fields are in final screen space; the render pass applies no
// further transform.
type Base struct {
	// Layer is the compositing order key, fixed at construction.
	Layer int
	// Flip mirrors texture sampling.
	Flip Flip
	// Alpha is the opacity multiplier in [0, 1].
	Alpha float32
	// Blend selects the source/destination blend factors.
	Blend Blend
}

func (b *Base) base() *Base { return b }
func (b *Base) release()    {}

// GradientDirection selects the axis a gradient runs along.
type GradientDirection uint8

const (
	// GradientVertical runs top to bottom.
	GradientVertical GradientDirection = iota
	// GradientHorizontal runs left to right.
	GradientHorizontal
)

// String returns a human-readable name for the direction.
func (d GradientDirection) String() string {
	switch d {
	case GradientVertical:
		return "Vertical"
	case GradientHorizontal:
		return "Horizontal"
	default:
		return "Unknown"
	}
}

// TextureRequest draws one or more regions of a texture. SrcRects and
// DstRects are parallel: SrcRects[i] in texture coordinates maps onto
// DstRects[i] in screen coordinates. Batching many quads into a single
// request is the main draw-call reduction in this package.
type TextureRequest struct {
	Base
	// Texture is the backend-native texture handle.
	Texture Texture
	// SrcRects are source regions in texture coordinates.
	SrcRects []Rect
	// DstRects are destination regions in screen coordinates.
	DstRects []Rect
	// Color modulates the sampled texels.
	Color RGBA
	// Angle rotates each quad around its center, in degrees.
	Angle float32
}

// Kind implements Request.
func (*TextureRequest) Kind() Kind { return KindTexture }

func (r *TextureRequest) release() {
	r.Texture = nil
	r.SrcRects = nil
	r.DstRects = nil
}

// GradientRequest fills Region with a gradient from Top to Bottom.
type GradientRequest struct {
	Base
	// Top is the color at the start edge.
	Top RGBA
	// Bottom is the color at the end edge.
	Bottom RGBA
	// Direction selects the gradient axis.
	Direction GradientDirection
	// Region is the affected screen-space rectangle.
	Region Rect
}

// Kind implements Request.
func (*GradientRequest) Kind() Kind { return KindGradient }

// FillRectRequest fills an axis-aligned rectangle. A non-zero Radius
// rounds the corners.
type FillRectRequest struct {
	Base
	// Pos is the top-left corner in screen space.
	Pos Vector
	// Size is the rectangle's dimensions.
	Size Size
	// Color is the fill color, with the context alpha already
	// multiplied into its alpha channel.
	Color RGBA
	// Radius is the corner radius in pixels, zero for sharp corners.
	Radius float32
}

// Kind implements Request.
func (*FillRectRequest) Kind() Kind { return KindFillRect }

// InverseEllipseRequest fills the whole viewport except an ellipse
// centered at Pos, used for spotlight effects.
type InverseEllipseRequest struct {
	Base
	// Pos is the ellipse center in screen space.
	Pos Vector
	// Size holds the ellipse diameters.
	Size Size
	// Color is the fill color outside the ellipse.
	Color RGBA
}

// Kind implements Request.
func (*InverseEllipseRequest) Kind() Kind { return KindInverseEllipse }

// LineRequest draws a line from Pos to DestPos.
type LineRequest struct {
	Base
	// Pos is the line start in screen space.
	Pos Vector
	// DestPos is the line end in screen space.
	DestPos Vector
	// Color is the line color.
	Color RGBA
}

// Kind implements Request.
func (*LineRequest) Kind() Kind { return KindLine }

// TriangleRequest fills the triangle spanned by Pos1, Pos2, Pos3.
type TriangleRequest struct {
	Base
	Pos1, Pos2, Pos3 Vector
	// Color is the fill color.
	Color RGBA
}

// Kind implements Request.
func (*TriangleRequest) Kind() Kind { return KindTriangle }

// GetPixelRequest asks the painter to sample the composited color at
// Pos and resolve Cell with it during dispatch. The caller must not
// read the cell before the frame's render pass has completed.
type GetPixelRequest struct {
	Base
	// Pos is the sample position in screen space.
	Pos Vector
	// Cell receives the sampled color.
	Cell *ColorCell
}

// Kind implements Request.
func (*GetPixelRequest) Kind() Kind { return KindGetPixel }

func (r *GetPixelRequest) release() {
	r.Cell = nil
}
