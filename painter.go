package drawq

// Painter is the backend contract: one draw entry point per request
// kind. The canvas dispatches finalized requests to these methods in
// sorted layer order; all geometry is already in screen space and
// needs no further transform.
//
// Painters are created via the registry using NewPainter(name, w, h)
// and registered via Register in their package's init function.
type Painter interface {
	// DrawTexture draws the request's src/dst quad pairs.
	DrawTexture(req *TextureRequest)

	// DrawGradient fills the request's region with its gradient.
	DrawGradient(req *GradientRequest)

	// DrawFilledRect fills the request's rectangle.
	DrawFilledRect(req *FillRectRequest)

	// DrawInverseEllipse fills everything outside the request's ellipse.
	DrawInverseEllipse(req *InverseEllipseRequest)

	// DrawLine draws the request's line.
	DrawLine(req *LineRequest)

	// DrawTriangle fills the request's triangle.
	DrawTriangle(req *TriangleRequest)

	// GetPixel samples the composited color at the request's position
	// and must resolve the request's cell with it.
	GetPixel(req *GetPixelRequest)
}
