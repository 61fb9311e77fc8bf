package drawq

// Alignment positions text relative to its anchor point.
type Alignment uint8

const (
	// AlignLeft anchors text at its left edge.
	AlignLeft Alignment = iota
	// AlignCenter anchors text at its horizontal center.
	AlignCenter
	// AlignRight anchors text at its right edge.
	AlignRight
)

// String returns a human-readable name for the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Font decomposes text into lower-level draw calls against a canvas.
// There is no text request kind: implementations issue surface draws,
// typically a single batched draw per string. Implementations live in
// the text subpackage.
type Font interface {
	// Draw renders text anchored at pos onto the canvas.
	Draw(canvas *Canvas, text string, pos Vector, alignment Alignment, layer int, color RGBA)
}
