package drawq

import "github.com/chewxy/math32"

// Vector is a point or offset in screen space.
type Vector struct {
	X, Y float32
}

// Vec creates a Vector from its components.
func Vec(x, y float32) Vector {
	return Vector{X: x, Y: y}
}

// Add returns the component-wise sum v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference v - o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

// Trunc returns v with both components truncated toward zero.
// Translations are truncated to whole pixels before being applied so
// that sprites never land on fractional coordinates.
func (v Vector) Trunc() Vector {
	return Vector{X: math32.Trunc(v.X), Y: math32.Trunc(v.Y)}
}

// Size is a width/height pair.
type Size struct {
	W, H float32
}

// Rect is an axis-aligned rectangle spanning P1 (top-left) to P2
// (bottom-right).
type Rect struct {
	P1, P2 Vector
}

// NewRect creates a Rect from its top-left corner and dimensions.
func NewRect(x, y, w, h float32) Rect {
	return Rect{P1: Vector{X: x, Y: y}, P2: Vector{X: x + w, Y: y + h}}
}

// RectFromPoints creates a Rect spanning two corner points.
func RectFromPoints(p1, p2 Vector) Rect {
	return Rect{P1: p1, P2: p2}
}

// RectFromSize creates a Rect from a top-left corner and a Size.
func RectFromSize(pos Vector, size Size) Rect {
	return NewRect(pos.X, pos.Y, size.W, size.H)
}

// Left returns the x coordinate of the left edge.
func (r Rect) Left() float32 { return r.P1.X }

// Top returns the y coordinate of the top edge.
func (r Rect) Top() float32 { return r.P1.Y }

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float32 { return r.P2.X }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float32 { return r.P2.Y }

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float32 { return r.P2.X - r.P1.X }

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float32 { return r.P2.Y - r.P1.Y }

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{W: r.Width(), H: r.Height()}
}

// Contains reports whether p lies inside the rectangle.
// Points on the left/top edges are inside, right/bottom edges outside.
func (r Rect) Contains(p Vector) bool {
	return p.X >= r.P1.X && p.X < r.P2.X && p.Y >= r.P1.Y && p.Y < r.P2.Y
}

// Moved returns the rectangle translated by offset.
func (r Rect) Moved(offset Vector) Rect {
	return Rect{P1: r.P1.Add(offset), P2: r.P2.Add(offset)}
}
