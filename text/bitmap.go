// Package text provides drawq.Font implementations. Fonts decompose
// strings into surface draws against a canvas; there is no dedicated
// text request kind.
package text

import (
	"github.com/gogpu/drawq"
)

// BitmapFont draws text from a fixed-cell glyph sheet: a surface laid
// out as a grid of equally sized glyphs in rune order starting at
// First. A whole string becomes a single batched texture request.
type BitmapFont struct {
	surface        *drawq.Surface
	glyphW, glyphH int
	columns        int
	first          rune
	count          int
}

var _ drawq.Font = (*BitmapFont)(nil)

// NewBitmapFont creates a font over a glyph sheet. Glyphs are read
// left to right, top to bottom; the first cell holds the rune first.
func NewBitmapFont(surface *drawq.Surface, glyphW, glyphH int, first rune) *BitmapFont {
	if surface == nil {
		panic("drawq/text: NewBitmapFont called with nil surface")
	}
	if glyphW <= 0 || glyphH <= 0 {
		panic("drawq/text: NewBitmapFont called with non-positive glyph size")
	}
	columns := surface.Width() / glyphW
	rows := surface.Height() / glyphH
	return &BitmapFont{
		surface: surface,
		glyphW:  glyphW,
		glyphH:  glyphH,
		columns: columns,
		first:   first,
		count:   columns * rows,
	}
}

// GlyphHeight returns the line height in pixels.
func (f *BitmapFont) GlyphHeight() int { return f.glyphH }

// TextWidth returns the width of the widest line of s in pixels.
func (f *BitmapFont) TextWidth(s string) float32 {
	var width, line int
	for _, r := range s {
		if r == '\n' {
			line = 0
			continue
		}
		line++
		if line > width {
			width = line
		}
	}
	return float32(width * f.glyphW)
}

// Draw implements drawq.Font. Lines are separated by '\n'; runes
// without a glyph advance the pen without drawing.
func (f *BitmapFont) Draw(canvas *drawq.Canvas, text string, pos drawq.Vector, alignment drawq.Alignment, layer int, color drawq.RGBA) {
	lines := splitLines(text)

	var srcRects, dstRects []drawq.Rect
	region := f.surface.Region()
	y := pos.Y
	for _, line := range lines {
		x := alignStart(pos.X, f.TextWidth(line), alignment)
		for _, r := range line {
			idx := int(r - f.first)
			if r >= f.first && idx < f.count {
				col := idx % f.columns
				row := idx / f.columns
				srcRects = append(srcRects, drawq.NewRect(
					region.Left()+float32(col*f.glyphW),
					region.Top()+float32(row*f.glyphH),
					float32(f.glyphW), float32(f.glyphH)))
				dstRects = append(dstRects, drawq.NewRect(x, y, float32(f.glyphW), float32(f.glyphH)))
			}
			x += float32(f.glyphW)
		}
		y += float32(f.glyphH)
	}

	if len(srcRects) == 0 {
		return
	}
	canvas.DrawSurfaceBatch(f.surface, srcRects, dstRects, color, layer)
}

// alignStart returns the left edge of a line of the given width
// anchored at x.
func alignStart(x, width float32, alignment drawq.Alignment) float32 {
	switch alignment {
	case drawq.AlignCenter:
		return x - width/2
	case drawq.AlignRight:
		return x - width
	default:
		return x
	}
}

// splitLines splits on '\n' only; the canvas text path never sees
// carriage returns from game data.
func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return append(lines, s[start:])
}
