// Package glyph describes how terminal runes cover a pixel cell, for frontends
// whose bitmap font has no block or box-drawing characters.
package glyph

// Box is a filled rectangle in fractions of the cell, origin top-left.
type Box struct {
	X, Y, W, H float64
}

// Shape is a rune drawn as filled boxes.
type Shape struct {
	Boxes []Box
	Alpha float64 // fill opacity, 1 for solid
}

// line thickness as a fraction of the cell
const (
	lineW = 0.16 // vertical strokes
	lineH = 0.1  // horizontal strokes
)

func hline(x0, x1, y float64) Box { return Box{X: x0, Y: y - lineH/2, W: x1 - x0, H: lineH} }
func vline(x, y0, y1 float64) Box { return Box{X: x - lineW/2, Y: y0, W: lineW, H: y1 - y0} }

func solid(boxes ...Box) Shape { return Shape{Boxes: boxes, Alpha: 1} }
func shade(alpha float64) Shape {
	return Shape{Boxes: []Box{{W: 1, H: 1}}, Alpha: alpha}
}

// double-line offsets
const (
	lo = 0.3
	hi = 0.7
)

var shapes = map[rune]Shape{
	'█': solid(Box{W: 1, H: 1}),
	'▀': solid(Box{W: 1, H: 0.5}),
	'▄': solid(Box{Y: 0.5, W: 1, H: 0.5}),
	'░': shade(0.25),
	'▒': shade(0.5),
	'▓': shade(0.75),

	'─': solid(hline(0, 1, 0.5)),
	'│': solid(vline(0.5, 0, 1)),
	'┌': solid(hline(0.5, 1, 0.5), vline(0.5, 0.5, 1)),
	'┐': solid(hline(0, 0.5, 0.5), vline(0.5, 0.5, 1)),
	'└': solid(hline(0.5, 1, 0.5), vline(0.5, 0, 0.5)),
	'┘': solid(hline(0, 0.5, 0.5), vline(0.5, 0, 0.5)),
	'┄': solid(hline(0, 0.2, 0.5), hline(0.35, 0.55, 0.5), hline(0.7, 0.9, 0.5)),

	'═': solid(hline(0, 1, lo), hline(0, 1, hi)),
	'║': solid(vline(lo, 0, 1), vline(hi, 0, 1)),
	'╔': solid(hline(lo, 1, lo), vline(lo, lo, 1), hline(hi, 1, hi), vline(hi, hi, 1)),
	'╗': solid(hline(0, hi, lo), vline(hi, lo, 1), hline(0, lo, hi), vline(lo, hi, 1)),
	'╚': solid(hline(lo, 1, hi), vline(lo, 0, hi), hline(hi, 1, lo), vline(hi, 0, lo)),
	'╝': solid(hline(0, hi, hi), vline(hi, 0, hi), hline(0, lo, lo), vline(lo, 0, lo)),
	'╬': solid(
		hline(0, lo, lo), vline(lo, 0, lo),
		hline(hi, 1, lo), vline(hi, 0, lo),
		hline(0, lo, hi), vline(lo, hi, 1),
		hline(hi, 1, hi), vline(hi, hi, 1),
	),
}

// Lookup returns the shape for r, if r is drawn as boxes.
func Lookup(r rune) (Shape, bool) {
	s, ok := shapes[r]
	return s, ok
}

var fallbacks = map[rune]rune{
	'▲': '^',
	'↑': '^',
	'↓': 'v',
	'♣': '*',
	'♠': '*',
	'◎': 'o',
}

// Fallback returns an ASCII stand-in for symbols a basic font lacks, or r itself.
func Fallback(r rune) rune {
	if f, ok := fallbacks[r]; ok {
		return f
	}
	return r
}
