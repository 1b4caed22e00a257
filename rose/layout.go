package rose

import "math"

// Point is a position on the sigil diagram, in diagram units. The diagram is
// centered on the origin with y growing upward; the bounding circle has
// radius 2.5.
type Point struct {
	X, Y float64
}

// Ring radii of the diagram.
const (
	outerRadius    = 2.0
	middleRadius   = 1.2
	boundingRadius = 2.5
	markerRadius   = 0.2
)

// The three symbol groups, in diagram order. These enumerations are
// presentation-driven and fixed; in particular the middle ring keeps the
// aspirated forms (RH, PH, KH, TH, GH, DH) as positions of their own, and
// "Ch" and "Sh" keep their display capitalization.
var (
	outerRing  = []string{"H", "Z", "V", "E", "Q", "X", "O", "S", "N", "L", "I", "T", "Ch"}
	middleRing = []string{"R", "RH", "P", "PH", "F", "K", "KH", "TH", "G", "GH", "D", "DH", "B"}
	center     = []string{"M", "A", "Sh"}
)

// positions maps every canonical symbol to its diagram coordinate. Built once
// at startup, never mutated.
var positions = buildPositions()

// ringPoint spaces index i of n evenly around a circle of radius r, starting
// at (-r, 0) and proceeding clockwise in screen terms.
func ringPoint(i, n int, r float64) Point {
	phi := float64(i) * 2 * math.Pi / float64(n)
	return Point{-math.Cos(phi) * r, math.Sin(phi) * r}
}

func buildPositions() map[string]Point {
	pos := make(map[string]Point, len(outerRing)+len(middleRing)+len(center))
	for i, symbol := range outerRing {
		pos[symbol] = ringPoint(i, len(outerRing), outerRadius)
	}
	for i, symbol := range middleRing {
		pos[symbol] = ringPoint(i, len(middleRing), middleRadius)
	}
	pos["A"] = Point{0, 0.7}
	pos["M"] = Point{-0.7, 0}
	pos["Sh"] = Point{0.7, 0}
	return pos
}

// Position returns the fixed diagram coordinate of a canonical symbol.
// A symbol without a position is silently skipped during rendering, never
// an error.
func Position(symbol string) (Point, bool) {
	p, ok := positions[symbol]
	return p, ok
}
