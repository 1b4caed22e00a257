package rose

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/alchemelodic/rosesigil/sigil"
)

func TestEverySymbolHasAPosition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rose.render")
	defer teardown()
	//
	for _, symbol := range sigil.Symbols() {
		if _, ok := Position(symbol); !ok {
			t.Errorf("atlas symbol %q has no diagram position", symbol)
		}
	}
}

func TestRingFormula(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rose.render")
	defer teardown()
	//
	// H is the first outer-ring symbol: index 0 at radius 2.0
	h, ok := Position("H")
	if !ok {
		t.Fatalf("expected H to have a position")
	}
	if !closeTo(h, Point{-2, 0}) {
		t.Errorf("expected H at (-2,0), got (%g,%g)", h.X, h.Y)
	}
	// Z is outer index 1
	z, _ := Position("Z")
	phi := 2 * math.Pi / 13
	if !closeTo(z, Point{-math.Cos(phi) * 2, math.Sin(phi) * 2}) {
		t.Errorf("Z is off the outer ring: (%g,%g)", z.X, z.Y)
	}
	// R is the first middle-ring symbol: index 0 at radius 1.2
	r, _ := Position("R")
	if !closeTo(r, Point{-1.2, 0}) {
		t.Errorf("expected R at (-1.2,0), got (%g,%g)", r.X, r.Y)
	}
	// the center cluster is fixed
	for symbol, want := range map[string]Point{
		"A":  {0, 0.7},
		"M":  {-0.7, 0},
		"Sh": {0.7, 0},
	} {
		got, ok := Position(symbol)
		if !ok || got != want {
			t.Errorf("expected %s at (%g,%g), got %v", symbol, want.X, want.Y, got)
		}
	}
}

func TestPositionsAreUniqueAndReproducible(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rose.render")
	defer teardown()
	//
	if len(positions) != len(outerRing)+len(middleRing)+len(center) {
		t.Errorf("expected %d positions, got %d",
			len(outerRing)+len(middleRing)+len(center), len(positions))
	}
	seen := make(map[Point]string)
	for symbol, p := range positions {
		if other, dup := seen[p]; dup {
			t.Errorf("symbols %q and %q share position (%g,%g)", symbol, other, p.X, p.Y)
		}
		seen[p] = symbol
	}
	rebuilt := buildPositions()
	for symbol, p := range positions {
		if rebuilt[symbol] != p {
			t.Errorf("position of %q is not reproducible", symbol)
		}
	}
}

func closeTo(a, b Point) bool {
	const eps = 1e-12
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}
