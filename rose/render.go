package rose

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/alchemelodic/rosesigil/internal/fontpack"
	"github.com/alchemelodic/rosesigil/sigil"
)

// Step is one resolved stop on a sigil's render path: a canonical symbol
// together with its color and diagram coordinate. Repeat is set when the
// coordinate was already visited earlier in the path.
type Step struct {
	Symbol string
	Color  color.RGBA
	At     Point
	Repeat bool
}

// Path resolves a word into its render path. Unmapped characters and symbols
// without a diagram position contribute nothing. The path is a deterministic
// function of the word; an empty path is a valid result.
func Path(word string) []Step {
	entries := sigil.Resolve(word)
	steps := make([]Step, 0, len(entries))
	seen := make(map[Point]bool, len(entries))
	for _, e := range entries {
		p, ok := Position(e.Symbol)
		if !ok {
			tracer().Debugf("symbol %q has no diagram position, skipping", e.Symbol)
			continue
		}
		steps = append(steps, Step{Symbol: e.Symbol, Color: e.Color, At: p, Repeat: seen[p]})
		seen[p] = true
	}
	return steps
}

// Options configure sigil rendering.
type Options struct {
	Size       int        // edge length of the square canvas, in pixels
	Background color.RGBA // canvas background
	FontSize   float64    // label size in points, relative to the default canvas size
}

// DefaultOptions returns the canonical rendering parameters.
func DefaultOptions() Options {
	return Options{
		Size:       600,
		Background: color.RGBA{0xD3, 0xD3, 0xD3, 0xFF}, // #D3D3D3
		FontSize:   22,
	}
}

// Render draws the sigil for a word and returns it as PNG bytes.
//
// A word that resolves to no symbols still renders successfully, producing
// just the background and the bounding circle. The only failure mode is the
// render backend itself.
func Render(word string) ([]byte, error) {
	var buf bytes.Buffer
	if err := RenderWith(&buf, word, DefaultOptions()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderTo draws the sigil for a word as PNG onto w.
func RenderTo(w io.Writer, word string) error {
	return RenderWith(w, word, DefaultOptions())
}

// supersample is the oversampling factor for the work canvas. The sigil is
// drawn at supersample times the target size and scaled down with
// Catmull-Rom interpolation, which smooths lines and text without hinting.
const supersample = 4

// RenderWith draws the sigil for a word as PNG onto w with explicit options.
func RenderWith(w io.Writer, word string, opts Options) error {
	if opts.Size <= 0 {
		return errRender("canvas size must be positive")
	}
	steps := Path(word)
	tracer().Infof("rendering sigil for %q with %d path steps", word, len(steps))

	cv, err := newCanvas(opts)
	if err != nil {
		return err
	}
	cv.fill(opts.Background)
	cv.drawRing(Point{0, 0}, boundingRadius, cv.lineWidth, color.RGBA{0, 0, 0, 0xFF})

	var prev *Step
	for i := range steps {
		step := steps[i]
		cv.drawLabel(step.At, step.Symbol, step.Color)
		if prev != nil {
			cv.drawSegment(prev.At, step.At, prev.Color)
		}
		if step.Repeat {
			cv.drawRing(step.At, markerRadius, cv.lineWidth, step.Color)
		}
		prev = &steps[i]
	}
	if len(steps) > 0 {
		first, last := steps[0].At, steps[len(steps)-1].At
		cv.drawRing(first, markerRadius, cv.boldWidth, color.RGBA{0, 0, 0, 0xFF})
		cv.drawTick(last, color.RGBA{0, 0, 0, 0xFF})
	}

	final := image.NewRGBA(image.Rect(0, 0, opts.Size, opts.Size))
	draw.CatmullRom.Scale(final, final.Bounds(), cv.img, cv.img.Bounds(), draw.Over, nil)
	if err := png.Encode(w, final); err != nil {
		return errRender(err.Error())
	}
	return nil
}

// canvas is a supersampled work image together with the diagram-to-pixel
// transform and the label face.
type canvas struct {
	img       *image.RGBA
	size      float64 // work canvas edge length in pixels
	lineWidth float64
	boldWidth float64
	face      font.Face
}

// world is the half-extent of the diagram coordinate system: the canvas
// spans [-world, world] in both axes.
const world = 3.0

func newCanvas(opts Options) (*canvas, error) {
	size := opts.Size * supersample
	face, err := fontpack.LabelFace(opts.FontSize * float64(opts.Size) / 600 * supersample)
	if err != nil {
		return nil, errRender(err.Error())
	}
	return &canvas{
		img:       image.NewRGBA(image.Rect(0, 0, size, size)),
		size:      float64(size),
		lineWidth: 2 * float64(size) / 600,
		boldWidth: 3 * float64(size) / 600,
		face:      face,
	}, nil
}

// pixel maps a diagram point to work-canvas pixel coordinates. Diagram y
// grows upward, pixel y downward.
func (cv *canvas) pixel(p Point) (float64, float64) {
	return (p.X + world) / (2 * world) * cv.size, (world - p.Y) / (2 * world) * cv.size
}

func (cv *canvas) fill(c color.RGBA) {
	draw.Draw(cv.img, cv.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// drawSegment connects two diagram points with a straight line.
func (cv *canvas) drawSegment(from, to Point, c color.Color) {
	x1, y1 := cv.pixel(from)
	x2, y2 := cv.pixel(to)
	cv.line(x1, y1, x2, y2, cv.lineWidth, c)
}

// line rasterizes a thick line by stepping along its length and painting a
// perpendicular span at each step.
func (cv *canvas) line(x1, y1, x2, y2, width float64, c color.Color) {
	dx, dy := x2-x1, y2-y1
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps < 1 {
		steps = 1
	}
	dist := math.Hypot(dx, dy)
	half := width / 2
	if dist < 1 {
		for ty := -half; ty <= half; ty++ {
			for tx := -half; tx <= half; tx++ {
				cv.img.Set(int(x1+tx), int(y1+ty), c)
			}
		}
		return
	}
	perpX, perpY := -dy/dist, dx/dist
	for i := 0.0; i <= steps; i++ {
		t := i / steps
		px, py := x1+dx*t, y1+dy*t
		for off := -half; off <= half; off += 0.5 {
			cv.img.Set(int(px+perpX*off), int(py+perpY*off), c)
		}
	}
}

// drawRing draws an unfilled circle of the given diagram radius around a
// diagram point.
func (cv *canvas) drawRing(at Point, radius, width float64, c color.Color) {
	cx, cy := cv.pixel(at)
	r := radius / (2 * world) * cv.size
	// enough segments that the longest chord stays below one pixel
	n := int(math.Ceil(2 * math.Pi * r))
	if n < 16 {
		n = 16
	}
	px, py := cx+r, cy
	for i := 1; i <= n; i++ {
		phi := float64(i) * 2 * math.Pi / float64(n)
		qx := cx + r*math.Cos(phi)
		qy := cy + r*math.Sin(phi)
		cv.line(px, py, qx, qy, width, c)
		px, py = qx, qy
	}
}

// drawTick draws the end-of-path marker: a short diagonal stroke running from
// the last position towards lower right.
func (cv *canvas) drawTick(at Point, c color.Color) {
	cv.drawSegmentWidth(at, Point{at.X + markerRadius, at.Y - markerRadius}, cv.boldWidth, c)
}

func (cv *canvas) drawSegmentWidth(from, to Point, width float64, c color.Color) {
	x1, y1 := cv.pixel(from)
	x2, y2 := cv.pixel(to)
	cv.line(x1, y1, x2, y2, width, c)
}

// drawLabel draws a symbol's display text centered on its diagram point.
func (cv *canvas) drawLabel(at Point, text string, c color.Color) {
	cx, cy := cv.pixel(at)
	width := font.MeasureString(cv.face, text).Ceil()
	metrics := cv.face.Metrics()
	// visually center capital letters on the point: the baseline sits half a
	// cap height below the center, with cap height approximated from ascent
	baseline := int(cy) + int(float64(metrics.Ascent.Ceil())*0.35)
	d := &font.Drawer{
		Dst:  cv.img,
		Src:  image.NewUniform(c),
		Face: cv.face,
		Dot: fixed.Point26_6{
			X: fixed.I(int(cx) - width/2),
			Y: fixed.I(baseline),
		},
	}
	d.DrawString(text)
}
