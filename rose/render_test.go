package rose

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathIsDeterministic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rose.render")
	defer teardown()
	//
	first := Path("JAMES")
	second := Path("JAMES")
	assert.Equal(t, first, second, "the render path must be a pure function of the word")
}

func TestPathResolvesSymbols(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rose.render")
	defer teardown()
	//
	steps := Path("JAMES")
	require.Len(t, steps, 5)
	want := []string{"I", "A", "M", "A", "S"}
	for i, step := range steps {
		assert.Equal(t, want[i], step.Symbol)
		p, ok := Position(step.Symbol)
		require.True(t, ok)
		assert.Equal(t, p, step.At)
	}
	// the second A revisits the first A's coordinate
	assert.False(t, steps[1].Repeat)
	assert.True(t, steps[3].Repeat)
}

func TestPathRepeatDetection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rose.render")
	defer teardown()
	//
	steps := Path("AA")
	require.Len(t, steps, 2)
	assert.Equal(t, steps[0].At, steps[1].At)
	assert.False(t, steps[0].Repeat)
	assert.True(t, steps[1].Repeat)
}

func TestPathDropsUnmappedInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rose.render")
	defer teardown()
	//
	assert.Equal(t, Path("AB"), Path("A1B"))
	assert.Empty(t, Path(""))
	assert.Empty(t, Path("0123 !?"))
}

func TestRenderEmptyWord(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rose.render")
	defer teardown()
	//
	data, err := Render("")
	require.NoError(t, err, "an empty word renders background and bounding circle only")
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	bounds := img.Bounds()
	assert.Equal(t, 600, bounds.Dx())
	assert.Equal(t, 600, bounds.Dy())
	// corners lie outside the bounding circle and keep the background color
	r, g, b, _ := img.At(bounds.Min.X+2, bounds.Min.Y+2).RGBA()
	assert.Equal(t, uint32(0xD3D3), r)
	assert.Equal(t, uint32(0xD3D3), g)
	assert.Equal(t, uint32(0xD3D3), b)
}

func TestRenderProducesPNG(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rose.render")
	defer teardown()
	//
	data, err := Render("JAMES")
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 600, img.Bounds().Dx())
	//
	empty, err := Render("")
	require.NoError(t, err)
	assert.NotEqual(t, empty, data, "a non-empty path must change the image")
}

func TestRenderWithRejectsBadCanvas(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rose.render")
	defer teardown()
	//
	var buf bytes.Buffer
	err := RenderWith(&buf, "JAMES", Options{Size: 0})
	assert.Error(t, err)
}
