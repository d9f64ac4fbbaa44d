package render

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/osuushi/intersections/advanced"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squares() (advanced.Polygon, advanced.Polygon) {
	a := advanced.Polygon{Name: "a", Points: []advanced.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}}
	return a, a.Translate(advanced.Point{X: 0.5, Y: 0.5})
}

func TestDraw(t *testing.T) {
	a, b := squares()
	points := advanced.Scan(a, b)

	img, err := Draw(a, b, points, DefaultOptions())
	require.NoError(t, err)
	// 1.5 units at 100 pixels per unit, plus padding on both sides
	assert.Equal(t, image.Rect(0, 0, 150+2*padding, 150+2*padding), img.Bounds())

	// The marker for (1, 0.5) is yellow. The y axis is flipped.
	x := padding + 100
	y := 150 + padding - 50
	r, g, bl, _ := img.At(x, y).RGBA()
	assert.Greater(t, r, uint32(0xc000))
	assert.Greater(t, g, uint32(0xc000))
	assert.Less(t, bl, uint32(0x4000))

	// The corner is background
	r, g, bl, _ = img.At(1, 1).RGBA()
	assert.Equal(t, []uint32{0, 0, 0}, []uint32{r, g, bl})
}

func TestDraw_Empty(t *testing.T) {
	img, err := Draw(advanced.Polygon{}, advanced.Polygon{}, nil, Options{})
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 1+2*padding, 1+2*padding), img.Bounds())
}

func TestSavePNG(t *testing.T) {
	a, b := squares()
	path := filepath.Join(t.TempDir(), "out.png")
	img, err := Draw(a, b, advanced.Scan(a, b), DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, SavePNG(path, img))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	err = SavePNG(filepath.Join(t.TempDir(), "missing", "out.png"), image.NewRGBA(image.Rect(0, 0, 1, 1)))
	assert.Error(t, err)
}

func TestDraw_LargeCoordinates(t *testing.T) {
	a := advanced.Polygon{Points: []advanced.Point{{X: 0, Y: 0}, {X: 1e9, Y: 0}, {X: 1e9, Y: 1e9}, {X: 0, Y: 1e9}}}
	b := a.Translate(advanced.Point{X: 5e8, Y: 5e8})

	img, err := Draw(a, b, advanced.Scan(a, b), DefaultOptions())
	require.NoError(t, err)
	// 1.5e9 units wide, scaled down to fit
	assert.Equal(t, image.Rect(0, 0, MaxCanvasSize+2*padding, MaxCanvasSize+2*padding), img.Bounds())

	t.Run("wide and short", func(t *testing.T) {
		a := advanced.Polygon{Points: []advanced.Point{{X: 0, Y: 0}, {X: 1e5, Y: 0}, {X: 1e5, Y: 10}, {X: 0, Y: 10}}}
		img, err := Draw(a, a, nil, DefaultOptions())
		require.NoError(t, err)
		bounds := img.Bounds()
		assert.Equal(t, MaxCanvasSize+2*padding, bounds.Dx())
		assert.Less(t, bounds.Dy(), 2*padding+2)
	})

	t.Run("extent overflows", func(t *testing.T) {
		a := advanced.Polygon{Points: []advanced.Point{{X: -1e308, Y: 0}, {X: 1e308, Y: 0}, {X: 0, Y: 1}}}
		img, err := Draw(a, a, nil, DefaultOptions())
		assert.Error(t, err)
		assert.Nil(t, img)
	})
}
