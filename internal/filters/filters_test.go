package filters

import (
	"testing"

	"github.com/anas-shakeel/bmpview/internal/bmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gridSource is an in-memory PixelSource for tests.
type gridSource [][]bmp.Color

func (g gridSource) Height() int { return len(g) }
func (g gridSource) Width() int  { return len(g[0]) }

func (g gridSource) PixelAt(row, col int) (bmp.Color, error) {
	if row < 0 || row >= g.Height() || col < 0 || col >= g.Width() {
		return bmp.Color{}, &bmp.RangeError{Row: row, Col: col, Height: g.Height(), Width: g.Width()}
	}
	return g[row][col], nil
}

func TestInvert(t *testing.T) {
	assert.Equal(t, bmp.Color{R: 255, G: 155, B: 0}, Invert(bmp.Color{R: 0, G: 100, B: 255}))
}

func TestGrayscale(t *testing.T) {
	assert.Equal(t, bmp.Color{R: 20, G: 20, B: 20}, Grayscale(bmp.Color{R: 10, G: 20, B: 30}))
}

func TestGrayscaleLuma(t *testing.T) {
	assert.Equal(t, bmp.Color{R: 76, G: 76, B: 76}, GrayscaleLuma(bmp.Color{R: 255}))
	assert.Equal(t, bmp.Color{R: 149, G: 149, B: 149}, GrayscaleLuma(bmp.Color{G: 255}))
}

func TestBrightness(t *testing.T) {
	t.Run("Add", func(t *testing.T) {
		f, err := Brightness(50, "add")
		require.NoError(t, err)
		assert.Equal(t, bmp.Color{R: 60, G: 255, B: 50}, f(bmp.Color{R: 10, G: 250, B: 0}))
	})

	t.Run("Multiply", func(t *testing.T) {
		f, err := Brightness(0.5, "multiply")
		require.NoError(t, err)
		assert.Equal(t, bmp.Color{R: 50, G: 100, B: 0}, f(bmp.Color{R: 100, G: 200, B: 0}))
	})

	t.Run("Darken", func(t *testing.T) {
		f, err := Brightness(-100, "add")
		require.NoError(t, err)
		assert.Equal(t, bmp.Color{R: 0, G: 100, B: 0}, f(bmp.Color{R: 50, G: 200, B: 0}))
	})

	t.Run("InvalidMethod", func(t *testing.T) {
		_, err := Brightness(1, "divide")
		assert.Error(t, err)
	})
}

func TestContrast(t *testing.T) {
	src := gridSource{
		{{R: 0, G: 0, B: 0}, {R: 100, G: 100, B: 100}},
	}

	f, err := Contrast(src, 2)
	require.NoError(t, err)

	// mean is 50 on every channel
	assert.Equal(t, bmp.Color{R: 0, G: 0, B: 0}, f(bmp.Color{}))
	assert.Equal(t, bmp.Color{R: 150, G: 150, B: 150}, f(bmp.Color{R: 100, G: 100, B: 100}))

	same, err := Contrast(src, 1)
	require.NoError(t, err)
	assert.Equal(t, bmp.Color{R: 7, G: 8, B: 9}, same(bmp.Color{R: 7, G: 8, B: 9}))
}

func TestApply(t *testing.T) {
	src := gridSource{
		{{R: 1, G: 2, B: 3}, {R: 4, G: 5, B: 6}},
		{{R: 7, G: 8, B: 9}, {R: 10, G: 11, B: 12}},
	}

	assert.Equal(t, bmp.PixelSource(src), Apply(src, nil))

	inverted := Apply(src, Invert)
	assert.Equal(t, 2, inverted.Width())
	assert.Equal(t, 2, inverted.Height())

	c, err := inverted.PixelAt(1, 0)
	require.NoError(t, err)
	assert.Equal(t, bmp.Color{R: 248, G: 247, B: 246}, c)

	// the source is untouched
	assert.Equal(t, bmp.Color{R: 7, G: 8, B: 9}, src[1][0])

	_, err = inverted.PixelAt(2, 0)
	assert.ErrorIs(t, err, bmp.ErrOutOfRange)
}

func TestByName(t *testing.T) {
	for _, name := range []string{"", "none", "NONE"} {
		f, err := ByName(name)
		require.NoError(t, err)
		assert.Nil(t, f)
	}

	for _, name := range []string{"invert", "grayscale", "gray", "luma"} {
		f, err := ByName(name)
		require.NoError(t, err)
		assert.NotNil(t, f, name)
	}

	_, err := ByName("sepia")
	assert.Error(t, err)
}
