package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollowmoss/briar/engine/core"
)

// chdir is t.Chdir for toolchains predating Go 1.24: enter dir and restore
// the previous working directory when the test ends.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

// writeTestPNG drops a solid-color PNG into assets/textures under a temp
// working directory.
func writeTestPNG(t *testing.T, name string, w, h int, c color.RGBA) {
	t.Helper()
	chdir(t, t.TempDir())
	require.NoError(t, os.MkdirAll(filepath.Join("assets", "textures"), 0o755))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	f, err := os.Create(filepath.Join("assets", "textures", name))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
}

func TestLoadPNG(t *testing.T) {
	writeTestPNG(t, "red.png", 4, 2, color.RGBA{255, 0, 0, 255})

	w, h, pix, err := LoadPNG("red.png")
	require.NoError(t, err)
	assert.Equal(t, 4, w)
	assert.Equal(t, 2, h)
	require.Len(t, pix, 4*2*4)
	assert.Equal(t, []byte{255, 0, 0, 255}, pix[:4])
}

func TestLoadPNGMissingFile(t *testing.T) {
	chdir(t, t.TempDir())
	_, _, _, err := LoadPNG("nope.png")
	assert.Error(t, err)
}

func TestLoadTextureWithoutMipmaps(t *testing.T) {
	writeTestPNG(t, "flat.png", 8, 4, color.RGBA{0, 128, 0, 255})

	desc, err := LoadTexture("flat.png", false)
	require.NoError(t, err)
	assert.Equal(t, 8, desc.Width)
	assert.Equal(t, 4, desc.Height)
	assert.Equal(t, core.PixelFormatRGBA8, desc.Format)
	require.Len(t, desc.Levels, 1)
	assert.Len(t, desc.Levels[0], 8*4*4)
}

func TestLoadTextureMipChainReaches1x1(t *testing.T) {
	writeTestPNG(t, "mips.png", 8, 4, color.RGBA{10, 20, 30, 255})

	desc, err := LoadTexture("mips.png", true)
	require.NoError(t, err)

	// 8x4 -> 4x2 -> 2x1 -> 1x1.
	require.Len(t, desc.Levels, 4)
	assert.Len(t, desc.Levels[0], 8*4*4)
	assert.Len(t, desc.Levels[1], 4*2*4)
	assert.Len(t, desc.Levels[2], 2*1*4)
	assert.Len(t, desc.Levels[3], 1*1*4)

	// Resampling a solid color keeps the color.
	assert.Equal(t, []byte{10, 20, 30, 255}, desc.Levels[3])
}
