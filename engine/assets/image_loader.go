package assets

import (
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"github.com/anthonynsimon/bild/transform"
	"github.com/pkg/errors"

	"github.com/hollowmoss/briar/engine/core"
)

// LoadPNG returns width, height, and tightly packed RGBA8 pixels (row-major,
// top-left origin).
func LoadPNG(relPath string) (w, h int, rgba []byte, err error) {
	path := filepath.Join("assets", "textures", relPath)
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, nil, errors.Wrapf(err, "open %q", path)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return 0, 0, nil, errors.Wrapf(err, "decode png %q", path)
	}

	rgbaImg := imageToRGBA(img)
	w, h = rgbaImg.Bounds().Dx(), rgbaImg.Bounds().Dy()
	return w, h, tightPixels(rgbaImg), nil
}

// LoadTexture loads a PNG and builds a texture creation request. With
// mipmaps enabled a full half-size chain down to 1x1 is generated on the
// CPU.
func LoadTexture(relPath string, mipmaps bool) (core.TextureDesc, error) {
	path := filepath.Join("assets", "textures", relPath)
	f, err := os.Open(path)
	if err != nil {
		return core.TextureDesc{}, errors.Wrapf(err, "open %q", path)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return core.TextureDesc{}, errors.Wrapf(err, "decode png %q", path)
	}

	base := imageToRGBA(img)
	desc := core.TextureDesc{
		Width:  base.Bounds().Dx(),
		Height: base.Bounds().Dy(),
		Format: core.PixelFormatRGBA8,
		Levels: [][]byte{tightPixels(base)},
	}
	if mipmaps {
		desc.Levels = append(desc.Levels, mipChain(base)...)
	}
	return desc, nil
}

// mipChain resamples img down to 1x1, halving each step.
func mipChain(img *image.RGBA) [][]byte {
	var levels [][]byte
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	cur := img
	for w > 1 || h > 1 {
		if w > 1 {
			w /= 2
		}
		if h > 1 {
			h /= 2
		}
		cur = transform.Resize(cur, w, h, transform.Linear)
		levels = append(levels, tightPixels(cur))
	}
	return levels
}

func imageToRGBA(img image.Image) *image.RGBA {
	if m, ok := img.(*image.RGBA); ok {
		return m
	}
	dst := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
	return dst
}

// tightPixels repacks an RGBA image into rows with stride == 4*w.
func tightPixels(img *image.RGBA) []byte {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if img.Stride == w*4 {
		out := make([]byte, len(img.Pix))
		copy(out, img.Pix)
		return out
	}
	out := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		copy(out[y*w*4:(y+1)*w*4], img.Pix[y*img.Stride:y*img.Stride+w*4])
	}
	return out
}
