// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package raster

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MoAlkhateeb/image-pdf-combiner/pkg/types"
)

func TestRasterize(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, dir string) string
	}{
		{
			name: "opaque png",
			setup: func(t *testing.T, dir string) string {
				return writePNG(t, dir, "opaque.png", 60, 40, color.RGBA{R: 200, A: 255})
			},
		},
		{
			name: "png with transparency",
			setup: func(t *testing.T, dir string) string {
				return writePNG(t, dir, "alpha.png", 60, 40, color.RGBA{R: 200, A: 128})
			},
		},
		{
			name: "jpeg",
			setup: func(t *testing.T, dir string) string {
				return writeJPEG(t, dir, "photo.jpg", 60, 40)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tt.setup(t, t.TempDir())

			out, err := Rasterize(path, 300)
			require.NoError(t, err)
			require.True(t, bytes.HasPrefix(out, []byte("%PDF")), "output should be a PDF document")

			count, err := api.PageCount(bytes.NewReader(out), relaxed())
			require.NoError(t, err)
			assert.Equal(t, 1, count, "rasterized image should yield exactly one page")
		})
	}
}

func TestRasterizePageSizeFollowsDPI(t *testing.T) {
	dir := t.TempDir()
	// 144x72 pixels at 144 DPI is a 1x0.5 inch page: 72x36 points.
	path := writePNG(t, dir, "sized.png", 144, 72, color.RGBA{B: 255, A: 255})

	out, err := Rasterize(path, 144)
	require.NoError(t, err)

	dims, err := api.PageDims(bytes.NewReader(out), relaxed())
	require.NoError(t, err)
	require.Len(t, dims, 1)
	assert.InDelta(t, 72.0, dims[0].Width, 0.5)
	assert.InDelta(t, 36.0, dims[0].Height, 0.5)
}

func TestRasterizeCorruptImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	_, err := Rasterize(path, 300)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrDecode), "corrupt image should be a decode error")
}

func TestRasterizeMissingFile(t *testing.T) {
	_, err := Rasterize(filepath.Join(t.TempDir(), "missing.png"), 300)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrFilesystem), "missing image should be a filesystem error")
}

func relaxed() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

func writePNG(t *testing.T, dir, name string, w, h int, fill color.RGBA) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, fill)
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func writeJPEG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{G: 180, A: 255})
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, jpeg.Encode(f, img, nil))
	require.NoError(t, f.Close())
	return path
}
