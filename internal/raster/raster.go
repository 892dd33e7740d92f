// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package raster converts a single raster image into a one-page PDF document
// held in memory. The image is recolored to RGB first: alpha and palette
// information is dropped, which is lossy and irreversible by contract.
package raster

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"github.com/MoAlkhateeb/image-pdf-combiner/pkg/types"
)

const pointsPerInch = 72

// Rasterize decodes the image at path, recolors it to RGB, and returns a
// one-page PDF containing the image full-bleed on a page sized
// pixels/dpi inches. The DPI value is not validated; defaulting is the
// caller's responsibility.
func Rasterize(path string, dpi int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening image %s: %w", types.ErrFilesystem, path, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding image %s: %w", types.ErrDecode, path, err)
	}

	rgb := toRGB(src)
	var jpg bytes.Buffer
	if err := jpeg.Encode(&jpg, rgb, nil); err != nil {
		return nil, fmt.Errorf("%w: encoding image %s: %w", types.ErrDecode, path, err)
	}

	bounds := rgb.Bounds()
	widthPt := float64(bounds.Dx()) * pointsPerInch / float64(dpi)
	heightPt := float64(bounds.Dy()) * pointsPerInch / float64(dpi)

	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: widthPt, Ht: heightPt},
	})
	doc.AddPage()

	name := filepath.Base(path)
	opts := gofpdf.ImageOptions{ImageType: "JPG"}
	doc.RegisterImageOptionsReader(name, opts, &jpg)
	doc.ImageOptions(name, 0, 0, widthPt, heightPt, false, opts, 0, "")

	var out bytes.Buffer
	if err := doc.Output(&out); err != nil {
		return nil, fmt.Errorf("%w: building page for %s: %w", types.ErrDecode, path, err)
	}
	return out.Bytes(), nil
}

// toRGB flattens src onto an opaque white canvas. Transparent regions end up
// white, matching what a printed page would show.
func toRGB(src image.Image) *image.RGBA {
	bounds := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), src, bounds.Min, draw.Over)
	return dst
}
