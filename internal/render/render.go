// Package render rasterizes finished label SVG documents into the printable
// output formats.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"regexp"
	"strings"

	"github.com/signintech/gopdf"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// MMToPx converts millimeters to whole pixels at the given print resolution.
func MMToPx(mm float64, dpi int) int {
	return int(mm / 25.4 * float64(dpi))
}

// oksvg reads width and height attributes as bare numbers. Physical units
// are implied by the raster size we target, so strip the suffixes before
// parsing.
var physicalDimensions = regexp.MustCompile(`(width|height)="([0-9.]+)(?:mm|cm|in|pt|pc)"`)

// Rasterize draws an SVG document into a width x height image over a white
// background, the color of the label tape. Shape elements go through oksvg;
// text spans are overlaid afterwards since oksvg has no text support.
func Rasterize(svg string, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("raster size must be positive, got %dx%d", width, height)
	}
	svg = physicalDimensions.ReplaceAllString(svg, `$1="$2"`)
	icon, err := oksvg.ReadIconStream(strings.NewReader(svg), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)
	icon.Draw(raster, 1.0)

	if err := drawText(img, svg, width, height); err != nil {
		return nil, err
	}
	return img, nil
}

// WritePNG rasterizes svg at the label's pixel dimensions and writes it to
// path as a PNG.
func WritePNG(svg, path string, width, height int) error {
	img, err := Rasterize(svg, width, height)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}

// WritePDF rasterizes svg at dpi and places it on a single page matching
// the label size in millimeters.
func WritePDF(svg, path string, widthMM, heightMM float64, dpi int) error {
	img, err := Rasterize(svg, MMToPx(widthMM, dpi), MMToPx(heightMM, dpi))
	if err != nil {
		return err
	}

	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{
		Unit:     gopdf.UnitMM,
		PageSize: gopdf.Rect{W: widthMM, H: heightMM},
	})
	pdf.AddPage()
	if err := pdf.ImageFrom(img, 0, 0, &gopdf.Rect{W: widthMM, H: heightMM}); err != nil {
		return fmt.Errorf("place label image: %w", err)
	}
	if err := pdf.WritePdf(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
