// Renders every registered fastener icon onto one contact sheet so catalog
// changes can be eyeballed before they land on labels.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"binlabel/internal/label"
	"binlabel/internal/render"
	"binlabel/internal/shapes"
)

const columns = 8

func main() {
	outPath := flag.String("out", "iconsheet.png", "output PNG path")
	cellPx := flag.Int("cell", 64, "icon cell size in pixels")
	flag.Parse()

	if *cellPx <= 0 {
		fmt.Fprintln(os.Stderr, "usage: iconsheet [-out <sheet.png>] [-cell <pixels>]")
		os.Exit(2)
	}

	views, err := shapes.BuildViews()
	if err != nil {
		fmt.Fprintf(os.Stderr, "build catalog: %v\n", err)
		os.Exit(1)
	}

	sheet, width, height, err := buildSheet(views, *cellPx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "compose sheet: %v\n", err)
		os.Exit(1)
	}
	if err := render.WritePNG(sheet, *outPath, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "write sheet: %v\n", err)
		os.Exit(1)
	}
}

func buildSheet(views shapes.Views, cellPx int) (string, int, int, error) {
	type entry struct {
		name string
		icon string
	}
	var entries []entry
	for _, reg := range []*shapes.Registry{views.Top, views.Side} {
		for _, name := range reg.Names() {
			gen, ok := reg.Lookup(name)
			if !ok {
				return "", 0, 0, fmt.Errorf("catalog lists unknown symbol %q", name)
			}
			entries = append(entries, entry{name: reg.View() + "/" + name, icon: gen()})
		}
	}

	const cell = 100.0
	const caption = 14.0
	rows := (len(entries) + columns - 1) / columns
	widthU := float64(columns) * cell
	heightU := float64(rows) * (cell + caption)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %g %g">`, widthU, heightU)
	fmt.Fprintf(&b, `<rect x="0" y="0" width="%g" height="%g" fill="#ffffff" />`, widthU, heightU)
	for i, e := range entries {
		x := float64(i%columns) * cell
		y := float64(i/columns) * (cell + caption)
		group, err := label.InlineGroup(e.icon, cell)
		if err != nil {
			return "", 0, 0, fmt.Errorf("icon %s: %w", e.name, err)
		}
		fmt.Fprintf(&b, `<g transform="translate(%g %g)">%s</g>`, x, y, group)
		fmt.Fprintf(&b, `<text x="%g" y="%g" font-size="10">%s</text>`, x+2, y+cell+11, e.name)
	}
	b.WriteString(`</svg>`)

	scale := float64(cellPx) / cell
	return b.String(), int(widthU * scale), int(heightU * scale), nil
}
