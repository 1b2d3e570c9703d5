package shapes

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Primitives emit SVG fragments inside a fixed 100x100 coordinate field,
// centered on (50,50) unless a center is given. Catalog generators compose
// them and wrap the result in the svg frame.

const (
	fillDark  = "#000000"
	fillLight = "#FFFFFF"
)

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// num renders a dimension in its shortest decimal form.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// coord renders a computed vertex coordinate to two decimal places.
func coord(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// PolygonPoints returns an SVG points attribute describing a regular n-sided
// polygon sized by its flat-to-flat distance (twice the apothem), centered at
// (cx, cy) and rotated by rotationDeg degrees. n below 3 is not validated;
// degenerate inputs yield degenerate but well-formed markup.
func PolygonPoints(n int, flatToFlat, cx, cy, rotationDeg float64) string {
	r := flatToFlat / (2 * math.Cos(math.Pi/float64(n)))
	pts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		a := radians(rotationDeg + float64(i)*(360.0/float64(n)))
		pts = append(pts, coord(cx+r*math.Cos(a))+","+coord(cy+r*math.Sin(a)))
	}
	return `points="` + strings.Join(pts, " ") + `"`
}

// Star returns an SVG path d attribute for a star outline with the given lobe
// count, alternating between outerRadius and innerRadius across 2*lobes
// vertices. Vertex 0 points straight up and the path closes back on itself.
func Star(lobes int, outerRadius, innerRadius float64) string {
	var b strings.Builder
	b.WriteString(`d="M `)
	for i := 0; i < lobes*2; i++ {
		r := outerRadius
		if i%2 != 0 {
			r = innerRadius
		}
		a := radians(float64(i)*(360.0/float64(lobes*2)) - 90)
		b.WriteString(coord(50 + r*math.Cos(a)))
		b.WriteByte(' ')
		b.WriteString(coord(50 + r*math.Sin(a)))
		b.WriteByte(' ')
		if i == 0 {
			b.WriteString("L ")
		}
	}
	b.WriteString(`Z"`)
	return b.String()
}

// Annulus draws a ring as two concentric circles, the outer filled dark and
// the inner filled light. There is no true path hole.
func Annulus(outerRadius, innerRadius float64) string {
	return fmt.Sprintf(`<circle cx="50" cy="50" r="%s" fill="%s" /><circle cx="50" cy="50" r="%s" fill="%s" />`,
		num(outerRadius), fillDark, num(innerRadius), fillLight)
}

// CapSide draws a rounded rectangular screw head sitting on the 80-unit
// shaft baseline.
func CapSide(headWidth, headHeight float64) string {
	return fmt.Sprintf(`<rect x="%s" y="%s" width="%s" height="%s" rx="%s" ry="%s" fill="%s" />`,
		num((100-headWidth)/2), num(100-headHeight-80), num(headWidth), num(headHeight),
		num(headHeight/4), num(headHeight/4), fillDark)
}

// ButtonSide draws a domed screw head as a semi-ellipse over a rectangle.
func ButtonSide(headDiameter, headHeight float64) string {
	top := 100 - headHeight - 80
	return fmt.Sprintf(`<ellipse cx="50" cy="%s" rx="%s" ry="%s" fill="%s" />`,
		num(top+headHeight/2), num(headDiameter/2), num(headHeight/2), fillDark) +
		fmt.Sprintf(`<rect x="%s" y="%s" width="%s" height="%s" fill="%s" />`,
			num((100-headDiameter)/2), num(top+headHeight/2), num(headDiameter), num(headHeight/2), fillDark)
}

// CountersunkSide draws a trapezoidal head narrowing to the shaft baseline.
func CountersunkSide(headDiameter, headHeight float64) string {
	return fmt.Sprintf(`<path d="M %s %s L %s %s L 60 20 L 40 20 Z" fill="%s" />`,
		num((100-headDiameter)/2), num(100-headHeight-80),
		num((100+headDiameter)/2), num(100-headHeight-80), fillDark)
}

// BoltShaft draws a threaded shaft anchored to the bottom of the field: a
// vertical rectangle crossed by six light thread lines, ending in a pointed
// tip when pointed is set and a small chamfer otherwise.
func BoltShaft(shaftWidth, shaftLength float64, pointed bool) string {
	originX := (100 - shaftWidth) / 2
	originY := 100 - shaftLength
	chamferHeight := shaftWidth / 4
	if pointed {
		shaftLength -= shaftWidth
	} else {
		shaftLength -= chamferHeight
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s" />`,
		num(originX), num(originY), num(shaftWidth), num(shaftLength), fillDark)

	const threads = 6
	for i := 0; i < threads; i++ {
		y := originY + float64(i+1)*(shaftLength/(threads+1))
		fmt.Fprintf(&b, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="2"/>`,
			num(originX), num(y), num((100+shaftWidth)/2), num(y-shaftWidth/4), fillLight)
	}

	if pointed {
		fmt.Fprintf(&b, `<path d="M %s %s L 50 100 L %s %s Z" fill="%s" />`,
			num(originX), num(originY+shaftLength), num(originX+shaftWidth), num(originY+shaftLength), fillDark)
	} else {
		fmt.Fprintf(&b, `<path d="M %s %s L %s %s L %s %s L %s %s Z" fill="%s" />`,
			num(originX), num(originY+shaftLength),
			num(originX+shaftWidth), num(originY+shaftLength),
			num(originX+shaftWidth-chamferHeight/2), num(originY+shaftLength+chamferHeight),
			num(originX+chamferHeight/2), num(originY+shaftLength+chamferHeight), fillDark)
	}
	return b.String()
}

// HexNutTop draws a hexagon with a light center hole of one quarter the
// flat-to-flat distance.
func HexNutTop(flatToFlat float64, color string) string {
	return fmt.Sprintf(`<polygon %s fill="%s" />`, PolygonPoints(6, flatToFlat, 50, 50, 0), color) +
		fmt.Sprintf(`<circle cx="50" cy="50" r="%s" fill="%s" />`, num(flatToFlat/4), fillLight)
}

// HexNutSide draws a nut profile as a vertical rectangle with two light
// horizontal lines at quarter heights, overhanging the sides.
func HexNutSide(thickness, flatToFlat float64) string {
	left := (100 - thickness) / 2
	right := (100 + thickness) / 2
	top := (100 - flatToFlat) / 2

	var b strings.Builder
	fmt.Fprintf(&b, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s" />`,
		num(left), num(top), num(thickness), num(flatToFlat), fillDark)
	for _, frac := range []float64{0.25, 0.75} {
		y := top + flatToFlat*frac
		fmt.Fprintf(&b, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="2"/>`,
			num(left-flatToFlat/4), num(y), num(right+flatToFlat/4), num(y), fillLight)
	}
	return b.String()
}

// Slot draws a light drive slot rotated about the field center.
func Slot(length, width, angle float64) string {
	return fmt.Sprintf(`<rect x="%s" y="%s" width="%s" height="%s" transform="rotate(%s, 50, 50)" fill="%s" />`,
		num((100-length)/2), num((100-width)/2), num(length), num(width), num(angle), fillLight)
}

func frame(parts ...string) string {
	return `<svg width="100" height="100" viewBox="0 0 100 100">` + strings.Join(parts, "") + `</svg>`
}

// shiftedFrame nudges the viewBox right for profiles that overhang center.
func shiftedFrame(parts ...string) string {
	return `<svg width="100" height="100" viewBox="5 0 100 100">` + strings.Join(parts, "") + `</svg>`
}
