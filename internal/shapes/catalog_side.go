package shapes

import (
	"fmt"
	"math"
	"strings"
)

func registerSide(b *registryBuilder) {
	b.add("button_head", buttonHeadSide, "button")
	b.add("cap_head", capHeadSide, "cap")
	b.add("hex_head", hexHeadSide, "hex", "bolt")
	b.add("flush_head", flushHeadSide, "flat_head", "flat", "countersunk")
	b.add("wood_screw", woodScrewSide, "wood")
	b.add("washer_std", washerStdSide, "washer", "washer_flat")
	b.add("washer_fender", washerFenderSide, "fender")
	b.add("washer_split", washerSplitSide, "split")
	b.add("washer_star_inner", washerStarInnerSide, "star_inner")
	b.add("washer_star_outer", washerStarOuterSide, "star_outer", "star")
	b.add("nut_standard", nutStandardSide, "nut")
	b.add("nut_thin", nutThinSide, "thin_nut")
	b.add("nut_lock", nutLockSide, "nyloc")
	b.add("nut_flange", nutFlangeSide, "flange_nut")
	b.add("nut_cap", nutCapSide, "cap_nut", "acorn", "acorn_nut")
	b.add("nut_wing", nutWingSide, "wing_nut", "wing")
	b.add("insert_heat", insertHeatSide, "heat_insert", "heat_set_insert", "hsi", "heat_set")
	b.add("insert_wood", insertWoodSide, "wood_insert")
	b.add("insert_press", insertPressSide, "press_insert")
	b.add("bearing", bearingSide)
	b.add("bearing_flange", bearingFlangeSide, "flange_bearing")
	b.add("spring", springSide, "coil", "coil_spring")
}

// Screw profiles share an 80-unit shaft with a head primitive stacked on top.

func buttonHeadSide() string {
	return frame(ButtonSide(50, 20), BoltShaft(25, 80, false))
}

func capHeadSide() string {
	return frame(CapSide(50, 30), BoltShaft(25, 80, false))
}

func hexHeadSide() string {
	return frame(CapSide(50, 30), BoltShaft(25, 80, false))
}

func flushHeadSide() string {
	return frame(CountersunkSide(50, 20), BoltShaft(20, 80, false))
}

func woodScrewSide() string {
	return frame(CountersunkSide(50, 20), BoltShaft(20, 80, true))
}

// washerSide draws a thin vertical rectangle with a light band for the bore.
func washerSide(outerDiameter, innerDiameter float64) string {
	thickness := outerDiameter / 6
	return frame(
		fmt.Sprintf(`<rect x="%s" y="%s" width="%s" height="%s" fill="%s" />`,
			num((100-thickness)/2), num((100-outerDiameter)/2), num(thickness), num(outerDiameter), fillDark),
		fmt.Sprintf(`<rect x="%s" y="%s" width="%s" height="%s" fill="%s" />`,
			num((100-thickness)/2), num((100-innerDiameter)/2), num(thickness), num(innerDiameter), fillLight),
	)
}

func washerStdSide() string {
	return washerSide(80, 35)
}

func washerFenderSide() string {
	return washerSide(80, 80.0/3)
}

func washerSplitSide() string {
	const d = 80.0
	outer, inner, thickness := d, d/2, d/10
	edge := (100 - thickness) / 2
	return frame(
		fmt.Sprintf(`<path d="M %s %s Q %s %s %s 50 Q %s %s %s %s" stroke="%s" stroke-width="%s" fill="none"/>`,
			num(edge), num((100-outer)/2+5),
			num(edge-5), num(45.0), num(edge),
			num(edge+5), num(55.0), num(edge), num((100+outer)/2-5),
			fillDark, num(thickness)),
		fmt.Sprintf(`<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s"/>`,
			num((100+thickness)/2+10), num((100-inner)/2), num(edge-10), num((100+inner)/2),
			fillLight, num(thickness)),
	)
}

func washerStarInnerSide() string {
	return washerSide(80, 40)
}

func washerStarOuterSide() string {
	return washerSide(80, 40)
}

func nutStandardSide() string {
	return frame(HexNutSide(30, 80))
}

func nutThinSide() string {
	return frame(HexNutSide(30, 80))
}

func nutLockSide() string {
	const d = 80.0
	thickness, radius := 30.0, d*0.5
	return shiftedFrame(
		HexNutSide(thickness, d),
		fmt.Sprintf(`<rect x="50" y="%s" width="%s" height="%s" fill="%s" />`,
			num(50-radius+d*0.1), num(thickness), num(d*0.8), fillDark),
	)
}

func nutFlangeSide() string {
	const d = 80.0
	thickness := 30.0
	flangeDiameter := d * 1.2
	flangeThickness := thickness * 0.4
	return frame(
		HexNutSide(thickness, d),
		fmt.Sprintf(`<rect x="%s" y="%s" width="%s" height="%s" fill="%s" />`,
			num((100-thickness)/2), num((100-flangeDiameter)/2), num(flangeThickness), num(flangeDiameter), fillDark),
	)
}

func nutCapSide() string {
	const d = 80.0
	thickness := 20.0
	return frame(
		fmt.Sprintf(`<ellipse cx="50" cy="50" rx="%s" ry="%s" fill="%s" />`, num(d*0.4), num(d*0.4), fillDark),
		// mask off the left half so only the dome remains
		fmt.Sprintf(`<rect x="0" y="0" width="50" height="100" fill="%s" />`, fillLight),
		fmt.Sprintf(`<rect x="%s" y="%s" width="%s" height="%s" fill="%s" />`,
			num(50-thickness), num((100-d)/2), num(thickness), num(d), fillDark),
		fmt.Sprintf(`<rect x="50" y="0" width="%s" height="100" fill="%s" />`, num(thickness*0.2), fillLight),
	)
}

func nutWingSide() string {
	const d = 80.0
	wingWidth := d * 0.6
	wingHeight := d * 0.2
	innerDiameter := d * 0.6
	baseY := (100 - innerDiameter) / 2
	const wingAngle = 60.0
	return shiftedFrame(
		fmt.Sprintf(`<rect x="50" y="%s" width="%s" height="%s" transform="rotate(%s 50 50)" fill="%s" />`,
			num(baseY+wingHeight), num(wingWidth), num(wingHeight), num(-wingAngle), fillDark),
		fmt.Sprintf(`<rect x="50" y="%s" width="%s" height="%s" transform="rotate(%s 50 50)" fill="%s" />`,
			num(baseY+wingHeight), num(wingWidth), num(wingHeight), num(wingAngle), fillDark),
		HexNutSide(30, innerDiameter),
	)
}

// insertHeatSide stacks two knurled bands over two plain bands, the knurling
// drawn as light diagonal hatch lines slanting opposite ways.
func insertHeatSide() string {
	const (
		d      = 80.0
		length = 60.0
	)
	wideHeight := length / 3
	wideWidth := d * 0.5
	narrowHeight := length / 6
	narrowWidth := d * 0.4
	top := math.Max(100-length*1.3, 0)
	const left = 5.0

	var b strings.Builder
	rect := func(x, y, w, h float64) {
		fmt.Fprintf(&b, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s" />`,
			num(x), num(y), num(w), num(h), fillDark)
	}
	rect(left+(100-wideWidth)/2, top, wideWidth, wideHeight)
	rect(left+(100-narrowWidth)/2, top+wideHeight, narrowWidth, narrowHeight)
	rect(left+(100-wideWidth)/2, top+wideHeight+narrowHeight, wideWidth, wideHeight)
	rect(left+(100-narrowWidth)/2, top+wideHeight+narrowHeight+wideHeight, narrowWidth, narrowHeight)

	const (
		knurlAngle   = 30.0
		knurlSpacing = 10.0
	)
	knurlHeight := wideHeight
	slant := knurlHeight * math.Tan(radians(knurlAngle))
	for x := (100 - wideWidth) / 2; x <= (100+wideWidth)/2; x += knurlSpacing {
		fmt.Fprintf(&b, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="2"/>`,
			num(x+left), num(top), num(x+left-slant), num(top+knurlHeight), fillLight)
	}
	for x := (100 - wideWidth) / 2; x <= (100+wideWidth)/2; x += knurlSpacing {
		y := top + wideHeight + narrowHeight
		fmt.Fprintf(&b, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="2"/>`,
			num(x+left), num(y), num(x+left+slant), num(y+knurlHeight), fillLight)
	}
	return frame(b.String())
}

func insertWoodSide() string {
	const d = 60.0
	const threadSpacing = 8.0
	radius := d / 2

	var threads strings.Builder
	for i := 0; i < 7; i++ {
		y := 30 + float64(i)*threadSpacing
		fmt.Fprintf(&threads, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="2"/>`,
			num(50-radius), num(y), num(50+radius), num(y-radius*0.4), fillLight)
	}
	return frame(
		fmt.Sprintf(`<rect x="%s" y="%s" width="%s" height="%s" fill="%s" />`,
			num(50-radius), num((100-d*0.7)/2), num(d), num(d*0.7), fillDark),
		fmt.Sprintf(`<path d="M %s 70 L %s 70 L %s 90 L %s 90 Z" fill="%s" />`,
			num(50-radius), num(50+radius), num(50+radius*0.7), num(50-radius*0.7), fillDark),
		threads.String(),
		fmt.Sprintf(`<rect x="45" y="25" width="10" height="15" fill="%s" />`, fillLight),
	)
}

func insertPressSide() string {
	const d = 60.0
	radius := d / 2
	height := d * 1.2
	sectionHeight := height * 0.25
	grooveSpacing := d * 0.2
	const grooves = 8

	var upper, lower strings.Builder
	for i := 0; i < grooves; i++ {
		fmt.Fprintf(&upper, `<rect x="%s" y="%s" width="2" height="%s" fill="%s"/>`,
			num(50-radius+float64(i)*grooveSpacing-grooveSpacing/3), num(100-height-sectionHeight),
			num(sectionHeight), fillLight)
		fmt.Fprintf(&lower, `<rect x="%s" y="%s" width="2" height="%s" fill="%s"/>`,
			num(50-radius+float64(i)*grooveSpacing-grooveSpacing/2), num((100-height)/2+height-sectionHeight),
			num(sectionHeight), fillLight)
	}
	return frame(
		fmt.Sprintf(`<rect x="%s" y="%s" width="%s" height="%s" fill="%s" />`,
			num(50-radius), num((100-height)/2), num(d), num(sectionHeight), fillDark),
		fmt.Sprintf(`<rect x="%s" y="%s" width="%s" height="%s" fill="%s" />`,
			num(50-radius), num((100-height)/2+height-sectionHeight), num(d), num(sectionHeight), fillDark),
		fmt.Sprintf(`<rect x="%s" y="%s" width="%s" height="%s" fill="%s" />`,
			num(50-radius*0.7), num((100-height)/2+sectionHeight), num(d*0.7), num(height-2*sectionHeight), fillDark),
		upper.String(),
		lower.String(),
	)
}

func bearingSide() string {
	const (
		outerDiameter = 80.0
		innerDiameter = 30.0
	)
	thickness := outerDiameter / 3
	return frame(
		fmt.Sprintf(`<rect x="%s" y="%s" width="%s" height="%s" fill="%s" />`,
			num((100-thickness)/2), num((100-outerDiameter)/2), num(thickness), num(outerDiameter), fillDark),
		fmt.Sprintf(`<rect x="%s" y="%s" width="%s" height="%s" fill="%s" />`,
			num((100-thickness)/2), num((100-innerDiameter)/2), num(thickness), num(innerDiameter), fillLight),
	)
}

func bearingFlangeSide() string {
	const (
		outerDiameter = 80.0
		innerDiameter = 30.0
	)
	thickness := outerDiameter / 3
	flangeDiameter := outerDiameter * 1.2
	flangeHeight := (flangeDiameter - outerDiameter) / 2
	return frame(
		fmt.Sprintf(`<rect x="%s" y="%s" width="%s" height="%s" fill="%s" />`,
			num((100-thickness)/2), num((100-outerDiameter)/2), num(thickness), num(outerDiameter), fillDark),
		fmt.Sprintf(`<rect x="%s" y="%s" width="%s" height="%s" fill="%s" />`,
			num((100-thickness)/2), num((100-flangeDiameter)/2), num(flangeHeight), num(flangeDiameter), fillDark),
		fmt.Sprintf(`<rect x="%s" y="%s" width="%s" height="%s" fill="%s" />`,
			num((100-thickness)/2), num((100-innerDiameter)/2), num(thickness), num(innerDiameter), fillLight),
	)
}

func springSide() string {
	const (
		d      = 40.0
		length = 60.0
	)
	startY := (100 - length) / 2
	endY := startY + length
	startX := (100 - d) / 2
	endX := startX + d
	const coils = 7
	spacing := d * 2 / coils

	var lines strings.Builder
	for i := 0; i < coils; i++ {
		y := startY + float64(i)*spacing
		if y+spacing > endY {
			if y < endY {
				fmt.Fprintf(&lines, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="5" />`,
					num(startX), num(y), num(endX), num(endY), fillDark)
			}
			break
		}
		fmt.Fprintf(&lines, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="5" />`,
			num(startX), num(y), num(endX), num(y+spacing), fillDark)
	}
	return frame(
		fmt.Sprintf(`<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="8" />`,
			num(startX), num(startY), num(endX), num(startY), fillDark),
		fmt.Sprintf(`<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="8" />`,
			num(startX), num(endY), num(endX), num(endY), fillDark),
		lines.String(),
	)
}
