package shapes

import (
	"fmt"
	"math"
	"strings"
)

func registerTop(b *registryBuilder) {
	b.add("washer_std", washerStdTop, "washer", "washer_flat")
	b.add("washer_fender", washerFenderTop, "fender")
	b.add("washer_split", washerSplitTop, "split")
	b.add("washer_star_inner", washerStarInnerTop, "star_inner")
	b.add("washer_star_outer", washerStarOuterTop, "star_outer", "star")
	b.add("nut_standard", nutStandardTop, "nut")
	b.add("nut_thin", nutThinTop, "thin_nut")
	b.add("nut_lock", nutLockTop, "nyloc")
	b.add("nut_flange", nutFlangeTop, "flange_nut")
	b.add("nut_cap", nutCapTop, "cap_nut", "acorn", "acorn_nut")
	b.add("nut_wing", nutWingTop, "wing_nut", "wing")
	// press-fit inserts look like heat-set inserts from above
	b.add("insert_heat", insertHeatTop, "heat_insert", "heat_set_insert", "hsi", "heat_set", "insert_press")
	b.add("insert_wood", insertWoodTop, "wood_insert")
	b.add("head_hex", headHexTop, "hex_head", "hex")
	b.add("head_socket", headSocketTop, "socket_head", "socket")
	b.add("head_torx", headTorxTop, "torx_head", "torx")
	b.add("head_square", headSquareTop, "square_head", "square", "robertson", "robertson_head")
	b.add("head_slotted", headSlottedTop, "slotted_head", "slotted", "flat_head", "flat")
	b.add("head_phillips", headPhillipsTop, "phillips_head", "phillips")
	b.add("head_pozidriv", headPozidrivTop, "pozidriv_head", "pozidriv", "pozi")
	b.add("bearing", bearingTop)
	b.add("spring", springTop, "coil", "coil_spring")
}

func washerTop(outerDiameter, innerDiameter float64) string {
	return frame(Annulus(outerDiameter/2, innerDiameter/2))
}

func washerStdTop() string {
	return washerTop(80, 35)
}

func washerFenderTop() string {
	return washerTop(80, 80.0/3)
}

func washerSplitTop() string {
	const d = 80.0
	outerRadius := d / 2
	innerRadius := outerRadius / 2
	const gapAngle = 20.0
	gapWidth := d / 10
	return frame(
		Annulus(outerRadius, innerRadius),
		fmt.Sprintf(`<rect x="50" y="%s" width="50" height="%s" transform="rotate(%s 50 50)" fill="%s" />`,
			num(50-gapWidth/2), num(gapWidth), num(-gapAngle), fillLight),
	)
}

func washerStarInnerTop() string {
	const d = 80.0
	outerRadius := d * 0.5
	innerRadius := outerRadius * 0.5
	teeth := Star(12, outerRadius*0.8, innerRadius*0.8)
	return frame(
		Annulus(outerRadius, innerRadius),
		fmt.Sprintf(`<path %s fill="%s"/>`, teeth, fillLight),
		fmt.Sprintf(`<circle cx="50" cy="50" r="%s" fill="%s"/>`, num(innerRadius*1.1), fillLight),
	)
}

func washerStarOuterTop() string {
	const d = 80.0
	outerRadius := d * 0.4
	innerRadius := outerRadius * 0.7
	teeth := Star(12, outerRadius*1.3, innerRadius)
	return frame(
		fmt.Sprintf(`<path %s fill="%s"/>`, teeth, fillDark),
		fmt.Sprintf(`<circle cx="50" cy="50" r="%s" fill="%s"/>`, num(outerRadius), fillDark),
		fmt.Sprintf(`<circle cx="50" cy="50" r="%s" fill="%s"/>`, num(innerRadius), fillLight),
	)
}

func nutStandardTop() string {
	return frame(HexNutTop(80, fillDark))
}

func nutThinTop() string {
	return frame(HexNutTop(80, fillDark))
}

func nutLockTop() string {
	const d = 80.0
	return frame(
		HexNutTop(d, fillDark),
		fmt.Sprintf(`<circle cx="50" cy="50" r="%s" fill="%s" />`, num(d*0.2), fillLight),
	)
}

func nutFlangeTop() string {
	const d = 80.0
	return frame(
		fmt.Sprintf(`<circle cx="50" cy="50" r="%s" fill="%s" />`, num(d*0.6), fillDark),
		HexNutTop(d*0.9, fillLight),
		HexNutTop(d*0.8, fillDark),
	)
}

func nutCapTop() string {
	const d = 80.0
	return frame(
		fmt.Sprintf(`<polygon %s fill="%s" />`, PolygonPoints(6, d, 50, 50, 0), fillDark),
		fmt.Sprintf(`<circle cx="50" cy="50" r="%s" fill="%s" />`, num(d*0.4), fillLight),
		fmt.Sprintf(`<circle cx="50" cy="50" r="%s" fill="%s" />`, num(d*0.35), fillDark),
	)
}

func nutWingTop() string {
	const d = 80.0
	wingWidth := d * 0.25
	wingHeight := d * 0.25
	const wingOffset = 0.0
	return frame(
		Annulus(d*0.4, d*0.2),
		fmt.Sprintf(`<rect x="%s" y="%s" width="%s" height="%s" transform="rotate(45 50 50)" fill="%s" />`,
			num((100-wingWidth)/2), num(wingOffset), num(wingWidth), num(wingHeight), fillDark),
		fmt.Sprintf(`<rect x="%s" y="%s" width="%s" height="%s" transform="rotate(45 50 50)" fill="%s" />`,
			num((100-wingWidth)/2), num(100-wingHeight-wingOffset), num(wingWidth), num(wingHeight), fillDark),
	)
}

func insertHeatTop() string {
	const d = 80.0
	return frame(
		fmt.Sprintf(`<path %s fill="%s" />`, Star(20, d*0.6, d*0.5), fillDark),
		fmt.Sprintf(`<circle cx="50" cy="50" r="%s" fill="%s" />`, num(d*0.2), fillLight),
	)
}

func insertWoodTop() string {
	const d = 80.0
	var teeth strings.Builder
	for i := 0; i < 12; i++ {
		fmt.Fprintf(&teeth, `<rect x="50" y="%s" width="%s" height="%s" transform="rotate(%s 50 50)" fill="%s"/>`,
			num(50+d*0.4), num(d*0.1), num(d*0.1), num(float64(i)*30), fillLight)
	}
	return frame(
		fmt.Sprintf(`<circle cx="50" cy="50" r="%s" fill="%s" />`, num(d*0.5), fillDark),
		fmt.Sprintf(`<circle cx="50" cy="50" r="%s" fill="%s" />`, num(d*0.2), fillLight),
		teeth.String(),
	)
}

func headHexTop() string {
	const d = 80.0
	flatToFlat := d * math.Sqrt(3) / 2
	return frame(
		fmt.Sprintf(`<polygon %s fill="%s" />`, PolygonPoints(6, flatToFlat, 50, 50, 30), fillDark),
	)
}

func headSocketTop() string {
	const d = 80.0
	return frame(
		fmt.Sprintf(`<circle cx="50" cy="50" r="%s" fill="%s" />`, num(d*0.5), fillDark),
		fmt.Sprintf(`<polygon %s fill="%s" />`, PolygonPoints(6, d/2, 50, 50, 0), fillLight),
	)
}

func headTorxTop() string {
	const d = 80.0
	return frame(
		fmt.Sprintf(`<circle cx="50" cy="50" r="%s" fill="%s" />`, num(d*0.5), fillDark),
		fmt.Sprintf(`<path %s fill="%s"/>`, Star(6, d*0.3, d*0.2), fillLight),
	)
}

func headSquareTop() string {
	const d = 80.0
	squareSize := d * 0.4
	return frame(
		fmt.Sprintf(`<circle cx="50" cy="50" r="%s" fill="%s" />`, num(d*0.5), fillDark),
		fmt.Sprintf(`<rect x="%s" y="%s" width="%s" height="%s" fill="%s" />`,
			num(50-squareSize/2), num(50-squareSize/2), num(squareSize), num(squareSize), fillLight),
	)
}

func headSlottedTop() string {
	const d = 80.0
	return frame(
		fmt.Sprintf(`<circle cx="50" cy="50" r="%s" fill="%s" />`, num(d*0.5), fillDark),
		Slot(75, 10, 0),
	)
}

func headPhillipsTop() string {
	const d = 80.0
	return frame(
		fmt.Sprintf(`<circle cx="50" cy="50" r="%s" fill="%s" />`, num(d*0.5), fillDark),
		Slot(75, 10, 0),
		Slot(75, 10, 90),
	)
}

func headPozidrivTop() string {
	const d = 80.0
	return frame(
		fmt.Sprintf(`<circle cx="50" cy="50" r="%s" fill="%s" />`, num(d*0.5), fillDark),
		Slot(75, 10, 0),
		Slot(75, 10, 90),
		Slot(50, 5, 45),
		Slot(50, 5, -45),
	)
}

func bearingTop() string {
	const (
		outerDiameter = 80.0
		innerDiameter = 30.0
	)
	outerRadius := outerDiameter * 0.5
	innerRadius := innerDiameter * 0.5
	return frame(
		fmt.Sprintf(`<circle cx="50" cy="50" r="%s" fill="%s" />`, num(outerRadius), fillDark),
		fmt.Sprintf(`<circle cx="50" cy="50" r="%s" fill="%s" />`, num(outerRadius*0.8), fillLight),
		fmt.Sprintf(`<circle cx="50" cy="50" r="%s" fill="%s" />`, num(innerRadius*1.2), fillDark),
		fmt.Sprintf(`<circle cx="50" cy="50" r="%s" fill="%s" />`, num(innerRadius), fillLight),
	)
}

func springTop() string {
	const d = 80.0
	return frame(
		fmt.Sprintf(`<circle cx="50" cy="50" r="%s" fill="%s" />`, num(d*0.5), fillDark),
		fmt.Sprintf(`<circle cx="50" cy="50" r="%s" fill="%s" />`, num(d*0.35), fillLight),
	)
}
