package label

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	svgOpenTag  = regexp.MustCompile(`(?s)<svg\b[^>]*>`)
	viewBoxAttr = regexp.MustCompile(`viewBox="([^"]+)"`)
	widthAttr   = regexp.MustCompile(`width="([0-9.]+)[a-z%]*"`)
	heightAttr  = regexp.MustCompile(`height="([0-9.]+)[a-z%]*"`)
)

// viewBox is the coordinate frame of a standalone SVG fragment.
type viewBox struct {
	X, Y, W, H float64
}

// splitFragment separates a standalone SVG fragment into its inner markup
// and coordinate frame. Fragments without a viewBox fall back to their
// width and height attributes.
func splitFragment(fragment string) (string, viewBox, error) {
	loc := svgOpenTag.FindStringIndex(fragment)
	if loc == nil {
		return "", viewBox{}, fmt.Errorf("%w: no svg element", ErrInvalidSVG)
	}
	end := strings.LastIndex(fragment, "</svg>")
	if end < loc[1] {
		return "", viewBox{}, fmt.Errorf("%w: unterminated svg element", ErrInvalidSVG)
	}
	openTag := fragment[loc[0]:loc[1]]
	inner := fragment[loc[1]:end]

	var box viewBox
	if m := viewBoxAttr.FindStringSubmatch(openTag); m != nil {
		fields := strings.Fields(m[1])
		if len(fields) != 4 {
			return "", viewBox{}, fmt.Errorf("%w: malformed viewBox %q", ErrInvalidSVG, m[1])
		}
		vals := make([]float64, 4)
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return "", viewBox{}, fmt.Errorf("%w: malformed viewBox %q", ErrInvalidSVG, m[1])
			}
			vals[i] = v
		}
		box = viewBox{X: vals[0], Y: vals[1], W: vals[2], H: vals[3]}
	} else {
		w := widthAttr.FindStringSubmatch(openTag)
		h := heightAttr.FindStringSubmatch(openTag)
		if w == nil || h == nil {
			return "", viewBox{}, fmt.Errorf("%w: no viewBox or dimensions", ErrInvalidSVG)
		}
		box.W, _ = strconv.ParseFloat(w[1], 64)
		box.H, _ = strconv.ParseFloat(h[1], 64)
	}
	if box.W <= 0 || box.H <= 0 {
		return "", viewBox{}, fmt.Errorf("%w: zero-size viewBox", ErrInvalidSVG)
	}
	return inner, box, nil
}

// InlineGroup converts a standalone SVG fragment into a plain group whose
// artwork spans height units tall with its top-left corner at the origin.
// Templates position these groups with their own transforms, so the
// rasterizer never has to deal with nested svg elements.
func InlineGroup(fragment string, height float64) (string, error) {
	if fragment == "" {
		return "", nil
	}
	inner, box, err := splitFragment(fragment)
	if err != nil {
		return "", err
	}
	transform := fmt.Sprintf("scale(%s)", num(height/box.H))
	if box.X != 0 || box.Y != 0 {
		transform += fmt.Sprintf(" translate(%s %s)", num(-box.X), num(-box.Y))
	}
	return fmt.Sprintf(`<g transform=%q>%s</g>`, transform, inner), nil
}

// ComposeIcons merges top and side view icons into a single fragment, top
// view on the left. With only one icon present that fragment is returned
// untouched.
func ComposeIcons(top, side string) (string, error) {
	if top == "" && side == "" {
		return "", nil
	}
	if side == "" {
		return top, nil
	}
	if top == "" {
		return side, nil
	}
	topInner, topBox, err := splitFragment(top)
	if err != nil {
		return "", fmt.Errorf("top icon: %w", err)
	}
	sideInner, sideBox, err := splitFragment(side)
	if err != nil {
		return "", fmt.Errorf("side icon: %w", err)
	}
	var b strings.Builder
	b.WriteString(`<svg width="200" height="100" viewBox="0 0 200 100">`)
	b.WriteString(composeGroup(topInner, topBox, 0))
	b.WriteString(composeGroup(sideInner, sideBox, 100))
	b.WriteString(`</svg>`)
	return b.String(), nil
}

// composeGroup places one icon into a 100x100 cell at the given x offset.
func composeGroup(inner string, box viewBox, offsetX float64) string {
	transform := fmt.Sprintf("translate(%s 0)", num(offsetX))
	if scale := 100 / box.H; scale != 1 {
		transform += fmt.Sprintf(" scale(%s)", num(scale))
	}
	if box.X != 0 || box.Y != 0 {
		transform += fmt.Sprintf(" translate(%s %s)", num(-box.X), num(-box.Y))
	}
	return fmt.Sprintf(`<g transform=%q>%s</g>`, transform, inner)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
