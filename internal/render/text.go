package render

import (
	"fmt"
	"image"
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// oksvg skips text elements, so label text is drawn onto the raster after
// the shapes. Spans must carry x, y and font-size attributes in user units;
// the Go fonts stand in for whatever a browser would pick.
var (
	textSpan    = regexp.MustCompile(`<text\b([^>]*)>([^<]*)</text>`)
	rootViewBox = regexp.MustCompile(`viewBox="([^"]+)"`)

	attrX      = regexp.MustCompile(`\bx="(-?[0-9.]+)"`)
	attrY      = regexp.MustCompile(`\by="(-?[0-9.]+)"`)
	attrSize   = regexp.MustCompile(`font-size="([0-9.]+)"`)
	attrWeight = regexp.MustCompile(`font-weight="(?:bold|[5-9]00)"`)
)

var (
	fontRegular = mustFont(goregular.TTF)
	fontBold    = mustFont(gobold.TTF)
)

func mustFont(ttf []byte) *sfnt.Font {
	f, err := opentype.Parse(ttf)
	if err != nil {
		panic("render: parse embedded font: " + err.Error())
	}
	return f
}

var entityReplacer = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
	"&amp;", "&",
)

type textLine struct {
	x, y, size float64
	bold       bool
	content    string
}

func parseTextLines(svg string) []textLine {
	var lines []textLine
	for _, m := range textSpan.FindAllStringSubmatch(svg, -1) {
		attrs, content := m[1], m[2]
		if strings.TrimSpace(content) == "" {
			continue
		}
		x, okX := attrFloat(attrX, attrs)
		y, okY := attrFloat(attrY, attrs)
		size, okSize := attrFloat(attrSize, attrs)
		if !okX || !okY || !okSize || size <= 0 {
			continue
		}
		lines = append(lines, textLine{
			x:       x,
			y:       y,
			size:    size,
			bold:    attrWeight.MatchString(attrs),
			content: entityReplacer.Replace(content),
		})
	}
	return lines
}

func attrFloat(re *regexp.Regexp, attrs string) (float64, bool) {
	m := re.FindStringSubmatch(attrs)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// drawText renders every text span onto img, scaling coordinates from the
// root viewBox to the raster size. The y attribute is the text baseline,
// which matches how the font drawer places glyphs.
func drawText(img *image.RGBA, svg string, width, height int) error {
	lines := parseTextLines(svg)
	if len(lines) == 0 {
		return nil
	}
	minX, minY, scaleX, scaleY, err := viewBoxScale(svg, width, height)
	if err != nil {
		return err
	}

	for _, line := range lines {
		src := fontRegular
		if line.bold {
			src = fontBold
		}
		face, err := opentype.NewFace(src, &opentype.FaceOptions{
			Size:    line.size * scaleY,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return fmt.Errorf("build font face: %w", err)
		}
		drawer := font.Drawer{
			Dst:  img,
			Src:  image.Black,
			Face: face,
			Dot: fixed.Point26_6{
				X: fixed.Int26_6(math.Round((line.x - minX) * scaleX * 64)),
				Y: fixed.Int26_6(math.Round((line.y - minY) * scaleY * 64)),
			},
		}
		drawer.DrawString(line.content)
		face.Close()
	}
	return nil
}

func viewBoxScale(svg string, width, height int) (minX, minY, scaleX, scaleY float64, err error) {
	m := rootViewBox.FindStringSubmatch(svg)
	if m == nil {
		return 0, 0, 0, 0, fmt.Errorf("text spans need a root viewBox to place them")
	}
	fields := strings.Fields(m[1])
	if len(fields) != 4 {
		return 0, 0, 0, 0, fmt.Errorf("malformed viewBox %q", m[1])
	}
	vals := make([]float64, 4)
	for i, field := range fields {
		if vals[i], err = strconv.ParseFloat(field, 64); err != nil {
			return 0, 0, 0, 0, fmt.Errorf("malformed viewBox %q", m[1])
		}
	}
	if vals[2] <= 0 || vals[3] <= 0 {
		return 0, 0, 0, 0, fmt.Errorf("malformed viewBox %q", m[1])
	}
	return vals[0], vals[1], float64(width) / vals[2], float64(height) / vals[3], nil
}
