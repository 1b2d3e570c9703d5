package qr

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"testing"
)

func TestSVG_EmptyContentYieldsNothing(t *testing.T) {
	svg, size, err := SVG("", 7.7, KindMicro)
	if err != nil {
		t.Fatalf("SVG failed: %v", err)
	}
	if svg != "" || size != 0 {
		t.Fatalf("SVG(empty) = %q, %v; want empty and 0", svg, size)
	}
}

func TestSVG_UnknownKind(t *testing.T) {
	_, _, err := SVG("https://example.com", 7.7, "mega")
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("error = %v, want %v", err, ErrUnknownKind)
	}
	if !strings.Contains(err.Error(), "mega") {
		t.Fatalf("error %q does not name the kind", err)
	}
}

func TestSVG_FragmentShapeAndSize(t *testing.T) {
	tests := []struct {
		name string
		kind string
	}{
		{name: "micro", kind: KindMicro},
		{name: "standard", kind: KindStandard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svg, size, err := SVG("v.gd/abc12", 7.7, tt.kind)
			if err != nil {
				t.Fatalf("SVG failed: %v", err)
			}
			if size != 7.7 {
				t.Fatalf("size = %v, want 7.7", size)
			}
			if !strings.HasPrefix(svg, "<svg ") || !strings.HasSuffix(svg, "</svg>") {
				t.Fatalf("fragment not a self-contained svg: %q", svg)
			}
			if !strings.Contains(svg, `width="7.7mm"`) || !strings.Contains(svg, `height="7.7mm"`) {
				t.Fatalf("fragment missing mm dimensions: %q", svg)
			}
			if strings.Count(svg, "<path") != 1 {
				t.Fatalf("want exactly one path element, got %q", svg)
			}
		})
	}
}

func TestSVG_Deterministic(t *testing.T) {
	first, _, err := SVG("M3x8 SHCS", 7.7, KindStandard)
	if err != nil {
		t.Fatalf("SVG failed: %v", err)
	}
	second, _, err := SVG("M3x8 SHCS", 7.7, KindStandard)
	if err != nil {
		t.Fatalf("SVG failed: %v", err)
	}
	if first != second {
		t.Fatalf("same content produced different fragments")
	}
}

func TestSVG_MicroNeverLargerThanStandard(t *testing.T) {
	contents := []string{
		"v.gd/ab",
		"example.com/reorder/m3x8",
		"https://warehouse.example.com/part/0001?campaign=bin",
	}
	for _, content := range contents {
		t.Run(content, func(t *testing.T) {
			micro, _, err := SVG(content, 7.7, KindMicro)
			if err != nil {
				t.Fatalf("micro failed: %v", err)
			}
			standard, _, err := SVG(content, 7.7, KindStandard)
			if err != nil {
				t.Fatalf("standard failed: %v", err)
			}
			if moduleCount(t, micro) > moduleCount(t, standard) {
				t.Fatalf("micro symbol (%d modules) larger than standard (%d)",
					moduleCount(t, micro), moduleCount(t, standard))
			}
		})
	}
}

var viewBoxPattern = regexp.MustCompile(`viewBox="0 0 (\d+) (\d+)"`)

func moduleCount(t *testing.T, svg string) int {
	t.Helper()
	match := viewBoxPattern.FindStringSubmatch(svg)
	if match == nil {
		t.Fatalf("no viewBox in %q", svg)
	}
	n, err := strconv.Atoi(match[1])
	if err != nil {
		t.Fatalf("viewBox size: %v", err)
	}
	return n
}

func TestModulePath_MergesRuns(t *testing.T) {
	modules := [][]bool{
		{true, true, false, true},
		{false, false, false, false},
		{true, false, false, false},
	}
	got := modulePath(modules)
	want := "M0 0h2v1h-2zM3 0h1v1h-1zM0 2h1v1h-1z"
	if got != want {
		t.Fatalf("modulePath = %q, want %q", got, want)
	}
}
