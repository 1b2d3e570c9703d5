// Package qr renders QR codes as self-contained SVG fragments sized in
// millimeters, ready to drop into a label template.
package qr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// Encoding profiles. Micro favors the smallest printable symbol and uses the
// lowest error correction level; the label pipeline additionally shortens
// URLs before encoding them with this profile. Standard encodes content
// as-is at medium error correction.
const (
	KindMicro    = "micro"
	KindStandard = "standard"
)

var ErrUnknownKind = errors.New("unknown qr kind")

// SVG encodes content as a QR symbol and returns an <svg> fragment whose
// width and height are sizeMM millimeters, along with the symbol's side
// length in millimeters. Empty content yields an empty fragment and size 0.
// The fragment carries no quiet-zone border; the label supplies its margins.
func SVG(content string, sizeMM float64, kind string) (string, float64, error) {
	if content == "" {
		return "", 0, nil
	}
	level, err := recoveryLevel(kind)
	if err != nil {
		return "", 0, err
	}

	code, err := qrcode.New(content, level)
	if err != nil {
		return "", 0, fmt.Errorf("encode qr: %w", err)
	}
	code.DisableBorder = true

	modules := code.Bitmap()
	n := len(modules)
	mm := strconv.FormatFloat(sizeMM, 'f', -1, 64)
	return fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="%smm" height="%smm" viewBox="0 0 %d %d"><path d="%s" fill="#000000"/></svg>`,
		mm, mm, n, n, modulePath(modules),
	), sizeMM, nil
}

func recoveryLevel(kind string) (qrcode.RecoveryLevel, error) {
	switch kind {
	case KindMicro:
		return qrcode.Low, nil
	case KindStandard:
		return qrcode.Medium, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

// modulePath emits one subpath per horizontal run of dark modules, one
// module unit high each.
func modulePath(modules [][]bool) string {
	var path strings.Builder
	for y, row := range modules {
		for x := 0; x < len(row); {
			if !row[x] {
				x++
				continue
			}
			run := 0
			for x+run < len(row) && row[x+run] {
				run++
			}
			fmt.Fprintf(&path, "M%d %dh%dv1h-%dz", x, y, run, run)
			x += run
		}
	}
	return path.String()
}
