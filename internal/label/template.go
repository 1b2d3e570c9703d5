package label

import (
	"fmt"
	"os"
	"path/filepath"
	"text/template"
)

// TemplateData is the variable set a label template can reference. Icon and
// QR fragments are inlined groups sized in the template's own units, so the
// template only has to position them. QRXMM pre-computes where a
// right-aligned QR group starts, since templates cannot do arithmetic.
type TemplateData struct {
	LabelWidthMM  float64
	LabelHeightMM float64
	Name          string
	Description   string
	TopIconSVG    string
	SideIconSVG   string
	IconSVG       string
	QRSVG         string
	QRSizeMM      float64
	QRXMM         float64
}

// LoadTemplate parses the label template at path.
func LoadTemplate(path string) (*template.Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template: %w", err)
	}
	tmpl, err := template.New(filepath.Base(path)).Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}
	return tmpl, nil
}
