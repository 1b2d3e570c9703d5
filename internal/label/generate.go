package label

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"text/template"

	"binlabel/internal/logging"
	"binlabel/internal/qr"
	"binlabel/internal/render"
	"binlabel/internal/shapes"
	"binlabel/internal/sheet"
)

// Shortener turns a long URL into a short one. On failure implementations
// return the input unchanged rather than an error.
type Shortener interface {
	Shorten(ctx context.Context, rawURL string) string
}

// Config carries everything a Generator needs to turn rows into label files.
type Config struct {
	Views         shapes.Views
	Template      *template.Template
	Shortener     Shortener // nil disables URL shortening
	QRKind        string
	Format        string
	OutputDir     string
	LabelWidthMM  float64
	LabelHeightMM float64
	DPI           int
}

// Generator renders one label file per spreadsheet row.
type Generator struct {
	cfg    Config
	logger *logging.Logger
}

func NewGenerator(cfg Config, logger *logging.Logger) *Generator {
	if logger == nil {
		panic("label.NewGenerator: logger must not be nil")
	}
	return &Generator{cfg: cfg, logger: logger}
}

// GenerateAll renders a label for every row and stores the generated icon, QR
// and label markup back on the rows. Unknown symbols are reported and leave
// their icon empty; any other per-row failure aborts the batch.
func (g *Generator) GenerateAll(ctx context.Context, rows []sheet.Row) error {
	if err := os.MkdirAll(g.cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	for i := range rows {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := g.generateRow(ctx, &rows[i]); err != nil {
			return fmt.Errorf("row %d (%s): %w", i+1, rows[i].Name, err)
		}
	}
	return nil
}

func (g *Generator) generateRow(ctx context.Context, row *sheet.Row) error {
	topIcon, err := g.iconFragment(g.cfg.Views.Top, row.TopSymbol, row.TopIcon, row.Name)
	if err != nil {
		return err
	}
	if row.TopIcon == "" {
		row.TopIcon = topIcon
	}
	sideIcon, err := g.iconFragment(g.cfg.Views.Side, row.SideSymbol, row.SideIcon, row.Name)
	if err != nil {
		return err
	}
	if row.SideIcon == "" {
		row.SideIcon = sideIcon
	}

	qrFragment, qrSize, err := g.qrFragment(ctx, row)
	if err != nil {
		return err
	}

	data := TemplateData{
		LabelWidthMM:  g.cfg.LabelWidthMM,
		LabelHeightMM: g.cfg.LabelHeightMM,
		Name:          row.Name,
		Description:   row.Description,
		QRSizeMM:      qrSize,
		QRXMM:         g.cfg.LabelWidthMM - qrSize,
	}
	if data.TopIconSVG, err = InlineGroup(topIcon, g.cfg.LabelHeightMM); err != nil {
		return fmt.Errorf("top icon: %w", err)
	}
	if data.SideIconSVG, err = InlineGroup(sideIcon, g.cfg.LabelHeightMM); err != nil {
		return fmt.Errorf("side icon: %w", err)
	}
	composed, err := ComposeIcons(topIcon, sideIcon)
	if err != nil {
		return err
	}
	if data.IconSVG, err = InlineGroup(composed, g.cfg.LabelHeightMM); err != nil {
		return fmt.Errorf("composed icon: %w", err)
	}
	if data.QRSVG, err = InlineGroup(qrFragment, qrSize); err != nil {
		return fmt.Errorf("qr code: %w", err)
	}

	var buf bytes.Buffer
	if err := g.cfg.Template.Execute(&buf, data); err != nil {
		return fmt.Errorf("execute template: %w", err)
	}
	doc, err := Sanitize(buf.String())
	if err != nil {
		return fmt.Errorf("filled template: %w", err)
	}
	row.Label = doc

	outPath := filepath.Join(g.cfg.OutputDir, OutputName(row.Name, row.Description, g.cfg.Format))
	if err := g.writeLabel(doc, outPath); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	g.logger.Info("generated label", logging.Field("path", outPath))
	return nil
}

// iconFragment resolves one icon cell. A pre-rendered cell wins over the
// symbol; an unregistered symbol is reported and yields an empty icon so the
// rest of the batch keeps going.
func (g *Generator) iconFragment(reg *shapes.Registry, symbol, preRendered, name string) (string, error) {
	if preRendered != "" {
		icon, err := Sanitize(preRendered)
		if err != nil {
			return "", fmt.Errorf("%s icon for %s: %w", reg.View(), name, err)
		}
		g.logger.Debug("using existing icon",
			logging.Field("view", reg.View()),
			logging.Field("part", name))
		return icon, nil
	}
	symbol = strings.ToLower(strings.TrimSpace(symbol))
	if symbol == "" {
		return "", nil
	}
	gen, ok := reg.Lookup(symbol)
	if !ok {
		g.logger.Error("icon generator not found",
			logging.Field("view", reg.View()),
			logging.Field("symbol", symbol),
			logging.Field("part", name))
		return "", nil
	}
	icon, err := Sanitize(gen())
	if err != nil {
		return "", fmt.Errorf("%s icon for %s: %w", reg.View(), name, err)
	}
	g.logger.Debug("generated icon",
		logging.Field("view", reg.View()),
		logging.Field("symbol", symbol),
		logging.Field("part", name))
	return icon, nil
}

var qrWidthMM = regexp.MustCompile(`width="([0-9.]+)mm"`)

// qrFragment resolves the QR cell for a row. Pre-rendered cells are reused
// with their own size; otherwise a code is generated from the reorder URL,
// shortened first when a micro code is wanted and a shortener is available.
func (g *Generator) qrFragment(ctx context.Context, row *sheet.Row) (string, float64, error) {
	if row.QRSVG != "" {
		fragment, err := Sanitize(row.QRSVG)
		if err != nil {
			return "", 0, fmt.Errorf("qr code for %s: %w", row.Name, err)
		}
		g.logger.Debug("using existing qr code", logging.Field("part", row.Name))
		return fragment, qrCellSize(fragment, g.cfg.LabelHeightMM), nil
	}

	content := row.ReorderURL
	if content != "" && g.cfg.QRKind == qr.KindMicro && g.cfg.Shortener != nil {
		content = g.cfg.Shortener.Shorten(ctx, content)
	}
	fragment, size, err := qr.SVG(content, g.cfg.LabelHeightMM, g.cfg.QRKind)
	if err != nil {
		return "", 0, fmt.Errorf("qr code for %s: %w", row.Name, err)
	}
	if fragment != "" {
		row.QRSVG = fragment
		g.logger.Debug("generated qr code",
			logging.Field("part", row.Name),
			logging.Field("content", content))
	}
	return fragment, size, nil
}

// qrCellSize reads the physical size out of a pre-rendered QR fragment,
// falling back when the fragment does not carry mm dimensions.
func qrCellSize(fragment string, fallback float64) float64 {
	if m := qrWidthMM.FindStringSubmatch(fragment); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil && v > 0 {
			return v
		}
	}
	return fallback
}

func (g *Generator) writeLabel(doc, path string) error {
	switch g.cfg.Format {
	case "svg":
		return os.WriteFile(path, []byte(doc), 0o644)
	case "png":
		width := render.MMToPx(g.cfg.LabelWidthMM, g.cfg.DPI)
		height := render.MMToPx(g.cfg.LabelHeightMM, g.cfg.DPI)
		return render.WritePNG(doc, path, width, height)
	case "pdf":
		return render.WritePDF(doc, path, g.cfg.LabelWidthMM, g.cfg.LabelHeightMM, g.cfg.DPI)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, g.cfg.Format)
	}
}

// OutputName derives the label filename for a part. Slashes become dashes
// and spaces underscores so names stay shell and filesystem friendly.
func OutputName(name, description, format string) string {
	return mangle(name) + "+" + mangle(description) + "." + format
}

func mangle(s string) string {
	s = strings.ReplaceAll(s, "/", "-")
	return strings.ReplaceAll(s, " ", "_")
}
