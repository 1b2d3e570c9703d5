package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	flags "github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"

	"binlabel/internal/logging"
)

// Options is the label generator's CLI surface. Label stock defaults target
// a Brother P710BT on 9mm tape; 7.7mm is the printable height.
type Options struct {
	Format        string  `long:"format" choice:"png" choice:"pdf" choice:"svg" default:"png" env:"BINLABEL_FORMAT" description:"Output file format"`
	QRType        string  `long:"qr-type" choice:"micro" choice:"standard" default:"micro" env:"BINLABEL_QR_TYPE" description:"QR profile: micro shortens URLs and drops error correction to keep codes small"`
	Quiet         bool    `short:"q" long:"quiet" env:"BINLABEL_QUIET" description:"Suppress non-error output"`
	Verbose       []bool  `short:"v" long:"verbose" description:"Increase verbosity (-v per-row detail, -vv debug)"`
	Export        bool    `long:"export" env:"BINLABEL_EXPORT" description:"Write generated icon and label columns back to the parts file"`
	Watch         bool    `long:"watch" env:"BINLABEL_WATCH" description:"Stay running and regenerate when the parts file or template changes"`
	DPI           int     `long:"dpi" default:"150" env:"BINLABEL_DPI" description:"Print resolution for png and pdf output"`
	LabelWidthMM  float64 `long:"label-width" default:"36" env:"BINLABEL_LABEL_WIDTH" description:"Label width in millimeters"`
	LabelHeightMM float64 `long:"label-height" default:"7.7" env:"BINLABEL_LABEL_HEIGHT" description:"Label height in millimeters"`
	ShortURLCache string  `long:"short-url-cache" env:"BINLABEL_SHORT_URL_CACHE" description:"SQLite file caching shortened URLs (empty disables the cache)"`
	NoShorten     bool    `long:"no-shorten" env:"BINLABEL_NO_SHORTEN" description:"Skip URL shortening even for micro QR codes"`

	Args struct {
		PartsFile    string `positional-arg-name:"parts-file" description:"Parts spreadsheet (default: parts.csv)"`
		TemplateFile string `positional-arg-name:"template-file" description:"Label template SVG (default: template.svg)"`
		OutputDir    string `positional-arg-name:"output-dir" description:"Output directory (default: output)"`
	} `positional-args:"yes"`
}

func ParseOptions() (Options, error) {
	_ = godotenv.Load()
	opts := Options{}
	if _, err := flags.Parse(&opts); err != nil {
		return Options{}, err
	}
	return withDefaults(opts), nil
}

func withDefaults(opts Options) Options {
	if opts.Args.PartsFile == "" {
		opts.Args.PartsFile = "parts.csv"
	}
	if opts.Args.TemplateFile == "" {
		opts.Args.TemplateFile = "template.svg"
	}
	if opts.Args.OutputDir == "" {
		opts.Args.OutputDir = "output"
	}
	return opts
}

// LogLevel maps the quiet/verbose flags onto the logger's level tiers.
func (o Options) LogLevel() slog.Level {
	return VerbosityLevel(o.Quiet, len(o.Verbose))
}

// VerbosityLevel resolves quiet and a counted -v into a threshold. Quiet wins
// over any verbosity; two or more -v mean full debug.
func VerbosityLevel(quiet bool, verbose int) slog.Level {
	if quiet {
		return slog.LevelError
	}
	switch {
	case verbose <= 0:
		return slog.LevelInfo
	case verbose == 1:
		return logging.LevelVerbose
	default:
		return slog.LevelDebug
	}
}

// ValidateInputs checks everything generation depends on before any file is
// touched: both input files must exist and the raster knobs must be sane.
func ValidateInputs(opts Options) error {
	if !fileExists(opts.Args.PartsFile) {
		return fmt.Errorf("parts file %q does not exist", opts.Args.PartsFile)
	}
	if !fileExists(opts.Args.TemplateFile) {
		return fmt.Errorf("template file %q does not exist", opts.Args.TemplateFile)
	}
	if opts.DPI <= 0 {
		return fmt.Errorf("dpi must be positive, got %d", opts.DPI)
	}
	if opts.LabelWidthMM <= 0 || opts.LabelHeightMM <= 0 {
		return errors.New("label dimensions must be positive")
	}
	// Exporting rewrites the parts file, which watch mode would pick up as
	// another change and regenerate forever.
	if opts.Watch && opts.Export {
		return errors.New("watch mode cannot be combined with export")
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
