package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"binlabel/internal/logging"
)

func TestVerbosityLevel_MapsFlagsToTiers(t *testing.T) {
	tests := []struct {
		name    string
		quiet   bool
		verbose int
		want    slog.Level
	}{
		{name: "default is info", quiet: false, verbose: 0, want: slog.LevelInfo},
		{name: "single v", quiet: false, verbose: 1, want: logging.LevelVerbose},
		{name: "double v", quiet: false, verbose: 2, want: slog.LevelDebug},
		{name: "triple v stays debug", quiet: false, verbose: 3, want: slog.LevelDebug},
		{name: "quiet", quiet: true, verbose: 0, want: slog.LevelError},
		{name: "quiet wins over verbose", quiet: true, verbose: 2, want: slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VerbosityLevel(tt.quiet, tt.verbose)
			if got != tt.want {
				t.Fatalf("VerbosityLevel(%v, %d) = %v, want %v", tt.quiet, tt.verbose, got, tt.want)
			}
		})
	}
}

func TestWithDefaults_FillsMissingPositionals(t *testing.T) {
	opts := withDefaults(Options{})
	if opts.Args.PartsFile != "parts.csv" {
		t.Fatalf("PartsFile = %q, want %q", opts.Args.PartsFile, "parts.csv")
	}
	if opts.Args.TemplateFile != "template.svg" {
		t.Fatalf("TemplateFile = %q, want %q", opts.Args.TemplateFile, "template.svg")
	}
	if opts.Args.OutputDir != "output" {
		t.Fatalf("OutputDir = %q, want %q", opts.Args.OutputDir, "output")
	}
}

func TestWithDefaults_KeepsExplicitPaths(t *testing.T) {
	in := Options{}
	in.Args.PartsFile = "inventory.xlsx"
	in.Args.TemplateFile = "wide.svg"
	in.Args.OutputDir = "out/labels"

	opts := withDefaults(in)
	if opts.Args.PartsFile != "inventory.xlsx" || opts.Args.TemplateFile != "wide.svg" || opts.Args.OutputDir != "out/labels" {
		t.Fatalf("explicit paths were overwritten: %+v", opts.Args)
	}
}

func TestValidateInputs(t *testing.T) {
	dir := t.TempDir()
	parts := filepath.Join(dir, "parts.csv")
	template := filepath.Join(dir, "template.svg")
	if err := os.WriteFile(parts, []byte("name,description\n"), 0o644); err != nil {
		t.Fatalf("write parts: %v", err)
	}
	if err := os.WriteFile(template, []byte("<svg/>"), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	valid := Options{DPI: 150, LabelWidthMM: 36, LabelHeightMM: 7.7}
	valid.Args.PartsFile = parts
	valid.Args.TemplateFile = template

	tests := []struct {
		name     string
		mutate   func(o Options) Options
		wantErr  bool
		contains string
	}{
		{name: "all good", mutate: func(o Options) Options { return o }, wantErr: false},
		{
			name: "missing parts file",
			mutate: func(o Options) Options {
				o.Args.PartsFile = filepath.Join(dir, "nope.csv")
				return o
			},
			wantErr:  true,
			contains: "parts file",
		},
		{
			name: "missing template file",
			mutate: func(o Options) Options {
				o.Args.TemplateFile = filepath.Join(dir, "nope.svg")
				return o
			},
			wantErr:  true,
			contains: "template file",
		},
		{
			name: "parts path is a directory",
			mutate: func(o Options) Options {
				o.Args.PartsFile = dir
				return o
			},
			wantErr:  true,
			contains: "parts file",
		},
		{
			name:     "zero dpi",
			mutate:   func(o Options) Options { o.DPI = 0; return o },
			wantErr:  true,
			contains: "dpi",
		},
		{
			name:     "negative label height",
			mutate:   func(o Options) Options { o.LabelHeightMM = -1; return o },
			wantErr:  true,
			contains: "label dimensions",
		},
		{
			name:     "watch with export",
			mutate:   func(o Options) Options { o.Watch = true; o.Export = true; return o },
			wantErr:  true,
			contains: "watch mode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInputs(tt.mutate(valid))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				if !strings.Contains(err.Error(), tt.contains) {
					t.Fatalf("error %q does not mention %q", err, tt.contains)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateInputs failed: %v", err)
			}
		})
	}
}
