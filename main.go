package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	flags "github.com/jessevdk/go-flags"

	"binlabel/internal/config"
	"binlabel/internal/label"
	"binlabel/internal/logging"
	"binlabel/internal/shapes"
	"binlabel/internal/sheet"
	"binlabel/internal/shorten"
	"binlabel/internal/watch"
)

var BuildVersion = "dev"

func main() {
	rootCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	opts, err := config.ParseOptions()
	if err != nil {
		var flagErr *flags.Error
		if errors.As(err, &flagErr) && flagErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := logging.New(opts.LogLevel())
	logger.Debug("starting label generator", logging.Field("version", BuildVersion))

	if err := config.ValidateInputs(opts); err != nil {
		logger.Error("invalid configuration", logging.Field("error", err))
		os.Exit(2)
	}

	lock, lockedByOther, lockErr := acquireRunLock(opts.Args.OutputDir)
	if lockErr != nil {
		logger.Error("failed to initialize run lock", logging.Field("error", lockErr))
		os.Exit(2)
	}
	if lockedByOther {
		logger.Error("another run is already writing to this output directory",
			logging.Field("output_dir", opts.Args.OutputDir))
		os.Exit(1)
	}
	defer func() {
		_ = lock.Release()
	}()

	if err := run(rootCtx, opts, logger); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Warn("interrupted")
		} else {
			logger.Error("label generation failed", logging.Field("error", err))
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, opts config.Options, logger *logging.Logger) error {
	views, err := shapes.BuildViews()
	if err != nil {
		return fmt.Errorf("build icon catalog: %w", err)
	}

	var shortener label.Shortener
	if !opts.NoShorten {
		var cache *shorten.Cache
		if opts.ShortURLCache != "" {
			cache, err = shorten.OpenCache(opts.ShortURLCache)
			if err != nil {
				logger.Warn("short url cache unavailable", logging.Field("error", err))
				cache = nil
			} else {
				defer func() { _ = cache.Close() }()
			}
		}
		shortener = shorten.New(nil, cache, logger)
	}

	generate := func(ctx context.Context) error {
		return generateOnce(ctx, opts, views, shortener, logger)
	}

	if err := generate(ctx); err != nil {
		if !opts.Watch {
			return err
		}
		// Watch mode keeps running on a bad generation; the next edit may
		// fix the input that broke it.
		logger.Error("generation failed", logging.Field("error", err))
	}
	if !opts.Watch {
		return nil
	}

	watcher := watch.New(watch.Options{
		Paths: []string{opts.Args.PartsFile, opts.Args.TemplateFile},
	}, logger, generate)
	return watcher.RunContext(ctx)
}

// generateOnce runs one full pass: parse the parts file, render every label,
// and write the generated columns back when exporting. The parts file and
// template are re-read each pass so watch mode picks up edits to either.
func generateOnce(ctx context.Context, opts config.Options, views shapes.Views, shortener label.Shortener, logger *logging.Logger) error {
	rows, err := sheet.Parse(opts.Args.PartsFile)
	if err != nil {
		return fmt.Errorf("parse parts file: %w", err)
	}
	tmpl, err := label.LoadTemplate(opts.Args.TemplateFile)
	if err != nil {
		return err
	}

	gen := label.NewGenerator(label.Config{
		Views:         views,
		Template:      tmpl,
		Shortener:     shortener,
		QRKind:        opts.QRType,
		Format:        opts.Format,
		OutputDir:     opts.Args.OutputDir,
		LabelWidthMM:  opts.LabelWidthMM,
		LabelHeightMM: opts.LabelHeightMM,
		DPI:           opts.DPI,
	}, logger)
	if err := gen.GenerateAll(ctx, rows); err != nil {
		return err
	}
	logger.Info("labels generated",
		logging.Field("count", len(rows)),
		logging.Field("output_dir", opts.Args.OutputDir))

	if opts.Export {
		if err := sheet.Write(opts.Args.PartsFile, rows); err != nil {
			return fmt.Errorf("export parts file: %w", err)
		}
		logger.Info("exported generated columns", logging.Field("path", opts.Args.PartsFile))
	}
	return nil
}
