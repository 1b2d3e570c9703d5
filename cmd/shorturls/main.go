// Command shorturls fills the short_url column of a parts spreadsheet by
// running every reorder URL through the shortener, so label generation can
// later run fully offline.
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
	"binlabel/internal/logging"
	"binlabel/internal/sheet"
	"binlabel/internal/shorten"
)

type options struct {
	Quiet         bool   `short:"q" long:"quiet" env:"BINLABEL_QUIET" description:"Suppress non-error output"`
	Verbose       []bool `short:"v" long:"verbose" description:"Increase verbosity (-v per-row detail, -vv debug)"`
	ShortURLCache string `long:"short-url-cache" env:"BINLABEL_SHORT_URL_CACHE" description:"SQLite file caching shortened URLs (empty disables the cache)"`

	Args struct {
		InputFile  string `positional-arg-name:"input-file" required:"yes" description:"Parts spreadsheet with a reorder_url column"`
		OutputFile string `positional-arg-name:"output-file" description:"Destination file (default: rewrite input in place)"`
	} `positional-args:"yes" required:"yes"`
}

func main() {
	ctx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		var flagErr *flags.Error
		if errors.As(err, &flagErr) && flagErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if opts.Args.OutputFile == "" {
		opts.Args.OutputFile = opts.Args.InputFile
	}

	logger := logging.New(config.VerbosityLevel(opts.Quiet, len(opts.Verbose)))

	if err := run(ctx, opts, logger); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Warn("interrupted")
		} else {
			logger.Error("url shortening failed", logging.Field("error", err))
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, logger *logging.Logger) error {
	rows, err := sheet.Parse(opts.Args.InputFile)
	if err != nil {
		return fmt.Errorf("parse %s: %w", opts.Args.InputFile, err)
	}

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
	client := shorten.New(nil, cache, logger)

	shortened, skipped := 0, 0
	for i := range rows {
		if err := ctx.Err(); err != nil {
			return err
		}
		raw := rows[i].ReorderURL
		if !shorten.IsURL(raw) {
			rows[i].ShortURL = ""
			skipped++
			if raw != "" {
				logger.Verbose("skipping row without a web url", logging.Field("name", rows[i].Name))
			}
			continue
		}
		// Shorten falls back to its input on failure, so an unchanged URL
		// means nothing usable came back.
		short := client.Shorten(ctx, raw)
		if short == raw {
			rows[i].ShortURL = ""
			skipped++
			continue
		}
		rows[i].ShortURL = short
		shortened++
	}

	if err := sheet.Write(opts.Args.OutputFile, rows); err != nil {
		return fmt.Errorf("write %s: %w", opts.Args.OutputFile, err)
	}
	logger.Info("short urls written",
		logging.Field("path", opts.Args.OutputFile),
		logging.Field("shortened", shortened),
		logging.Field("skipped", skipped))
	return nil
}
