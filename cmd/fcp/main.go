// Command fcp performs a verified buffered file copy, with optional
// destination compression, bandwidth limiting and a terminal user
// interface.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
)

//nolint:gochecknoglobals
var (
	ExitCode = 0
	Version  string

	configPath = flag.String("config", "", "read configuration from this env-style file")
	uiEnabled  = flag.Bool("ui", true, "enable the UI")
	verify     = flag.Bool("verify", true, "re-read and checksum the destination")
	compress   = flag.String("compress", "", "destination compression (none, gzip, lz4)")
	limitMBps  = flag.Int("limit", 0, "bandwidth limit in MiB/s (0 for unlimited)")
	bufferSize = flag.Int("buffer", 0, "transfer buffer size in bytes (0 for optimal)")
)

func setupLogging() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stdout, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
		}),
	))
}

func setupUILogging(wr *TeaLogWriter) {
	slog.SetDefault(slog.New(
		tint.NewHandler(wr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: time.Kitchen,
			NoColor:    true,
		}),
	))
}

func setupSignalHandlers(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		<-sigChan
		cancel()
	}()
}

// applyFlags merges explicitly set command-line flags over the file
// configuration.
func applyFlags(cfg *Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "ui":
			cfg.UIEnabled = *uiEnabled
		case "verify":
			cfg.Verify = *verify
		case "compress":
			cfg.Compress = *compress
		case "limit":
			cfg.LimitMBps = *limitMBps
		case "buffer":
			cfg.BufferSize = *bufferSize
		}
	})
}

func main() {
	defer func() {
		os.Exit(ExitCode)
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flag.Parse()
	setupLogging()
	setupSignalHandlers(cancel)

	args := flag.Args()
	if len(args) != 2 { //nolint:mnd
		slog.Error("Startup failure.", "err", ErrUsage)
		ExitCode = 1

		return
	}
	srcPath, dstPath := args[0], args[1]

	cfg, err := NewConfigHandler(&GodotenvProvider{}).Load(*configPath)
	if err != nil {
		slog.Error("Startup failure.", "err", err)
		ExitCode = 1

		return
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		slog.Error("Startup failure.", "err", err)
		ExitCode = 1

		return
	}

	var uiHandler *UIHandler
	if cfg.UIEnabled {
		uiHandler = NewUIHandler(ctx, cancel, srcPath, dstPath)
		setupUILogging(uiHandler.LogWriter)
	}

	app := NewApp(cfg, NewCopier(cfg), uiHandler, srcPath, dstPath)
	err = app.Launch(ctx)
	if cfg.UIEnabled {
		setupLogging()
	}
	if err != nil {
		slog.Error("Transfer failure.", "err", err)
		ExitCode = 1
	}
}
