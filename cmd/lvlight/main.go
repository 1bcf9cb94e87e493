// SPDX-License-Identifier: MIT

// Command lvlight sends a polarization state through an optical train
// described in YAML, once with Jones matrices and once with Mueller
// matrices, and prints every intermediate state.
//
// Usage:
//
//	lvlight [-config train.yaml] [-init] [-v]
//
// -init writes a sample train to the config path. -v logs each step.
package main

import (
	"flag"
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"golang.org/x/term"
)

func main() {
	var (
		configPath = flag.String("config", "train.yaml", "optical train description (YAML)")
		initConfig = flag.Bool("init", false, "write a sample train to -config and exit")
		verbose    = flag.Bool("v", false, "log every propagation step")
	)
	flag.Parse()

	log := newLogger(os.Stderr, *verbose)

	if *initConfig {
		if err := InitConfig(*configPath); err != nil {
			log.Error("init failed", "path", *configPath, "err", err)
			os.Exit(1)
		}
		log.Info("config ready", "path", *configPath)
		return
	}

	cfg, err := LoadOrDefault(*configPath)
	if err != nil {
		log.Error("config", "path", *configPath, "err", err)
		os.Exit(1)
	}
	log.Debug("loaded train", "path", *configPath, "elements", len(cfg.Elements))

	if err := run(os.Stdout, cfg, log); err != nil {
		log.Error("propagation failed", "err", err)
		os.Exit(1)
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
		NoColor:    !isTerminalWriter(w),
	}))
}

// isTerminalWriter reports whether w is an *os.File attached to a terminal.
func isTerminalWriter(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}
