// Command avcp classifies media files and prints one summary line per file.
//
// The executable name picks the mode: avls lists, avcp and avln also
// validate the target location. It either runs the system check (--check)
// or the probe-and-classify pipeline.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/backmassage/avcp/internal/check"
	"github.com/backmassage/avcp/internal/config"
	"github.com/backmassage/avcp/internal/logging"
	"github.com/backmassage/avcp/internal/pipeline"
	"github.com/backmassage/avcp/internal/term"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "0.1.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	name := filepath.Base(os.Args[0])

	// Bootstrap: the logger doesn't exist yet, so errors go directly to
	// stderr via fmt.
	cfg := config.DefaultConfig()
	cfg.Mode = config.ModeForExecutable(os.Args[0])

	code := 0
	cmd := config.NewCommand(&cfg, fmt.Sprintf("%s (%s)", version, commit),
		func(_ *cobra.Command, cfg *config.Config) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			code = execute(name, cfg)
			return nil
		})
	cmd.Use = name + " [flags] <file>... [target]"

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		return 1
	}
	return code
}

func execute(name string, cfg *config.Config) int {
	term.Configure(cfg.ColorMode, os.Stderr)

	log, err := logging.NewLogger(cfg, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		return 1
	}
	defer log.Close()

	if cfg.CheckOnly {
		if !check.RunCheck(cfg, log) {
			return 1
		}
		return 0
	}

	// Fail fast if ffprobe is unavailable.
	if err := check.CheckDeps(cfg); err != nil {
		log.Error("%v", err)
		return 1
	}

	// Cancel on SIGINT/SIGTERM: in-flight probes are killed and the
	// remaining inputs are reported as skipped.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, stopping…")
		cancel()
	}()

	log.Debug("%s %s (%s), mode %s, %d job(s)", name, version, commit, cfg.Mode, cfg.Jobs)
	stats, err := pipeline.Run(ctx, cfg, log, os.Stdout)
	if err != nil {
		log.Error("%v", err)
		return 1
	}
	if !stats.OK() {
		return 1
	}
	return 0
}
