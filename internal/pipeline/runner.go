package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/backmassage/avcp/internal/config"
	"github.com/backmassage/avcp/internal/display"
	"github.com/backmassage/avcp/internal/media"
	"github.com/backmassage/avcp/internal/probe"
	"github.com/backmassage/avcp/internal/target"
	"github.com/backmassage/avcp/internal/term"
)

// Logger is the logging surface Run needs. *logging.Logger satisfies it.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(string, ...interface{})
}

// newProber builds the probe adapter for a run. Replaced in tests.
var newProber = func(cfg *config.Config) media.Prober {
	return probe.New(probe.Options{FfprobePath: cfg.FfprobePath, Timeout: cfg.ProbeTimeout})
}

// progressOut is where the batch progress bar is drawn, or nil.
var progressOut = func(cfg *config.Config) io.Writer {
	if cfg.Verbose || !term.IsTerminal(os.Stderr) {
		return nil
	}
	return os.Stderr
}

// Run is the top-level batch entry point. It prepares the target in cp/ln
// mode, expands the inputs, classifies every one of them, and writes one
// report line per input to out. Per-file failures are logged and counted;
// the returned error is reserved for problems that stop the run before any
// input is probed.
func Run(ctx context.Context, cfg *config.Config, log Logger, out io.Writer) (RunStats, error) {
	var stats RunStats

	switch {
	case cfg.Mode != config.ModeList:
		tgt, err := target.Prepare(cfg.Target)
		if err != nil {
			return stats, fmt.Errorf("target: %w", err)
		}
		for _, dir := range tgt.Created {
			log.Debug("Created %s", dir)
		}
	case cfg.Target != "":
		log.Warn("Target %s ignored in %s mode", cfg.Target, cfg.Mode)
	}

	paths, unreadable := ExpandInputs(cfg.Files, cfg.Recursive)
	if len(paths) == 0 {
		log.Warn("No inputs to classify")
		return stats, nil
	}
	log.Debug("Classifying %d inputs with %d job(s)", len(paths), cfg.Jobs)

	var builder Builder = media.NewBuilder(newProber(cfg), log)
	if len(unreadable) > 0 {
		builder = &knownFailures{Builder: builder, errs: unreadable}
	}
	batch := ProcessAll(ctx, builder, paths, Options{Jobs: cfg.Jobs, Progress: progressOut(cfg)})

	for _, d := range batch.Diagnostics {
		logDiagnostic(log, d)
	}
	for _, d := range batch.Files {
		fmt.Fprintln(out, display.SummaryLine(d))
		if cfg.Dump {
			fmt.Fprint(out, display.VerboseDump(d))
		}
	}

	logSummary(cfg, log, &batch.Stats)
	return batch.Stats, nil
}

// knownFailures reports paths that already failed during input expansion
// without building them again.
type knownFailures struct {
	Builder
	errs map[string]error
}

func (k *knownFailures) Build(ctx context.Context, path string) (*media.FileDescriptor, error) {
	if err, ok := k.errs[path]; ok {
		return &media.FileDescriptor{Name: path}, err
	}
	return k.Builder.Build(ctx, path)
}

func logDiagnostic(log Logger, d Diagnostic) {
	switch {
	case errors.Is(d.Err, context.Canceled):
		log.Warn("Skipped (interrupted): %s", d.Path)
	case media.IsPathAccess(d.Err):
		log.Error("%v", d.Err)
	default:
		log.Error("Cannot probe %s: %v", d.Path, d.Err)
	}
}

func logSummary(cfg *config.Config, log Logger, s *RunStats) {
	msg := fmt.Sprintf("%d files: %d media, %d not media, %d failed (%s)",
		s.Total, s.Media, s.NotMedia, s.Failed, s.Elapsed.Round(time.Millisecond))
	if s.OK() {
		log.Success("%s", msg)
	} else {
		log.Warn("%s", msg)
	}
	if cfg.Mode != config.ModeList {
		log.Info("%s mode: target %s ready, no file operation performed", cfg.Mode, cfg.Target)
	}
}
