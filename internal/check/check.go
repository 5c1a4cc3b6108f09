// Package check provides system diagnostics (--check mode) and pre-run
// dependency validation (CheckDeps) for ffprobe.
package check

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/backmassage/avcp/internal/config"
)

// Sentinel errors returned by CheckDeps.
var (
	ErrFfprobeNotFound = errors.New("ffprobe not found on PATH")
	ErrFfprobeUnusable = errors.New("ffprobe found but -version failed")
)

// Logger is the minimal logging interface needed by RunCheck.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// Decoders the classifier has canonical values for. RunCheck reports which
// of them the local ffprobe build can decode.
var classifiedDecoders = []string{
	"hevc", "h264", "mpeg4", "mpeg2video",
	"mp3", "aac", "ac3", "eac3", "dts", "truehd",
}

const versionTimeout = 10 * time.Second

// runOutput runs a command and returns its stdout. Replaced in tests.
var runOutput = func(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

var lookPath = exec.LookPath

// CheckDeps verifies that the configured ffprobe resolves and runs.
func CheckDeps(cfg *config.Config) error {
	if _, err := lookPath(cfg.FfprobePath); err != nil {
		return fmt.Errorf("%w: %s", ErrFfprobeNotFound, cfg.FfprobePath)
	}
	ctx, cancel := context.WithTimeout(context.Background(), versionTimeout)
	defer cancel()
	if _, err := runOutput(ctx, cfg.FfprobePath, "-version"); err != nil {
		return fmt.Errorf("%w: %v", ErrFfprobeUnusable, err)
	}
	return nil
}

// RunCheck runs the --check flow: ffprobe location and version, decoder
// support for the classified codecs, and the effective settings. It returns
// false when ffprobe is unusable; missing decoders only warn.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== System Check ===")

	path, err := lookPath(cfg.FfprobePath)
	if err != nil {
		log.Error("ffprobe not found (%s)", cfg.FfprobePath)
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), versionTimeout)
	defer cancel()

	out, err := runOutput(ctx, path, "-version")
	if err != nil {
		log.Error("ffprobe found at %s but -version failed: %v", path, err)
		return false
	}
	log.Success("ffprobe: %s (%s)", firstLine(string(out)), path)

	checkDecoders(ctx, path, log)

	log.Info("Probe timeout: %s, jobs: %d", cfg.ProbeTimeout, cfg.Jobs)
	if cfg.ConfigFile != "" {
		log.Info("Config file: %s", cfg.ConfigFile)
	}
	return true
}

func checkDecoders(ctx context.Context, ffprobe string, log Logger) {
	out, err := runOutput(ctx, ffprobe, "-hide_banner", "-decoders")
	if err != nil {
		log.Warn("Could not list decoders: %v", err)
		return
	}
	have := parseDecoders(string(out))
	var missing []string
	for _, name := range classifiedDecoders {
		if !have[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		log.Success("All classified codecs are decodable")
		return
	}
	log.Warn("Decoders missing: %s", strings.Join(missing, ", "))
}

// parseDecoders extracts decoder names from `ffprobe -decoders` output.
// Entries look like " V....D h264                 H.264 / AVC ...", after a
// legend that ends with a " ------" line.
func parseDecoders(out string) map[string]bool {
	names := make(map[string]bool)
	inList := false
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if !inList {
			inList = strings.HasPrefix(fields[0], "---")
			continue
		}
		if len(fields) >= 2 {
			names[fields[1]] = true
		}
	}
	return names
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.Index(s, "\n"); idx > 0 {
		return s[:idx]
	}
	return s
}
