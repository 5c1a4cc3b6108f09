// Package config holds runtime configuration: defaults, CLI flag parsing,
// config-file/env layering, and validation.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// --- Enum types for validated string fields ---

// Mode selects what the tool does with the classified files.
type Mode string

const (
	ModeList Mode = "ls" // Report only (default).
	ModeCopy Mode = "cp" // Report, and prepare the target for a copy.
	ModeLink Mode = "ln" // Report, and prepare the target for a hard link.
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stderr is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Limits for the probe worker pool.
const (
	MinJobs = 1
	MaxJobs = 64
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// then layered with config file, environment and CLI flags by [Load] before
// being passed (by pointer) to packages that need it.
type Config struct {
	// Inputs (positional args). In cp/ln mode the target is split off.
	Files  []string
	Target string

	Mode       Mode
	ConfigFile string // Optional explicit config file (--config).

	// Probing.
	FfprobePath  string        // Default: "ffprobe" (resolved on PATH).
	ProbeTimeout time.Duration // Default: 30s per file.
	Jobs         int           // Default: 1 (sequential).
	Recursive    bool          // Expand directory inputs.

	// Display and logging.
	Dump      bool // Print the verbose per-file dump after each summary line.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with built-in defaults. Used as the base
// before config file, environment and flags are applied.
func DefaultConfig() Config {
	return Config{
		Mode:         ModeList,
		FfprobePath:  "ffprobe",
		ProbeTimeout: 30 * time.Second,
		Jobs:         1,
		ColorMode:    ColorAuto,
	}
}

// ModeForExecutable maps the executable name to its default mode, so that
// avls/avcp/avln symlinks to the same binary behave like separate tools.
func ModeForExecutable(argv0 string) Mode {
	name := strings.TrimSuffix(filepath.Base(argv0), filepath.Ext(argv0))
	switch strings.ToLower(name) {
	case "avcp":
		return ModeCopy
	case "avln":
		return ModeLink
	default:
		return ModeList
	}
}

// Validate checks enum fields and numeric ranges. When not in CheckOnly
// mode, it also requires at least one input file.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeList, ModeCopy, ModeLink:
		// valid
	default:
		return fmt.Errorf("invalid mode %q (use 'ls', 'cp' or 'ln')", c.Mode)
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}

	if c.Jobs < MinJobs || c.Jobs > MaxJobs {
		return fmt.Errorf("jobs must be between %d and %d (got %d)", MinJobs, MaxJobs, c.Jobs)
	}
	if c.ProbeTimeout <= 0 {
		return errors.New("probe timeout must be positive")
	}
	if strings.TrimSpace(c.FfprobePath) == "" {
		return errors.New("ffprobe path must not be empty")
	}

	if c.CheckOnly {
		return nil
	}
	if len(c.Files) == 0 {
		return errors.New("need at least one input file")
	}
	if c.Mode != ModeList && c.Target == "" {
		return errors.New("need a target (use --target or pass it as the last argument)")
	}
	return nil
}

// SplitTarget assigns Files and Target from the positional args. In ls mode
// every arg is an input. In cp/ln mode an explicit --target wins; otherwise
// the last positional arg is the target.
func (c *Config) SplitTarget(args []string) error {
	if c.Mode == ModeList {
		c.Files = append([]string(nil), args...)
		return nil
	}
	if c.Target != "" {
		c.Files = append([]string(nil), args...)
		return nil
	}
	if len(args) < 2 {
		return fmt.Errorf("%s mode needs at least one input and a target", c.Mode)
	}
	c.Files = append([]string(nil), args[:len(args)-1]...)
	c.Target = args[len(args)-1]
	return nil
}
