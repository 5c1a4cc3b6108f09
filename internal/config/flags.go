package config

// This file implements the cobra command, flag definitions, and the viper
// layering: built-in defaults < config file < AVCP_* environment < flags.

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides (e.g. AVCP_JOBS=4).
const EnvPrefix = "AVCP"

// Viper keys. Each bound flag has the same name as its key.
const (
	keyMode      = "mode"
	keyTarget    = "target"
	keyJobs      = "jobs"
	keyTimeout   = "timeout"
	keyFfprobe   = "ffprobe"
	keyRecursive = "recursive"
	keyDump      = "dump"
	keyVerbose   = "verbose"
	keyColor     = "color"
	keyLog       = "log"
)

// RunFunc is invoked once flags, config file and environment have been
// merged into cfg and positional args have been split into inputs/target.
type RunFunc func(cmd *cobra.Command, cfg *Config) error

// NewCommand builds the root command. cfg must hold the defaults (usually
// [DefaultConfig] with Mode from [ModeForExecutable]); it is filled in place.
func NewCommand(cfg *Config, version string, run RunFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "avcp [flags] <file>... [target]",
		Short: "Classify media files and report their container, video and audio properties",
		Long: "avcp probes each input with ffprobe, normalizes the reported codec, profile,\n" +
			"scan type, frame rate, channel layout and language into canonical values,\n" +
			"and prints a one-line summary per file. Invoked as avls it only lists;\n" +
			"as avcp/avln it also validates (and creates) the target location.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := Load(viper.New(), cmd.Flags(), cfg); err != nil {
				return err
			}
			if err := cfg.SplitTarget(args); err != nil {
				return err
			}
			return run(cmd, cfg)
		},
	}
	defineFlags(cmd.Flags(), cfg)
	return cmd
}

func defineFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringP("target", "t", "", "Destination file (cp/ln modes; default: last argument; ignored with a warning in ls mode)")
	fs.BoolP("link", "l", false, "Hard-link the files instead of copying them")
	fs.StringP("config", "c", "", "Config file (yaml, toml or json)")
	fs.IntP("jobs", "j", cfg.Jobs, "Number of files probed in parallel")
	fs.Duration("timeout", cfg.ProbeTimeout, "Per-file probe timeout")
	fs.String("ffprobe", cfg.FfprobePath, "ffprobe binary name or path")
	fs.BoolP("recursive", "r", false, "Descend into directory arguments")
	fs.Bool("dump", false, "Print a detailed block after each summary line")
	fs.BoolP("verbose", "v", false, "Verbose diagnostics")
	fs.String("color", string(cfg.ColorMode), "Colored diagnostics: auto | always | never")
	fs.Bool("no-color", false, "Same as --color=never")
	fs.String("log", "", "Append diagnostics to file")
	fs.Bool("check", false, "Run system diagnostics and exit")
}

// Load merges defaults from cfg, the config file, AVCP_* environment
// variables and the parsed flags in fs, and writes the result back to cfg.
func Load(v *viper.Viper, fs *pflag.FlagSet, cfg *Config) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(keyMode, string(cfg.Mode))
	v.SetDefault(keyTarget, cfg.Target)
	v.SetDefault(keyJobs, cfg.Jobs)
	v.SetDefault(keyTimeout, cfg.ProbeTimeout)
	v.SetDefault(keyFfprobe, cfg.FfprobePath)
	v.SetDefault(keyRecursive, cfg.Recursive)
	v.SetDefault(keyDump, cfg.Dump)
	v.SetDefault(keyVerbose, cfg.Verbose)
	v.SetDefault(keyColor, string(cfg.ColorMode))
	v.SetDefault(keyLog, cfg.LogFile)

	for _, key := range []string{keyTarget, keyJobs, keyTimeout, keyFfprobe, keyRecursive, keyDump, keyVerbose, keyColor, keyLog} {
		if f := fs.Lookup(key); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind flag %q: %w", key, err)
			}
		}
	}

	configFile, _ := fs.GetString("config")
	if err := readConfigFile(v, configFile); err != nil {
		return err
	}

	cfg.ConfigFile = v.ConfigFileUsed()
	cfg.Mode = Mode(strings.ToLower(v.GetString(keyMode)))
	cfg.Target = v.GetString(keyTarget)
	cfg.Jobs = v.GetInt(keyJobs)
	cfg.ProbeTimeout = v.GetDuration(keyTimeout)
	cfg.FfprobePath = v.GetString(keyFfprobe)
	cfg.Recursive = v.GetBool(keyRecursive)
	cfg.Dump = v.GetBool(keyDump)
	cfg.Verbose = v.GetBool(keyVerbose)
	cfg.ColorMode = ColorMode(strings.ToLower(v.GetString(keyColor)))

	logFile, err := homedir.Expand(v.GetString(keyLog))
	if err != nil {
		return fmt.Errorf("log path: %w", err)
	}
	cfg.LogFile = logFile

	// Flag-only switches: not meaningful in a config file.
	if link, _ := fs.GetBool("link"); link {
		cfg.Mode = ModeLink
	}
	if noColor, _ := fs.GetBool("no-color"); noColor {
		cfg.ColorMode = ColorNever
	}
	if check, _ := fs.GetBool("check"); check {
		cfg.CheckOnly = true
	}
	return nil
}

// readConfigFile reads an explicit config file, or looks for
// <user config dir>/avcp/config.{yaml,toml,json}. A missing default file is
// not an error; a missing explicit file is.
func readConfigFile(v *viper.Viper, explicit string) error {
	if explicit != "" {
		path, err := homedir.Expand(explicit)
		if err != nil {
			return fmt.Errorf("config path: %w", err)
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %q: %w", path, err)
		}
		return nil
	}

	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "avcp"))
	}
	v.SetConfigName("config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}
