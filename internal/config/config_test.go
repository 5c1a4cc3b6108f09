package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeForExecutable(t *testing.T) {
	tests := []struct {
		argv0 string
		want  Mode
	}{
		{"avls", ModeList},
		{"/usr/local/bin/avls", ModeList},
		{"avcp", ModeCopy},
		{"./AVCP", ModeCopy},
		{"/opt/bin/avln", ModeLink},
		{"avln.exe", ModeLink},
		{"something-else", ModeList},
		{"", ModeList},
	}
	for _, tt := range tests {
		t.Run(tt.argv0, func(t *testing.T) {
			if got := ModeForExecutable(tt.argv0); got != tt.want {
				t.Errorf("ModeForExecutable(%q) = %q, want %q", tt.argv0, got, tt.want)
			}
		})
	}
}

func TestValidate_Mode(t *testing.T) {
	tests := []struct {
		name    string
		mode    Mode
		wantErr bool
	}{
		{"ls is valid", ModeList, false},
		{"cp is valid", ModeCopy, false},
		{"ln is valid", ModeLink, false},
		{"empty is invalid", "", true},
		{"mv is invalid", "mv", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.CheckOnly = true
			cfg.Mode = tt.mode
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_ColorMode(t *testing.T) {
	tests := []struct {
		name    string
		mode    ColorMode
		wantErr bool
	}{
		{"auto", ColorAuto, false},
		{"always", ColorAlways, false},
		{"never", ColorNever, false},
		{"empty", "", true},
		{"rainbow", "rainbow", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.CheckOnly = true
			cfg.ColorMode = tt.mode
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_Ranges(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"jobs at max", func(c *Config) { c.Jobs = MaxJobs }, false},
		{"jobs zero", func(c *Config) { c.Jobs = 0 }, true},
		{"jobs above max", func(c *Config) { c.Jobs = MaxJobs + 1 }, true},
		{"zero timeout", func(c *Config) { c.ProbeTimeout = 0 }, true},
		{"blank ffprobe", func(c *Config) { c.FfprobePath = "  " }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.CheckOnly = true
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_RequiresInputsAndTarget(t *testing.T) {
	cfg := DefaultConfig()
	assert.Error(t, cfg.Validate(), "no files")

	cfg.Files = []string{"a.mkv"}
	assert.NoError(t, cfg.Validate())

	cfg.Mode = ModeCopy
	assert.Error(t, cfg.Validate(), "cp without target")

	cfg.Target = "/tmp/out.mkv"
	assert.NoError(t, cfg.Validate())
}

func TestSplitTarget(t *testing.T) {
	tests := []struct {
		name       string
		mode       Mode
		target     string
		args       []string
		wantFiles  []string
		wantTarget string
		wantErr    bool
	}{
		{"ls takes every arg", ModeList, "", []string{"a", "b"}, []string{"a", "b"}, "", false},
		{"cp last arg is target", ModeCopy, "", []string{"a", "b", "dst"}, []string{"a", "b"}, "dst", false},
		{"ln explicit target", ModeLink, "dst", []string{"a", "b"}, []string{"a", "b"}, "dst", false},
		{"cp single arg", ModeCopy, "", []string{"a"}, nil, "", true},
		{"cp no args", ModeCopy, "", nil, nil, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Mode = tt.mode
			cfg.Target = tt.target
			err := cfg.SplitTarget(tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFiles, cfg.Files)
			assert.Equal(t, tt.wantTarget, cfg.Target)
		})
	}
}

// execute runs the root command with args and returns the resulting config.
func execute(t *testing.T, mode Mode, args ...string) (*Config, error) {
	t.Helper()
	// Keep the user's real config dir out of the test.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Mode = mode
	var got *Config
	cmd := NewCommand(&cfg, "test", func(_ *cobra.Command, c *Config) error {
		got = c
		return nil
	})
	cmd.SetArgs(args)
	cmd.SetOut(os.Stderr)
	err := cmd.Execute()
	return got, err
}

func TestNewCommand_Defaults(t *testing.T) {
	cfg, err := execute(t, ModeList, "a.mkv", "b.mp4")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, ModeList, cfg.Mode)
	assert.Equal(t, []string{"a.mkv", "b.mp4"}, cfg.Files)
	assert.Equal(t, 1, cfg.Jobs)
	assert.Equal(t, 30*time.Second, cfg.ProbeTimeout)
	assert.Equal(t, "ffprobe", cfg.FfprobePath)
	assert.Equal(t, ColorAuto, cfg.ColorMode)
	assert.False(t, cfg.Dump)
}

func TestNewCommand_Flags(t *testing.T) {
	cfg, err := execute(t, ModeCopy,
		"-j", "4", "--timeout", "5s", "--dump", "-r", "--no-color", "-v",
		"a.mkv", "b.mkv", "out.mkv")
	require.NoError(t, err)

	assert.Equal(t, ModeCopy, cfg.Mode)
	assert.Equal(t, []string{"a.mkv", "b.mkv"}, cfg.Files)
	assert.Equal(t, "out.mkv", cfg.Target)
	assert.Equal(t, 4, cfg.Jobs)
	assert.Equal(t, 5*time.Second, cfg.ProbeTimeout)
	assert.True(t, cfg.Dump)
	assert.True(t, cfg.Recursive)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, ColorNever, cfg.ColorMode)
}

func TestNewCommand_LinkFlagOverridesMode(t *testing.T) {
	cfg, err := execute(t, ModeCopy, "--link", "-t", "dst", "a.mkv")
	require.NoError(t, err)
	assert.Equal(t, ModeLink, cfg.Mode)
	assert.Equal(t, "dst", cfg.Target)
	assert.Equal(t, []string{"a.mkv"}, cfg.Files)
}

func TestNewCommand_EnvOverridesDefaultButNotFlag(t *testing.T) {
	t.Setenv("AVCP_JOBS", "8")
	t.Setenv("AVCP_FFPROBE", "/opt/ffmpeg/bin/ffprobe")

	cfg, err := execute(t, ModeList, "a.mkv")
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Jobs)
	assert.Equal(t, "/opt/ffmpeg/bin/ffprobe", cfg.FfprobePath)

	cfg, err = execute(t, ModeList, "-j", "2", "a.mkv")
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Jobs)
}

func TestNewCommand_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "avcp.yaml")
	body := "jobs: 6\ntimeout: 90s\ndump: true\ncolor: always\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := execute(t, ModeList, "--config", path, "--color", "never", "a.mkv")
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Jobs)
	assert.Equal(t, 90*time.Second, cfg.ProbeTimeout)
	assert.True(t, cfg.Dump)
	assert.Equal(t, ColorNever, cfg.ColorMode, "flag beats config file")
	assert.Equal(t, path, cfg.ConfigFile)
}

func TestNewCommand_MissingExplicitConfig(t *testing.T) {
	_, err := execute(t, ModeList, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "a.mkv")
	assert.Error(t, err)
}

func TestNewCommand_CpNeedsTarget(t *testing.T) {
	_, err := execute(t, ModeCopy, "only-one.mkv")
	assert.Error(t, err)
}

func TestNewCommand_TargetInListModeIsKept(t *testing.T) {
	cfg, err := execute(t, ModeList, "-t", "out.mkv", "a.mkv")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.mkv"}, cfg.Files)
	assert.Equal(t, "out.mkv", cfg.Target)

	c := DefaultConfig()
	cmd := NewCommand(&c, "test", func(*cobra.Command, *Config) error { return nil })
	assert.Contains(t, cmd.Flags().Lookup("target").Usage, "ignored with a warning in ls mode")
}
