// Package config loads the host runner configuration: scan timing,
// output and matrix device selection, and logging. The keymap itself
// is compiled-in and deliberately absent from this file.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Output sink modes.
const (
	OutputUinput = "uinput"
	OutputNull   = "null"
)

// Matrix source modes.
const (
	MatrixSim   = "sim"
	MatrixEvdev = "evdev"
)

// Timing holds the scan timing tunables. Defaults match the reference
// board timing.
type Timing struct {
	// DebounceMillis is the debounce window in milliseconds. Zero
	// commits every raw change immediately.
	DebounceMillis int `toml:"debounce_ms"`

	// ScanIntervalMillis paces the scan loop. Zero removes pacing.
	ScanIntervalMillis int `toml:"scan_interval_ms"`
}

// Output selects and configures the output sink.
type Output struct {
	// Mode is one of "uinput" or "null".
	Mode string `toml:"mode"`

	// DeviceName names the virtual keyboard device in uinput mode.
	DeviceName string `toml:"device_name"`
}

// Matrix selects and configures the matrix source.
type Matrix struct {
	// Mode is one of "sim" or "evdev".
	Mode string `toml:"mode"`

	// EvdevPath is the input device to mirror in evdev mode, e.g.
	// /dev/input/event3.
	EvdevPath string `toml:"evdev_path"`
}

// Maintenance configures the command channel.
type Maintenance struct {
	// Enabled serves the IDENTIFY/REBOOT protocol on stdin/stdout.
	Enabled bool `toml:"enabled"`
}

// Config is the full host runner configuration.
type Config struct {
	LogLevel    string      `toml:"log_level"`
	Timing      Timing      `toml:"timing"`
	Output      Output      `toml:"output"`
	Matrix      Matrix      `toml:"matrix"`
	Maintenance Maintenance `toml:"maintenance"`
}

// Default returns the stock configuration: 5ms debounce, 1ms pacing,
// simulated matrix, null output.
func Default() Config {
	return Config{
		LogLevel: "info",
		Timing: Timing{
			DebounceMillis:     5,
			ScanIntervalMillis: 1,
		},
		Output: Output{
			Mode:       OutputNull,
			DeviceName: "wingkey",
		},
		Matrix: Matrix{
			Mode: MatrixSim,
		},
		Maintenance: Maintenance{
			Enabled: true,
		},
	}
}

// Load reads a TOML config file over the defaults. A missing file is
// not an error: an empty path or nonexistent file returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field ranges and mode names.
func (c Config) Validate() error {
	if c.Timing.DebounceMillis < 0 {
		return fmt.Errorf("timing.debounce_ms must not be negative, got %d", c.Timing.DebounceMillis)
	}
	if c.Timing.ScanIntervalMillis < 0 {
		return fmt.Errorf("timing.scan_interval_ms must not be negative, got %d", c.Timing.ScanIntervalMillis)
	}
	switch c.Output.Mode {
	case OutputUinput, OutputNull:
	default:
		return fmt.Errorf("output.mode must be %q or %q, got %q", OutputUinput, OutputNull, c.Output.Mode)
	}
	switch c.Matrix.Mode {
	case MatrixSim, MatrixEvdev:
	default:
		return fmt.Errorf("matrix.mode must be %q or %q, got %q", MatrixSim, MatrixEvdev, c.Matrix.Mode)
	}
	if c.Matrix.Mode == MatrixEvdev && c.Matrix.EvdevPath == "" {
		return fmt.Errorf("matrix.evdev_path is required in evdev mode")
	}
	return nil
}

// DebounceWindow returns the debounce window as a duration.
func (c Config) DebounceWindow() time.Duration {
	return time.Duration(c.Timing.DebounceMillis) * time.Millisecond
}

// ScanInterval returns the scan pacing as a duration.
func (c Config) ScanInterval() time.Duration {
	return time.Duration(c.Timing.ScanIntervalMillis) * time.Millisecond
}
