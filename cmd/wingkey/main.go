// Package main is the entry point for the wingkey matrix scanner.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dshills/wingkey/internal/config"
	"github.com/dshills/wingkey/internal/hal"
	"github.com/dshills/wingkey/internal/hal/evdev"
	"github.com/dshills/wingkey/internal/keymap"
	"github.com/dshills/wingkey/internal/logging"
	"github.com/dshills/wingkey/internal/maintenance"
	"github.com/dshills/wingkey/internal/scan"
	"github.com/dshills/wingkey/internal/sim"
	"github.com/dshills/wingkey/internal/sink"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

type options struct {
	configPath string
	matrixMode string
	outputMode string
	logLevel   string
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	applyOverrides(&cfg, opts)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	log := logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.LogLevel),
		Output: os.Stderr,
		Prefix: "wingkey",
	})

	table := keymap.Default()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Matrix source.
	var (
		matrix    hal.Matrix
		simMatrix *hal.Sim
	)
	switch cfg.Matrix.Mode {
	case config.MatrixSim:
		simMatrix = hal.NewSim(table.Rows(), table.Cols())
		matrix = simMatrix
	case config.MatrixEvdev:
		em, err := evdev.Open(cfg.Matrix.EvdevPath, table.Rows(), table.Cols(), evdev.DefaultBinding(), log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		defer em.Close()
		go func() {
			if err := em.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error("evdev mirror: %v", err)
				cancel()
			}
		}()
		matrix = em
	}

	// Output sink.
	var out sink.Sink
	switch cfg.Output.Mode {
	case config.OutputUinput:
		kb, err := sink.NewKeyboard(cfg.Output.DeviceName, log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		defer kb.Close()
		out = kb
	default:
		out = sink.Null{}
	}

	// The simulator renders the sink trace alongside the grid.
	var events *sim.EventLog
	if simMatrix != nil {
		events = sim.NewEventLog(out, 18)
		out = events
	}

	scanner := scan.New(matrix, table, out, scan.Config{
		DebounceWindow: cfg.DebounceWindow(),
		ScanInterval:   cfg.ScanInterval(),
		Logger:         log,
	})

	// Signals force a release-all before shutdown so nothing stays
	// held on the host.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		scanner.RequestReleaseAll()
		cancel()
	}()

	// Maintenance command channel on stdin/stdout. The simulator owns
	// the terminal, so the two are mutually exclusive.
	if cfg.Maintenance.Enabled && simMatrix == nil {
		srv := maintenance.NewServer(maintenance.Config{
			Name:       "wingkey",
			Version:    version,
			Reboot:     processRebooter{cancel: cancel, log: log},
			ReleaseAll: scanner.RequestReleaseAll,
			Logger:     log,
		})
		go func() {
			if err := srv.Serve(os.Stdin, os.Stdout); err != nil {
				log.Error("maintenance channel: %v", err)
			}
		}()
	}

	scanDone := make(chan error, 1)
	go func() {
		scanDone <- scanner.Run(ctx)
	}()

	if simMatrix != nil {
		tapHold := 3*cfg.DebounceWindow() + 10*time.Millisecond
		ui := sim.New(simMatrix, table, scanner, events, tapHold)
		if err := ui.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("simulator: %v", err)
		}
		cancel()
	}

	if err := <-scanDone; err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// processRebooter maps firmware reboot commands onto the host runner:
// both variants stop the process and leave restart policy to the
// supervisor or flashing script.
type processRebooter struct {
	cancel context.CancelFunc
	log    *logging.Logger
}

func (r processRebooter) RebootBootloader() error {
	r.log.Info("bootloader reboot requested, shutting down")
	r.cancel()
	return nil
}

func (r processRebooter) RebootNormal() error {
	r.log.Info("normal reboot requested, shutting down")
	r.cancel()
	return nil
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.matrixMode, "matrix", "", "Matrix source: sim or evdev (overrides config)")
	flag.StringVar(&opts.outputMode, "output", "", "Output sink: uinput or null (overrides config)")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "wingkey - switch matrix key scanner\n\n")
		fmt.Fprintf(os.Stderr, "Usage: wingkey [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  wingkey                              Interactive simulator\n")
		fmt.Fprintf(os.Stderr, "  wingkey -matrix evdev -output uinput Mirror a real device to HID\n")
		fmt.Fprintf(os.Stderr, "  wingkey -c wingkey.toml              Run with a config file\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("wingkey %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		os.Exit(0)
	}

	return opts
}

func applyOverrides(cfg *config.Config, opts options) {
	if opts.matrixMode != "" {
		cfg.Matrix.Mode = opts.matrixMode
	}
	if opts.outputMode != "" {
		cfg.Output.Mode = opts.outputMode
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
}
