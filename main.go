package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/pthm-cable/critters/config"
	"github.com/pthm-cable/critters/game"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Uint64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	stepsPerUpdate := flag.Int("steps-per-update", 1, "Simulation ticks per update call (higher = faster runs)")

	flag.Parse()

	// Load config before anything else; no window opens on failure
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	closeLog, err := setupLogging(cfg.Logging, cfg.Derived.LogLevel)
	if err != nil {
		slog.Error("failed to set up logging", "error", err)
		os.Exit(1)
	}
	defer closeLog()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = uint64(time.Now().UnixNano())
	}

	opts := game.Options{
		Seed:      rngSeed,
		OutputDir: *outputDir,
		LogStats:  *logStats,
	}

	if *headless {
		err = runHeadless(cfg, opts, *maxTicks, *stepsPerUpdate)
	} else {
		err = runWindow(cfg, opts, *maxTicks, *stepsPerUpdate)
	}
	if err != nil {
		slog.Error("simulation failed", "error", err)
		os.Exit(1)
	}
}

// setupLogging installs a JSON slog handler writing to stdout or, when
// configured, appending to a log file.
func setupLogging(cfg config.LoggingConfig, level slog.Level) (func(), error) {
	var w io.Writer = os.Stdout
	closeFn := func() {}

	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return closeFn, nil
}

// runHeadless advances the simulation on the tick clock without opening a window.
func runHeadless(cfg *config.Config, opts game.Options, maxTicks, stepsPerUpdate int) error {
	opts.Clock = game.TickClock{Step: game.StepForFPS(cfg.Screen.TargetFPS)}
	sim, err := game.New(cfg, opts)
	if err != nil {
		return err
	}
	defer sim.Close()

	slog.Info("starting headless simulation",
		"seed", opts.Seed,
		"max_ticks", maxTicks,
		"steps_per_update", stepsPerUpdate,
		"output_dir", sim.OutputDir(),
	)

	for {
		for i := 0; i < max(stepsPerUpdate, 1); i++ {
			sim.Advance()
		}

		if maxTicks > 0 && int(sim.Tick()) >= maxTicks {
			stats := sim.Stats()
			slog.Info("max_ticks_reached",
				"tick", stats.Tick,
				"critters", stats.Critters,
				"starvation", stats.Starvation,
				"old_age", stats.OldAge,
			)
			return nil
		}
		if sim.CritterCount() == 0 {
			slog.Info("population_extinct", "tick", sim.Tick())
			return nil
		}
	}
}
