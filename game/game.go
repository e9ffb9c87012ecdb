// Package game runs the critter population: seeding, the per-tick update,
// food respawn and death bookkeeping.
package game

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/critters/components"
	"github.com/pthm-cable/critters/config"
	"github.com/pthm-cable/critters/systems"
	"github.com/pthm-cable/critters/telemetry"
)

// Options configures a Simulation beyond the config file.
type Options struct {
	Seed      uint64 // RNG seed
	Clock     Clock  // nil uses a TickClock at screen.target_fps
	OutputDir string // empty disables CSV output
	LogStats  bool   // log each telemetry window
}

// Simulation owns the live critters and food and advances them one tick at a time.
type Simulation struct {
	cfg   *config.Config
	world *ecs.World
	rng   *rand.Rand
	clock Clock
	mover systems.Mover

	critterMapper *ecs.Map6[
		components.Position,
		components.Heading,
		components.Body,
		components.Energy,
		components.Lifecycle,
		components.Critter,
	]
	critterFilter *ecs.Filter6[
		components.Position,
		components.Heading,
		components.Body,
		components.Energy,
		components.Lifecycle,
		components.Critter,
	]
	foodMapper *ecs.Map3[components.Position, components.Body, components.Food]
	foodFilter *ecs.Filter3[components.Position, components.Body, components.Food]

	// Individual component mappers for lookups
	posMap     *ecs.Map1[components.Position]
	headingMap *ecs.Map1[components.Heading]
	bodyMap    *ecs.Map1[components.Body]
	energyMap  *ecs.Map1[components.Energy]
	lifeMap    *ecs.Map1[components.Lifecycle]
	critterMap *ecs.Map1[components.Critter]
	foodMap    *ecs.Map1[components.Food]

	// Statistics
	aggregator    *telemetry.Aggregator
	collector     *telemetry.Collector
	outputManager *telemetry.OutputManager
	logStats      bool

	// State
	tick          int32
	nextID        uint32
	nextFoodID    uint32
	nextFoodSpawn time.Duration
	width, height float64
}

// New creates a simulation and seeds the initial critters and food.
func New(cfg *config.Config, opts Options) (*Simulation, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil config")
	}
	mover, err := systems.NewMover(cfg.Critter.Movement)
	if err != nil {
		return nil, err
	}

	step := StepForFPS(cfg.Screen.TargetFPS)
	clock := opts.Clock
	if clock == nil {
		clock = TickClock{Step: step}
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := om.WriteConfig(cfg); err != nil {
		om.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	world := ecs.NewWorld()
	w, h := cfg.Arena()

	s := &Simulation{
		cfg:   cfg,
		world: world,
		rng:   rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15)),
		clock: clock,
		mover: mover,
		critterMapper: ecs.NewMap6[
			components.Position,
			components.Heading,
			components.Body,
			components.Energy,
			components.Lifecycle,
			components.Critter,
		](world),
		critterFilter: ecs.NewFilter6[
			components.Position,
			components.Heading,
			components.Body,
			components.Energy,
			components.Lifecycle,
			components.Critter,
		](world),
		foodMapper: ecs.NewMap3[components.Position, components.Body, components.Food](world),
		foodFilter: ecs.NewFilter3[components.Position, components.Body, components.Food](world),
		posMap:     ecs.NewMap1[components.Position](world),
		headingMap: ecs.NewMap1[components.Heading](world),
		bodyMap:    ecs.NewMap1[components.Body](world),
		energyMap:  ecs.NewMap1[components.Energy](world),
		lifeMap:    ecs.NewMap1[components.Lifecycle](world),
		critterMap: ecs.NewMap1[components.Critter](world),
		foodMap:    ecs.NewMap1[components.Food](world),

		aggregator:    telemetry.NewAggregator(),
		collector:     telemetry.NewCollector(cfg.Telemetry.WindowTicks, step),
		outputManager: om,
		logStats:      opts.LogStats,

		nextFoodSpawn: secondsToDuration(cfg.Food.RespawnInterval),
		width:         w,
		height:        h,
	}

	s.seedPopulation()

	slog.Info("simulation_seeded",
		"seed", opts.Seed,
		"critters", s.CritterCount(),
		"food", s.FoodCount(),
		"arena_w", w,
		"arena_h", h,
	)

	return s, nil
}

// Close flushes and closes any output files.
func (s *Simulation) Close() error {
	return s.outputManager.Close()
}

// Tick returns the number of completed ticks.
func (s *Simulation) Tick() int32 {
	return s.tick
}

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() *config.Config {
	return s.cfg
}

// Aggregator returns the death-cause counters.
func (s *Simulation) Aggregator() *telemetry.Aggregator {
	return s.aggregator
}

// OutputDir returns the CSV output directory, or "" when disabled.
func (s *Simulation) OutputDir() string {
	return s.outputManager.Dir()
}

func secondsToDuration(sec float64) time.Duration {
	return time.Duration(sec * float64(time.Second))
}
