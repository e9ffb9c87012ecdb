package telemetry

import (
	"time"

	"github.com/pthm-cable/critters/components"
)

// Snapshot is the live state sampled when a window is flushed.
type Snapshot struct {
	Food     int
	Ages     []float64
	Energies []float64
}

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	windowTicks int32
	step        time.Duration

	windowStartTick int32

	// Event counters for current window
	starvationDeaths int
	oldAgeDeaths     int
	matings          int
	foodEaten        int
	foodEnergy       float64
	foodSpawned      int
}

// NewCollector creates a new stats collector.
// windowTicks: how many ticks each window spans (at least 1)
// step: simulated duration of one tick, used for sim_time
func NewCollector(windowTicks int32, step time.Duration) *Collector {
	return &Collector{
		windowTicks: max(windowTicks, 1),
		step:        step,
	}
}

// RecordDeath records a death event.
func (c *Collector) RecordDeath(cause components.DeathCause) {
	switch cause {
	case components.CauseStarvation:
		c.starvationDeaths++
	case components.CauseOldAge:
		c.oldAgeDeaths++
	}
}

// RecordMating records a mate pairing.
func (c *Collector) RecordMating() {
	c.matings++
}

// RecordFoodEaten records a consumed food item and the energy it delivered.
func (c *Collector) RecordFoodEaten(energy float64) {
	c.foodEaten++
	c.foodEnergy += energy
}

// RecordFoodSpawned records n food items entering the arena.
func (c *Collector) RecordFoodSpawned(n int) {
	c.foodSpawned += n
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowTicks
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int32, snap Snapshot, agg *Aggregator) WindowStats {
	pop := ComputePopulation(snap.Ages)
	mean, p10, p50, p90 := ComputeEnergyStats(snap.Energies)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      (time.Duration(currentTick) * c.step).Seconds(),

		Critters: pop.Count,
		Food:     snap.Food,
		AvgAge:   pop.AvgAge,
		MaxAge:   pop.MaxAge,

		EnergyMean: mean,
		EnergyP10:  p10,
		EnergyP50:  p50,
		EnergyP90:  p90,

		StarvationDeaths: c.starvationDeaths,
		OldAgeDeaths:     c.oldAgeDeaths,
		Matings:          c.matings,
		FoodEaten:        c.foodEaten,
		FoodEnergy:       c.foodEnergy,
		FoodSpawned:      c.foodSpawned,
	}
	if agg != nil {
		stats.TotalStarvation = agg.Starvation()
		stats.TotalOldAge = agg.OldAge()
	}

	c.windowStartTick = currentTick
	c.starvationDeaths = 0
	c.oldAgeDeaths = 0
	c.matings = 0
	c.foodEaten = 0
	c.foodEnergy = 0
	c.foodSpawned = 0

	return stats
}

// WindowTicks returns the number of ticks per window.
func (c *Collector) WindowTicks() int32 {
	return c.windowTicks
}
