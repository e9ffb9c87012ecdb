package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/critters/components"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Population at window end
	Critters int     `csv:"critters"`
	Food     int     `csv:"food"`
	AvgAge   float64 `csv:"avg_age"`
	MaxAge   int32   `csv:"max_age"`

	// Energy distribution (sampled at window end)
	EnergyMean float64 `csv:"energy_mean"`
	EnergyP10  float64 `csv:"energy_p10"`
	EnergyP50  float64 `csv:"energy_p50"`
	EnergyP90  float64 `csv:"energy_p90"`

	// Events during window
	StarvationDeaths int     `csv:"starvation_deaths"`
	OldAgeDeaths     int     `csv:"old_age_deaths"`
	Matings          int     `csv:"matings"`
	FoodEaten        int     `csv:"food_eaten"`
	FoodEnergy       float64 `csv:"food_energy"`
	FoodSpawned      int     `csv:"food_spawned"`

	// Cumulative since start
	TotalStarvation int `csv:"total_starvation"`
	TotalOldAge     int `csv:"total_old_age"`
}

// Population summarises the live critters.
type Population struct {
	Count  int
	AvgAge float64
	MaxAge int32
}

// ComputePopulation calculates count, mean age and oldest age.
// Returns the zero value for an empty population.
func ComputePopulation(ages []float64) Population {
	if len(ages) == 0 {
		return Population{}
	}
	return Population{
		Count:  len(ages),
		AvgAge: stat.Mean(ages, nil),
		MaxAge: int32(floats.Max(ages)),
	}
}

// Percentile returns the empirical p-quantile of a sorted slice.
// p is clamped to [0, 1]. Returns 0 if the slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	p = max(0, min(1, p))
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}

// ComputeEnergyStats calculates mean and percentiles from energy values.
func ComputeEnergyStats(values []float64) (mean, p10, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	p10 = Percentile(sorted, 0.10)
	p50 = Percentile(sorted, 0.50)
	p90 = Percentile(sorted, 0.90)

	return mean, p10, p50, p90
}

// Aggregator counts deaths by cause over the lifetime of one run.
type Aggregator struct {
	starvation int
	oldAge     int
}

// NewAggregator creates an aggregator with zeroed counters.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// RecordDeath increments the counter for cause. CauseNone is ignored.
func (a *Aggregator) RecordDeath(cause components.DeathCause) {
	switch cause {
	case components.CauseStarvation:
		a.starvation++
	case components.CauseOldAge:
		a.oldAge++
	}
}

// Starvation returns the number of critters that ran out of energy.
func (a *Aggregator) Starvation() int { return a.starvation }

// OldAge returns the number of critters that reached their maximum age.
func (a *Aggregator) OldAge() int { return a.oldAge }

// Total returns all recorded deaths.
func (a *Aggregator) Total() int { return a.starvation + a.oldAge }

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("critters", s.Critters),
		slog.Int("food", s.Food),
		slog.Float64("avg_age", s.AvgAge),
		slog.Int("max_age", int(s.MaxAge)),
		slog.Float64("energy_mean", s.EnergyMean),
		slog.Float64("energy_p10", s.EnergyP10),
		slog.Float64("energy_p50", s.EnergyP50),
		slog.Float64("energy_p90", s.EnergyP90),
		slog.Int("starvation_deaths", s.StarvationDeaths),
		slog.Int("old_age_deaths", s.OldAgeDeaths),
		slog.Int("matings", s.Matings),
		slog.Int("food_eaten", s.FoodEaten),
		slog.Float64("food_energy", s.FoodEnergy),
		slog.Int("food_spawned", s.FoodSpawned),
		slog.Int("total_starvation", s.TotalStarvation),
		slog.Int("total_old_age", s.TotalOldAge),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
