package telemetry

import (
	"math"
	"testing"

	"github.com/pthm-cable/critters/components"
)

func TestPercentile(t *testing.T) {
	tests := []struct {
		name   string
		sorted []float64
		p      float64
		want   float64
	}{
		{"empty slice", []float64{}, 0.5, 0},
		{"single element", []float64{5.0}, 0.5, 5.0},
		{"p0", []float64{1, 2, 3, 4, 5}, 0.0, 1.0},
		{"p100", []float64{1, 2, 3, 4, 5}, 1.0, 5.0},
		{"p50 odd", []float64{1, 2, 3, 4, 5}, 0.5, 3.0},
		{"p10", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.1, 1.0},
		{"p90", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.9, 9.0},
		{"clamped above", []float64{1, 2, 3}, 1.5, 3.0},
		{"clamped below", []float64{1, 2, 3}, -1, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percentile(tt.sorted, tt.p)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("Percentile(%v, %v) = %v, want %v", tt.sorted, tt.p, got, tt.want)
			}
		})
	}
}

func TestComputeEnergyStats(t *testing.T) {
	values := []float64{1.0, 0.9, 0.8, 0.7, 0.6, 0.5, 0.4, 0.3, 0.2, 0.1}
	mean, p10, p50, p90 := ComputeEnergyStats(values)

	if math.Abs(mean-0.55) > 0.001 {
		t.Errorf("mean = %v, want 0.55", mean)
	}
	if math.Abs(p10-0.1) > 0.001 {
		t.Errorf("p10 = %v, want 0.1", p10)
	}
	if math.Abs(p50-0.5) > 0.001 {
		t.Errorf("p50 = %v, want 0.5", p50)
	}
	if math.Abs(p90-0.9) > 0.001 {
		t.Errorf("p90 = %v, want 0.9", p90)
	}
	if values[0] != 1.0 {
		t.Error("input slice should not be reordered")
	}
}

func TestComputeEnergyStatsEmpty(t *testing.T) {
	mean, p10, p50, p90 := ComputeEnergyStats([]float64{})

	if mean != 0 || p10 != 0 || p50 != 0 || p90 != 0 {
		t.Error("empty slice should return all zeros")
	}
}

func TestComputePopulation(t *testing.T) {
	pop := ComputePopulation([]float64{10, 20, 60})
	if pop.Count != 3 || math.Abs(pop.AvgAge-30) > 1e-9 || pop.MaxAge != 60 {
		t.Errorf("pop = %+v, want count=3 avg=30 max=60", pop)
	}

	if empty := ComputePopulation(nil); empty != (Population{}) {
		t.Errorf("empty population = %+v, want zero value", empty)
	}
}

func TestAggregator(t *testing.T) {
	agg := NewAggregator()
	agg.RecordDeath(components.CauseStarvation)
	agg.RecordDeath(components.CauseOldAge)
	agg.RecordDeath(components.CauseStarvation)
	agg.RecordDeath(components.CauseNone)

	if agg.Starvation() != 2 || agg.OldAge() != 1 || agg.Total() != 3 {
		t.Errorf("counters = starvation %d, old age %d, total %d; want 2, 1, 3",
			agg.Starvation(), agg.OldAge(), agg.Total())
	}
}
