package game

import (
	"log/slog"

	"github.com/pthm-cable/critters/telemetry"
)

// flushTelemetry emits a stats window when one has elapsed.
func (s *Simulation) flushTelemetry() {
	if !s.collector.ShouldFlush(s.tick) {
		return
	}

	stats := s.collector.Flush(s.tick, s.sampleWindow(), s.aggregator)

	if s.logStats {
		stats.LogStats()
	}

	if s.outputManager != nil {
		if err := s.outputManager.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
	}
}

// sampleWindow gathers ages and energies of the live critters.
func (s *Simulation) sampleWindow() telemetry.Snapshot {
	snap := telemetry.Snapshot{Food: s.FoodCount()}

	query := s.critterFilter.Query()
	for query.Next() {
		_, _, _, energy, life, _ := query.Get()
		snap.Ages = append(snap.Ages, float64(life.Age))
		snap.Energies = append(snap.Energies, energy.Value)
	}
	return snap
}
