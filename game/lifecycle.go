package game

import (
	"log/slog"

	"github.com/pthm-cable/critters/telemetry"
)

// removeDead records and removes critters that died this tick.
// It runs after every critter has been stepped, outside any query.
func (s *Simulation) removeDead(dead []entry) {
	if len(dead) == 0 {
		return
	}

	records := make([]telemetry.DeathRecord, 0, len(dead))
	for _, d := range dead {
		if !s.world.Alive(d.entity) {
			continue
		}
		life := s.lifeMap.Get(d.entity)
		rec := telemetry.NewDeathRecord(s.tick,
			*s.critterMap.Get(d.entity),
			*life,
			*s.energyMap.Get(d.entity),
			*s.bodyMap.Get(d.entity),
		)

		s.aggregator.RecordDeath(life.Cause)
		s.collector.RecordDeath(life.Cause)
		slog.Debug("critter_died", "death", rec)

		records = append(records, rec)
		s.world.RemoveEntity(d.entity)
	}

	if err := s.outputManager.WriteDeaths(records); err != nil {
		slog.Error("failed to write deaths", "error", err)
	}
}
