package telemetry

import (
	"log/slog"

	"github.com/pthm-cable/critters/components"
)

// DeathRecord describes one critter removed from the arena.
type DeathRecord struct {
	Tick   int32   `csv:"tick"`
	ID     uint32  `csv:"critter_id"`
	Cause  string  `csv:"cause"`
	Age    int32   `csv:"age"`
	MaxAge int32   `csv:"max_age"`
	Energy float64 `csv:"energy"`
	Size   float64 `csv:"size"`
	Speed  float64 `csv:"speed"`
}

// NewDeathRecord builds a record from a dead critter's components.
func NewDeathRecord(tick int32, c components.Critter, life components.Lifecycle, energy components.Energy, body components.Body) DeathRecord {
	return DeathRecord{
		Tick:   tick,
		ID:     c.ID,
		Cause:  life.Cause.String(),
		Age:    life.Age,
		MaxAge: life.MaxAge,
		Energy: energy.Value,
		Size:   body.Size,
		Speed:  c.Speed,
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (d DeathRecord) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("tick", int(d.Tick)),
		slog.Uint64("id", uint64(d.ID)),
		slog.String("cause", d.Cause),
		slog.Int("age", int(d.Age)),
		slog.Float64("energy", d.Energy),
		slog.Float64("size", d.Size),
		slog.Float64("speed", d.Speed),
	)
}
