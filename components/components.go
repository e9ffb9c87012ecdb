// Package components defines ECS components for the simulation.
package components

// Position is the top-left corner of an entity's bounding square.
type Position struct {
	X, Y float64
}

// Heading is the direction of travel in radians.
type Heading struct {
	Angle float64
}

// Body holds the edge length of an entity's bounding square.
type Body struct {
	Size float64
}

// Center returns the centre of a square of the given size anchored at p.
func (p Position) Center(size float64) (x, y float64) {
	return p.X + size/2, p.Y + size/2
}

// Energy tracks a critter's metabolic state.
type Energy struct {
	Value   float64
	Initial float64 // energy at creation, reference for display colour
	Max     float64 // feeding cap
}

// Lifecycle tracks aging, mating and death.
type Lifecycle struct {
	Age            int32
	MaxAge         int32
	LastMatingTick int32
	Cause          DeathCause
}

// Dead reports whether a death cause has been recorded.
func (l *Lifecycle) Dead() bool {
	return l.Cause != CauseNone
}

// Kill records cause if no cause has been recorded yet.
// Returns false when the critter was already dead.
func (l *Lifecycle) Kill(cause DeathCause) bool {
	if l.Cause != CauseNone || cause == CauseNone {
		return false
	}
	l.Cause = cause
	return true
}

// Critter bundles identity and genome-derived attributes fixed at creation.
type Critter struct {
	ID     uint32
	Genome Genome
	Speed  float64
}

// Food holds a food item's identity and cached energy value.
type Food struct {
	ID          uint32
	EnergyValue float64
}

// DeathCause records why a critter died.
type DeathCause uint8

const (
	CauseNone DeathCause = iota
	CauseStarvation
	CauseOldAge
)

// String returns the display name for a DeathCause.
func (c DeathCause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseStarvation:
		return "starvation"
	case CauseOldAge:
		return "old_age"
	default:
		return "unknown"
	}
}
