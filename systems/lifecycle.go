package systems

import "github.com/pthm-cable/critters/components"

// CanMate reports whether a critter is off cooldown and has enough energy.
func CanMate(tick int32, life components.Lifecycle, energy components.Energy, cooldown int32, minEnergy float64) bool {
	if life.Dead() {
		return false
	}
	return tick-life.LastMatingTick >= cooldown && energy.Value > minEnergy
}

// Age advances a critter by one tick and resolves death. Old age is checked
// first and wins over starvation when both apply in the same tick.
// Returns the cause recorded this call, or CauseNone.
func Age(life *components.Lifecycle, energy components.Energy, agingEnabled bool) components.DeathCause {
	life.Age++
	if agingEnabled && life.Age >= life.MaxAge && life.Kill(components.CauseOldAge) {
		return components.CauseOldAge
	}
	if energy.Value < 0 && life.Kill(components.CauseStarvation) {
		return components.CauseStarvation
	}
	return components.CauseNone
}
