package systems

import (
	"image/color"
	"math"

	"github.com/pthm-cable/critters/components"
)

// DepletionCost returns the per-tick energy cost of a critter.
// cost = speed × size × scale × sqrt(refSize / size)
// The square root softens the penalty for small critters. A non-positive
// size skips the correction factor instead of dividing by zero.
func DepletionCost(speed, size, scale, refSize float64) float64 {
	cost := speed * size * scale
	if size > 0 && refSize > 0 {
		cost *= math.Sqrt(refSize / size)
	}
	return cost
}

// Deplete subtracts cost from the energy pool and returns the amount removed.
func Deplete(energy *components.Energy, cost float64) float64 {
	if cost <= 0 {
		return 0
	}
	energy.Value -= cost
	return cost
}

// Feed adds gain to the energy pool, capped at Max.
// Returns the energy actually absorbed: min(gain, Max - Value).
func Feed(energy *components.Energy, gain float64) float64 {
	if gain <= 0 {
		return 0
	}
	before := energy.Value
	energy.Value = math.Min(energy.Value+gain, energy.Max)
	if energy.Value < before {
		// Already above cap; feeding never lowers energy.
		energy.Value = before
	}
	return energy.Value - before
}

// FoodEnergy returns the energy a food item of the given size provides.
func FoodEnergy(size, scale float64) float64 {
	return size * size * scale
}

// EnergyRatio returns Value / Initial clamped to [0, 1].
// Zero or negative initial energy yields 0.
func EnergyRatio(energy components.Energy) float64 {
	if energy.Initial <= 0 {
		return 0
	}
	p := energy.Value / energy.Initial
	if math.IsNaN(p) {
		return 0
	}
	return Clamp(p, 0, 1)
}

// EnergyColour fades from blue at full energy to red when depleted.
func EnergyColour(energy components.Energy) color.RGBA {
	p := EnergyRatio(energy)
	return color.RGBA{
		R: uint8(255 * (1 - p)),
		G: 0,
		B: uint8(255 * p),
		A: 255,
	}
}
