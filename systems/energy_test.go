package systems

import (
	"math"
	"testing"

	"github.com/pthm-cable/critters/components"
	"github.com/pthm-cable/critters/config"
)

func TestDeriveAttributesMidpoint(t *testing.T) {
	cfg := config.CritterConfig{
		MinSize: 10, MaxSize: 50,
		MinSpeed: 1, MaxSpeed: 5,
		MinEnergy: 50, MaxEnergy: 150,
	}
	attrs := DeriveAttributes(components.NewGenome(0, 0, 0), cfg)

	if attrs.Size != 30 || attrs.Speed != 3 || attrs.Energy != 100 {
		t.Errorf("attrs = %+v, want size=30 speed=3 energy=100", attrs)
	}
}

func TestDepletionCost(t *testing.T) {
	tests := []struct {
		name                        string
		speed, size, scale, refSize float64
		want                        float64
	}{
		{"reference size has no correction", 2, 20, 0.01, 20, 0.4},
		{"small critter penalty dampened", 2, 5, 0.01, 20, 2 * 5 * 0.01 * 2},
		{"large critter", 1, 80, 0.01, 20, 0.8 * 0.5},
		{"zero size guarded", 3, 0, 0.01, 20, 0},
		{"zero reference guarded", 1, 10, 0.1, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DepletionCost(tt.speed, tt.size, tt.scale, tt.refSize)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("DepletionCost = %v, want %v", got, tt.want)
			}
			if math.IsNaN(got) || math.IsInf(got, 0) {
				t.Errorf("DepletionCost produced %v", got)
			}
		})
	}
}

func TestDepleteNeverIncreases(t *testing.T) {
	e := components.Energy{Value: 10, Initial: 10, Max: 20}
	Deplete(&e, -5)
	if e.Value != 10 {
		t.Errorf("negative cost changed energy to %v", e.Value)
	}
	Deplete(&e, 3)
	if e.Value != 7 {
		t.Errorf("energy = %v, want 7", e.Value)
	}
}

func TestFeed(t *testing.T) {
	tests := []struct {
		name        string
		value, max  float64
		gain        float64
		wantValue   float64
		wantApplied float64
	}{
		{"below cap", 50, 150, 30, 80, 30},
		{"clamped at cap", 140, 150, 30, 150, 10},
		{"already at cap", 150, 150, 30, 150, 0},
		{"zero gain", 50, 150, 0, 50, 0},
		{"negative energy recovers", -2, 150, 10, 8, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := components.Energy{Value: tt.value, Initial: 100, Max: tt.max}
			applied := Feed(&e, tt.gain)
			if math.Abs(e.Value-tt.wantValue) > 1e-9 {
				t.Errorf("value = %v, want %v", e.Value, tt.wantValue)
			}
			if math.Abs(applied-tt.wantApplied) > 1e-9 {
				t.Errorf("applied = %v, want %v", applied, tt.wantApplied)
			}
			if e.Value > tt.max {
				t.Errorf("value %v exceeds max %v", e.Value, tt.max)
			}
		})
	}
}

func TestFoodEnergy(t *testing.T) {
	if got := FoodEnergy(10, 0.5); got != 50 {
		t.Errorf("FoodEnergy(10, 0.5) = %v, want 50", got)
	}
}

func TestEnergyColour(t *testing.T) {
	tests := []struct {
		name   string
		energy components.Energy
		r, b   uint8
	}{
		{"full energy is blue", components.Energy{Value: 100, Initial: 100}, 0, 255},
		{"empty is red", components.Energy{Value: 0, Initial: 100}, 255, 0},
		{"negative clamps to red", components.Energy{Value: -5, Initial: 100}, 255, 0},
		{"above initial clamps to blue", components.Energy{Value: 140, Initial: 100}, 0, 255},
		{"half", components.Energy{Value: 50, Initial: 100}, 127, 127},
		{"zero initial guarded", components.Energy{Value: 10, Initial: 0}, 255, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := EnergyColour(tt.energy)
			if c.R != tt.r || c.G != 0 || c.B != tt.b {
				t.Errorf("colour = %+v, want (%d, 0, %d)", c, tt.r, tt.b)
			}
		})
	}
}
