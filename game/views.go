package game

import (
	"cmp"
	"image/color"
	"slices"

	"github.com/pthm-cable/critters/components"
	"github.com/pthm-cable/critters/systems"
	"github.com/pthm-cable/critters/telemetry"
)

// CritterView is the read-only state a renderer needs for one critter.
type CritterView struct {
	ID     uint32
	X, Y   float64 // top-left corner
	Size   float64
	Colour color.RGBA
	Energy float64
	Age    int32
}

// FoodView is the read-only state a renderer needs for one food item.
type FoodView struct {
	ID   uint32
	X, Y float64
	Size float64
}

// Stats is the sidebar summary.
type Stats struct {
	Tick       int32
	Critters   int
	Food       int
	AvgAge     float64
	MaxAge     int32
	Starvation int
	OldAge     int
}

// Critters returns the live critters ordered by ID.
func (s *Simulation) Critters() []CritterView {
	var out []CritterView
	query := s.critterFilter.Query()
	for query.Next() {
		pos, _, body, energy, life, c := query.Get()
		out = append(out, CritterView{
			ID:     c.ID,
			X:      pos.X,
			Y:      pos.Y,
			Size:   body.Size,
			Colour: systems.EnergyColour(*energy),
			Energy: energy.Value,
			Age:    life.Age,
		})
	}
	slices.SortFunc(out, func(a, b CritterView) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// Food returns the live food ordered by ID.
func (s *Simulation) Food() []FoodView {
	var out []FoodView
	query := s.foodFilter.Query()
	for query.Next() {
		pos, body, f := query.Get()
		out = append(out, FoodView{ID: f.ID, X: pos.X, Y: pos.Y, Size: body.Size})
	}
	slices.SortFunc(out, func(a, b FoodView) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// CritterCount returns the number of live critters.
func (s *Simulation) CritterCount() int {
	n := 0
	query := s.critterFilter.Query()
	for query.Next() {
		n++
	}
	return n
}

// FoodCount returns the number of live food items.
func (s *Simulation) FoodCount() int {
	n := 0
	query := s.foodFilter.Query()
	for query.Next() {
		n++
	}
	return n
}

// Population computes count, mean age and oldest age of the live critters.
func (s *Simulation) Population() telemetry.Population {
	var ages []float64
	query := s.critterFilter.Query()
	for query.Next() {
		_, _, _, _, life, _ := query.Get()
		ages = append(ages, float64(life.Age))
	}
	return telemetry.ComputePopulation(ages)
}

// Stats returns the current sidebar summary.
func (s *Simulation) Stats() Stats {
	pop := s.Population()
	return Stats{
		Tick:       s.tick,
		Critters:   pop.Count,
		Food:       s.FoodCount(),
		AvgAge:     pop.AvgAge,
		MaxAge:     pop.MaxAge,
		Starvation: s.aggregator.Starvation(),
		OldAge:     s.aggregator.OldAge(),
	}
}

// critter returns copies of the components of the critter with id.
func (s *Simulation) critter(id uint32) (components.Position, components.Energy, components.Lifecycle, bool) {
	var (
		pos    components.Position
		energy components.Energy
		life   components.Lifecycle
		found  bool
	)
	query := s.critterFilter.Query()
	for query.Next() {
		p, _, _, e, l, c := query.Get()
		if c.ID == id {
			pos, energy, life, found = *p, *e, *l, true
		}
	}
	return pos, energy, life, found
}
