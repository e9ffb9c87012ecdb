package game

import (
	"cmp"
	"log/slog"
	"slices"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/critters/components"
	"github.com/pthm-cable/critters/systems"
)

// entry pairs an entity with its stable ID for ordered iteration.
type entry struct {
	entity ecs.Entity
	id     uint32
}

// foodEntry is a food item that may be consumed during the current tick.
type foodEntry struct {
	entity ecs.Entity
	id     uint32
	pos    components.Position
	size   float64
	energy float64
	eaten  bool
}

// Advance runs one tick over every critter alive at tick start, in
// ascending ID order. Deaths are applied after all critters have been
// stepped; food is respawned afterwards.
func (s *Simulation) Advance() {
	critters := s.snapshotCritters()
	food := s.snapshotFood()

	var dead []entry
	for _, c := range critters {
		if s.stepCritter(c, critters, food) {
			dead = append(dead, c)
		}
	}

	s.removeDead(dead)
	s.respawnFood()

	s.tick++
	s.flushTelemetry()
}

// snapshotCritters collects live critters sorted by ID.
// The query runs to completion before any structural change.
func (s *Simulation) snapshotCritters() []entry {
	var out []entry
	query := s.critterFilter.Query()
	for query.Next() {
		_, _, _, _, _, c := query.Get()
		out = append(out, entry{entity: query.Entity(), id: c.ID})
	}
	slices.SortFunc(out, func(a, b entry) int { return cmp.Compare(a.id, b.id) })
	return out
}

// snapshotFood collects live food sorted by ID.
func (s *Simulation) snapshotFood() []foodEntry {
	var out []foodEntry
	query := s.foodFilter.Query()
	for query.Next() {
		pos, body, f := query.Get()
		out = append(out, foodEntry{
			entity: query.Entity(),
			id:     f.ID,
			pos:    *pos,
			size:   body.Size,
			energy: f.EnergyValue,
		})
	}
	slices.SortFunc(out, func(a, b foodEntry) int { return cmp.Compare(a.id, b.id) })
	return out
}

// stepCritter applies one tick of motion, metabolism, feeding, mating and
// aging to a critter. Returns true if the critter died this tick.
func (s *Simulation) stepCritter(self entry, critters []entry, food []foodEntry) bool {
	cfg := s.cfg
	pos := s.posMap.Get(self.entity)
	heading := s.headingMap.Get(self.entity)
	body := s.bodyMap.Get(self.entity)
	energy := s.energyMap.Get(self.entity)
	life := s.lifeMap.Get(self.entity)
	critter := s.critterMap.Get(self.entity)

	// 1. Motion
	s.mover.Move(pos, *heading, critter.Speed)

	// 2. Metabolism
	systems.Deplete(energy, systems.DepletionCost(critter.Speed, body.Size, cfg.Critter.EnergyScale, cfg.Critter.FixedSize))

	// 3. Edge reflection, judged from the post-motion position
	*heading = systems.ReflectEdges(*heading, *pos, body.Size, s.width, s.height)

	// 4. Feeding
	s.eat(*pos, body.Size, energy, food)

	// 5. Mating
	s.mate(self, critters)

	// 6-7. Aging and death
	cause := systems.Age(life, *energy, cfg.Aging.Enabled)
	return cause != components.CauseNone
}

// eat consumes at most one overlapping food item. When several overlap, the
// one whose centre is nearest the critter's centre wins; ties go to the lower
// food ID. The item is removed from the world immediately.
func (s *Simulation) eat(pos components.Position, size float64, energy *components.Energy, food []foodEntry) {
	best := -1
	bestDist := 0.0
	for i := range food {
		f := &food[i]
		if f.eaten || !systems.Overlaps(pos, size, f.pos, f.size) {
			continue
		}
		d := systems.CenterDistance(pos, size, f.pos, f.size)
		// food is sorted by ID, so strict < keeps the lower ID on ties
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return
	}

	f := &food[best]
	f.eaten = true
	applied := systems.Feed(energy, f.energy)
	s.world.RemoveEntity(f.entity)
	s.collector.RecordFoodEaten(applied)
}

// mate pairs self with the first eligible critter in ID order within mating
// distance. Both participants restart their cooldown. No offspring is created.
func (s *Simulation) mate(self entry, critters []entry) {
	cfg := s.cfg.Mating
	life := s.lifeMap.Get(self.entity)
	if !systems.CanMate(s.tick, *life, *s.energyMap.Get(self.entity), cfg.Cooldown, cfg.MinEnergy) {
		return
	}
	pos := s.posMap.Get(self.entity)
	size := s.bodyMap.Get(self.entity).Size

	for _, other := range critters {
		if other.id == self.id {
			continue
		}
		otherLife := s.lifeMap.Get(other.entity)
		if !systems.CanMate(s.tick, *otherLife, *s.energyMap.Get(other.entity), cfg.Cooldown, cfg.MinEnergy) {
			continue
		}
		d := systems.CenterDistance(*pos, size, *s.posMap.Get(other.entity), s.bodyMap.Get(other.entity).Size)
		if d > cfg.Distance {
			continue
		}

		life.LastMatingTick = s.tick
		otherLife.LastMatingTick = s.tick
		s.collector.RecordMating()
		slog.Debug("critter_mated", "tick", s.tick, "id", self.id, "partner", other.id, "distance", d)
		return
	}
}
