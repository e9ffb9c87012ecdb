package game

import (
	"log/slog"
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/critters/components"
	"github.com/pthm-cable/critters/systems"
)

// SpawnCritter creates a critter centred on (cx, cy) from genome.
// Size, speed and energy are expressed from the genome once here; heading
// and max age are drawn from the simulation RNG.
func (s *Simulation) SpawnCritter(cx, cy float64, genome components.Genome) ecs.Entity {
	cfg := s.cfg
	attrs := systems.DeriveAttributes(genome, cfg.Critter)

	maxAge := cfg.Aging.MaxAge
	if cfg.Aging.MaxAgeJitter > 0 {
		maxAge += s.rng.Int32N(cfg.Aging.MaxAgeJitter + 1)
	}

	pos := components.Position{X: cx - attrs.Size/2, Y: cy - attrs.Size/2}
	heading := components.Heading{Angle: s.rng.Float64() * 2 * math.Pi}
	body := components.Body{Size: attrs.Size}
	energy := components.Energy{Value: attrs.Energy, Initial: attrs.Energy, Max: cfg.Critter.MaxEnergy}
	life := components.Lifecycle{MaxAge: maxAge, LastMatingTick: s.tick}
	critter := components.Critter{ID: s.nextID, Genome: genome, Speed: attrs.Speed}
	s.nextID++

	return s.critterMapper.NewEntity(&pos, &heading, &body, &energy, &life, &critter)
}

// SpawnFood creates a food item centred on (cx, cy) with a configured size.
func (s *Simulation) SpawnFood(cx, cy float64) ecs.Entity {
	return s.spawnFoodSized(cx, cy, s.foodSize())
}

func (s *Simulation) spawnFoodSized(cx, cy, size float64) ecs.Entity {
	pos := components.Position{X: cx - size/2, Y: cy - size/2}
	body := components.Body{Size: size}
	food := components.Food{
		ID:          s.nextFoodID,
		EnergyValue: systems.FoodEnergy(size, s.cfg.Food.EnergyScale),
	}
	s.nextFoodID++

	return s.foodMapper.NewEntity(&pos, &body, &food)
}

// foodSize returns the fixed size or a uniform draw from [min, max].
func (s *Simulation) foodSize() float64 {
	f := s.cfg.Food
	if !f.RandomSize {
		return f.FixedSize
	}
	return s.uniform(f.MinSize, f.MaxSize)
}

// uniform returns a value in [lo, hi).
func (s *Simulation) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// seedPopulation creates the initial critters inside the spawn buffer and
// the initial food anywhere in the arena.
func (s *Simulation) seedPopulation() {
	buf := s.cfg.Critter.SpawnBuffer
	for i := 0; i < s.cfg.Critter.InitialCount; i++ {
		cx := s.uniform(buf, s.width-buf)
		cy := s.uniform(buf, s.height-buf)
		s.SpawnCritter(cx, cy, components.RandomGenome(s.rng))
	}

	s.spawnFoodBatch(s.cfg.Food.InitialCount)
}

// spawnFoodBatch places n food items uniformly over the full arena.
// Food may sit flush against an edge.
func (s *Simulation) spawnFoodBatch(n int) {
	for i := 0; i < n; i++ {
		size := s.foodSize()
		cx := s.uniform(size/2, s.width-size/2)
		cy := s.uniform(size/2, s.height-size/2)
		s.spawnFoodSized(cx, cy, size)
	}
	if n > 0 {
		s.collector.RecordFoodSpawned(n)
	}
}

// respawnFood spawns a batch when the respawn interval has elapsed.
func (s *Simulation) respawnFood() {
	now := s.clock.Now(s.tick)
	if now < s.nextFoodSpawn {
		return
	}
	n := s.cfg.Food.RespawnCount
	s.spawnFoodBatch(n)
	s.nextFoodSpawn = now + secondsToDuration(s.cfg.Food.RespawnInterval)

	slog.Debug("food_spawned", "tick", s.tick, "count", n, "food", s.FoodCount())
}
