package components

// Trait names a gene.
type Trait string

const (
	TraitSize   Trait = "size"
	TraitSpeed  Trait = "speed"
	TraitEnergy Trait = "energy"
)

// Traits lists every trait in a stable order.
var Traits = []Trait{TraitSize, TraitSpeed, TraitEnergy}

// Genome holds normalized trait values in [-1, 1].
type Genome struct {
	size, speed, energy float64
}

// NewGenome builds a genome, clamping each value into [-1, 1].
func NewGenome(size, speed, energy float64) Genome {
	return Genome{size: clampGene(size), speed: clampGene(speed), energy: clampGene(energy)}
}

// GenomeFromMap builds a genome from trait names. Missing traits are 0.
func GenomeFromMap(m map[Trait]float64) Genome {
	return NewGenome(m[TraitSize], m[TraitSpeed], m[TraitEnergy])
}

// Float64Source yields uniform values in [0, 1). *rand.Rand satisfies it.
type Float64Source interface {
	Float64() float64
}

// RandomGenome draws every trait uniformly from [-1, 1].
func RandomGenome(r Float64Source) Genome {
	return NewGenome(r.Float64()*2-1, r.Float64()*2-1, r.Float64()*2-1)
}

// Value returns the gene for t.
func (g Genome) Value(t Trait) float64 {
	switch t {
	case TraitSize:
		return g.size
	case TraitSpeed:
		return g.speed
	case TraitEnergy:
		return g.energy
	default:
		return 0
	}
}

// Map returns the genes keyed by trait name.
func (g Genome) Map() map[Trait]float64 {
	return map[Trait]float64{
		TraitSize:   g.size,
		TraitSpeed:  g.speed,
		TraitEnergy: g.energy,
	}
}

// Express maps a gene onto [lo, hi] linearly: -1 → lo, 1 → hi.
func Express(gene, lo, hi float64) float64 {
	return lo + (clampGene(gene)+1)/2*(hi-lo)
}

func clampGene(v float64) float64 {
	if v != v { // NaN
		return 0
	}
	return max(-1, min(1, v))
}
