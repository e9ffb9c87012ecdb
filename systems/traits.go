package systems

import (
	"github.com/pthm-cable/critters/components"
	"github.com/pthm-cable/critters/config"
)

// Attributes are the physical values a genome expresses.
type Attributes struct {
	Size   float64
	Speed  float64
	Energy float64 // initial energy
}

// DeriveAttributes maps each gene onto its configured [min, max] range.
func DeriveAttributes(g components.Genome, cfg config.CritterConfig) Attributes {
	return Attributes{
		Size:   components.Express(g.Value(components.TraitSize), cfg.MinSize, cfg.MaxSize),
		Speed:  components.Express(g.Value(components.TraitSpeed), cfg.MinSpeed, cfg.MaxSpeed),
		Energy: components.Express(g.Value(components.TraitEnergy), cfg.MinEnergy, cfg.MaxEnergy),
	}
}
