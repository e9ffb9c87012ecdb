package systems

import (
	"fmt"
	"math"

	"github.com/pthm-cable/critters/components"
	"github.com/pthm-cable/critters/config"
)

// Mover advances a critter's position for one tick.
type Mover interface {
	Move(pos *components.Position, heading components.Heading, speed float64)
}

// StraightLine moves at constant speed along the current heading.
type StraightLine struct{}

// Move implements Mover.
func (StraightLine) Move(pos *components.Position, heading components.Heading, speed float64) {
	pos.X += speed * math.Cos(heading.Angle)
	pos.Y += speed * math.Sin(heading.Angle)
}

// NewMover returns the movement strategy registered under name.
func NewMover(name string) (Mover, error) {
	switch name {
	case config.MovementStraight:
		return StraightLine{}, nil
	case config.MovementRandom, config.MovementTowards:
		return nil, fmt.Errorf("movement strategy %q is not implemented", name)
	default:
		return nil, fmt.Errorf("unknown movement strategy %q", name)
	}
}

// EdgeHits reports which arena edges a square of the given size has crossed.
// A crossing is when the top-left corner is within half a size of the
// outside of the arena.
func EdgeHits(pos components.Position, size, width, height float64) (vertical, horizontal bool) {
	half := size / 2
	vertical = pos.Y <= -half || pos.Y >= height-half
	horizontal = pos.X <= -half || pos.X >= width-half
	return vertical, horizontal
}

// ReflectEdges returns the heading after bouncing off crossed edges.
// Top/bottom negates the angle, left/right mirrors it to pi - angle. Both
// hits are judged from the same position, so a corner applies both
// transforms; the result is normalized to [-pi, pi).
func ReflectEdges(heading components.Heading, pos components.Position, size, width, height float64) components.Heading {
	vertical, horizontal := EdgeHits(pos, size, width, height)
	if !vertical && !horizontal {
		return heading
	}
	a := heading.Angle
	if vertical {
		a = -a
	}
	if horizontal {
		a = math.Pi - a
	}
	return components.Heading{Angle: NormalizeAngle(a)}
}
