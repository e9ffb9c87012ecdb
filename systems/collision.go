package systems

import (
	"math"

	"github.com/pthm-cable/critters/components"
)

// Overlaps reports whether two axis-aligned squares intersect.
// Touching edges do not count as overlap.
func Overlaps(a components.Position, aSize float64, b components.Position, bSize float64) bool {
	return a.X < b.X+bSize && b.X < a.X+aSize &&
		a.Y < b.Y+bSize && b.Y < a.Y+aSize
}

// CenterDistance returns the Euclidean distance between two square centres.
func CenterDistance(a components.Position, aSize float64, b components.Position, bSize float64) float64 {
	ax, ay := a.Center(aSize)
	bx, by := b.Center(bSize)
	return math.Hypot(ax-bx, ay-by)
}
