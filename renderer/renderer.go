// Package renderer draws the arena with raylib from the simulation's read accessors.
package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/critters/game"
)

// FoodColor is the fill for every food item.
var FoodColor = rl.Color{R: 0, G: 255, B: 0, A: 255}

// Renderer draws the background, food and critters.
type Renderer struct {
	background rl.Color
}

// New creates a renderer clearing to the given background colour.
func New(background color.RGBA) *Renderer {
	return &Renderer{background: toColor(background)}
}

// Clear fills the screen with the background colour.
func (r *Renderer) Clear() {
	rl.ClearBackground(r.background)
}

// DrawFood renders food items as green squares.
func (r *Renderer) DrawFood(food []game.FoodView) {
	for i := range food {
		f := &food[i]
		rl.DrawRectangleV(
			rl.Vector2{X: float32(f.X), Y: float32(f.Y)},
			rl.Vector2{X: float32(f.Size), Y: float32(f.Size)},
			FoodColor,
		)
	}
}

// DrawCritters renders critters as squares coloured by remaining energy.
func (r *Renderer) DrawCritters(critters []game.CritterView) {
	for i := range critters {
		c := &critters[i]
		rl.DrawRectangleV(
			rl.Vector2{X: float32(c.X), Y: float32(c.Y)},
			rl.Vector2{X: float32(c.Size), Y: float32(c.Size)},
			toColor(c.Colour),
		)
	}
}

// Draw renders one frame of simulation state. Call between BeginDrawing and EndDrawing.
func (r *Renderer) Draw(sim *game.Simulation) {
	r.Clear()
	r.DrawFood(sim.Food())
	r.DrawCritters(sim.Critters())
}

func toColor(c color.RGBA) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
