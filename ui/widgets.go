package ui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	gui "github.com/gen2brain/raylib-go/raygui"
)

// Renderer handles all UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// ToColor converts an image colour to a raylib colour.
func ToColor(c color.RGBA) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// DrawPanel draws a translucent panel background with a right-hand border.
func (r *Renderer) DrawPanel(x, y, width, height int32, bg rl.Color) {
	rl.DrawRectangle(x, y, width, height, bg)
	rl.DrawLine(x+width, y, x+width, y+height, r.Theme.PanelBorder)
}

// DrawHeader draws a title at y and returns the next Y position.
func (r *Renderer) DrawHeader(x, y int32, title string) int32 {
	rl.DrawText(title, x, y, r.Theme.HeaderFontSize, r.Theme.SectionHeader)
	return y + r.Theme.LineHeight
}

// DrawLine draws one line of text and returns the next Y position.
func (r *Renderer) DrawLine(x, y int32, text string) int32 {
	rl.DrawText(text, x, y, r.Theme.FontSize, r.Theme.LabelColor)
	return y + r.Theme.LineHeight
}

// DrawStatus draws secondary text in a smaller font and returns the next Y position.
func (r *Renderer) DrawStatus(x, y int32, text string) int32 {
	size := r.Theme.FontSize * 3 / 4
	rl.DrawText(text, x, y, size, r.Theme.StatusColor)
	return y + size + 6
}

// Button draws a raygui button and reports whether it was clicked.
func (r *Renderer) Button(x, y, width int32, label string) bool {
	return gui.Button(rl.Rectangle{
		X:      float32(x),
		Y:      float32(y),
		Width:  float32(width),
		Height: float32(r.Theme.ButtonHeight),
	}, label)
}

// Slider draws a raygui slider bar and returns the possibly changed value.
func (r *Renderer) Slider(x, y, width int32, left, right string, value, lo, hi float32) float32 {
	return gui.SliderBar(rl.Rectangle{
		X:      float32(x),
		Y:      float32(y),
		Width:  float32(width),
		Height: float32(r.Theme.ButtonHeight) * 0.7,
	}, left, right, value, lo, hi)
}
