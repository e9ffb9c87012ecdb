package ui

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/critters/config"
	"github.com/pthm-cable/critters/game"
)

// Step-per-frame bounds for the speed slider.
const (
	MinStepsPerFrame = 1
	MaxStepsPerFrame = 20
)

// SidebarData holds everything the sidebar displays.
type SidebarData struct {
	Stats         game.Stats
	Paused        bool
	StepsPerFrame int
	FPS           int32
}

// SidebarInput reports what the user changed through the sidebar controls.
type SidebarInput struct {
	TogglePause   bool
	StepsPerFrame int
}

// Sidebar renders population statistics on the left edge of the screen.
type Sidebar struct {
	renderer *Renderer
	title    string
	width    int32
	height   int32
	bg       rl.Color
}

// NewSidebar creates a sidebar sized to the screen height.
func NewSidebar(cfg *config.Config) *Sidebar {
	sb := cfg.Sidebar
	return &Sidebar{
		renderer: NewRenderer(),
		title:    cfg.Screen.Title,
		width:    int32(sb.Width),
		height:   int32(cfg.Screen.Height),
		bg:       ToColor(sb.Colour.RGBA(uint8(sb.Opacity))),
	}
}

// Lines returns the statistics text shown in the sidebar, one entry per line.
func Lines(s game.Stats) []string {
	return []string{
		fmt.Sprintf("Current critter count: %d", s.Critters),
		fmt.Sprintf("Average critter's age: %.1f", s.AvgAge),
		fmt.Sprintf("Oldest critter's age: %d", s.MaxAge),
		fmt.Sprintf("Critters died from no energy: %d", s.Starvation),
		fmt.Sprintf("Critters died from old age: %d", s.OldAge),
	}
}

// Draw renders the panel and its controls and returns any user input.
func (s *Sidebar) Draw(data SidebarData) SidebarInput {
	input := SidebarInput{StepsPerFrame: data.StepsPerFrame}
	if s.width <= 0 {
		return input
	}

	r := s.renderer
	pad := r.Theme.Padding
	r.DrawPanel(0, 0, s.width, s.height, s.bg)

	y := r.DrawHeader(pad, pad, s.title)
	y = max(y, r.Theme.TopOffset)
	for _, line := range Lines(data.Stats) {
		y = r.DrawLine(pad, y, line)
	}

	y += pad
	y = r.DrawStatus(pad, y, fmt.Sprintf("Tick: %d  Food: %d  FPS: %d", data.Stats.Tick, data.Stats.Food, data.FPS))

	status := "Running"
	if data.Paused {
		status = "PAUSED"
	}
	y = r.DrawStatus(pad, y, fmt.Sprintf("%s  Speed: %dx", status, data.StepsPerFrame))

	y += pad
	inner := s.width - 2*pad
	label := "Pause"
	if data.Paused {
		label = "Resume"
	}
	if r.Button(pad, y, inner, label) {
		input.TogglePause = true
	}
	y += r.Theme.ButtonHeight + pad

	v := r.Slider(pad+20, y, inner-50, "1x", "", float32(data.StepsPerFrame), MinStepsPerFrame, MaxStepsPerFrame)
	input.StepsPerFrame = ClampSteps(int(math.Round(float64(v))))

	r.DrawStatus(pad, s.height-2*r.Theme.FontSize, "[Space] pause  [,/.] speed")

	return input
}

// ClampSteps limits steps per frame to the slider range.
func ClampSteps(n int) int {
	return max(MinStepsPerFrame, min(MaxStepsPerFrame, n))
}
