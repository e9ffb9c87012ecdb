package main

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/critters/config"
	"github.com/pthm-cable/critters/game"
	"github.com/pthm-cable/critters/renderer"
	"github.com/pthm-cable/critters/ui"
)

// viewer drives the simulation from the raylib frame loop.
type viewer struct {
	sim      *game.Simulation
	renderer *renderer.Renderer
	sidebar  *ui.Sidebar

	paused         bool
	stepsPerUpdate int
}

// runWindow opens a window and advances the simulation once per frame
// (times steps per update) at the configured frame rate.
func runWindow(cfg *config.Config, opts game.Options, maxTicks, stepsPerUpdate int) error {
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	opts.Clock = game.NewWallClock()
	sim, err := game.New(cfg, opts)
	if err != nil {
		return err
	}
	defer sim.Close()

	v := &viewer{
		sim:            sim,
		renderer:       renderer.New(cfg.Screen.BackColour.RGBA(255)),
		sidebar:        ui.NewSidebar(cfg),
		stepsPerUpdate: ui.ClampSteps(stepsPerUpdate),
	}

	for !rl.WindowShouldClose() {
		v.handleInput()
		v.update()
		v.draw()

		if maxTicks > 0 && int(sim.Tick()) >= maxTicks {
			slog.Info("max_ticks_reached", "tick", sim.Tick())
			break
		}
	}
	return nil
}

// handleInput processes keyboard input.
func (v *viewer) handleInput() {
	if rl.IsKeyPressed(rl.KeySpace) {
		v.paused = !v.paused
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) {
		v.stepsPerUpdate = ui.ClampSteps(v.stepsPerUpdate - 1)
	}
	if rl.IsKeyPressed(rl.KeyPeriod) {
		v.stepsPerUpdate = ui.ClampSteps(v.stepsPerUpdate + 1)
	}
}

func (v *viewer) update() {
	if v.paused {
		return
	}
	for i := 0; i < v.stepsPerUpdate; i++ {
		v.sim.Advance()
	}
}

func (v *viewer) draw() {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	v.renderer.Draw(v.sim)

	input := v.sidebar.Draw(ui.SidebarData{
		Stats:         v.sim.Stats(),
		Paused:        v.paused,
		StepsPerFrame: v.stepsPerUpdate,
		FPS:           rl.GetFPS(),
	})
	if input.TogglePause {
		v.paused = !v.paused
	}
	v.stepsPerUpdate = input.StepsPerFrame
}
