package systems

import (
	"github.com/automoto/shmup/components"
	cfg "github.com/automoto/shmup/config"
	"github.com/automoto/shmup/config/keys"
	"github.com/automoto/shmup/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles the pause state.
// This system should run AFTER UpdateInput but BEFORE the gameplay systems.
func UpdatePause(e *ecs.ECS) {
	if IsMatchOver(e) {
		return
	}
	pause := GetOrCreatePause(e)

	if GetOrCreateInput(e).Pressed(keys.ActionPause) {
		pause.IsPaused = !pause.IsPaused
	}
}

// DrawPause renders the pause overlay.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	if !IsPaused(e) {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Pause.OverlayColor,
		false,
	)

	titleFont := fonts.Title.Get()
	text.Draw(screen, cfg.Pause.Title, titleFont,
		centerTextX(cfg.Pause.Title, titleFont, width), int(height/2), cfg.Pause.TextColor)

	hint := cfg.Pause.KeyboardHint
	if GetOrCreateInput(e).Device == components.DeviceGamepad {
		hint = cfg.Pause.GamepadHint
	}
	hintFont := fonts.Small.Get()
	text.Draw(screen, hint, hintFont,
		centerTextX(hint, hintFont, width), int(height/2)+30, cfg.Pause.TextColor)
}

// GetOrCreatePause returns the singleton Pause component, creating if needed
func GetOrCreatePause(e *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Pause))
	}
	return components.Pause.Get(entry)
}

// IsPaused checks if the game is currently paused
func IsPaused(e *ecs.ECS) bool {
	return GetOrCreatePause(e).IsPaused
}

// WithPauseCheck wraps a system to skip execution when paused
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsPaused(e) {
			return
		}
		system(e)
	}
}
