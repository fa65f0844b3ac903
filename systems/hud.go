package systems

import (
	"fmt"

	cfg "github.com/automoto/shmup/config"
	"github.com/automoto/shmup/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the player's health bar and the match counters in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	arena := GetArena(e)
	if arena == nil || arena.Sim == nil {
		return
	}
	sim := arena.Sim
	player := sim.Player()
	hud := cfg.HUD

	vector.FillRect(screen,
		float32(hud.Margin), float32(hud.Margin),
		float32(hud.HealthBarWidth), float32(hud.HealthBarHeight),
		hud.HealthBarBg, false)

	ratio := max(float32(player.HealthRatio()), 0)
	vector.FillRect(screen,
		float32(hud.Margin), float32(hud.Margin),
		float32(hud.HealthBarWidth)*ratio, float32(hud.HealthBarHeight),
		hud.HealthBarFg, false)

	face := fonts.HUD.Get()
	stats := sim.Stats()
	lines := []string{
		fmt.Sprintf("HP %d / %d", player.Health, player.MaxHealth),
		sim.Level().WaveInfo(),
		fmt.Sprintf("Kills %d", stats.Kills),
		fmt.Sprintf("Time %.1fs", stats.Elapsed),
	}
	if arena.Pilot != nil {
		lines = append(lines, "AUTOPILOT")
	}

	y := hud.Margin + hud.HealthBarHeight + hud.LineHeight
	for _, line := range lines {
		text.Draw(screen, line, face, int(hud.Margin), int(y), hud.TextColor)
		y += hud.LineHeight
	}
}
