package systems

import (
	"image/color"

	"github.com/automoto/shmup/combat"
	"github.com/automoto/shmup/components"
	cfg "github.com/automoto/shmup/config"
	"github.com/automoto/shmup/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBanner raises the end-of-match banner once the outcome is decided
// and records the result exactly once.
func UpdateBanner(e *ecs.ECS) {
	arena := GetArena(e)
	if arena == nil || arena.Sim == nil {
		return
	}
	banner := GetOrCreateBanner(e)

	if !banner.Shown {
		status := arena.Sim.Status()
		if status == combat.Running {
			return
		}
		banner.Shown = true
		banner.Status = status
		banner.Fade = gween.New(0, 1, cfg.HUD.BannerSeconds, ease.OutQuad)
	}

	banner.Frames++
	if banner.Fade != nil {
		alpha, done := banner.Fade.Update(float32(cfg.FrameDT()))
		banner.Alpha = alpha
		if done {
			banner.Fade = nil
		}
	}

	if !banner.Saved {
		RecordMatch(ResultOf(arena))
		banner.Saved = true
	}
}

// DrawBanner renders the fading win/lose title over the arena.
func DrawBanner(e *ecs.ECS, screen *ebiten.Image) {
	banner := GetOrCreateBanner(e)
	if !banner.Shown {
		return
	}

	title := cfg.Results.LostTitle
	if banner.Status == combat.Won {
		title = cfg.Results.WonTitle
	}

	base := cfg.HUD.BannerColor
	clr := color.RGBA{
		R: uint8(float32(base.R) * banner.Alpha),
		G: uint8(float32(base.G) * banner.Alpha),
		B: uint8(float32(base.B) * banner.Alpha),
		A: uint8(float32(base.A) * banner.Alpha),
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	face := fonts.Title.Get()
	text.Draw(screen, title, face, centerTextX(title, face, width), int(height/3), clr)
}

// ResultOf summarizes the arena's match.
func ResultOf(arena *components.ArenaData) MatchResult {
	stats := arena.Sim.Stats()
	return MatchResult{
		Status:      arena.Sim.Status(),
		Elapsed:     stats.Elapsed,
		Kills:       stats.Kills,
		ShotsFired:  stats.ShotsFired,
		DamageTaken: stats.DamageTaken,
		Waves:       arena.Sim.Level().Cursor(),
		Seed:        arena.Seed,
	}
}

// ResultsReady reports the finished match once the banner has been up long enough.
func ResultsReady(e *ecs.ECS) (MatchResult, bool) {
	banner := GetOrCreateBanner(e)
	arena := GetArena(e)
	if !banner.Shown || arena == nil || banner.Frames < cfg.HUD.ResultsDelay {
		return MatchResult{}, false
	}
	return ResultOf(arena), true
}

// GetOrCreateBanner returns the singleton Banner component, creating if needed
func GetOrCreateBanner(e *ecs.ECS) *components.BannerData {
	entry, ok := components.Banner.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Banner))
	}
	return components.Banner.Get(entry)
}

// IsMatchOver checks if the outcome has been decided
func IsMatchOver(e *ecs.ECS) bool {
	return GetOrCreateBanner(e).Shown
}

// WithMatchOverCheck wraps a system to skip execution once the match is over
func WithMatchOverCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsMatchOver(e) {
			return
		}
		system(e)
	}
}
