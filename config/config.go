// Package config holds the game's tuning as package-level globals set in init.
// It has no dependencies on ebitengine or donburi, so the headless runner
// can read it; key bindings live in config/keys.
package config

import (
	"image/color"

	"github.com/automoto/shmup/combat"
)

// EnemyTypeConfig describes one enemy archetype as it appears in level files.
type EnemyTypeConfig struct {
	Name     string
	Kind     combat.Kind
	Behavior combat.BehaviorModel
	Stats    combat.StatModel
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	// Archetype table keyed by the level file's "enemy" property
	Types map[string]EnemyTypeConfig

	SpeedJitter    float64 // max speed change per jitter roll, scaled by (rand - health ratio)
	HomingLifetime float64 // seconds a tracing enemy's shot keeps chasing
}

// WaveConfig contains the wave coordinator settings
type WaveConfig struct {
	Delay     float64 // seconds the arena must stay empty before the next wave
	LevelPath string  // TMX file inside the embedded assets
}

// HUDConfig contains HUD layout and colors
type HUDConfig struct {
	Margin          float64
	LineHeight      float64
	HealthBarWidth  float64
	HealthBarHeight float64
	HealthBarBg     color.RGBA
	HealthBarFg     color.RGBA
	TextColor       color.RGBA
	BackgroundColor color.RGBA
	BannerColor     color.RGBA
	BannerSeconds   float32 // fade-in time of the win/lose banner
	ResultsDelay    int     // frames the banner stays up before the results screen
}

// PauseConfig contains pause overlay configuration values
type PauseConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
	Title        string
	KeyboardHint string
	GamepadHint  string
}

// ResultsConfig contains results screen text
type ResultsConfig struct {
	WonTitle  string
	LostTitle string
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	FPS    int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Autopilot bool   // let the autopilot fly the player in the battle scene
	Seed      uint64 // 0 picks a seed from the clock
}

// Global configuration instances
var C *Config
var Player combat.PlayerConfig
var Projectile combat.ProjectileConfig
var Enemy EnemyConfig
var Boss combat.BossConfig
var Collision combat.CollisionConfig
var Wave WaveConfig
var HUD HUDConfig
var Pause PauseConfig
var Results ResultsConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	DarkGray     = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	Paper        = color.RGBA{R: 230, G: 230, B: 235, A: 255}
)

// Rules assembles the combat core's configuration from the globals.
func Rules() combat.Config {
	return combat.Config{
		Player:     Player,
		Projectile: Projectile,
		Enemy: combat.EnemyConfig{
			SpeedJitter:    Enemy.SpeedJitter,
			HomingLifetime: Enemy.HomingLifetime,
		},
		Boss:      Boss,
		Collision: Collision,
		WaveDelay: Wave.Delay,
	}
}

// Arena returns the play field matching the logical screen size.
func Arena() combat.Arena {
	return combat.Arena{Width: float64(C.Width), Height: float64(C.Height)}
}

// FrameDT is the fixed simulation step.
func FrameDT() float64 {
	return 1 / float64(C.FPS)
}

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
		FPS:    60,
	}

	defaults := combat.DefaultConfig()

	Player = defaults.Player
	Projectile = defaults.Projectile
	Boss = defaults.Boss
	Collision = defaults.Collision

	Wave = WaveConfig{
		Delay:     defaults.WaveDelay,
		LevelPath: "levels/stage1.tmx",
	}

	// Enemy Config
	Enemy = EnemyConfig{
		SpeedJitter:    defaults.Enemy.SpeedJitter,
		HomingLifetime: defaults.Enemy.HomingLifetime,
		Types: map[string]EnemyTypeConfig{
			"simple": {
				Name:     "Simple",
				Kind:     combat.Simple,
				Behavior: combat.DefaultBehavior,
				Stats: combat.StatModel{
					BaseSpeed:        200,
					MaxSpeed:         300,
					MinSpeed:         100,
					ProjectileSpeed:  200,
					ProjectileDamage: 5,
					SlamDamage:       5,
					MaxHealth:        100,
					Size:             30,
				},
			},
			"sniper": {
				Name:     "Sniper",
				Kind:     combat.Tracing,
				Behavior: combat.ScaredBehavior,
				Stats: combat.StatModel{
					BaseSpeed:        250,
					MaxSpeed:         500,
					MinSpeed:         200,
					ProjectileSpeed:  100,
					ProjectileDamage: 10,
					SlamDamage:       0,
					MaxHealth:        50,
					Size:             20,
				},
			},
			// Tanks never shoot; they ram.
			"tank": {
				Name:     "Tank",
				Kind:     combat.Simple,
				Behavior: combat.TacklerBehavior,
				Stats: combat.StatModel{
					BaseSpeed:  150,
					MaxSpeed:   500,
					MinSpeed:   100,
					SlamDamage: 10,
					MaxHealth:  200,
					Size:       50,
				},
			},
			"boss": {
				Name:     "Boss",
				Kind:     combat.Boss,
				Behavior: combat.DefaultBehavior,
				Stats: combat.StatModel{
					BaseSpeed:        50,
					MaxSpeed:         50,
					MinSpeed:         50,
					ProjectileSpeed:  100,
					ProjectileDamage: 100,
					SlamDamage:       100,
					MaxHealth:        1000,
					Size:             70,
				},
			},
		},
	}

	HUD = HUDConfig{
		Margin:          10,
		LineHeight:      16,
		HealthBarWidth:  130,
		HealthBarHeight: 13,
		HealthBarBg:     DarkGray,
		HealthBarFg:     color.RGBA{R: 40, G: 220, B: 40, A: 255},
		TextColor:       color.RGBA{R: 20, G: 20, B: 20, A: 255},
		BackgroundColor: Paper,
		BannerColor:     Black,
		BannerSeconds:   0.75,
		ResultsDelay:    120, // 2 seconds at 60fps
	}

	Pause = PauseConfig{
		OverlayColor: BlackOverlay,
		TextColor:    White,
		Title:        "PAUSED",
		KeyboardHint: "P to resume",
		GamepadHint:  "Start to resume",
	}

	Results = ResultsConfig{
		WonTitle:  "STAGE CLEAR",
		LostTitle: "SHOT DOWN",
	}

	Debug = DebugConfig{
		Autopilot: false,
		Seed:      0,
	}
}
