// Command simulate plays a match without a window and prints the outcome.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/automoto/shmup/assets"
	"github.com/automoto/shmup/autopilot"
	"github.com/automoto/shmup/combat"
	"github.com/automoto/shmup/config"
	"github.com/automoto/shmup/enemies"
	"github.com/automoto/shmup/headless"
	"github.com/automoto/shmup/match"
	"github.com/automoto/shmup/shared/leveldata"
)

func main() {
	seed := flag.Uint64("seed", 1, "Match seed")
	frames := flag.Int("frames", 60*60*5, "Frame budget (0 = until the match ends)")
	dt := flag.Float64("dt", config.FrameDT(), "Seconds per frame")
	level := flag.String("level", "", "Embedded level name or path to a .tmx file (empty = built-in waves)")
	pilot := flag.Bool("autopilot", true, "Fly the ship with the autopilot (false leaves it idle)")
	skill := flag.String("skill", "normal", "Autopilot skill: easy, normal or hard")
	realtime := flag.Bool("realtime", false, "Pace frames at the configured FPS")
	list := flag.Bool("list", false, "List embedded levels and exit")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn or error")
	flag.Parse()

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(*logLevel)); err != nil {
		log.Fatalf("Invalid log level %q: %v", *logLevel, err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))

	if *list {
		names, err := assets.LevelNames()
		if err != nil {
			log.Fatalf("Failed to list levels: %v", err)
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return
	}

	waves, err := loadWaves(*level)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}
	sim, err := match.New(match.Options{Seed: *seed, Waves: waves, Logger: logger})
	if err != nil {
		log.Fatalf("Failed to build match: %v", err)
	}

	opts := headless.Options{DT: *dt, MaxFrames: *frames, Logger: logger}
	if *pilot {
		s, ok := parseSkill(*skill)
		if !ok {
			log.Fatalf("Unknown skill %q", *skill)
		}
		opts.Pilot = autopilot.New(config.Autopilot.Skills[s])
	}
	if *realtime {
		opts.TickRate = config.C.FPS
	}
	loop := headless.NewLoop(sim, opts)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("interrupted")
		loop.Stop()
	}()

	start := time.Now()
	status := loop.Run()
	report(sim, status, time.Since(start))
}

// loadWaves resolves -level: a .tmx path on disk, an embedded level name, or
// the built-in waves when empty.
func loadWaves(level string) ([]combat.Wave, error) {
	switch {
	case level == "":
		return assets.LoadWaves("", enemies.Create)
	case strings.HasSuffix(level, ".tmx"):
		dir, file := filepath.Split(level)
		if dir == "" {
			dir = "."
		}
		return leveldata.Load(os.DirFS(dir), file, enemies.Create)
	default:
		return assets.LoadWaves(assets.LevelPath(level), enemies.Create)
	}
}

func parseSkill(s string) (config.AutopilotSkill, bool) {
	switch strings.ToLower(s) {
	case "easy":
		return config.AutopilotEasy, true
	case "normal":
		return config.AutopilotNormal, true
	case "hard":
		return config.AutopilotHard, true
	}
	return 0, false
}

func report(sim *combat.Simulation, status combat.Status, wall time.Duration) {
	stats := sim.Stats()
	player := sim.Player()

	fmt.Printf("status:       %s\n", status)
	fmt.Printf("frames:       %d (%.2fs simulated, %s wall)\n", stats.Frames, stats.Elapsed, wall.Round(time.Millisecond))
	fmt.Printf("waves:        %d of %d\n", sim.Level().Cursor(), sim.Level().Len())
	fmt.Printf("player:       %s\n", player)
	fmt.Printf("kills:        %d\n", stats.Kills)
	fmt.Printf("shots fired:  %d\n", stats.ShotsFired)
	fmt.Printf("damage taken: %d\n", stats.DamageTaken)

	if n := sim.ActiveEnemies(); n > 0 {
		fmt.Printf("enemies left: %d\n", n)
		for _, e := range sim.Enemies() {
			if e.Active() {
				fmt.Printf("  %s\n", e)
			}
		}
	}
}
