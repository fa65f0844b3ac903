// Package headless steps a match without a window, either as fast as
// possible or paced by a ticker.
package headless

import (
	"log/slog"
	"time"

	"github.com/automoto/shmup/autopilot"
	"github.com/automoto/shmup/combat"
)

// Loop drives a simulation until it ends, the frame budget runs out or Stop
// is called.
type Loop struct {
	sim       *combat.Simulation
	pilot     *autopilot.Pilot
	dt        float64
	maxFrames int
	tickRate  int // 0 runs unpaced
	log       *slog.Logger
	stopChan  chan struct{}
}

// Options configures NewLoop.
type Options struct {
	Pilot     *autopilot.Pilot // nil leaves the ship idle
	DT        float64
	MaxFrames int
	TickRate  int
	Logger    *slog.Logger
}

func NewLoop(sim *combat.Simulation, opts Options) *Loop {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Loop{
		sim:       sim,
		pilot:     opts.Pilot,
		dt:        opts.DT,
		maxFrames: opts.MaxFrames,
		tickRate:  opts.TickRate,
		log:       logger,
		stopChan:  make(chan struct{}),
	}
}

// Run steps the match and returns its status when it stops.
func (l *Loop) Run() combat.Status {
	if l.tickRate <= 0 {
		for l.tick() {
			select {
			case <-l.stopChan:
				return l.stopped()
			default:
			}
		}
		return l.sim.Status()
	}

	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	l.log.Info("loop started", "tickrate", l.tickRate)

	for {
		select {
		case <-l.stopChan:
			return l.stopped()
		case <-ticker.C:
			if !l.tick() {
				return l.sim.Status()
			}
		}
	}
}

// Stop ends Run after the current frame. It must be called at most once.
func (l *Loop) Stop() {
	close(l.stopChan)
}

// tick steps one frame and reports whether the loop should continue.
func (l *Loop) tick() bool {
	if l.sim.Status() != combat.Running {
		return false
	}
	if l.maxFrames > 0 && l.sim.Stats().Frames >= l.maxFrames {
		l.log.Info("frame budget spent", "frames", l.maxFrames)
		return false
	}

	var in combat.Input
	if l.pilot != nil {
		in = l.pilot.Next(l.sim, l.dt)
	}
	l.sim.Step(in, l.dt)
	return true
}

func (l *Loop) stopped() combat.Status {
	l.log.Info("loop stopped", "frames", l.sim.Stats().Frames)
	return l.sim.Status()
}
