package combat

import (
	"fmt"
	"strings"
)

// Wave is a fixed batch of enemies that enter the arena together.
type Wave struct {
	Enemies []*Enemy
}

// Level walks an ordered list of waves. A wave is released only after the
// arena has stayed empty for the full delay.
type Level struct {
	waves  []Wave
	cursor int
	delay  float64
	timer  float64
}

func NewLevel(waves []Wave, delay float64) *Level {
	return &Level{waves: waves, delay: delay, timer: delay}
}

// Advance runs the coordinator for one empty-arena frame. It returns the
// entire next wave once the delay has elapsed, and nil otherwise.
func (l *Level) Advance(dt float64) []*Enemy {
	if l.Completed() {
		return nil
	}
	l.timer -= dt
	if l.timer > 0 {
		return nil
	}
	wave := l.waves[l.cursor].Enemies
	l.cursor++
	l.timer = l.delay
	return wave
}

// Completed reports whether every wave has been released.
func (l *Level) Completed() bool {
	return l.cursor >= len(l.waves)
}

// Cursor returns how many waves have been released.
func (l *Level) Cursor() int { return l.cursor }

// Len returns the number of waves.
func (l *Level) Len() int { return len(l.waves) }

// WaveInfo renders the HUD wave counter.
func (l *Level) WaveInfo() string {
	return fmt.Sprintf("Wave %d of %d", l.cursor, len(l.waves))
}

// String renders every wave on its own line, enemies separated by ';'.
func (l *Level) String() string {
	lines := make([]string, len(l.waves))
	for i, w := range l.waves {
		enemies := make([]string, len(w.Enemies))
		for j, e := range w.Enemies {
			enemies[j] = e.String()
		}
		lines[i] = strings.Join(enemies, ";")
	}
	return strings.Join(lines, "\n")
}
