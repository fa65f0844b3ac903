package combat

import (
	"strings"
	"testing"

	"github.com/automoto/shmup/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waveOf(n int) Wave {
	w := Wave{}
	for i := 0; i < n; i++ {
		w.Enemies = append(w.Enemies, NewEnemy(Simple, gamemath.V(float64(100*i), -100), &DefaultBehavior, simpleStats()))
	}
	return w
}

func TestLevelReleasesWholeWaveAfterDelay(t *testing.T) {
	l := NewLevel([]Wave{waveOf(2), waveOf(1), waveOf(3)}, 1)

	assert.Nil(t, l.Advance(0.5))
	assert.Nil(t, l.Advance(0.25))
	assert.Equal(t, "Wave 0 of 3", l.WaveInfo())

	first := l.Advance(0.25)
	require.Len(t, first, 2)
	assert.Equal(t, 1, l.Cursor())
	assert.Equal(t, "Wave 1 of 3", l.WaveInfo())

	assert.Nil(t, l.Advance(0.5), "the delay restarts after every wave")
	assert.Len(t, l.Advance(0.5), 1)
	assert.Nil(t, l.Advance(0.9))
	assert.Len(t, l.Advance(0.1), 3)
	assert.True(t, l.Completed())
}

func TestCompletedLevelReleasesNothing(t *testing.T) {
	l := NewLevel([]Wave{waveOf(1)}, 0)
	require.Len(t, l.Advance(0.1), 1)
	require.True(t, l.Completed())

	for i := 0; i < 5; i++ {
		assert.Nil(t, l.Advance(10))
	}
	assert.Equal(t, 1, l.Cursor())
	assert.True(t, NewLevel(nil, 1).Completed())
}

func TestLevelString(t *testing.T) {
	l := NewLevel([]Wave{waveOf(2), waveOf(1)}, 1)
	lines := strings.Split(l.String(), "\n")
	require.Len(t, lines, 2)
	assert.Len(t, strings.Split(lines[0], ";"), 2)
	assert.True(t, strings.HasPrefix(lines[1], "Enemy|kind=simple|pos=0.00,-100.00"))
	assert.Equal(t, 2, l.Len())
}
