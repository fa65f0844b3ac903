package assets

import (
	"testing"

	"github.com/automoto/shmup/combat"
	"github.com/automoto/shmup/enemies"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageOneLoads(t *testing.T) {
	waves, err := LoadWaves(LevelPath("stage1"), enemies.Create)
	require.NoError(t, err)
	require.Len(t, waves, 5)

	first := waves[0].Enemies
	require.Len(t, first, 2)
	assert.Equal(t, combat.Simple, first[0].Kind)
	assert.Equal(t, combat.Tracing, first[1].Kind)

	last := waves[len(waves)-1].Enemies
	require.Len(t, last, 1)
	assert.Equal(t, combat.Boss, last[0].Kind)
}

func TestEmptyPathUsesBuiltInStage(t *testing.T) {
	waves, err := LoadWaves("", enemies.Create)
	require.NoError(t, err)
	assert.Len(t, waves, 3)
}

func TestMissingLevel(t *testing.T) {
	_, err := LoadWaves(LevelPath("nope"), enemies.Create)
	assert.ErrorContains(t, err, "level levels/nope.tmx")
}

func TestLevelNames(t *testing.T) {
	names, err := LevelNames()
	require.NoError(t, err)
	assert.Contains(t, names, "stage1")
}
