package systems

import (
	"testing"

	"github.com/automoto/shmup/combat"
	"github.com/automoto/shmup/components"
	cfg "github.com/automoto/shmup/config"
	"github.com/automoto/shmup/config/keys"
	"github.com/automoto/shmup/match"
	"github.com/automoto/shmup/shared/gamemath"
	"github.com/automoto/shmup/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newArenaECS(t *testing.T, waves []combat.Wave) (*ecs.ECS, *combat.Simulation) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	sim, err := match.New(match.Options{Seed: 7, Waves: waves})
	require.NoError(t, err)
	factory.CreateArena(e, sim, 7)
	factory.CreateHUD(e)
	return e, sim
}

func TestPlayerIntent(t *testing.T) {
	tests := []struct {
		name string
		held []keys.ActionID
		want combat.Input
	}{
		{"idle", nil, combat.Input{}},
		{"up left", []keys.ActionID{keys.ActionMoveUp, keys.ActionMoveLeft}, combat.Input{Move: gamemath.V(-1, -1)}},
		{"opposites cancel", []keys.ActionID{keys.ActionMoveLeft, keys.ActionMoveRight}, combat.Input{}},
		{"fire both", []keys.ActionID{keys.ActionFire, keys.ActionAltFire, keys.ActionMoveDown},
			combat.Input{Move: gamemath.V(0, 1), Fire: true, AltFire: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in components.InputData
			for _, id := range tt.held {
				in.Held = in.Held.With(id)
			}
			assert.Equal(t, tt.want, PlayerIntent(&in))
		})
	}
}

func TestInputEdgesAndDevice(t *testing.T) {
	pause := components.ActionSet(0).With(keys.ActionPause)
	var in components.InputData

	in.Advance(pause, 0)
	assert.True(t, in.Pressed(keys.ActionPause))
	assert.Equal(t, components.DeviceKeyboard, in.Device)

	in.Advance(0, pause)
	assert.True(t, in.Down(keys.ActionPause))
	assert.False(t, in.Pressed(keys.ActionPause))
	assert.Equal(t, components.DeviceGamepad, in.Device)

	// An idle step keeps the last device.
	in.Advance(0, 0)
	assert.False(t, in.Down(keys.ActionPause))
	assert.Equal(t, components.DeviceGamepad, in.Device)
}

func TestStickActions(t *testing.T) {
	dz := keys.Input.StickDeadzone

	assert.Zero(t, stickActions(dz/2, -dz/2, dz))

	held := stickActions(-0.9, 0.8, dz)
	assert.True(t, held.Has(keys.ActionMoveLeft))
	assert.True(t, held.Has(keys.ActionMoveDown))
	assert.False(t, held.Has(keys.ActionMoveRight))
	assert.False(t, held.Has(keys.ActionMoveUp))
}

func TestPauseToggleStopsArena(t *testing.T) {
	e, sim := newArenaECS(t, nil)
	step := WithGameplayChecks(UpdateArena)
	pause := components.ActionSet(0).With(keys.ActionPause)

	step(e)
	assert.Equal(t, 1, sim.Stats().Frames)

	input := GetOrCreateInput(e)
	input.Advance(pause, 0)
	UpdatePause(e)
	require.True(t, IsPaused(e))

	step(e)
	assert.Equal(t, 1, sim.Stats().Frames)

	// Holding the key does not toggle again.
	input.Advance(pause, 0)
	UpdatePause(e)
	assert.True(t, IsPaused(e))

	input.Advance(0, 0)
	input.Advance(pause, 0)
	UpdatePause(e)
	assert.False(t, IsPaused(e))
	step(e)
	assert.Equal(t, 2, sim.Stats().Frames)
}

func TestBannerAppearsWhenLevelCleared(t *testing.T) {
	e, sim := newArenaECS(t, []combat.Wave{})
	require.Equal(t, combat.Won, sim.Status())

	_, ready := ResultsReady(e)
	assert.False(t, ready)

	UpdateBanner(e)
	banner := GetOrCreateBanner(e)
	assert.True(t, banner.Shown)
	assert.True(t, banner.Saved)
	assert.Equal(t, combat.Won, banner.Status)
	assert.True(t, IsMatchOver(e))

	for banner.Frames < cfg.HUD.ResultsDelay {
		UpdateBanner(e)
	}
	assert.InDelta(t, 1.0, banner.Alpha, 1e-6)
	assert.Nil(t, banner.Fade)

	res, ready := ResultsReady(e)
	require.True(t, ready)
	assert.Equal(t, combat.Won, res.Status)
	assert.Equal(t, uint64(7), res.Seed)
}

func TestMatchOverFreezesArena(t *testing.T) {
	e, sim := newArenaECS(t, nil)
	sim.Player().Health = 0
	require.Equal(t, combat.Lost, sim.Status())

	UpdateBanner(e)
	WithGameplayChecks(UpdateArena)(e)
	assert.Zero(t, sim.Stats().Frames)

	// The pause key is ignored once the outcome is decided.
	GetOrCreateInput(e).Advance(components.ActionSet(0).With(keys.ActionPause), 0)
	UpdatePause(e)
	assert.False(t, IsPaused(e))
}

func TestBannerWaitsWhileRunning(t *testing.T) {
	e, _ := newArenaECS(t, nil)
	UpdateBanner(e)
	assert.False(t, IsMatchOver(e))
	assert.Zero(t, GetOrCreateBanner(e).Frames)
}

func TestRecordsApply(t *testing.T) {
	var r MatchRecords

	r = r.Apply(MatchResult{Status: combat.Lost, Elapsed: 30, Kills: 4})
	assert.Equal(t, 1, r.Matches)
	assert.Equal(t, 1, r.Losses)
	assert.Zero(t, r.BestClear)
	assert.Equal(t, 4, r.MostKills)

	r = r.Apply(MatchResult{Status: combat.Won, Elapsed: 90, Kills: 2})
	r = r.Apply(MatchResult{Status: combat.Won, Elapsed: 75, Kills: 3})
	r = r.Apply(MatchResult{Status: combat.Won, Elapsed: 80, Kills: 9})

	assert.Equal(t, 4, r.Matches)
	assert.Equal(t, 3, r.Wins)
	assert.Equal(t, 1, r.Losses)
	assert.InDelta(t, 75.0, r.BestClear, 1e-9)
	assert.Equal(t, 9, r.MostKills)
	require.NotNil(t, r.Last)
	assert.InDelta(t, 80.0, r.Last.Elapsed, 1e-9)
}

func TestRecordMatchWithoutStorage(t *testing.T) {
	r := RecordMatch(MatchResult{Status: combat.Won, Elapsed: 12})
	assert.Equal(t, 1, r.Matches)
	assert.Equal(t, 1, r.Wins)

	loaded, err := LoadRecords()
	require.NoError(t, err)
	assert.Zero(t, loaded.Matches)
}
