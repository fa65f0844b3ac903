package combat

import (
	"math/rand/v2"
	"testing"

	"github.com/automoto/shmup/combat/mocks"
	"github.com/automoto/shmup/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const frameDT = 1.0 / 60

func TestKilledEnemyIsPurgedNextFrame(t *testing.T) {
	sim := newTestSim(nil, 1)
	e := NewEnemy(Simple, gamemath.V(400, 300), &passive, stillStats(100, 0, 30))
	e.Health = 1
	sim.SpawnEnemy(e)
	sim.SpawnProjectile(NewStraight(gamemath.V(400, 300), 5, 0, true, 5, true))

	sim.Step(Input{}, frameDT)

	assert.Equal(t, -4, e.Health)
	assert.False(t, e.Alive())
	assert.False(t, e.Active())
	assert.Contains(t, sim.Enemies(), e, "flagged, not yet purged")
	assert.Equal(t, 1, sim.Stats().Kills)

	sim.Step(Input{}, frameDT)
	assert.NotContains(t, sim.Enemies(), e)
	assert.Empty(t, sim.FriendlyProjectiles())
}

func TestSpawnedProjectileJoinsPoolNextFrame(t *testing.T) {
	sim := newTestSim(nil, 1)
	shooter := NewEnemy(Simple, gamemath.V(100, 100), &BehaviorModel{ShootChance: 1}, stillStats(100, 0, 10))
	sim.SpawnEnemy(shooter)

	sim.Step(Input{}, frameDT)
	require.Len(t, sim.queue.enemy, 1)
	shot := sim.queue.enemy[0]
	assert.NotContains(t, sim.EnemyProjectiles(), shot)
	assert.NotContains(t, sim.FriendlyProjectiles(), shot)

	sim.Step(Input{}, frameDT)
	count := 0
	for _, p := range sim.EnemyProjectiles() {
		if p == shot {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.NotContains(t, sim.FriendlyProjectiles(), shot)
}

func TestEachOverlappingEnemySlamsPlayer(t *testing.T) {
	sim := newTestSim(nil, 1)
	pos := sim.Player().Position
	sim.SpawnEnemy(NewEnemy(Simple, pos, &passive, stillStats(100, 10, 20)))
	sim.SpawnEnemy(NewEnemy(Simple, pos.Add(gamemath.V(10, 0)), &passive, stillStats(100, 7, 20)))

	sim.Step(Input{}, frameDT)

	assert.Equal(t, 83, sim.Player().Health)
	assert.Equal(t, 17, sim.Stats().DamageTaken)
	assert.Less(t, sim.Player().Impulse().X, 0.0, "pushed away from the enemy on its right")
	assert.Greater(t, sim.Enemies()[1].Impulse().X, 0.0, "enemy pushed the opposite way")

	// the immunity window opens on the player's next update
	sim.Step(Input{}, frameDT)
	assert.Equal(t, 83, sim.Player().Health)
}

func TestPlayerImmunityWindow(t *testing.T) {
	f := newTestFrame(frameDT, 1)
	p := f.Player

	p.TakeDamage(5)
	p.TakeDamage(5)
	assert.Equal(t, 90, p.Health, "hits in the same frame all land")

	p.Update(f)
	p.TakeDamage(5)
	assert.Equal(t, 90, p.Health)
	assert.True(t, p.Immune())

	for i := 0; i < 10; i++ {
		p.Update(f)
	}
	assert.False(t, p.Immune())
	p.TakeDamage(5)
	assert.Equal(t, 85, p.Health)
}

func TestEnemyShotHitsPlayer(t *testing.T) {
	sim := newTestSim(nil, 1)
	shot := NewStraight(sim.Player().Position, 5, 0, true, 50, false)
	sim.SpawnProjectile(shot)

	sim.Step(Input{}, frameDT)

	assert.Equal(t, 95, sim.Player().Health, "enemy shots deal fixed damage")
	assert.False(t, shot.Active())
}

func TestFriendlyShotIgnoresPlayer(t *testing.T) {
	sim := newTestSim(nil, 1)
	shot := NewStraight(sim.Player().Position, 5, 0, true, 50, true)
	sim.SpawnProjectile(shot)

	sim.Step(Input{}, frameDT)

	assert.Equal(t, 100, sim.Player().Health)
	assert.True(t, shot.Active())
}

func TestProjectileDamagesEveryOverlappedEnemyOnlyOnce(t *testing.T) {
	sim := newTestSim(nil, 1)
	a := NewEnemy(Simple, gamemath.V(300, 200), &passive, stillStats(100, 0, 20))
	b := NewEnemy(Simple, gamemath.V(310, 200), &passive, stillStats(100, 0, 20))
	sim.SpawnEnemy(a)
	sim.SpawnEnemy(b)
	sim.SpawnProjectile(NewStraight(gamemath.V(305, 200), 5, 0, true, 10, true))
	sim.SpawnProjectile(NewStraight(gamemath.V(306, 200), 5, 0, true, 10, true))

	sim.Step(Input{}, frameDT)

	assert.Equal(t, 80, a.Health, "both shots hit the first enemy")
	assert.Equal(t, 100, b.Health, "spent shots cannot hit again")
}

func TestWaveSpawnsAfterDelay(t *testing.T) {
	sim := newTestSim(NewLevel([]Wave{waveOf(2), waveOf(1)}, 1), 1)

	for i := 0; i < 3; i++ {
		sim.Step(Input{}, 0.25)
		require.Empty(t, sim.Enemies())
	}
	sim.Step(Input{}, 0.25)
	assert.Len(t, sim.Enemies(), 2)
	assert.Equal(t, "Wave 1 of 2", sim.Level().WaveInfo())

	sim.Step(Input{}, 0.25)
	assert.Len(t, sim.Enemies(), 2, "no new wave while enemies remain")
}

func TestStatusWonWhenLevelCleared(t *testing.T) {
	sim := newTestSim(nil, 1)
	sim.Step(Input{}, frameDT)
	assert.Equal(t, Won, sim.Status())
}

func TestStatusWaitsForEnemyShots(t *testing.T) {
	sim := newTestSim(NewLevel([]Wave{waveOf(1)}, 1), 1)
	sim.Player().Health = 0
	sim.SpawnProjectile(NewStraight(gamemath.V(100, 100), 5, -500, true, 5, false))

	sim.Step(Input{}, frameDT)
	assert.Equal(t, Running, sim.Status())
	assert.False(t, sim.Player().Active())

	for i := 0; i < 30; i++ {
		sim.Step(Input{}, frameDT)
	}
	assert.Equal(t, Lost, sim.Status())
}

func TestPlayerMovementAndFire(t *testing.T) {
	sim := newTestSim(nil, 1)
	start := sim.Player().Position

	sim.Step(Input{Move: gamemath.V(1, 0), Fire: true}, 0.1)

	assert.InDelta(t, start.X+25, sim.Player().Position.X, 1e-9)
	assert.InDelta(t, 250/1.5, sim.Player().Velocity.X, 1e-9)
	require.Len(t, sim.queue.friendly, 1)
	assert.Equal(t, gamemath.V(0, -500), sim.queue.friendly[0].Velocity)

	sim.Step(Input{Fire: true}, 0.1)
	assert.Len(t, sim.FriendlyProjectiles(), 1, "cooldown blocks the second shot")
	assert.Zero(t, sim.Pending())
	assert.Equal(t, 1, sim.Stats().ShotsFired)
}

func TestAltFireNeedsATarget(t *testing.T) {
	sim := newTestSim(nil, 1)
	sim.Step(Input{AltFire: true}, frameDT)
	assert.Zero(t, sim.Pending())

	e := NewEnemy(Simple, gamemath.V(400, 100), &passive, stillStats(100, 0, 20))
	sim.SpawnEnemy(e)
	sim.Step(Input{AltFire: true}, frameDT)
	require.Len(t, sim.queue.friendly, 1)
	shot := sim.queue.friendly[0]
	assert.Equal(t, MultiTargetHoming, shot.Kind)
	assert.Equal(t, Target(e), shot.Target())
}

func TestShotsFiredCountsTriggerPullsOnly(t *testing.T) {
	sim := newTestSim(nil, 1)
	e := NewEnemy(Simple, gamemath.V(400, 100), &passive, stillStats(100, 0, 20))
	sim.SpawnEnemy(e)
	sim.Step(Input{AltFire: true}, frameDT)
	require.Equal(t, 1, sim.Stats().ShotsFired)

	// with its only target gone the homing shot bursts on its next update
	e.MarkForRemoval()
	sim.Step(Input{}, frameDT)
	require.Len(t, sim.queue.friendly, sim.cfg.Player.AltShotChildren)
	sim.Step(Input{}, frameDT)

	assert.Equal(t, 1, sim.Stats().ShotsFired, "burst children are not trigger pulls")
}

func TestDeadPlayerIgnoresInput(t *testing.T) {
	sim := newTestSim(nil, 1)
	sim.Player().Health = 0
	start := sim.Player().Position

	sim.Step(Input{Move: gamemath.V(0, -1), Fire: true}, 0.1)

	assert.Equal(t, start, sim.Player().Position)
	assert.Zero(t, sim.Pending())
}

func TestSameSeedSameMatch(t *testing.T) {
	run := func() []string {
		sim := newTestSim(NewLevel(testWaves(), 1), 99)
		for i := 0; i < 900; i++ {
			sim.Step(Input{Move: gamemath.V(float64(i%3-1), 0), Fire: i%2 == 0, AltFire: i%90 == 0}, frameDT)
		}
		var out []string
		for _, e := range sim.Enemies() {
			out = append(out, e.String())
		}
		return append(out, sim.Player().String(), sim.Level().WaveInfo())
	}
	assert.Equal(t, run(), run())
}

func TestDrawOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockRenderer(ctrl)

	sim := newTestSim(nil, 1)
	shot := NewStraight(gamemath.V(50, 50), 5, 0, true, 10, true)
	spent := NewStraight(gamemath.V(60, 60), 5, 0, true, 10, true)
	spent.MarkForRemoval()
	e := NewEnemy(Simple, gamemath.V(200, 100), &passive, stillStats(100, 0, 20))
	gone := NewEnemy(Simple, gamemath.V(300, 100), &passive, stillStats(100, 0, 20))
	gone.MarkForRemoval()
	sim.friendly = []*Projectile{shot, spent}
	sim.enemies = []*Enemy{e, gone}
	player := sim.Player()

	gomock.InOrder(
		r.EXPECT().Circle(shot.Position, 5.0, ColorFriendlyShot),
		r.EXPECT().Circle(player.Position, player.Size*2, ColorPlayerRing),
		r.EXPECT().Circle(player.Position, player.Size, ColorPlayerCore),
		r.EXPECT().Circle(e.Position, e.Size, e.HealthColor()),
		r.EXPECT().Text("100", e.Position, ColorLabel),
	)

	sim.Draw(r)
}

func TestNewSimulationDefaults(t *testing.T) {
	sim := NewSimulation(Options{Rand: rand.New(rand.NewPCG(1, 1)), Logger: quietLogger()})
	assert.Equal(t, Arena{Width: 800, Height: 600}, sim.Arena())
	assert.Equal(t, PlayerStart(sim.Arena()), sim.Player().Position)
	assert.True(t, sim.Level().Completed())
	assert.Empty(t, sim.Enemies())
}
