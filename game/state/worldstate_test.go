package state

import (
	"testing"

	"github.com/bytearena/gridarena/common/utils/vector"
	"github.com/bytearena/gridarena/game/arenamap"
	"github.com/bytearena/gridarena/game/perception"
	"github.com/bytearena/gridarena/game/specs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeWorld(t *testing.T, s specs.ArenaSpecs, rows ...string) (*WorldState, []arenamap.PlayerID) {
	m, err := arenamap.NewMapContainer(rows, s.RotateDegrees)
	require.Nil(t, err)

	ws, err := NewWorldState(m, s)
	require.Nil(t, err)

	return ws, ws.GetPlayerIDs()
}

func shotFrom(ws *WorldState, id arenamap.PlayerID) PendingShot {
	stats := ws.AgentStats[id]
	direction, _ := stats.GetDirection()

	return PendingShot{
		PlayerID:       id,
		Origin:         stats.GetPosition(),
		Direction:      direction,
		RemainingTicks: ws.Specs.ShootingDurationTicks,
	}
}

var sevenBySeven = []string{
	"A....",
	".....",
	".....",
	".....",
	"....B",
}

func TestNewWorldState(t *testing.T) {
	s := specs.MakeDefaultArenaSpecs()
	ws, ids := makeWorld(t, s, sevenBySeven...)

	assert.Equal(t, 0, ws.Tick)
	assert.Equal(t, ws.Map.GetPlayerIDs(), ids)
	assert.Empty(t, ws.PendingShots)
	assert.Equal(t, []string{"A", "B"}, ws.AliveTeams())

	for _, id := range ids {
		stats := ws.AgentStats[id]
		assert.True(t, stats.IsAlive)
		assert.Equal(t, 0, stats.ShootingDelay)
		assert.Len(t, stats.Rays, s.NumRays)
		assert.True(t, stats.CanShoot())
	}

	// A and B face each other along the diagonal
	center := ws.AgentStats[ids[0]].Rays[s.NumRays/2]
	assert.Equal(t, perception.RayObjectKind.Enemy, center.Object)
}

func TestNewWorldStateRejectsInvalidSpecs(t *testing.T) {
	m, err := arenamap.NewMapContainer(sevenBySeven, 15)
	require.Nil(t, err)

	s := specs.MakeDefaultArenaSpecs()
	s.NumRays = 0
	_, err = NewWorldState(m, s)
	assert.NotNil(t, err)

	_, err = NewWorldState(nil, specs.MakeDefaultArenaSpecs())
	assert.NotNil(t, err)

	// a projectile sampled every 2.5 cells would fly through the border
	s = specs.MakeDefaultArenaSpecs()
	s.ShootingLengthPerTick = 100
	_, err = NewWorldState(m, s)
	assert.NotNil(t, err)

	s = specs.MakeDefaultArenaSpecs()
	s.ForwardDistance = 2
	_, err = NewWorldState(m, s)
	assert.NotNil(t, err)
}

func TestShotKillsAcrossTheDiagonal(t *testing.T) {
	s := specs.MakeDefaultArenaSpecs()
	ws, ids := makeWorld(t, s, sevenBySeven...)
	a, b := ids[0], ids[1]

	ws.PendingShots = append(ws.PendingShots, shotFrom(ws, a))

	for tick := 1; tick <= 5; tick++ {
		kills := ws.Advance()
		assert.Empty(t, kills, "tick %d", tick)
		assert.True(t, ws.AgentStats[b].IsAlive)
		assert.Len(t, ws.PendingShots, 1)
	}

	kills := ws.Advance()
	require.Len(t, kills, 1)
	assert.Equal(t, Kill{Tick: 5, Shooter: a, Victim: b}, kills[0])

	assert.Equal(t, 6, ws.Tick)
	assert.False(t, ws.AgentStats[b].IsAlive)
	assert.Equal(t, []arenamap.PlayerID{b}, ws.AgentStats[a].Kills)
	assert.Empty(t, ws.PendingShots)
	assert.Empty(t, ws.AgentStats[b].Rays)
	assert.Equal(t, []string{"A"}, ws.AliveTeams())
}

func TestDeadAgentsDoNotStopShots(t *testing.T) {
	s := specs.MakeDefaultArenaSpecs()
	ws, ids := makeWorld(t, s, sevenBySeven...)
	a, b := ids[0], ids[1]

	ws.AgentStats[b].IsAlive = false
	ws.PendingShots = append(ws.PendingShots, shotFrom(ws, a))

	for tick := 0; tick < s.ShootingDurationTicks; tick++ {
		assert.Empty(t, ws.Advance())
	}

	assert.Empty(t, ws.PendingShots)
	assert.Empty(t, ws.AgentStats[a].Kills)
}

func TestDeadAgentsDoNotBlockRays(t *testing.T) {
	s := specs.MakeDefaultArenaSpecs()
	ws, ids := makeWorld(t, s, sevenBySeven...)

	ws.AgentStats[ids[1]].IsAlive = false
	ws.Advance()

	center := ws.AgentStats[ids[0]].Rays[s.NumRays/2]
	assert.Equal(t, perception.RayObjectKind.Wall, center.Object)
	assert.Empty(t, ws.AgentStats[ids[1]].Rays)
}

func TestShotExpiresAfterExactlyItsDuration(t *testing.T) {
	s := specs.MakeDefaultArenaSpecs()
	s.ShootingDurationTicks = 3
	ws, ids := makeWorld(t, s, "A.........")

	ws.PendingShots = append(ws.PendingShots, PendingShot{
		PlayerID:       ids[0],
		Origin:         vector.MakeVector2(1, 1),
		Direction:      vector.MakeVector2(1, 0),
		RemainingTicks: s.ShootingDurationTicks,
	})

	ws.Advance()
	require.Len(t, ws.PendingShots, 1)
	assert.Equal(t, 2, ws.PendingShots[0].RemainingTicks)
	assert.True(t, ws.PendingShots[0].Origin.Equals(vector.MakeVector2(2, 1)))

	ws.Advance()
	require.Len(t, ws.PendingShots, 1)
	assert.Equal(t, 1, ws.PendingShots[0].RemainingTicks)

	ws.Advance()
	assert.Empty(t, ws.PendingShots)
}

func TestWallStopsShot(t *testing.T) {
	s := specs.MakeDefaultArenaSpecs()
	ws, ids := makeWorld(t, s, "A.#.B")

	ws.PendingShots = append(ws.PendingShots, PendingShot{
		PlayerID:       ids[0],
		Origin:         vector.MakeVector2(1, 1),
		Direction:      vector.MakeVector2(1, 0),
		RemainingTicks: s.ShootingDurationTicks,
	})

	ws.Advance()
	assert.Len(t, ws.PendingShots, 1)

	ws.Advance()
	assert.Empty(t, ws.PendingShots)
	assert.True(t, ws.AgentStats[ids[1]].IsAlive)
}

func TestSimultaneousShotsKillBothShooters(t *testing.T) {
	s := specs.MakeDefaultArenaSpecs()
	ws, ids := makeWorld(t, s, "A.B")
	a, b := ids[0], ids[1]

	ws.PendingShots = append(ws.PendingShots,
		PendingShot{PlayerID: a, Origin: vector.MakeVector2(1, 1), Direction: vector.MakeVector2(1, 0), RemainingTicks: 10},
		PendingShot{PlayerID: b, Origin: vector.MakeVector2(3, 1), Direction: vector.MakeVector2(-1, 0), RemainingTicks: 10},
	)

	assert.Empty(t, ws.Advance())
	kills := ws.Advance()

	assert.Len(t, kills, 2)
	assert.False(t, ws.AgentStats[a].IsAlive)
	assert.False(t, ws.AgentStats[b].IsAlive)
	assert.Equal(t, []arenamap.PlayerID{a}, ws.AgentStats[b].Kills)
	assert.Empty(t, ws.AliveTeams())
}

func TestCooldownDecreasesToZero(t *testing.T) {
	s := specs.MakeDefaultArenaSpecs()
	ws, ids := makeWorld(t, s, sevenBySeven...)

	ws.AgentStats[ids[0]].ShootingDelay = 2
	ws.Advance()
	assert.Equal(t, 1, ws.AgentStats[ids[0]].ShootingDelay)
	assert.False(t, ws.AgentStats[ids[0]].CanShoot())

	ws.Advance()
	ws.Advance()
	assert.Equal(t, 0, ws.AgentStats[ids[0]].ShootingDelay)
	assert.Equal(t, 0, ws.AgentStats[ids[1]].ShootingDelay)
	assert.Equal(t, 3, ws.Tick)
}

func TestSnapshotIsDetached(t *testing.T) {
	s := specs.MakeDefaultArenaSpecs()
	ws, ids := makeWorld(t, s, sevenBySeven...)

	snapshot := ws.Snapshot()
	ws.AgentStats[ids[0]].Kills = append(ws.AgentStats[ids[0]].Kills, ids[1])
	ws.AgentStats[ids[0]].IsAlive = false

	assert.True(t, snapshot[ids[0]].IsAlive)
	assert.Empty(t, snapshot[ids[0]].Kills)
}
