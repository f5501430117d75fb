package types

import (
	"sync"
	"testing"

	"github.com/bytearena/gridarena/common/utils/vector"
	"github.com/bytearena/gridarena/game/arenamap"
	"github.com/bytearena/gridarena/game/specs"
	"github.com/bytearena/gridarena/game/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncMap(t *testing.T) {
	m := NewSyncMap()

	var wg sync.WaitGroup
	for _, key := range []string{"c", "a", "b"} {
		wg.Add(1)
		go func(key string) {
			defer wg.Done()
			m.Set(key, key+key)
		}(key)
	}
	wg.Wait()

	assert.Equal(t, 3, m.Size())
	assert.Equal(t, "aa", m.GetGeneric("a"))
	assert.Nil(t, m.GetGeneric("z"))
	assert.Equal(t, []interface{}{"aa", "bb", "cc"}, m.ToArrayGeneric())

	m.Remove("b")
	assert.Equal(t, 2, m.Size())
	assert.Nil(t, m.GetGeneric("b"))
}

func TestMakeVizMessage(t *testing.T) {
	s := specs.MakeDefaultArenaSpecs()
	arenaMap, err := arenamap.NewMapContainer([]string{"A.B"}, s.RotateDegrees)
	require.Nil(t, err)

	ws, err := state.NewWorldState(arenaMap, s)
	require.Nil(t, err)

	ids := ws.GetPlayerIDs()
	require.Len(t, ids, 2)

	ws.PendingShots = append(ws.PendingShots, state.PendingShot{
		PlayerID:       ids[0],
		Origin:         vector.MakeVector2(2, 1),
		Direction:      vector.MakeVector2(1, 0),
		RemainingTicks: 3,
	})

	stats, _ := ws.GetAgentStats(ids[1])
	stats.IsAlive = false

	msg := MakeVizMessage("game", ws)
	assert.Equal(t, "game", msg.GameID)
	assert.Equal(t, 0, msg.Tick)
	require.Len(t, msg.Objects, 3)

	agents := msg.Agents()
	require.Len(t, agents, 2)
	assert.Equal(t, string(ids[0]), agents[0].Id)
	assert.Equal(t, "A", agents[0].Team)
	assert.True(t, agents[0].Alive)
	assert.True(t, agents[0].Position.Equals(vector.MakeVector2(1, 1)))
	assert.InDelta(t, s.PlayerRadius(), agents[0].Radius, 1e-9)
	assert.Equal(t, "B", agents[1].Team)
	assert.False(t, agents[1].Alive)

	projectile := msg.Objects[2]
	assert.Equal(t, VizObjectType.Projectile, projectile.Type)
	assert.Equal(t, "A", projectile.Team)
	assert.InDelta(t, 0, projectile.Orientation, 1e-9)
}
