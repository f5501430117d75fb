package arenaserver_test

import (
	"context"
	"io"
	"os"
	"testing"
	"time"

	notify "github.com/bitly/go-notify"
	"github.com/bytearena/gridarena/arenaserver"
	"github.com/bytearena/gridarena/arenaserver/mocks"
	"github.com/bytearena/gridarena/common/blackboard"
	"github.com/bytearena/gridarena/common/utils"
	"github.com/bytearena/gridarena/game/action"
	"github.com/bytearena/gridarena/game/arenamap"
	"github.com/bytearena/gridarena/game/perception"
	"github.com/bytearena/gridarena/game/specs"
	"github.com/bytearena/gridarena/game/state"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	utils.SetDebugOutput(io.Discard)
	os.Exit(m.Run())
}

type scriptedAgent struct {
	id       arenamap.PlayerID
	role     arenaserver.Role
	script   []action.Action
	tick     int
	percepts []arenaserver.Percept
}

func (a *scriptedAgent) GetRole() arenaserver.Role       { return a.role }
func (a *scriptedAgent) GetPlayerID() arenamap.PlayerID  { return a.id }
func (a *scriptedAgent) See(percept arenaserver.Percept) { a.percepts = append(a.percepts, percept) }

func (a *scriptedAgent) SelectAction() action.Action {
	defer func() { a.tick++ }()
	if a.tick < len(a.script) {
		return a.script[a.tick]
	}
	return action.Wait{}
}

func player(id arenamap.PlayerID, script ...action.Action) *scriptedAgent {
	return &scriptedAgent{id: id, role: arenaserver.RolePlayer, script: script}
}

func observer() *scriptedAgent {
	return &scriptedAgent{role: arenaserver.RoleObserver}
}

var sevenBySeven = []string{
	"A....",
	".....",
	".....",
	".....",
	"....B",
}

func makeWorld(t *testing.T, rows ...string) (*state.WorldState, []arenamap.PlayerID) {
	s := specs.MakeDefaultArenaSpecs()
	m, err := arenamap.NewMapContainer(rows, s.RotateDegrees)
	require.Nil(t, err)

	ws, err := state.NewWorldState(m, s)
	require.Nil(t, err)

	return ws, ws.GetPlayerIDs()
}

func TestKillCompletesSimulation(t *testing.T) {
	ctrl := gomock.NewController(t)
	renderer := mocks.NewMockRenderer(ctrl)
	renderer.EXPECT().Display(gomock.Any()).Return(nil).Times(7)
	renderer.EXPECT().Stop().Times(1)

	ws, ids := makeWorld(t, sevenBySeven...)
	shooter := player(ids[0], action.Shoot{Angle: 0})
	target := player(ids[1])

	sim, err := arenaserver.NewSimulation(ws, action.NewDefaultRegistry(), []arenaserver.Agent{target, shooter}, renderer, 100)
	require.Nil(t, err)
	assert.False(t, sim.IsComplete())

	require.Nil(t, sim.Run(context.Background()))

	assert.Equal(t, 6, sim.GetTick())
	assert.Equal(t, arenaserver.StatusComplete, sim.GetStatus())
	assert.True(t, sim.IsComplete())
	assert.False(t, ws.AgentStats[ids[1]].IsAlive)

	kills := sim.GetKills()
	require.Len(t, kills, 1)
	assert.Equal(t, ids[0], kills[0].Shooter)
	assert.Equal(t, ids[1], kills[0].Victim)

	summary := arenaserver.Summarize(ws)
	assert.Equal(t, "A", summary.Winner)
	assert.Equal(t, []arenaserver.TeamSummary{
		{Team: "A", Players: 1, Alive: 1, Kills: 1},
		{Team: "B", Players: 1, Alive: 0, Kills: 0},
	}, summary.Teams)

	assert.Equal(t, errors.Cause(sim.DoTick()), arenaserver.ErrSimulationComplete)
}

func TestMaxTicks(t *testing.T) {
	ctrl := gomock.NewController(t)
	renderer := mocks.NewMockRenderer(ctrl)
	renderer.EXPECT().Display(gomock.Any()).Return(nil).Times(6)
	renderer.EXPECT().Stop().Times(1)

	ws, ids := makeWorld(t, sevenBySeven...)
	sim, err := arenaserver.NewSimulation(ws, action.NewDefaultRegistry(), []arenaserver.Agent{player(ids[0]), player(ids[1])}, renderer, 5)
	require.Nil(t, err)

	require.Nil(t, sim.Run(context.Background()))
	assert.Equal(t, 5, sim.GetTick())
	assert.Equal(t, "", arenaserver.Summarize(ws).Winner)
}

func TestRendererStopRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	renderer := mocks.NewMockRenderer(ctrl)
	renderer.EXPECT().Display(gomock.Any()).Return(nil).Times(3)
	renderer.EXPECT().Display(gomock.Any()).Return(arenaserver.ErrStopRequested)
	renderer.EXPECT().Stop().Times(1)

	ws, ids := makeWorld(t, sevenBySeven...)
	sim, err := arenaserver.NewSimulation(ws, action.NewDefaultRegistry(), []arenaserver.Agent{player(ids[0]), player(ids[1])}, renderer, 100)
	require.Nil(t, err)

	assert.Nil(t, sim.Run(context.Background()))
	assert.Equal(t, 3, sim.GetTick())
	assert.Equal(t, arenaserver.StatusRunning, sim.GetStatus())
}

func TestInitialStateIsDisplayed(t *testing.T) {
	ctrl := gomock.NewController(t)
	renderer := mocks.NewMockRenderer(ctrl)

	ticks := make([]int, 0)
	renderer.EXPECT().Display(gomock.Any()).DoAndReturn(func(ws *state.WorldState) error {
		ticks = append(ticks, ws.Tick)
		return nil
	}).Times(3)
	renderer.EXPECT().Stop().Times(1)

	ws, ids := makeWorld(t, sevenBySeven...)
	sim, err := arenaserver.NewSimulation(ws, action.NewDefaultRegistry(), []arenaserver.Agent{player(ids[0]), player(ids[1])}, renderer, 2)
	require.Nil(t, err)

	require.Nil(t, sim.Run(context.Background()))
	assert.Equal(t, []int{0, 1, 2}, ticks)
}

func TestStopRequestOnInitialState(t *testing.T) {
	ctrl := gomock.NewController(t)
	renderer := mocks.NewMockRenderer(ctrl)
	renderer.EXPECT().Display(gomock.Any()).Return(arenaserver.ErrStopRequested)
	renderer.EXPECT().Stop().Times(1)

	ws, ids := makeWorld(t, sevenBySeven...)
	a := player(ids[0])
	sim, err := arenaserver.NewSimulation(ws, action.NewDefaultRegistry(), []arenaserver.Agent{a, player(ids[1])}, renderer, 100)
	require.Nil(t, err)

	assert.Nil(t, sim.Run(context.Background()))
	assert.Equal(t, 0, sim.GetTick())
	assert.Empty(t, a.percepts)
}

func TestCancelledContextStopsBetweenTicks(t *testing.T) {
	ctrl := gomock.NewController(t)
	renderer := mocks.NewMockRenderer(ctrl)
	renderer.EXPECT().Display(gomock.Any()).Return(nil).Times(1)
	renderer.EXPECT().Stop().Times(1)

	ws, ids := makeWorld(t, sevenBySeven...)
	sim, err := arenaserver.NewSimulation(ws, action.NewDefaultRegistry(), []arenaserver.Agent{player(ids[0]), player(ids[1])}, renderer, 100)
	require.Nil(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Nil(t, sim.Run(ctx))
	assert.Equal(t, 0, sim.GetTick())
}

func TestDecisionFailuresAreFatal(t *testing.T) {
	examples := []struct {
		name   string
		decide func() action.Action
		check  func(t *testing.T, err error)
	}{
		{
			name:   "nil action",
			decide: func() action.Action { return nil },
			check: func(t *testing.T, err error) {
				assert.Equal(t, arenaserver.ErrNoDecision, errors.Cause(err))
			},
		},
		{
			name:   "panic",
			decide: func() action.Action { panic("out of ideas") },
			check: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "out of ideas")
			},
		},
	}

	for _, example := range examples {
		t.Run(example.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			ws, ids := makeWorld(t, sevenBySeven...)

			faulty := mocks.NewMockAgent(ctrl)
			faulty.EXPECT().GetRole().Return(arenaserver.RolePlayer).AnyTimes()
			faulty.EXPECT().GetPlayerID().Return(ids[1]).AnyTimes()
			faulty.EXPECT().See(gomock.Any()).AnyTimes()
			faulty.EXPECT().SelectAction().DoAndReturn(example.decide)

			sim, err := arenaserver.NewSimulation(ws, action.NewDefaultRegistry(), []arenaserver.Agent{player(ids[0]), faulty}, nil, 100)
			require.Nil(t, err)

			err = sim.Run(context.Background())
			require.NotNil(t, err)
			example.check(t, err)
			assert.Equal(t, 0, sim.GetTick())
		})
	}
}

func TestApplyOrder(t *testing.T) {
	ws, ids := makeWorld(t, sevenBySeven...)

	applied := make([]arenamap.PlayerID, 0)
	registry := action.NewRegistry()
	for _, kind := range action.DeclaredKinds {
		require.Nil(t, registry.Register(kind, action.ExecutorFunc(func(actor arenamap.PlayerID, act action.Action, ws *state.WorldState) *state.WorldState {
			applied = append(applied, actor)
			return ws
		})))
	}

	agents := []arenaserver.Agent{observer(), player(ids[1]), player(ids[0])}
	sim, err := arenaserver.NewSimulation(ws, registry, agents, nil, 2)
	require.Nil(t, err)
	require.Nil(t, sim.Run(context.Background()))

	assert.Equal(t, []arenamap.PlayerID{ids[0], ids[1], "", ids[0], ids[1], ""}, applied)
}

func TestNewSimulationRejectsBadConfiguration(t *testing.T) {
	ctrl := gomock.NewController(t)
	ws, ids := makeWorld(t, sevenBySeven...)

	strange := mocks.NewMockAgent(ctrl)
	strange.EXPECT().GetRole().Return(arenaserver.Role(7)).AnyTimes()
	strange.EXPECT().GetPlayerID().Return(arenamap.PlayerID("")).AnyTimes()

	examples := []struct {
		name     string
		registry *action.Registry
		agents   []arenaserver.Agent
		cause    error
	}{
		{"unknown player", action.NewDefaultRegistry(), []arenaserver.Agent{player("ghost")}, arenaserver.ErrUnknownPlayer},
		{"unknown role", action.NewDefaultRegistry(), []arenaserver.Agent{strange}, arenaserver.ErrUnknownRole},
		{"incomplete registry", action.NewRegistry(), []arenaserver.Agent{player(ids[0])}, action.ErrUnregisteredAction},
	}

	for _, example := range examples {
		t.Run(example.name, func(t *testing.T) {
			_, err := arenaserver.NewSimulation(ws, example.registry, example.agents, nil, 10)
			assert.Equal(t, example.cause, errors.Cause(err))
		})
	}

	_, err := arenaserver.NewSimulation(ws, action.NewDefaultRegistry(), []arenaserver.Agent{player(ids[0]), player(ids[0])}, nil, 10)
	assert.NotNil(t, err)

	_, err = arenaserver.NewSimulation(ws, action.NewDefaultRegistry(), nil, nil, -1)
	assert.NotNil(t, err)
}

func TestPercepts(t *testing.T) {
	ws, ids := makeWorld(t, sevenBySeven...)
	a := player(ids[0])
	moderator := observer()

	sim, err := arenaserver.NewSimulation(ws, action.NewDefaultRegistry(), []arenaserver.Agent{a, moderator}, nil, 10)
	require.Nil(t, err)

	percept, err := sim.GetPercept(a)
	require.Nil(t, err)
	assert.Equal(t, arenaserver.RolePlayer, percept.Role)
	assert.True(t, percept.IsAlive)
	assert.Equal(t, ws.AgentStats[ids[0]].Rays, percept.Rays)
	assert.Nil(t, percept.AgentStats)

	percept.Rays[0] = perception.Ray{Distance: 0, Object: perception.RayObjectKind.Enemy}
	assert.NotEqual(t, percept.Rays[0], ws.AgentStats[ids[0]].Rays[0])

	global, err := sim.GetPercept(moderator)
	require.Nil(t, err)
	assert.Equal(t, arenaserver.RoleObserver, global.Role)
	assert.Equal(t, ids, global.Order)
	assert.Len(t, global.AgentStats, 2)
	assert.Empty(t, global.Rays)

	_, err = sim.GetPercept(player("ghost"))
	assert.Equal(t, arenaserver.ErrUnknownPlayer, errors.Cause(err))
}

func TestAgentsSeeEveryTick(t *testing.T) {
	ws, ids := makeWorld(t, sevenBySeven...)
	a := player(ids[0])
	moderator := observer()

	sim, err := arenaserver.NewSimulation(ws, action.NewDefaultRegistry(), []arenaserver.Agent{a, player(ids[1]), moderator}, nil, 3)
	require.Nil(t, err)
	require.Nil(t, sim.Run(context.Background()))

	require.Len(t, a.percepts, 3)
	require.Len(t, moderator.percepts, 3)
	for tick, percept := range a.percepts {
		assert.Equal(t, tick, percept.Tick)
	}
}

func TestTearDownCallbacks(t *testing.T) {
	ws, ids := makeWorld(t, sevenBySeven...)
	sim, err := arenaserver.NewSimulation(ws, action.NewDefaultRegistry(), []arenaserver.Agent{player(ids[0]), player(ids[1])}, nil, 1)
	require.Nil(t, err)

	calls := make([]string, 0)
	sim.AddTearDownCall(func() error { calls = append(calls, "first"); return nil })
	sim.AddTearDownCall(func() error { calls = append(calls, "second"); return errors.New("ignored") })

	require.Nil(t, sim.Run(context.Background()))
	sim.TearDown()

	assert.Equal(t, []string{"second", "first"}, calls)
}

func TestKillEventIsPosted(t *testing.T) {
	events := make(chan interface{}, 4)
	notify.Start(arenaserver.EventKill, events)
	defer notify.Stop(arenaserver.EventKill, events)

	ws, ids := makeWorld(t, sevenBySeven...)
	sim, err := arenaserver.NewSimulation(ws, action.NewDefaultRegistry(), []arenaserver.Agent{player(ids[0], action.Shoot{}), player(ids[1])}, nil, 100)
	require.Nil(t, err)
	require.Nil(t, sim.Run(context.Background()))

	select {
	case event := <-events:
		kill, ok := event.(state.Kill)
		require.True(t, ok)
		assert.Equal(t, ids[1], kill.Victim)
	case <-time.After(time.Second):
		t.Fatal("no kill event")
	}
}

func TestSingleTeamIsCompleteFromTheStart(t *testing.T) {
	ws, ids := makeWorld(t, "A...A")
	sim, err := arenaserver.NewSimulation(ws, action.NewDefaultRegistry(), []arenaserver.Agent{player(ids[0]), player(ids[1])}, nil, 100)
	require.Nil(t, err)

	assert.True(t, sim.IsComplete())
	assert.Nil(t, sim.Run(context.Background()))
	assert.Equal(t, 0, sim.GetTick())
}

// messenger writes the tick it decided at to the mailbox of to.
type messenger struct {
	bb   *blackboard.Blackboard
	to   arenamap.PlayerID
	tick int
}

func (m *messenger) GetRole() arenaserver.Role       { return arenaserver.RoleObserver }
func (m *messenger) GetPlayerID() arenamap.PlayerID  { return "" }
func (m *messenger) See(percept arenaserver.Percept) { m.tick = percept.Tick }

func (m *messenger) SelectAction() action.Action {
	m.bb.Write(string(m.to), m.tick)
	return action.Wait{}
}

// listener records what its mailbox held at each tick.
type listener struct {
	*scriptedAgent
	bb       *blackboard.Blackboard
	received map[int][]interface{}
}

func (l *listener) See(percept arenaserver.Percept) {
	l.received[percept.Tick] = l.bb.ReadAll(string(l.id))
}

func TestMessagesAreReadAtTheNextTick(t *testing.T) {
	for run := 0; run < 20; run++ {
		ws, ids := makeWorld(t, sevenBySeven...)
		bb := blackboard.NewBlackboard()

		reader := &listener{scriptedAgent: player(ids[0]), bb: bb, received: make(map[int][]interface{})}
		agents := []arenaserver.Agent{&messenger{bb: bb, to: ids[0]}, reader, player(ids[1])}

		sim, err := arenaserver.NewSimulation(ws, action.NewDefaultRegistry(), agents, nil, 5)
		require.Nil(t, err)
		require.Nil(t, sim.Run(context.Background()))

		assert.Empty(t, reader.received[0])
		for tick := 1; tick < 5; tick++ {
			assert.Equal(t, []interface{}{tick - 1}, reader.received[tick], "tick %d", tick)
		}
	}
}
