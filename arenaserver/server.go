package arenaserver

import (
	"sort"
	"sync"
	"time"

	"github.com/bytearena/gridarena/game/action"
	"github.com/bytearena/gridarena/game/arenamap"
	"github.com/bytearena/gridarena/game/state"
	"github.com/pkg/errors"
)

// Simulation runs the sense / act / update loop over a world state.
type Simulation struct {
	state    *state.WorldState
	registry *action.Registry
	agents   []Agent
	renderer Renderer

	maxTicks     int
	logEvery     int
	monitorEvery time.Duration
	status       Status

	kills       []state.Kill
	tickCounter *counter
	killCounter *counter

	tearDownCallbacks      []TearDownCallback
	tearDownCallbacksMutex *sync.Mutex
}

// NewSimulation checks the configuration and orders agents for the apply phase: players in
// spawn order, then observers in the order given.
func NewSimulation(ws *state.WorldState, registry *action.Registry, agents []Agent, renderer Renderer, maxTicks int) (*Simulation, error) {
	if ws == nil {
		return nil, errors.New("simulation needs a world state")
	}

	if registry == nil {
		return nil, errors.New("simulation needs an action registry")
	}

	if err := registry.Validate(action.DeclaredKinds...); err != nil {
		return nil, errors.Wrap(err, "incomplete action registry")
	}

	if maxTicks < 0 {
		return nil, errors.Errorf("max ticks must not be negative, got %d", maxTicks)
	}

	if renderer == nil {
		renderer = NullRenderer{}
	}

	ordered, err := orderAgents(ws, agents)
	if err != nil {
		return nil, err
	}

	s := &Simulation{
		state:    ws,
		registry: registry,
		agents:   ordered,
		renderer: renderer,

		maxTicks:     maxTicks,
		logEvery:     50,
		monitorEvery: time.Second,
		status:       StatusRunning,

		kills:       make([]state.Kill, 0),
		tickCounter: &counter{},
		killCounter: &counter{},

		tearDownCallbacks:      make([]TearDownCallback, 0),
		tearDownCallbacksMutex: &sync.Mutex{},
	}

	if s.shouldComplete() {
		s.status = StatusComplete
	}

	return s, nil
}

func orderAgents(ws *state.WorldState, agents []Agent) ([]Agent, error) {
	rank := make(map[arenamap.PlayerID]int)
	for i, id := range ws.GetPlayerIDs() {
		rank[id] = i
	}

	seen := make(map[arenamap.PlayerID]bool)
	for _, agent := range agents {
		if agent == nil {
			return nil, errors.New("nil agent")
		}

		switch agent.GetRole() {
		case RolePlayer:
			id := agent.GetPlayerID()
			if _, ok := rank[id]; !ok {
				return nil, errors.Wrapf(ErrUnknownPlayer, "player %s", id)
			}

			if seen[id] {
				return nil, errors.Errorf("player %s is driven by more than one agent", id)
			}
			seen[id] = true
		case RoleObserver:
		default:
			return nil, errors.Wrapf(ErrUnknownRole, "role %d", int(agent.GetRole()))
		}
	}

	ordered := make([]Agent, len(agents))
	copy(ordered, agents)

	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.GetRole() != b.GetRole() {
			return a.GetRole() == RolePlayer
		}

		if a.GetRole() == RolePlayer {
			return rank[a.GetPlayerID()] < rank[b.GetPlayerID()]
		}

		return false
	})

	return ordered, nil
}

func (s *Simulation) GetState() *state.WorldState {
	return s.state
}

func (s *Simulation) GetStatus() Status {
	return s.status
}

func (s *Simulation) GetTick() int {
	return s.state.Tick
}

// GetKills returns every kill resolved so far, in order.
func (s *Simulation) GetKills() []state.Kill {
	kills := make([]state.Kill, len(s.kills))
	copy(kills, s.kills)
	return kills
}

// IsComplete reports whether the tick limit is reached or at most one team is still alive.
func (s *Simulation) IsComplete() bool {
	return s.status == StatusComplete || s.shouldComplete()
}

func (s *Simulation) shouldComplete() bool {
	return s.state.Tick >= s.maxTicks || len(s.state.AliveTeams()) <= 1
}

func (s *Simulation) AddTearDownCall(fn TearDownCallback) {
	s.tearDownCallbacksMutex.Lock()
	defer s.tearDownCallbacksMutex.Unlock()

	s.tearDownCallbacks = append(s.tearDownCallbacks, fn)
}
