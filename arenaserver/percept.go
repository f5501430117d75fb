package arenaserver

import (
	"github.com/bytearena/gridarena/game/arenamap"
	"github.com/bytearena/gridarena/game/perception"
	"github.com/bytearena/gridarena/game/specs"
	"github.com/bytearena/gridarena/game/state"
	"github.com/pkg/errors"
)

// Percept is what an agent observes at the start of a tick. Role tells which fields are set:
// players get their own ray fan, observers get a copy of every agent stats.
type Percept struct {
	Role  Role
	Tick  int
	Specs specs.ArenaSpecs

	// RolePlayer
	PlayerID arenamap.PlayerID
	IsAlive  bool
	Rays     []perception.Ray

	// RoleObserver
	Order      []arenamap.PlayerID
	AgentStats map[arenamap.PlayerID]state.AgentStats
}

// GetPercept builds the percept of agent from the current world state.
func (s *Simulation) GetPercept(agent Agent) (Percept, error) {
	return makePercept(s.state, agent)
}

func makePercept(ws *state.WorldState, agent Agent) (Percept, error) {
	percept := Percept{
		Role:  agent.GetRole(),
		Tick:  ws.Tick,
		Specs: ws.Specs,
	}

	switch agent.GetRole() {
	case RolePlayer:
		{
			stats, ok := ws.GetAgentStats(agent.GetPlayerID())
			if !ok {
				return percept, errors.Wrapf(ErrUnknownPlayer, "player %s", agent.GetPlayerID())
			}

			percept.PlayerID = agent.GetPlayerID()
			percept.IsAlive = stats.IsAlive
			percept.Rays = make([]perception.Ray, len(stats.Rays))
			copy(percept.Rays, stats.Rays)
		}
	case RoleObserver:
		{
			percept.Order = ws.GetPlayerIDs()
			percept.AgentStats = ws.Snapshot()
		}
	default:
		return percept, errors.Wrapf(ErrUnknownRole, "role %d", int(agent.GetRole()))
	}

	return percept, nil
}
