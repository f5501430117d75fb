package state

import (
	"github.com/bytearena/gridarena/game/arenamap"
	"github.com/bytearena/gridarena/game/collision"
	"github.com/bytearena/gridarena/game/perception"
	"github.com/bytearena/gridarena/game/specs"
	"github.com/pkg/errors"
)

var ErrMissingDirection = errors.New("player placement has no facing direction")

// WorldState is the shared mutable state of a simulation.
// It is not safe for concurrent mutation: the orchestrator owns the write windows.
type WorldState struct {
	Tick         int                               `json:"tick"`
	Map          *arenamap.MapContainer            `json:"-"`
	Specs        specs.ArenaSpecs                  `json:"-"`
	AgentStats   map[arenamap.PlayerID]*AgentStats `json:"agents"`
	PendingShots []PendingShot                     `json:"shots"`

	order []arenamap.PlayerID
}

// NewWorldState builds the tick 0 state from the spawn points of arenaMap and casts the first ray fans.
func NewWorldState(arenaMap *arenamap.MapContainer, s specs.ArenaSpecs) (*WorldState, error) {
	if arenaMap == nil {
		return nil, errors.New("world state needs a map")
	}

	if err := s.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid arena specs")
	}

	ws := &WorldState{
		Tick:         0,
		Map:          arenaMap,
		Specs:        s,
		AgentStats:   make(map[arenamap.PlayerID]*AgentStats),
		PendingShots: make([]PendingShot, 0),
		order:        arenaMap.GetPlayerIDs(),
	}

	for _, id := range ws.order {
		placement, _ := arenaMap.GetPlacement(id)
		if placement.Direction == nil {
			return nil, errors.Wrapf(ErrMissingDirection, "player %s at %s", id, placement.Position)
		}

		ws.AgentStats[id] = NewAgentStats(placement)
	}

	ws.refreshRays()

	return ws, nil
}

// GetPlayerIDs returns the stable enumeration order of players.
func (ws *WorldState) GetPlayerIDs() []arenamap.PlayerID {
	ids := make([]arenamap.PlayerID, len(ws.order))
	copy(ids, ws.order)
	return ids
}

func (ws *WorldState) GetAgentStats(id arenamap.PlayerID) (*AgentStats, bool) {
	stats, ok := ws.AgentStats[id]
	return stats, ok
}

// AliveTeams returns the teams with at least one living player, in enumeration order.
func (ws *WorldState) AliveTeams() []string {
	seen := make(map[string]bool)
	teams := make([]string, 0)

	for _, id := range ws.order {
		stats := ws.AgentStats[id]
		if stats.IsAlive && !seen[stats.GetTeam()] {
			seen[stats.GetTeam()] = true
			teams = append(teams, stats.GetTeam())
		}
	}

	return teams
}

// Snapshot copies the agent stats, for consumers that must not observe later mutations.
func (ws *WorldState) Snapshot() map[arenamap.PlayerID]AgentStats {
	snapshot := make(map[arenamap.PlayerID]AgentStats, len(ws.AgentStats))
	for id, stats := range ws.AgentStats {
		snapshot[id] = stats.Clone()
	}

	return snapshot
}

// livingBodies indexes the living agents for point queries.
func (ws *WorldState) livingBodies() *collision.BodyIndex {
	bodies := make([]collision.Body, 0, len(ws.order))

	for i, id := range ws.order {
		stats := ws.AgentStats[id]
		if !stats.IsAlive {
			continue
		}

		bodies = append(bodies, collision.Body{
			ID:       string(id),
			Team:     stats.GetTeam(),
			Position: stats.GetPosition(),
			Order:    i,
		})
	}

	return collision.NewBodyIndex(bodies, ws.Specs.PlayerDiameter)
}

func (ws *WorldState) refreshRays() {
	bodies := ws.livingBodies()

	for _, id := range ws.order {
		stats := ws.AgentStats[id]
		direction, hasDirection := stats.GetDirection()

		if !stats.IsAlive || !hasDirection {
			stats.Rays = make([]perception.Ray, 0)
			continue
		}

		stats.Rays = perception.CastRayFan(ws.Map, perception.Caster{
			ID:       string(id),
			Team:     stats.GetTeam(),
			Position: stats.GetPosition(),
			Facing:   direction,
		}, bodies, ws.Specs)
	}
}
