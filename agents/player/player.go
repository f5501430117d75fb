package player

import (
	"math/rand"

	"github.com/bytearena/gridarena/arenaserver"
	"github.com/bytearena/gridarena/common/blackboard"
	"github.com/bytearena/gridarena/common/utils"
	"github.com/bytearena/gridarena/common/utils/vector"
	"github.com/bytearena/gridarena/game/action"
	"github.com/bytearena/gridarena/game/arenamap"
	"github.com/bytearena/gridarena/game/specs"
)

// PlayerAgent drives one player with a policy. Its blackboard key is its player id.
type PlayerAgent struct {
	blackboard *blackboard.Blackboard
	policy     Policy
	memory     Memory
}

func NewPlayerAgent(id arenamap.PlayerID, bb *blackboard.Blackboard, policy Policy, s specs.ArenaSpecs, rng *rand.Rand) *PlayerAgent {
	return &PlayerAgent{
		blackboard: bb,
		policy:     policy,
		memory: Memory{
			PlayerID:    id,
			Specs:       s,
			LastActions: make([]action.Action, 0, s.LastActionsLen),
			Rand:        rng,
		},
	}
}

func (agent *PlayerAgent) GetRole() arenaserver.Role {
	return arenaserver.RolePlayer
}

func (agent *PlayerAgent) GetPlayerID() arenamap.PlayerID {
	return agent.memory.PlayerID
}

func (agent *PlayerAgent) GetPolicyName() string {
	return agent.policy.Name
}

func (agent *PlayerAgent) GetMemory() Memory {
	return agent.memory
}

// See stores the percept; living players also collect the freshest hint of their mailbox.
// A hint is kept until a newer one arrives.
func (agent *PlayerAgent) See(percept arenaserver.Percept) {
	agent.memory.Percept = percept

	if !percept.IsAlive || agent.blackboard == nil {
		return
	}

	for _, msg := range agent.blackboard.ReadAll(string(agent.memory.PlayerID)) {
		if direction, ok := msg.(vector.Vector2); ok {
			agent.memory.Message = &direction
			utils.Verbose("agent", string(agent.memory.PlayerID)+" received hint "+direction.String())
		}
	}
}

func (agent *PlayerAgent) SelectAction() action.Action {
	if !agent.memory.Percept.IsAlive {
		return action.Wait{}
	}

	act := firstDecision(&agent.memory, agent.policy.Rules)
	if act == nil {
		act = action.Wait{}
	}

	agent.memory.turnHint(act)
	agent.memory.remember(act)
	return act
}
