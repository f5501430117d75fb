package player

import (
	"math/rand"

	"github.com/bytearena/gridarena/arenaserver"
	"github.com/bytearena/gridarena/common/utils/vector"
	"github.com/bytearena/gridarena/game/action"
	"github.com/bytearena/gridarena/game/arenamap"
	"github.com/bytearena/gridarena/game/specs"
)

// Memory is the state shared by the rules of a policy.
type Memory struct {
	PlayerID arenamap.PlayerID
	Specs    specs.ArenaSpecs
	Percept  arenaserver.Percept

	// Message is the latest direction hint, relative to the facing when it was received.
	Message *vector.Vector2

	LastActions []action.Action // oldest first, at most Specs.LastActionsLen
	Timeout     int             // ticks left on the fallback rules

	Rand *rand.Rand
}

func (memory *Memory) remember(act action.Action) {
	limit := memory.Specs.LastActionsLen
	if limit <= 0 {
		return
	}

	memory.LastActions = append(memory.LastActions, act)
	if overflow := len(memory.LastActions) - limit; overflow > 0 {
		memory.LastActions = append(memory.LastActions[:0:0], memory.LastActions[overflow:]...)
	}
}

// lastKinds returns the kinds of the n most recent actions, or nil if fewer were taken.
func (memory *Memory) lastKinds(n int) []action.Kind {
	if len(memory.LastActions) < n {
		return nil
	}

	kinds := make([]action.Kind, n)
	for i, act := range memory.LastActions[len(memory.LastActions)-n:] {
		kinds[i] = act.GetKind()
	}

	return kinds
}

// turnHint keeps Message relative to the facing once act is applied. Turns always succeed for a
// living player; moves leave the hint as it is.
func (memory *Memory) turnHint(act action.Action) {
	if memory.Message == nil {
		return
	}

	var delta float64
	switch act.(type) {
	case action.TurnLeft:
		delta = memory.Specs.RotateDegrees
	case action.TurnRight:
		delta = -memory.Specs.RotateDegrees
	default:
		return
	}

	turned := memory.Message.RotateDeg(delta)
	memory.Message = &turned
}
