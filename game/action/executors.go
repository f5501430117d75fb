package action

import (
	"github.com/bytearena/gridarena/common/utils/trigo"
	"github.com/bytearena/gridarena/game/arenamap"
	"github.com/bytearena/gridarena/game/collision"
	"github.com/bytearena/gridarena/game/state"
)

// Executor applies one action kind to the world state.
// Invalid actions (dead actor, no facing, cooldown) leave the state unchanged.
type Executor interface {
	Execute(actor arenamap.PlayerID, act Action, ws *state.WorldState) *state.WorldState
}

type ExecutorFunc func(actor arenamap.PlayerID, act Action, ws *state.WorldState) *state.WorldState

func (fn ExecutorFunc) Execute(actor arenamap.PlayerID, act Action, ws *state.WorldState) *state.WorldState {
	return fn(actor, act, ws)
}

func executeWait(actor arenamap.PlayerID, act Action, ws *state.WorldState) *state.WorldState {
	return ws
}

func executeForward(actor arenamap.PlayerID, act Action, ws *state.WorldState) *state.WorldState {
	stats, ok := ws.GetAgentStats(actor)
	if !ok || !stats.IsAlive {
		return ws
	}

	direction, hasDirection := stats.GetDirection()
	if !hasDirection {
		return ws
	}

	next := trigo.PointOnSegment(stats.GetPosition(), direction, ws.Specs.ForwardDistance)
	if collision.AgentTouchesAnyWall(next, ws.Map.NearestWalls(next), ws.Specs.PlayerDiameter, ws.Specs.WallSize) {
		return ws
	}

	stats.Placement.Position = next
	return ws
}

func makeTurnExecutor(sign float64) ExecutorFunc {
	return func(actor arenamap.PlayerID, act Action, ws *state.WorldState) *state.WorldState {
		stats, ok := ws.GetAgentStats(actor)
		if !ok || !stats.IsAlive {
			return ws
		}

		direction, hasDirection := stats.GetDirection()
		if !hasDirection {
			return ws
		}

		step := ws.Specs.RotateDegrees
		rotated := direction.RotateDeg(sign * step)
		stats.Placement.SetDirection(trigo.SnapToAngleMultiple(rotated, step))

		return ws
	}
}

func executeShoot(actor arenamap.PlayerID, act Action, ws *state.WorldState) *state.WorldState {
	shoot, ok := act.(Shoot)
	if !ok {
		return ws
	}

	stats, ok := ws.GetAgentStats(actor)
	if !ok || !stats.CanShoot() {
		return ws
	}

	direction, _ := stats.GetDirection()

	ws.PendingShots = append(ws.PendingShots, state.PendingShot{
		PlayerID:       actor,
		Origin:         stats.GetPosition(),
		Direction:      direction.RotateDeg(shoot.Angle).Normalize(),
		RemainingTicks: ws.Specs.ShootingDurationTicks,
	})
	stats.ShootingDelay = ws.Specs.ShootingDelayTicks

	return ws
}
