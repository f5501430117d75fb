package player

import (
	"math"

	"github.com/bytearena/gridarena/game/action"
	"github.com/bytearena/gridarena/game/perception"
)

// Rule inspects the memory and either decides (non-nil action) or passes.
type Rule func(memory *Memory) action.Action

const (
	wallAvoidProbability = 0.7
	wallAvoidDistance    = 0.2
	repetitionTimeout    = 50
)

// firstDecision runs rules in order and returns the first decision, nil if every rule passed.
func firstDecision(memory *Memory, rules []Rule) action.Action {
	for _, rule := range rules {
		if act := rule(memory); act != nil {
			return act
		}
	}

	return nil
}

func always(act action.Action) Rule {
	return func(memory *Memory) action.Action {
		return act
	}
}

// aimAtEnemy turns toward the first enemy in sight, and shoots at it once it is close to the
// center of the fan.
func aimAtEnemy(memory *Memory) action.Action {
	rays := memory.Percept.Rays
	half := len(rays) / 2
	window := len(rays) / 4
	if window < 1 {
		window = 1
	}

	for i, ray := range rays {
		if !ray.Sees(perception.RayObjectKind.Enemy) {
			continue
		}

		switch {
		case i <= half-window:
			return action.TurnLeft{}
		case i >= half+window:
			return action.TurnRight{}
		default:
			return action.Shoot{Angle: ray.Direction.AngleDeg()}
		}
	}

	return nil
}

func avoidWalls(memory *Memory) action.Action {
	for _, ray := range memory.Percept.Rays {
		if ray.Sees(perception.RayObjectKind.Wall) && ray.Distance < wallAvoidDistance {
			if memory.Rand.Float64() < wallAvoidProbability {
				return action.TurnLeft{}
			}

			return nil
		}
	}

	return nil
}

func wander(memory *Memory) action.Action {
	switch r := memory.Rand.Float64(); {
	case r < 0.85:
		return action.Forward{}
	case r < 0.95:
		return action.TurnLeft{}
	default:
		return action.Wait{}
	}
}

func anyAction(memory *Memory) action.Action {
	switch memory.Rand.Intn(5) {
	case 0:
		return action.Forward{}
	case 1:
		return action.TurnLeft{}
	case 2:
		return action.TurnRight{}
	case 3:
		fov := memory.Specs.ShootingFOV
		return action.Shoot{Angle: memory.Rand.Float64()*fov - fov/2}
	default:
		return action.Wait{}
	}
}

// detectOscillation arms the timeout when the agent keeps turning left and right.
func detectOscillation(memory *Memory) action.Action {
	kinds := memory.lastKinds(4)
	if kinds == nil {
		return nil
	}

	if kinds[0] == action.KindTurnLeft && kinds[1] == action.KindTurnRight &&
		kinds[2] == action.KindTurnLeft && kinds[3] == action.KindTurnRight {
		memory.Timeout = repetitionTimeout
	}

	return nil
}

// duringTimeout delegates to fallback while the timeout runs.
func duringTimeout(fallback []Rule) Rule {
	return func(memory *Memory) action.Action {
		if memory.Timeout <= 0 {
			return nil
		}

		memory.Timeout--
		return firstDecision(memory, fallback)
	}
}

// followMessage heads toward the direction received on the blackboard.
func followMessage(memory *Memory) action.Action {
	if memory.Message == nil {
		return nil
	}

	angle := memory.Message.AngleDeg()
	switch {
	case math.Abs(angle) <= memory.Specs.RotateDegrees*1.5:
		return action.Forward{}
	case angle < 0:
		return action.TurnLeft{}
	default:
		return action.TurnRight{}
	}
}
