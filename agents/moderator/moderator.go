package moderator

import (
	"math/rand"

	"github.com/bytearena/gridarena/arenaserver"
	"github.com/bytearena/gridarena/common/blackboard"
	"github.com/bytearena/gridarena/common/utils"
	"github.com/bytearena/gridarena/common/utils/trigo"
	"github.com/bytearena/gridarena/common/utils/vector"
	"github.com/bytearena/gridarena/game/action"
	"github.com/bytearena/gridarena/game/arenamap"
	"github.com/bytearena/gridarena/game/perception"
	"github.com/bytearena/gridarena/game/state"
)

// Moderator is a privileged observer. It never acts on the world; it posts enemy directions,
// expressed in the frame of the receiver, on the blackboard key of each player.
type Moderator struct {
	blackboard  *blackboard.Blackboard
	probability float64
	rand        *rand.Rand

	percept  *arenaserver.Percept
	notified map[string]bool
	targets  map[arenamap.PlayerID]arenamap.PlayerID
}

func NewModerator(bb *blackboard.Blackboard, probability float64, rng *rand.Rand) *Moderator {
	return &Moderator{
		blackboard:  bb,
		probability: probability,
		rand:        rng,
		notified:    make(map[string]bool),
		targets:     make(map[arenamap.PlayerID]arenamap.PlayerID),
	}
}

func (m *Moderator) GetRole() arenaserver.Role {
	return arenaserver.RoleObserver
}

func (m *Moderator) GetPlayerID() arenamap.PlayerID {
	return ""
}

func (m *Moderator) See(percept arenaserver.Percept) {
	m.percept = &percept
	m.notified = make(map[string]bool)
}

func (m *Moderator) SelectAction() action.Action {
	if m.percept == nil || !m.draw() {
		return action.Wait{}
	}

	for _, id := range m.percept.Order {
		stats, ok := m.percept.AgentStats[id]
		if !ok || !stats.IsAlive {
			continue
		}

		if sightings := enemyRays(stats.Rays); len(sightings) > 0 {
			m.shareSighting(id, stats, sightings)
		}
	}

	if !m.draw() {
		return action.Wait{}
	}

	for _, id := range m.percept.Order {
		stats, ok := m.percept.AgentStats[id]
		if !ok || !stats.IsAlive || m.notified[stats.GetTeam()] {
			continue
		}

		m.pointToEnemy(id, stats)
	}

	return action.Wait{}
}

func (m *Moderator) draw() bool {
	return m.rand.Float64() < m.probability
}

func enemyRays(rays []perception.Ray) []perception.Ray {
	res := make([]perception.Ray, 0)
	for _, ray := range rays {
		if ray.Sees(perception.RayObjectKind.Enemy) {
			res = append(res, ray)
		}
	}

	return res
}

// shareSighting estimates where the spotter sees an enemy and sends that place to its teammates.
func (m *Moderator) shareSighting(spotter arenamap.PlayerID, stats state.AgentStats, sightings []perception.Ray) {
	facing, ok := stats.GetDirection()
	if !ok {
		return
	}

	estimated := vector.MakeNullVector2()
	for _, ray := range sightings {
		direction := trigo.AbsoluteDirection(ray.Direction, facing)
		hit := trigo.PointOnSegment(stats.GetPosition(), direction, ray.Distance*m.percept.Specs.RayLength)
		estimated = estimated.Add(hit)
	}
	estimated = estimated.DivScalar(float64(len(sightings)))

	team := stats.GetTeam()
	for _, id := range m.percept.Order {
		other := m.percept.AgentStats[id]
		if id == spotter || other.GetTeam() != team || !other.IsAlive {
			continue
		}

		if direction, ok := directionTo(other, estimated); ok {
			utils.Verbose("moderator", "sighting of "+string(spotter)+" sent to "+string(id)+": "+direction.String())
			m.blackboard.Write(string(id), direction)
		}
	}

	m.notified[team] = true
}

// pointToEnemy sends the direction of a living enemy to id. The enemy stays the same until it dies.
func (m *Moderator) pointToEnemy(id arenamap.PlayerID, stats state.AgentStats) {
	target, ok := m.targets[id]
	if targetStats, known := m.percept.AgentStats[target]; !ok || !known || !targetStats.IsAlive {
		candidates := make([]arenamap.PlayerID, 0)
		for _, other := range m.percept.Order {
			otherStats := m.percept.AgentStats[other]
			if otherStats.IsAlive && otherStats.GetTeam() != stats.GetTeam() {
				candidates = append(candidates, other)
			}
		}

		if len(candidates) == 0 {
			delete(m.targets, id)
			return
		}

		target = candidates[m.rand.Intn(len(candidates))]
		m.targets[id] = target
	}

	targetStats := m.percept.AgentStats[target]
	if direction, ok := directionTo(stats, targetStats.GetPosition()); ok {
		utils.Verbose("moderator", "enemy "+string(target)+" pointed to "+string(id)+": "+direction.String())
		m.blackboard.Write(string(id), direction)
	}
}

// directionTo returns the unit vector from the receiver to position, relative to its facing.
func directionTo(receiver state.AgentStats, position vector.Vector2) (vector.Vector2, bool) {
	facing, ok := receiver.GetDirection()
	if !ok {
		return vector.Vector2{}, false
	}

	toTarget := position.Sub(receiver.GetPosition())
	if toTarget.IsNull() {
		return vector.Vector2{}, false
	}

	return trigo.RelativeDirection(toTarget, facing), true
}
