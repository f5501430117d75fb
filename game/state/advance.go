package state

import (
	"github.com/bytearena/gridarena/common/utils/trigo"
	"github.com/bytearena/gridarena/game/arenamap"
	"github.com/bytearena/gridarena/game/collision"
)

// Advance runs the autonomous part of a tick: projectiles travel and resolve, cooldowns
// decrease, every ray fan is recomputed and the tick counter moves forward.
// It returns the kills resolved during this tick.
func (ws *WorldState) Advance() []Kill {
	kills := ws.updateShots()

	for _, id := range ws.order {
		stats := ws.AgentStats[id]
		if stats.ShootingDelay > 0 {
			stats.ShootingDelay--
		}
	}

	ws.refreshRays()
	ws.Tick++

	return kills
}

func (ws *WorldState) updateShots() []Kill {
	kills := make([]Kill, 0)
	if len(ws.PendingShots) == 0 {
		return kills
	}

	bodies := ws.livingBodies()
	remaining := make([]PendingShot, 0, len(ws.PendingShots))

	for _, shot := range ws.PendingShots {
		victim, hit := ws.traceShot(shot, bodies)

		if hit {
			if victim != "" {
				kills = append(kills, ws.kill(shot.PlayerID, victim))
			}
			continue
		}

		if shot.RemainingTicks > 1 {
			remaining = append(remaining, PendingShot{
				PlayerID:       shot.PlayerID,
				Origin:         trigo.PointOnSegment(shot.Origin, shot.Direction, ws.Specs.ShootingLengthPerTick),
				Direction:      shot.Direction,
				RemainingTicks: shot.RemainingTicks - 1,
			})
		}
	}

	ws.PendingShots = remaining

	return kills
}

// traceShot samples the segment travelled by shot this tick. Living agents other than the
// shooter are tested before walls at every sample. victim is empty when a wall stopped the shot.
func (ws *WorldState) traceShot(shot PendingShot, bodies *collision.BodyIndex) (victim arenamap.PlayerID, hit bool) {
	steps := ws.Specs.RayTracerSteps

	for step := 1; step <= steps; step++ {
		t := float64(step) / float64(steps) * ws.Specs.ShootingLengthPerTick
		point := trigo.PointOnSegment(shot.Origin, shot.Direction, t)

		for _, body := range bodies.BodiesAt(point) {
			id := arenamap.PlayerID(body.ID)
			if id == shot.PlayerID {
				continue
			}

			if stats, ok := ws.AgentStats[id]; ok && stats.IsAlive {
				return id, true
			}
		}

		if collision.PointInAnyWall(point, ws.Map.NearestWalls(point), ws.Specs.WallSize) {
			return "", true
		}
	}

	return "", false
}

func (ws *WorldState) kill(shooter arenamap.PlayerID, victim arenamap.PlayerID) Kill {
	ws.AgentStats[victim].IsAlive = false

	if stats, ok := ws.AgentStats[shooter]; ok {
		stats.Kills = append(stats.Kills, victim)
	}

	return Kill{
		Tick:    ws.Tick,
		Shooter: shooter,
		Victim:  victim,
	}
}
