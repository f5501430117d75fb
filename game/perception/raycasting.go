package perception

import (
	"github.com/bytearena/gridarena/common/utils/trigo"
	"github.com/bytearena/gridarena/common/utils/vector"
	"github.com/bytearena/gridarena/game/arenamap"
	"github.com/bytearena/gridarena/game/collision"
	"github.com/bytearena/gridarena/game/specs"
)

// Caster is the agent a ray fan is cast from.
type Caster struct {
	ID       string
	Team     string
	Position vector.Vector2
	Facing   vector.Vector2
}

// RayAngles returns the absolute angles (degrees) of the fan centered on facingDeg.
func RayAngles(facingDeg float64, s specs.ArenaSpecs) []float64 {
	angles := make([]float64, s.NumRays)

	if s.NumRays == 1 {
		angles[0] = facingDeg
		return angles
	}

	start := facingDeg - s.ViewFOV/2.0
	step := s.ViewFOV / float64(s.NumRays-1)
	for i := range angles {
		angles[i] = start + float64(i)*step
	}

	return angles
}

// CastRayFan casts NumRays rays spread across the field of view of caster.
// bodies must only contain living agents; the caster itself is ignored.
func CastRayFan(arenaMap *arenamap.MapContainer, caster Caster, bodies *collision.BodyIndex, s specs.ArenaSpecs) []Ray {
	facingDeg := caster.Facing.AngleDeg()
	angles := RayAngles(facingDeg, s)

	rays := make([]Ray, len(angles))
	for i, angle := range angles {
		rays[i] = castRay(arenaMap, caster, bodies, s, angle)
		rays[i].Direction = vector.MakeVector2FromAngleDeg(trigo.NormalizeAngleDeg(angle - facingDeg))
	}

	return rays
}

func castRay(arenaMap *arenamap.MapContainer, caster Caster, bodies *collision.BodyIndex, s specs.ArenaSpecs, angle float64) Ray {
	direction := vector.MakeVector2FromAngleDeg(angle)

	for step := 1; step <= s.RayTracerSteps; step++ {
		t := float64(step) / float64(s.RayTracerSteps) * s.RayLength
		point := trigo.PointOnSegment(caster.Position, direction, t)

		if collision.PointInAnyWall(point, arenaMap.NearestWalls(point), s.WallSize) {
			return Ray{Distance: t / s.RayLength, Object: RayObjectKind.Wall}
		}

		for _, body := range bodies.BodiesAt(point) {
			if body.ID == caster.ID {
				continue
			}

			object := RayObjectKind.Enemy
			if body.Team == caster.Team {
				object = RayObjectKind.Teammate
			}

			return Ray{Distance: t / s.RayLength, Object: object}
		}
	}

	return Ray{Distance: 1.0, Object: RayObjectKind.None}
}
