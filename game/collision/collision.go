package collision

import (
	"math"

	"github.com/bytearena/gridarena/common/utils/vector"
)

// PointInWall reports whether point lies inside the square wall cell centered on wall.
// The box is half-open so that a point on a shared edge belongs to exactly one cell.
func PointInWall(point vector.Vector2, wall vector.Vector2, wallSize float64) bool {
	half := wallSize / 2.0
	px, py := point.Get()
	wx, wy := wall.Get()

	return wx-half <= px && px < wx+half &&
		wy-half <= py && py < wy+half
}

// PointInAnyWall reports whether point lies in one of walls.
func PointInAnyWall(point vector.Vector2, walls []vector.Vector2, wallSize float64) bool {
	for _, wall := range walls {
		if PointInWall(point, wall, wallSize) {
			return true
		}
	}

	return false
}

// PointInAgent reports whether point lies strictly inside the disc of an agent centered on center.
func PointInAgent(point vector.Vector2, center vector.Vector2, diameter float64) bool {
	return point.Sub(center).Mag() < diameter/2.0
}

// AgentTouchesWall reports whether the disc of an agent centered on center overlaps the wall cell.
func AgentTouchesWall(center vector.Vector2, wall vector.Vector2, diameter float64, wallSize float64) bool {
	half := wallSize / 2.0
	cx, cy := center.Get()
	wx, wy := wall.Get()

	closest := vector.MakeVector2(
		math.Max(wx-half, math.Min(cx, wx+half)),
		math.Max(wy-half, math.Min(cy, wy+half)),
	)

	return center.Sub(closest).Mag() < diameter/2.0
}

// AgentTouchesAnyWall reports whether the agent disc overlaps one of walls.
func AgentTouchesAnyWall(center vector.Vector2, walls []vector.Vector2, diameter float64, wallSize float64) bool {
	for _, wall := range walls {
		if AgentTouchesWall(center, wall, diameter, wallSize) {
			return true
		}
	}

	return false
}
