package trigo

import (
	"math"

	"github.com/bytearena/gridarena/common/utils/vector"
)

func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

func RadToDeg(radians float64) float64 {
	return radians * 180.0 / math.Pi
}

// NormalizeAngleDeg brings an angle into (-180, 180].
func NormalizeAngleDeg(degrees float64) float64 {
	degrees = math.Mod(degrees, 360)
	if degrees > 180 {
		degrees -= 360
	} else if degrees <= -180 {
		degrees += 360
	}

	return degrees
}

// SnapAngleDeg rounds an angle to the closest multiple of stepDeg.
func SnapAngleDeg(degrees float64, stepDeg float64) float64 {
	if stepDeg <= 0 {
		return degrees
	}

	return math.Round(degrees/stepDeg) * stepDeg
}

// SnapToAngleMultiple returns the unit vector whose angle is the multiple of stepDeg closest to
// the angle of v. The null vector is returned unchanged.
func SnapToAngleMultiple(v vector.Vector2, stepDeg float64) vector.Vector2 {
	if v.IsNull() {
		return v
	}

	return vector.MakeVector2FromAngleDeg(SnapAngleDeg(v.AngleDeg(), stepDeg))
}

// RelativeDirection expresses absolute in the frame of reference of facing.
func RelativeDirection(absolute vector.Vector2, facing vector.Vector2) vector.Vector2 {
	return vector.MakeVector2FromAngleDeg(
		NormalizeAngleDeg(absolute.AngleDeg() - facing.AngleDeg()),
	)
}

// AbsoluteDirection is the inverse of RelativeDirection.
func AbsoluteDirection(relative vector.Vector2, facing vector.Vector2) vector.Vector2 {
	return vector.MakeVector2FromAngleDeg(
		NormalizeAngleDeg(relative.AngleDeg() + facing.AngleDeg()),
	)
}

// PointOnSegment returns origin + direction * length.
func PointOnSegment(origin vector.Vector2, direction vector.Vector2, length float64) vector.Vector2 {
	return origin.Add(direction.Scale(length))
}
