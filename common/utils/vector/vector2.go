package vector

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/bytearena/gridarena/common/utils/number"
)

// Vector2 is an immutable 2D vector; every operation returns a new value.
type Vector2 struct {
	x float64
	y float64
}

func MakeVector2(x float64, y float64) Vector2 {
	return Vector2{x, y}
}

// Returns a null vector2
func MakeNullVector2() Vector2 {
	return MakeVector2(0, 0)
}

// Returns the unit vector pointing at the given angle (degrees, counter-clockwise from +x)
func MakeVector2FromAngleDeg(degrees float64) Vector2 {
	radians := degrees * math.Pi / 180.0
	return MakeVector2(
		math.Cos(radians),
		math.Sin(radians),
	)
}

func (v Vector2) Get() (float64, float64) {
	return v.x, v.y
}

func (v Vector2) GetX() float64 {
	return v.x
}

func (v Vector2) GetY() float64 {
	return v.y
}

var floatformat = byte('f')

func (v Vector2) MarshalJSON() ([]byte, error) {
	b := []byte{'['}
	b = strconv.AppendFloat(b, v.x, floatformat, 4, 64)
	b = append(b, byte(','))
	b = strconv.AppendFloat(b, v.y, floatformat, 4, 64)
	return append(b, byte(']')), nil
}

func (v *Vector2) UnmarshalJSON(data []byte) error {
	var coords [2]float64
	if err := json.Unmarshal(data, &coords); err != nil {
		return err
	}

	v.x, v.y = coords[0], coords[1]
	return nil
}

func (a Vector2) Add(b Vector2) Vector2 {
	a.x += b.x
	a.y += b.y
	return a
}

func (a Vector2) Sub(b Vector2) Vector2 {
	a.x -= b.x
	a.y -= b.y
	return a
}

func (a Vector2) Scale(scale float64) Vector2 {
	a.x *= scale
	a.y *= scale
	return a
}

func (a Vector2) MultScalar(f float64) Vector2 {
	return a.Scale(f)
}

func (a Vector2) DivScalar(f float64) Vector2 {
	a.x /= f
	a.y /= f
	return a
}

func (a Vector2) Mag() float64 {
	return math.Hypot(a.x, a.y)
}

// Normalize returns the unit vector with the same direction; the null vector stays null.
func (a Vector2) Normalize() Vector2 {
	mag := a.Mag()
	if mag > 0 {
		return a.DivScalar(mag)
	}
	return a
}

// AngleDeg is the angle of the vector in degrees, in (-180, 180], counter-clockwise from +x.
func (a Vector2) AngleDeg() float64 {
	if a.x == 0 && a.y == 0 {
		return 0
	}

	return math.Atan2(a.y, a.x) * 180.0 / math.Pi
}

// RotateDeg rotates the vector so that a.RotateDeg(d).AngleDeg() == a.AngleDeg() + d (modulo 360).
func (a Vector2) RotateDeg(degrees float64) Vector2 {
	radians := degrees * math.Pi / 180.0
	cos, sin := math.Cos(radians), math.Sin(radians)

	return MakeVector2(
		a.x*cos-a.y*sin,
		a.x*sin+a.y*cos,
	)
}

func (a Vector2) IsNull() bool {
	return number.IsZero(a.x) && number.IsZero(a.y)
}

func (a Vector2) Equals(b Vector2) bool {
	return b.Sub(a).IsNull()
}

func (a Vector2) String() string {
	return "<Vector2(" + number.FloatToStr(a.x, 5) + ", " + number.FloatToStr(a.y, 5) + ")>"
}
