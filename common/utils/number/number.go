package number

import (
	"math"
	"strconv"
)

var epsilon float64 = 0.000001

// IsZero reports whether f is close enough to 0 to be treated as 0.
func IsZero(f float64) bool {
	return math.Abs(f) < epsilon
}

func Equals(a, b float64) bool {
	return IsZero(a - b)
}

func ToFixed(val float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(val*pow) / pow
}

func FloatToStr(f float64, places int) string {
	return strconv.FormatFloat(f, 'f', places, 64)
}

// Clamp bounds f to [min, max].
func Clamp(f, min, max float64) float64 {
	if f < min {
		return min
	}

	if f > max {
		return max
	}

	return f
}
