// internal/utils/math.go
package utils

import "math"

// Degrees переводит радианы в градусы.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// ScreenAngle: угол направления (dx, dy) в градусах в экранных координатах:
// ось Y направлена вниз, поэтому dy инвертируется.
func ScreenAngle(dx, dy float64) float64 {
	return Degrees(math.Atan2(-dy, dx))
}
