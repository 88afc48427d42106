// internal/component/movement.go
package component

import "math"

// Vec2: точка или вектор на плоскости в пикселях.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }

func (v Vec2) Length() float64 { return math.Hypot(v.X, v.Y) }

// Normalize возвращает единичный вектор. Нулевой вектор остаётся нулевым.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// DistanceTo: евклидово расстояние до o.
func (v Vec2) DistanceTo(o Vec2) float64 {
	return o.Sub(v).Length()
}
