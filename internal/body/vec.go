package body

import "math"

type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// IsFinite reports whether both components are ordinary numbers.
func (v Vec2) IsFinite() bool {
	if math.IsNaN(v.X) || math.IsInf(v.X, 0) {
		return false
	}
	if math.IsNaN(v.Y) || math.IsInf(v.Y, 0) {
		return false
	}
	return true
}
