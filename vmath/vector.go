package vmath

import (
	"fmt"
	"math"
)

// Vec2 is a point or direction in continuous world space
type Vec2 struct {
	X, Y float64
}

func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }
func (v Vec2) Dist(o Vec2) float64 { return math.Hypot(v.X-o.X, v.Y-o.Y) }
func (v Vec2) Equal(o Vec2) bool { return v.X == o.X && v.Y == o.Y }
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }
func (v Vec2) String() string { return fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y) }
func (v Vec2) Lerp(o Vec2, t float64) Vec2 { return Vec2{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t} }

// DistSq avoids the sqrt for threshold comparisons
func (v Vec2) DistSq(o Vec2) float64 {
	dx, dy := v.X-o.X, v.Y-o.Y
	return dx*dx + dy*dy
}

// Normalize returns the unit vector, zero-safe
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Rotate rotates by angle radians (counter-clockwise in a y-up frame)
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// StepToward moves v by exactly step toward target
// Returns v unchanged when target is within minDist
func (v Vec2) StepToward(target Vec2, step, minDist float64) Vec2 {
	d := target.Sub(v)
	l := d.Len()
	if l <= minDist {
		return v
	}
	return v.Add(d.Scale(step / l))
}

// ClampTo bounds both coordinates to the rectangle [minX, maxX]×[minY, maxY]
func (v Vec2) ClampTo(minX, minY, maxX, maxY float64) Vec2 {
	return Vec2{Clamp(v.X, minX, maxX), Clamp(v.Y, minY, maxY)}
}
