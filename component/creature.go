package component

import (
	"github.com/1pavlov/vibecoded-kids-games/parameter"
	"github.com/1pavlov/vibecoded-kids-games/vmath"
)

// Creature is the player-steered snake: a head chasing a target along a planned path,
// trailed by a chain of body segments
type Creature struct {
	Pos    vmath.Vec2
	Target vmath.Vec2
	Speed  float64

	// Body is ordered head→tail; Body[0] mirrors Pos after every motion step
	Body []vmath.Vec2

	// Path holds world-space waypoints, Path[0] is the next one to reach
	Path []vmath.Vec2
}

// NewCreature places the head at pos with segments trailing left at link distance
func NewCreature(pos vmath.Vec2, speed float64, segments int) *Creature {
	if segments < 1 {
		segments = 1
	}
	body := make([]vmath.Vec2, segments)
	for i := range body {
		body[i] = vmath.V(pos.X-float64(i)*parameter.LinkDistance, pos.Y)
	}
	return &Creature{
		Pos:    pos,
		Target: pos,
		Speed:  speed,
		Body:   body,
	}
}

// Head returns the leading segment
func (c *Creature) Head() vmath.Vec2 {
	return c.Body[0]
}

// Tail returns the last segment
func (c *Creature) Tail() vmath.Vec2 {
	return c.Body[len(c.Body)-1]
}

// SetHead moves the head and the creature position together
func (c *Creature) SetHead(p vmath.Vec2) {
	c.Pos = p
	c.Body[0] = p
}

// Grow appends one segment at the current tail position
// Relaxation pulls it into place as the creature moves on
func (c *Creature) Grow() {
	c.Body = append(c.Body, c.Tail())
}

// ClearPath drops all waypoints, forcing a replan on the next tick
func (c *Creature) ClearPath() {
	c.Path = c.Path[:0]
}

// Stop clears the path and pins the target to the current position
func (c *Creature) Stop() {
	c.ClearPath()
	c.Target = c.Pos
}

// HasReachedTarget reports whether the head is within the arrival threshold
func (c *Creature) HasReachedTarget() bool {
	return c.Pos.Dist(c.Target) < parameter.ReachTargetDistance
}
