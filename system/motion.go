package system

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/1pavlov/vibecoded-kids-games/component"
	"github.com/1pavlov/vibecoded-kids-games/engine"
	"github.com/1pavlov/vibecoded-kids-games/event"
	"github.com/1pavlov/vibecoded-kids-games/navigation"
	"github.com/1pavlov/vibecoded-kids-games/parameter"
	"github.com/1pavlov/vibecoded-kids-games/status"
	"github.com/1pavlov/vibecoded-kids-games/vmath"
)

// MotionSystem steers the creature head along a planned path and drags the body behind it
// Movement is a fixed step per tick, independent of dt
type MotionSystem struct {
	statPlanned  *atomic.Int64
	statFallback *atomic.Int64
	statLength   *status.AtomicFloat
	statSegments *status.AtomicFloat

	// Last target a fallback was reported for, keeps an idle creature from flooding the log
	lastFallback vmath.Vec2
}

func NewMotionSystem(s *engine.Session) *MotionSystem {
	return &MotionSystem{
		statPlanned:  s.Status.Counters.Get(status.PathPlanned),
		statFallback: s.Status.Counters.Get(status.PathFallback),
		statLength:   s.Status.Gauges.Get(status.PathLength),
		statSegments: s.Status.Gauges.Get(status.BodySegments),
	}
}

func (m *MotionSystem) Name() string {
	return "motion"
}

func (m *MotionSystem) Priority() int {
	return parameter.PriorityMotion
}

func (m *MotionSystem) Update(s *engine.Session, _ time.Duration) {
	c := s.Creature

	if len(c.Path) == 0 || c.HasReachedTarget() {
		m.replan(s)
	}

	FollowPath(c)
	RelaxBody(c.Body, c.Pos, parameter.LinkDistance)

	m.statSegments.Set(float64(len(c.Body)))
}

// replan searches from the creature cell to the target cell around non-target letters
// An unreachable target degrades to a single direct waypoint
func (m *MotionSystem) replan(s *engine.Session) {
	c := s.Creature
	expected, ok := s.Progress.Expected()
	grid := navigation.BuildObstacles(s.Letters, s.Cols, s.Rows, expected, ok)

	start := navigation.ToCell(c.Pos)
	end := navigation.ToCell(c.Target)
	m.statPlanned.Add(1)

	cells, found := navigation.FindPath(start, end, grid)
	if !found {
		m.statFallback.Add(1)
		c.Path = append(c.Path[:0], c.Target)
		m.statLength.Set(1)
		if !c.Target.Equal(m.lastFallback) {
			m.lastFallback = c.Target
			s.Emit(event.EventPathFallback, &event.PathPayload{From: c.Pos, To: c.Target})
			log.Printf("motion: no path %v -> %v, heading straight for %v", start, end, c.Target)
		}
		return
	}

	c.Path = navigation.ToWorldPath(c.Path[:0], cells)
	m.statLength.Set(float64(len(c.Path)))
}

// FollowPath takes one step along the path, popping the front waypoint once close enough
// Steps shorter than MinStepDistance are suppressed to avoid jitter on arrival
func FollowPath(c *component.Creature) {
	if len(c.Path) == 0 {
		return
	}

	next := c.Path[0]
	if c.Pos.Dist(next) < parameter.WaypointReachDistance {
		c.Path = c.Path[1:]
		if len(c.Path) == 0 {
			return
		}
		next = c.Path[0]
	}

	c.Pos = c.Pos.StepToward(next, c.Speed, parameter.MinStepDistance)
}

// RelaxBody pins body[0] to head and pulls each later segment to within link of its predecessor
// One sequential pass: segments can end up closer than link, never farther
func RelaxBody(body []vmath.Vec2, head vmath.Vec2, link float64) {
	if len(body) == 0 {
		return
	}
	body[0] = head
	for i := 1; i < len(body); i++ {
		prev := body[i-1]
		d := body[i].Sub(prev)
		dist := d.Len()
		if dist > link {
			body[i] = prev.Add(d.Scale(link / dist))
		}
	}
}
