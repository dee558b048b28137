package engine

import "time"

// System is one stage of the tick pipeline
type System interface {
	Name() string
	Priority() int // Lower values run first
	Update(s *Session, dt time.Duration)
}

// AddSystem registers a system, keeping the pipeline sorted by priority
// Equal priorities keep registration order
func (s *Session) AddSystem(system System) {
	s.systems = append(s.systems, system)
	for i := len(s.systems) - 1; i > 0 && s.systems[i-1].Priority() > s.systems[i].Priority(); i-- {
		s.systems[i-1], s.systems[i] = s.systems[i], s.systems[i-1]
	}
}

// Systems returns registered systems in run order
func (s *Session) Systems() []System {
	return s.systems
}
