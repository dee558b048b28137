package engine

import (
	"log"
	"time"

	"github.com/1pavlov/vibecoded-kids-games/component"
	"github.com/1pavlov/vibecoded-kids-games/config"
	"github.com/1pavlov/vibecoded-kids-games/content"
	"github.com/1pavlov/vibecoded-kids-games/event"
	"github.com/1pavlov/vibecoded-kids-games/navigation"
	"github.com/1pavlov/vibecoded-kids-games/parameter"
	"github.com/1pavlov/vibecoded-kids-games/status"
	"github.com/1pavlov/vibecoded-kids-games/vmath"
)

// Session owns the whole simulation state of one game
// All mutation happens on the caller's goroutine through Tick and the input methods
type Session struct {
	Creature *component.Creature
	Letters  []component.Letter
	Progress component.WordProgress

	// Field extent in world units and the derived grid size
	Width, Height float64
	Cols, Rows    int

	Words      content.Source
	WordNumber int  // 1-based number of the current word
	Finished   bool // Word source exhausted

	HintElapsed    time.Duration
	HintShown      bool
	OverlayVisible bool

	Elapsed time.Duration // Game time accumulated from ticks
	Frame   int64

	Rng       *vmath.FastRand
	Config    config.Config
	Status    *status.Registry
	Scheduler *Scheduler

	events  *event.EventQueue
	systems []System
}

// NewSession creates a session and loads the first word
// Systems are registered by the caller before the first Tick
func NewSession(cfg config.Config, words content.Source, rng *vmath.FastRand) *Session {
	s := &Session{
		Creature: component.NewCreature(
			vmath.V(parameter.CreatureStartX, parameter.CreatureStartY),
			cfg.Creature.Speed,
			cfg.Creature.Segments,
		),
		Words:     words,
		Rng:       rng,
		Config:    cfg,
		Status:    status.NewRegistry(),
		Scheduler: NewScheduler(),
		events:    event.NewEventQueue(),
	}
	s.setSize(cfg.Field.Width, cfg.Field.Height)
	s.loadNextWord()
	return s
}

func (s *Session) setSize(w, h float64) {
	s.Width = max(w, parameter.MinFieldWidth)
	s.Height = max(h, parameter.MinFieldHeight)
	s.Cols, s.Rows = navigation.GridSize(s.Width, s.Height)
}

// Emit queues an event stamped with the current frame
func (s *Session) Emit(t event.EventType, payload any) {
	s.events.Emit(t, payload, s.Frame)
}

// Schedule defers an event on game time
func (s *Session) Schedule(delay time.Duration, t event.EventType, payload any) {
	s.Scheduler.Schedule(s.Elapsed, delay, event.GameEvent{Type: t, Payload: payload})
}

// Events drains queued events in emission order
func (s *Session) Events() []event.GameEvent {
	return s.events.Consume()
}

// SetTarget points the creature at a world position and counts as player activity
func (s *Session) SetTarget(x, y float64) {
	s.Creature.Target = vmath.V(x, y)
	s.ResetHint()
}

// ResetHint restarts the idle timer and clears any highlight
func (s *Session) ResetHint() {
	s.HintElapsed = 0
	if !s.HintShown {
		return
	}
	s.HintShown = false
	for i := range s.Letters {
		s.Letters[i].Highlighted = false
	}
}

// Tick advances game time by dt and runs every system in priority order
func (s *Session) Tick(dt time.Duration) {
	if dt > parameter.MaxTickDelta {
		dt = parameter.MaxTickDelta
	}
	s.Frame++
	s.Elapsed += dt

	if !s.Finished {
		for _, sys := range s.systems {
			sys.Update(s, dt)
		}
	}

	for _, ev := range s.Scheduler.Due(s.Elapsed) {
		if ev.Type == event.EventWordOverlay {
			s.OverlayVisible = true
		}
		ev.Frame = s.Frame
		s.events.Push(ev)
	}
}

// NextWord abandons the current word and loads the next one
func (s *Session) NextWord() {
	if s.Finished {
		return
	}
	s.Creature.ClearPath()
	s.Scheduler.Clear()
	s.OverlayVisible = false
	s.loadNextWord()
}

// ContinueToNextWord advances only once the current word is complete
func (s *Session) ContinueToNextWord() bool {
	if s.Finished || s.Progress.Phase() != component.PhaseComplete {
		return false
	}
	s.NextWord()
	return true
}

func (s *Session) loadNextWord() {
	word, ok := s.Words.Next()
	if !ok {
		s.Finished = true
		s.Letters = nil
		s.Emit(event.EventGameComplete, &event.WordPayload{Number: s.WordNumber})
		log.Printf("session: word list exhausted after %d words", s.WordNumber)
		return
	}

	s.Progress.Reset(word)
	s.WordNumber = s.Words.Played()
	s.Letters = GenerateLetters(s.Progress.Word, s.Width, s.Height, s.Rng)
	s.HintShown = false
	s.HintElapsed = 0
	s.Emit(event.EventWordLoaded, &event.WordPayload{Word: word, Number: s.WordNumber})
	log.Printf("session: word %d %q with %d letters", s.WordNumber, word, len(s.Letters))
}

// Resize adapts the field to a new extent, pulling entities back inside
func (s *Session) Resize(w, h float64) {
	s.setSize(w, h)

	limitX := s.Width - parameter.ResizeMargin
	limitY := s.Height - parameter.ResizeMargin
	limit := func(p vmath.Vec2) vmath.Vec2 {
		return vmath.V(min(p.X, limitX), min(p.Y, limitY))
	}

	c := s.Creature
	c.Pos = limit(c.Pos)
	c.Target = limit(c.Target)
	for i := range c.Body {
		c.Body[i] = limit(c.Body[i])
	}
	if len(c.Body) > 0 {
		c.Body[0] = c.Pos
	}
	c.ClearPath()

	for i := range s.Letters {
		s.Letters[i].Pos = clampToField(s.Letters[i].Pos, s.Width, s.Height)
	}
	ResolveOverlaps(s.Letters, s.Width, s.Height)
}
