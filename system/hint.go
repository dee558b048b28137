package system

import (
	"time"

	"github.com/1pavlov/vibecoded-kids-games/engine"
	"github.com/1pavlov/vibecoded-kids-games/event"
	"github.com/1pavlov/vibecoded-kids-games/parameter"
)

// HintSystem highlights the next expected letter once the player has been idle long enough
type HintSystem struct{}

func NewHintSystem() *HintSystem {
	return &HintSystem{}
}

func (h *HintSystem) Name() string {
	return "hint"
}

func (h *HintSystem) Priority() int {
	return parameter.PriorityHint
}

func (h *HintSystem) Update(s *engine.Session, dt time.Duration) {
	expected, ok := s.Progress.Expected()
	if !ok || s.HintShown {
		return
	}

	s.HintElapsed += dt
	if s.HintElapsed < s.Config.Timing.Hint {
		return
	}

	for i := range s.Letters {
		l := &s.Letters[i]
		if !l.Active() || !l.Matches(expected) {
			continue
		}
		l.Highlighted = true
		s.HintShown = true
		s.Emit(event.EventHintShown, &event.LetterPayload{Char: l.Char, Pos: l.Pos, Index: i, Correct: true})
		return
	}
}
