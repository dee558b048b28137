package system

import (
	"log"
	"math"
	"sync/atomic"
	"time"

	"github.com/1pavlov/vibecoded-kids-games/component"
	"github.com/1pavlov/vibecoded-kids-games/engine"
	"github.com/1pavlov/vibecoded-kids-games/event"
	"github.com/1pavlov/vibecoded-kids-games/parameter"
	"github.com/1pavlov/vibecoded-kids-games/status"
	"github.com/1pavlov/vibecoded-kids-games/vmath"
)

// CollectionSystem resolves head contact with letters after motion
// Correct letters in order advance the word; anything else bounces the creature away
type CollectionSystem struct {
	statCollected *atomic.Int64
	statRejected  *atomic.Int64
	statWords     *atomic.Int64
}

func NewCollectionSystem(s *engine.Session) *CollectionSystem {
	return &CollectionSystem{
		statCollected: s.Status.Counters.Get(status.LettersCollected),
		statRejected:  s.Status.Counters.Get(status.LettersRejected),
		statWords:     s.Status.Counters.Get(status.WordsCompleted),
	}
}

func (cs *CollectionSystem) Name() string {
	return "collection"
}

func (cs *CollectionSystem) Priority() int {
	return parameter.PriorityCollection
}

// Update checks letters in slice order; the head is re-read after every bounce
// so later letters see the repositioned creature
func (cs *CollectionSystem) Update(s *engine.Session, _ time.Duration) {
	for i := range s.Letters {
		l := &s.Letters[i]
		if !l.Active() {
			continue
		}
		if s.Creature.Head().Dist(l.Pos) >= parameter.CollisionRadius {
			continue
		}

		expected, ok := s.Progress.Expected()
		if ok && l.Matches(expected) {
			cs.collect(s, i)
		} else {
			cs.reject(s, i)
		}
	}
}

func (cs *CollectionSystem) collect(s *engine.Session, i int) {
	l := &s.Letters[i]
	if !l.Collect() {
		return
	}
	phase := s.Progress.Advance()
	s.Creature.Grow()
	s.ResetHint()

	cs.statCollected.Add(1)
	s.Emit(event.EventLetterCollected, &event.LetterPayload{Char: l.Char, Pos: l.Pos, Index: i, Correct: true})

	if phase != component.PhaseComplete {
		return
	}

	cs.statWords.Add(1)
	word := &event.WordPayload{Word: s.Progress.String(), Number: s.WordNumber}
	s.Emit(event.EventWordComplete, word)

	t := s.Config.Timing
	s.Schedule(t.Celebrate, event.EventWordCelebrate, word)
	s.Schedule(t.Celebrate+t.Overlay, event.EventWordOverlay, word)
	log.Printf("collection: word %d %q complete", s.WordNumber, word.Word)
}

// reject pushes the head BouncePushDistance away from the letter with a random
// angular jitter, drags the body along and stops so the next tick replans from there
func (cs *CollectionSystem) reject(s *engine.Session, i int) {
	l := &s.Letters[i]
	c := s.Creature

	dir := c.Head().Sub(l.Pos).Normalize()
	if dir.IsZero() {
		dir = vmath.V(1, 0).Rotate(s.Rng.Range(0, 2*math.Pi))
	}
	dir = dir.Rotate(s.Rng.Range(-parameter.BounceJitter, parameter.BounceJitter))

	pos := bounceTarget(l.Pos, dir, s.Width, s.Height)
	// A letter hugging the field edge can clamp the bounce back into contact; go the other way
	if pos.Dist(l.Pos) < parameter.CollisionRadius {
		pos = bounceTarget(l.Pos, dir.Scale(-1), s.Width, s.Height)
	}

	c.SetHead(pos)
	c.Stop()
	RelaxBody(c.Body, c.Pos, parameter.LinkDistance)

	cs.statRejected.Add(1)
	s.Emit(event.EventLetterRejected, &event.LetterPayload{Char: l.Char, Pos: l.Pos, Index: i, Correct: l.Kind == component.LetterCorrect})
}

func bounceTarget(from, dir vmath.Vec2, width, height float64) vmath.Vec2 {
	m := parameter.FieldMargin
	return from.Add(dir.Scale(parameter.BouncePushDistance)).ClampTo(m, m, width-m, height-m)
}
