package system

import (
	"testing"

	"github.com/1pavlov/vibecoded-kids-games/component"
	"github.com/1pavlov/vibecoded-kids-games/config"
	"github.com/1pavlov/vibecoded-kids-games/content"
	"github.com/1pavlov/vibecoded-kids-games/engine"
	"github.com/1pavlov/vibecoded-kids-games/event"
	"github.com/1pavlov/vibecoded-kids-games/parameter"
	"github.com/1pavlov/vibecoded-kids-games/status"
	"github.com/1pavlov/vibecoded-kids-games/vmath"
)

// newTestGame builds a game on an unshuffled word list with hand-placed letters
func newTestGame(t *testing.T, word string, letters ...component.Letter) *engine.Session {
	t.Helper()
	s := NewGame(config.Default(), content.NewDeck([]string{word, "ДОМ"}, nil), vmath.NewFastRand(99))
	s.Letters = letters
	s.Events()
	return s
}

func correct(r rune, x, y float64) component.Letter {
	return component.Letter{Char: r, Pos: vmath.V(x, y), Kind: component.LetterCorrect}
}

func distractor(r rune, x, y float64) component.Letter {
	return component.Letter{Char: r, Pos: vmath.V(x, y), Kind: component.LetterDistractor}
}

func countEvents(events []event.GameEvent, t event.EventType) int {
	n := 0
	for _, ev := range events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

func kotLetters() []component.Letter {
	return []component.Letter{
		correct('К', 400, 300),
		correct('О', 600, 100),
		correct('Т', 150, 500),
		distractor('Ж', 700, 500),
	}
}

func TestCollectFirstLetter(t *testing.T) {
	s := newTestGame(t, "КОТ", kotLetters()...)
	cs := NewCollectionSystem(s)
	s.Creature.SetHead(vmath.V(410, 300))
	bodyBefore := len(s.Creature.Body)

	cs.Update(s, parameter.TickInterval)

	if s.Letters[0].State != component.LetterCollected {
		t.Error("Expected К collected")
	}
	if s.Progress.Index != 1 {
		t.Errorf("Expected index 1, got %d", s.Progress.Index)
	}
	if len(s.Creature.Body) != bodyBefore+1 {
		t.Errorf("Expected body %d, got %d", bodyBefore+1, len(s.Creature.Body))
	}
	events := s.Events()
	if countEvents(events, event.EventWordComplete) != 0 {
		t.Error("Expected no word_complete event")
	}
	if countEvents(events, event.EventLetterCollected) != 1 {
		t.Errorf("Expected one letter_collected event, got %d", countEvents(events, event.EventLetterCollected))
	}
	if got := s.Status.Counter(status.LettersCollected); got != 1 {
		t.Errorf("Expected letters.collected 1, got %d", got)
	}
}

func TestGrowAppendsAtPriorTail(t *testing.T) {
	s := newTestGame(t, "КОТ", kotLetters()...)
	cs := NewCollectionSystem(s)
	s.Creature.SetHead(vmath.V(400, 300))
	tail := s.Creature.Tail()

	cs.Update(s, parameter.TickInterval)

	if got := s.Creature.Tail(); !got.Equal(tail) {
		t.Errorf("Expected new tail at %v, got %v", tail, got)
	}
}

func TestCollectLastLetterCompletesOnce(t *testing.T) {
	s := newTestGame(t, "КОТ", kotLetters()...)
	cs := NewCollectionSystem(s)
	s.Letters[0].Collect()
	s.Letters[1].Collect()
	s.Progress.Index = 2
	s.Creature.SetHead(vmath.V(150, 510))

	cs.Update(s, parameter.TickInterval)
	cs.Update(s, parameter.TickInterval)

	if s.Progress.Index != 3 {
		t.Errorf("Expected index 3, got %d", s.Progress.Index)
	}
	if s.Progress.Phase() != component.PhaseComplete {
		t.Errorf("Expected phase complete, got %v", s.Progress.Phase())
	}
	events := s.Events()
	if n := countEvents(events, event.EventWordComplete); n != 1 {
		t.Errorf("Expected exactly one word_complete event, got %d", n)
	}
	if s.Scheduler.Len() != 2 {
		t.Errorf("Expected celebrate and overlay scheduled, got %d pending", s.Scheduler.Len())
	}
	if got := s.Status.Counter(status.WordsCompleted); got != 1 {
		t.Errorf("Expected words.completed 1, got %d", got)
	}
}

func TestCompletionEffectsArriveOnGameTime(t *testing.T) {
	s := newTestGame(t, "КОТ", kotLetters()...)
	cs := NewCollectionSystem(s)
	s.Letters[0].Collect()
	s.Letters[1].Collect()
	s.Progress.Index = 2
	s.Creature.SetHead(vmath.V(150, 500))
	cs.Update(s, 0)
	s.Events()

	celebrateAt := s.Config.Timing.Celebrate
	overlayAt := celebrateAt + s.Config.Timing.Overlay

	var celebrated, overlaid bool
	for s.Elapsed < overlayAt+parameter.TickInterval {
		s.Tick(parameter.TickInterval)
		for _, ev := range s.Events() {
			switch ev.Type {
			case event.EventWordCelebrate:
				celebrated = true
				if s.Elapsed < celebrateAt {
					t.Errorf("Expected celebrate no earlier than %v, got %v", celebrateAt, s.Elapsed)
				}
			case event.EventWordOverlay:
				overlaid = true
				if s.Elapsed < overlayAt {
					t.Errorf("Expected overlay no earlier than %v, got %v", overlayAt, s.Elapsed)
				}
			}
		}
	}
	if !celebrated || !overlaid {
		t.Errorf("Expected celebrate and overlay, got %v and %v", celebrated, overlaid)
	}
	if !s.OverlayVisible {
		t.Error("Expected overlay visible")
	}
}

func TestDistractorBounces(t *testing.T) {
	s := newTestGame(t, "КОТ", kotLetters()...)
	cs := NewCollectionSystem(s)
	c := s.Creature
	c.SetHead(vmath.V(690, 500))
	c.Path = append(c.Path, vmath.V(720, 500), vmath.V(740, 500))
	c.Target = vmath.V(740, 500)

	cs.Update(s, parameter.TickInterval)

	if s.Letters[3].State != component.LetterUncollected {
		t.Error("Expected distractor to stay uncollected")
	}
	if c.Pos.Equal(vmath.V(690, 500)) {
		t.Error("Expected head moved")
	}
	if d := c.Pos.Dist(s.Letters[3].Pos); d < parameter.CollisionRadius {
		t.Errorf("Expected head out of contact, got distance %v", d)
	}
	if !c.Body[0].Equal(c.Pos) {
		t.Errorf("Expected body[0] == pos, got %v vs %v", c.Body[0], c.Pos)
	}
	assertLinks(t, c.Body)
	if len(c.Path) != 0 {
		t.Errorf("Expected path cleared, got %d waypoints", len(c.Path))
	}
	if !c.Target.Equal(c.Pos) {
		t.Errorf("Expected target pinned to head, got %v", c.Target)
	}
	if s.Progress.Index != 0 {
		t.Errorf("Expected index 0, got %d", s.Progress.Index)
	}
	events := s.Events()
	if countEvents(events, event.EventLetterRejected) != 1 {
		t.Error("Expected one letter_rejected event")
	}
}

func TestOutOfOrderLetterBounces(t *testing.T) {
	s := newTestGame(t, "КОТ", kotLetters()...)
	cs := NewCollectionSystem(s)
	s.Creature.SetHead(vmath.V(600, 110))

	cs.Update(s, parameter.TickInterval)

	if s.Letters[1].State != component.LetterUncollected {
		t.Error("Expected О to stay uncollected out of order")
	}
	if s.Progress.Index != 0 {
		t.Errorf("Expected index 0, got %d", s.Progress.Index)
	}
	ev := s.Events()
	if len(ev) != 1 || ev[0].Type != event.EventLetterRejected {
		t.Fatalf("Expected single letter_rejected, got %d events", len(ev))
	}
	if p := ev[0].Payload.(*event.LetterPayload); !p.Correct || p.Char != 'О' {
		t.Errorf("Expected rejected word letter О, got %c correct=%v", p.Char, p.Correct)
	}
}

func TestBounceWithinBounds(t *testing.T) {
	tests := []struct {
		name   string
		letter vmath.Vec2
		head   vmath.Vec2
	}{
		{"pushed into corner", vmath.V(40, 40), vmath.V(32, 32)},
		{"coincident", vmath.V(400, 300), vmath.V(400, 300)},
		{"right edge", vmath.V(770, 300), vmath.V(760, 300)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestGame(t, "КОТ", distractor('Ж', tt.letter.X, tt.letter.Y))
			cs := NewCollectionSystem(s)
			s.Creature.SetHead(tt.head)

			cs.Update(s, parameter.TickInterval)

			p := s.Creature.Pos
			if d := p.Dist(tt.letter); d < parameter.CollisionRadius {
				t.Errorf("Expected head out of contact, got %v at distance %v", p, d)
			}
			m := parameter.FieldMargin
			if p.X < m || p.X > s.Width-m || p.Y < m || p.Y > s.Height-m {
				t.Errorf("Expected head inside margin, got %v", p)
			}
		})
	}
}

func TestDuplicateLettersInEncounterOrder(t *testing.T) {
	// Both М tokens touch the head; the first in slice order is collected,
	// the second no longer matches the expected А and bounces the creature
	s := newTestGame(t, "МАМА",
		correct('М', 400, 300),
		correct('А', 100, 100),
		correct('М', 420, 300),
		correct('А', 700, 500),
	)
	cs := NewCollectionSystem(s)
	s.Creature.SetHead(vmath.V(410, 300))

	cs.Update(s, parameter.TickInterval)

	if s.Letters[0].State != component.LetterCollected {
		t.Error("Expected first М collected")
	}
	if s.Letters[2].State != component.LetterUncollected {
		t.Error("Expected second М left for later")
	}
	if s.Progress.Index != 1 {
		t.Errorf("Expected index 1, got %d", s.Progress.Index)
	}
	events := s.Events()
	if countEvents(events, event.EventLetterCollected) != 1 || countEvents(events, event.EventLetterRejected) != 1 {
		t.Errorf("Expected one collect and one reject, got %d events", len(events))
	}
}

func TestCollectedLettersIgnored(t *testing.T) {
	s := newTestGame(t, "КОТ", kotLetters()...)
	cs := NewCollectionSystem(s)
	s.Letters[3].Collect()
	s.Creature.SetHead(vmath.V(700, 500))

	cs.Update(s, parameter.TickInterval)

	if !s.Creature.Pos.Equal(vmath.V(700, 500)) {
		t.Errorf("Expected no bounce from a collected letter, got %v", s.Creature.Pos)
	}
	if n := len(s.Events()); n != 0 {
		t.Errorf("Expected no events, got %d", n)
	}
}
