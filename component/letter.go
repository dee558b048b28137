package component

import "github.com/1pavlov/vibecoded-kids-games/vmath"

// LetterKind separates word letters from distractors
type LetterKind uint8

const (
	LetterCorrect LetterKind = iota
	LetterDistractor
)

func (k LetterKind) String() string {
	if k == LetterCorrect {
		return "correct"
	}
	return "distractor"
}

// LetterState is one-way: Uncollected → Collected
type LetterState uint8

const (
	LetterUncollected LetterState = iota
	LetterCollected
)

// Letter is a collectible glyph on the field
type Letter struct {
	Char  rune
	Pos   vmath.Vec2
	Kind  LetterKind
	State LetterState

	// Highlighted marks the hinted letter; cleared whenever the hint timer resets
	Highlighted bool
}

// Active reports whether the letter still takes part in collisions, obstacles and rendering
func (l *Letter) Active() bool {
	return l.State == LetterUncollected
}

// Collect transitions the letter to Collected
// Returns false if it was already collected
func (l *Letter) Collect() bool {
	if l.State == LetterCollected {
		return false
	}
	l.State = LetterCollected
	l.Highlighted = false
	return true
}

// Matches reports whether the letter is a word letter for the given expected rune
func (l *Letter) Matches(expected rune) bool {
	return l.Kind == LetterCorrect && l.Char == expected
}
