package component

// WordPhase is the lifecycle of the current target word
type WordPhase uint8

const (
	PhaseInProgress WordPhase = iota
	PhaseComplete
)

func (p WordPhase) String() string {
	switch p {
	case PhaseInProgress:
		return "in-progress"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// WordProgress counts correctly collected leading runes of Word
// Index only moves forward within a word; Reset is the only way back to zero
type WordProgress struct {
	Word  []rune
	Index int
}

// NewWordProgress starts tracking word from index zero
func NewWordProgress(word string) WordProgress {
	return WordProgress{Word: []rune(word)}
}

// Reset loads a new word and rewinds progress
func (w *WordProgress) Reset(word string) {
	w.Word = []rune(word)
	w.Index = 0
}

// Phase derives the lifecycle phase from the index
func (w *WordProgress) Phase() WordPhase {
	if w.Index >= len(w.Word) {
		return PhaseComplete
	}
	return PhaseInProgress
}

// Expected returns the next rune to collect; ok is false once the word is complete
func (w *WordProgress) Expected() (r rune, ok bool) {
	if w.Index >= len(w.Word) {
		return 0, false
	}
	return w.Word[w.Index], true
}

// Advance moves the index forward by one and returns the new phase
// No-op once complete
func (w *WordProgress) Advance() WordPhase {
	if w.Index < len(w.Word) {
		w.Index++
	}
	return w.Phase()
}

// String returns the word as text
func (w *WordProgress) String() string {
	return string(w.Word)
}

// Collected returns the already collected prefix
func (w *WordProgress) Collected() string {
	return string(w.Word[:w.Index])
}
