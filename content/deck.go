package content

import (
	"github.com/1pavlov/vibecoded-kids-games/vmath"
)

// Deck is a shuffled, single-pass word Source
type Deck struct {
	words  []string
	pos    int
	played int
	rng    *vmath.FastRand
}

// NewDeck copies words and shuffles them with a Fisher-Yates pass
// A nil rng keeps the given order
func NewDeck(words []string, rng *vmath.FastRand) *Deck {
	d := &Deck{rng: rng}
	d.load(words)
	return d
}

func (d *Deck) load(words []string) {
	d.words = append(d.words[:0], words...)
	d.pos = 0
	if d.rng == nil {
		return
	}
	d.rng.Shuffle(len(d.words), func(i, j int) {
		d.words[i], d.words[j] = d.words[j], d.words[i]
	})
}

// Next returns the next word; ok is false once every word was handed out
func (d *Deck) Next() (string, bool) {
	if d.pos >= len(d.words) {
		return "", false
	}
	w := d.words[d.pos]
	d.pos++
	d.played++
	return w, true
}

// Played returns how many words were handed out, across replacements
func (d *Deck) Played() int {
	return d.played
}

// Len returns the size of the current list
func (d *Deck) Len() int {
	return len(d.words)
}

// Remaining returns words not yet handed out
func (d *Deck) Remaining() int {
	return len(d.words) - d.pos
}

// Replace swaps in a reloaded list, reshuffled, starting from its first word
// The word currently on the field is unaffected
func (d *Deck) Replace(words []string) {
	d.load(words)
}
