package engine

import (
	"math"

	"github.com/1pavlov/vibecoded-kids-games/component"
	"github.com/1pavlov/vibecoded-kids-games/content"
	"github.com/1pavlov/vibecoded-kids-games/parameter"
	"github.com/1pavlov/vibecoded-kids-games/vmath"
)

// DistractorCount returns how many distractors accompany a word of n runes
func DistractorCount(n int) int {
	return min(parameter.MaxDistractors, int(math.Floor(float64(n)*parameter.DistractorRatio)))
}

// GenerateLetters scatters one correct letter per rune of word plus distractors drawn
// from the alphabet minus the word's runes, then runs one separation pass
func GenerateLetters(word []rune, width, height float64, rng *vmath.FastRand) []component.Letter {
	count := DistractorCount(len(word))
	letters := make([]component.Letter, 0, len(word)+count)

	for _, r := range word {
		letters = append(letters, component.Letter{
			Char: r,
			Pos:  randomFieldPos(width, height, rng),
			Kind: component.LetterCorrect,
		})
	}

	pool := content.DistractorPool(word)
	if len(pool) > 0 {
		for i := 0; i < count; i++ {
			letters = append(letters, component.Letter{
				Char: pool[rng.Intn(len(pool))],
				Pos:  randomFieldPos(width, height, rng),
				Kind: component.LetterDistractor,
			})
		}
	}

	ResolveOverlaps(letters, width, height)
	return letters
}

func randomFieldPos(width, height float64, rng *vmath.FastRand) vmath.Vec2 {
	m := parameter.FieldMargin
	return vmath.V(rng.Range(m, width-m), rng.Range(m, height-m))
}

// ResolveOverlaps pushes apart each pair closer than LetterMinSeparation, half each way
// Single pass: residual overlap after clamping is tolerated, collisions use a radius check
// independent of glyph size
func ResolveOverlaps(letters []component.Letter, width, height float64) {
	for i := 0; i < len(letters); i++ {
		for j := i + 1; j < len(letters); j++ {
			a, b := &letters[i], &letters[j]
			d := a.Pos.Sub(b.Pos)
			dist := d.Len()
			if dist >= parameter.LetterMinSeparation {
				continue
			}

			angle := math.Atan2(d.Y, d.X)
			move := (parameter.LetterMinSeparation - dist) / 2
			push := vmath.V(math.Cos(angle)*move, math.Sin(angle)*move)

			a.Pos = clampToField(a.Pos.Add(push), width, height)
			b.Pos = clampToField(b.Pos.Sub(push), width, height)
		}
	}
}

// clampToField keeps p inside the field margin
func clampToField(p vmath.Vec2, width, height float64) vmath.Vec2 {
	m := parameter.FieldMargin
	return p.ClampTo(m, m, width-m, height-m)
}
