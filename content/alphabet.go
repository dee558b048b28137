package content

import "slices"

// DistractorAlphabet is the pool distractor letters are drawn from
// Ё Й Ъ Ь are left out
var DistractorAlphabet = []rune("АБВГДЕЖЗИКЛМНОПРСТУФХЦЧШЩЫЭЮЯ")

var vowels = []rune("АЕЁИОУЫЭЮЯ")

// IsVowel reports whether r is a Russian vowel
func IsVowel(r rune) bool {
	return slices.Contains(vowels, r)
}

// DistractorPool returns the alphabet minus every rune that appears in word
func DistractorPool(word []rune) []rune {
	pool := make([]rune, 0, len(DistractorAlphabet))
	for _, r := range DistractorAlphabet {
		if !slices.Contains(word, r) {
			pool = append(pool, r)
		}
	}
	return pool
}
