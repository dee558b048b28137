package event

import "github.com/1pavlov/vibecoded-kids-games/vmath"

// WordPayload describes the current word and its position in the word list
type WordPayload struct {
	Word   string
	Number int // 1-based word number
}

// LetterPayload describes the letter involved in a collection, rejection or hint
type LetterPayload struct {
	Char    rune
	Pos     vmath.Vec2
	Index   int // Letter index in the session letter set
	Correct bool
}

// PathPayload describes a failed plan
type PathPayload struct {
	From, To vmath.Vec2
}
