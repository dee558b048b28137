package render

import (
	"github.com/1pavlov/vibecoded-kids-games/component"
	"github.com/1pavlov/vibecoded-kids-games/content"
)

// Scene colors
var (
	ColorField      = Hex(0xF0F8FF)
	ColorHUD        = Hex(0x2F4F4F)
	ColorBody       = Hex(0x32CD32)
	ColorBodyEdge   = Hex(0x228B22)
	ColorEye        = Hex(0xFFFFFF)
	ColorPupil      = Hex(0x000000)
	ColorPath       = Hex(0xFF6464)
	ColorWaypoint   = Hex(0xFFA500)
	ColorCollected  = Hex(0x32CD32)
	ColorRejected   = Hex(0xFF6347)
	ColorGlow       = Hex(0xFFD700)
	ColorGlowFill   = Hex(0xFFFFE0)
	ColorOverlay    = Hex(0x4B0082)
	ColorOverlayTxt = Hex(0xFFFFFF)
)

// ConfettiColors is the celebration palette
var ConfettiColors = []RGB{
	Hex(0xFF6B6B), Hex(0x4ECDC4), Hex(0x45B7D1), Hex(0x96CEB4), Hex(0xFFEAA7),
	Hex(0xDDA0DD), Hex(0x98D8C8), Hex(0xF7DC6F), Hex(0xBB8FCE), Hex(0x85C1E9),
	Hex(0xF8C471), Hex(0x82E0AA), Hex(0xF1948A), Hex(0xD7BDE2),
}

// LetterColors is the tile scheme for one letter
type LetterColors struct {
	Background RGB
	Border     RGB
	Text       RGB
}

var (
	vowelColors     = LetterColors{Background: Hex(0xFFE6E6), Border: Hex(0xDC143C), Text: Hex(0x8B0000)}
	consonantColors = LetterColors{Background: Hex(0xE6F3FF), Border: Hex(0x4169E1), Text: Hex(0x191970)}
)

// ColorsFor returns red tones for vowels and blue tones for consonants
func ColorsFor(r rune) LetterColors {
	if content.IsVowel(r) {
		return vowelColors
	}
	return consonantColors
}

// TileColors applies the hint glow over the vowel/consonant scheme
func TileColors(l component.Letter) LetterColors {
	c := ColorsFor(l.Char)
	if l.Highlighted {
		c.Background = ColorGlowFill
		c.Border = ColorGlow
	}
	return c
}
