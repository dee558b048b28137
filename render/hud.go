package render

import (
	"fmt"
	"time"

	"github.com/1pavlov/vibecoded-kids-games/component"
	"github.com/1pavlov/vibecoded-kids-games/engine"
)

// HUD strings
const (
	TextGameComplete = "Поздравляем! Все слова изучены!"
	TextWellDone     = "Молодец!"
	TextContinue     = "Продолжить"
)

// FormatTimer renders elapsed game time as M:SS
func FormatTimer(d time.Duration) string {
	seconds := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// WordNumberText is the word counter label
func WordNumberText(n int) string {
	return fmt.Sprintf("Слово: %d", n)
}

// HintText prompts for the expected letter once the hint is shown
func HintText(snap engine.Snapshot) string {
	if !snap.HintShown {
		return ""
	}
	for _, l := range snap.Letters {
		if l.Highlighted {
			return fmt.Sprintf("Найди букву \"%c\"!", l.Char)
		}
	}
	return ""
}

// WordCell is one letter of the target word in the word display
type WordCell struct {
	Char      rune
	Collected bool
	Next      bool // The letter the player is looking for
}

// WordCells lays out the target word with collection progress
func WordCells(snap engine.Snapshot) []WordCell {
	word := []rune(snap.Word)
	done := len([]rune(snap.Collected))
	cells := make([]WordCell, len(word))
	for i, r := range word {
		cells[i] = WordCell{
			Char:      r,
			Collected: i < done,
			Next:      i == done && snap.Phase == component.PhaseInProgress,
		}
	}
	return cells
}
