package event

// EventType represents the type of game event
type EventType int

const (
	// === Word Lifecycle ===

	// EventWordLoaded signals a new target word with fresh letters on the field
	// Trigger: Session start, NextWord, ContinueToNextWord
	// Consumer: Word display UI | Payload: *WordPayload
	EventWordLoaded EventType = iota

	// EventWordComplete signals the last letter of the word was collected
	// Trigger: CollectionSystem | Consumer: UI, Audio | Payload: *WordPayload
	EventWordComplete

	// EventWordCelebrate is the deferred start of completion effects (sound, confetti)
	// Trigger: Scheduler, CelebrateDelay after EventWordComplete
	// Consumer: Audio, Renderer | Payload: *WordPayload
	EventWordCelebrate

	// EventWordOverlay is the deferred request to show the completion overlay
	// Trigger: Scheduler, OverlayDelay after EventWordCelebrate
	// Consumer: Renderer | Payload: *WordPayload
	EventWordOverlay

	// EventGameComplete signals the word source is exhausted
	// Trigger: Session word load | Consumer: UI | Payload: *WordPayload (Number = words played)
	EventGameComplete

	// === Letters ===

	// EventLetterCollected signals a correct letter was collected in order
	// Trigger: CollectionSystem | Consumer: Audio, Renderer | Payload: *LetterPayload
	EventLetterCollected

	// EventLetterRejected signals contact with a wrong letter and a bounce
	// Trigger: CollectionSystem | Consumer: Audio, Renderer (shake) | Payload: *LetterPayload
	EventLetterRejected

	// EventHintShown signals the expected letter was highlighted after idle time
	// Trigger: HintSystem | Consumer: UI | Payload: *LetterPayload
	EventHintShown

	// === Navigation ===

	// EventPathFallback signals the planner found no route and a direct waypoint was used
	// Trigger: MotionSystem | Consumer: Diagnostics | Payload: *PathPayload
	EventPathFallback
)

var typeNames = map[EventType]string{
	EventWordLoaded:      "word_loaded",
	EventWordComplete:    "word_complete",
	EventWordCelebrate:   "word_celebrate",
	EventWordOverlay:     "word_overlay",
	EventGameComplete:    "game_complete",
	EventLetterCollected: "letter_collected",
	EventLetterRejected:  "letter_rejected",
	EventHintShown:       "hint_shown",
	EventPathFallback:    "path_fallback",
}

func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// GameEvent is a discrete notification from the core to presentation consumers
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
