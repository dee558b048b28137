package parameter

import "time"

// Field bounds (world units)
const (
	DefaultFieldWidth  = 800.0
	DefaultFieldHeight = 600.0

	MinFieldWidth  = 320.0
	MinFieldHeight = 240.0

	// FieldMargin keeps letters and bounced heads away from the edges
	FieldMargin = 30.0

	// ResizeMargin is the inset the creature is clamped to when the field shrinks
	ResizeMargin = 50.0
)

// Letter layout
const (
	// LetterMinSeparation is the target distance of the pairwise separation pass
	LetterMinSeparation = 70.0

	// MaxDistractors caps distractor count regardless of word length
	MaxDistractors = 4

	// DistractorRatio scales word length to distractor count before the cap
	DistractorRatio = 1.5
)

// Timers
const (
	// HintDelay is idle time before the expected letter is highlighted
	HintDelay = 5 * time.Second

	// CelebrateDelay separates word completion from the celebration effects
	CelebrateDelay = 500 * time.Millisecond

	// OverlayDelay separates the celebration from the completion overlay
	OverlayDelay = 1500 * time.Millisecond
)

// Presentation effects, per rendered frame
const (
	ParticleBurstCount = 10
	ParticleSpeed      = 8.0 // Velocity spread, world units per frame
	ParticleGravity    = 0.2
	ParticleDecay      = 0.02

	ConfettiCount    = 50
	ConfettiBursts   = 3
	ConfettiPerBurst = 20
	ConfettiGravity  = 0.1
	ConfettiDrag     = 0.99
	ConfettiDecay    = 0.005

	ShakeFrames = 18 // ~0.3s at 60 fps
)
