package render

import (
	"github.com/1pavlov/vibecoded-kids-games/event"
	"github.com/1pavlov/vibecoded-kids-games/parameter"
	"github.com/1pavlov/vibecoded-kids-games/vmath"
)

// Particle is a fading point in world space
type Particle struct {
	Pos   vmath.Vec2
	Vel   vmath.Vec2
	Color RGB
	Life  float64 // 1 at spawn, removed at 0
	Size  float64

	gravity float64
	drag    float64
	decay   float64
}

// Effects holds presentation-only animation state shared by the frontends
// Advanced once per rendered frame, never read by the simulation
type Effects struct {
	Particles []Particle
	shake     int
	rng       *vmath.FastRand
}

func NewEffects(rng *vmath.FastRand) *Effects {
	return &Effects{rng: rng}
}

// Burst scatters a small spray of particles from pos
func (e *Effects) Burst(pos vmath.Vec2, c RGB) {
	half := parameter.ParticleSpeed / 2
	for i := 0; i < parameter.ParticleBurstCount; i++ {
		e.Particles = append(e.Particles, Particle{
			Pos:     pos,
			Vel:     vmath.V(e.rng.Range(-half, half), e.rng.Range(-half, half)),
			Color:   c,
			Life:    1,
			Size:    3,
			gravity: parameter.ParticleGravity,
			drag:    1,
			decay:   parameter.ParticleDecay,
		})
	}
}

// Confetti rains celebration pieces from the top edge plus a few clustered bursts
func (e *Effects) Confetti(width float64) {
	for i := 0; i < parameter.ConfettiCount; i++ {
		e.addConfetti(vmath.V(e.rng.Range(0, width), -20), 2, e.rng.Range(2, 5))
	}
	for b := 0; b < parameter.ConfettiBursts; b++ {
		x := width / 4 * float64(b+1)
		for i := 0; i < parameter.ConfettiPerBurst; i++ {
			e.addConfetti(vmath.V(x+e.rng.Range(-50, 50), -10), 3, e.rng.Range(1, 5))
		}
	}
}

func (e *Effects) addConfetti(pos vmath.Vec2, spread, fall float64) {
	e.Particles = append(e.Particles, Particle{
		Pos:     pos,
		Vel:     vmath.V(e.rng.Range(-spread, spread), fall),
		Color:   ConfettiColors[e.rng.Intn(len(ConfettiColors))],
		Life:    1,
		Size:    e.rng.Range(3, 6),
		gravity: parameter.ConfettiGravity,
		drag:    parameter.ConfettiDrag,
		decay:   parameter.ConfettiDecay,
	})
}

// Shake starts a short screen shake
func (e *Effects) Shake() {
	e.shake = parameter.ShakeFrames
}

// ShakeOffset returns the horizontal jolt for this frame: -1, 0 or +1
func (e *Effects) ShakeOffset() int {
	if e.shake == 0 {
		return 0
	}
	if e.shake%4 < 2 {
		return -1
	}
	return 1
}

// Update advances every particle one frame and drops the faded ones
// Confetti below the field bottom is dropped too
func (e *Effects) Update(height float64) {
	if e.shake > 0 {
		e.shake--
	}

	kept := e.Particles[:0]
	for _, p := range e.Particles {
		p.Pos = p.Pos.Add(p.Vel)
		p.Vel.Y += p.gravity
		p.Vel = p.Vel.Scale(p.drag)
		p.Life -= p.decay
		if p.Life > 0 && p.Pos.Y < height+50 {
			kept = append(kept, p)
		}
	}
	e.Particles = kept
}

// Clear drops all particles, used when a new word loads
func (e *Effects) Clear() {
	e.Particles = e.Particles[:0]
}

// HandleEvents starts the effects for one batch of game events
func (e *Effects) HandleEvents(events []event.GameEvent, width float64) {
	for _, ev := range events {
		switch ev.Type {
		case event.EventLetterCollected:
			if p, ok := ev.Payload.(*event.LetterPayload); ok {
				e.Burst(p.Pos, ColorCollected)
			}
		case event.EventLetterRejected:
			if p, ok := ev.Payload.(*event.LetterPayload); ok {
				e.Burst(p.Pos, ColorRejected)
			}
			e.Shake()
		case event.EventWordCelebrate:
			e.Confetti(width)
		case event.EventWordLoaded:
			e.Clear()
		}
	}
}
