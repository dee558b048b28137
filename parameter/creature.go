package parameter

import "math"

// Creature movement
const (
	// CreatureSpeed is the head step length per tick
	CreatureSpeed = 3.0

	// LinkDistance is the maximum gap between consecutive body segments
	LinkDistance = 25.0

	// CreatureStartX, CreatureStartY place the head at game start
	CreatureStartX = 100.0
	CreatureStartY = 100.0

	// InitialSegments is the body length at game start, head included
	InitialSegments = 3
)

// Collection and bounce
const (
	// CollisionRadius is the head-to-letter distance that counts as contact
	CollisionRadius = 35.0

	// BouncePushDistance is how far from the offending letter the head lands
	BouncePushDistance = 80.0

	// BounceJitter is the max angular perturbation applied to the push direction
	BounceJitter = math.Pi / 4
)
