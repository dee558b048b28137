package parameter

// Navigation grid
const (
	// CellSize is world units per navigation cell
	CellSize = 20.0

	// ObstacleRadius is the half-width in cells of the square blocked around a letter (5×5)
	ObstacleRadius = 2
)

// Path following thresholds (world units)
const (
	// ReachTargetDistance below which the creature counts as arrived and replans
	ReachTargetDistance = 20.0

	// WaypointReachDistance below which the current waypoint is popped
	WaypointReachDistance = 15.0

	// MinStepDistance below which no step is taken toward a waypoint
	MinStepDistance = 2.0
)
