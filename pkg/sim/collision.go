package sim

import "math"

// Hit box tuning. These are play-tested values, keep them as they are.
const (
	BoundaryMargin = 8.0

	playerBoxOffsetY   = 35.0
	obstacleBoxOffsetX = 20.0
	obstacleBoxOffsetY = 30.0
	hitRangeX          = 30.0
	hitRangeY          = 60.0
)

// Outcome is the result of a collision check
type Outcome int

const (
	Continue Outcome = iota
	Terminated
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Terminated:
		return "terminated"
	}
	return "unknown"
}

// Cause explains why a run was terminated
type Cause int

const (
	CauseNone Cause = iota
	CauseOffRoad
	CauseCrash
)

func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseOffRoad:
		return "off road"
	case CauseCrash:
		return "crash"
	}
	return "unknown"
}

// CollisionDetector checks the player against the road edges and traffic
type CollisionDetector struct {
	track Track
}

// NewCollisionDetector creates a detector for the given track
func NewCollisionDetector(track Track) CollisionDetector {
	return CollisionDetector{track: track}
}

// Check reports whether the run must end. Leaving the road is tested first,
// then each car with a box overlap around the bike's fixed row.
func (d CollisionDetector) Check(p Player, obstacles []Obstacle) (Outcome, Cause) {
	if p.X < BoundaryMargin || p.X > d.track.RoadWidth-BoundaryMargin {
		return Terminated, CauseOffRoad
	}

	bikeY := d.track.PlayerY() + playerBoxOffsetY
	for _, o := range obstacles {
		dx := math.Abs(p.X - (o.X + obstacleBoxOffsetX))
		dy := math.Abs(bikeY - (o.Y + obstacleBoxOffsetY))
		if dx < hitRangeX && dy < hitRangeY {
			return Terminated, CauseCrash
		}
	}

	return Continue, CauseNone
}
