package sim

// Snapshot is a read-only copy of everything a renderer needs for one frame
type Snapshot struct {
	Track      Track
	State      State
	Player     Player
	Obstacles  []Obstacle
	Score      int
	RoadOffset float64
	Ticks      uint64
	Cause      Cause // Why the last run ended, CauseNone otherwise
}

// Snapshot copies the current simulation state
func (s *Simulation) Snapshot() Snapshot {
	return Snapshot{
		Track:      s.track,
		State:      s.state,
		Player:     s.player.Player(),
		Obstacles:  s.field.All(),
		Score:      s.score.Display(),
		RoadOffset: s.roadOffset,
		Ticks:      s.ticks,
		Cause:      s.cause,
	}
}
