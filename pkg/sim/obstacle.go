package sim

// Obstacle car dimensions and lifecycle
const (
	ObstacleWidth  = 40.0
	ObstacleHeight = 60.0
	ObstacleStartY = -80.0

	// Cars are dropped once they are this far below the playfield
	despawnMargin = 100.0
)

// Obstacle is a traffic car travelling down the road toward the player
type Obstacle struct {
	X     float64 // Left edge relative to the road, fixed at spawn
	Y     float64 // Top edge in playfield coordinates
	Speed float64 // Own speed added to the road speed every tick
}

// ObstacleField owns the active traffic cars
type ObstacleField struct {
	track     Track
	obstacles []Obstacle
}

// NewObstacleField creates an empty field for the given track
func NewObstacleField(track Track) *ObstacleField {
	return &ObstacleField{
		track:     track,
		obstacles: make([]Obstacle, 0),
	}
}

// Add inserts a car into the field
func (f *ObstacleField) Add(o Obstacle) {
	f.obstacles = append(f.obstacles, o)
}

// Advance moves every car down by the road speed plus its own speed, then
// drops the cars that have left the bottom of the playfield
func (f *ObstacleField) Advance(globalSpeed float64) {
	limit := f.track.Height + despawnMargin
	active := f.obstacles[:0]

	for _, o := range f.obstacles {
		o.Y += globalSpeed + o.Speed
		if o.Y < limit {
			active = append(active, o)
		}
	}

	// Clear the tail so dropped cars are not kept alive by the backing array
	for i := len(active); i < len(f.obstacles); i++ {
		f.obstacles[i] = Obstacle{}
	}
	f.obstacles = active
}

// All returns a copy of the active cars
func (f *ObstacleField) All() []Obstacle {
	out := make([]Obstacle, len(f.obstacles))
	copy(out, f.obstacles)
	return out
}

// Len returns the number of active cars
func (f *ObstacleField) Len() int {
	return len(f.obstacles)
}

// Clear removes every car
func (f *ObstacleField) Clear() {
	f.obstacles = make([]Obstacle, 0)
}
