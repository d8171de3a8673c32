package sim

import (
	"math/rand"
	"time"
)

// Spawn cadence and obstacle speed range
const (
	SpawnInterval    = 1800 * time.Millisecond
	ObstacleMinSpeed = 2.0
	obstacleSpeedVar = 1.5
)

// Rand is the random source used for obstacle placement. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Clock provides the current time for spawn cadence
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock
type SystemClock struct{}

// Now returns time.Now with its monotonic reading
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ObstacleSpawner decides when a new traffic car enters the road
type ObstacleSpawner struct {
	track     Track
	rng       Rand
	lastSpawn time.Time
}

// NewObstacleSpawner creates a spawner. A nil rng falls back to a time-seeded source.
func NewObstacleSpawner(track Track, rng Rand) *ObstacleSpawner {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &ObstacleSpawner{
		track: track,
		rng:   rng,
	}
}

// MaybeSpawn returns a new car if more than SpawnInterval has passed since
// the previous one. The first call after a reset always spawns.
func (s *ObstacleSpawner) MaybeSpawn(now time.Time) (Obstacle, bool) {
	if !s.lastSpawn.IsZero() && now.Sub(s.lastSpawn) <= SpawnInterval {
		return Obstacle{}, false
	}

	o := Obstacle{
		X:     s.rng.Float64() * (s.track.RoadWidth - ObstacleWidth),
		Y:     ObstacleStartY,
		Speed: ObstacleMinSpeed + s.rng.Float64()*obstacleSpeedVar,
	}
	s.lastSpawn = now
	return o, true
}

// LastSpawn returns when the last car was spawned, zero if none yet
func (s *ObstacleSpawner) LastSpawn() time.Time {
	return s.lastSpawn
}

// Reset forgets the last spawn time
func (s *ObstacleSpawner) Reset() {
	s.lastSpawn = time.Time{}
}
