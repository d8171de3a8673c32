package sim

import "math"

const (
	scorePerTick     = 0.1
	scoreSpeedFactor = 20.0
)

// ScoreAccumulator sums distance-based score every running tick
type ScoreAccumulator struct {
	value float64
}

// Tick adds the score earned in one tick at the given speed
func (s *ScoreAccumulator) Tick(speed float64) {
	if speed < 0 {
		speed = 0
	}
	s.value += scorePerTick + speed/scoreSpeedFactor
}

// Value returns the raw accumulated score
func (s *ScoreAccumulator) Value() float64 {
	return s.value
}

// Display returns the score as shown to the player
func (s *ScoreAccumulator) Display() int {
	return int(math.Floor(s.value))
}

// Reset zeroes the score
func (s *ScoreAccumulator) Reset() {
	s.value = 0
}
