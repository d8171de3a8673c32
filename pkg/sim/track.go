package sim

// Default playfield geometry in pixels
const (
	DefaultWidth     = 360.0
	DefaultHeight    = 540.0
	DefaultRoadWidth = 220.0
)

// playerRowOffset places the bike this far above the bottom of the playfield
const playerRowOffset = 130.0

// Track is the fixed road geometry for a session
type Track struct {
	Width     float64 // Playfield width
	Height    float64 // Playfield height
	RoadWidth float64 // Width of the drivable road
}

// DefaultTrack returns the classic 360x540 playfield with a 220px road
func DefaultTrack() Track {
	return Track{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		RoadWidth: DefaultRoadWidth,
	}
}

// RoadX returns the horizontal offset of the road's left edge inside the playfield
func (t Track) RoadX() float64 {
	return (t.Width - t.RoadWidth) / 2
}

// PlayerY returns the fixed screen row the bike is drawn at
func (t Track) PlayerY() float64 {
	return t.Height - playerRowOffset
}

// Center returns the lateral position of the road centre
func (t Track) Center() float64 {
	return t.RoadWidth / 2
}
