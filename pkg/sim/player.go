package sim

import "math"

// Player tuning
const (
	MaxSpeed     = 14.0
	Acceleration = 0.4
	Deceleration = 0.6
	SteeringStep = 10.0
)

// Player is the bike's lateral position (relative to the road's left edge) and speed
type Player struct {
	X     float64
	Speed float64
}

// PlayerState owns the player and applies input commands to it
type PlayerState struct {
	track  Track
	player Player
}

// NewPlayerState creates a player centred on the given track
func NewPlayerState(track Track) *PlayerState {
	ps := &PlayerState{track: track}
	ps.Reset()
	return ps
}

// Player returns a copy of the current player
func (ps *PlayerState) Player() Player {
	return ps.player
}

// Accelerate raises speed by one step, capped at MaxSpeed
func (ps *PlayerState) Accelerate() {
	ps.player.Speed = math.Min(ps.player.Speed+Acceleration, MaxSpeed)
}

// Decelerate lowers speed by one step, never below zero
func (ps *PlayerState) Decelerate() {
	ps.player.Speed = math.Max(ps.player.Speed-Deceleration, 0)
}

// SteerLeft moves the bike left. Leaving the road is detected by the
// collision check, not prevented here.
func (ps *PlayerState) SteerLeft() {
	ps.player.X -= SteeringStep
}

// SteerRight moves the bike right
func (ps *PlayerState) SteerRight() {
	ps.player.X += SteeringStep
}

// Reset puts the bike back in the middle of the road at a standstill
func (ps *PlayerState) Reset() {
	ps.player = Player{
		X:     ps.track.Center(),
		Speed: 0,
	}
}
