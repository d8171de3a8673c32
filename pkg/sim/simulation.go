package sim

import (
	"errors"
	"fmt"
	"io"
	"log"
)

// Road scroll: the dashed centre line moves speed*2 per tick and wraps
// after one dash period
const (
	scrollFactor  = 2.0
	roadDashReset = 55.0
)

// ErrIllegalTransition is returned when a command is not accepted in the current state
var ErrIllegalTransition = errors.New("illegal state transition")

// State is the session state of a Simulation
type State int

const (
	Idle State = iota
	Running
	Paused
	GameOver
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	}
	return "unknown"
}

// Event drives the state machine
type Event int

const (
	EventStart Event = iota
	EventPause
	EventResume
	EventRestart
	EventCollision
)

func (e Event) String() string {
	switch e {
	case EventStart:
		return "start"
	case EventPause:
		return "pause"
	case EventResume:
		return "resume"
	case EventRestart:
		return "restart"
	case EventCollision:
		return "collision"
	}
	return "unknown"
}

// transitions is the full state table; anything missing is rejected
var transitions = map[State]map[Event]State{
	Idle:     {EventStart: Running},
	Running:  {EventPause: Paused, EventCollision: GameOver},
	Paused:   {EventResume: Running, EventRestart: Idle},
	GameOver: {EventRestart: Idle},
}

// Transition describes one accepted state change
type Transition struct {
	From  State
	To    State
	Event Event
}

// Scheduler invokes a tick function once per frame until stopped.
// After Stop returns the old tick function must never be called again.
type Scheduler interface {
	Start(tick func())
	Stop()
}

// Simulation owns all game state and runs one tick of the fixed pipeline
// per frame while Running
type Simulation struct {
	track    Track
	state    State
	player   *PlayerState
	field    *ObstacleField
	spawner  *ObstacleSpawner
	detector CollisionDetector
	score    ScoreAccumulator

	roadOffset float64
	ticks      uint64
	cause      Cause

	clock     Clock
	rng       Rand
	scheduler Scheduler
	logger    *log.Logger
	listeners []func(Transition)
}

// Option configures a Simulation
type Option func(*Simulation)

// WithRand sets the random source for obstacle placement
func WithRand(rng Rand) Option {
	return func(s *Simulation) {
		s.rng = rng
	}
}

// WithClock sets the time source for spawn cadence
func WithClock(clock Clock) Option {
	return func(s *Simulation) {
		s.clock = clock
	}
}

// WithScheduler sets the frame driver started and stopped with the Running state
func WithScheduler(scheduler Scheduler) Option {
	return func(s *Simulation) {
		s.scheduler = scheduler
	}
}

// WithLogger sets the logger for lifecycle messages
func WithLogger(logger *log.Logger) Option {
	return func(s *Simulation) {
		s.logger = logger
	}
}

// OnTransition registers a listener called after every accepted transition
func OnTransition(fn func(Transition)) Option {
	return func(s *Simulation) {
		s.listeners = append(s.listeners, fn)
	}
}

// NewSimulation creates an idle simulation on the given track
func NewSimulation(track Track, opts ...Option) *Simulation {
	s := &Simulation{
		track:    track,
		state:    Idle,
		clock:    SystemClock{},
		logger:   log.New(io.Discard, "", 0),
		detector: NewCollisionDetector(track),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.player = NewPlayerState(track)
	s.field = NewObstacleField(track)
	s.spawner = NewObstacleSpawner(track, s.rng)

	return s
}

// State returns the current session state
func (s *Simulation) State() State {
	return s.state
}

// Track returns the session geometry
func (s *Simulation) Track() Track {
	return s.track
}

// PlayerState exposes the player for input commands
func (s *Simulation) PlayerState() *PlayerState {
	return s.player
}

// Score returns the displayed score
func (s *Simulation) Score() int {
	return s.score.Display()
}

// Start begins a run from Idle
func (s *Simulation) Start() error {
	return s.fire(EventStart)
}

// Pause freezes a running game
func (s *Simulation) Pause() error {
	return s.fire(EventPause)
}

// Resume continues a paused game
func (s *Simulation) Resume() error {
	return s.fire(EventResume)
}

// Restart returns to Idle from Paused or GameOver and resets every owned field
func (s *Simulation) Restart() error {
	return s.fire(EventRestart)
}

// Tick runs one frame: spawn, advance, scroll, collide, score.
// It does nothing unless the game is Running.
func (s *Simulation) Tick() {
	if s.state != Running {
		return
	}

	// Everything in this tick uses the speed as it was when the tick began
	speed := s.player.Player().Speed

	if o, ok := s.spawner.MaybeSpawn(s.clock.Now()); ok {
		s.field.Add(o)
	}

	s.field.Advance(speed)

	s.roadOffset += speed * scrollFactor
	if s.roadOffset > roadDashReset {
		s.roadOffset = 0
	}

	s.ticks++

	if outcome, cause := s.detector.Check(s.player.Player(), s.field.obstacles); outcome == Terminated {
		s.cause = cause
		s.fire(EventCollision)
		return
	}

	s.score.Tick(speed)
}

// fire applies an event through the state table
func (s *Simulation) fire(ev Event) error {
	to, ok := transitions[s.state][ev]
	if !ok {
		return fmt.Errorf("%w: %s while %s", ErrIllegalTransition, ev, s.state)
	}

	t := Transition{From: s.state, To: to, Event: ev}
	s.state = to

	if ev == EventRestart {
		s.reset()
	}

	if s.scheduler != nil {
		if to == Running {
			s.scheduler.Start(s.Tick)
		} else if t.From == Running {
			s.scheduler.Stop()
		}
	}

	if ev == EventCollision {
		s.logger.Printf("Game over: %s after %d ticks, score %d", s.cause, s.ticks, s.score.Display())
	} else {
		s.logger.Printf("State %s -> %s (%s)", t.From, t.To, ev)
	}

	for _, fn := range s.listeners {
		fn(t)
	}
	return nil
}

// reset restores the state of a fresh session
func (s *Simulation) reset() {
	s.player.Reset()
	s.field.Clear()
	s.spawner.Reset()
	s.score.Reset()
	s.roadOffset = 0
	s.ticks = 0
	s.cause = CauseNone
}
