package sim

import (
	"math"
	"testing"
)

func TestCheckBoundaries(t *testing.T) {
	track := DefaultTrack()
	d := NewCollisionDetector(track)

	tests := []struct {
		name    string
		x       float64
		outcome Outcome
		cause   Cause
	}{
		{"centre", track.RoadWidth / 2, Continue, CauseNone},
		{"just left of bound", 7, Terminated, CauseOffRoad},
		{"on left bound", 8, Continue, CauseNone},
		{"on right bound", track.RoadWidth - 8, Continue, CauseNone},
		{"just right of bound", track.RoadWidth - 7, Terminated, CauseOffRoad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, cause := d.Check(Player{X: tt.x}, nil)
			if outcome != tt.outcome || cause != tt.cause {
				t.Errorf("Check(X=%v) = %s/%s, want %s/%s", tt.x, outcome, cause, tt.outcome, tt.cause)
			}
		})
	}
}

func TestCheckObstacleOverlap(t *testing.T) {
	track := DefaultTrack()
	d := NewCollisionDetector(track)
	p := Player{X: 100}

	// dx = |100-(80+20)| = 0, dy = |(H-130+35)-(H-160+30)| = 35
	hit := Obstacle{X: 80, Y: track.Height - 160}
	if outcome, cause := d.Check(p, []Obstacle{hit}); outcome != Terminated || cause != CauseCrash {
		t.Errorf("Expected crash, got %s/%s", outcome, cause)
	}

	// Same row but 30 px to the side is just outside the box
	side := Obstacle{X: 110, Y: track.Height - 160}
	if outcome, _ := d.Check(p, []Obstacle{side}); outcome != Continue {
		t.Errorf("Expected continue for dx=30, got %s", outcome)
	}

	// Directly ahead but 60 px higher is just outside the box
	ahead := Obstacle{X: 80, Y: track.PlayerY() + 35 - 30 - 60}
	if outcome, _ := d.Check(p, []Obstacle{ahead}); outcome != Continue {
		t.Errorf("Expected continue for dy=60, got %s", outcome)
	}

	if outcome, _ := d.Check(p, []Obstacle{side, ahead, hit}); outcome != Terminated {
		t.Errorf("Expected any overlapping car to terminate, got %s", outcome)
	}
}

func TestCheckBoundaryWinsOverCrash(t *testing.T) {
	track := DefaultTrack()
	d := NewCollisionDetector(track)

	o := Obstacle{X: -13, Y: track.Height - 160}
	if _, cause := d.Check(Player{X: 7}, []Obstacle{o}); cause != CauseOffRoad {
		t.Errorf("Expected off road cause, got %s", cause)
	}
}

func TestScoreAccumulates(t *testing.T) {
	var s ScoreAccumulator
	for i := 0; i < 10; i++ {
		s.Tick(0)
	}
	// Ten ticks of 0.1 can land a hair under 1.0
	if s.Display() > 1 {
		t.Errorf("Expected display <= 1 after ten idle ticks, got %d", s.Display())
	}

	s.Reset()
	s.Tick(MaxSpeed)
	if got, want := s.Value(), 0.1+MaxSpeed/20; math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected %v, got %v", want, got)
	}
	if s.Display() != 0 {
		t.Errorf("Expected display 0, got %d", s.Display())
	}

	s.Tick(MaxSpeed)
	if s.Display() != 1 {
		t.Errorf("Expected display 1 after two fast ticks, got %d", s.Display())
	}
}

func TestScoreNeverDecreases(t *testing.T) {
	var s ScoreAccumulator
	speeds := []float64{0, 14, 0.4, 3, 0, 7.2, 14, 0}
	prev := s.Display()
	for i := 0; i < 500; i++ {
		s.Tick(speeds[i%len(speeds)])
		if cur := s.Display(); cur < prev {
			t.Fatalf("score went from %d to %d at tick %d", prev, cur, i)
		} else {
			prev = cur
		}
	}
}
