package sim

import (
	"testing"
	"time"
)

func TestAdvanceMovesByRoadAndOwnSpeed(t *testing.T) {
	f := NewObstacleField(DefaultTrack())
	f.Add(Obstacle{X: 10, Y: 0, Speed: 2})
	f.Add(Obstacle{X: 50, Y: 100, Speed: 3})

	f.Advance(4)

	got := f.All()
	if len(got) != 2 {
		t.Fatalf("Expected 2 obstacles, got %d", len(got))
	}
	if got[0].Y != 6 || got[1].Y != 107 {
		t.Errorf("Expected Y values 6 and 107, got %v and %v", got[0].Y, got[1].Y)
	}
}

func TestAdvancePrunesBelowPlayfield(t *testing.T) {
	track := DefaultTrack()
	f := NewObstacleField(track)
	limit := track.Height + 100

	f.Add(Obstacle{Y: limit - 4, Speed: 2})  // lands at limit-1, kept
	f.Add(Obstacle{Y: limit - 3, Speed: 2})  // lands exactly on limit, dropped
	f.Add(Obstacle{Y: limit + 50, Speed: 2}) // already gone
	f.Add(Obstacle{Y: 0, Speed: 2})

	f.Advance(1)

	if f.Len() != 2 {
		t.Fatalf("Expected 2 obstacles after pruning, got %d: %+v", f.Len(), f.All())
	}
	for _, o := range f.All() {
		if o.Y >= limit {
			t.Errorf("obstacle at Y=%v should have been pruned", o.Y)
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	f := NewObstacleField(DefaultTrack())
	f.Add(Obstacle{Y: 10})

	view := f.All()
	view[0].Y = 999

	if f.All()[0].Y != 10 {
		t.Error("mutating the view changed the field")
	}
}

func TestClearEmptiesField(t *testing.T) {
	f := NewObstacleField(DefaultTrack())
	f.Add(Obstacle{})
	f.Add(Obstacle{})
	f.Clear()
	if f.Len() != 0 {
		t.Errorf("Expected empty field, got %d", f.Len())
	}
}

func TestMaybeSpawnOncePerInterval(t *testing.T) {
	clock := newFakeClock()
	s := NewObstacleSpawner(DefaultTrack(), &scriptedRand{values: []float64{0.5}})

	spawned := 0
	if _, ok := s.MaybeSpawn(clock.Now()); ok {
		spawned++
	}
	clock.Advance(SpawnInterval - time.Millisecond)
	if _, ok := s.MaybeSpawn(clock.Now()); ok {
		spawned++
	}
	if spawned != 1 {
		t.Fatalf("Expected exactly one spawn within the interval, got %d", spawned)
	}

	// Exactly on the interval is still too early
	clock.Advance(time.Millisecond)
	if _, ok := s.MaybeSpawn(clock.Now()); ok {
		t.Fatal("spawned at exactly the interval boundary")
	}

	clock.Advance(time.Millisecond)
	if _, ok := s.MaybeSpawn(clock.Now()); !ok {
		t.Fatal("Expected a spawn once the interval elapsed")
	}
}

func TestMaybeSpawnUsesRandomSource(t *testing.T) {
	track := DefaultTrack()
	s := NewObstacleSpawner(track, &scriptedRand{values: []float64{0.25, 0.5}})

	o, ok := s.MaybeSpawn(newFakeClock().Now())
	if !ok {
		t.Fatal("Expected first call to spawn")
	}

	want := Obstacle{
		X:     0.25 * (track.RoadWidth - ObstacleWidth),
		Y:     ObstacleStartY,
		Speed: ObstacleMinSpeed + 0.5*1.5,
	}
	if o != want {
		t.Errorf("Expected %+v, got %+v", want, o)
	}
}

func TestSpawnerResetAllowsImmediateSpawn(t *testing.T) {
	clock := newFakeClock()
	s := NewObstacleSpawner(DefaultTrack(), &scriptedRand{})

	s.MaybeSpawn(clock.Now())
	s.Reset()
	if !s.LastSpawn().IsZero() {
		t.Fatal("Expected zero last spawn after reset")
	}
	if _, ok := s.MaybeSpawn(clock.Now()); !ok {
		t.Error("Expected spawn right after reset")
	}
}
