package game

import (
	"testing"

	"github.com/golangdaddy/racingmoto/pkg/config"
	"github.com/golangdaddy/racingmoto/pkg/sim"
	"github.com/golangdaddy/racingmoto/pkg/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestShouldRepeat(t *testing.T) {
	var fired []int
	for d := 0; d <= 32; d++ {
		if shouldRepeat(d) {
			fired = append(fired, d)
		}
	}

	want := []int{1, 20, 24, 28, 32}
	if len(fired) != len(want) {
		t.Fatalf("Expected repeats at %v, got %v", want, fired)
	}
	for i := range want {
		if fired[i] != want[i] {
			t.Errorf("Expected repeats at %v, got %v", want, fired)
			break
		}
	}
}

func TestShortcut(t *testing.T) {
	tests := []struct {
		key    ebiten.Key
		state  sim.State
		action ui.Action
		ok     bool
	}{
		{ebiten.KeySpace, sim.Idle, ui.ActionStart, true},
		{ebiten.KeySpace, sim.Running, 0, false},
		{ebiten.KeyP, sim.Running, ui.ActionPause, true},
		{ebiten.KeyEscape, sim.Paused, ui.ActionResume, true},
		{ebiten.KeyP, sim.GameOver, 0, false},
		{ebiten.KeyR, sim.Paused, ui.ActionRestart, true},
		{ebiten.KeyR, sim.GameOver, ui.ActionRestart, true},
		{ebiten.KeyR, sim.Running, 0, false},
		{ebiten.KeyA, sim.Idle, 0, false},
	}

	for _, tt := range tests {
		a, ok := shortcut(tt.key, tt.state)
		if ok != tt.ok || (ok && a != tt.action) {
			t.Errorf("shortcut(%v, %s) = (%d, %v), want (%d, %v)", tt.key, tt.state, a, ok, tt.action, tt.ok)
		}
	}
}

func TestWindowSizeAddsControlBar(t *testing.T) {
	w, h := WindowSize(config.Default())
	if w != int(sim.DefaultWidth) || h != int(sim.DefaultHeight)+ui.ControlBarHeight {
		t.Errorf("Expected %dx%d, got %dx%d", int(sim.DefaultWidth), int(sim.DefaultHeight)+ui.ControlBarHeight, w, h)
	}
}
