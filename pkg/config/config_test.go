package config

import (
	"flag"
	"io"
	"testing"
	"time"

	"github.com/golangdaddy/racingmoto/pkg/sim"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestDefaultMatchesClassicTrack(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Track() != sim.DefaultTrack() {
		t.Errorf("Expected %+v, got %+v", sim.DefaultTrack(), cfg.Track())
	}
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse(newFlagSet(), []string{"-road", "180", "-seed", "42", "-sound=false", "-tick", "20ms"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.RoadWidth != 180 || cfg.Seed != 42 || cfg.Sound || cfg.TickRate != 20*time.Millisecond {
		t.Errorf("flags not applied: %+v", cfg)
	}
	if cfg.Width != sim.DefaultWidth {
		t.Errorf("Expected untouched width %v, got %v", sim.DefaultWidth, cfg.Width)
	}
}

func TestParseRejectsBadGeometry(t *testing.T) {
	cases := [][]string{
		{"-road", "400"},
		{"-road", "50"},
		{"-width", "0"},
		{"-scale", "-1"},
		{"-tick", "0s"},
	}
	for _, args := range cases {
		if _, err := Parse(newFlagSet(), args); err == nil {
			t.Errorf("Expected %v to be rejected", args)
		}
	}
}

func TestSeedOrNow(t *testing.T) {
	now := time.Unix(100, 5)
	if got := (Config{Seed: 7}).SeedOrNow(now); got != 7 {
		t.Errorf("Expected configured seed 7, got %d", got)
	}
	if got := (Config{}).SeedOrNow(now); got != now.UnixNano() {
		t.Errorf("Expected clock seed %d, got %d", now.UnixNano(), got)
	}
}
