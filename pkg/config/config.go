// Package config holds the runtime settings shared by both frontends
package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/golangdaddy/racingmoto/pkg/sim"
)

// Config is the game's runtime configuration
type Config struct {
	Width     float64 // Playfield width in pixels
	Height    float64 // Playfield height in pixels
	RoadWidth float64 // Road width in pixels

	Scale    float64       // Window scale factor (ebiten only)
	TickRate time.Duration // Frame period (terminal only, ebiten runs at 60 TPS)
	Seed     int64         // Obstacle RNG seed, 0 picks one from the clock
	Sound    bool          // Play the crash sound
	LogFile  string        // Log destination for the terminal frontend, empty discards
}

// Default returns the classic settings
func Default() Config {
	return Config{
		Width:     sim.DefaultWidth,
		Height:    sim.DefaultHeight,
		RoadWidth: sim.DefaultRoadWidth,
		Scale:     1.5,
		TickRate:  16 * time.Millisecond,
		Sound:     true,
	}
}

// Parse binds every setting to fs, parses args over the defaults and validates the result
func Parse(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Default()
	fs.Float64Var(&cfg.Width, "width", cfg.Width, "playfield width in pixels")
	fs.Float64Var(&cfg.Height, "height", cfg.Height, "playfield height in pixels")
	fs.Float64Var(&cfg.RoadWidth, "road", cfg.RoadWidth, "road width in pixels")
	fs.Float64Var(&cfg.Scale, "scale", cfg.Scale, "window scale factor")
	fs.DurationVar(&cfg.TickRate, "tick", cfg.TickRate, "frame period for the terminal frontend")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "obstacle RNG seed (0 = random)")
	fs.BoolVar(&cfg.Sound, "sound", cfg.Sound, "play the crash sound")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "log file for the terminal frontend")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate rejects geometry the simulation cannot play on
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.New("playfield size must be positive")
	}
	if c.RoadWidth > c.Width {
		return fmt.Errorf("road width %.0f exceeds playfield width %.0f", c.RoadWidth, c.Width)
	}
	// A car must fit on the road and the bike needs room between the edges
	if c.RoadWidth < sim.ObstacleWidth+2*sim.BoundaryMargin {
		return fmt.Errorf("road width %.0f is narrower than %.0f", c.RoadWidth, sim.ObstacleWidth+2*sim.BoundaryMargin)
	}
	if c.Scale <= 0 {
		return errors.New("scale must be positive")
	}
	if c.TickRate <= 0 {
		return errors.New("tick period must be positive")
	}
	return nil
}

// Track returns the simulation geometry
func (c Config) Track() sim.Track {
	return sim.Track{
		Width:     c.Width,
		Height:    c.Height,
		RoadWidth: c.RoadWidth,
	}
}

// SeedOrNow returns the configured seed, or one derived from now when unset
func (c Config) SeedOrNow(now time.Time) int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return now.UnixNano()
}
