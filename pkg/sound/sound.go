// Package sound plays the crash effect in the ebiten frontend
package sound

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	// SampleRate of the generated effects
	SampleRate = 44100

	crashDuration = 400 * time.Millisecond
)

// Player owns the audio context and the pre-rendered crash effect
type Player struct {
	ctx   *audio.Context
	crash []byte
}

// NewPlayer creates a player, reusing the process-wide audio context if one exists
func NewPlayer() *Player {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(SampleRate)
	}
	return &Player{
		ctx:   ctx,
		crash: CrashTone(SampleRate, crashDuration),
	}
}

// Crash plays the crash effect without blocking
func (p *Player) Crash() {
	p.ctx.NewPlayerFromBytes(p.crash).Play()
}

// CrashTone synthesises a falling, decaying square-ish tone as 16-bit
// little-endian stereo PCM
func CrashTone(sampleRate int, d time.Duration) []byte {
	frames := int(float64(sampleRate) * d.Seconds())
	buf := make([]byte, frames*4)

	phase := 0.0
	for i := 0; i < frames; i++ {
		progress := float64(i) / float64(frames)
		freq := 220 - 160*progress
		phase += 2 * math.Pi * freq / float64(sampleRate)

		// Soft-clipped sine gives the engine-cough texture
		v := math.Tanh(3*math.Sin(phase)) * (1 - progress) * 0.6
		sample := int16(v * math.MaxInt16)

		binary.LittleEndian.PutUint16(buf[4*i:], uint16(sample))
		binary.LittleEndian.PutUint16(buf[4*i+2:], uint16(sample))
	}
	return buf
}
