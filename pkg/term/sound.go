package term

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	crashFreq     = 110
	crashDuration = 300 * time.Millisecond
)

// Speaker plays the crash tone through the system audio device
type Speaker struct {
	ready bool
}

// NewSpeaker initialises the audio device. On error the returned speaker is
// silent and the game can run without sound.
func NewSpeaker() (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &Speaker{}, err
	}
	return &Speaker{ready: true}, nil
}

// Crash plays a short low tone without blocking
func (s *Speaker) Crash() {
	if !s.ready {
		return
	}
	tone, err := CrashStreamer()
	if err != nil {
		return
	}
	speaker.Play(tone)
}

// Close releases the audio device
func (s *Speaker) Close() {
	if s.ready {
		speaker.Close()
		s.ready = false
	}
}

// CrashStreamer returns the finite crash tone
func CrashStreamer() (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, crashFreq)
	if err != nil {
		return nil, err
	}
	return beep.Take(sampleRate.N(crashDuration), sine), nil
}
