package sound

import (
	"encoding/binary"
	"testing"
	"time"
)

func TestCrashToneLength(t *testing.T) {
	pcm := CrashTone(1000, 500*time.Millisecond)
	if len(pcm) != 500*4 {
		t.Fatalf("Expected %d bytes, got %d", 500*4, len(pcm))
	}
}

func TestCrashToneDecays(t *testing.T) {
	pcm := CrashTone(SampleRate, 200*time.Millisecond)
	frames := len(pcm) / 4

	peak := func(from, to int) int {
		top := 0
		for i := from; i < to; i++ {
			s := int(int16(binary.LittleEndian.Uint16(pcm[4*i:])))
			if s < 0 {
				s = -s
			}
			if s > top {
				top = s
			}
		}
		return top
	}

	head := peak(0, frames/4)
	tail := peak(frames*3/4, frames)
	if head == 0 {
		t.Fatal("Expected an audible start")
	}
	if tail >= head {
		t.Errorf("Expected the tone to decay, head peak %d tail peak %d", head, tail)
	}
}

func TestCrashToneChannelsMatch(t *testing.T) {
	pcm := CrashTone(8000, 50*time.Millisecond)
	for i := 0; i+3 < len(pcm); i += 4 {
		if pcm[i] != pcm[i+2] || pcm[i+1] != pcm[i+3] {
			t.Fatalf("left and right differ at frame %d", i/4)
		}
	}
}
