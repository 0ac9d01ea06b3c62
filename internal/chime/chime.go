// Package chime plays a short synthesized tone when the theme changes.
package chime

import (
	"fmt"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/hexfield/internal/config"
)

const (
	amplitude = 0.25
	length    = 120 * time.Millisecond
)

// Tone returns a sine at freq Hz that decays linearly to silence over dur.
func Tone(sr beep.SampleRate, freq float64, dur time.Duration) beep.Streamer {
	total := sr.N(dur)
	pos := 0
	step := 2 * math.Pi * freq / float64(sr)
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for i := range samples {
			if pos >= total {
				break
			}
			env := 1 - float64(pos)/float64(total)
			v := amplitude * env * math.Sin(step*float64(pos))
			samples[i][0], samples[i][1] = v, v
			pos++
			n++
		}
		return n, true
	})
}

// Player plays theme chimes through the speaker. The zero value is disabled.
type Player struct {
	enabled  bool
	initDone bool
	sr       beep.SampleRate
}

// NewPlayer returns a player; a disabled player never touches the speaker.
func NewPlayer(enabled bool) *Player {
	return &Player{enabled: enabled, sr: beep.SampleRate(config.ChimeSampleRate)}
}

// Enabled reports whether Play produces sound.
func (p *Player) Enabled() bool { return p != nil && p.enabled }

// Play queues the chime for the given theme: a lower note for dark.
func (p *Player) Play(dark bool) error {
	if !p.Enabled() {
		return nil
	}
	if !p.initDone {
		if err := speaker.Init(p.sr, p.sr.N(time.Second/20)); err != nil {
			p.enabled = false
			return fmt.Errorf("init speaker: %w", err)
		}
		p.initDone = true
	}
	freq := config.ChimeLightHz
	if dark {
		freq = config.ChimeDarkHz
	}
	speaker.Play(Tone(p.sr, freq, length))
	return nil
}
