// Package audio plays short synthesized sound effects for simulation events.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
)

// oscillator produces a fixed-length tone, optionally sliding in pitch.
type oscillator struct {
	freq     float64
	slide    float64 // Hz added per second
	phase    float64
	position int
	duration int
	wave     Wave
	rate     beep.SampleRate
}

// NewTone creates a tone of the given length.
func NewTone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, d, wave, rate)
}

// NewSweep creates a tone whose pitch moves linearly from one frequency to another.
func NewSweep(from, to float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	slide := 0.0
	if d > 0 {
		slide = (to - from) / d.Seconds()
	}
	return &oscillator{
		freq:     from,
		slide:    slide,
		duration: rate.N(d),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1.0
			if o.phase >= 0.5 {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}
		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq + o.slide*float64(o.position)/float64(o.rate)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s with attack and release ramps over the given total length.
func NewEnvelope(s beep.Streamer, total, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(total),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = math.Min(vol, float64(remaining)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; log2(0) is -Inf so zero is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// note is a shaped tone with a short click-free envelope.
func note(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewTone(freq, d, wave, rate), d, 5*time.Millisecond, d/2, rate)
}

// Sound effect builders

func jumpSound(rate beep.SampleRate) beep.Streamer {
	d := 120 * time.Millisecond
	return NewEnvelope(NewSweep(330, 660, d, WaveSquare, rate), d, 5*time.Millisecond, 40*time.Millisecond, rate)
}

func bonusSound(rate beep.SampleRate) beep.Streamer {
	d := 180 * time.Millisecond
	return beep.Mix(
		newVolume(note(880, d, WaveSine, rate), 0.7),
		newVolume(note(1760, d, WaveSine, rate), 0.3),
	)
}

func milestoneSound(rate beep.SampleRate) beep.Streamer {
	d := 90 * time.Millisecond
	return beep.Seq(
		note(523.25, d, WaveSquare, rate),
		note(659.25, d, WaveSquare, rate),
		note(783.99, 2*d, WaveSquare, rate),
	)
}

func hitSound(rate beep.SampleRate) beep.Streamer {
	d := 200 * time.Millisecond
	return NewEnvelope(NewSweep(180, 90, d, WaveSaw, rate), d, 2*time.Millisecond, 120*time.Millisecond, rate)
}

func gameOverSound(rate beep.SampleRate) beep.Streamer {
	d := 160 * time.Millisecond
	return beep.Seq(
		note(392.00, d, WaveSquare, rate),
		note(311.13, d, WaveSquare, rate),
		note(261.63, 3*d, WaveSquare, rate),
	)
}
