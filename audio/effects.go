package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/1pavlov/vibecoded-kids-games/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSaw
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
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
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	totalSamples int
}

func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	return &envelope{
		streamer:     s,
		attack:       min(rate.N(attack), total),
		release:      min(rate.N(release), total),
		totalSamples: total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.totalSamples - e.position; e.release > 0 && remaining < e.release {
			vol = min(vol, float64(remaining)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain; zero or less is silent
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// tone is one shaped note at the feedback gain
func tone(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(freq, duration, wave, rate)
	return NewEnvelope(osc, duration, parameter.ToneAttack, parameter.ToneRelease, rate)
}

// CreateCorrectSound is a short bright beep for a collected letter
func CreateCorrectSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(tone(parameter.CorrectToneFreq, parameter.CorrectToneDuration, WaveSine, rate), parameter.ToneGain)
}

// CreateWrongSound is a low buzz for a rejected letter
func CreateWrongSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(tone(parameter.WrongToneFreq, parameter.WrongToneDuration, WaveSaw, rate), parameter.ToneGain)
}

// CreateSuccessSound is a rising major arpeggio for a completed word
func CreateSuccessSound(rate beep.SampleRate) beep.Streamer {
	notes := make([]beep.Streamer, len(parameter.SuccessToneFreqs))
	last := len(notes) - 1
	for i, freq := range parameter.SuccessToneFreqs {
		d := parameter.SuccessToneStep
		if i == last {
			d = parameter.SuccessLastDuration
		}
		notes[i] = tone(freq, d, WaveSine, rate)
	}
	return newVolume(beep.Seq(notes...), parameter.ToneGain)
}

// GetSoundEffect returns a fresh streamer for the given sound
func GetSoundEffect(soundType SoundType, rate beep.SampleRate) beep.Streamer {
	switch soundType {
	case SoundCorrect:
		return CreateCorrectSound(rate)
	case SoundWrong:
		return CreateWrongSound(rate)
	case SoundSuccess:
		return CreateSuccessSound(rate)
	default:
		return nil
	}
}
