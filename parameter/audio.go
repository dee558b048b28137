package parameter

import "time"

// Audio hardware settings
const (
	AudioSampleRate = 48000

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Feedback tones
const (
	CorrectToneFreq     = 800.0
	CorrectToneDuration = 100 * time.Millisecond

	WrongToneFreq     = 300.0
	WrongToneDuration = 200 * time.Millisecond

	// SuccessToneStep is the onset spacing of arpeggio notes; the last note rings longer
	SuccessToneStep     = 150 * time.Millisecond
	SuccessLastDuration = 300 * time.Millisecond

	ToneAttack  = 5 * time.Millisecond
	ToneRelease = 40 * time.Millisecond

	// ToneGain matches the 0.3 initial gain of the feedback beeps
	ToneGain = 0.3
)

// SuccessToneFreqs is the C-E-G arpeggio played on word completion
var SuccessToneFreqs = [3]float64{523, 659, 784}
