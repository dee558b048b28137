package audio

import (
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/1pavlov/vibecoded-kids-games/event"
	"github.com/1pavlov/vibecoded-kids-games/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// SoundManager turns game events into feedback sounds on a shared mixer
// The mixer is fed to the speaker once Initialize succeeds; before that sounds queue silently
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	muted       bool
	initialized bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the audio device and starts playback of the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything still playing and drops later sounds
// The speaker keeps pulling from the empty mixer until the process exits
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	sm.mixer.Clear()
	sm.muted = true
}

// SetMuted toggles output; muted sounds are dropped, not deferred
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	sm.muted = muted
	sm.mu.Unlock()
}

func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Play starts a sound effect
func (sm *SoundManager) Play(soundType SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.muted {
		return
	}
	s := GetSoundEffect(soundType, sampleRate)
	if s == nil {
		log.Printf("audio: no effect for %v", soundType)
		return
	}

	if sm.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	sm.mixer.Add(s)
}

// Playing returns the number of streams still in the mixer
func (sm *SoundManager) Playing() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	return sm.mixer.Len()
}

// HandleEvents plays the sound matching each feedback event
func (sm *SoundManager) HandleEvents(events []event.GameEvent) {
	for _, ev := range events {
		if st, ok := SoundFor(ev.Type); ok {
			sm.Play(st)
		}
	}
}

// SoundFor maps a game event to its feedback sound
// Completion plays on the deferred celebrate event, not on the last collect
func SoundFor(t event.EventType) (SoundType, bool) {
	switch t {
	case event.EventLetterCollected:
		return SoundCorrect, true
	case event.EventLetterRejected:
		return SoundWrong, true
	case event.EventWordCelebrate:
		return SoundSuccess, true
	default:
		return 0, false
	}
}
