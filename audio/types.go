package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundCorrect SoundType = iota // Letter collected in order
	SoundWrong                    // Bounce off a wrong letter
	SoundSuccess                  // Word complete
	soundTypeCount
)

var soundNames = [soundTypeCount]string{"correct", "wrong", "success"}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}
