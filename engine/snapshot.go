package engine

import (
	"time"

	"github.com/1pavlov/vibecoded-kids-games/component"
	"github.com/1pavlov/vibecoded-kids-games/vmath"
)

// Snapshot is a read-only copy of the state a renderer needs for one frame
type Snapshot struct {
	Pos    vmath.Vec2
	Target vmath.Vec2
	Body   []vmath.Vec2
	Path   []vmath.Vec2

	Letters []component.Letter

	Word      string
	Collected string
	Phase     component.WordPhase

	WordNumber int
	TotalWords int
	Finished   bool

	HintShown      bool
	OverlayVisible bool

	Width, Height float64
	Elapsed       time.Duration
	Frame         int64
}

// Snapshot copies the current state; the result shares no memory with the session
func (s *Session) Snapshot() Snapshot {
	c := s.Creature
	return Snapshot{
		Pos:            c.Pos,
		Target:         c.Target,
		Body:           append([]vmath.Vec2(nil), c.Body...),
		Path:           append([]vmath.Vec2(nil), c.Path...),
		Letters:        append([]component.Letter(nil), s.Letters...),
		Word:           s.Progress.String(),
		Collected:      s.Progress.Collected(),
		Phase:          s.Progress.Phase(),
		WordNumber:     s.WordNumber,
		TotalWords:     s.Words.Len(),
		Finished:       s.Finished,
		HintShown:      s.HintShown,
		OverlayVisible: s.OverlayVisible,
		Width:          s.Width,
		Height:         s.Height,
		Elapsed:        s.Elapsed,
		Frame:          s.Frame,
	}
}
