package system

import (
	"github.com/1pavlov/vibecoded-kids-games/config"
	"github.com/1pavlov/vibecoded-kids-games/content"
	"github.com/1pavlov/vibecoded-kids-games/engine"
	"github.com/1pavlov/vibecoded-kids-games/vmath"
)

// NewGame creates a session with the standard pipeline: motion, collection, hint
func NewGame(cfg config.Config, words content.Source, rng *vmath.FastRand) *engine.Session {
	s := engine.NewSession(cfg, words, rng)
	s.AddSystem(NewMotionSystem(s))
	s.AddSystem(NewCollectionSystem(s))
	s.AddSystem(NewHintSystem())
	return s
}
