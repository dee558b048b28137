// Package game assembles a playable session for the frontends: config, word source,
// hot reload, audio and presentation effects around the core simulation
package game

import (
	"flag"
	"log"
	"time"

	"github.com/1pavlov/vibecoded-kids-games/audio"
	"github.com/1pavlov/vibecoded-kids-games/config"
	"github.com/1pavlov/vibecoded-kids-games/content"
	"github.com/1pavlov/vibecoded-kids-games/engine"
	"github.com/1pavlov/vibecoded-kids-games/event"
	"github.com/1pavlov/vibecoded-kids-games/render"
	"github.com/1pavlov/vibecoded-kids-games/system"
	"github.com/1pavlov/vibecoded-kids-games/vmath"
)

// Options are the command-line overrides shared by both frontends
type Options struct {
	ConfigPath string
	WordsPath  string
	Debug      bool
	Mute       bool
	Seed       uint64
}

// RegisterFlags binds Options to a flag set
func RegisterFlags(fs *flag.FlagSet) *Options {
	o := &Options{}
	fs.StringVar(&o.ConfigPath, "config", "", "YAML config file")
	fs.StringVar(&o.WordsPath, "words", "", "YAML word list, replaces the built-in list and reloads on change")
	fs.BoolVar(&o.Debug, "debug", false, "Write logs/letter-snake.log and show path and status overlays")
	fs.BoolVar(&o.Mute, "mute", false, "Disable sound")
	fs.Uint64Var(&o.Seed, "seed", 0, "Random seed, 0 seeds from the clock")
	return o
}

// Config loads the config file and applies the flag overrides on top
func (o *Options) Config() (config.Config, error) {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return config.Config{}, err
	}
	if o.WordsPath != "" {
		cfg.WordsFile = o.WordsPath
	}
	if o.Debug {
		cfg.Debug = true
	}
	if o.Mute {
		cfg.Audio = false
	}
	if o.Seed != 0 {
		cfg.Seed = o.Seed
	}
	return cfg, nil
}

// Game is a running session plus everything around it that the frontends share
type Game struct {
	Session *engine.Session
	Deck    *content.Deck
	Sound   *audio.SoundManager
	Effects *render.Effects
	Config  config.Config

	watcher *content.Watcher
}

// New builds a game for a field of the given size
// Audio or watcher failures are logged and the game runs without them
func New(cfg config.Config, width, height float64) (*Game, error) {
	words, err := loadWords(cfg.WordsFile)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("game: seed %d, %d words", seed, len(words))

	cfg.Field.Width, cfg.Field.Height = width, height
	deck := content.NewDeck(words, vmath.NewFastRand(seed))

	g := &Game{
		Session: system.NewGame(cfg, deck, vmath.NewFastRand(seed^0x9E3779B97F4A7C15)),
		Deck:    deck,
		Sound:   audio.NewSoundManager(),
		Effects: render.NewEffects(vmath.NewFastRand(seed + 1)),
		Config:  cfg,
	}

	if cfg.Audio {
		if err := g.Sound.Initialize(); err != nil {
			log.Printf("game: audio unavailable: %v", err)
			g.Sound.SetMuted(true)
		}
	} else {
		g.Sound.SetMuted(true)
	}

	if cfg.WordsFile != "" {
		w, err := content.NewWatcher(cfg.WordsFile)
		if err != nil {
			log.Printf("game: not watching %s: %v", cfg.WordsFile, err)
		} else {
			g.watcher = w
		}
	}

	return g, nil
}

func loadWords(path string) ([]string, error) {
	if path == "" {
		return content.Default().Words(), nil
	}
	list, err := content.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return list.Words(), nil
}

// Update advances the game one frame and returns the events it produced
func (g *Game) Update(dt time.Duration) []event.GameEvent {
	g.pollReload()

	g.Session.Tick(dt)
	events := g.Session.Events()

	g.Sound.HandleEvents(events)
	g.Effects.HandleEvents(events, g.Session.Width)
	g.Effects.Update(g.Session.Height)
	return events
}

// pollReload swaps in an edited word list without blocking the frame
// The word on the field is kept; the new list starts with the next word
func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	select {
	case path, ok := <-g.watcher.Events:
		if !ok {
			g.watcher = nil
			return
		}
		list, err := content.LoadFile(path)
		if err != nil {
			log.Printf("game: reload rejected: %v", err)
			return
		}
		g.Deck.Replace(list.Words())
		log.Printf("game: word list reloaded, %d words", list.Count())
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("game: watcher: %v", err)
		}
	default:
	}
}

// Continue dismisses the completion overlay and loads the next word
// Ignored while the word is still in progress
func (g *Game) Continue() bool {
	return g.Session.ContinueToNextWord()
}

// Status is the debug line shown by the frontends
func (g *Game) Status() string {
	return g.Session.Status.Summary()
}

// Close releases audio and the watcher
func (g *Game) Close() {
	g.Sound.Cleanup()
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}
