package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/1pavlov/vibecoded-kids-games/game"
	"github.com/1pavlov/vibecoded-kids-games/logging"
	"github.com/1pavlov/vibecoded-kids-games/render/gui"
)

// window runs the game inside ebiten's loop
type window struct {
	game     *game.Game
	renderer *gui.Renderer
	width    int
	height   int
}

func (w *window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		w.game.Session.NextWord()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		w.game.Continue()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		w.pointer(ebiten.CursorPosition())
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		w.pointer(ebiten.TouchPosition(id))
	}

	w.game.Update(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

// pointer handles a click or tap in window pixels
func (w *window) pointer(x, y int) {
	if w.game.Session.OverlayVisible {
		w.game.Continue()
		return
	}
	if y < gui.HUDHeight {
		return
	}
	w.game.Session.SetTarget(float64(x), float64(y-gui.HUDHeight))
}

func (w *window) Draw(screen *ebiten.Image) {
	w.renderer.Draw(screen, w.game.Session.Snapshot(), w.game.Effects, w.game.Status())
}

func (w *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != w.width || outsideHeight != w.height {
		w.width, w.height = outsideWidth, outsideHeight
		w.game.Session.Resize(float64(outsideWidth), float64(outsideHeight-gui.HUDHeight))
		log.Printf("resize: window %dx%d", outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func main() {
	opts := game.RegisterFlags(flag.CommandLine)
	flag.Parse()

	cfg, err := opts.Config()
	if err != nil {
		fmt.Fprintf(os.Stderr, "letter-snake-gui: %v\n", err)
		os.Exit(1)
	}
	if logFile := logging.Setup(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	renderer, err := gui.NewRenderer(cfg.Debug)
	if err != nil {
		log.Fatal(err)
	}

	width, height := int(cfg.Field.Width), int(cfg.Field.Height)+gui.HUDHeight
	g, err := game.New(cfg, cfg.Field.Width, cfg.Field.Height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "letter-snake-gui: %v\n", err)
		os.Exit(1)
	}
	defer g.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Буквоед")

	w := &window{game: g, renderer: renderer, width: width, height: height}
	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
