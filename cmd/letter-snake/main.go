package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/1pavlov/vibecoded-kids-games/game"
	"github.com/1pavlov/vibecoded-kids-games/logging"
	"github.com/1pavlov/vibecoded-kids-games/parameter"
	"github.com/1pavlov/vibecoded-kids-games/render"
)

func main() {
	opts := game.RegisterFlags(flag.CommandLine)
	flag.Parse()

	cfg, err := opts.Config()
	if err != nil {
		fmt.Fprintf(os.Stderr, "letter-snake: %v\n", err)
		os.Exit(1)
	}
	if logFile := logging.Setup(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mLETTER-SNAKE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseButtonEvents)
	screen.HideCursor()

	renderer := render.NewTerminalRenderer(screen, cfg.Debug)
	w, h := renderer.Viewport().FieldSize()
	g, err := game.New(cfg, w, h)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "letter-snake: %v\n", err)
		os.Exit(1)
	}
	defer g.Close()

	run(screen, renderer, g)
}

// run is the frame loop; input arrives from a polling goroutine and is applied between ticks
func run(screen tcell.Screen, renderer *render.TerminalRenderer, g *game.Game) {
	events := make(chan tcell.Event, 64)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(parameter.TickInterval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev, ok := <-events:
			if !ok || !handleEvent(ev, renderer, g) {
				return
			}
		case now := <-ticker.C:
			g.Update(now.Sub(last))
			last = now
			renderer.Draw(g.Session.Snapshot(), g.Effects, g.Status())
		}
	}
}

// handleEvent applies one input event; returns false to quit
func handleEvent(ev tcell.Event, renderer *render.TerminalRenderer, g *game.Game) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyEnter:
			g.Continue()
		case ev.Key() == tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case ' ':
				g.Continue()
			case 'n', 'N', 'т', 'Т':
				g.Session.NextWord()
			}
		}

	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 == 0 {
			return true
		}
		x, y := ev.Position()
		vp := renderer.Viewport()
		if g.Session.OverlayVisible {
			g.Continue()
			return true
		}
		if vp.InField(x, y) {
			p := vp.ToWorld(x, y)
			g.Session.SetTarget(p.X, p.Y)
		}

	case *tcell.EventResize:
		renderer.Screen().Sync()
		renderer.Resize()
		w, h := renderer.Viewport().FieldSize()
		g.Session.Resize(w, h)
		log.Printf("resize: field %.0fx%.0f", w, h)
	}
	return true
}
