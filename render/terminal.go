package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/1pavlov/vibecoded-kids-games/engine"
	"github.com/1pavlov/vibecoded-kids-games/vmath"
)

// TerminalRenderer draws snapshots to a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	vp     Viewport
	debug  bool

	fieldStyle tcell.Style
	hudStyle   tcell.Style
}

func NewTerminalRenderer(screen tcell.Screen, debug bool) *TerminalRenderer {
	r := &TerminalRenderer{
		screen:     screen,
		debug:      debug,
		fieldStyle: tcell.StyleDefault.Background(ColorField.TCell()),
		hudStyle:   tcell.StyleDefault.Foreground(ColorHUD.TCell()),
	}
	r.Resize()
	return r
}

// Resize refits the viewport to the current screen size
func (r *TerminalRenderer) Resize() {
	w, h := r.screen.Size()
	r.vp = NewViewport(w, h, r.debug)
}

func (r *TerminalRenderer) Screen() tcell.Screen {
	return r.screen
}

func (r *TerminalRenderer) Viewport() Viewport {
	return r.vp
}

// Draw renders one frame; status is shown on the bottom row in debug mode
func (r *TerminalRenderer) Draw(snap engine.Snapshot, fx *Effects, status string) {
	r.screen.Clear()
	shake := fx.ShakeOffset()

	r.drawField()
	if r.debug {
		r.drawPath(snap, shake)
	}
	r.drawLetters(snap, shake)
	r.drawCreature(snap, shake)
	r.drawParticles(fx, shake)
	r.drawHUD(snap)

	switch {
	case snap.Finished:
		r.drawBanner([]string{TextGameComplete})
	case snap.OverlayVisible:
		r.drawBanner([]string{TextWellDone, snap.Word, "[Enter] " + TextContinue})
	}

	if r.debug {
		w, h := r.screen.Size()
		r.drawText(0, h-1, pad(status, w), r.hudStyle.Reverse(true))
	}
	r.screen.Show()
}

func (r *TerminalRenderer) drawField() {
	for y := r.vp.Top; y < r.vp.Top+r.vp.Rows; y++ {
		for x := 0; x < r.vp.Cols; x++ {
			r.screen.SetContent(x, y, ' ', nil, r.fieldStyle)
		}
	}
}

// set draws into the field only, shifted by the shake offset
func (r *TerminalRenderer) set(p vmath.Vec2, dx, shake int, ch rune, style tcell.Style) {
	x, y := r.vp.ToScreen(p)
	x += dx + shake
	if r.vp.InField(x, y) {
		r.screen.SetContent(x, y, ch, nil, style)
	}
}

func (r *TerminalRenderer) drawPath(snap engine.Snapshot, shake int) {
	for i, p := range snap.Path {
		c := ColorWaypoint
		if i == 0 {
			c = ColorPath
		}
		r.set(p, 0, shake, '·', r.fieldStyle.Foreground(c.TCell()))
	}
}

func (r *TerminalRenderer) drawLetters(snap engine.Snapshot, shake int) {
	for _, l := range snap.Letters {
		if !l.Active() {
			continue
		}
		c := TileColors(l)
		edge := tcell.StyleDefault.Background(c.Background.TCell()).Foreground(c.Border.TCell()).Bold(true)
		text := tcell.StyleDefault.Background(c.Background.TCell()).Foreground(c.Text.TCell()).Bold(true)
		if l.Highlighted {
			edge = edge.Blink(true)
		}
		r.set(l.Pos, -1, shake, '[', edge)
		r.set(l.Pos, 0, shake, l.Char, text)
		r.set(l.Pos, 1, shake, ']', edge)
	}
}

func (r *TerminalRenderer) drawCreature(snap engine.Snapshot, shake int) {
	body := r.fieldStyle.Foreground(ColorBodyEdge.TCell())
	for i := len(snap.Body) - 1; i > 0; i-- {
		r.set(snap.Body[i], 0, shake, 'o', body)
	}
	if len(snap.Body) > 0 {
		head := tcell.StyleDefault.Background(ColorBody.TCell()).Foreground(ColorPupil.TCell()).Bold(true)
		r.set(snap.Body[0], 0, shake, '☺', head)
	}
}

func (r *TerminalRenderer) drawParticles(fx *Effects, shake int) {
	for _, p := range fx.Particles {
		c := ColorField.Lerp(p.Color, p.Life)
		r.set(p.Pos, 0, shake, '*', r.fieldStyle.Foreground(c.TCell()))
	}
}

func (r *TerminalRenderer) drawHUD(snap engine.Snapshot) {
	w, _ := r.screen.Size()
	r.drawText(0, 0, pad("", w), r.hudStyle)
	r.drawText(0, 1, pad("", w), r.hudStyle)

	r.drawText(1, 0, WordNumberText(snap.WordNumber), r.hudStyle)
	timer := FormatTimer(snap.Elapsed)
	r.drawText(w-len([]rune(timer))-1, 0, timer, r.hudStyle)

	cells := WordCells(snap)
	x := (w - len(cells)*2) / 2
	for _, c := range cells {
		style := tcell.StyleDefault.Bold(true)
		switch {
		case c.Collected:
			style = style.Foreground(ColorCollected.TCell())
		case c.Next:
			style = style.Foreground(ColorsFor(c.Char).Border.TCell()).Underline(true)
		default:
			style = style.Foreground(ColorsFor(c.Char).Text.TCell())
		}
		r.screen.SetContent(x, 0, c.Char, nil, style)
		x += 2
	}

	if hint := HintText(snap); hint != "" {
		r.drawCentered(1, hint, r.hudStyle.Foreground(ColorGlow.TCell()).Bold(true))
	}
}

// drawBanner draws a centered box over the field
func (r *TerminalRenderer) drawBanner(lines []string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	width += 4

	style := tcell.StyleDefault.Background(ColorOverlay.TCell()).Foreground(ColorOverlayTxt.TCell()).Bold(true)
	top := r.vp.Top + (r.vp.Rows-len(lines)-2)/2
	left := (r.vp.Cols - width) / 2
	for y := 0; y < len(lines)+2; y++ {
		r.drawText(left, top+y, pad("", width), style)
	}
	for i, l := range lines {
		r.drawCentered(top+1+i, l, style)
	}
}

func (r *TerminalRenderer) drawCentered(y int, s string, style tcell.Style) {
	w, _ := r.screen.Size()
	r.drawText((w-len([]rune(s)))/2, y, s, style)
}

func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

func pad(s string, w int) string {
	n := len([]rune(s))
	if n >= w {
		return s
	}
	b := make([]rune, 0, w)
	b = append(b, []rune(s)...)
	for ; n < w; n++ {
		b = append(b, ' ')
	}
	return string(b)
}
