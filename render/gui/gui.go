// Package gui draws snapshots with ebiten for the windowed frontend
package gui

import (
	"bytes"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/1pavlov/vibecoded-kids-games/engine"
	"github.com/1pavlov/vibecoded-kids-games/render"
)

// Sizes in world units, which are screen pixels in the window
const (
	LetterRadius = 25
	HeadRadius   = 15
	BodyRadius   = 12
	HUDHeight    = 56
)

// Renderer draws the field, HUD and overlays into an ebiten image
type Renderer struct {
	Debug bool

	regular text.Face
	letter  text.Face
	large   text.Face
}

// NewRenderer loads the Go fonts, which carry the Cyrillic glyphs the word lists need
func NewRenderer(debug bool) (*Renderer, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, err
	}
	return &Renderer{
		Debug:   debug,
		regular: &text.GoTextFace{Source: regular, Size: 18},
		letter:  &text.GoTextFace{Source: bold, Size: 24},
		large:   &text.GoTextFace{Source: bold, Size: 48},
	}, nil
}

// Draw renders one frame; the field is offset below the HUD band and by the shake
func (r *Renderer) Draw(dst *ebiten.Image, snap engine.Snapshot, fx *render.Effects, status string) {
	dst.Fill(render.ColorField.RGBA(1))

	ox := float32(fx.ShakeOffset() * 5)
	oy := float32(HUDHeight)

	if r.Debug {
		r.drawPath(dst, snap, ox, oy)
	}
	r.drawLetters(dst, snap, ox, oy)
	r.drawCreature(dst, snap, ox, oy)
	r.drawParticles(dst, fx, ox, oy)
	r.drawHUD(dst, snap)

	switch {
	case snap.Finished:
		r.drawBanner(dst, render.TextGameComplete, "")
	case snap.OverlayVisible:
		r.drawBanner(dst, snap.Word, render.TextWellDone+"  [Enter] "+render.TextContinue)
	}

	if r.Debug && status != "" {
		w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
		vector.FillRect(dst, 0, float32(h-24), float32(w), 24, color.RGBA{0, 0, 0, 160}, false)
		r.drawText(dst, status, r.regular, 8, float64(h-12), text.AlignStart, color.White)
	}
}

func (r *Renderer) drawPath(dst *ebiten.Image, snap engine.Snapshot, ox, oy float32) {
	if len(snap.Path) == 0 {
		return
	}
	prevX, prevY := float32(snap.Pos.X)+ox, float32(snap.Pos.Y)+oy
	for i, p := range snap.Path {
		x, y := float32(p.X)+ox, float32(p.Y)+oy
		vector.StrokeLine(dst, prevX, prevY, x, y, 2, render.ColorPath.RGBA(0.5), true)
		c := render.ColorWaypoint
		if i == 0 {
			c = render.ColorPath
		}
		vector.DrawFilledCircle(dst, x, y, 3, c.RGBA(1), true)
		prevX, prevY = x, y
	}
}

func (r *Renderer) drawLetters(dst *ebiten.Image, snap engine.Snapshot, ox, oy float32) {
	for _, l := range snap.Letters {
		if !l.Active() {
			continue
		}
		c := render.TileColors(l)
		x, y := float32(l.Pos.X)+ox, float32(l.Pos.Y)+oy
		if l.Highlighted {
			vector.DrawFilledCircle(dst, x, y, LetterRadius+8, render.ColorGlow.RGBA(0.35), true)
		}
		vector.DrawFilledCircle(dst, x, y, LetterRadius, c.Background.RGBA(1), true)
		vector.StrokeCircle(dst, x, y, LetterRadius, 3, c.Border.RGBA(1), true)
		r.drawText(dst, string(l.Char), r.letter, float64(x), float64(y), text.AlignCenter, c.Text.RGBA(1))
	}
}

func (r *Renderer) drawCreature(dst *ebiten.Image, snap engine.Snapshot, ox, oy float32) {
	for i := len(snap.Body) - 1; i >= 0; i-- {
		radius := float32(BodyRadius)
		if i == 0 {
			radius = HeadRadius
		}
		x, y := float32(snap.Body[i].X)+ox, float32(snap.Body[i].Y)+oy
		vector.DrawFilledCircle(dst, x, y, radius, render.ColorBody.RGBA(1), true)
		vector.StrokeCircle(dst, x, y, radius, 2, render.ColorBodyEdge.RGBA(1), true)
	}
	if len(snap.Body) == 0 {
		return
	}

	hx, hy := float32(snap.Body[0].X)+ox, float32(snap.Body[0].Y)+oy
	for _, dx := range []float32{-5, 5} {
		vector.DrawFilledCircle(dst, hx+dx, hy-5, 3, render.ColorEye.RGBA(1), true)
		vector.DrawFilledCircle(dst, hx+dx, hy-5, 1, render.ColorPupil.RGBA(1), true)
	}
	// Smile as a short polyline along the lower half circle
	const segments = 6
	for i := 0; i < segments; i++ {
		a0 := math.Pi * float64(i) / segments
		a1 := math.Pi * float64(i+1) / segments
		vector.StrokeLine(dst,
			hx+float32(6*math.Cos(a0)), hy+2+float32(6*math.Sin(a0)),
			hx+float32(6*math.Cos(a1)), hy+2+float32(6*math.Sin(a1)),
			2, render.ColorPupil.RGBA(1), true)
	}
}

func (r *Renderer) drawParticles(dst *ebiten.Image, fx *render.Effects, ox, oy float32) {
	for _, p := range fx.Particles {
		vector.DrawFilledCircle(dst, float32(p.Pos.X)+ox, float32(p.Pos.Y)+oy, float32(p.Size), p.Color.RGBA(p.Life), true)
	}
}

func (r *Renderer) drawHUD(dst *ebiten.Image, snap engine.Snapshot) {
	w := float64(dst.Bounds().Dx())
	vector.FillRect(dst, 0, 0, float32(w), HUDHeight, color.RGBA{255, 255, 255, 230}, false)
	hud := render.ColorHUD.RGBA(1)

	r.drawText(dst, render.WordNumberText(snap.WordNumber), r.regular, 12, 18, text.AlignStart, hud)
	r.drawText(dst, render.FormatTimer(snap.Elapsed), r.regular, w-12, 18, text.AlignEnd, hud)

	cells := render.WordCells(snap)
	const step = 34.0
	x := w/2 - step*float64(len(cells)-1)/2
	for _, c := range cells {
		clr := render.ColorsFor(c.Char).Text.RGBA(1)
		switch {
		case c.Collected:
			clr = render.ColorCollected.RGBA(1)
		case c.Next:
			vector.StrokeLine(dst, float32(x-10), 32, float32(x+10), 32, 2, render.ColorsFor(c.Char).Border.RGBA(1), true)
		}
		r.drawText(dst, string(c.Char), r.letter, x, 18, text.AlignCenter, clr)
		x += step
	}

	if hint := render.HintText(snap); hint != "" {
		r.drawText(dst, hint, r.regular, w/2, 45, text.AlignCenter, render.ColorGlow.Lerp(render.ColorHUD, 0.3).RGBA(1))
	}
}

func (r *Renderer) drawBanner(dst *ebiten.Image, title, subtitle string) {
	w, h := float64(dst.Bounds().Dx()), float64(dst.Bounds().Dy())
	vector.FillRect(dst, 0, 0, float32(w), float32(h), render.ColorOverlay.RGBA(0.8), false)
	txt := render.ColorOverlayTxt.RGBA(1)
	r.drawText(dst, title, r.large, w/2, h/2-20, text.AlignCenter, txt)
	if subtitle != "" {
		r.drawText(dst, subtitle, r.regular, w/2, h/2+30, text.AlignCenter, txt)
	}
}

// drawText places s with its vertical center at y
func (r *Renderer) drawText(dst *ebiten.Image, s string, face text.Face, x, y float64, align text.Align, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, s, face, op)
}
