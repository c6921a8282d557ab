//go:build ebiten

package ui

import (
	"image/color"

	"golife/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding    = 6
	hudLineHeight = 15
)

// HUD draws a translucent status panel over the top-left of the grid.
type HUD struct {
	sim     core.Sim
	visible bool
	pixel   *ebiten.Image
}

// NewHUD constructs a HUD for sim, initially shown when visible is set.
func NewHUD(sim core.Sim, visible bool) *HUD {
	h := &HUD{sim: sim, visible: visible}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Update toggles visibility on H.
func (h *HUD) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
}

// Draw renders the panel onto screen.
func (h *HUD) Draw(screen *ebiten.Image, paused bool) {
	if !h.visible {
		return
	}
	face := basicfont.Face7x13
	lines := append(StatusLines(h.sim, paused), KeyHelp)

	width := 0
	for _, line := range lines {
		if w := text.BoundString(face, line).Dx(); w > width {
			width = w
		}
	}
	panelW := width + 2*hudPadding
	panelH := len(lines)*hudLineHeight + 2*hudPadding

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(panelW), float64(panelH))
	op.ColorScale.Scale(0.06, 0.06, 0.08, 0.75)
	screen.DrawImage(h.pixel, op)

	for i, line := range lines {
		y := hudPadding + (i+1)*hudLineHeight - 3
		text.Draw(screen, line, face, hudPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
}
