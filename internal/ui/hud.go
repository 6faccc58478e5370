//go:build ebiten

package ui

import (
	"image/color"

	"aoc/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const lineHeight = 16

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	sim      core.Sim
	width    int
	panel    *ebiten.Image
	lines    []string
	title    string
	provider core.ParameterProvider
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width, title: sim.Name()}
	if p, ok := sim.(core.ParameterProvider); ok {
		h.provider = p
	}
	return h
}

// Update refreshes the cached parameter lines.
func (h *HUD) Update() {
	if h.provider == nil {
		return
	}
	h.lines = Lines(h.provider.Parameters())
}

// Draw paints the panel at offsetX, spanning height pixels.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h.width == 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 24, G: 24, B: 32, A: 255})

	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, 8, lineHeight, color.White)
	for i, line := range h.lines {
		text.Draw(h.panel, line, face, 8, lineHeight*(i+2), color.RGBA{R: 200, G: 200, B: 210, A: 255})
	}
	if h.sim.Done() {
		text.Draw(h.panel, "done", face, 8, lineHeight*(len(h.lines)+3), color.RGBA{R: 120, G: 220, B: 140, A: 255})
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
