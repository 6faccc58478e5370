// Package term draws a steppable simulation into a terminal using tcell.
package term

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"aoc/internal/core"
	"aoc/internal/ui"
)

type glyphProvider interface {
	Glyph(c uint8) rune
}

var cellStyles = []tcell.Style{
	tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray),
	tcell.StyleDefault.Foreground(tcell.ColorGray),
	tcell.StyleDefault.Foreground(tcell.ColorYellow),
	tcell.StyleDefault.Foreground(tcell.ColorLightYellow),
	tcell.StyleDefault.Foreground(tcell.ColorDarkGray),
	tcell.StyleDefault.Foreground(tcell.ColorAqua),
}

var statusStyle = tcell.StyleDefault.Reverse(true)

// View renders a core.Sim onto a tcell screen, one rune per cell, with a
// status line on the last row.
type View struct {
	screen tcell.Screen
	sim    core.Sim
	glyph  func(uint8) rune

	offX, offY int
	paused     bool
}

// NewView binds sim to an initialised screen.
func NewView(screen tcell.Screen, sim core.Sim) *View {
	v := &View{screen: screen, sim: sim, glyph: defaultGlyph}
	if p, ok := sim.(glyphProvider); ok {
		v.glyph = p.Glyph
	}
	return v
}

func defaultGlyph(c uint8) rune {
	if c == 0 {
		return ' '
	}
	return '#'
}

func styleFor(c uint8) tcell.Style {
	if int(c) >= len(cellStyles) {
		return tcell.StyleDefault
	}
	return cellStyles[c]
}

// Scroll moves the viewport, clamped to the grid.
func (v *View) Scroll(dx, dy int) {
	size := v.sim.Size()
	sw, sh := v.screen.Size()
	v.offX = clamp(v.offX+dx, 0, max(0, size.W-sw))
	v.offY = clamp(v.offY+dy, 0, max(0, size.H-(sh-1)))
}

// Center scrolls so that grid column x is in the middle of the screen.
func (v *View) Center(x int) {
	sw, _ := v.screen.Size()
	v.offX = 0
	v.Scroll(x-sw/2, 0)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// Draw paints the visible part of the grid and the status line.
func (v *View) Draw() {
	v.screen.Clear()
	size := v.sim.Size()
	cells := v.sim.Cells()
	sw, sh := v.screen.Size()

	for sy := 0; sy < sh-1; sy++ {
		y := sy + v.offY
		if y >= size.H {
			break
		}
		for sx := 0; sx < sw; sx++ {
			x := sx + v.offX
			if x >= size.W {
				break
			}
			c := cells[y*size.W+x]
			v.screen.SetContent(sx, sy, v.glyph(c), nil, styleFor(c))
		}
	}

	status := v.sim.Name()
	if p, ok := v.sim.(core.ParameterProvider); ok {
		status += "  " + ui.Status(p.Parameters())
	}
	if v.paused {
		status += "  [paused]"
	}
	for sx, r := range []rune(status) {
		if sx >= sw {
			break
		}
		v.screen.SetContent(sx, sh-1, r, nil, statusStyle)
	}
	v.screen.Show()
}

// HandleKey applies a key press and reports whether the viewer should quit.
func (v *View) HandleKey(ev *tcell.EventKey) bool {
	return v.handle(ev.Key(), ev.Rune())
}

func (v *View) handle(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		v.Scroll(-4, 0)
	case tcell.KeyRight:
		v.Scroll(4, 0)
	case tcell.KeyUp:
		v.Scroll(0, -2)
	case tcell.KeyDown:
		v.Scroll(0, 2)
	case tcell.KeyRune:
		switch r {
		case 'q':
			return true
		case ' ':
			v.paused = !v.paused
		case 'n':
			if !v.sim.Done() {
				v.sim.Step()
			}
		case 'r':
			v.sim.Reset()
		}
	}
	return false
}

// Run steps the simulation tps times per second until the user quits.
func (v *View) Run(tps int) {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	clock := core.NewFixedStep(tps)
	ticker := time.NewTicker(clock.Interval())
	defer ticker.Stop()

	v.Draw()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if v.HandleKey(ev) {
					return
				}
			case *tcell.EventResize:
				v.screen.Sync()
				v.Scroll(0, 0)
			}
			v.Draw()
		case now := <-ticker.C:
			for n := clock.Due(now); n > 0 && !v.paused && !v.sim.Done(); n-- {
				v.sim.Step()
			}
			v.Draw()
		}
	}
}
