package regolith

import "image/color"

// Cell values written into the scene grid.
const (
	CellAir uint8 = iota
	CellRock
	CellSand
	CellPath
	CellFloor
	CellSource
)

var scenePalette = []color.RGBA{
	CellAir:    {R: 18, G: 14, B: 22, A: 255},
	CellRock:   {R: 120, G: 112, B: 104, A: 255},
	CellSand:   {R: 226, G: 190, B: 112, A: 255},
	CellPath:   {R: 255, G: 236, B: 170, A: 255},
	CellFloor:  {R: 80, G: 72, B: 64, A: 255},
	CellSource: {R: 90, G: 200, B: 255, A: 255},
}

var sceneGlyphs = []rune{
	CellAir:    '.',
	CellRock:   '#',
	CellSand:   'o',
	CellPath:   '~',
	CellFloor:  '=',
	CellSource: '+',
}

// Palette exposes the colors used for rendering the scene.
func (s *Scene) Palette() []color.RGBA { return scenePalette }

// Glyph returns the rune used to draw a cell value in a terminal.
func (s *Scene) Glyph(c uint8) rune {
	if int(c) >= len(sceneGlyphs) {
		return '?'
	}
	return sceneGlyphs[c]
}
