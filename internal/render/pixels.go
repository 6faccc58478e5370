package render

import "image/color"

// fillPaletteRGBA converts cell values into RGBA pixels using a palette.
// Values past the end of the palette use its last entry; an empty palette
// clears the pixels to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	px := buf[:4*len(cells)]
	if len(palette) == 0 {
		clear(px)
		return
	}

	last := uint8(min(len(palette)-1, 255))
	for i, c := range cells {
		col := palette[min(c, last)]
		p := px[i*4 : i*4+4]
		p[0], p[1], p[2], p[3] = col.R, col.G, col.B, col.A
	}
}
