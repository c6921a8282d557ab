package render

import "image/color"

// fillCellsRGBA paints a w*h grid of cells into buf at scale pixels per cell.
// buf must hold 4*(w*scale)*(h*scale) bytes. With a scale above one, alive
// cells are drawn as (scale-1)-pixel squares so a one-pixel gutter of the off
// colour separates neighbours.
func fillCellsRGBA(buf []byte, cells []bool, w, h, scale int, on, off color.Color) {
	onPx := rgbaBytes(on)
	offPx := rgbaBytes(off)
	pw := w * scale
	inset := scale
	if scale > 1 {
		inset = scale - 1
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			alive := cells[y*w+x]
			for sy := 0; sy < scale; sy++ {
				row := (y*scale + sy) * pw
				for sx := 0; sx < scale; sx++ {
					px := offPx
					if alive && sx < inset && sy < inset {
						px = onPx
					}
					base := (row + x*scale + sx) * 4
					copy(buf[base:base+4], px[:])
				}
			}
		}
	}
}

func rgbaBytes(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}
