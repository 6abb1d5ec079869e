package render

import "image/color"

// fillCellRGBA converts liveness data into RGBA pixels in buf. Live cells use
// their own color from colors; dead cells use off.
func fillCellRGBA(buf []byte, cells []uint8, colors []color.RGBA, off color.Color) {
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			col := colors[i]
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}
