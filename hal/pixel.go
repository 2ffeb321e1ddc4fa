package hal

import (
	"image"

	"golang.org/x/image/draw"
)

// unpackRGBA expands packed pixels (R in the low byte) into RGBA bytes.
func unpackRGBA(dst []byte, pix []uint32) {
	for i, p := range pix {
		j := i * 4
		if j+3 >= len(dst) {
			return
		}
		dst[j+0] = byte(p)
		dst[j+1] = byte(p >> 8)
		dst[j+2] = byte(p >> 16)
		dst[j+3] = byte(p >> 24)
	}
}

// scaleFrame stretches src over dst with nearest-neighbour sampling so
// logical pixels stay crisp blocks.
func scaleFrame(dst, src *image.RGBA) {
	if dst.Bounds() == src.Bounds() {
		copy(dst.Pix, src.Pix)
		return
	}
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
}
