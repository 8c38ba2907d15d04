package raster

// Hash constants for the starfield. Multiplication wraps modulo 2^32.
const (
	starK1 uint32 = 73856093
	starK2 uint32 = 19349663
	starK3 uint32 = 0x9E3779B9
)

// StarTier is the brightness class of a background pixel.
type StarTier uint8

const (
	StarNone StarTier = iota
	StarDim
	StarMedium
	StarBright
)

// Color returns the tier color; ok is false for StarNone.
func (s StarTier) Color() (c Color, ok bool) {
	switch s {
	case StarBright:
		return 0xFFFFFF, true
	case StarMedium:
		return 0xB4B4C8, true
	case StarDim:
		return 0x5A5A6E, true
	default:
		return 0, false
	}
}

// StarHash is the per-pixel hash that drives the starfield.
func StarHash(x, y int) uint32 {
	return (uint32(x) * starK1) ^ (uint32(y) * starK2) ^ starK3
}

// StarAt classifies pixel (x, y). It depends on the coordinates only.
func StarAt(x, y int) StarTier {
	h := StarHash(x, y)
	switch {
	case h%1009 == 0:
		return StarBright
	case h%409 == 0:
		return StarMedium
	case h%149 == 0:
		return StarDim
	default:
		return StarNone
	}
}

// DrawStarfield paints star pixels over the whole target and leaves every
// other pixel untouched.
func DrawStarfield(t Target) {
	w, h := t.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if c, ok := StarAt(x, y).Color(); ok {
				t.Set(x, y, c)
			}
		}
	}
}
