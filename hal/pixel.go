package hal

// packedToRGBA expands 0x00RRGGBB pixels into opaque RGBA bytes. It stops at
// whichever slice runs out first.
func packedToRGBA(dst []byte, src []uint32) {
	for i, p := range src {
		j := i * 4
		if j+3 >= len(dst) {
			return
		}
		dst[j+0] = uint8(p >> 16)
		dst[j+1] = uint8(p >> 8)
		dst[j+2] = uint8(p)
		dst[j+3] = 0xFF
	}
}
