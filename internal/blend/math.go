package blend

// div255 divides x by 255 exactly without using division.
//
// Formula: ((x + 128) + ((x + 128) >> 8)) >> 8
//
// This is the rounding variant of Alvy Ray Smith's formula and gives
// round(x/255) for every product of two bytes. Renders must be
// bit-reproducible, so the approximate (x+255)>>8 shortcut is not used.
func div255(x uint16) uint16 {
	t := x + 128
	return (t + (t >> 8)) >> 8
}

// mulDiv255 multiplies two bytes and divides by 255 with rounding.
func mulDiv255(a, b byte) byte {
	return byte(div255(uint16(a) * uint16(b)))
}

// addClamp adds two bytes and clamps to 255.
func addClamp(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}
