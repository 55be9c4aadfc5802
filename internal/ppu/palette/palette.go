// Package palette holds the fixed DMG grayscale ramp and the shared
// "sentinel white" used by the PPU's sprite-priority test.
package palette

// Shades is the fixed DMG mono ramp the four 2-bit colour indices map to.
// The values are exact hardware sentinels, not an aesthetic choice: index 0
// (0xED,0xED,0xED) doubles as the marker the sprite compositor uses to
// detect "background colour 0" without a second index buffer.
var Shades = [4][3]uint8{
	{0xED, 0xED, 0xED},
	{0x99, 0x99, 0x99},
	{0x66, 0x66, 0x66},
	{0x21, 0x21, 0x21},
}

// SentinelWhite is Shades[0], reused by CGB colour decode to replace a
// computed (0,0,0) so the same priority test holds in CGB mode.
var SentinelWhite = Shades[0]

// Shade resolves a 2-bit colour index through an 8-bit palette register
// (BGP, OBP0 or OBP1), then maps the resulting shade number through Shades.
func Shade(register uint8, colorIndex uint8) [3]uint8 {
	shade := (register >> (colorIndex * 2)) & 0x03
	return Shades[shade]
}
