package ppu

// Sprite is one decoded 4-byte OAM entry. Y and X are the raw hardware
// values (screen position is Y-16, X-8); culling and visibility tests are
// defined against the raw values per the specification.
type Sprite struct {
	Y, X uint8
	Tile uint8

	// Priority true means the sprite is drawn behind background/window
	// colours 1-3 (bit 7 of the attribute byte).
	Priority bool
	FlipY    bool
	FlipX    bool
	// DMGPalette selects OBP0 (0) or OBP1 (1) in DMG mode.
	DMGPalette uint8
	// CGBBank selects the VRAM bank (0-1) the tile is read from in CGB mode.
	CGBBank uint8
	// CGBPalette selects one of the 8 CGB object palettes.
	CGBPalette uint8
}

// decodeSprite parses one sprite's 4 raw OAM bytes.
func decodeSprite(b [4]uint8) Sprite {
	attr := b[3]
	return Sprite{
		Y:          b[0],
		X:          b[1],
		Tile:       b[2],
		Priority:   attr&0x80 != 0,
		FlipY:      attr&0x40 != 0,
		FlipX:      attr&0x20 != 0,
		DMGPalette: (attr >> 4) & 0x01,
		CGBBank:    (attr >> 3) & 0x01,
		CGBPalette: attr & 0x07,
	}
}

// ScreenY and ScreenX convert raw OAM coordinates to screen space.
func (s Sprite) ScreenY() int { return int(s.Y) - 16 }
func (s Sprite) ScreenX() int { return int(s.X) - 8 }

// offscreen reports whether the sprite's raw Y places it entirely off the
// visible 144-line display, per the specification's culling rule.
func (s Sprite) offscreen() bool {
	return s.Y == 0 || s.Y >= 160
}
