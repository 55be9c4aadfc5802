package cpu

// swap exchanges the upper and lower nibbles of the register SWAP targets.
//
//	SWAP n   n = A, B, C, D, E, H, L, (HL)
//	Z: set if result is zero   N: 0   H: 0   C: 0
func (c *CPU) swap(reg *Register) {
	*reg = c.swapByte(*reg)
}

// swapByte nibble-swaps b and updates the flags SWAP always produces,
// regardless of which operand form (register or memory) dispatched here.
func (c *CPU) swapByte(b uint8) uint8 {
	swapped := b<<4 | b>>4
	c.setFlags(swapped == 0, false, false, false)
	return swapped
}
