package cpu

// rotateLeft rotates value left one bit, copying the outgoing bit 7 into
// both the carry flag and the incoming bit 0.
//
//	RLC n   n = A, B, C, D, E, H, L, (HL)
//	Z: set if result is zero   N: 0   H: 0   C: old bit 7
func (c *CPU) rotateLeft(value uint8) uint8 {
	carryOut := value&0x80 != 0
	result := value << 1
	if carryOut {
		result |= 0x01
	}
	c.setFlags(result == 0, false, false, carryOut)
	return result
}

// rotateRight rotates value right one bit, copying the outgoing bit 0 into
// both the carry flag and the incoming bit 7.
//
//	RRC n   n = A, B, C, D, E, H, L, (HL)
//	Z: set if result is zero   N: 0   H: 0   C: old bit 0
func (c *CPU) rotateRight(value uint8) uint8 {
	carryOut := value&0x01 != 0
	result := value >> 1
	if carryOut {
		result |= 0x80
	}
	c.setFlags(result == 0, false, false, carryOut)
	return result
}

// rotateLeftThroughCarry rotates value left one bit through the carry
// flag: the incoming bit 0 is the old carry, and the outgoing bit 7
// becomes the new one.
//
//	RL n   n = A, B, C, D, E, H, L, (HL)
//	Z: set if result is zero   N: 0   H: 0   C: old bit 7
func (c *CPU) rotateLeftThroughCarry(value uint8) uint8 {
	carryOut := value&0x80 != 0
	result := value << 1
	if c.isFlagSet(FlagCarry) {
		result |= 0x01
	}
	c.setFlags(result == 0, false, false, carryOut)
	return result
}

// rotateRightThroughCarry rotates value right one bit through the carry
// flag: the incoming bit 7 is the old carry, and the outgoing bit 0
// becomes the new one.
//
//	RR n   n = A, B, C, D, E, H, L, (HL)
//	Z: set if result is zero   N: 0   H: 0   C: old bit 0
func (c *CPU) rotateRightThroughCarry(value uint8) uint8 {
	carryOut := value&0x01 != 0
	result := value >> 1
	if c.isFlagSet(FlagCarry) {
		result |= 0x80
	}
	c.setFlags(result == 0, false, false, carryOut)
	return result
}

// accumulatorRotate implements the four non-CB accumulator-only rotates
// (RLCA/RRCA/RLA/RRA), which share RLC/RRC/RL/RR's bit math but always
// clear Z instead of deriving it from the result.
func (c *CPU) accumulatorRotate(op func(*CPU, uint8) uint8) {
	c.A = op(c, c.A)
	c.clearFlag(FlagZero)
}

// rotateLeftAccumulator is RLCA.
func (c *CPU) rotateLeftAccumulator() { c.accumulatorRotate((*CPU).rotateLeft) }

// rotateRightAccumulator is RRCA.
func (c *CPU) rotateRightAccumulator() { c.accumulatorRotate((*CPU).rotateRight) }

// rotateLeftAccumulatorThroughCarry is RLA.
func (c *CPU) rotateLeftAccumulatorThroughCarry() {
	c.accumulatorRotate((*CPU).rotateLeftThroughCarry)
}

// rotateRightAccumulatorThroughCarry is RRA.
func (c *CPU) rotateRightAccumulatorThroughCarry() {
	c.accumulatorRotate((*CPU).rotateRightThroughCarry)
}
