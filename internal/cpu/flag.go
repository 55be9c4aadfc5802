package cpu

import "github.com/ardentgb/gbcore/pkg/bits"

type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// clearFlag clears a flag from the F register.
func (c *CPU) clearFlag(flag Flag) {
	c.F = bits.Reset(c.F, flag)
	c.F &= 0xF0
}

// setFlag sets a flag to the given value.
func (c *CPU) setFlag(flag Flag) {
	c.F = bits.Set(c.F, flag)
	c.F &= 0xF0 // the lower 4 bits of the F register are always 0
}

// setFlags sets or clears Z, N, H, C in one call, as used by the shift
// family where all four flags are determined by a single result.
func (c *CPU) setFlags(zero, subtract, halfCarry, carry bool) {
	if zero {
		c.setFlag(FlagZero)
	} else {
		c.clearFlag(FlagZero)
	}
	if subtract {
		c.setFlag(FlagSubtract)
	} else {
		c.clearFlag(FlagSubtract)
	}
	if halfCarry {
		c.setFlag(FlagHalfCarry)
	} else {
		c.clearFlag(FlagHalfCarry)
	}
	if carry {
		c.setFlag(FlagCarry)
	} else {
		c.clearFlag(FlagCarry)
	}
}

// isFlagSet returns true if the given flag is set.
func (c *CPU) isFlagSet(flag Flag) bool {
	switch flag {
	case FlagZero:
		return c.F&0x80 == 0x80
	case FlagSubtract:
		return c.F&0x40 == 0x40
	case FlagHalfCarry:
		return c.F&0x20 == 0x20
	case FlagCarry:
		return c.F&0x10 == 0x10
	}

	return false
}

// shouldZeroFlag sets or clears FlagZero depending on whether value is 0,
// the one flag nearly every ALU op derives from its own result rather than
// taking as an explicit argument.
func (c *CPU) shouldZeroFlag(value uint8) {
	if value == 0 {
		c.setFlag(FlagZero)
	} else {
		c.clearFlag(FlagZero)
	}
}
