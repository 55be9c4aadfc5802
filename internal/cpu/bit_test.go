package cpu

import (
	"testing"
)

func TestBit(t *testing.T) {
	c := newTestCPU(t)
	t.Run("set", func(t *testing.T) {
		c.A = c.setBit(c.A, 0)
		if c.A != 0x01 {
			t.Errorf("expected 0x01, got 0x%02x", c.A)
		}
	})
	t.Run("clear", func(t *testing.T) {
		c.A = c.clearBit(c.A, 0)
		if c.A != 0x00 {
			t.Errorf("expected A to be 0x00, got 0x%02X", c.A)
		}
	})
	t.Run("test", func(t *testing.T) {
		c.testBit(c.A, 0)
		if !c.isFlagSet(FlagZero) {
			t.Errorf("expected zero flag to be set, got unset")
		}
		c.A = 0x01
		c.testBit(c.A, 0)
		if c.isFlagSet(FlagZero) {
			t.Errorf("expected zero flag to be unset, got set")
		}
	})
}

func TestCBInstructionSet_BitResSet(t *testing.T) {
	c := newTestCPU(t)
	// 0x47 - BIT 0, A
	c.A = 0x00
	InstructionSetCB[0x47].Execute(c, nil)
	if !c.isFlagSet(FlagZero) {
		t.Errorf("expected BIT 0, A to set zero flag when bit 0 is clear")
	}
	// 0xC7 - SET 0, A
	InstructionSetCB[0xC7].Execute(c, nil)
	if c.A != 0x01 {
		t.Errorf("expected SET 0, A to set bit 0, got 0x%02X", c.A)
	}
	// 0x87 - RES 0, A
	InstructionSetCB[0x87].Execute(c, nil)
	if c.A != 0x00 {
		t.Errorf("expected RES 0, A to clear bit 0, got 0x%02X", c.A)
	}
}

func TestCBInstructionSet_HLIndirect(t *testing.T) {
	c := newTestCPU(t)
	c.HL.SetUint16(0xC000)
	c.mmu.Write(0xC000, 0x00)
	// 0xC6 - SET 0, (HL)
	InstructionSetCB[0xC6].Execute(c, nil)
	if got := c.mmu.Read(0xC000); got != 0x01 {
		t.Errorf("expected SET 0, (HL) to set bit 0 in memory, got 0x%02X", got)
	}
}
