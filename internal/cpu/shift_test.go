package cpu

import "testing"

func TestSLARegister(t *testing.T) {
	c := newTestCPU(t)
	c.B = 0x80
	InstructionSetCB[0x20].Execute(c, nil) // SLA B
	if c.B != 0x00 || !c.isFlagSet(FlagCarry) || !c.isFlagSet(FlagZero) {
		t.Fatalf("SLA B: got B=%#02x, want 0x00 with C and Z set", c.B)
	}

	c.C = 0x01
	InstructionSetCB[0x21].Execute(c, nil) // SLA C
	if c.C != 0x02 || c.isFlagSet(FlagCarry) {
		t.Fatalf("SLA C: got C=%#02x, want 0x02 with C clear", c.C)
	}
}

func TestSRARegister(t *testing.T) {
	c := newTestCPU(t)
	c.D = 0x8A
	InstructionSetCB[0x2A].Execute(c, nil) // SRA D
	if c.D != 0xC5 || c.isFlagSet(FlagCarry) {
		t.Fatalf("SRA D: got D=%#02x, want 0xC5 (bit 7 preserved) with C clear", c.D)
	}

	c.E = 0x01
	InstructionSetCB[0x2B].Execute(c, nil) // SRA E
	if c.E != 0x00 || !c.isFlagSet(FlagCarry) || !c.isFlagSet(FlagZero) {
		t.Fatalf("SRA E: got E=%#02x, want 0x00 with C and Z set", c.E)
	}
}

func TestSRLRegister(t *testing.T) {
	c := newTestCPU(t)
	c.H = 0x01
	InstructionSetCB[0x3C].Execute(c, nil) // SRL H
	if c.H != 0x00 || !c.isFlagSet(FlagCarry) || !c.isFlagSet(FlagZero) {
		t.Fatalf("SRL H: got H=%#02x, want 0x00 with C and Z set", c.H)
	}

	c.L = 0x80
	InstructionSetCB[0x3D].Execute(c, nil) // SRL L
	if c.L != 0x40 || c.isFlagSet(FlagCarry) {
		t.Fatalf("SRL L: got L=%#02x, want 0x40 with C clear (bit 7 zeroed)", c.L)
	}
}

func TestShiftHLIndirect(t *testing.T) {
	c := newTestCPU(t)
	c.HL.SetUint16(0xC000)
	c.mmu.Write(0xC000, 0x80)
	InstructionSetCB[0x26].Execute(c, nil) // SLA (HL)
	if got := c.mmu.Read(0xC000); got != 0x00 {
		t.Fatalf("SLA (HL): got %#02x, want 0x00", got)
	}
}
