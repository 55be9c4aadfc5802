package cpu

import "testing"

func TestAndRegister(t *testing.T) {
	c := newTestCPU(t)
	c.A = 0x5A
	c.B = 0x3C
	c.setFlag(FlagCarry)
	InstructionSet[0xA0].Execute(c, nil) // AND B
	if c.A != 0x18 || !c.isFlagSet(FlagHalfCarry) || c.isFlagSet(FlagCarry) {
		t.Fatalf("AND B: got A=%#02x, want 0x18 with H set and C clear", c.A)
	}
}

func TestAndRegisterZero(t *testing.T) {
	c := newTestCPU(t)
	c.A = 0xF0
	c.C = 0x0F
	InstructionSet[0xA1].Execute(c, nil) // AND C
	if c.A != 0x00 || !c.isFlagSet(FlagZero) {
		t.Fatalf("AND C: got A=%#02x, want 0x00 with zero flag", c.A)
	}
}

func TestOrRegister(t *testing.T) {
	c := newTestCPU(t)
	c.A = 0x5A
	c.D = 0x0F
	c.setFlags(true, true, true, true)
	InstructionSet[0xB2].Execute(c, nil) // OR D
	if c.A != 0x5F || c.isFlagSet(FlagSubtract) || c.isFlagSet(FlagHalfCarry) || c.isFlagSet(FlagCarry) {
		t.Fatalf("OR D: got A=%#02x flags wrong, want 0x5F with N,H,C clear", c.A)
	}
}

func TestXorRegister(t *testing.T) {
	c := newTestCPU(t)
	c.A = 0xFF
	InstructionSet[0xAF].Execute(c, nil) // XOR A
	if c.A != 0x00 || !c.isFlagSet(FlagZero) {
		t.Fatalf("XOR A: got A=%#02x, want 0x00 with zero flag", c.A)
	}
}

func TestCompareRegister(t *testing.T) {
	c := newTestCPU(t)
	c.A = 0x3C
	c.B = 0x2F
	InstructionSet[0xB8].Execute(c, nil) // CP B
	if c.A != 0x3C || !c.isFlagSet(FlagHalfCarry) || c.isFlagSet(FlagZero) || c.isFlagSet(FlagCarry) {
		t.Fatalf("CP B: A must be unchanged (%#02x) with H set, Z and C clear", c.A)
	}

	c.A = 0x3C
	c.D = 0x3C
	InstructionSet[0xBA].Execute(c, nil) // CP D
	if !c.isFlagSet(FlagZero) {
		t.Fatal("CP of equal values must set the zero flag")
	}
}
