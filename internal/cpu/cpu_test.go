package cpu

import (
	"testing"

	"github.com/ardentgb/gbcore/internal/cartridge"
	"github.com/ardentgb/gbcore/internal/interrupts"
	"github.com/ardentgb/gbcore/internal/mmu"
	"github.com/ardentgb/gbcore/pkg/log"
)

// newTestCPU builds a CPU wired to a blank ROM-only cartridge, for
// tests that exercise register/ALU/memory behavior directly rather
// than through System.
func newTestCPU(t *testing.T) *CPU {
	t.Helper()
	rom := make([]byte, 0x8000)
	cart, err := cartridge.New(rom)
	if err != nil {
		t.Fatalf("cartridge.New: %v", err)
	}
	irq := interrupts.NewService()
	m := mmu.New(cart, irq)
	return NewCPU(m, irq, false, log.NewNullLogger())
}

func TestNewCPU_PostBootState(t *testing.T) {
	c := newTestCPU(t)

	if c.PC != 0x0100 {
		t.Errorf("PC: expected 0x0100, got 0x%04X", c.PC)
	}
	if c.SP != 0xFFFE {
		t.Errorf("SP: expected 0xFFFE, got 0x%04X", c.SP)
	}
	if c.AF.Uint16() != 0x01B0 {
		t.Errorf("AF: expected 0x01B0, got 0x%04X", c.AF.Uint16())
	}
	if c.BC.Uint16() != 0x0012 {
		t.Errorf("BC: expected 0x0012, got 0x%04X", c.BC.Uint16())
	}
	if c.DE.Uint16() != 0x00D8 {
		t.Errorf("DE: expected 0x00D8, got 0x%04X", c.DE.Uint16())
	}
	if c.HL.Uint16() != 0x014D {
		t.Errorf("HL: expected 0x014D, got 0x%04X", c.HL.Uint16())
	}
	if c.halted {
		t.Errorf("expected CPU not to be halted on reset")
	}
}

func TestNewCPU_CGBPostBootState(t *testing.T) {
	c := newTestCPU(t)
	c.reset(true)
	if c.AF.Uint16() != 0x11B0 {
		t.Errorf("AF: expected 0x11B0 in CGB mode, got 0x%04X", c.AF.Uint16())
	}
}

func TestNOP(t *testing.T) {
	c := newTestCPU(t)
	InstructionSet[0x00].Execute(c, nil)
}

func TestSTOP_IsNoOp(t *testing.T) {
	c := newTestCPU(t)
	pc := c.PC
	InstructionSet[0x10].Execute(c, []byte{0x00})
	if c.PC != pc {
		t.Errorf("STOP should not move PC on its own, decode loop advances it")
	}
	if c.halted {
		t.Errorf("STOP must not halt the CPU")
	}
}

func TestHALT(t *testing.T) {
	c := newTestCPU(t)
	InstructionSet[0x76].Execute(c, nil)
	if !c.halted {
		t.Errorf("expected CPU to be halted after HALT")
	}
}

func TestDI_EI(t *testing.T) {
	c := newTestCPU(t)
	c.irq.IME = true
	InstructionSet[0xF3].Execute(c, nil)
	if c.irq.IME {
		t.Errorf("expected IME to be cleared after DI")
	}
	InstructionSet[0xFB].Execute(c, nil)
	if !c.irq.IME {
		t.Errorf("expected IME to be set after EI")
	}
}

func TestTick_ExecutesOneInstruction(t *testing.T) {
	c := newTestCPU(t)
	c.PC = 0xC000
	c.mmu.Write(0xC000, 0x00) // NOP
	cycles := c.Tick()
	if cycles != 4 {
		t.Errorf("expected NOP to cost 4 T-cycles, got %d", cycles)
	}
	if c.PC != 0xC001 {
		t.Errorf("expected PC to advance past NOP, got 0x%04X", c.PC)
	}
}

func TestTick_DispatchesCBPrefix(t *testing.T) {
	c := newTestCPU(t)
	c.PC = 0xC000
	c.mmu.Write(0xC000, 0xCB)
	c.mmu.Write(0xC001, 0x00) // RLC B
	c.B = 0x80
	cycles := c.Tick()
	if cycles != 8 {
		t.Errorf("expected CB-prefixed opcode fetch + body to cost 8 T-cycles, got %d", cycles)
	}
	if c.B != 0x01 || !c.isFlagSet(FlagCarry) {
		t.Errorf("expected RLC B to rotate 0x80 into 0x01 with carry set, got 0x%02X", c.B)
	}
}

func TestTick_HaltedConsumesFourCyclesUntilInterrupt(t *testing.T) {
	c := newTestCPU(t)
	c.halted = true
	if got := c.Tick(); got != 4 {
		t.Errorf("expected halted Tick to cost 4 T-cycles, got %d", got)
	}
	if !c.halted {
		t.Errorf("expected CPU to remain halted with no pending interrupt")
	}

	c.irq.Request(interrupts.VBlankFlag)
	if got := c.Tick(); got != 4 {
		t.Errorf("expected halt-exit-without-IME Tick to still cost 4 T-cycles, got %d", got)
	}
	if c.halted {
		t.Errorf("expected CPU to wake from HALT once IF is pending, even with IME clear")
	}
}

func TestTick_ServicesInterrupt(t *testing.T) {
	c := newTestCPU(t)
	c.PC = 0x1234
	c.SP = 0xFFFE
	c.irq.IME = true
	c.irq.Enable = 1 << interrupts.VBlankFlag
	c.irq.Request(interrupts.VBlankFlag)

	cycles := c.Tick()
	if cycles != 8 {
		t.Errorf("expected interrupt dispatch to cost 8 T-cycles, got %d", cycles)
	}
	if c.irq.IME {
		t.Errorf("expected IME to be cleared after servicing an interrupt")
	}
	if c.PC != 0x0040 {
		t.Errorf("expected PC at the VBlank vector 0x0040, got 0x%04X", c.PC)
	}
	if c.SP != 0xFFFC {
		t.Errorf("expected SP to be decremented by 2, got 0x%04X", c.SP)
	}
	if c.mmu.Read(0xFFFC) != 0x34 || c.mmu.Read(0xFFFD) != 0x12 {
		t.Errorf("expected the original PC to be pushed onto the stack")
	}
}
