// Package cpu implements the Sharp LR35902 instruction interpreter: the
// register file, ALU, and opcode + CB-prefixed dispatch tables, plus
// interrupt servicing and the fixed post-boot reset state.
package cpu

import (
	"github.com/ardentgb/gbcore/internal/interrupts"
	"github.com/ardentgb/gbcore/internal/mmu"
	"github.com/ardentgb/gbcore/internal/types"
	"github.com/ardentgb/gbcore/pkg/log"
)

// Register and RegisterPair are aliased from types so the opcode tables
// can refer to them without importing the types package directly.
type Register = types.Register
type RegisterPair = types.RegisterPair

// CPU holds the Sharp LR35902 register file and drives the fetch/decode/
// execute loop, including interrupt dispatch and HALT.
type CPU struct {
	types.Registers

	PC uint16
	SP uint16

	mmu *mmu.MMU
	irq *interrupts.Service
	log log.Logger

	halted bool

	// currentTick accumulates the T-cycle cost of the instruction or
	// interrupt dispatch currently being processed; Tick returns it.
	currentTick uint8
}

// NewCPU wires the register-pair pointers into the embedded register
// fields and resets the CPU to its post-boot state. logger receives
// optional interrupt-dispatch tracing; pass log.NewNullLogger() to
// disable it.
func NewCPU(m *mmu.MMU, irq *interrupts.Service, cgb bool, logger log.Logger) *CPU {
	c := &CPU{mmu: m, irq: irq, log: logger}
	c.BC = &RegisterPair{High: &c.B, Low: &c.C}
	c.DE = &RegisterPair{High: &c.D, Low: &c.E}
	c.HL = &RegisterPair{High: &c.H, Low: &c.L}
	c.AF = &RegisterPair{High: &c.A, Low: &c.F}
	c.reset(cgb)
	return c
}

// reset puts the CPU into the fixed post-boot state documented by the
// original boot sequence shortcut: no boot ROM runs, registers and the
// relevant MMIO registers are seeded directly.
func (c *CPU) reset(cgb bool) {
	c.PC = 0x0100
	c.SP = 0xFFFE
	if cgb {
		c.AF.SetUint16(0x11B0) // A = 0x11 selects CGB, 0x01 selects DMG
	} else {
		c.AF.SetUint16(0x01B0)
	}
	c.BC.SetUint16(0x0012)
	c.DE.SetUint16(0x00D8)
	c.HL.SetUint16(0x014D)
	c.halted = false
	c.currentTick = 0

	c.mmu.Write(0xFF50, 0x01)
	c.mmu.Write(0xFF05, 0x00) // TIMA
	c.mmu.Write(0xFF06, 0x00) // TMA
	c.mmu.Write(0xFF07, 0x00) // TAC
	c.mmu.Write(0xFF10, 0x80) // NR10
	c.mmu.Write(0xFF11, 0xBF) // NR11
	c.mmu.Write(0xFF12, 0xF3) // NR12
	c.mmu.Write(0xFF14, 0xBF) // NR14
	c.mmu.Write(0xFF16, 0x3F) // NR21
	c.mmu.Write(0xFF17, 0x00) // NR22
	c.mmu.Write(0xFF19, 0xBF) // NR24
	c.mmu.Write(0xFF1A, 0x7F) // NR30
	c.mmu.Write(0xFF1B, 0xFF) // NR31
	c.mmu.Write(0xFF1C, 0x9F) // NR32
	c.mmu.Write(0xFF1E, 0xBF) // NR34
	c.mmu.Write(0xFF20, 0xFF) // NR41
	c.mmu.Write(0xFF21, 0x00) // NR42
	c.mmu.Write(0xFF22, 0x00) // NR43
	c.mmu.Write(0xFF23, 0xBF) // NR44
	c.mmu.Write(0xFF24, 0x77) // NR50
	c.mmu.Write(0xFF25, 0xF3) // NR51
	c.mmu.Write(0xFF26, 0xF1) // NR52
	c.mmu.Write(0xFF40, 0x91) // LCDC
	c.mmu.Write(0xFF42, 0x00) // SCY
	c.mmu.Write(0xFF43, 0x00) // SCX
	c.mmu.Write(0xFF45, 0x00) // LYC
	c.mmu.Write(0xFF47, 0xFC) // BGP
	c.mmu.Write(0xFF48, 0xFF) // OBP0
	c.mmu.Write(0xFF49, 0xFF) // OBP1
	c.mmu.Write(0xFF4A, 0x00) // WY
	c.mmu.Write(0xFF4B, 0x00) // WX
	c.mmu.Write(0xFFFF, 0x00) // IE
}

// tick charges one M-cycle (4 T-cycles) against the instruction or
// dispatch currently in flight.
func (c *CPU) tick() {
	c.currentTick += 4
}

// memRead reads a byte and charges the M-cycle it costs.
func (c *CPU) memRead(address uint16) uint8 {
	c.tick()
	return c.mmu.Read(address)
}

// memWrite writes a byte and charges the M-cycle it costs.
func (c *CPU) memWrite(address uint16, value uint8) {
	c.tick()
	c.mmu.Write(address, value)
}

// halt parks the CPU until an interrupt (or a pending IF bit, regardless
// of IME) wakes it.
func (c *CPU) halt() {
	c.halted = true
}

// Tick examines the pending interrupt state, services an interrupt or
// advances HALT, or executes exactly one instruction, and returns the
// number of T-cycles consumed.
func (c *CPU) Tick() uint8 {
	c.currentTick = 0

	if c.halted && c.irq.Flag&0x1F != 0 {
		c.halted = false
	}

	if c.irq.IME {
		if flag, vector, ok := c.irq.Next(); ok {
			c.log.Debugf("servicing interrupt flag %#02x at vector %#04x", flag, vector)
			c.irq.Clear(flag)
			c.irq.IME = false
			c.SP--
			c.memWrite(c.SP, uint8(c.PC>>8))
			c.SP--
			c.memWrite(c.SP, uint8(c.PC))
			c.PC = vector
			return c.currentTick
		}
	}

	if c.halted {
		return 4
	}

	return c.step()
}

// step fetches and executes exactly one instruction, dispatching through
// the CB-prefixed table when the fetched opcode is 0xCB.
func (c *CPU) step() uint8 {
	opcode := c.memRead(c.PC)
	c.PC++

	if opcode == 0xCB {
		cbOpcode := c.memRead(c.PC)
		c.PC++
		InstructionSetCB[cbOpcode].Execute(c, nil)
		return c.currentTick
	}

	inst := InstructionSet[opcode]
	operands := make([]byte, inst.Length-1)
	for i := range operands {
		operands[i] = c.memRead(c.PC)
		c.PC++
	}
	inst.Execute(c, operands)
	return c.currentTick
}
