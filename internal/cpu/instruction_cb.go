package cpu

import "fmt"

// InstructionSetCB is the 256-entry CB-prefixed opcode table: rotate and
// shift families over 8 operands (B, C, D, E, H, L, (HL), A), followed
// by BIT/RES/SET over 8 bits x the same 8 operands.
var InstructionSetCB [256]Instruction

func init() {
	generateCBInstructionSet()
}

// cbOperandName names the register or memory form encoded by idx, the
// low 3 bits of a CB opcode.
func cbOperandName(idx uint8) string {
	return [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}[idx]
}

// cbRegister resolves idx against the CPU actually executing the
// instruction, not whatever CPU happened to build the table.
func cbRegister(cpu *CPU, idx uint8) *Register {
	switch idx {
	case 0:
		return &cpu.B
	case 1:
		return &cpu.C
	case 2:
		return &cpu.D
	case 3:
		return &cpu.E
	case 4:
		return &cpu.H
	case 5:
		return &cpu.L
	case 7:
		return &cpu.A
	}
	return nil
}

func cbCycles(idx uint8) uint8 {
	if idx == 6 {
		return 4
	}
	return 2
}

func cbBitCycles(idx uint8) uint8 {
	if idx == 6 {
		return 3
	}
	return 2
}

// cbRotateShift wraps a pure value -> value rotate/shift helper into an
// Execute closure, reading/writing (HL) when idx selects it.
func cbRotateShift(idx uint8, op func(*CPU, uint8) uint8) func(cpu *CPU, operands []byte) {
	return func(cpu *CPU, operands []byte) {
		if idx == 6 {
			addr := cpu.HL.Uint16()
			cpu.memWrite(addr, op(cpu, cpu.memRead(addr)))
			return
		}
		reg := cbRegister(cpu, idx)
		*reg = op(cpu, *reg)
	}
}

func cbBit(idx, bit uint8) func(cpu *CPU, operands []byte) {
	return func(cpu *CPU, operands []byte) {
		var value uint8
		if idx == 6 {
			value = cpu.memRead(cpu.HL.Uint16())
		} else {
			value = *cbRegister(cpu, idx)
		}
		cpu.testBit(value, bit)
	}
}

func cbRes(idx, bit uint8) func(cpu *CPU, operands []byte) {
	return func(cpu *CPU, operands []byte) {
		if idx == 6 {
			addr := cpu.HL.Uint16()
			cpu.memWrite(addr, cpu.clearBit(cpu.memRead(addr), bit))
			return
		}
		reg := cbRegister(cpu, idx)
		*reg = cpu.clearBit(*reg, bit)
	}
}

func cbSet(idx, bit uint8) func(cpu *CPU, operands []byte) {
	return func(cpu *CPU, operands []byte) {
		if idx == 6 {
			addr := cpu.HL.Uint16()
			cpu.memWrite(addr, cpu.setBit(cpu.memRead(addr), bit))
			return
		}
		reg := cbRegister(cpu, idx)
		*reg = cpu.setBit(*reg, bit)
	}
}

// generateCBInstructionSet populates InstructionSetCB once at init time.
func generateCBInstructionSet() {
	for op := 0; op < 256; op++ {
		op := uint8(op)
		idx := op & 0x07
		bit := (op & 0x38) >> 3
		name := cbOperandName(idx)

		switch {
		case op <= 0x07:
			InstructionSetCB[op] = Instruction{"RLC " + name, 2, cbCycles(idx), cbRotateShift(idx, (*CPU).rotateLeft)}
		case op <= 0x0F:
			InstructionSetCB[op] = Instruction{"RRC " + name, 2, cbCycles(idx), cbRotateShift(idx, (*CPU).rotateRight)}
		case op <= 0x17:
			InstructionSetCB[op] = Instruction{"RL " + name, 2, cbCycles(idx), cbRotateShift(idx, (*CPU).rotateLeftThroughCarry)}
		case op <= 0x1F:
			InstructionSetCB[op] = Instruction{"RR " + name, 2, cbCycles(idx), cbRotateShift(idx, (*CPU).rotateRightThroughCarry)}
		case op <= 0x27:
			InstructionSetCB[op] = Instruction{"SLA " + name, 2, cbCycles(idx), cbRotateShift(idx, (*CPU).shiftLeftIntoCarry)}
		case op <= 0x2F:
			InstructionSetCB[op] = Instruction{"SRA " + name, 2, cbCycles(idx), cbRotateShift(idx, (*CPU).shiftRightIntoCarry)}
		case op <= 0x37:
			InstructionSetCB[op] = Instruction{"SWAP " + name, 2, cbCycles(idx), cbRotateShift(idx, (*CPU).swapByte)}
		case op <= 0x3F:
			InstructionSetCB[op] = Instruction{"SRL " + name, 2, cbCycles(idx), cbRotateShift(idx, (*CPU).shiftRightLogical)}
		case op <= 0x7F:
			InstructionSetCB[op] = Instruction{fmt.Sprintf("BIT %d, %s", bit, name), 2, cbBitCycles(idx), cbBit(idx, bit)}
		case op <= 0xBF:
			InstructionSetCB[op] = Instruction{fmt.Sprintf("RES %d, %s", bit, name), 2, cbCycles(idx), cbRes(idx, bit)}
		default:
			InstructionSetCB[op] = Instruction{fmt.Sprintf("SET %d, %s", bit, name), 2, cbCycles(idx), cbSet(idx, bit)}
		}
	}
}
