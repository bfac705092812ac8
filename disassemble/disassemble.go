// Package disassemble implements a disassembler for the documented
// 6502 opcode set.
package disassemble

import (
	"fmt"

	"github.com/akashigamedev/mos6502/memory"
	"github.com/akashigamedev/mos6502/opcodes"
)

// Step disassembles the instruction at pc and returns a formatted
// listing line along with the number of bytes the caller should
// advance to reach the next instruction. This does not interpret the
// instruction, so a JMP target is printed as an operand, not followed.
// Step always reads up to two bytes past pc, regardless of the actual
// instruction length, so the two addresses following pc must be valid.
func Step(pc uint16, r memory.Bank) (string, int) {
	o := r.Read(pc)
	op1 := r.Read(pc + 1)
	op2 := r.Read(pc + 2)

	desc := opcodes.Table[o]
	if desc == nil {
		return fmt.Sprintf("%.4X %.2X      ???", pc, o), 1
	}

	out := fmt.Sprintf("%.4X %.2X ", pc, o)
	switch desc.Mode {
	case opcodes.Implied, opcodes.Accumulator:
		out += fmt.Sprintf("        %s           ", desc.Mnemonic)
	case opcodes.Immediate:
		out += fmt.Sprintf("%.2X      %s #%.2X       ", op1, desc.Mnemonic, op1)
	case opcodes.ZeroPage:
		out += fmt.Sprintf("%.2X      %s %.2X        ", op1, desc.Mnemonic, op1)
	case opcodes.ZeroPageX:
		out += fmt.Sprintf("%.2X      %s %.2X,X      ", op1, desc.Mnemonic, op1)
	case opcodes.ZeroPageY:
		out += fmt.Sprintf("%.2X      %s %.2X,Y      ", op1, desc.Mnemonic, op1)
	case opcodes.IndirectX:
		out += fmt.Sprintf("%.2X      %s (%.2X,X)    ", op1, desc.Mnemonic, op1)
	case opcodes.IndirectY:
		out += fmt.Sprintf("%.2X      %s (%.2X),Y    ", op1, desc.Mnemonic, op1)
	case opcodes.Absolute:
		out += fmt.Sprintf("%.2X %.2X   %s %.2X%.2X      ", op1, op2, desc.Mnemonic, op2, op1)
	case opcodes.AbsoluteX:
		out += fmt.Sprintf("%.2X %.2X   %s %.2X%.2X,X    ", op1, op2, desc.Mnemonic, op2, op1)
	case opcodes.AbsoluteY:
		out += fmt.Sprintf("%.2X %.2X   %s %.2X%.2X,Y    ", op1, op2, desc.Mnemonic, op2, op1)
	case opcodes.Indirect:
		out += fmt.Sprintf("%.2X %.2X   %s (%.2X%.2X)    ", op1, op2, desc.Mnemonic, op2, op1)
	case opcodes.Relative:
		target := pc + 2 + uint16(int16(int8(op1)))
		out += fmt.Sprintf("%.2X      %s %.2X (%.4X) ", op1, desc.Mnemonic, op1, target)
	default:
		panic(fmt.Sprintf("opcode %.2X has an unhandled addressing mode %d", o, desc.Mode))
	}
	return out, int(desc.Len)
}
