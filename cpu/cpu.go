// Package cpu defines the 6502 architecture and provides the methods
// needed to run the CPU and interface with it for emulation.
package cpu

import (
	"fmt"

	"github.com/akashigamedev/mos6502/memory"
	"github.com/akashigamedev/mos6502/opcodes"
)

// Status flag bit positions in P. Bit 5 (S1) has no architectural
// meaning but conventionally always reads as 1.
const (
	P_CARRY     = uint8(0x01)
	P_ZERO      = uint8(0x02)
	P_INTERRUPT = uint8(0x04)
	P_DECIMAL   = uint8(0x08)
	P_BREAK     = uint8(0x10)
	P_S1        = uint8(0x20)
	P_OVERFLOW  = uint8(0x40)
	P_NEGATIVE  = uint8(0x80)
)

const (
	// StackBase is the fixed page the stack lives in; the actual
	// address of a stack operation is StackBase + S.
	StackBase = uint16(0x0100)
	// StackReset is the value S takes on reset.
	StackReset = uint8(0xFD)
	// ResetVector holds the 16-bit address execution starts at.
	ResetVector = uint16(0xFFFC)
	// LoadAddr is where Load places a program image.
	LoadAddr = uint16(0x8000)
)

// InvalidCPUState represents a programming error in the core's own
// dispatch table (addressing-mode misuse) rather than a condition of
// the emulated program. Always fatal.
type InvalidCPUState struct {
	Reason string
}

// Error implements the error interface.
func (e InvalidCPUState) Error() string {
	return fmt.Sprintf("invalid CPU state: %s", e.Reason)
}

// UnknownOpcode represents decoding a byte that has no entry in the
// opcode table: either a corrupt program image or an attempt to use
// an opcode this core doesn't implement. Fatal, unrecoverable.
type UnknownOpcode struct {
	Opcode uint8
	PC     uint16
}

// Error implements the error interface.
func (e UnknownOpcode) Error() string {
	return fmt.Sprintf("unknown opcode 0x%.2X at PC 0x%.4X", e.Opcode, e.PC)
}

// Chip is the entire architectural state of a 6502: the register file,
// status flags, program counter, stack pointer, and the memory it's
// wired to. A Chip must have Reset called (directly or via Load +
// Reset, or LoadAndRun) before Run/Step is meaningful.
type Chip struct {
	A  uint8  // Accumulator
	X  uint8  // X index register
	Y  uint8  // Y index register
	S  uint8  // Stack pointer; real address is StackBase + S
	P  uint8  // Status register
	PC uint16 // Program counter

	ram memory.Bank
}

// Init creates a new Chip wired to the given memory bank. The returned
// Chip is in an unspecified register state until Reset is called.
func Init(ram memory.Bank) *Chip {
	return &Chip{ram: ram}
}

// Mem returns the memory bank this Chip is wired to, for test setup and
// disassembly/tracing tools that need direct access.
func (p *Chip) Mem() memory.Bank {
	return p.ram
}

// Reset clears A/X/Y to 0, sets S to StackReset, sets P to
// 0b00100100 (INTERRUPT_DISABLE and the unused bit 5 set, everything
// else clear), and loads PC from the reset vector.
func (p *Chip) Reset() {
	p.A = 0
	p.X = 0
	p.Y = 0
	p.S = StackReset
	p.P = P_INTERRUPT | P_S1
	p.PC = p.ram.Read16(ResetVector)
}

// Load copies program into memory starting at LoadAddr and points the
// reset vector at it. It does not reset register state; call Reset (or
// use LoadAndRun) to start execution from LoadAddr.
func (p *Chip) Load(program []uint8) {
	for i, b := range program {
		p.ram.Write(LoadAddr+uint16(i), b)
	}
	p.ram.Write16(ResetVector, LoadAddr)
}

// LoadAndRun is Load, Reset, Run in sequence.
func (p *Chip) LoadAndRun(program []uint8) error {
	p.Load(program)
	p.Reset()
	return p.Run()
}

// Run executes instructions until Step reports the program has hit
// BRK, or until Step returns an error (unknown opcode, or an
// addressing-mode misuse bug in the dispatch table).
func (p *Chip) Run() error {
	for {
		done, err := p.Step()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// Step decodes and executes exactly one instruction. It returns
// (true, nil) after executing BRK, (false, nil) after any other
// instruction, and a non-nil error (PC left pointing at the offending
// opcode) if the opcode is undocumented or the dispatch table misuses
// addressing-mode resolution.
func (p *Chip) Step() (bool, error) {
	opPC := p.PC
	op := p.ram.Read(p.PC)
	p.PC++

	desc := opcodes.Table[op]
	if desc == nil {
		p.PC = opPC
		return false, UnknownOpcode{Opcode: op, PC: opPC}
	}

	pcBeforeOperand := p.PC
	handler := dispatch[op]
	if err := handler(p); err != nil {
		p.PC = opPC
		return false, err
	}
	if p.PC == pcBeforeOperand {
		p.PC += uint16(desc.Len) - 1
	}
	return op == 0x00, nil
}

// zeroCheck sets the ZERO flag from the given result byte.
func (p *Chip) zeroCheck(result uint8) {
	p.P &^= P_ZERO
	if result == 0 {
		p.P |= P_ZERO
	}
}

// negativeCheck sets the NEGATIVE flag from bit 7 of the given result byte.
func (p *Chip) negativeCheck(result uint8) {
	p.P &^= P_NEGATIVE
	if result&0x80 != 0 {
		p.P |= P_NEGATIVE
	}
}

// zeroNegativeCheck is the common Z/N update every load/transfer/
// increment/decrement/logical instruction performs on its result byte.
func (p *Chip) zeroNegativeCheck(result uint8) {
	p.zeroCheck(result)
	p.negativeCheck(result)
}

// carryCheck sets the CARRY flag if an 8-bit ALU result (computed as a
// 16-bit sum) carried out of bit 7.
func (p *Chip) carryCheck(sum uint16) {
	p.P &^= P_CARRY
	if sum > 0xFF {
		p.P |= P_CARRY
	}
}

// overflowCheck sets the OVERFLOW flag when an ALU operation caused a
// two's-complement sign change: the two inputs agreed in sign and the
// result disagrees with them.
// Taken from http://www.righto.com/2012/12/the-6502-overflow-flag-explained.html
func (p *Chip) overflowCheck(a, m, result uint8) {
	p.P &^= P_OVERFLOW
	if (m^result)&(a^result)&0x80 != 0 {
		p.P |= P_OVERFLOW
	}
}

func (p *Chip) setFlag(flag uint8, set bool) {
	if set {
		p.P |= flag
	} else {
		p.P &^= flag
	}
}

func (p *Chip) flag(flag uint8) bool {
	return p.P&flag != 0
}

// pushStack writes val to the current stack address and moves S down
// one byte (wrapping within 8 bits).
func (p *Chip) pushStack(val uint8) {
	p.ram.Write(StackBase+uint16(p.S), val)
	p.S--
}

// popStack moves S up one byte (wrapping within 8 bits) and returns the
// byte now at the top of the stack.
func (p *Chip) popStack() uint8 {
	p.S++
	return p.ram.Read(StackBase + uint16(p.S))
}

func (p *Chip) pushStack16(val uint16) {
	p.pushStack(uint8(val >> 8))
	p.pushStack(uint8(val & 0xFF))
}

func (p *Chip) popStack16() uint16 {
	lo := uint16(p.popStack())
	hi := uint16(p.popStack())
	return hi<<8 | lo
}
