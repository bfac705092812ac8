// Package opcodes defines the 6502 opcode table: a dense, immutable
// lookup from opcode byte to {mnemonic, length, cycles, addressing
// mode}. This is process-wide data built once at package init and
// read-only thereafter, so no locking is required to use it
// concurrently.
//
// Only the documented opcode set is present — undocumented ("illegal")
// opcodes are out of scope. An opcode byte with no entry here is a
// fatal decode error for the cpu package (see cpu.UnknownOpcode).
package opcodes

// Mode is an addressing mode an instruction resolves its operand
// address through.
type Mode int

// The 6502 addressing modes this core recognizes.
const (
	Implied Mode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	IndirectX
	IndirectY
	Indirect // JMP (a) only
	Relative // branches only
)

// Opcode describes one opcode byte: its mnemonic, total instruction
// length in bytes (opcode + operand), base cycle count, and addressing
// mode. Length and addressing mode together tell a disassembler or
// tracer how many operand bytes to read without needing to know
// anything about instruction semantics.
type Opcode struct {
	Mnemonic string
	Len      uint8
	Cycles   uint8
	Mode     Mode
}

// Table is the dense opcode-byte -> Opcode lookup. A nil entry means
// the byte is not a documented opcode this core implements.
var Table [256]*Opcode

func def(code uint8, mnemonic string, length, cycles uint8, mode Mode) {
	Table[code] = &Opcode{Mnemonic: mnemonic, Len: length, Cycles: cycles, Mode: mode}
}

func init() {
	def(0xA9, "LDA", 2, 2, Immediate)
	def(0xA5, "LDA", 2, 3, ZeroPage)
	def(0xB5, "LDA", 2, 4, ZeroPageX)
	def(0xAD, "LDA", 3, 4, Absolute)
	def(0xBD, "LDA", 3, 4, AbsoluteX)
	def(0xB9, "LDA", 3, 4, AbsoluteY)
	def(0xA1, "LDA", 2, 6, IndirectX)
	def(0xB1, "LDA", 2, 5, IndirectY)

	def(0xA2, "LDX", 2, 2, Immediate)
	def(0xA6, "LDX", 2, 3, ZeroPage)
	def(0xB6, "LDX", 2, 4, ZeroPageY)
	def(0xAE, "LDX", 3, 4, Absolute)
	def(0xBE, "LDX", 3, 4, AbsoluteY)

	def(0xA0, "LDY", 2, 2, Immediate)
	def(0xA4, "LDY", 2, 3, ZeroPage)
	def(0xB4, "LDY", 2, 4, ZeroPageX)
	def(0xAC, "LDY", 3, 4, Absolute)
	def(0xBC, "LDY", 3, 4, AbsoluteX)

	def(0x85, "STA", 2, 3, ZeroPage)
	def(0x95, "STA", 2, 4, ZeroPageX)
	def(0x8D, "STA", 3, 4, Absolute)
	def(0x9D, "STA", 3, 5, AbsoluteX)
	def(0x99, "STA", 3, 5, AbsoluteY)
	def(0x81, "STA", 2, 6, IndirectX)
	def(0x91, "STA", 2, 6, IndirectY)

	def(0x86, "STX", 2, 3, ZeroPage)
	def(0x96, "STX", 2, 4, ZeroPageY)
	def(0x8E, "STX", 3, 4, Absolute)

	def(0x84, "STY", 2, 3, ZeroPage)
	def(0x94, "STY", 2, 4, ZeroPageX)
	def(0x8C, "STY", 3, 4, Absolute)

	def(0xAA, "TAX", 1, 2, Implied)
	def(0xA8, "TAY", 1, 2, Implied)
	def(0xBA, "TSX", 1, 2, Implied)
	def(0x8A, "TXA", 1, 2, Implied)
	def(0x98, "TYA", 1, 2, Implied)
	def(0x9A, "TXS", 1, 2, Implied)

	def(0xE8, "INX", 1, 2, Implied)
	def(0xC8, "INY", 1, 2, Implied)
	def(0xCA, "DEX", 1, 2, Implied)
	def(0x88, "DEY", 1, 2, Implied)

	def(0xE6, "INC", 2, 5, ZeroPage)
	def(0xF6, "INC", 2, 6, ZeroPageX)
	def(0xEE, "INC", 3, 6, Absolute)
	def(0xFE, "INC", 3, 7, AbsoluteX)

	def(0xC6, "DEC", 2, 5, ZeroPage)
	def(0xD6, "DEC", 2, 6, ZeroPageX)
	def(0xCE, "DEC", 3, 6, Absolute)
	def(0xDE, "DEC", 3, 7, AbsoluteX)

	def(0x48, "PHA", 1, 3, Implied)
	def(0x68, "PLA", 1, 4, Implied)
	def(0x08, "PHP", 1, 3, Implied)
	def(0x28, "PLP", 1, 4, Implied)

	def(0x38, "SEC", 1, 2, Implied)
	def(0x18, "CLC", 1, 2, Implied)
	def(0x78, "SEI", 1, 2, Implied)
	def(0x58, "CLI", 1, 2, Implied)
	def(0xF8, "SED", 1, 2, Implied)
	def(0xD8, "CLD", 1, 2, Implied)
	def(0xB8, "CLV", 1, 2, Implied)

	def(0x69, "ADC", 2, 2, Immediate)
	def(0x65, "ADC", 2, 3, ZeroPage)
	def(0x75, "ADC", 2, 4, ZeroPageX)
	def(0x6D, "ADC", 3, 4, Absolute)
	def(0x7D, "ADC", 3, 4, AbsoluteX)
	def(0x79, "ADC", 3, 4, AbsoluteY)
	def(0x61, "ADC", 2, 6, IndirectX)
	def(0x71, "ADC", 2, 5, IndirectY)

	def(0xE9, "SBC", 2, 2, Immediate)
	def(0xE5, "SBC", 2, 3, ZeroPage)
	def(0xF5, "SBC", 2, 4, ZeroPageX)
	def(0xED, "SBC", 3, 4, Absolute)
	def(0xFD, "SBC", 3, 4, AbsoluteX)
	def(0xF9, "SBC", 3, 4, AbsoluteY)
	def(0xE1, "SBC", 2, 6, IndirectX)
	def(0xF1, "SBC", 2, 5, IndirectY)

	def(0xC9, "CMP", 2, 2, Immediate)
	def(0xC5, "CMP", 2, 3, ZeroPage)
	def(0xD5, "CMP", 2, 4, ZeroPageX)
	def(0xCD, "CMP", 3, 4, Absolute)
	def(0xDD, "CMP", 3, 4, AbsoluteX)
	def(0xD9, "CMP", 3, 4, AbsoluteY)
	def(0xC1, "CMP", 2, 6, IndirectX)
	def(0xD1, "CMP", 2, 5, IndirectY)

	def(0xE0, "CPX", 2, 2, Immediate)
	def(0xE4, "CPX", 2, 3, ZeroPage)
	def(0xEC, "CPX", 3, 4, Absolute)

	def(0xC0, "CPY", 2, 2, Immediate)
	def(0xC4, "CPY", 2, 3, ZeroPage)
	def(0xCC, "CPY", 3, 4, Absolute)

	def(0x29, "AND", 2, 2, Immediate)
	def(0x25, "AND", 2, 3, ZeroPage)
	def(0x35, "AND", 2, 4, ZeroPageX)
	def(0x2D, "AND", 3, 4, Absolute)
	def(0x3D, "AND", 3, 4, AbsoluteX)
	def(0x39, "AND", 3, 4, AbsoluteY)
	def(0x21, "AND", 2, 6, IndirectX)
	def(0x31, "AND", 2, 5, IndirectY)

	def(0x09, "ORA", 2, 2, Immediate)
	def(0x05, "ORA", 2, 3, ZeroPage)
	def(0x15, "ORA", 2, 4, ZeroPageX)
	def(0x0D, "ORA", 3, 4, Absolute)
	def(0x1D, "ORA", 3, 4, AbsoluteX)
	def(0x19, "ORA", 3, 4, AbsoluteY)
	def(0x01, "ORA", 2, 6, IndirectX)
	def(0x11, "ORA", 2, 5, IndirectY)

	def(0x49, "EOR", 2, 2, Immediate)
	def(0x45, "EOR", 2, 3, ZeroPage)
	def(0x55, "EOR", 2, 4, ZeroPageX)
	def(0x4D, "EOR", 3, 4, Absolute)
	def(0x5D, "EOR", 3, 4, AbsoluteX)
	def(0x59, "EOR", 3, 4, AbsoluteY)
	def(0x41, "EOR", 2, 6, IndirectX)
	def(0x51, "EOR", 2, 5, IndirectY)

	def(0x24, "BIT", 2, 3, ZeroPage)
	def(0x2C, "BIT", 3, 4, Absolute)

	def(0x0A, "ASL", 1, 2, Accumulator)
	def(0x06, "ASL", 2, 5, ZeroPage)
	def(0x16, "ASL", 2, 6, ZeroPageX)
	def(0x0E, "ASL", 3, 6, Absolute)
	def(0x1E, "ASL", 3, 7, AbsoluteX)

	def(0x4A, "LSR", 1, 2, Accumulator)
	def(0x46, "LSR", 2, 5, ZeroPage)
	def(0x56, "LSR", 2, 6, ZeroPageX)
	def(0x4E, "LSR", 3, 6, Absolute)
	def(0x5E, "LSR", 3, 7, AbsoluteX)

	def(0x2A, "ROL", 1, 2, Accumulator)
	def(0x26, "ROL", 2, 5, ZeroPage)
	def(0x36, "ROL", 2, 6, ZeroPageX)
	def(0x2E, "ROL", 3, 6, Absolute)
	def(0x3E, "ROL", 3, 7, AbsoluteX)

	def(0x6A, "ROR", 1, 2, Accumulator)
	def(0x66, "ROR", 2, 5, ZeroPage)
	def(0x76, "ROR", 2, 6, ZeroPageX)
	def(0x6E, "ROR", 3, 6, Absolute)
	def(0x7E, "ROR", 3, 7, AbsoluteX)

	def(0x90, "BCC", 2, 2, Relative)
	def(0xB0, "BCS", 2, 2, Relative)
	def(0xF0, "BEQ", 2, 2, Relative)
	def(0xD0, "BNE", 2, 2, Relative)
	def(0x30, "BMI", 2, 2, Relative)
	def(0x10, "BPL", 2, 2, Relative)
	def(0x50, "BVC", 2, 2, Relative)
	def(0x70, "BVS", 2, 2, Relative)

	def(0x4C, "JMP", 3, 3, Absolute)
	def(0x6C, "JMP", 3, 5, Indirect)
	def(0x20, "JSR", 3, 6, Absolute)
	def(0x60, "RTS", 1, 6, Implied)
	def(0x40, "RTI", 1, 6, Implied)

	def(0x00, "BRK", 1, 7, Implied)
	def(0xEA, "NOP", 1, 2, Implied)
}
