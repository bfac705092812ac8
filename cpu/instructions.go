package cpu

// Instruction handlers. Each is installed in the dispatch table below,
// keyed by opcode byte, so that decode is a flat array lookup (the
// "function-pointer table keyed by opcode" structure the design notes
// call out as an acceptable alternative to a single giant switch). A
// handler does not advance PC past its operand; Step does that using
// the opcode table's tabulated length once a handler's dispatch
// mutation of PC (branches, jumps, calls, returns) is accounted for.

type handlerFunc func(*Chip) error

var dispatch [256]handlerFunc

func install(code uint8, fn handlerFunc) {
	dispatch[code] = fn
}

func init() {
	install(0xA9, loader(modeImmediate, regA))
	install(0xA5, loader(modeZeroPage, regA))
	install(0xB5, loader(modeZeroPageX, regA))
	install(0xAD, loader(modeAbsolute, regA))
	install(0xBD, loader(modeAbsoluteX, regA))
	install(0xB9, loader(modeAbsoluteY, regA))
	install(0xA1, loader(modeIndirectX, regA))
	install(0xB1, loader(modeIndirectY, regA))

	install(0xA2, loader(modeImmediate, regX))
	install(0xA6, loader(modeZeroPage, regX))
	install(0xB6, loader(modeZeroPageY, regX))
	install(0xAE, loader(modeAbsolute, regX))
	install(0xBE, loader(modeAbsoluteY, regX))

	install(0xA0, loader(modeImmediate, regY))
	install(0xA4, loader(modeZeroPage, regY))
	install(0xB4, loader(modeZeroPageX, regY))
	install(0xAC, loader(modeAbsolute, regY))
	install(0xBC, loader(modeAbsoluteX, regY))

	install(0x85, storer(modeZeroPage, regA))
	install(0x95, storer(modeZeroPageX, regA))
	install(0x8D, storer(modeAbsolute, regA))
	install(0x9D, storer(modeAbsoluteX, regA))
	install(0x99, storer(modeAbsoluteY, regA))
	install(0x81, storer(modeIndirectX, regA))
	install(0x91, storer(modeIndirectY, regA))

	install(0x86, storer(modeZeroPage, regX))
	install(0x96, storer(modeZeroPageY, regX))
	install(0x8E, storer(modeAbsolute, regX))

	install(0x84, storer(modeZeroPage, regY))
	install(0x94, storer(modeZeroPageX, regY))
	install(0x8C, storer(modeAbsolute, regY))

	install(0xAA, func(p *Chip) error { return p.transfer(p.A, &p.X) })
	install(0xA8, func(p *Chip) error { return p.transfer(p.A, &p.Y) })
	install(0xBA, func(p *Chip) error { return p.transfer(p.S, &p.X) })
	install(0x8A, func(p *Chip) error { return p.transfer(p.X, &p.A) })
	install(0x98, func(p *Chip) error { return p.transfer(p.Y, &p.A) })
	install(0x9A, func(p *Chip) error { p.S = p.X; return nil }) // TXS: no flags

	install(0xE8, func(p *Chip) error { return p.incDecReg(&p.X, 1) })
	install(0xC8, func(p *Chip) error { return p.incDecReg(&p.Y, 1) })
	install(0xCA, func(p *Chip) error { return p.incDecReg(&p.X, 0xFF) })
	install(0x88, func(p *Chip) error { return p.incDecReg(&p.Y, 0xFF) })

	install(0xE6, incDecMem(modeZeroPage, 1))
	install(0xF6, incDecMem(modeZeroPageX, 1))
	install(0xEE, incDecMem(modeAbsolute, 1))
	install(0xFE, incDecMem(modeAbsoluteX, 1))

	install(0xC6, incDecMem(modeZeroPage, 0xFF))
	install(0xD6, incDecMem(modeZeroPageX, 0xFF))
	install(0xCE, incDecMem(modeAbsolute, 0xFF))
	install(0xDE, incDecMem(modeAbsoluteX, 0xFF))

	install(0x48, func(p *Chip) error { p.pushStack(p.A); return nil })
	install(0x68, func(p *Chip) error { p.A = p.popStack(); p.zeroNegativeCheck(p.A); return nil })
	install(0x08, iPHP)
	install(0x28, iPLP)

	install(0x38, func(p *Chip) error { p.setFlag(P_CARRY, true); return nil })
	install(0x18, func(p *Chip) error { p.setFlag(P_CARRY, false); return nil })
	install(0x78, func(p *Chip) error { p.setFlag(P_INTERRUPT, true); return nil })
	install(0x58, func(p *Chip) error { p.setFlag(P_INTERRUPT, false); return nil })
	install(0xF8, func(p *Chip) error { p.setFlag(P_DECIMAL, true); return nil })
	install(0xD8, func(p *Chip) error { p.setFlag(P_DECIMAL, false); return nil })
	install(0xB8, func(p *Chip) error { p.setFlag(P_OVERFLOW, false); return nil })

	install(0x69, adc(modeImmediate))
	install(0x65, adc(modeZeroPage))
	install(0x75, adc(modeZeroPageX))
	install(0x6D, adc(modeAbsolute))
	install(0x7D, adc(modeAbsoluteX))
	install(0x79, adc(modeAbsoluteY))
	install(0x61, adc(modeIndirectX))
	install(0x71, adc(modeIndirectY))

	install(0xE9, sbc(modeImmediate))
	install(0xE5, sbc(modeZeroPage))
	install(0xF5, sbc(modeZeroPageX))
	install(0xED, sbc(modeAbsolute))
	install(0xFD, sbc(modeAbsoluteX))
	install(0xF9, sbc(modeAbsoluteY))
	install(0xE1, sbc(modeIndirectX))
	install(0xF1, sbc(modeIndirectY))

	install(0xC9, compare(modeImmediate, regA))
	install(0xC5, compare(modeZeroPage, regA))
	install(0xD5, compare(modeZeroPageX, regA))
	install(0xCD, compare(modeAbsolute, regA))
	install(0xDD, compare(modeAbsoluteX, regA))
	install(0xD9, compare(modeAbsoluteY, regA))
	install(0xC1, compare(modeIndirectX, regA))
	install(0xD1, compare(modeIndirectY, regA))

	install(0xE0, compare(modeImmediate, regX))
	install(0xE4, compare(modeZeroPage, regX))
	install(0xEC, compare(modeAbsolute, regX))

	install(0xC0, compare(modeImmediate, regY))
	install(0xC4, compare(modeZeroPage, regY))
	install(0xCC, compare(modeAbsolute, regY))

	install(0x29, logical(modeImmediate, func(a, m uint8) uint8 { return a & m }))
	install(0x25, logical(modeZeroPage, func(a, m uint8) uint8 { return a & m }))
	install(0x35, logical(modeZeroPageX, func(a, m uint8) uint8 { return a & m }))
	install(0x2D, logical(modeAbsolute, func(a, m uint8) uint8 { return a & m }))
	install(0x3D, logical(modeAbsoluteX, func(a, m uint8) uint8 { return a & m }))
	install(0x39, logical(modeAbsoluteY, func(a, m uint8) uint8 { return a & m }))
	install(0x21, logical(modeIndirectX, func(a, m uint8) uint8 { return a & m }))
	install(0x31, logical(modeIndirectY, func(a, m uint8) uint8 { return a & m }))

	install(0x09, logical(modeImmediate, func(a, m uint8) uint8 { return a | m }))
	install(0x05, logical(modeZeroPage, func(a, m uint8) uint8 { return a | m }))
	install(0x15, logical(modeZeroPageX, func(a, m uint8) uint8 { return a | m }))
	install(0x0D, logical(modeAbsolute, func(a, m uint8) uint8 { return a | m }))
	install(0x1D, logical(modeAbsoluteX, func(a, m uint8) uint8 { return a | m }))
	install(0x19, logical(modeAbsoluteY, func(a, m uint8) uint8 { return a | m }))
	install(0x01, logical(modeIndirectX, func(a, m uint8) uint8 { return a | m }))
	install(0x11, logical(modeIndirectY, func(a, m uint8) uint8 { return a | m }))

	install(0x49, logical(modeImmediate, func(a, m uint8) uint8 { return a ^ m }))
	install(0x45, logical(modeZeroPage, func(a, m uint8) uint8 { return a ^ m }))
	install(0x55, logical(modeZeroPageX, func(a, m uint8) uint8 { return a ^ m }))
	install(0x4D, logical(modeAbsolute, func(a, m uint8) uint8 { return a ^ m }))
	install(0x5D, logical(modeAbsoluteX, func(a, m uint8) uint8 { return a ^ m }))
	install(0x59, logical(modeAbsoluteY, func(a, m uint8) uint8 { return a ^ m }))
	install(0x41, logical(modeIndirectX, func(a, m uint8) uint8 { return a ^ m }))
	install(0x51, logical(modeIndirectY, func(a, m uint8) uint8 { return a ^ m }))

	install(0x24, bit(modeZeroPage))
	install(0x2C, bit(modeAbsolute))

	install(0x0A, shiftAcc(shiftASL))
	install(0x06, shiftMem(modeZeroPage, shiftASL))
	install(0x16, shiftMem(modeZeroPageX, shiftASL))
	install(0x0E, shiftMem(modeAbsolute, shiftASL))
	install(0x1E, shiftMem(modeAbsoluteX, shiftASL))

	install(0x4A, shiftAcc(shiftLSR))
	install(0x46, shiftMem(modeZeroPage, shiftLSR))
	install(0x56, shiftMem(modeZeroPageX, shiftLSR))
	install(0x4E, shiftMem(modeAbsolute, shiftLSR))
	install(0x5E, shiftMem(modeAbsoluteX, shiftLSR))

	install(0x2A, shiftAcc(shiftROL))
	install(0x26, shiftMem(modeZeroPage, shiftROL))
	install(0x36, shiftMem(modeZeroPageX, shiftROL))
	install(0x2E, shiftMem(modeAbsolute, shiftROL))
	install(0x3E, shiftMem(modeAbsoluteX, shiftROL))

	install(0x6A, shiftAcc(shiftROR))
	install(0x66, shiftMem(modeZeroPage, shiftROR))
	install(0x76, shiftMem(modeZeroPageX, shiftROR))
	install(0x6E, shiftMem(modeAbsolute, shiftROR))
	install(0x7E, shiftMem(modeAbsoluteX, shiftROR))

	install(0x90, branch(func(p *Chip) bool { return !p.flag(P_CARRY) }))
	install(0xB0, branch(func(p *Chip) bool { return p.flag(P_CARRY) }))
	install(0xF0, branch(func(p *Chip) bool { return p.flag(P_ZERO) }))
	install(0xD0, branch(func(p *Chip) bool { return !p.flag(P_ZERO) }))
	install(0x30, branch(func(p *Chip) bool { return p.flag(P_NEGATIVE) }))
	install(0x10, branch(func(p *Chip) bool { return !p.flag(P_NEGATIVE) })) // BPL: branch if N clear
	install(0x50, branch(func(p *Chip) bool { return !p.flag(P_OVERFLOW) }))
	install(0x70, branch(func(p *Chip) bool { return p.flag(P_OVERFLOW) }))

	install(0x4C, iJMP)
	install(0x6C, iJMPIndirect)
	install(0x20, iJSR)
	install(0x60, iRTS)
	install(0x40, iRTI)

	install(0x00, func(p *Chip) error { return nil }) // BRK: Step() terminates Run() on this opcode.
	install(0xEA, func(p *Chip) error { return nil }) // NOP: genuinely does nothing.
}

// register selectors passed to loader/storer/compare so one generic
// helper serves LDA/LDX/LDY, STA/STX/STY, and CMP/CPX/CPY.
type reg int

const (
	regA reg = iota
	regX
	regY
)

func (p *Chip) regPtr(r reg) *uint8 {
	switch r {
	case regX:
		return &p.X
	case regY:
		return &p.Y
	default:
		return &p.A
	}
}

func loader(mode addrMode, r reg) handlerFunc {
	return func(p *Chip) error {
		addr, err := p.addr(mode)
		if err != nil {
			return err
		}
		dst := p.regPtr(r)
		*dst = p.ram.Read(addr)
		p.zeroNegativeCheck(*dst)
		return nil
	}
}

func storer(mode addrMode, r reg) handlerFunc {
	return func(p *Chip) error {
		addr, err := p.addr(mode)
		if err != nil {
			return err
		}
		p.ram.Write(addr, *p.regPtr(r))
		return nil
	}
}

// transfer copies src into *dst and sets Z/N from the new dst value.
func (p *Chip) transfer(src uint8, dst *uint8) error {
	*dst = src
	p.zeroNegativeCheck(*dst)
	return nil
}

// incDecReg adds delta (1 or 0xFF, i.e. -1) to *r with 8-bit wrap and
// sets Z/N from the result.
func (p *Chip) incDecReg(r *uint8, delta uint8) error {
	*r += delta
	p.zeroNegativeCheck(*r)
	return nil
}

// incDecMem implements INC/DEC: the result byte written back to memory
// also sets Z/N, taken from the post-modification value.
func incDecMem(mode addrMode, delta uint8) handlerFunc {
	return func(p *Chip) error {
		addr, err := p.addr(mode)
		if err != nil {
			return err
		}
		result := p.ram.Read(addr) + delta
		p.ram.Write(addr, result)
		p.zeroNegativeCheck(result)
		return nil
	}
}

// iPHP pushes P with BREAK and the unused bit both forced on in the
// pushed copy; the live P is never modified.
func iPHP(p *Chip) error {
	p.pushStack(p.P | P_BREAK | P_S1)
	return nil
}

// iPLP restores P from the stack, then forces BREAK off and the unused
// bit on: the live P never shows BREAK set.
func iPLP(p *Chip) error {
	p.P = p.popStack()
	p.P &^= P_BREAK
	p.P |= P_S1
	return nil
}

// adc implements ADC: sum = A + M + C; C = carry out of bit 7;
// V = signed overflow; A = sum; Z/N from A.
func adc(mode addrMode) handlerFunc {
	return func(p *Chip) error {
		addr, err := p.addr(mode)
		if err != nil {
			return err
		}
		return p.addToA(p.ram.Read(addr))
	}
}

// sbc implements SBC as ADC with the operand's ones' complement, which
// reproduces both the carry-as-inverse-borrow and overflow rules
// without a separate code path.
func sbc(mode addrMode) handlerFunc {
	return func(p *Chip) error {
		addr, err := p.addr(mode)
		if err != nil {
			return err
		}
		return p.addToA(^p.ram.Read(addr))
	}
}

func (p *Chip) addToA(m uint8) error {
	carry := p.P & P_CARRY
	sum := uint16(p.A) + uint16(m) + uint16(carry)
	result := uint8(sum)
	p.overflowCheck(p.A, m, result)
	p.carryCheck(sum)
	p.A = result
	p.zeroNegativeCheck(p.A)
	return nil
}

// compare implements CMP/CPX/CPY: C = (reg >= M); Z/N from reg - M.
// The register itself is never modified.
func compare(mode addrMode, r reg) handlerFunc {
	return func(p *Chip) error {
		addr, err := p.addr(mode)
		if err != nil {
			return err
		}
		m := p.ram.Read(addr)
		v := *p.regPtr(r)
		p.setFlag(P_CARRY, v >= m)
		p.zeroNegativeCheck(v - m)
		return nil
	}
}

// logical implements AND/ORA/EOR: A = op(A, M); Z/N from A.
func logical(mode addrMode, op func(a, m uint8) uint8) handlerFunc {
	return func(p *Chip) error {
		addr, err := p.addr(mode)
		if err != nil {
			return err
		}
		p.A = op(p.A, p.ram.Read(addr))
		p.zeroNegativeCheck(p.A)
		return nil
	}
}

// bit implements BIT: Z from A&M, N/V copied directly from bits 7/6 of
// M. A is never modified.
func bit(mode addrMode) handlerFunc {
	return func(p *Chip) error {
		addr, err := p.addr(mode)
		if err != nil {
			return err
		}
		m := p.ram.Read(addr)
		p.zeroCheck(p.A & m)
		p.setFlag(P_NEGATIVE, m&0x80 != 0)
		p.setFlag(P_OVERFLOW, m&0x40 != 0)
		return nil
	}
}

type shiftOp func(p *Chip, in uint8) uint8

// shiftASL: C = bit 7 of input; result = input << 1.
func shiftASL(p *Chip, in uint8) uint8 {
	p.setFlag(P_CARRY, in&0x80 != 0)
	return in << 1
}

// shiftLSR: C = bit 0 of input; result = input >> 1. Carry comes from
// bit 0 for both the accumulator and memory forms of LSR.
func shiftLSR(p *Chip, in uint8) uint8 {
	p.setFlag(P_CARRY, in&0x01 != 0)
	return in >> 1
}

// shiftROL: C' = bit 7 of input; result = (input << 1) | old C.
func shiftROL(p *Chip, in uint8) uint8 {
	oldCarry := p.flag(P_CARRY)
	p.setFlag(P_CARRY, in&0x80 != 0)
	result := in << 1
	if oldCarry {
		result |= 0x01
	}
	return result
}

// shiftROR: C' = bit 0 of input; result = (input >> 1) | (old C << 7).
func shiftROR(p *Chip, in uint8) uint8 {
	oldCarry := p.flag(P_CARRY)
	p.setFlag(P_CARRY, in&0x01 != 0)
	result := in >> 1
	if oldCarry {
		result |= 0x80
	}
	return result
}

func shiftAcc(op shiftOp) handlerFunc {
	return func(p *Chip) error {
		p.A = op(p, p.A)
		p.zeroNegativeCheck(p.A)
		return nil
	}
}

func shiftMem(mode addrMode, op shiftOp) handlerFunc {
	return func(p *Chip) error {
		addr, err := p.addr(mode)
		if err != nil {
			return err
		}
		result := op(p, p.ram.Read(addr))
		p.ram.Write(addr, result)
		p.zeroNegativeCheck(result)
		return nil
	}
}

// branch reads a signed 8-bit offset at PC and, if cond holds, sets
// PC to (PC+1) + the sign-extended offset (16-bit wrap). If cond does
// not hold, PC is left for Step to advance past the operand normally.
func branch(cond func(*Chip) bool) handlerFunc {
	return func(p *Chip) error {
		offset := int8(p.ram.Read(p.PC))
		if cond(p) {
			p.PC = p.PC + 1 + uint16(offset)
		}
		return nil
	}
}

// iJMP implements JMP absolute: PC <- 16-bit operand.
func iJMP(p *Chip) error {
	p.PC = p.ram.Read16(p.PC)
	return nil
}

// iJMPIndirect implements JMP indirect, reproducing the documented
// page-boundary hardware bug: if the pointer's low byte is 0xFF, the
// high byte is fetched from the start of the same page instead of the
// next one.
func iJMPIndirect(p *Chip) error {
	ptr := p.ram.Read16(p.PC)
	if ptr&0x00FF == 0x00FF {
		lo := uint16(p.ram.Read(ptr))
		hi := uint16(p.ram.Read(ptr & 0xFF00))
		p.PC = hi<<8 | lo
		return nil
	}
	p.PC = p.ram.Read16(ptr)
	return nil
}

// iJSR pushes the address of the last operand byte (PC+1, since PC
// still points at the operand's first byte), then jumps to the
// 16-bit operand.
func iJSR(p *Chip) error {
	p.pushStack16(p.PC + 1)
	p.PC = p.ram.Read16(p.PC)
	return nil
}

// iRTS pops a 16-bit address and sets PC to it plus one, undoing the
// off-by-one JSR pushed.
func iRTS(p *Chip) error {
	p.PC = p.popStack16() + 1
	return nil
}

// iRTI pops P (forcing BREAK off, the unused bit on) then pops PC
// directly, with no +1 (unlike RTS, there is no pushed-minus-one
// convention for an interrupt return address).
func iRTI(p *Chip) error {
	p.P = p.popStack()
	p.P &^= P_BREAK
	p.P |= P_S1
	p.PC = p.popStack16()
	return nil
}
