package cpu

// Addressing-mode resolution. Given the current PC (pointing at the
// first operand byte after the opcode), each addrXXX method returns
// the effective 16-bit address an instruction should read from or
// write to. None of these advance PC; the Step loop in cpu.go advances
// PC past the operand once dispatch returns, using the opcode's
// tabulated length.

// addrImmediate returns PC itself: the operand is the byte at PC.
func (p *Chip) addrImmediate() uint16 {
	return p.PC
}

// addrZeroPage returns the zero-extended byte at PC.
func (p *Chip) addrZeroPage() uint16 {
	return uint16(p.ram.Read(p.PC))
}

// addrZeroPageX returns (byte at PC + X), wrapped to 8 bits before
// zero-extension. The wrap is mandatory: this never crosses into page 1.
func (p *Chip) addrZeroPageX() uint16 {
	return uint16(p.ram.Read(p.PC) + p.X)
}

// addrZeroPageY is addrZeroPageX with Y.
func (p *Chip) addrZeroPageY() uint16 {
	return uint16(p.ram.Read(p.PC) + p.Y)
}

// addrAbsolute returns the 16-bit little-endian value at PC.
func (p *Chip) addrAbsolute() uint16 {
	return p.ram.Read16(p.PC)
}

// addrAbsoluteX returns (16-bit value at PC) + X, wrapping within 16 bits.
func (p *Chip) addrAbsoluteX() uint16 {
	return p.ram.Read16(p.PC) + uint16(p.X)
}

// addrAbsoluteY is addrAbsoluteX with Y.
func (p *Chip) addrAbsoluteY() uint16 {
	return p.ram.Read16(p.PC) + uint16(p.Y)
}

// addrIndirectX implements indexed indirect ((d,x)): p = (byte at
// PC + X) wrapped to 8 bits; the pointer itself is fetched entirely
// from zero page, low byte at p, high byte at p+1 wrapped to 8 bits.
func (p *Chip) addrIndirectX() uint16 {
	ptr := p.ram.Read(p.PC) + p.X
	lo := uint16(p.ram.Read(uint16(ptr)))
	hi := uint16(p.ram.Read(uint16(ptr + 1)))
	return hi<<8 | lo
}

// addrIndirectY implements indirect indexed ((d),y): p = byte at PC;
// the pointer is fetched from zero page (high byte at p+1 wrapped to 8
// bits), then Y is added to the result with 16-bit wrap.
func (p *Chip) addrIndirectY() uint16 {
	ptr := p.ram.Read(p.PC)
	lo := uint16(p.ram.Read(uint16(ptr)))
	hi := uint16(p.ram.Read(uint16(ptr + 1)))
	return (hi<<8 | lo) + uint16(p.Y)
}

// addr resolves the effective address for the given addressing mode.
// Implied/Accumulator modes have no effective address; requesting one
// is a bug in the dispatch table, not a condition of the emulated
// program, and is reported as InvalidCPUState.
func (p *Chip) addr(mode addrMode) (uint16, error) {
	switch mode {
	case modeImmediate:
		return p.addrImmediate(), nil
	case modeZeroPage:
		return p.addrZeroPage(), nil
	case modeZeroPageX:
		return p.addrZeroPageX(), nil
	case modeZeroPageY:
		return p.addrZeroPageY(), nil
	case modeAbsolute:
		return p.addrAbsolute(), nil
	case modeAbsoluteX:
		return p.addrAbsoluteX(), nil
	case modeAbsoluteY:
		return p.addrAbsoluteY(), nil
	case modeIndirectX:
		return p.addrIndirectX(), nil
	case modeIndirectY:
		return p.addrIndirectY(), nil
	}
	return 0, InvalidCPUState{Reason: "requested effective address for an implied/accumulator-only instruction"}
}

// addrMode is a local addressing-mode tag used only to pick which
// addrXXX resolver to call; the opcodes package's Mode serves the same
// role for disassembly/tracing metadata.
type addrMode int

const (
	modeImmediate addrMode = iota
	modeZeroPage
	modeZeroPageX
	modeZeroPageY
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeIndirectX
	modeIndirectY
)
