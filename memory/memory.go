// Package memory defines the flat 16-bit-addressed byte store the cpu
// package consumes. A concrete implementation may back this with plain
// RAM (as Ram does here) or route reads/writes to other devices, but
// the core only ever calls Read/Write/Read16/Write16 against a Bank.
package memory

// Bank is the memory interface the cpu package depends on. Reads and
// writes never fail: any 16-bit address is valid, and addr+1 wrapping
// from 0xFFFF to 0x0000 while fetching a 16-bit value is expected
// behavior, not an error.
type Bank interface {
	// Read returns the byte stored at addr.
	Read(addr uint16) uint8
	// Write stores val at addr.
	Write(addr uint16, val uint8)
	// Read16 returns the little-endian 16-bit value at addr: low byte
	// at addr, high byte at addr+1. No page-boundary special casing;
	// callers that need the indirect-JMP hardware bug implement it
	// themselves against Read.
	Read16(addr uint16) uint16
	// Write16 stores val as little-endian at addr: low byte at addr,
	// high byte at addr+1.
	Write16(addr uint16, val uint16)
	// PowerOn (re)initializes the bank's backing storage.
	PowerOn()
}

// Ram is a flat, fully addressable 64k byte array. It is the only Bank
// implementation the core needs; a full console build would replace it
// with a bus that routes reads/writes to PPU/APU/cartridge, but the
// core itself never depends on anything beyond this interface.
//
// Ram is fixed at the full 64k address space with no parent chain:
// this core has exactly one memory-mapped device, itself, so there is
// nothing to chain to.
type Ram struct {
	mem [1 << 16]uint8
}

// NewRam returns a zeroed, ready-to-use 64k RAM bank.
func NewRam() *Ram {
	r := &Ram{}
	r.PowerOn()
	return r
}

// Read implements Bank.
func (r *Ram) Read(addr uint16) uint8 {
	return r.mem[addr]
}

// Write implements Bank.
func (r *Ram) Write(addr uint16, val uint8) {
	r.mem[addr] = val
}

// Read16 implements Bank.
func (r *Ram) Read16(addr uint16) uint16 {
	lo := uint16(r.Read(addr))
	hi := uint16(r.Read(addr + 1))
	return hi<<8 | lo
}

// Write16 implements Bank.
func (r *Ram) Write16(addr uint16, val uint16) {
	r.Write(addr, uint8(val&0xFF))
	r.Write(addr+1, uint8(val>>8))
}

// PowerOn implements Bank and zeros the backing array, matching what a
// freshly allocated Ram already contains; cpu.Chip's Reset and Load
// build on that zeroed state.
func (r *Ram) PowerOn() {
	for i := range r.mem {
		r.mem[i] = 0
	}
}
