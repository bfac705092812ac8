package cpu

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"

	"github.com/akashigamedev/mos6502/memory"
)

// newCPU returns a freshly reset Chip backed by a zeroed 64k RAM.
func newCPU(t *testing.T) (*Chip, memory.Bank) {
	t.Helper()
	ram := memory.NewRam()
	c := Init(ram)
	c.Reset()
	return c, ram
}

func TestReset(t *testing.T) {
	ram := memory.NewRam()
	ram.Write16(ResetVector, 0xC000)
	c := Init(ram)
	c.A, c.X, c.Y, c.S, c.P = 0x11, 0x22, 0x33, 0x44, 0x55
	c.Reset()
	if got, want := c.A, uint8(0); got != want {
		t.Errorf("A after reset = %.2X, want %.2X", got, want)
	}
	if got, want := c.X, uint8(0); got != want {
		t.Errorf("X after reset = %.2X, want %.2X", got, want)
	}
	if got, want := c.Y, uint8(0); got != want {
		t.Errorf("Y after reset = %.2X, want %.2X", got, want)
	}
	if got, want := c.S, StackReset; got != want {
		t.Errorf("S after reset = %.2X, want %.2X", got, want)
	}
	if got, want := c.P, P_INTERRUPT|P_S1; got != want {
		t.Errorf("P after reset = %.8b, want %.8b", got, want)
	}
	if got, want := c.PC, uint16(0xC000); got != want {
		t.Errorf("PC after reset = %.4X, want %.4X", got, want)
	}
}

// TestEndToEndScenarios runs a handful of small, hand-assembled
// programs end to end and checks the resulting register file.
func TestEndToEndScenarios(t *testing.T) {
	tests := []struct {
		name    string
		presetX uint8
		program []uint8
		check   func(t *testing.T, c *Chip, ram memory.Bank)
	}{
		{
			name:    "LDA immediate",
			program: []uint8{0xA9, 0x05, 0x00},
			check: func(t *testing.T, c *Chip, ram memory.Bank) {
				if c.A != 0x05 {
					t.Errorf("A = %.2X, want 0x05", c.A)
				}
				if c.flag(P_ZERO) || c.flag(P_NEGATIVE) {
					t.Errorf("Z/N wrong: P = %.8b", c.P)
				}
			},
		},
		{
			name:    "LDA then TAX",
			program: []uint8{0xA9, 0x0A, 0xAA, 0x00},
			check: func(t *testing.T, c *Chip, ram memory.Bank) {
				if c.X != 10 || c.A != 10 {
					t.Errorf("X=%d A=%d, want both 10", c.X, c.A)
				}
			},
		},
		{
			name:    "LDA TAX INX no wrap",
			program: []uint8{0xA9, 0xC0, 0xAA, 0xE8, 0x00},
			check: func(t *testing.T, c *Chip, ram memory.Bank) {
				if c.A != 0xC0 || c.X != 0xC1 {
					t.Errorf("A=%.2X X=%.2X, want A=C0 X=C1", c.A, c.X)
				}
			},
		},
		{
			name:    "INX wraps 0xFF to 0x01",
			presetX: 0xFF,
			program: []uint8{0xA9, 0xFF, 0xAA, 0xE8, 0xE8, 0x00},
			check: func(t *testing.T, c *Chip, ram memory.Bank) {
				if c.X != 1 {
					t.Errorf("X = %.2X, want 0x01", c.X)
				}
			},
		},
		{
			name:    "LDX immediate",
			program: []uint8{0xA2, 0x05, 0x00},
			check: func(t *testing.T, c *Chip, ram memory.Bank) {
				if c.X != 0x05 {
					t.Errorf("X = %.2X, want 0x05", c.X)
				}
			},
		},
		{
			name:    "STA zero page",
			program: []uint8{0xA9, 0x05, 0x85, 0x00, 0x00},
			check: func(t *testing.T, c *Chip, ram memory.Bank) {
				if got := ram.Read(0x00); got != 0x05 {
					t.Errorf("mem[0] = %.2X, want 0x05", got)
				}
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, ram := newCPU(t)
			c.X = tc.presetX
			if err := c.LoadAndRun(tc.program); err != nil {
				t.Fatalf("LoadAndRun: %v\nstate: %s", err, spew.Sdump(c))
			}
			tc.check(t, c, ram)
		})
	}
}

func TestUnknownOpcode(t *testing.T) {
	c, _ := newCPU(t)
	err := c.LoadAndRun([]uint8{0x02}) // not a documented opcode
	if err == nil {
		t.Fatal("expected an error for an undocumented opcode, got nil")
	}
	if _, ok := err.(UnknownOpcode); !ok {
		t.Fatalf("error type = %T, want UnknownOpcode", err)
	}
}

func TestADCFlags(t *testing.T) {
	tests := []struct {
		name         string
		a, m, carry  uint8
		wantA        uint8
		wantC, wantV bool
	}{
		{"no carry no overflow", 0x10, 0x20, 0, 0x30, false, false},
		{"unsigned carry out", 0xFF, 0x01, 0, 0x00, true, false},
		{"signed overflow positive", 0x7F, 0x01, 0, 0x80, false, true},
		{"signed overflow negative", 0x80, 0xFF, 0, 0x7F, true, true},
		{"carry in propagates", 0x01, 0x01, 1, 0x03, false, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, ram := newCPU(t)
			c.A = tc.a
			c.setFlag(P_CARRY, tc.carry != 0)
			ram.Write(0x10, tc.m)
			c.Load([]uint8{0x65, 0x10, 0x00}) // ADC $10
			c.PC = LoadAddr
			if err := c.Run(); err != nil {
				t.Fatalf("Run: %v", err)
			}
			if c.A != tc.wantA {
				t.Errorf("A = %.2X, want %.2X", c.A, tc.wantA)
			}
			if c.flag(P_CARRY) != tc.wantC {
				t.Errorf("C = %t, want %t", c.flag(P_CARRY), tc.wantC)
			}
			if c.flag(P_OVERFLOW) != tc.wantV {
				t.Errorf("V = %t, want %t", c.flag(P_OVERFLOW), tc.wantV)
			}
		})
	}
}

func TestSBCIsADCWithComplement(t *testing.T) {
	c, ram := newCPU(t)
	c.A = 0x10
	c.setFlag(P_CARRY, true) // no borrow
	ram.Write(0x10, 0x05)
	c.Load([]uint8{0xE5, 0x10, 0x00}) // SBC $10
	c.PC = LoadAddr
	if err := c.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if c.A != 0x0B {
		t.Errorf("A = %.2X, want 0x0B", c.A)
	}
	if !c.flag(P_CARRY) {
		t.Error("C should be set (no borrow occurred)")
	}
}

func TestCompareFlags(t *testing.T) {
	c, ram := newCPU(t)
	c.A = 0x10
	ram.Write(0x10, 0x10)
	c.Load([]uint8{0xC5, 0x10, 0x00}) // CMP $10
	c.PC = LoadAddr
	if err := c.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !c.flag(P_CARRY) {
		t.Error("C should be set: A >= M")
	}
	if !c.flag(P_ZERO) {
		t.Error("Z should be set: A == M")
	}
	if c.A != 0x10 {
		t.Error("CMP must not modify A")
	}
}

// TestPHAPLARoundTrip checks that PHA followed by PLA restores A and
// leaves the stack pointer exactly where it started.
func TestPHAPLARoundTrip(t *testing.T) {
	c, _ := newCPU(t)
	c.A = 0x42
	startS := c.S
	c.Load([]uint8{0x48, 0xA9, 0x00, 0x68, 0x00}) // PHA; LDA #0; PLA
	c.PC = LoadAddr
	if err := c.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if c.A != 0x42 {
		t.Errorf("A after PLA = %.2X, want 0x42", c.A)
	}
	if c.S != startS {
		t.Errorf("S after round trip = %.2X, want %.2X", c.S, startS)
	}
}

// TestPHPPLPRoundTrip checks that PHP followed by PLP restores P
// except for BREAK (forced off) and the unused bit (forced on).
func TestPHPPLPRoundTrip(t *testing.T) {
	c, _ := newCPU(t)
	c.P = P_CARRY | P_ZERO | P_OVERFLOW
	startS := c.S
	c.Load([]uint8{0x08, 0x18, 0x28, 0x00}) // PHP; CLC; PLP
	c.PC = LoadAddr
	if err := c.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := P_CARRY | P_ZERO | P_OVERFLOW | P_S1
	if c.P != want {
		t.Errorf("P after PLP = %.8b, want %.8b", c.P, want)
	}
	if c.flag(P_BREAK) {
		t.Error("BREAK must never be observable as set in live P")
	}
	if c.S != startS {
		t.Errorf("S after round trip = %.2X, want %.2X", c.S, startS)
	}
}

// TestROLRORRoundTrip checks that N ROLs followed by N RORs, with no
// intervening carry change, restores both the operand and C.
func TestROLRORRoundTrip(t *testing.T) {
	c, ram := newCPU(t)
	ram.Write(0x10, 0x96)
	c.setFlag(P_CARRY, true)
	startC := c.flag(P_CARRY)
	c.Load([]uint8{
		0x26, 0x10, 0x26, 0x10, 0x26, 0x10, // ROL $10 x3
		0x66, 0x10, 0x66, 0x10, 0x66, 0x10, // ROR $10 x3
		0x00,
	})
	c.PC = LoadAddr
	if err := c.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := ram.Read(0x10); got != 0x96 {
		t.Errorf("mem[0x10] = %.2X, want 0x96", got)
	}
	if c.flag(P_CARRY) != startC {
		t.Error("C not restored by matching ROL/ROR sequence")
	}
}

// TestJSRRTSRoundTrip exercises the documented push-PC-minus-one
// convention end to end.
func TestJSRRTSRoundTrip(t *testing.T) {
	c, _ := newCPU(t)
	// 8000: JSR 8010 ; 8003: LDX #1 ; 8005: BRK
	c.Load([]uint8{
		0x20, 0x10, 0x80, // JSR $8010
		0xA2, 0x01, // LDX #1 (should execute after return)
		0x00, // BRK
	})
	// place the subroutine well clear of the main program
	ram := c.Mem()
	ram.Write(0x8010, 0xA2)
	ram.Write(0x8011, 0x02) // LDX #2
	ram.Write(0x8012, 0x60) // RTS
	c.PC = LoadAddr
	if err := c.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if c.X != 1 {
		t.Errorf("X = %.2X, want 0x01 (return then fall through to LDX #1)", c.X)
	}
}

func TestJMPIndirectPageBoundaryBug(t *testing.T) {
	c, ram := newCPU(t)
	ram.Write(0x30FF, 0x80)
	ram.Write(0x3000, 0x50)
	ram.Write(0x3100, 0x60) // would be the "correct" high byte
	c.Load([]uint8{0x6C, 0xFF, 0x30, 0x00})
	c.PC = LoadAddr
	if _, err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if got, want := c.PC, uint16(0x5080); got != want {
		t.Errorf("PC = %.4X, want %.4X (hardware bug: high byte from $3000, not $3100)", got, want)
	}
}

func TestBranchTakenWraps(t *testing.T) {
	c, _ := newCPU(t)
	c.setFlag(P_ZERO, true)
	c.Load([]uint8{0xF0, 0xFE, 0x00}) // BEQ -2 (infinite loop point, but we single-step)
	c.PC = LoadAddr
	if _, err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.PC != LoadAddr {
		t.Errorf("PC = %.4X, want %.4X (branch back to self)", c.PC, LoadAddr)
	}
}

// TestBPLUsesNegativeNotCarry is a regression test for a historical
// bug where BPL branched on CARRY instead of NEGATIVE, making it
// indistinguishable from BCC.
func TestBPLUsesNegativeNotCarry(t *testing.T) {
	c, _ := newCPU(t)
	c.setFlag(P_NEGATIVE, false)
	c.setFlag(P_CARRY, true) // if BPL wrongly checked carry, it would not branch
	c.Load([]uint8{0x10, 0x02, 0x00, 0x00, 0xA9, 0x7A, 0x00}) // BPL +2; else BRK; LDA #$7A
	c.PC = LoadAddr
	if err := c.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if c.A != 0x7A {
		t.Errorf("A = %.2X, want 0x7A (branch should have been taken on N clear)", c.A)
	}
}

// TestIncDecFlagsFromPostValue is a regression test for a historical
// bug where INC/DEC set Z/N from the value before the increment or
// decrement instead of the byte actually written back.
func TestIncDecFlagsFromPostValue(t *testing.T) {
	c, ram := newCPU(t)
	ram.Write(0x10, 0xFF)
	c.Load([]uint8{0xE6, 0x10, 0x00}) // INC $10: 0xFF -> 0x00
	c.PC = LoadAddr
	if err := c.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := ram.Read(0x10); got != 0x00 {
		t.Fatalf("mem[0x10] = %.2X, want 0x00", got)
	}
	if !c.flag(P_ZERO) {
		t.Error("ZERO should be set from the post-increment value (0x00), not the pre-increment value (0xFF)")
	}
	if c.flag(P_NEGATIVE) {
		t.Error("NEGATIVE should be clear: post-increment value is 0x00")
	}
}

// TestLSRAccumulatorCarryFromBit0 is a regression test for a
// historical bug where the accumulator form of LSR took carry from
// bit 7, copying the ASL rule instead of shifting right from bit 0.
func TestLSRAccumulatorCarryFromBit0(t *testing.T) {
	c, _ := newCPU(t)
	c.A = 0x03 // bit 0 set, bit 7 clear
	c.Load([]uint8{0x4A, 0x00}) // LSR A
	c.PC = LoadAddr
	if err := c.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if c.A != 0x01 {
		t.Errorf("A = %.2X, want 0x01", c.A)
	}
	if !c.flag(P_CARRY) {
		t.Error("CARRY should come from bit 0 of the input, not bit 7")
	}
}

// TestNOPIsANoOp is a regression test for a historical bug where NOP
// was dispatched identically to BRK and terminated the run loop.
func TestNOPIsANoOp(t *testing.T) {
	c, _ := newCPU(t)
	c.Load([]uint8{0xEA, 0xA9, 0x09, 0x00}) // NOP; LDA #9
	c.PC = LoadAddr
	if err := c.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if c.A != 0x09 {
		t.Errorf("A = %.2X, want 0x09 (NOP must fall through to the next instruction)", c.A)
	}
}

// TestRegisterFileDiff uses deep.Equal to confirm a PHP/PLP round trip
// leaves every other register untouched, not just P.
func TestRegisterFileDiff(t *testing.T) {
	c, _ := newCPU(t)
	c.A, c.X, c.Y = 0x11, 0x22, 0x33
	before := *c
	c.Load([]uint8{0x08, 0x28, 0x00}) // PHP; PLP
	c.PC = LoadAddr
	if err := c.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	after := *c
	after.ram = before.ram // only comparing register file, not the bank pointer
	before.P |= P_S1
	before.PC = after.PC
	if diff := deep.Equal(before, after); diff != nil {
		t.Errorf("register file changed unexpectedly: %v", diff)
	}
}

func TestStackWrapsWithin8Bits(t *testing.T) {
	c, _ := newCPU(t)
	c.S = 0x00
	c.pushStack(0xAB)
	if c.S != 0xFF {
		t.Errorf("S after push from 0x00 = %.2X, want 0xFF (8-bit wrap)", c.S)
	}
	if got := c.popStack(); got != 0xAB {
		t.Errorf("popStack = %.2X, want 0xAB", got)
	}
	if c.S != 0x00 {
		t.Errorf("S after matching pop = %.2X, want 0x00", c.S)
	}
}
