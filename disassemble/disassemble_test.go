package disassemble

import (
	"strings"
	"testing"

	"github.com/akashigamedev/mos6502/memory"
)

func TestStepImmediate(t *testing.T) {
	r := memory.NewRam()
	r.Write(0x8000, 0xA9)
	r.Write(0x8001, 0x05)
	out, adv := Step(0x8000, r)
	if adv != 2 {
		t.Errorf("advance = %d, want 2", adv)
	}
	if !strings.Contains(out, "LDA") || !strings.Contains(out, "#05") {
		t.Errorf("out = %q, want it to mention LDA #05", out)
	}
}

func TestStepUndocumentedOpcode(t *testing.T) {
	r := memory.NewRam()
	r.Write(0x8000, 0x02) // not a documented opcode
	out, adv := Step(0x8000, r)
	if adv != 1 {
		t.Errorf("advance = %d, want 1", adv)
	}
	if !strings.Contains(out, "???") {
		t.Errorf("out = %q, want it to flag the byte as unknown", out)
	}
}

func TestStepRelativeShowsTarget(t *testing.T) {
	r := memory.NewRam()
	r.Write(0x8000, 0xF0) // BEQ
	r.Write(0x8001, 0xFE) // -2
	out, adv := Step(0x8000, r)
	if adv != 2 {
		t.Errorf("advance = %d, want 2", adv)
	}
	if !strings.Contains(out, "(8000)") {
		t.Errorf("out = %q, want it to show the branch target 8000", out)
	}
}

func TestStepIndirectJMP(t *testing.T) {
	r := memory.NewRam()
	r.Write(0x8000, 0x6C)
	r.Write(0x8001, 0x00)
	r.Write(0x8002, 0x90)
	out, adv := Step(0x8000, r)
	if adv != 3 {
		t.Errorf("advance = %d, want 3", adv)
	}
	if !strings.Contains(out, "JMP") || !strings.Contains(out, "9000") {
		t.Errorf("out = %q, want it to mention JMP (9000)", out)
	}
}
