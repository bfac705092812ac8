package trace

import (
	"bytes"
	"strings"
	"testing"

	"github.com/akashigamedev/mos6502/cpu"
	"github.com/akashigamedev/mos6502/memory"
)

func TestRunProducesOneLinePerInstruction(t *testing.T) {
	ram := memory.NewRam()
	c := cpu.Init(ram)
	c.Load([]uint8{0xA9, 0x05, 0xAA, 0x00}) // LDA #5; TAX; BRK
	c.Reset()

	var buf bytes.Buffer
	if err := Run(c, &buf); err != nil {
		t.Fatalf("Run: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d trace lines, want 3:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "LDA") {
		t.Errorf("first line = %q, want it to mention LDA", lines[0])
	}
	if !strings.Contains(lines[2], "BRK") {
		t.Errorf("last line = %q, want it to mention BRK", lines[2])
	}
}
