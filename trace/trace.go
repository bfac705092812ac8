// Package trace implements an instruction-level execution tracer for
// the cpu package: a line per instruction, disassembly plus register
// file, in the style of the line-at-a-time logs a debugger front end
// would want to diff against a known-good run.
package trace

import (
	"fmt"
	"io"

	"github.com/akashigamedev/mos6502/cpu"
	"github.com/akashigamedev/mos6502/disassemble"
)

// Line formats one trace line for the Chip's current PC, before the
// instruction there executes.
func Line(c *cpu.Chip) string {
	dis, _ := disassemble.Step(c.PC, c.Mem())
	return fmt.Sprintf("%s A:%.2X X:%.2X Y:%.2X P:%.2X SP:%.2X",
		dis, c.A, c.X, c.Y, c.P, c.S)
}

// Run steps c to completion, writing one Line per instruction to w
// before it executes. It stops on the same conditions cpu.Chip.Run
// does: BRK, or a non-nil error from Step.
func Run(c *cpu.Chip, w io.Writer) error {
	for {
		fmt.Fprintln(w, Line(c))
		done, err := c.Step()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}
