// mos6502 is the front door for this module's three tools: running a
// program image to completion, disassembling one, and hand-assembling
// a "XXXX OP A1 A2..." listing into a binary image.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/akashigamedev/mos6502/asm"
	"github.com/akashigamedev/mos6502/cpu"
	"github.com/akashigamedev/mos6502/disassemble"
	"github.com/akashigamedev/mos6502/memory"
	"github.com/akashigamedev/mos6502/trace"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mos6502",
		Short: "Run, disassemble, or assemble 6502 program images",
	}

	var startPC uint16
	var traceOut bool

	runCmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Load a program image at $8000 and run it to completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			ram := memory.NewRam()
			c := cpu.Init(ram)
			c.Load(b)
			c.Reset()
			if startPC != 0 {
				c.PC = startPC
			}
			if traceOut {
				return trace.Run(c, os.Stdout)
			}
			if err := c.Run(); err != nil {
				return err
			}
			fmt.Printf("halted: A=%.2X X=%.2X Y=%.2X P=%.2X SP=%.2X PC=%.4X\n",
				c.A, c.X, c.Y, c.P, c.S, c.PC)
			return nil
		},
	}
	runCmd.Flags().Uint16Var(&startPC, "start-pc", 0, "override the PC to start execution at (default: $8000)")
	runCmd.Flags().BoolVar(&traceOut, "trace", false, "print one disassembled line per instruction instead of running silently")

	var disasmLen int
	disasmCmd := &cobra.Command{
		Use:   "disasm <file>",
		Short: "Disassemble a program image loaded at $8000",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			ram := memory.NewRam()
			for i, v := range b {
				ram.Write(cpu.LoadAddr+uint16(i), v)
			}
			pc := cpu.LoadAddr
			n := disasmLen
			if n <= 0 {
				n = len(b)
			}
			cnt := 0
			for cnt < n {
				dis, adv := disassemble.Step(pc, ram)
				fmt.Println(dis)
				pc += uint16(adv)
				cnt += adv
			}
			return nil
		},
	}
	disasmCmd.Flags().IntVar(&disasmLen, "length", 0, "number of bytes to disassemble (default: the whole file)")

	var asmOut string
	asmCmd := &cobra.Command{
		Use:   "asm <file>",
		Short: "Hand-assemble a listing into a binary image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			b, err := asm.Assemble(f)
			if err != nil {
				return err
			}
			if asmOut == "" {
				_, err := os.Stdout.Write(b)
				return err
			}
			return os.WriteFile(asmOut, b, 0o644)
		},
	}
	asmCmd.Flags().StringVarP(&asmOut, "output", "o", "", "output file (default: stdout)")

	rootCmd.AddCommand(runCmd, disasmCmd, asmCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
