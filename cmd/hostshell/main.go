// hostshell is a minimal host loop around the core: it is not part of
// the emulator itself, just a placeholder standing in for whatever
// front end (terminal, test harness, GUI) a real embedding would
// drive the CPU from. It reads chunks from standard input and prints
// how many it has seen.
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	buf := make([]byte, 100)
	counter := 0
	for {
		_, err := os.Stdin.Read(buf)
		if err == io.EOF {
			return
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "hostshell: %v\n", err)
			os.Exit(1)
		}
		counter++
		fmt.Printf("counter: %d\n", counter)
	}
}
