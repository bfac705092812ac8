// Package asm provides a hand-assembler front end: it turns a text
// listing of the form
//
//	XXXX OP A1 A2 A3 ....
//
// (an address field, whitespace, then one to three hex byte tokens)
// into a flat byte image, in load order. The address field is not
// used for placement — output bytes are simply appended in the order
// their lines appear — it exists only so a listing reads naturally
// next to its own disassembly.
package asm

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Assemble reads a hand-assembly listing from r and returns the
// resulting byte image. Blank lines and lines beginning with ';' are
// skipped. A line's first token is always taken as the address field
// and discarded; remaining tokens must each parse as a single hex
// byte.
func Assemble(r io.Reader) ([]byte, error) {
	var out []byte
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, ";") {
			continue
		}
		if semi := strings.Index(text, ";"); semi >= 0 {
			text = strings.TrimSpace(text[:semi])
		}
		toks := strings.Fields(text)
		if len(toks) < 2 {
			return nil, fmt.Errorf("line %d: %q: expected an address field followed by at least one byte", line, text)
		}
		for _, tok := range toks[1:] {
			b, err := strconv.ParseUint(tok, 16, 8)
			if err != nil {
				return nil, fmt.Errorf("line %d: %q is not a hex byte: %w", line, tok, err)
			}
			out = append(out, byte(b))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading assembly listing: %w", err)
	}
	return out, nil
}
