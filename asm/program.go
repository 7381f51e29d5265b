package asm

import (
	"encoding/binary"
	"fmt"
	"io"
	"iter"

	"github.com/gox16/gox16/isa"
)

// Program is an assembled instruction image.
type Program struct {
	Lines []Line     // Normalized source, one entry per word.
	Words []isa.Word // Encoded instruction stream.
}

// Len returns the instruction count.
func (prog *Program) Len() int {
	return len(prog.Words)
}

// Listing iterates the program in address order, yielding a formatted
// listing line per instruction.
func (prog *Program) Listing() iter.Seq2[int, string] {
	return func(yield func(addr int, text string) bool) {
		for addr, word := range prog.Words {
			text := fmt.Sprintf("L%03d: %-25s -> 0x%04X", addr, prog.Lines[addr].Text, uint16(word))
			if !yield(addr, text) {
				return
			}
		}
	}
}

// WriteTo emits the image as a flat stream of little-endian words with no
// header. It implements io.WriterTo.
func (prog *Program) WriteTo(w io.Writer) (n int64, err error) {
	if err = binary.Write(w, binary.LittleEndian, prog.Words); err != nil {
		return 0, err
	}
	return int64(2 * len(prog.Words)), nil
}
