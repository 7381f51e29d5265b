// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package vm

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/gox16/gox16/isa"
)

// Machine is a complete processor state. The zero value is usable after
// Reset or Load.
type Machine struct {
	Verbose bool // If set, logs each instruction as it executes.

	Registers [isa.NUM_REGS]int16
	ZF, SF    bool // Comparison flags, written only by CMP.
	Memory    [isa.MEMORY_SIZE]int16
	Program   []isa.Word
	PC        int

	Input  io.Reader // Source for INP; os.Stdin when nil.
	Output io.Writer // Sink for OUT and INP prompts; os.Stdout when nil.

	scanner *bufio.Scanner
}

// Reset clears registers, flags, memory, and the program counter. The
// stack pointer and frame pointer start one past the top of memory, so
// the first PUSH lands on the highest word.
func (m *Machine) Reset() {
	m.Registers = [isa.NUM_REGS]int16{}
	m.Memory = [isa.MEMORY_SIZE]int16{}
	m.ZF, m.SF = false, false
	m.PC = 0
	m.Registers[isa.REG_ESP] = isa.MEMORY_SIZE
	m.Registers[isa.REG_EBP] = isa.MEMORY_SIZE
}

// Load resets the machine and installs an instruction stream.
func (m *Machine) Load(words []isa.Word) {
	m.Reset()
	m.Program = words
}

// LoadBin resets the machine and installs a little-endian word stream.
// Words beyond program capacity are dropped with a diagnostic.
func (m *Machine) LoadBin(r io.Reader) error {
	buf, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if len(buf)%2 != 0 {
		return ErrTruncatedImage
	}

	words := make([]isa.Word, len(buf)/2)
	for i := range words {
		words[i] = isa.Word(binary.LittleEndian.Uint16(buf[2*i:]))
	}
	if len(words) > isa.PROGRAM_SIZE {
		log.Printf("warning: image has %d words, truncating to %d", len(words), isa.PROGRAM_SIZE)
		words = words[:isa.PROGRAM_SIZE]
	}

	m.Load(words)
	return nil
}

// read returns the word at a data-memory address. Out-of-bounds reads
// yield zero with a diagnostic.
func (m *Machine) read(addr int) int16 {
	if addr < 0 || addr >= isa.MEMORY_SIZE {
		log.Printf("warning: memory read out of bounds at %d", addr)
		return 0
	}
	return m.Memory[addr]
}

// write stores a word at a data-memory address. Out-of-bounds writes are
// dropped with a diagnostic.
func (m *Machine) write(addr int, value int16) {
	if addr < 0 || addr >= isa.MEMORY_SIZE {
		log.Printf("warning: memory write out of bounds at %d", addr)
		return
	}
	m.Memory[addr] = value
}

func (m *Machine) output() io.Writer {
	if m.Output == nil {
		return os.Stdout
	}
	return m.Output
}

// input reads the next whitespace-delimited token from the INP source.
func (m *Machine) input() (tok string, ok bool) {
	if m.scanner == nil {
		in := m.Input
		if in == nil {
			in = os.Stdin
		}
		m.scanner = bufio.NewScanner(in)
		m.scanner.Split(bufio.ScanWords)
	}
	if !m.scanner.Scan() {
		return "", false
	}
	return m.scanner.Text(), true
}

// String renders the program counter, flags, register file, and every
// non-zero memory word.
func (m *Machine) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "PC=%03d ZF=%v SF=%v\n", m.PC, m.ZF, m.SF)
	for reg := range isa.Reg(isa.NUM_REGS) {
		if reg > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%s=%d", reg, m.Registers[reg])
	}
	for addr, value := range m.Memory {
		if value != 0 {
			fmt.Fprintf(&sb, "\nM[%03d]=%d", addr, value)
		}
	}

	return sb.String()
}
