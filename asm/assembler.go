// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"io"
	"log"
	"maps"
	"strconv"
	"strings"

	"github.com/gox16/gox16/isa"
)

// System equates, always in scope.
var sysEquate = map[string]string{
	"LINENO":       "0",
	"MEMORY_SIZE":  strconv.Itoa(isa.MEMORY_SIZE),
	"PROGRAM_SIZE": strconv.Itoa(isa.PROGRAM_SIZE),
	"STACK_TOP":    strconv.Itoa(isa.MEMORY_SIZE - 1),
}

// Assembler drives the two-pass pipeline. The zero value is ready to use;
// each Assemble call resets the symbol table and equates.
type Assembler struct {
	Verbose   bool // If set, logs a listing line per encoded instruction.
	MaxLabels int  // Label-table soft capacity; DefaultMaxLabels when zero.

	Symbols SymbolTable       // Symbol table of the last Assemble call.
	Equate  map[string]string // Map of equates.

	predefine map[string]string
}

// Predefine defines a new equate or redefines an existing equate for all
// subsequent Assemble calls.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{}
	}
	asm.predefine[equ] = value
}

// Line is one comment-stripped, trimmed source line.
type Line struct {
	No   int // 1-based line number in the original source.
	Text string
}

// Assemble reads assembly source and produces the encoded program.
//
// Pass 1 splits labels from instruction text and binds each label to the
// address of the instruction that follows it. Pass 2 encodes every
// instruction line; the first error aborts with an *ErrEncode identifying
// the instruction address and the offending line.
func (asm *Assembler) Assemble(input io.Reader) (prog *Program, err error) {
	asm.Equate = maps.Clone(sysEquate)
	maps.Copy(asm.Equate, asm.predefine)
	asm.Symbols = SymbolTable{MaxLabels: asm.MaxLabels}

	lines, err := asm.load(input)
	if err != nil {
		return nil, err
	}

	instrs := asm.pass1(lines)
	if len(instrs) > isa.PROGRAM_SIZE {
		return nil, ErrProgramTooBig
	}

	enc := &encoder{symbols: &asm.Symbols, equate: asm.Equate}

	words := make([]isa.Word, 0, len(instrs))
	for addr, line := range instrs {
		word, eerr := enc.Encode(line.Text)
		if eerr != nil {
			return nil, &ErrEncode{Addr: addr, Line: line.Text, Err: eerr}
		}
		if asm.Verbose {
			log.Printf("L%03d: %-25s -> 0x%04X", addr, line.Text, uint16(word))
		}
		words = append(words, word)
	}

	return &Program{Lines: instrs, Words: words}, nil
}

// load reads the source, strips `;` comments and surrounding whitespace,
// expands $() expressions, and consumes .equ directives. Lines that are
// left empty are dropped.
func (asm *Assembler) load(input io.Reader) (lines []Line, err error) {
	scanner := bufio.NewScanner(input)

	lineno := 0
	for scanner.Scan() {
		lineno++

		text, _, _ := strings.Cut(scanner.Text(), ";")
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		asm.Equate["LINENO"] = strconv.Itoa(lineno)

		text, err = asm.expandExprs(text)
		if err != nil {
			return nil, &ErrSyntax{LineNo: lineno, Line: scanner.Text(), Err: err}
		}

		if words := strings.Fields(text); words[0] == ".equ" {
			if err = asm.equ(words[1:]); err != nil {
				return nil, &ErrSyntax{LineNo: lineno, Line: scanner.Text(), Err: err}
			}
			continue
		}

		lines = append(lines, Line{No: lineno, Text: text})
	}

	if err = scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// equ records one `.equ NAME VALUE` directive.
func (asm *Assembler) equ(words []string) error {
	if len(words) != 2 {
		return ErrEquateSyntax
	}
	if _, ok := asm.Equate[words[0]]; ok {
		return ErrEquateDuplicate
	}
	asm.Equate[words[0]] = words[1]
	return nil
}

// pass1 splits `label:` prefixes from instruction text, registering each
// label at the address the next instruction will occupy. Label-only lines
// emit no instruction.
func (asm *Assembler) pass1(lines []Line) (instrs []Line) {
	addr := 0
	for _, line := range lines {
		text := line.Text
		if name, rest, found := strings.Cut(text, ":"); found {
			asm.Symbols.Define(strings.TrimSpace(name), addr)
			text = strings.TrimSpace(rest)
		}
		if text == "" {
			continue
		}
		instrs = append(instrs, Line{No: line.No, Text: text})
		addr++
	}
	return instrs
}
