package asm

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/gox16/gox16/isa"
)

// shape selects the operand grammar for a mnemonic.
type shape int

const (
	shapeZ     shape = iota // no operands
	shapeR1                 // one register
	shapeJ                  // one address or label
	shapeArith              // register,register or register,#immediate
	shapeMov                // six addressing-mode combinations
)

type mnemonic struct {
	shape  shape
	op     isa.Opcode // Z/R1/J opcode, or the register-register arith form.
	imm    isa.Opcode // Register-immediate arith form.
	hasImm bool
}

// mnemonics maps each upper-cased mnemonic to its grammar and opcodes.
// Alias jumps share an entry with their canonical spelling.
var mnemonics = map[string]mnemonic{
	"HLT":  {shape: shapeZ, op: isa.OP_HLT},
	"RET":  {shape: shapeZ, op: isa.OP_RET},
	"INP":  {shape: shapeR1, op: isa.OP_INP},
	"OUT":  {shape: shapeR1, op: isa.OP_OUT},
	"INC":  {shape: shapeR1, op: isa.OP_INC},
	"DEC":  {shape: shapeR1, op: isa.OP_DEC},
	"PUSH": {shape: shapeR1, op: isa.OP_PUSH},
	"POP":  {shape: shapeR1, op: isa.OP_POP},
	"NOT":  {shape: shapeR1, op: isa.OP_NOT},
	"JMP":  {shape: shapeJ, op: isa.OP_JMP},
	"CALL": {shape: shapeJ, op: isa.OP_CALL},
	"JE":   {shape: shapeJ, op: isa.OP_JE},
	"JZ":   {shape: shapeJ, op: isa.OP_JE},
	"JNE":  {shape: shapeJ, op: isa.OP_JNE},
	"JNZ":  {shape: shapeJ, op: isa.OP_JNE},
	"JG":   {shape: shapeJ, op: isa.OP_JG},
	"JNLE": {shape: shapeJ, op: isa.OP_JG},
	"JL":   {shape: shapeJ, op: isa.OP_JL},
	"JNGE": {shape: shapeJ, op: isa.OP_JL},
	"JGE":  {shape: shapeJ, op: isa.OP_JGE},
	"JNL":  {shape: shapeJ, op: isa.OP_JGE},
	"JLE":  {shape: shapeJ, op: isa.OP_JLE},
	"JNG":  {shape: shapeJ, op: isa.OP_JLE},
	"ADD":  {shape: shapeArith, op: isa.OP_ADD, imm: isa.OP_ADDI, hasImm: true},
	"SUB":  {shape: shapeArith, op: isa.OP_SUB, imm: isa.OP_SUBI, hasImm: true},
	"CMP":  {shape: shapeArith, op: isa.OP_CMP, imm: isa.OP_CMPI, hasImm: true},
	"MUL":  {shape: shapeArith, op: isa.OP_MUL},
	"DIV":  {shape: shapeArith, op: isa.OP_DIV},
	"XOR":  {shape: shapeArith, op: isa.OP_XOR},
	"MOV":  {shape: shapeMov},
}

// encoder resolves operands for one assembly, using the symbol table and
// equates frozen by Pass 1.
type encoder struct {
	symbols *SymbolTable
	equate  map[string]string
}

// tokenize splits a line on whitespace and commas; token 0 is the
// mnemonic.
func tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
}

// Encode translates one normalized instruction line into a word.
func (enc *encoder) Encode(text string) (isa.Word, error) {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return 0, nil
	}

	mn, ok := mnemonics[strings.ToUpper(tokens[0])]
	if !ok {
		return 0, ErrUnknownMnemonic(tokens[0])
	}
	operands := tokens[1:]

	switch mn.shape {
	case shapeZ:
		if len(operands) != 0 {
			return 0, ErrOperandCount
		}
		return isa.MakeZ(mn.op), nil

	case shapeR1:
		if len(operands) != 1 {
			return 0, ErrOperandCount
		}
		reg, err := enc.register(operands[0])
		if err != nil {
			return 0, err
		}
		return isa.MakeR1(mn.op, reg), nil

	case shapeJ:
		if len(operands) != 1 {
			return 0, ErrOperandCount
		}
		addr, err := enc.address(operands[0])
		if err != nil {
			return 0, err
		}
		return isa.MakeJ(mn.op, addr), nil

	case shapeArith:
		if len(operands) != 2 {
			return 0, ErrOperandCount
		}
		reg1, err := enc.register(operands[0])
		if err != nil {
			return 0, err
		}
		if strings.HasPrefix(operands[1], "#") {
			if !mn.hasImm {
				return 0, ErrAddressingMode
			}
			value, err := enc.immediate(operands[1])
			if err != nil {
				return 0, err
			}
			return isa.MakeI(mn.imm, reg1, value), nil
		}
		reg2, err := enc.register(operands[1])
		if err != nil {
			return 0, err
		}
		return isa.MakeR2(mn.op, reg1, reg2), nil

	default: // shapeMov
		if len(operands) != 2 {
			return 0, ErrOperandCount
		}
		return enc.encodeMov(operands[0], operands[1])
	}
}

// encodeMov selects among the MOV addressing-mode combinations. Exactly
// one operand may be a memory reference.
func (enc *encoder) encodeMov(dst, src string) (isa.Word, error) {
	dstMem := strings.HasPrefix(dst, "[")
	srcMem := strings.HasPrefix(src, "[")

	switch {
	case dstMem && srcMem:
		return 0, ErrAddressingMode

	case dstMem || srcMem:
		mem, other := dst, src
		if srcMem {
			mem, other = src, dst
		}
		inner, ok := strings.CutSuffix(strings.TrimPrefix(mem, "["), "]")
		if !ok || inner == "" {
			return 0, ErrAddressingMode
		}

		reg, err := enc.register(other)
		if err != nil {
			return 0, err
		}

		if baseTok, offTok, indexed := strings.Cut(inner, "+"); indexed {
			base, err := enc.register(baseTok)
			if err != nil {
				return 0, err
			}
			offset, err := enc.number(offTok)
			if err != nil {
				return 0, err
			}
			if offset < 0 || offset > isa.MAX_OFFSET {
				return 0, &ErrOperandRange{Value: offset, Limit: isa.MAX_OFFSET}
			}
			if dstMem {
				return isa.MakeM(isa.OP_STX, reg, base, uint8(offset)), nil
			}
			return isa.MakeM(isa.OP_LDX, reg, base, uint8(offset)), nil
		}

		addr, err := enc.address(inner)
		if err != nil {
			return 0, err
		}
		if dstMem {
			return isa.MakeI(isa.OP_MOV_MR, reg, addr), nil
		}
		return isa.MakeI(isa.OP_MOV_RM, reg, addr), nil

	case strings.HasPrefix(src, "#"):
		reg, err := enc.register(dst)
		if err != nil {
			return 0, err
		}
		value, err := enc.immediate(src)
		if err != nil {
			return 0, err
		}
		return isa.MakeI(isa.OP_MOV_RI, reg, value), nil

	default:
		reg1, err := enc.register(dst)
		if err != nil {
			return 0, err
		}
		reg2, err := enc.register(src)
		if err != nil {
			return 0, err
		}
		return isa.MakeR2(isa.OP_MOV_RR, reg1, reg2), nil
	}
}

// register resolves a register name, case-insensitively.
func (enc *encoder) register(tok string) (isa.Reg, error) {
	reg, ok := isa.RegisterNamed(tok)
	if !ok {
		return 0, ErrInvalidRegister(tok)
	}
	return reg, nil
}

// number resolves a token to an integer, consulting equates first.
func (enc *encoder) number(tok string) (int, error) {
	if sub, ok := enc.equate[tok]; ok {
		tok = sub
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, ErrInvalidLiteral(tok)
	}
	return v, nil
}

// immediate resolves a '#'-prefixed literal and checks the value field
// range.
func (enc *encoder) immediate(tok string) (uint8, error) {
	v, err := enc.number(strings.TrimPrefix(tok, "#"))
	if err != nil {
		return 0, err
	}
	if v < 0 || v > isa.MAX_VALUE {
		return 0, &ErrOperandRange{Value: v, Limit: isa.MAX_VALUE}
	}
	return uint8(v), nil
}

// address resolves an address operand. A token starting with a letter is
// looked up as a label first, then as an equate; anything else must be a
// decimal literal.
func (enc *encoder) address(tok string) (uint8, error) {
	if tok == "" {
		return 0, ErrInvalidLiteral(tok)
	}

	var value int
	if r := rune(tok[0]); unicode.IsLetter(r) {
		addr, ok := enc.symbols.Lookup(tok)
		if !ok {
			if _, sub := enc.equate[tok]; !sub {
				return 0, ErrUndefinedLabel(tok)
			}
			var err error
			addr, err = enc.number(tok)
			if err != nil {
				return 0, err
			}
		}
		value = addr
	} else {
		var err error
		value, err = enc.number(tok)
		if err != nil {
			return 0, err
		}
	}

	if value < 0 || value > isa.MAX_VALUE {
		return 0, &ErrOperandRange{Value: value, Limit: isa.MAX_VALUE}
	}
	return uint8(value), nil
}
