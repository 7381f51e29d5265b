// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gox16/gox16/isa"
)

func TestAssembleGolden(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		line string
		word isa.Word
	}{
		{"HLT", 0x0000},
		{"RET", 0x7000},
		{"MOV EAX, #10", 0x300A},
		{"MOV EBX, #10", 0x310A},
		{"MOV EAX, [42]", 0x382A},
		{"MOV [42], EAX", 0x402A},
		{"MOV EAX, EBX", isa.MakeR2(isa.OP_MOV_RR, isa.REG_EAX, isa.REG_EBX)},
		{"MOV ECX, [EBX+3]", 0x7A23},
		{"MOV [EBX+3], EAX", 0xF823},
		{"ADD EAX, EBX", 0x8020},
		{"ADD EAX, #1", isa.MakeI(isa.OP_ADDI, isa.REG_EAX, 1)},
		{"SUB ESI, EDI", isa.MakeR2(isa.OP_SUB, isa.REG_ESI, isa.REG_EDI)},
		{"SUB ESP, #2", isa.MakeI(isa.OP_SUBI, isa.REG_ESP, 2)},
		{"CMP EAX, #5", 0xA805},
		{"CMP EAX, EBX", isa.MakeR2(isa.OP_CMP, isa.REG_EAX, isa.REG_EBX)},
		{"MUL EAX, EBX", isa.MakeR2(isa.OP_MUL, isa.REG_EAX, isa.REG_EBX)},
		{"DIV EAX, EBX", isa.MakeR2(isa.OP_DIV, isa.REG_EAX, isa.REG_EBX)},
		{"XOR EDX, EDX", isa.MakeR2(isa.OP_XOR, isa.REG_EDX, isa.REG_EDX)},
		{"NOT EAX", isa.MakeR1(isa.OP_NOT, isa.REG_EAX)},
		{"INC EDX", 0x4B00},
		{"DEC ECX", isa.MakeR1(isa.OP_DEC, isa.REG_ECX)},
		{"PUSH EAX", 0x5800},
		{"POP EBP", isa.MakeR1(isa.OP_POP, isa.REG_EBP)},
		{"INP EAX", isa.MakeR1(isa.OP_INP, isa.REG_EAX)},
		{"OUT EAX", 0x2800},
		{"JMP 3", 0xC003},
		{"CALL 5", isa.MakeJ(isa.OP_CALL, 5)},
		{"JE 1", isa.MakeJ(isa.OP_JE, 1)},
		{"JZ 1", isa.MakeJ(isa.OP_JE, 1)},
		{"JNE 2", isa.MakeJ(isa.OP_JNE, 2)},
		{"JNZ 2", isa.MakeJ(isa.OP_JNE, 2)},
		{"JG 3", isa.MakeJ(isa.OP_JG, 3)},
		{"JNLE 3", isa.MakeJ(isa.OP_JG, 3)},
		{"JL 4", isa.MakeJ(isa.OP_JL, 4)},
		{"JNGE 4", isa.MakeJ(isa.OP_JL, 4)},
		{"JGE 5", isa.MakeJ(isa.OP_JGE, 5)},
		{"JNL 5", isa.MakeJ(isa.OP_JGE, 5)},
		{"JLE 6", isa.MakeJ(isa.OP_JLE, 6)},
		{"JNG 6", isa.MakeJ(isa.OP_JLE, 6)},
		{"mov eax, #10", 0x300A}, // mnemonics and registers are case-insensitive
	}

	for _, test := range tests {
		asm := &Assembler{}
		prog, err := asm.Assemble(strings.NewReader(test.line))
		if assert.NoError(err, test.line) && assert.Equal(1, prog.Len(), test.line) {
			assert.Equal(test.word, prog.Words[0], test.line)
		}
	}
}

func TestAssembleLabels(t *testing.T) {
	assert := assert.New(t)

	source := `
; count down from 3
        MOV ECX, #3     ; counter
loop:   DEC ECX
        CMP ECX, #0
        JNE loop
done:   HLT
`

	asm := &Assembler{}
	prog, err := asm.Assemble(strings.NewReader(source))
	assert.NoError(err)
	assert.Equal(5, prog.Len())

	addr, ok := asm.Symbols.Lookup("loop")
	assert.True(ok)
	assert.Equal(1, addr)
	addr, ok = asm.Symbols.Lookup("done")
	assert.True(ok)
	assert.Equal(4, addr)

	assert.Equal(isa.MakeJ(isa.OP_JNE, 1), prog.Words[3])
}

func TestAssembleLabelOnlyLine(t *testing.T) {
	assert := assert.New(t)

	source := `
start:
        MOV EAX, #1
        JMP start
`

	asm := &Assembler{}
	prog, err := asm.Assemble(strings.NewReader(source))
	assert.NoError(err)
	assert.Equal(2, prog.Len())
	assert.Equal(isa.MakeJ(isa.OP_JMP, 0), prog.Words[1])
}

func TestAssembleForwardReference(t *testing.T) {
	assert := assert.New(t)

	source := `
        JMP end
        MOV EAX, #1
end:    HLT
`

	asm := &Assembler{}
	prog, err := asm.Assemble(strings.NewReader(source))
	assert.NoError(err)
	assert.Equal(isa.MakeJ(isa.OP_JMP, 2), prog.Words[0])
}

func TestAssembleDuplicateLabel(t *testing.T) {
	assert := assert.New(t)

	source := `
x:      HLT
x:      HLT
        JMP x
`

	asm := &Assembler{}
	prog, err := asm.Assemble(strings.NewReader(source))
	assert.NoError(err)

	// The first definition wins.
	assert.Equal(isa.MakeJ(isa.OP_JMP, 0), prog.Words[2])
}

func TestAssembleEquates(t *testing.T) {
	assert := assert.New(t)

	source := `
.equ COUNT 7
.equ TOP 255
        MOV ECX, #COUNT
        MOV EAX, [TOP]
`

	asm := &Assembler{}
	prog, err := asm.Assemble(strings.NewReader(source))
	assert.NoError(err)
	assert.Equal(isa.MakeI(isa.OP_MOV_RI, isa.REG_ECX, 7), prog.Words[0])
	assert.Equal(isa.MakeI(isa.OP_MOV_RM, isa.REG_EAX, 255), prog.Words[1])
}

func TestAssemblePredefine(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	asm.Predefine("LIMIT", "9")

	prog, err := asm.Assemble(strings.NewReader("CMP EAX, #LIMIT"))
	assert.NoError(err)
	assert.Equal(isa.MakeI(isa.OP_CMPI, isa.REG_EAX, 9), prog.Words[0])
}

func TestAssembleExpressions(t *testing.T) {
	assert := assert.New(t)

	source := `
.equ BASE 16
        MOV EAX, #$(BASE * 2 + 1)
        MOV EBX, [$(MEMORY_SIZE - 1)]
`

	asm := &Assembler{}
	prog, err := asm.Assemble(strings.NewReader(source))
	assert.NoError(err)
	assert.Equal(isa.MakeI(isa.OP_MOV_RI, isa.REG_EAX, 33), prog.Words[0])
	assert.Equal(isa.MakeI(isa.OP_MOV_RM, isa.REG_EBX, 255), prog.Words[1])
}

func TestAssembleErrors(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		line string
		want error
	}{
		{"FOO EAX", ErrUnknownMnemonic("FOO")},
		{"MOV EAX", ErrOperandCount},
		{"HLT EAX", ErrOperandCount},
		{"INC", ErrOperandCount},
		{"MOV EIP, #1", ErrInvalidRegister("EIP")},
		{"ADD EAX, FOO", ErrInvalidRegister("FOO")},
		{"MOV EAX, #256", &ErrOperandRange{Value: 256, Limit: isa.MAX_VALUE}},
		{"MOV EAX, [EBX+32]", &ErrOperandRange{Value: 32, Limit: isa.MAX_OFFSET}},
		{"JMP nowhere", ErrUndefinedLabel("nowhere")},
		{"MUL EAX, #2", ErrAddressingMode},
		{"DIV EAX, #2", ErrAddressingMode},
		{"XOR EAX, #2", ErrAddressingMode},
		{"MOV [1], [2]", ErrAddressingMode},
		{"MOV EAX, []", ErrAddressingMode},
		{"MOV [], EAX", ErrAddressingMode},
		{"MOV EAX, [x", ErrAddressingMode},
		{"MOV EAX, #zz", ErrInvalidLiteral("zz")},
	}

	for _, test := range tests {
		asm := &Assembler{}
		_, err := asm.Assemble(strings.NewReader(test.line))
		if assert.Error(err, test.line) {
			assert.ErrorIs(err, test.want, test.line)

			var encErr *ErrEncode
			if assert.ErrorAs(err, &encErr, test.line) {
				assert.Equal(0, encErr.Addr, test.line)
				assert.Equal(test.line, encErr.Line, test.line)
			}
		}
	}
}

func TestEncodeErrorAddressMatchesListing(t *testing.T) {
	assert := assert.New(t)

	// Errors number instructions the same way the listing does.
	asm := &Assembler{}
	_, err := asm.Assemble(strings.NewReader("HLT\nFOO\n"))

	var encErr *ErrEncode
	if assert.ErrorAs(err, &encErr) {
		assert.Equal(1, encErr.Addr)
		assert.Contains(encErr.Error(), "L001")
	}
}

func TestAssembleEquateErrors(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	_, err := asm.Assemble(strings.NewReader(".equ ONLY"))
	assert.ErrorIs(err, ErrEquateSyntax)

	asm = &Assembler{}
	_, err = asm.Assemble(strings.NewReader(".equ A 1\n.equ A 2\n"))
	assert.ErrorIs(err, ErrEquateDuplicate)

	var synErr *ErrSyntax
	if assert.ErrorAs(err, &synErr) {
		assert.Equal(2, synErr.LineNo)
	}
}

func TestAssembleTooBig(t *testing.T) {
	assert := assert.New(t)

	source := strings.Repeat("HLT\n", isa.PROGRAM_SIZE+1)

	asm := &Assembler{}
	_, err := asm.Assemble(strings.NewReader(source))
	assert.ErrorIs(err, ErrProgramTooBig)

	source = strings.Repeat("HLT\n", isa.PROGRAM_SIZE)
	prog, err := asm.Assemble(strings.NewReader(source))
	assert.NoError(err)
	assert.Equal(isa.PROGRAM_SIZE, prog.Len())
}

func TestProgramWriteTo(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog, err := asm.Assemble(strings.NewReader("MOV EAX, #10\nHLT\n"))
	assert.NoError(err)

	var buf bytes.Buffer
	n, err := prog.WriteTo(&buf)
	assert.NoError(err)
	assert.Equal(int64(4), n)
	assert.Equal([]byte{0x0A, 0x30, 0x00, 0x00}, buf.Bytes())
}

func TestProgramListing(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog, err := asm.Assemble(strings.NewReader("MOV EAX, #10\nHLT\n"))
	assert.NoError(err)

	var listing []string
	for _, text := range prog.Listing() {
		listing = append(listing, text)
	}
	assert.Equal([]string{
		"L000: MOV EAX, #10              -> 0x300A",
		"L001: HLT                       -> 0x0000",
	}, listing)
}
