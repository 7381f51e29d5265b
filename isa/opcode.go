package isa

// Machine geometry. MEMORY_SIZE equals the reach of the 8-bit address
// field, so direct addresses can never be out of bounds.
const (
	MEMORY_SIZE  = 256 // Words of main memory.
	PROGRAM_SIZE = 256 // Maximum instructions in a program image.
	NUM_REGS     = 8   // General-purpose registers, EAX..ESP.
)

// Operand field limits.
const (
	MAX_VALUE  = 0xFF // 8-bit immediate / address field.
	MAX_OFFSET = 0x1F // 5-bit base+offset displacement.
)

// Opcode is the 5-bit operation selector, bits [15:11] of a word.
type Opcode uint16

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_HLT    = Opcode(0b00000) // HLT
	OP_MUL    = Opcode(0b00001) // MUL
	OP_DIV    = Opcode(0b00010) // DIV
	OP_XOR    = Opcode(0b00011) // XOR
	OP_INP    = Opcode(0b00100) // INP
	OP_OUT    = Opcode(0b00101) // OUT
	OP_MOV_RI = Opcode(0b00110) // MOV
	OP_MOV_RM = Opcode(0b00111) // MOV
	OP_MOV_MR = Opcode(0b01000) // MOV
	OP_INC    = Opcode(0b01001) // INC
	OP_DEC    = Opcode(0b01010) // DEC
	OP_PUSH   = Opcode(0b01011) // PUSH
	OP_POP    = Opcode(0b01100) // POP
	OP_CALL   = Opcode(0b01101) // CALL
	OP_RET    = Opcode(0b01110) // RET
	OP_LDX    = Opcode(0b01111) // MOV
	OP_ADD    = Opcode(0b10000) // ADD
	OP_SUB    = Opcode(0b10001) // SUB
	OP_MOV_RR = Opcode(0b10010) // MOV
	OP_ADDI   = Opcode(0b10011) // ADD
	OP_SUBI   = Opcode(0b10100) // SUB
	OP_CMPI   = Opcode(0b10101) // CMP
	OP_NOT    = Opcode(0b10110) // NOT
	OP_CMP    = Opcode(0b10111) // CMP
	OP_JMP    = Opcode(0b11000) // JMP
	OP_JE     = Opcode(0b11001) // JE
	OP_JNE    = Opcode(0b11010) // JNE
	OP_JG     = Opcode(0b11011) // JG
	OP_JL     = Opcode(0b11100) // JL
	OP_JGE    = Opcode(0b11101) // JGE
	OP_JLE    = Opcode(0b11110) // JLE
	OP_STX    = Opcode(0b11111) // MOV
)

// Format is an opcode's operand layout class for bits [10:0].
type Format int

//go:generate go tool stringer -linecomment -type=Format
const (
	FMT_Z  = Format(0) // Z
	FMT_R1 = Format(1) // R1
	FMT_J  = Format(2) // J
	FMT_I  = Format(3) // I
	FMT_R2 = Format(4) // R2
	FMT_M  = Format(5) // M
)

// formats assigns every opcode value a format class; the table has no gaps.
var formats = [1 << 5]Format{
	OP_HLT:    FMT_Z,
	OP_MUL:    FMT_R2,
	OP_DIV:    FMT_R2,
	OP_XOR:    FMT_R2,
	OP_INP:    FMT_R1,
	OP_OUT:    FMT_R1,
	OP_MOV_RI: FMT_I,
	OP_MOV_RM: FMT_I,
	OP_MOV_MR: FMT_I,
	OP_INC:    FMT_R1,
	OP_DEC:    FMT_R1,
	OP_PUSH:   FMT_R1,
	OP_POP:    FMT_R1,
	OP_CALL:   FMT_J,
	OP_RET:    FMT_Z,
	OP_LDX:    FMT_M,
	OP_ADD:    FMT_R2,
	OP_SUB:    FMT_R2,
	OP_MOV_RR: FMT_R2,
	OP_ADDI:   FMT_I,
	OP_SUBI:   FMT_I,
	OP_CMPI:   FMT_I,
	OP_NOT:    FMT_R1,
	OP_CMP:    FMT_R2,
	OP_JMP:    FMT_J,
	OP_JE:     FMT_J,
	OP_JNE:    FMT_J,
	OP_JG:     FMT_J,
	OP_JL:     FMT_J,
	OP_JGE:    FMT_J,
	OP_JLE:    FMT_J,
	OP_STX:    FMT_M,
}

// Format returns the opcode's operand layout class.
func (op Opcode) Format() Format {
	return formats[op&0x1F]
}
