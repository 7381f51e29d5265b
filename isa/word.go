package isa

// Word is a single encoded instruction.
//
// Bit layout, by format class:
//
//	Z  |op 15:11|unused                      |
//	R1 |op 15:11|reg1 10:8|unused            |
//	J  |op 15:11|unused   |addr 7:0          |
//	I  |op 15:11|reg1 10:8|value 7:0         |
//	R2 |op 15:11|reg1 10:8|reg2 7:5|unused   |
//	M  |op 15:11|reg1 10:8|reg2 7:5|off 4:0  |
type Word uint16

// MakeZ builds a no-operand instruction.
func MakeZ(op Opcode) Word {
	return Word(uint16(op) << 11)
}

// MakeR1 builds a one-register instruction.
func MakeR1(op Opcode, reg1 Reg) Word {
	return Word(uint16(op)<<11 | uint16(reg1&0x7)<<8)
}

// MakeJ builds an address instruction.
func MakeJ(op Opcode, addr uint8) Word {
	return Word(uint16(op)<<11 | uint16(addr))
}

// MakeI builds a register+value instruction.
func MakeI(op Opcode, reg1 Reg, value uint8) Word {
	return Word(uint16(op)<<11 | uint16(reg1&0x7)<<8 | uint16(value))
}

// MakeR2 builds a two-register instruction.
func MakeR2(op Opcode, reg1, reg2 Reg) Word {
	return Word(uint16(op)<<11 | uint16(reg1&0x7)<<8 | uint16(reg2&0x7)<<5)
}

// MakeM builds a register+base+offset instruction.
func MakeM(op Opcode, reg1, base Reg, offset uint8) Word {
	return Word(uint16(op)<<11 | uint16(reg1&0x7)<<8 | uint16(base&0x7)<<5 | uint16(offset&MAX_OFFSET))
}

// Op returns the opcode field.
func (w Word) Op() Opcode {
	return Opcode(uint16(w) >> 11)
}

// Reg1 returns the first register field, bits [10:8].
func (w Word) Reg1() Reg {
	return Reg((uint16(w) >> 8) & 0x7)
}

// Reg2 returns the second register field, bits [7:5].
func (w Word) Reg2() Reg {
	return Reg((uint16(w) >> 5) & 0x7)
}

// Value returns the 8-bit value/address field, bits [7:0].
func (w Word) Value() uint8 {
	return uint8(w & 0xFF)
}

// Offset returns the 5-bit offset field, bits [4:0].
func (w Word) Offset() uint8 {
	return uint8(w & MAX_OFFSET)
}
