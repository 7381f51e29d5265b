package isa

import (
	"fmt"
)

// Instruction is a decoded instruction word: the opcode tag plus the
// concrete operand values for its format class. Fields that the format
// does not use are zero.
type Instruction struct {
	Op     Opcode
	Reg1   Reg   // R1/I/R2/M first register.
	Reg2   Reg   // R2 second register; M base register.
	Value  uint8 // I value; J address.
	Offset uint8 // M displacement.
}

// Decode inverts the bit layout of a word into a typed instruction.
// Every 5-bit opcode value is assigned, so decoding cannot fail.
func Decode(w Word) (inst Instruction) {
	inst.Op = w.Op()

	switch inst.Op.Format() {
	case FMT_Z:
		// no operands
	case FMT_R1:
		inst.Reg1 = w.Reg1()
	case FMT_J:
		inst.Value = w.Value()
	case FMT_I:
		inst.Reg1 = w.Reg1()
		inst.Value = w.Value()
	case FMT_R2:
		inst.Reg1 = w.Reg1()
		inst.Reg2 = w.Reg2()
	case FMT_M:
		inst.Reg1 = w.Reg1()
		inst.Reg2 = w.Reg2()
		inst.Offset = w.Offset()
	}

	return
}

// Word re-encodes the instruction into its wire form.
func (inst Instruction) Word() Word {
	switch inst.Op.Format() {
	case FMT_R1:
		return MakeR1(inst.Op, inst.Reg1)
	case FMT_J:
		return MakeJ(inst.Op, inst.Value)
	case FMT_I:
		return MakeI(inst.Op, inst.Reg1, inst.Value)
	case FMT_R2:
		return MakeR2(inst.Op, inst.Reg1, inst.Reg2)
	case FMT_M:
		return MakeM(inst.Op, inst.Reg1, inst.Reg2, inst.Offset)
	default:
		return MakeZ(inst.Op)
	}
}

// String returns the canonical assembly form of the instruction.
func (inst Instruction) String() string {
	switch inst.Op {
	case OP_MOV_RI:
		return fmt.Sprintf("%v %v, #%d", inst.Op, inst.Reg1, inst.Value)
	case OP_MOV_RM:
		return fmt.Sprintf("%v %v, [%d]", inst.Op, inst.Reg1, inst.Value)
	case OP_MOV_MR:
		return fmt.Sprintf("%v [%d], %v", inst.Op, inst.Value, inst.Reg1)
	case OP_LDX:
		return fmt.Sprintf("%v %v, [%v+%d]", inst.Op, inst.Reg1, inst.Reg2, inst.Offset)
	case OP_STX:
		return fmt.Sprintf("%v [%v+%d], %v", inst.Op, inst.Reg2, inst.Offset, inst.Reg1)
	}

	switch inst.Op.Format() {
	case FMT_R1:
		return fmt.Sprintf("%v %v", inst.Op, inst.Reg1)
	case FMT_J:
		return fmt.Sprintf("%v %d", inst.Op, inst.Value)
	case FMT_I:
		return fmt.Sprintf("%v %v, #%d", inst.Op, inst.Reg1, inst.Value)
	case FMT_R2:
		return fmt.Sprintf("%v %v, %v", inst.Op, inst.Reg1, inst.Reg2)
	default:
		return inst.Op.String()
	}
}
