// Package isa defines the instruction encoding contract shared by the
// gox16 assembler and virtual machine.
//
// An instruction is a single 16-bit word. Bits [15:11] hold a 5-bit opcode;
// the remaining 11 bits are partitioned according to the opcode's format
// class: no operand (Z), one register (R1), one 8-bit address (J), register
// plus 8-bit value (I), two registers (R2), or register plus base register
// plus 5-bit offset (M). All 32 opcode values are assigned.
package isa
