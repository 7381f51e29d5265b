package isa

import (
	"strings"
)

// Reg is a 3-bit register index.
type Reg uint16

//go:generate go tool stringer -linecomment -type=Reg
const (
	REG_EAX = Reg(0) // EAX
	REG_EBX = Reg(1) // EBX
	REG_ECX = Reg(2) // ECX
	REG_EDX = Reg(3) // EDX
	REG_ESI = Reg(4) // ESI
	REG_EDI = Reg(5) // EDI
	REG_EBP = Reg(6) // EBP
	REG_ESP = Reg(7) // ESP
)

// regMap maps canonical register names to indexes.
var regMap = map[string]Reg{
	"EAX": REG_EAX,
	"EBX": REG_EBX,
	"ECX": REG_ECX,
	"EDX": REG_EDX,
	"ESI": REG_ESI,
	"EDI": REG_EDI,
	"EBP": REG_EBP,
	"ESP": REG_ESP,
}

// RegisterNamed resolves a register name, case-insensitively.
func RegisterNamed(name string) (reg Reg, ok bool) {
	reg, ok = regMap[strings.ToUpper(name)]
	return
}
