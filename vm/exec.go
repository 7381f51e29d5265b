package vm

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/gox16/gox16/isa"
)

// Step fetches, decodes, and executes one instruction. done reports that
// the program halted or ran off the end of the instruction stream; a
// non-nil err is an *ErrRuntime fault with the machine state preserved.
func (m *Machine) Step() (done bool, err error) {
	if m.PC < 0 || m.PC >= len(m.Program) {
		return true, nil
	}

	inst := isa.Decode(m.Program[m.PC])
	if m.Verbose {
		log.Printf("P%03d: %v", m.PC, inst)
	}

	next, err := m.execute(inst, m.PC)
	switch {
	case errors.Is(err, ErrHalted):
		return true, nil
	case err != nil:
		return true, &ErrRuntime{PC: m.PC, Err: err}
	}

	m.PC = next
	return false, nil
}

// Run executes until the program halts, terminates, or faults.
func (m *Machine) Run() error {
	for {
		done, err := m.Step()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// execute applies one instruction at pc and returns the next program
// counter.
func (m *Machine) execute(inst isa.Instruction, pc int) (next int, err error) {
	next = pc + 1

	r1 := &m.Registers[inst.Reg1]
	r2 := m.Registers[inst.Reg2]
	esp := &m.Registers[isa.REG_ESP]

	switch inst.Op {
	case isa.OP_HLT:
		return pc, ErrHalted

	case isa.OP_MUL:
		*r1 *= r2
	case isa.OP_DIV:
		if r2 == 0 {
			return pc, ErrDivideByZero
		}
		*r1 /= r2
	case isa.OP_XOR:
		*r1 ^= r2
	case isa.OP_ADD:
		*r1 += r2
	case isa.OP_SUB:
		*r1 -= r2
	case isa.OP_ADDI:
		*r1 += int16(inst.Value)
	case isa.OP_SUBI:
		*r1 -= int16(inst.Value)
	case isa.OP_INC:
		*r1++
	case isa.OP_DEC:
		*r1--
	case isa.OP_NOT:
		*r1 = ^*r1

	case isa.OP_CMP:
		m.compare(*r1, r2)
	case isa.OP_CMPI:
		m.compare(*r1, int16(inst.Value))

	case isa.OP_MOV_RI:
		*r1 = int16(inst.Value)
	case isa.OP_MOV_RM:
		*r1 = m.read(int(inst.Value))
	case isa.OP_MOV_MR:
		m.write(int(inst.Value), *r1)
	case isa.OP_MOV_RR:
		*r1 = r2
	case isa.OP_LDX:
		*r1 = m.read(int(r2) + int(inst.Offset))
	case isa.OP_STX:
		m.write(int(r2)+int(inst.Offset), *r1)

	case isa.OP_PUSH:
		*esp--
		m.write(int(*esp), *r1)
	case isa.OP_POP:
		*r1 = m.read(int(*esp))
		*esp++
	case isa.OP_CALL:
		*esp--
		m.write(int(*esp), int16(pc+1))
		next = int(inst.Value)
	case isa.OP_RET:
		next = int(m.read(int(*esp)))
		*esp++

	case isa.OP_JMP:
		next = int(inst.Value)
	case isa.OP_JE:
		next = m.branch(inst, pc, m.ZF)
	case isa.OP_JNE:
		next = m.branch(inst, pc, !m.ZF)
	case isa.OP_JG:
		next = m.branch(inst, pc, !m.ZF && !m.SF)
	case isa.OP_JL:
		next = m.branch(inst, pc, m.SF)
	case isa.OP_JGE:
		next = m.branch(inst, pc, !m.SF)
	case isa.OP_JLE:
		next = m.branch(inst, pc, m.ZF || m.SF)

	case isa.OP_INP:
		*r1 = m.readInput(inst.Reg1)
	case isa.OP_OUT:
		fmt.Fprintf(m.output(), "OUTPUT from register %s: %d\n", inst.Reg1, *r1)

	default:
		return pc, ErrIllegalOpcode
	}

	return next, nil
}

// compare sets the flags from the signed difference r1-x. Flags keep
// their values until the next comparison.
func (m *Machine) compare(r1, x int16) {
	d := int(r1) - int(x)
	m.ZF = d == 0
	m.SF = d < 0
}

// branch resolves a conditional jump target.
func (m *Machine) branch(inst isa.Instruction, pc int, taken bool) int {
	if taken {
		return int(inst.Value)
	}
	return pc + 1
}

// readInput prompts for and parses one INP token. Malformed or missing
// input yields zero with a diagnostic; execution continues.
func (m *Machine) readInput(reg isa.Reg) int16 {
	fmt.Fprintf(m.output(), "INPUT required for register %s: ", reg)

	tok, ok := m.input()
	if !ok {
		log.Printf("warning: no input available for register %s, using 0", reg)
		return 0
	}

	v, err := strconv.ParseInt(tok, 10, 16)
	if err != nil {
		log.Printf("warning: malformed input '%s' for register %s, using 0", tok, reg)
		return 0
	}
	return int16(v)
}
