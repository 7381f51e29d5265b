package asm

import (
	"log"
)

// DefaultMaxLabels is the label-table soft capacity. Registration beyond
// it drops the label with a warning; assembly continues.
const DefaultMaxLabels = 64

// Symbol binds a label name to an instruction address.
type Symbol struct {
	Name string
	Addr int
}

// SymbolTable is the ordered label table built during Pass 1 and read-only
// during Pass 2. Duplicate names are retained in definition order but
// never observed: Lookup returns the first match.
type SymbolTable struct {
	MaxLabels int // Soft capacity; DefaultMaxLabels when zero.

	Symbols []Symbol
}

func (st *SymbolTable) limit() int {
	if st.MaxLabels == 0 {
		return DefaultMaxLabels
	}
	return st.MaxLabels
}

// Define registers a label at an address. The result reports whether the
// label was retained.
func (st *SymbolTable) Define(name string, addr int) bool {
	if len(st.Symbols) >= st.limit() {
		log.Printf("warning: maximum number of labels (%d) reached, ignoring '%s'", st.limit(), name)
		return false
	}

	st.Symbols = append(st.Symbols, Symbol{Name: name, Addr: addr})
	return true
}

// Lookup resolves a label to its address, scanning in definition order.
func (st *SymbolTable) Lookup(name string) (addr int, ok bool) {
	for _, sym := range st.Symbols {
		if sym.Name == name {
			return sym.Addr, true
		}
	}

	return 0, false
}

// Len returns the number of retained labels.
func (st *SymbolTable) Len() int {
	return len(st.Symbols)
}
