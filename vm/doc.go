// Package vm executes encoded gox16 programs.
//
// A Machine owns the register file, the CMP flags, 256 words of data
// memory, and the loaded instruction stream. Run repeats the
// fetch-decode-execute cycle until the program halts, runs off the end of
// the instruction stream, or faults.
package vm
