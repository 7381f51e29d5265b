// Package asm implements the two-pass assembler for the gox16 instruction
// set.
//
// Pass 1 scans the comment-stripped source, splitting `label:` prefixes
// from instruction text and binding each label to the address the next
// instruction will receive. Pass 2 encodes each de-labeled line into a
// 16-bit word, resolving labels through the symbol table and validating
// every operand against its bit-field range.
//
// The source language additionally supports `.equ NAME VALUE` equates and
// compile-time `$( ... )` expressions evaluated by Starlark.
package asm
