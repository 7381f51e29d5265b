package asm

import (
	"regexp"
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var exprRe = regexp.MustCompile(`\$\([^\$]*\)`)

// expandExprs substitutes each $( ... ) on a line with the decimal result
// of evaluating its contents. Integer equates are in scope by name.
func (asm *Assembler) expandExprs(line string) (out string, err error) {
	out = exprRe.ReplaceAllStringFunc(line, func(str string) string {
		value, verr := asm.evalExpr(str[2 : len(str)-1])
		if verr != nil {
			err = verr
		}
		return strconv.Itoa(value)
	})
	return
}

// evalExpr runs one expression through Starlark.
func (asm *Assembler) evalExpr(expr string) (value int, err error) {
	predeclared := starlark.StringDict{}
	for name, str := range asm.Equate {
		v, verr := strconv.ParseInt(str, 0, 32)
		if verr != nil {
			// Non-integer equates are not visible to expressions.
			continue
		}
		predeclared[name] = starlark.MakeInt(int(v))
	}

	thread := starlark.Thread{}
	opts := syntax.FileOptions{}

	globals, err := starlark.ExecFileOptions(&opts, &thread, "expr", "rc="+expr+"\n", predeclared)
	if err != nil {
		return 0, ErrExpression(expr)
	}

	rc, ok := globals["rc"]
	if !ok {
		return 0, ErrExpression(expr)
	}

	i, ok := rc.(starlark.Int)
	if !ok {
		return 0, ErrExpression(expr)
	}

	v, ok := i.Int64()
	if !ok {
		return 0, ErrExpression(expr)
	}

	return int(v), nil
}
