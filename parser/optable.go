package parser

import "fmt"

// OpTable maps each single-character binary operator to its precedence
// (binding power). Higher binds tighter. Any character absent from the table,
// or mapped to a value ≤ 0, is not a binary operator.
//
// The table is the only thing the parser knows about operators: registering a
// new entry makes the precedence climb accept the character with no change to
// parser logic. A table belongs to one parsing session — there is no
// process-wide operator state.
type OpTable map[byte]int

// DefaultOps returns a fresh table seeded with the built-in operator set.
func DefaultOps() OpTable {
	return OpTable{
		'<': 10,
		'+': 20,
		'-': 20,
		'*': 40,
	}
}

// Precedence returns the configured precedence for op and whether op is a
// binary operator at all. Characters mapped to a non-positive precedence are
// reported as non-operators.
func (t OpTable) Precedence(op byte) (int, bool) {
	prec, ok := t[op]
	if !ok || prec <= 0 {
		return 0, false
	}
	return prec, true
}

// structural characters have grammatical meaning of their own and can never
// double as binary operators.
const structural = "(),#;"

// Register adds (or re-weights) a binary operator. The operator must be a
// printable ASCII symbol that is not structural syntax, and prec must lie in
// 1..99.
func (t OpTable) Register(op byte, prec int) error {
	if op <= ' ' || op > '~' {
		return fmt.Errorf("operator %q is not a printable ASCII character", op)
	}
	if isLetterOrDigit(op) {
		return fmt.Errorf("operator %q must be a symbol, not a letter or digit", op)
	}
	for i := 0; i < len(structural); i++ {
		if op == structural[i] {
			return fmt.Errorf("%q is structural syntax and cannot be an operator", op)
		}
	}
	if prec < 1 || prec > 99 {
		return fmt.Errorf("precedence %d for operator %q out of range 1..99", prec, op)
	}
	t[op] = prec
	return nil
}

// Clone returns an independent copy of the table.
func (t OpTable) Clone() OpTable {
	c := make(OpTable, len(t))
	for op, prec := range t {
		c[op] = prec
	}
	return c
}

func isLetterOrDigit(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
