// Package ast defines the Abstract Syntax Tree (AST) node types for the
// Kaleido language.
//
// Every source construct has a corresponding node type. The hierarchy is:
//
//	Node (interface)
//	  Expression (interface)
//	    NumberLiteral, VariableRef, BinaryExpr, CallExpr
//	  Prototype  — a function's name + parameter names, no body
//	  Function   — a Prototype plus one body expression
//
// Nodes are immutable once constructed and own their children exclusively:
// the tree is built bottom-up by the parser and never shares or cycles.
// Concrete syntax that carries no meaning (parentheses) is not represented.
//
// Positional information (line + column) is stored on the Token field present
// in every node, for error reporting by later stages.
package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// AnonFuncName is the reserved name given to the synthetic Function that
// wraps a bare top-level expression. Later stages recognise it and treat the
// wrapped body as an immediately-evaluated expression rather than a callable
// definition.
const AnonFuncName = "__anon_expr"

// ── Interfaces ────────────────────────────────────────────────────────────────

// Node is the root interface for every element in the Kaleido AST.
// Every node carries the token at which it starts (for error reporting).
type Node interface {
	// TokenLiteral returns the literal string of the token that began this node.
	TokenLiteral() string
	// String returns a compact, human-readable representation of the node.
	// It is intended for debugging and test output, not pretty-printing.
	String() string
}

// Expression is a Node that evaluates to a value. Kaleido is expression-only:
// a function body is a single expression, and every sub-node of an expression
// is itself an expression.
type Expression interface {
	Node
	expressionNode()
}

// ── Expression nodes ──────────────────────────────────────────────────────────

// NumberLiteral is a floating-point literal, e.g. 1, 2.5, .5.
type NumberLiteral struct {
	Token Token // the NUMBER token
	Value float64
}

func (n *NumberLiteral) expressionNode()      {}
func (n *NumberLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *NumberLiteral) String() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

// VariableRef references a variable by name.
// No binding resolution happens at this stage — the name is unresolved by
// design and may well refer to nothing.
type VariableRef struct {
	Token Token // the IDENT token
	Name  string
}

func (v *VariableRef) expressionNode()      {}
func (v *VariableRef) TokenLiteral() string { return v.Token.Literal }
func (v *VariableRef) String() string       { return v.Name }

// BinaryExpr applies a single-character binary operator to two sub-expressions.
// The operator must have been registered in the parser's operator table at the
// time the node was built.
type BinaryExpr struct {
	Token Token // the operator's PUNCT token
	Op    byte  // operator character, e.g. '+'
	Left  Expression
	Right Expression
}

func (b *BinaryExpr) expressionNode()      {}
func (b *BinaryExpr) TokenLiteral() string { return b.Token.Literal }

// String renders the expression fully parenthesized, which makes grouping
// decisions visible in test output: 1+2*3 → "(1 + (2 * 3))".
func (b *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %c %s)", b.Left.String(), b.Op, b.Right.String())
}

// CallExpr calls a function by name with an ordered argument list.
// Argument order is semantically meaningful (it is the evaluation order) and
// is preserved exactly as parsed. The callee is a bare name, not an
// expression — Kaleido has no first-class functions.
type CallExpr struct {
	Token  Token // the callee's IDENT token
	Callee string
	Args   []Expression
}

func (c *CallExpr) expressionNode()      {}
func (c *CallExpr) TokenLiteral() string { return c.Token.Literal }
func (c *CallExpr) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", c.Callee, strings.Join(args, ", "))
}

// ── Function entities ─────────────────────────────────────────────────────────

// Prototype captures a function's interface: its name and the ordered list of
// parameter names. It has no body. Duplicate parameter names are not checked
// at this layer.
//
//	extern sin(x)      → Prototype{Name: "sin", Params: ["x"]}
//	def foo(a b) ...   → the definition's Prototype is foo(a b)
type Prototype struct {
	Token  Token // the name's IDENT token
	Name   string
	Params []string
}

func (p *Prototype) TokenLiteral() string { return p.Token.Literal }
func (p *Prototype) String() string {
	return fmt.Sprintf("%s(%s)", p.Name, strings.Join(p.Params, " "))
}

// Function is a complete function definition: a Prototype plus the single
// expression that forms its body. It is also used — with the reserved
// AnonFuncName and no parameters — to wrap bare top-level expressions, so
// every top-level construct reduces to a Function or a Prototype.
type Function struct {
	Proto *Prototype
	Body  Expression
}

func (f *Function) TokenLiteral() string { return f.Proto.TokenLiteral() }
func (f *Function) String() string {
	return fmt.Sprintf("def %s %s", f.Proto.String(), f.Body.String())
}

// IsAnon reports whether this Function is a synthetic wrapper around a bare
// top-level expression.
func (f *Function) IsAnon() bool {
	return f.Proto != nil && f.Proto.Name == AnonFuncName
}
