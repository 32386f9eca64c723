// Package repl implements the Kaleido top-level driver: the loop that reads
// one top-level construct at a time (definition, extern declaration, or bare
// expression), hands successfully parsed trees to a [Handler], and recovers
// from parse errors by discarding a single token and resuming.
//
// The driver is the only component that prints. Parse failures arrive as
// values ([*parser.Error]) and are reported here; a malformed construct never
// corrupts parsing of the constructs that follow it.
package repl

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/metaphox/kaleido-lang/ast"
	"github.com/metaphox/kaleido-lang/lexer"
	"github.com/metaphox/kaleido-lang/parser"
)

// Handler consumes successfully parsed top-level constructs. The handler
// assumes ownership of each tree it receives; the driver keeps no reference.
type Handler interface {
	// Definition receives a parsed `def` function.
	Definition(fn *ast.Function)
	// Extern receives a parsed `extern` prototype (no body).
	Extern(proto *ast.Prototype)
	// Expression receives a bare top-level expression wrapped in a synthetic
	// anonymous function.
	Expression(fn *ast.Function)
}

// LogHandler is the default [Handler]: it writes a one-line acknowledgement
// per construct, which is all an AST-only frontend has to say.
type LogHandler struct {
	W io.Writer
}

func (h LogHandler) Definition(fn *ast.Function) {
	fmt.Fprintf(h.W, "Parsed a function definition: %s\n", fn.Proto.String())
}

func (h LogHandler) Extern(proto *ast.Prototype) {
	fmt.Fprintf(h.W, "Parsed an extern: %s\n", proto.String())
}

func (h LogHandler) Expression(fn *ast.Function) {
	fmt.Fprintf(h.W, "Parsed a top-level expression: %s\n", fn.Body.String())
}

// errColor highlights diagnostics when the output supports it; fatih/color
// degrades to plain text on non-terminal writers.
var errColor = color.New(color.FgRed)

// REPL drives one parser session over one input stream.
type REPL struct {
	p      *parser.Parser
	h      Handler
	out    io.Writer
	prompt string
}

// New creates a driver over r with the default operator set.
// Parsed trees go to h; the prompt and diagnostics go to out.
func New(r io.Reader, h Handler, out io.Writer) *REPL {
	return NewWithOps(r, h, out, parser.DefaultOps())
}

// NewWithOps is [New] with an explicit operator table, letting callers
// register extra binary operators (see [LoadOpConfig]) before any parsing
// happens.
func NewWithOps(r io.Reader, h Handler, out io.Writer, ops parser.OpTable) *REPL {
	return &REPL{
		p:   parser.NewWithOps(lexer.New(r), ops),
		h:   h,
		out: out,
	}
}

// SetPrompt sets the interactive prompt. An empty prompt (the default)
// disables prompt printing, which is what file-driven runs want.
func (r *REPL) SetPrompt(prompt string) { r.prompt = prompt }

// Run processes top-level constructs until end of input and returns the
// number of constructs that failed to parse.
//
// Dispatch follows the leading token: `def` and `extern` keywords select
// their construct, a top-level `;` is skipped (it separates constructs in
// interactive use), and anything else is parsed as a bare expression. On a
// parse error the diagnostic is reported, exactly one token is discarded,
// and the loop resumes — the parser's current-token state stays coherent
// across failures.
func (r *REPL) Run() int {
	failures := 0
	r.showPrompt()

	for {
		tok := r.p.Current()
		switch {
		case tok.Type == ast.EOF:
			if r.prompt != "" {
				fmt.Fprintln(r.out)
			}
			return failures

		case tok.Is(';'):
			r.p.Advance()
			r.showPrompt()

		case tok.Type == ast.DEF:
			fn, err := r.p.ParseDefinition()
			if err != nil {
				failures++
				r.recover(err)
				continue
			}
			r.h.Definition(fn)

		case tok.Type == ast.EXTERN:
			proto, err := r.p.ParseExtern()
			if err != nil {
				failures++
				r.recover(err)
				continue
			}
			r.h.Extern(proto)

		default:
			fn, err := r.p.ParseTopLevelExpr()
			if err != nil {
				failures++
				r.recover(err)
				continue
			}
			r.h.Expression(fn)
		}
	}
}

// recover reports a diagnostic and discards one token so the next iteration
// starts on fresh input.
func (r *REPL) recover(err error) {
	errColor.Fprintf(r.out, "error: %v\n", err)
	r.p.Advance()
}

func (r *REPL) showPrompt() {
	if r.prompt != "" {
		fmt.Fprint(r.out, r.prompt)
	}
}
