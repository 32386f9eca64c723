// Package parser implements the Kaleido recursive-descent parser.
//
// The parser reads a token stream from a [lexer.Lexer] and builds [ast] nodes.
// Expression parsing uses operator-precedence climbing so that precedence
// rules live in a small table ([OpTable]) rather than a tangle of grammar
// rules; the parser itself is operator-agnostic.
//
// Usage:
//
//	l := lexer.NewString(source)
//	p := parser.New(l)
//	fn, err := p.ParseDefinition() // or ParseExtern / ParseTopLevelExpr
//
// Every parse function is entered with the current token being the first
// token of its construct and, on success, exits with the current token being
// the first token after it. On failure an [*Error] is returned and the
// current-token position is wherever the failure left it — the parser does
// not resynchronize. Recovery (skip one token, retry the next top-level
// construct) is the driver's job, and the current token stays coherent so
// that works.
package parser

import (
	"github.com/metaphox/kaleido-lang/ast"
	"github.com/metaphox/kaleido-lang/lexer"
)

// maxDepth caps expression nesting (parentheses and call arguments). Beyond
// it the parser fails with a diagnostic instead of growing the call stack
// without bound on hostile input.
const maxDepth = 512

// Parser holds all state needed to parse one Kaleido token stream: the lexer,
// a single token of lookahead, and the session's operator table. Create one
// with [New] or [NewWithOps]; a Parser covers exactly one input stream and is
// not safe for concurrent use.
type Parser struct {
	l   *lexer.Lexer
	cur ast.Token // current token: fetched from the lexer, not yet consumed
	ops OpTable
}

// New creates a Parser over l with the default operator set.
func New(l *lexer.Lexer) *Parser {
	return NewWithOps(l, DefaultOps())
}

// NewWithOps creates a Parser over l using the given operator table. The
// table is used as-is (not copied), so operators registered on it later are
// visible to this session — the mechanism by which new operators extend the
// grammar without touching parser logic.
func NewWithOps(l *lexer.Lexer, ops OpTable) *Parser {
	p := &Parser{l: l, ops: ops}
	p.Advance() // prime the single-token lookahead
	return p
}

// Current returns the current token. The driver dispatches on it to decide
// which top-level construct to parse next.
func (p *Parser) Current() ast.Token { return p.cur }

// Advance consumes the current token and fetches the next one. Exported so
// the driver can skip a token when recovering from a parse error.
func (p *Parser) Advance() {
	p.cur = p.l.NextToken()
}

// Ops returns the session's operator table.
func (p *Parser) Ops() OpTable { return p.ops }

// curPrecedence returns the binding power of the current token when it is a
// registered binary operator.
func (p *Parser) curPrecedence() (int, bool) {
	if p.cur.Type != ast.PUNCT {
		return 0, false
	}
	return p.ops.Precedence(p.cur.Char())
}

// ── Top-level constructs ──────────────────────────────────────────────────────

// ParseDefinition parses `def prototype expression` and returns the function.
// The current token must be the `def` keyword.
func (p *Parser) ParseDefinition() (*ast.Function, error) {
	if p.cur.Type != ast.DEF {
		return nil, errorf(p.cur, "expected 'def', found %s", p.cur)
	}
	p.Advance() // consume 'def'

	proto, err := p.parsePrototype()
	if err != nil {
		return nil, err
	}
	body, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	return &ast.Function{Proto: proto, Body: body}, nil
}

// ParseExtern parses `extern prototype` and returns the prototype alone —
// an extern declaration has no body. The current token must be the `extern`
// keyword.
func (p *Parser) ParseExtern() (*ast.Prototype, error) {
	if p.cur.Type != ast.EXTERN {
		return nil, errorf(p.cur, "expected 'extern', found %s", p.cur)
	}
	p.Advance() // consume 'extern'
	return p.parsePrototype()
}

// ParseTopLevelExpr parses one bare expression and wraps it in a synthetic
// zero-parameter [ast.Function] named [ast.AnonFuncName], so that every
// top-level construct reduces to a function or a prototype.
func (p *Parser) ParseTopLevelExpr() (*ast.Function, error) {
	tok := p.cur
	body, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	proto := &ast.Prototype{Token: tok, Name: ast.AnonFuncName}
	return &ast.Function{Proto: proto, Body: body}, nil
}

// ParseExpression parses a single expression. Intended for tests and tools;
// the driver goes through the top-level entry points above.
func (p *Parser) ParseExpression() (ast.Expression, error) {
	return p.parseExpression(0)
}

// ── Expression grammar ────────────────────────────────────────────────────────

// parseExpression parses `primary binoprhs`. depth counts expression nesting
// and is bumped wherever the grammar recurses through parentheses or argument
// lists.
func (p *Parser) parseExpression(depth int) (ast.Expression, error) {
	if depth > maxDepth {
		return nil, errorf(p.cur, "expression too deeply nested (limit %d)", maxDepth)
	}
	lhs, err := p.parsePrimary(depth)
	if err != nil {
		return nil, err
	}
	return p.parseBinOpRHS(depth, 0, lhs)
}

// parsePrimary dispatches on the current token:
//
//	primary ::= identifierexpr | numberexpr | parenexpr
func (p *Parser) parsePrimary(depth int) (ast.Expression, error) {
	switch p.cur.Type {
	case ast.IDENT:
		return p.parseIdentifierExpr(depth)
	case ast.NUMBER:
		tok := p.cur
		p.Advance() // consume the number
		return &ast.NumberLiteral{Token: tok, Value: tok.Value}, nil
	case ast.ILLEGAL:
		return nil, errorf(p.cur, "malformed number literal %q", p.cur.Literal)
	case ast.PUNCT:
		if p.cur.Is('(') {
			return p.parseParenExpr(depth)
		}
	}
	return nil, errorf(p.cur, "expected an expression, found %s", p.cur)
}

// parseIdentifierExpr parses either a bare variable reference or, when the
// name is immediately followed by '(', a call:
//
//	identifierexpr ::= identifier
//	                 | identifier '(' expression (',' expression)* ')'
func (p *Parser) parseIdentifierExpr(depth int) (ast.Expression, error) {
	tok := p.cur
	p.Advance() // consume the identifier

	if !p.cur.Is('(') {
		return &ast.VariableRef{Token: tok, Name: tok.Literal}, nil
	}
	p.Advance() // consume '('

	var args []ast.Expression
	if !p.cur.Is(')') {
		for {
			arg, err := p.parseExpression(depth + 1)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)

			if p.cur.Is(')') {
				break
			}
			if !p.cur.Is(',') {
				return nil, errorf(p.cur, "expected ')' or ',' in argument list, found %s", p.cur)
			}
			p.Advance() // consume ','
		}
	}
	p.Advance() // consume ')'

	return &ast.CallExpr{Token: tok, Callee: tok.Literal, Args: args}, nil
}

// parseParenExpr parses `'(' expression ')'` and returns the inner expression
// unwrapped — parentheses only steer the parse and are not represented in
// the tree.
func (p *Parser) parseParenExpr(depth int) (ast.Expression, error) {
	p.Advance() // consume '('

	inner, err := p.parseExpression(depth + 1)
	if err != nil {
		return nil, err
	}
	if !p.cur.Is(')') {
		return nil, errorf(p.cur, "expected ')', found %s", p.cur)
	}
	p.Advance() // consume ')'
	return inner, nil
}

// parseBinOpRHS extends lhs with every pending `op primary` pair whose
// operator binds at least as tightly as minPrec. When the operator after a
// freshly parsed right-hand side binds strictly tighter than the current one,
// that right-hand side is first extended recursively at the tighter level,
// which yields correct nesting for unequal precedence and left-associative
// grouping for equal precedence. The loop returns lhs as soon as the current
// token is not a registered operator or binds too loosely — that is how a
// binary chain ends, not an error.
func (p *Parser) parseBinOpRHS(depth, minPrec int, lhs ast.Expression) (ast.Expression, error) {
	for {
		prec, ok := p.curPrecedence()
		if !ok || prec < minPrec {
			return lhs, nil
		}

		opTok := p.cur
		p.Advance() // consume the operator

		rhs, err := p.parsePrimary(depth)
		if err != nil {
			return nil, err
		}

		// If the next operator binds tighter, it takes rhs as ITS lhs.
		if nextPrec, nextOK := p.curPrecedence(); nextOK && prec < nextPrec {
			rhs, err = p.parseBinOpRHS(depth, prec+1, rhs)
			if err != nil {
				return nil, err
			}
		}

		lhs = &ast.BinaryExpr{Token: opTok, Op: opTok.Char(), Left: lhs, Right: rhs}
	}
}

// ── Prototype grammar ─────────────────────────────────────────────────────────

// parsePrototype parses a function interface:
//
//	prototype ::= identifier '(' identifier* ')'
//
// Parameter names are whitespace-separated — no commas, matching the def and
// extern forms: def foo(a b) a+b.
func (p *Parser) parsePrototype() (*ast.Prototype, error) {
	if p.cur.Type != ast.IDENT {
		return nil, errorf(p.cur, "expected function name in prototype, found %s", p.cur)
	}
	nameTok := p.cur
	p.Advance() // consume the name

	if !p.cur.Is('(') {
		return nil, errorf(p.cur, "expected '(' in prototype, found %s", p.cur)
	}

	var params []string
	for p.Advance(); p.cur.Type == ast.IDENT; p.Advance() {
		params = append(params, p.cur.Literal)
	}
	if !p.cur.Is(')') {
		return nil, errorf(p.cur, "expected ')' in prototype, found %s", p.cur)
	}
	p.Advance() // consume ')'

	return &ast.Prototype{Token: nameTok, Name: nameTok.Literal, Params: params}, nil
}
