// Package ast defines the token types and the Token struct used by the Kaleido
// lexer and parser.
//
// Tokens are the smallest meaningful units of a Kaleido source file. Every
// token carries its type, the exact literal text it was scanned from, and its
// source position (line + column). Position is 1-based: the first character of
// a file is Line 1, Col 1.
//
// Kaleido's token set is deliberately tiny. Apart from the two keywords and
// the literal kinds, every remaining ASCII character is passed through as a
// single-character PUNCT token — the parser decides which of those characters
// are binary operators by consulting its operator table, so a new operator can
// be introduced without touching the lexer at all.
package ast

import "fmt"

// TokenType identifies the category of a scanned token.
type TokenType int

const (
	// ILLEGAL represents input the lexer consumed but could not turn into a
	// valid token. In Kaleido the only source of ILLEGAL is a malformed
	// numeric literal such as "1.2.3"; the raw text is kept in Literal so the
	// parser can name it in a diagnostic.
	ILLEGAL TokenType = iota
	// EOF marks the end of the input stream. The parser stops when it sees EOF.
	EOF

	// ── Literals ───────────────────────────────────────────────────────────────

	// IDENT is an identifier: [a-zA-Z][a-zA-Z0-9]*
	// Identifiers that match a keyword are re-classified to their keyword type
	// by the lexer before the token is returned.
	IDENT
	// NUMBER is a floating-point literal scanned from [0-9.]+, e.g. 1, 2.5, .5.
	// The converted value is stored in Token.Value.
	NUMBER

	// ── Keywords ───────────────────────────────────────────────────────────────

	// DEF introduces a function definition: def foo(a b) a+b
	DEF
	// EXTERN declares a prototype with no body: extern sin(x)
	EXTERN

	// ── Everything else ────────────────────────────────────────────────────────

	// PUNCT is any other single ASCII character: parentheses, commas,
	// operators, and any symbol the scanner does not reserve. Literal holds
	// exactly that one character.
	PUNCT
)

var tokenNames = map[TokenType]string{
	ILLEGAL: "ILLEGAL",
	EOF:     "EOF",
	IDENT:   "IDENT",
	NUMBER:  "NUMBER",
	DEF:     "def",
	EXTERN:  "extern",
	PUNCT:   "PUNCT",
}

// String returns a stable human-readable name for the token type.
func (tt TokenType) String() string {
	if s, ok := tokenNames[tt]; ok {
		return s
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// keywords maps the literal text of every Kaleido keyword to its TokenType.
// The lexer consults this map when it finishes scanning an identifier.
var keywords = map[string]TokenType{
	"def":    DEF,
	"extern": EXTERN,
}

// LookupIdent checks whether ident is a reserved keyword and returns the
// corresponding TokenType. If ident is not a keyword, IDENT is returned.
func LookupIdent(ident string) TokenType {
	if tt, ok := keywords[ident]; ok {
		return tt
	}
	return IDENT
}

// Token is a single lexical unit produced by the Kaleido lexer.
//
// Fields:
//   - Type    — the category of this token (see TokenType constants)
//   - Literal — the exact source text that was scanned
//   - Value   — the converted numeric value, NUMBER tokens only
//   - Line    — 1-based source line number
//   - Col     — 1-based column of the first character of this token
type Token struct {
	Type    TokenType
	Literal string
	Value   float64
	Line    int
	Col     int
}

// String returns a human-readable representation of the token, useful for
// debugging and error messages.
func (t Token) String() string {
	if t.Type == EOF {
		return "end of input"
	}
	return t.Literal
}

// Char returns the character of a PUNCT token, or 0 for any other type.
func (t Token) Char() byte {
	if t.Type == PUNCT && len(t.Literal) == 1 {
		return t.Literal[0]
	}
	return 0
}

// Is reports whether the token is the given punctuation character.
func (t Token) Is(ch byte) bool {
	return t.Type == PUNCT && len(t.Literal) == 1 && t.Literal[0] == ch
}
