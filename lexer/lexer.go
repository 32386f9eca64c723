// Package lexer implements the Kaleido language lexer (tokeniser).
//
// The lexer converts a stream of Kaleido source characters into a stream of
// [ast.Token] values. Call [New] (or [NewString]) to create a lexer and then
// call [Lexer.NextToken] repeatedly until you receive a token with
// Type == [ast.EOF].
//
// Design notes:
//   - Character-by-character scanning over an io.Reader with exactly one
//     character of retained lookahead — the lexer never backtracks, which is
//     what lets it run over an interactive stream like stdin.
//   - No global state; every [Lexer] is independent.
//   - Line and column numbers are tracked for every token (1-based).
//   - Comments (# …) are consumed silently — no token is emitted, even for a
//     comment on the last line with no trailing newline.
//   - Identifiers are scanned first and then classified as keywords via
//     [ast.LookupIdent]; this keeps the scanning loop free of keyword checks.
//   - Classification is ASCII-only: bytes outside the letter/digit ranges are
//     emitted as single-character PUNCT tokens for the parser to judge.
package lexer

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/metaphox/kaleido-lang/ast"
)

// Lexer holds all state required to tokenise a single Kaleido source stream.
// Create one with [New]; never copy a Lexer after first use.
type Lexer struct {
	r   *bufio.Reader
	ch  byte // current character under examination
	eof bool // input exhausted; ch is no longer meaningful

	line int // current 1-based line number
	col  int // 1-based column of ch
}

// New creates a [Lexer] that tokenises the given reader.
// The lexer is positioned at the first character; call [Lexer.NextToken]
// immediately to begin scanning.
func New(r io.Reader) *Lexer {
	l := &Lexer{
		r:    bufio.NewReader(r),
		line: 1,
		col:  0,
	}
	l.readChar() // prime: set l.ch to the first character
	return l
}

// NewString creates a [Lexer] over an in-memory source string.
func NewString(input string) *Lexer {
	return New(strings.NewReader(input))
}

// NextToken returns the next token from the input.
//
// Whitespace (spaces, tabs, carriage returns, newlines) is skipped before each
// token. Comments (# …) are also skipped entirely. When the input is
// exhausted, NextToken returns a token with Type == [ast.EOF] on every
// subsequent call.
func (l *Lexer) NextToken() ast.Token {
	l.skipWhitespaceAndComments()

	if l.eof {
		return ast.Token{Type: ast.EOF, Line: l.line, Col: l.col}
	}

	switch {
	// ── Identifiers and keywords: [a-zA-Z][a-zA-Z0-9]* ──────────────────────
	case isLetter(l.ch):
		return l.readIdentifier()

	// ── Numbers: a maximal run of digits and dots ───────────────────────────
	case isDigit(l.ch) || l.ch == '.':
		return l.readNumber()

	// ── Everything else is a single-character punctuation token ─────────────
	default:
		tok := l.makeToken(ast.PUNCT, string(l.ch))
		l.readChar() // advance past the punctuation character
		return tok
	}
}

// ── Internal helpers ──────────────────────────────────────────────────────────

// readChar advances the lexer by one character.
// When the input is exhausted l.eof is set and l.ch becomes 0.
// Line and column counters are updated here; col is 1-based.
func (l *Lexer) readChar() {
	b, err := l.r.ReadByte()
	if err != nil {
		// Treat any read failure as end of input; a parser session covers one
		// stream and there is nothing sensible to resume after a broken read.
		l.ch = 0
		l.eof = true
		l.col++
		return
	}
	l.ch = b

	// Track position. Newlines bump the line counter and reset the column.
	if l.ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
}

// makeToken constructs a token at the current source position with the given
// type and literal string.
// It does NOT advance the cursor — the caller is responsible for calling
// readChar after constructing single-character tokens.
func (l *Lexer) makeToken(tt ast.TokenType, literal string) ast.Token {
	return ast.Token{Type: tt, Literal: literal, Line: l.line, Col: l.col}
}

// skipWhitespaceAndComments advances past all whitespace characters and any
// line comments (# … \n) before the next meaningful token. A comment that
// ends at EOF rather than a newline is skipped all the same.
func (l *Lexer) skipWhitespaceAndComments() {
	for !l.eof {
		switch l.ch {
		case ' ', '\t', '\r', '\n':
			l.readChar()
		case '#':
			for !l.eof && l.ch != '\n' {
				l.readChar()
			}
		default:
			return
		}
	}
}

// readIdentifier scans an identifier or keyword starting at the current
// position. It returns the token directly (NextToken performs no trailing
// readChar for it): on return the cursor is already positioned on the first
// character after the identifier.
func (l *Lexer) readIdentifier() ast.Token {
	startCol := l.col
	startLine := l.line

	var buf []byte
	for !l.eof && (isLetter(l.ch) || isDigit(l.ch)) {
		buf = append(buf, l.ch)
		l.readChar()
	}

	literal := string(buf)
	tt := ast.LookupIdent(literal)
	return ast.Token{Type: tt, Literal: literal, Line: startLine, Col: startCol}
}

// readNumber scans a floating-point literal: a maximal run of digits and '.'
// characters, converted with strconv.ParseFloat. A run the conversion rejects
// (for example "1.2.3" or a lone ".") yields an ILLEGAL token carrying the raw
// text — malformed numbers are rejected explicitly rather than silently
// truncated.
//
// Like readIdentifier, this returns directly; the cursor is already on the
// first character that is neither a digit nor a dot.
func (l *Lexer) readNumber() ast.Token {
	startCol := l.col
	startLine := l.line

	var buf []byte
	for !l.eof && (isDigit(l.ch) || l.ch == '.') {
		buf = append(buf, l.ch)
		l.readChar()
	}

	literal := string(buf)
	val, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return ast.Token{Type: ast.ILLEGAL, Literal: literal, Line: startLine, Col: startCol}
	}
	return ast.Token{Type: ast.NUMBER, Literal: literal, Value: val, Line: startLine, Col: startCol}
}

// isLetter reports whether b can start or continue an identifier.
// Kaleido identifiers follow the pattern [a-zA-Z][a-zA-Z0-9]*.
func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z')
}

// isDigit reports whether b is an ASCII decimal digit (0–9).
func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
