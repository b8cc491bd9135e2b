package ptb

import (
	"bufio"
	"io"
	"strings"
)

// Lexer splits bracketed treebank text into a stream of tokens. Parens
// are always single-character tokens; any other run of non-whitespace
// characters is one atom. Whitespace separates tokens and is never
// itself a token.
type Lexer struct {
	r      *bufio.Reader
	file   string
	offset int
	line   int
	column int
}

// NewLexer creates a lexer reading from r. The file name is only used
// for positions in tokens and error messages and may be empty.
func NewLexer(r io.Reader, file string) *Lexer {
	return &Lexer{
		r:      bufio.NewReader(r),
		file:   file,
		offset: 0,
		line:   1,
		column: 1,
	}
}

// Position returns the current position in the input.
func (l *Lexer) Position() Position {
	return Position{
		File:   l.file,
		Offset: l.offset,
		Line:   l.line,
		Column: l.column,
	}
}

func (l *Lexer) peek() (byte, bool) {
	buf, err := l.r.Peek(1)
	if err != nil {
		return 0, false
	}
	return buf[0], true
}

func (l *Lexer) advance() byte {
	ch, err := l.r.ReadByte()
	if err != nil {
		return 0
	}
	l.offset++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

func (l *Lexer) skipWhitespace() {
	for {
		ch, ok := l.peek()
		if !ok || !isSpace(ch) {
			return
		}
		l.advance()
	}
}

// NextToken returns the next token from the input. At end of input it
// returns an EOF token together with io.EOF.
func (l *Lexer) NextToken() (Token, error) {
	l.skipWhitespace()

	start := l.Position()
	ch, ok := l.peek()
	if !ok {
		return Token{Kind: TokenEOF, Pos: start}, io.EOF
	}

	switch ch {
	case '(':
		l.advance()
		return Token{Kind: TokenOpen, Literal: "(", Pos: start}, nil
	case ')':
		l.advance()
		return Token{Kind: TokenClose, Literal: ")", Pos: start}, nil
	}

	return l.scanAtom(start), nil
}

func (l *Lexer) scanAtom(start Position) Token {
	var b strings.Builder
	for {
		ch, ok := l.peek()
		if !ok || isSpace(ch) || ch == '(' || ch == ')' {
			break
		}
		b.WriteByte(l.advance())
	}
	return Token{Kind: TokenAtom, Literal: b.String(), Pos: start}
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == '\v' || ch == '\f'
}
