// Copyright (C) 2025 The jval Authors. All Rights Reserved.

package jval

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"go4.org/mem"
)

// Token is the type of a lexical token in the JSON grammar.
type Token byte

// Constants defining the valid Token values.
const (
	Invalid Token = iota // invalid token
	LBrace               // left brace "{"
	RBrace               // right brace "}"
	LSquare              // left square bracket "["
	RSquare              // right square bracket "]"
	Comma                // comma ","
	Colon                // colon ":"
	Number               // number
	String               // quoted string
	True                 // constant: true
	False                // constant: false
	Null                 // constant: null
)

var tokenStr = [...]string{
	Invalid: "invalid token",
	LBrace:  `"{"`,
	RBrace:  `"}"`,
	LSquare: `"["`,
	RSquare: `"]"`,
	Comma:   `","`,
	Colon:   `":"`,
	Number:  "number",
	String:  "string",
	True:    "true",
	False:   "false",
	Null:    "null",
}

func (t Token) String() string {
	v := int(t)
	if v >= len(tokenStr) {
		return tokenStr[Invalid]
	}
	return tokenStr[v]
}

// A Scanner reads lexical tokens from an input stream.  Each call to Next
// advances the scanner to the next token, or reports an error.
type Scanner struct {
	r   *bufio.Reader
	buf bytes.Buffer // current token
	tok Token
	err error

	pos, end int // start and end offsets of current token
	last     int // size in bytes of last-read input rune
}

// NewScanner constructs a new lexical scanner that consumes input from r.
func NewScanner(r io.Reader) *Scanner {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Scanner{r: br}
}

// Next advances s to the next token of the input, or reports an error.
// At the end of the input, Next returns io.EOF.
func (s *Scanner) Next() error {
	s.buf.Reset()
	s.err = nil
	s.tok = Invalid
	s.pos = s.end

	for {
		ch, err := s.rune()
		if err == io.EOF {
			return s.setErr(err)
		} else if err != nil {
			return s.failf("read input: %v", err)
		}

		// Discard whitespace.
		if isSpace(ch) {
			s.pos = s.end
			continue
		}

		// Handle punctuation.
		if t, ok := selfDelim(ch); ok {
			s.buf.WriteRune(ch)
			s.tok = t
			return nil
		}

		// Handle numbers.
		if isNumStart(ch) {
			return s.scanNumber(ch)
		}

		// Handle string values.
		if ch == '"' {
			return s.scanString(ch)
		}

		// Handle constants: true, false, null
		switch ch {
		case 't':
			return s.scanKeyword(ch, mem.S("true"), True)
		case 'f':
			return s.scanKeyword(ch, mem.S("false"), False)
		case 'n':
			return s.scanKeyword(ch, mem.S("null"), Null)
		default:
			return s.failf("unexpected %q", ch)
		}
	}
}

// Token returns the type of the current token.
func (s *Scanner) Token() Token { return s.tok }

// Err returns the last error reported by Next.
func (s *Scanner) Err() error { return s.err }

// Text returns the undecoded text of the current token.  The return value is
// only valid until the next call of Next. The caller must copy the contents of
// the returned slice if it is needed beyond that.
func (s *Scanner) Text() []byte { return s.buf.Bytes() }

// Copy returns a copy of the undecoded text of the current token.
func (s *Scanner) Copy() []byte { return append([]byte(nil), s.buf.Bytes()...) }

// Span returns the location span of the current token. After Next has
// returned io.EOF, the span is the empty range at the end of the input.
func (s *Scanner) Span() Span { return Span{Pos: s.pos, End: s.end} }

// scanKeyword matches the remainder of the keyword want, whose first rune
// (already consumed) is first.
func (s *Scanner) scanKeyword(first rune, want mem.RO, tok Token) error {
	s.buf.WriteRune(first)
	for i := 1; i < want.Len(); i++ {
		ch, err := s.rune()
		if err != nil {
			return s.failf("unknown constant %q", s.buf.String())
		} else if ch != rune(want.At(i)) {
			s.unrune()
			return s.failf("unknown constant %q", s.buf.String())
		}
		s.buf.WriteRune(ch)
	}
	s.tok = tok
	return nil
}

func (s *Scanner) scanString(open rune) error {
	s.buf.WriteRune(open)
	for {
		ch, err := s.rune()
		if err != nil {
			return s.failf("unterminated string")
		}
		switch ch {
		case open:
			s.buf.WriteRune(ch)
			s.tok = String
			return nil
		case '\\':
			s.buf.WriteRune(ch)
			esc, err := s.rune()
			if err != nil {
				return s.failf("unterminated string")
			}
			switch esc {
			case '"', '\\', 'b', 'f', 'n', 'r', 't':
				s.buf.WriteRune(esc)
			case 'u':
				s.buf.WriteRune(esc)
				if err := s.readHex4(); err != nil {
					return s.failf("invalid Unicode escape: %v", err)
				}
			default:
				return s.failf("invalid %q after escape", esc)
			}
		default:
			// Any other rune is taken verbatim, control characters included.
			s.buf.WriteRune(ch)
		}
	}
}

// scanNumber consumes the longest prefix of the input matching
//
//	-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?
//
// starting with the already-consumed rune start. A fractional or exponent
// part that is missing its required digits is left unconsumed rather than
// reported as an error, so "1." scans as the number 1 followed by ".".
func (s *Scanner) scanNumber(start rune) error {
	s.buf.WriteRune(start)

	first := start
	if start == '-' {
		// A leading sign requires at least one digit after it.
		ch, err := s.require(isDigit, "digit")
		if err != nil {
			return err
		}
		s.buf.WriteRune(ch)
		first = ch
	}

	// Consume the remainder of the integer part. A leading zero is the whole
	// integer part: 0.25 is OK, but 01 is two tokens.
	if first != '0' {
		s.digits()
	}

	// A decimal point is consumed only when a digit follows it.
	if b, err := s.r.Peek(2); err == nil && b[0] == '.' && isDigit(rune(b[1])) {
		ch, _ := s.rune()
		s.buf.WriteRune(ch)
		s.digits()
	}

	// Likewise an exponent marker, whose optional sign requires a digit too.
	if ok, sign := s.peekExponent(); ok {
		ch, _ := s.rune()
		s.buf.WriteRune(ch)
		if sign {
			ch, _ = s.rune()
			s.buf.WriteRune(ch)
		}
		s.digits()
	}
	s.tok = Number
	return nil
}

// digits consumes a run of ASCII digits.
func (s *Scanner) digits() {
	for {
		b, err := s.r.Peek(1)
		if err != nil || !isDigit(rune(b[0])) {
			return
		}
		ch, _ := s.rune()
		s.buf.WriteRune(ch)
	}
}

// peekExponent reports whether an exponent part follows the current position:
// an "e" or "E" marker with at least one digit after the optional sign.
// The input is not consumed.
func (s *Scanner) peekExponent() (ok, sign bool) {
	b, err := s.r.Peek(2)
	if err != nil || (b[0] != 'e' && b[0] != 'E') {
		return false, false
	}
	if isDigit(rune(b[1])) {
		return true, false
	}
	if b[1] != '+' && b[1] != '-' {
		return false, false
	}
	b, err = s.r.Peek(3)
	if err != nil || !isDigit(rune(b[2])) {
		return false, false
	}
	return true, true
}

func (s *Scanner) rune() (rune, error) {
	ch, nb, err := s.r.ReadRune()
	s.last = nb
	s.end += nb
	return ch, err
}

func (s *Scanner) unrune() {
	s.end -= s.last
	s.last = 0
	s.r.UnreadRune()
}

// require reads a single rune matching f from the input, or returns an error
// mentioning the desired label.
func (s *Scanner) require(f func(rune) bool, label string) (rune, error) {
	ch, err := s.rune()
	if err != nil {
		return 0, s.failf("want %s, got error: %v", label, err)
	} else if !f(ch) {
		s.unrune()
		return 0, s.failf("got %q, want %s", ch, label)
	}
	return ch, nil
}

// readHex4 reads exactly 4 hexadecimal digits from the input.
func (s *Scanner) readHex4() error {
	for i := 0; i < 4; i++ {
		ch, err := s.rune()
		if err != nil {
			return fmt.Errorf("want hex digit, got error: %v", err)
		} else if !isHexDigit(ch) {
			return fmt.Errorf("not a hex digit: %q", ch)
		}
		s.buf.WriteRune(ch)
	}
	return nil
}

func (s *Scanner) setErr(err error) error {
	s.err = err
	return err
}

func (s *Scanner) failf(msg string, args ...any) error {
	return s.setErr(&ParseError{
		Message: fmt.Sprintf(msg, args...),
		Span:    s.Span(),
	})
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isNumStart(ch rune) bool { return ch == '-' || isDigit(ch) }
func isDigit(ch rune) bool    { return '0' <= ch && ch <= '9' }

func isHexDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

var self = [...]Token{LBrace, RBrace, LSquare, RSquare, Comma, Colon}

func selfDelim(ch rune) (Token, bool) {
	i := strings.IndexRune("{}[],:", ch)
	if i >= 0 {
		return self[i], true
	}
	return Invalid, false
}
