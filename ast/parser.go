// Copyright (C) 2025 The jval Authors. All Rights Reserved.

package ast

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/parsekit/jval"
)

// ParseValue parses a single JSON value from the front of src and returns
// it. In case of error, the returned error has concrete type
// [*jval.ParseError] and no value is returned.
//
// ParseValue does not check for trailing input after the value; a caller
// that requires the whole of src to be consumed must verify that itself.
func ParseValue(src string) (_ Value, err error) {
	p := &parser{sc: jval.NewScanner(strings.NewReader(src))}
	defer p.recoverParseError(&err)
	return p.parseValue(), nil
}

// A parser consumes tokens from a scanner and assembles values. Errors
// encountered during the parse are raised as *jval.ParseError panics and
// recovered at the entry point.
type parser struct {
	sc *jval.Scanner
}

func (p *parser) recoverParseError(errp *error) {
	if v := recover(); v != nil {
		if pe, ok := v.(*jval.ParseError); ok {
			*errp = pe
			return
		}
		panic(v)
	}
}

// next advances the scanner, reporting whether another token is available.
// A lexical failure aborts the parse.
func (p *parser) next() bool {
	err := p.sc.Next()
	if err == nil {
		return true
	} else if err == io.EOF {
		return false
	}
	var pe *jval.ParseError
	if !errors.As(err, &pe) {
		pe = &jval.ParseError{Message: err.Error(), Span: p.sc.Span()}
	}
	panic(pe)
}

func (p *parser) errf(span jval.Span, msg string, args ...any) *jval.ParseError {
	return &jval.ParseError{Message: fmt.Sprintf(msg, args...), Span: span}
}

// parseValue consumes exactly one value's worth of tokens starting at the
// current position.
func (p *parser) parseValue() Value {
	if !p.next() {
		panic(p.errf(p.sc.Span(), "empty value"))
	}
	return p.parseCurrent()
}

// parseCurrent converts the current token into a value, recursing into the
// container sub-parsers for "{" and "[".
func (p *parser) parseCurrent() Value {
	switch tok := p.sc.Token(); tok {
	case jval.True:
		return Bool(true)
	case jval.False:
		return Bool(false)
	case jval.Null:
		return Null{}
	case jval.Number:
		// The scanner has already vetted the lexeme; a value out of range
		// converts to an infinity rather than an error.
		v, _ := strconv.ParseFloat(string(p.sc.Text()), 64)
		return Number(v)
	case jval.String:
		return String(p.sc.Text())
	case jval.LBrace:
		return p.parseObject()
	case jval.LSquare:
		return p.parseArray()
	default:
		panic(p.errf(p.sc.Span(), "unexpected %v in value position", tok))
	}
}

// containerState tracks what a container sub-parser will accept next.
type containerState byte

const (
	atOpen     containerState = iota // a first value, or an immediate close
	afterValue                       // a separating comma, or a close
	afterComma                       // a value only
)

// isValueStart reports whether tok can begin a value.
func isValueStart(tok jval.Token) bool {
	switch tok {
	case jval.True, jval.False, jval.Null, jval.Number, jval.String, jval.LBrace, jval.LSquare:
		return true
	}
	return false
}

// parseArray consumes the elements of an array and its closing bracket.
// Precondition: the opening "[" is the current token.
func (p *parser) parseArray() Value {
	open := p.sc.Span()
	arr := Array{}
	state := atOpen
	for p.next() {
		tok := p.sc.Token()
		switch {
		case tok == jval.RSquare && state != afterComma:
			return arr
		case tok == jval.Comma && state == afterValue:
			state = afterComma
		case isValueStart(tok) && state != afterValue:
			arr = append(arr, p.parseCurrent())
			state = afterValue
		default:
			panic(p.errf(p.sc.Span(), "unexpected %v in array context", tok))
		}
	}
	panic(p.errf(open, "unmatched opening bracket"))
}

// parseObject consumes the members of an object and its closing brace.
// Precondition: the opening "{" is the current token.
func (p *parser) parseObject() Value {
	open := p.sc.Span()
	obj := Object{}
	state := atOpen
	for p.next() {
		tok := p.sc.Token()
		switch {
		case tok == jval.RBrace && state != afterComma:
			return obj
		case tok == jval.Comma && state == afterValue:
			state = afterComma
		case tok == jval.String && state != afterValue:
			key := string(p.sc.Text())
			if !p.next() {
				panic(p.errf(p.sc.Span(), `expected ":"`))
			}
			if tok := p.sc.Token(); tok != jval.Colon {
				panic(p.errf(p.sc.Span(), `expected ":", got %v`, tok))
			}
			obj[key] = p.parseValue()
			state = afterValue
		default:
			panic(p.errf(p.sc.Span(), "unexpected %v in object context", tok))
		}
	}
	panic(p.errf(open, "unmatched opening brace"))
}
