// Copyright (C) 2025 The jval Authors. All Rights Reserved.

// Package ast defines the value tree for JSON documents, and a parser that
// constructs value trees from JSON source.
package ast

import "fmt"

// A Value is an arbitrary JSON value. The concrete types of a Value are
// Null, Bool, Number, String, Array, and Object.
type Value interface {
	isValue()
}

// Null represents the JSON null constant.
type Null struct{}

// A Bool is a Boolean constant, true or false.
type Bool bool

// A Number is a numeric value. All numbers are represented in double
// precision; a lexeme whose magnitude exceeds the representable range
// parses to an infinity.
type Number float64

// A String is a string value, stored as its raw lexeme: the surrounding
// quotation marks are retained, and backslash escapes are not decoded.
type String string

// Body returns the text of s between the quotation marks, without decoding
// any escapes it contains. It panics if s is not a quoted lexeme.
func (s String) Body() string {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		panic(fmt.Sprintf("not a quoted lexeme: %q", string(s)))
	}
	return string(s[1 : len(s)-1])
}

// An Array is a sequence of values in order of occurrence.
type Array []Value

// An Object maps member keys to values. Keys are the raw quoted lexemes of
// the member names, matching the representation of String values. When a key
// occurs multiple times in the source, the last occurrence wins.
type Object map[string]Value

func (Null) isValue()   {}
func (Bool) isValue()   {}
func (Number) isValue() {}
func (String) isValue() {}
func (Array) isValue()  {}
func (Object) isValue() {}
