// Copyright (C) 2025 The jval Authors. All Rights Reserved.

package ast_test

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/parsekit/jval"
	"github.com/parsekit/jval/ast"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		input string
		want  ast.Value
	}{
		// Scalars
		{`null`, ast.Null{}},
		{`true`, ast.Bool(true)},
		{`false`, ast.Bool(false)},
		{`0`, ast.Number(0)},
		{`-1`, ast.Number(-1)},
		{`0.25`, ast.Number(0.25)},
		{`-15.25e2`, ast.Number(-1525)},
		{`3E-2`, ast.Number(0.03)},

		// Strings keep their quotes and escapes exactly as written.
		{`""`, ast.String(`""`)},
		{`"a b c"`, ast.String(`"a b c"`)},
		{`"a\tb c"`, ast.String(`"a\tb c"`)},

		// Arrays
		{`[]`, ast.Array{}},
		{`[1,2,3]`, ast.Array{ast.Number(1), ast.Number(2), ast.Number(3)}},
		{`[true, [null], "x"]`, ast.Array{
			ast.Bool(true),
			ast.Array{ast.Null{}},
			ast.String(`"x"`),
		}},

		// Objects; keys are quoted lexemes, and the last occurrence wins.
		{`{}`, ast.Object{}},
		{`{"a":1}`, ast.Object{`"a"`: ast.Number(1)}},
		{`{"a":1,"a":2}`, ast.Object{`"a"`: ast.Number(2)}},
		{`{"a":{"b":[{}]}}`, ast.Object{
			`"a"`: ast.Object{`"b"`: ast.Array{ast.Object{}}},
		}},

		// Insignificant whitespace
		{"\t[ 1 ,\r\n { \"k\" : null } ]\n", ast.Array{
			ast.Number(1),
			ast.Object{`"k"`: ast.Null{}},
		}},

		// A gigantic exponent silently converts to an infinity.
		{`1e999`, ast.Number(math.Inf(1))},
		{`-1e999`, ast.Number(math.Inf(-1))},

		// Input after the first complete value is not examined.
		{`07`, ast.Number(0)},
		{`truex`, ast.Bool(true)},
		{`[] 5`, ast.Array{}},
	}

	for _, test := range tests {
		got, err := ast.ParseValue(test.input)
		if err != nil {
			t.Errorf("ParseValue(%#q): unexpected error: %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("ParseValue(%#q): (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestParseValueErrors(t *testing.T) {
	tests := []struct {
		input string
		want  string
		span  jval.Span
	}{
		// A value was required but no token remains.
		{``, "empty value", jval.Span{Pos: 0, End: 0}},
		{`   `, "empty value", jval.Span{Pos: 3, End: 3}},
		{`{"a":`, "empty value", jval.Span{Pos: 5, End: 5}},

		// Structural tokens where a value is expected.
		{`]`, `unexpected "]" in value position`, jval.Span{Pos: 0, End: 1}},
		{`,`, `unexpected "," in value position`, jval.Span{Pos: 0, End: 1}},
		{`:`, `unexpected ":" in value position`, jval.Span{Pos: 0, End: 1}},
		{`{"a":}`, `unexpected "}" in value position`, jval.Span{Pos: 5, End: 6}},

		// Array context: trailing and doubled commas, missing separators.
		{`[1,]`, `unexpected "]" in array context`, jval.Span{Pos: 3, End: 4}},
		{`[,]`, `unexpected "," in array context`, jval.Span{Pos: 1, End: 2}},
		{`[1,,2]`, `unexpected "," in array context`, jval.Span{Pos: 3, End: 4}},
		{`[1 2]`, `unexpected number in array context`, jval.Span{Pos: 3, End: 4}},
		{`[1:2]`, `unexpected ":" in array context`, jval.Span{Pos: 2, End: 3}},
		{`{"a":[1,}`, `unexpected "}" in array context`, jval.Span{Pos: 8, End: 9}},

		// Object context.
		{`{,}`, `unexpected "," in object context`, jval.Span{Pos: 1, End: 2}},
		{`{1:2}`, `unexpected number in object context`, jval.Span{Pos: 1, End: 2}},
		{`{"a":1,}`, `unexpected "}" in object context`, jval.Span{Pos: 7, End: 8}},
		{`{"a":1 "b":2}`, `unexpected string in object context`, jval.Span{Pos: 7, End: 10}},
		{`{[]}`, `unexpected "[" in object context`, jval.Span{Pos: 1, End: 2}},

		// Missing key separator; at end of stream the span is empty.
		{`{"a" 1}`, `expected ":", got number`, jval.Span{Pos: 5, End: 6}},
		{`{"a","b"}`, `expected ":", got ","`, jval.Span{Pos: 4, End: 5}},
		{`{"a"`, `expected ":"`, jval.Span{Pos: 4, End: 4}},

		// Unterminated containers point at the opening delimiter.
		{`[`, "unmatched opening bracket", jval.Span{Pos: 0, End: 1}},
		{`[1,2`, "unmatched opening bracket", jval.Span{Pos: 0, End: 1}},
		{`[[]`, "unmatched opening bracket", jval.Span{Pos: 0, End: 1}},
		{`{`, "unmatched opening brace", jval.Span{Pos: 0, End: 1}},
		{`{"a":1`, "unmatched opening brace", jval.Span{Pos: 0, End: 1}},
		{` [ {"a": [1`, "unmatched opening bracket", jval.Span{Pos: 9, End: 10}},

		// Lexical failures surface with the scanner's span.
		{`[nul]`, `unknown constant "nul"`, jval.Span{Pos: 1, End: 4}},
		{`{"a":@}`, `unexpected '@'`, jval.Span{Pos: 5, End: 6}},
		{`"over`, "unterminated string", jval.Span{Pos: 0, End: 5}},
	}

	for _, test := range tests {
		v, err := ast.ParseValue(test.input)
		if err == nil {
			t.Errorf("ParseValue(%#q): got %+v, want error", test.input, v)
			continue
		}
		pe, ok := err.(*jval.ParseError)
		if !ok {
			t.Errorf("ParseValue(%#q): error has type %T, want *jval.ParseError", test.input, err)
			continue
		}
		if pe.Message != test.want || pe.Span != test.span {
			t.Errorf("ParseValue(%#q):\nGot:  (%q, %+v)\nWant: (%q, %+v)",
				test.input, pe.Message, pe.Span, test.want, test.span)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		`null`,
		`-0.125`,
		`"free your \t mind"`,
		`[]`,
		`[1,2.5,[true,[null]],"x"]`,
		`{"a":[1,2.5,{"b":null}],"c":"x y","d":{}}`,
		`{"values":[5,10,true],"page":{"token":"xyz-pdq-zvm","count":100}}`,
	}
	for _, input := range inputs {
		v1, err := ast.ParseValue(input)
		if err != nil {
			t.Errorf("ParseValue(%#q): unexpected error: %v", input, err)
			continue
		}
		text := canon(v1)
		v2, err := ast.ParseValue(text)
		if err != nil {
			t.Errorf("ParseValue(%#q): unexpected error: %v", text, err)
			continue
		}
		if diff := cmp.Diff(v1, v2); diff != "" {
			t.Errorf("Input: %#q\nRebuilt: %#q\nValues: (-first, +second)\n%s", input, text, diff)
		}
	}
}

// canon rebuilds a textual form of v. Object members are emitted in sorted
// key order so the result is deterministic; it need not be byte-identical to
// the original source, only parse to the same tree.
func canon(v ast.Value) string {
	switch t := v.(type) {
	case ast.Null:
		return "null"
	case ast.Bool:
		return strconv.FormatBool(bool(t))
	case ast.Number:
		return strconv.FormatFloat(float64(t), 'g', -1, 64)
	case ast.String:
		return string(t)
	case ast.Array:
		parts := make([]string, len(t))
		for i, e := range t {
			parts[i] = canon(e)
		}
		return "[" + strings.Join(parts, ",") + "]"
	case ast.Object:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + ":" + canon(t[k])
		}
		return "{" + strings.Join(parts, ",") + "}"
	}
	panic("unknown value")
}
