// Copyright (C) 2025 The jval Authors. All Rights Reserved.

package jval

import "fmt"

// A Span describes a contiguous span of a source input.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

// A ParseError reports a lexical or structural error in the input, along with
// the span of source text it applies to. It is the concrete type of all
// errors reported by the Scanner and by the value parser in the ast package,
// apart from io.EOF at the normal end of input.
type ParseError struct {
	Message string
	Span    Span
}

// Error satisfies the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("at %d..%d: %s", e.Span.Pos, e.Span.End, e.Message)
}
