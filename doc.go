// Copyright (C) 2025 The jval Authors. All Rights Reserved.

// Package jval implements a lexical scanner for JSON values.
//
// # Scanning
//
// The Scanner type implements a lexical scanner for JSON.  Construct a scanner
// from an io.Reader and call its Next method to iterate over the stream. Next
// advances to the next input token and returns nil, or reports an error:
//
//	s := jval.NewScanner(input)
//	for s.Next() == nil {
//	   log.Printf("Next token: %v", s.Token())
//	}
//
// Next returns io.EOF when the input has been fully consumed. Any other error
// indicates an I/O or lexical error in the input:
//
//	if s.Err() != io.EOF {
//	   log.Fatalf("Scanning failed: %v", s.Err())
//	}
//
// Each token carries a byte-offset Span into the source, and its undecoded
// text is available from the Text method until the next call of Next. String
// tokens keep their surrounding quotation marks and any backslash escapes
// exactly as written; the scanner validates escapes but never decodes them.
//
// # Errors
//
// Lexical failures are reported as errors of concrete type [*ParseError],
// carrying a message and the span of the offending input. The same type is
// used by the value parser in the ast subpackage, so a caller holds one error
// shape for the whole pipeline:
//
//	v, err := ast.ParseValue(text)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err) // e.g. "at 4..5: unexpected ','"
//	}
package jval
