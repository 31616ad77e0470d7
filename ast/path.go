// Copyright (C) 2025 The jval Authors. All Rights Reserved.

package ast

import (
	"fmt"
	"strings"
)

// Path traverses a sequential path through the structure of a value starting
// at v, where path elements are either strings (denoting object keys) or
// integers (denoting offsets into arrays). If the path is valid, the element
// reached is returned. In case of error, the input v is returned along with
// the error.
//
// If a path element is a string, the corresponding value must be an object,
// and the string resolves an object member with that name. The key may be
// given bare or in the quoted form Object uses.
//
// If a path element is an integer, the corresponding value must be an array,
// and the integer resolves to an index in the array. Negative indices count
// backward from the end of the array (-1 is last, -2 second last, etc.).
func Path(v Value, path ...any) (Value, error) {
	cur := v
	for _, elt := range path {
		switch t := elt.(type) {
		case string:
			obj, ok := cur.(Object)
			if !ok {
				return v, fmt.Errorf("cannot traverse %T with %q", cur, t)
			}
			next, ok := obj[quoteKey(t)]
			if !ok {
				return v, fmt.Errorf("key %q not found", t)
			}
			cur = next
		case int:
			arr, ok := cur.(Array)
			if !ok {
				return v, fmt.Errorf("cannot traverse %T with %v", cur, t)
			}
			i, ok := fixArrayBound(len(arr), t)
			if !ok {
				return v, fmt.Errorf("array index %d out of bounds (n=%d)", t, len(arr))
			}
			cur = arr[i]
		default:
			return nil, fmt.Errorf("invalid path element %T", elt)
		}
	}
	return cur, nil
}

// quoteKey maps a bare member name to the quoted lexeme form Object keys
// use. A name given already quoted is used as written.
func quoteKey(key string) string {
	if len(key) >= 2 && strings.HasPrefix(key, `"`) && strings.HasSuffix(key, `"`) {
		return key
	}
	return `"` + key + `"`
}

func fixArrayBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
