// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package clarity

import "strconv"

// Bool renders a bare boolean.
func Bool(b bool) string {
	return strconv.FormatBool(b)
}

// String renders a quoted string literal.
func String(s string) string {
	return strconv.Quote(s)
}

// Ok wraps an already rendered value in a response ok.
func Ok(v string) string {
	return "(ok " + v + ")"
}

// Err wraps an already rendered value in a response err.
func Err(v string) string {
	return "(err " + v + ")"
}

// Some wraps an already rendered value in an optional.
func Some(v string) string {
	return "(some " + v + ")"
}
