// Copyright 2026 The Jtoy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package value implements the data model of the interpreter: extended
// numbers, nouns (atoms and flat lists), the primitive verb table, and
// the error type shared by the scanner and evaluator.
//
// Verb implementations and helpers in this package report problems by
// panicking with an Error. The panic is recovered at the run package's
// public boundary and surfaced as an ordinary error value; no input can
// terminate the process.
package value

import "fmt"

// Kind classifies an evaluation error.
type Kind int

const (
	Lex       Kind = iota // malformed literal or unrecognized character
	Parse                 // unmatched parenthesis or invalid token sequence
	Arity                 // verb used in a form it does not support
	Length                // dyadic operands of differing length
	Domain                // operand outside a primitive's domain
	Recursion             // parenthesis nesting exceeds the configured bound
)

func (k Kind) String() string {
	switch k {
	case Lex:
		return "lex"
	case Parse:
		return "parse"
	case Arity:
		return "arity"
	case Length:
		return "length"
	case Domain:
		return "domain"
	case Recursion:
		return "recursion limit"
	}
	return "unknown"
}

// Error is an evaluation error. Its Error method is the stable,
// user-facing message shown by the REPL and the markdown rewriter.
type Error struct {
	Kind Kind
	Msg  string
}

func (e Error) Error() string {
	return e.Kind.String() + " error: " + e.Msg
}

// Errorf builds an Error of the given kind.
func Errorf(kind Kind, format string, args ...interface{}) Error {
	return Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
