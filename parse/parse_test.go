// Copyright 2026 The Jtoy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jtoy.io/jtoy/config"
	"jtoy.io/jtoy/scan"
	"jtoy.io/jtoy/value"
)

// evalString evaluates one line and returns its formatted result or the
// value.Error the evaluation panicked with.
func evalString(conf *config.Config, input string) (s string, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(value.Error); ok {
			err = e
			return
		}
		panic(r)
	}()
	scanner := scan.New(conf, "test", strings.NewReader(input))
	p := NewParser("test", scanner, conf)
	noun, _ := p.Line()
	if noun == nil {
		return "", nil
	}
	return noun.String(), nil
}

func TestEval(t *testing.T) {
	for _, test := range []struct {
		input string
		want  string
	}{
		// Right to left, no precedence.
		{"2 + 3", "5"},
		{"100 - 10 - 1", "91"},
		{"2 * 3 + 4", "14"},
		{"(2 * 3) + 4", "10"},
		{"(2 + 3) * 4", "20"},
		// Monads mixed with dyads.
		{"- 5", "_5"},
		{"- 1 + 2", "_3"},
		{"1 - - 2", "3"},
		{"- - 5", "5"},
		{"# i. 7", "7"},
		{"-. 0 1 0", "1 0 1"},
		// Juxtaposition binds tighter than any verb.
		{"1 2 3", "1 2 3"},
		{"- 5 6", "_5 _6"},
		{"10 11 12 13 14 - 7", "3 4 5 6 7"},
		{"1 2 + 10 20", "11 22"},
		// Scalar extension.
		{"5 - 6 7", "_1 _2"},
		{"1 2 3 * 10", "10 20 30"},
		// Parenthesized subexpressions are single nouns.
		{"(1 2) (3 4)", "1 2 3 4"},
		{"((5))", "5"},
		{"(- 3) + 10", "7"},
		{"$ (1 2 3) 4", "4"},
		// Empty results still format.
		{"$ 7", ""},
		{"i. 0", ""},
		{"# i. 0", "0"},
		// Whole lines.
		{"", ""},
		{"NB. just a comment", ""},
		{"% 2 4 NB. trailing comment", "0.5 0.25"},
	} {
		var conf config.Config
		got, err := evalString(&conf, test.input)
		require.NoError(t, err, "input %q", test.input)
		assert.Equal(t, test.want, got, "input %q", test.input)
	}
}

func TestEvalErrors(t *testing.T) {
	for _, test := range []struct {
		input string
		kind  value.Kind
		msg   string
	}{
		{"5 -", value.Arity, "missing operand for -"},
		{"-", value.Arity, "missing operand for -"},
		{"+ 5", value.Arity, "+ has no monadic form"},
		{"2 i. 3", value.Arity, "i. has no dyadic form"},
		{"10 20 - 1 2 3", value.Length, "shapes 2 and 3 do not conform"},
		{"-. 2", value.Domain, "-. argument 2 is outside [0,1]"},
		{"i. _3", value.Domain, "i. argument _3 is negative"},
		{"(2 + 3", value.Parse, "unmatched ("},
		{"2 + 3)", value.Parse, "unmatched )"},
		{"()", value.Parse, "nothing between parentheses"},
		{"2 ?? 3", value.Lex, `unknown verb "?"`},
		{"1_000", value.Lex, `underscore inside number: "1_000"`},
	} {
		var conf config.Config
		_, err := evalString(&conf, test.input)
		require.Error(t, err, "input %q", test.input)
		e := err.(value.Error)
		assert.Equal(t, test.kind, e.Kind, "input %q", test.input)
		assert.Equal(t, e.Kind.String()+" error: "+test.msg, e.Error(), "input %q", test.input)
	}
}

func TestRecursionLimit(t *testing.T) {
	var conf config.Config
	conf.SetMaxDepth(8)

	deep := strings.Repeat("(", 8) + "5" + strings.Repeat(")", 8)
	got, err := evalString(&conf, deep)
	require.NoError(t, err)
	assert.Equal(t, "5", got)

	deeper := "(" + deep + ")"
	_, err = evalString(&conf, deeper)
	require.Error(t, err)
	assert.Equal(t, value.Recursion, err.(value.Error).Kind)
	assert.Equal(t, "recursion limit error: parentheses nested deeper than 8", err.Error())
}

// A parser survives an error on one line and keeps going on the next.
func TestParserContinuesAfterError(t *testing.T) {
	var conf config.Config
	scanner := scan.New(&conf, "test", strings.NewReader("5 -\n2 + 3\n"))
	p := NewParser("test", scanner, &conf)

	func() {
		defer func() {
			err, ok := recover().(value.Error)
			require.True(t, ok)
			assert.Equal(t, value.Arity, err.Kind)
		}()
		p.Line()
	}()

	noun, ok := p.Line()
	require.NotNil(t, noun)
	assert.True(t, ok)
	assert.Equal(t, "5", noun.String())
}
