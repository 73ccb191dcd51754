// Copyright 2026 The Jtoy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jtoy.io/jtoy/config"
)

// tokenize scans all of input and returns "Type text" descriptions of
// the tokens up to EOF.
func tokenize(input string) []string {
	var conf config.Config
	s := New(&conf, "test", strings.NewReader(input))
	var toks []string
	for {
		tok := s.Next()
		if tok.Type == EOF {
			return toks
		}
		toks = append(toks, tok.Type.String()+" "+tok.Text)
		if tok.Type == Error {
			return toks
		}
	}
}

func TestScanner(t *testing.T) {
	for _, test := range []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"2 + 2", []string{"Number 2", "Verb +", "Number 2"}},
		{"1 2 3", []string{"Number 1", "Number 2", "Number 3"}},
		{"_5", []string{"Number _5"}},
		{"_ __", []string{"Number _", "Number __"}},
		{"2e_4", []string{"Number 2e_4"}},
		{"-5", []string{"Verb -", "Number 5"}},
		{"-.5", []string{"Verb -.", "Number 5"}},
		{"-.", []string{"Verb -."}},
		{"i.5", []string{"Verb i.", "Number 5"}},
		{"i. 5", []string{"Verb i.", "Number 5"}},
		{"#$%*", []string{"Verb #", "Verb $", "Verb %", "Verb *"}},
		{"(2+3)*4", []string{"LeftParen (", "Number 2", "Verb +", "Number 3", "RightParen )", "Verb *", "Number 4"}},
		{"\t 2  +\t3 ", []string{"Number 2", "Verb +", "Number 3"}},
		{"2\n3", []string{"Number 2", "Newline \n", "Number 3"}},
		{"2\r\n3", []string{"Number 2", "Newline \n", "Number 3"}},
		{"2 + 2 NB. a comment + 3", []string{"Number 2", "Verb +", "Number 2"}},
		{"NB. nothing here\n", []string{"Newline \n"}},
		{"5 NB.no space needed", []string{"Number 5"}},
	} {
		assert.Equal(t, test.want, tokenize(test.input), "input %q", test.input)
	}
}

func TestScannerErrors(t *testing.T) {
	for _, test := range []struct {
		input string
		want  string
	}{
		{"?", `unknown verb "?"`},
		{"2 ?? 3", `unknown verb "?"`},
		{"x", "unrecognized character U+0078 'x'"},
		{"N", "unrecognized character U+004E 'N'"},
		{"NB", "unrecognized character U+004E 'N'"},
		{"1_000", `underscore inside number: "1_000"`},
		{"___", `bad number syntax: "___"`},
		{"1.2.3", `bad number syntax: "1.2.3"`},
		{"5x", "unrecognized character U+0078 'x'"},
	} {
		toks := tokenize(test.input)
		require.NotEmpty(t, toks, "input %q", test.input)
		last := toks[len(toks)-1]
		assert.Equal(t, "Error "+test.want, last, "input %q", test.input)
	}
}

// An error empties the pending line; scanning resumes cleanly on the
// next one.
func TestScannerRecovery(t *testing.T) {
	var conf config.Config
	s := New(&conf, "test", strings.NewReader("2 ?? 3\n4 + 5\n"))
	var seen []Type
	for {
		tok := s.Next()
		seen = append(seen, tok.Type)
		if tok.Type == EOF {
			break
		}
	}
	assert.Equal(t, []Type{Number, Error, Number, Verb, Number, Newline, EOF}, seen)
}

func TestScannerLineNumbers(t *testing.T) {
	var conf config.Config
	s := New(&conf, "test", strings.NewReader("1\n2\n3\n"))
	want := []int{1, 1, 2, 2, 3, 3}
	for i, line := range want {
		tok := s.Next()
		assert.Equal(t, line, tok.Line, "token %d", i)
	}
	assert.Equal(t, EOF, s.Next().Type)
}
