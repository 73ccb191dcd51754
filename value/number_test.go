// Copyright 2026 The Jtoy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	for _, test := range []struct {
		in   string
		want float64
	}{
		{"0", 0},
		{"123", 123},
		{"123.456", 123.456},
		{"0.456789", 0.456789},
		{"_1", -1},
		{"_4.56", -4.56},
		{"2e4", 2e4},
		{"2e_4", 2e-4},
		{"_2.5e10", -2.5e10},
		{"_", math.Inf(1)},
		{"__", math.Inf(-1)},
	} {
		n, err := ParseNumber(test.in)
		require.NoError(t, err, "ParseNumber(%q)", test.in)
		assert.Equal(t, Num(test.want), n, "ParseNumber(%q)", test.in)
	}
}

func TestParseNumberErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"___",
		"__5",
		"1_000",
		"1.2.3",
		"1e",
		"_.",
		"1e5e6",
	} {
		_, err := ParseNumber(in)
		require.Error(t, err, "ParseNumber(%q)", in)
		assert.Equal(t, Lex, err.(Error).Kind, "ParseNumber(%q)", in)
	}
}

func TestNumberString(t *testing.T) {
	for _, test := range []struct {
		in   Number
		want string
	}{
		{Num(0), "0"},
		{Num(math.Copysign(0, -1)), "0"},
		{Num(42), "42"},
		{Num(-42), "_42"},
		{Num(4.56), "4.56"},
		{Num(-4.56), "_4.56"},
		{Inf(1), "_"},
		{Inf(-1), "__"},
		{Num(1e6), "1e6"},
		{Num(-1e6), "_1e6"},
		{Num(1.5e6), "1.5e6"},
		{Num(123456), "123456"},
		{Num(999999.5), "999999.5"},
		{Num(1e-5), "0.00001"},
		{Num(1e-6), "1e_6"},
		{Num(-2.5e-7), "_2.5e_7"},
		{Num(1e100), "1e100"},
		{Number{Re: 1, Im: -2}, "1j_2"},
	} {
		assert.Equal(t, test.want, test.in.String())
	}
}

// Formatting a parsed canonical literal reproduces the literal.
func TestNumberRoundTrip(t *testing.T) {
	for _, s := range []string{
		"0", "1", "_1", "0.5", "_0.5", "123.456", "_",
		"__", "1e6", "_1e6", "2.5e10", "1e_6", "_3e_8",
	} {
		n, err := ParseNumber(s)
		require.NoError(t, err)
		assert.Equal(t, s, n.String(), "round trip of %q", s)
	}
}
