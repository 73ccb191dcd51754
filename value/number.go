// Copyright 2026 The Jtoy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"math"
	"strconv"
	"strings"
)

// Number is an extended complex number. The surface language computes
// only over the reals, but all storage is complex so the domain can grow
// without changing the data model. A Number is real, for display and
// domain checks, when Im == 0. The components may be finite or signed
// infinities; the J notation for those is "_" and "__".
type Number struct {
	Re float64
	Im float64
}

// Num returns the real Number with the given value.
func Num(re float64) Number {
	return Number{Re: re}
}

// Inf returns positive or negative real infinity according to sign.
func Inf(sign int) Number {
	return Number{Re: math.Inf(sign)}
}

// IsReal reports whether the number lies on the real axis.
func (n Number) IsReal() bool {
	return n.Im == 0
}

func (n Number) isZero() bool {
	return n.Re == 0 && n.Im == 0
}

// class describes the real component for formatting and domain checks.
// Keeping the classification explicit makes the switches below exhaustive.
type class int

const (
	finite class = iota
	posInf
	negInf
	notANumber
)

func classify(f float64) class {
	switch {
	case math.IsInf(f, 1):
		return posInf
	case math.IsInf(f, -1):
		return negInf
	case math.IsNaN(f):
		return notANumber
	}
	return finite
}

func (n Number) Neg() Number {
	return Number{Re: -n.Re, Im: -n.Im}
}

func (n Number) Add(m Number) Number {
	return Number{Re: n.Re + m.Re, Im: n.Im + m.Im}
}

func (n Number) Sub(m Number) Number {
	return Number{Re: n.Re - m.Re, Im: n.Im - m.Im}
}

// Mul multiplies. Real operands stay on the real axis; the general
// complex product would turn an infinite real into NaN through its
// 0·∞ cross terms.
func (n Number) Mul(m Number) Number {
	if n.IsReal() && m.IsReal() {
		return Num(n.Re * m.Re)
	}
	return Number{
		Re: n.Re*m.Re - n.Im*m.Im,
		Im: n.Re*m.Im + n.Im*m.Re,
	}
}

// Div divides, with the same real fast path as Mul. Division by a zero
// divisor is the dyad's concern, not handled here.
func (n Number) Div(m Number) Number {
	if n.IsReal() && m.IsReal() {
		return Num(n.Re / m.Re)
	}
	d := m.Re*m.Re + m.Im*m.Im
	return Number{
		Re: (n.Re*m.Re + n.Im*m.Im) / d,
		Im: (n.Im*m.Re - n.Re*m.Im) / d,
	}
}

// String renders the number in J notation: a leading underscore for
// negative values, "_" and "__" for the infinities, and a j-separated
// pair for a number off the real axis.
func (n Number) String() string {
	if n.IsReal() {
		return formatFloat(n.Re)
	}
	return formatFloat(n.Re) + "j" + formatFloat(n.Im)
}

// Thresholds for switching the display to scientific notation.
const (
	sciHigh = 1e6
	sciLow  = 1e-5
)

func formatFloat(f float64) string {
	switch classify(f) {
	case posInf:
		return "_"
	case negInf:
		return "__"
	case notANumber:
		return "NaN"
	}
	if f == 0 {
		return "0" // Also avoids printing a negative zero.
	}
	abs := math.Abs(f)
	if abs >= sciHigh || abs < sciLow {
		return formatSci(f)
	}
	return strings.ReplaceAll(strconv.FormatFloat(f, 'f', -1, 64), "-", "_")
}

// formatSci renders f in J exponent notation: 1.5e6, 2e_7, _3e20.
func formatSci(f float64) string {
	s := strconv.FormatFloat(f, 'e', -1, 64) // like "1.5e+06"
	e := strings.IndexByte(s, 'e')
	mant, exp := s[:e], s[e+1:]
	exp = strings.TrimPrefix(exp, "+")
	neg := strings.HasPrefix(exp, "-")
	exp = strings.TrimLeft(strings.TrimPrefix(exp, "-"), "0")
	if exp == "" {
		exp = "0"
	}
	if neg {
		exp = "_" + exp
	}
	return strings.ReplaceAll(mant, "-", "_") + "e" + exp
}

// ParseNumber parses a J numeric literal: optional leading underscore
// for negation, "_" and "__" for the infinities, digits with optional
// fraction, and an optional exponent whose sign is also written with an
// underscore (2e_4). It is the inverse of String for canonical input.
func ParseNumber(s string) (Number, error) {
	under := 0
	for under < len(s) && s[under] == '_' {
		under++
	}
	rest := s[under:]
	if rest == "" {
		switch under {
		case 1:
			return Inf(1), nil
		case 2:
			return Inf(-1), nil
		}
		return Number{}, Errorf(Lex, "bad number syntax: %q", s)
	}
	if under > 1 {
		return Number{}, Errorf(Lex, "bad number syntax: %q", s)
	}
	// A single underscore is allowed inside the literal, marking a
	// negative exponent.
	rest = strings.Replace(rest, "e_", "e-", 1)
	if strings.ContainsRune(rest, '_') {
		return Number{}, Errorf(Lex, "underscore inside number: %q", s)
	}
	if under == 1 {
		rest = "-" + rest
	}
	f, err := strconv.ParseFloat(rest, 64)
	if err != nil {
		return Number{}, Errorf(Lex, "bad number syntax: %q", s)
	}
	return Num(f), nil
}
