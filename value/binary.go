// Copyright 2026 The Jtoy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

// Dyadic forms of the primitive verbs. All apply elementwise after the
// conformability check in dyadicMap.

// plus implements dyadic +
func plus(x, y Noun) Noun {
	return dyadicMap(x, y, Number.Add)
}

// minus implements dyadic -
func minus(x, y Noun) Noun {
	return dyadicMap(x, y, Number.Sub)
}

// times implements dyadic *. Zero times anything is zero, including the
// infinities, so the IEEE rule inf*0 = NaN never applies.
func times(x, y Noun) Noun {
	return dyadicMap(x, y, timesNum)
}

func timesNum(x, y Number) Number {
	if x.isZero() || y.isZero() {
		return Num(0)
	}
	return x.Mul(y)
}

// divide implements dyadic %, with J's zero-divisor rules: 0%0 is 0 and
// x%0 is the infinity matching the sign of x.
func divide(x, y Noun) Noun {
	return dyadicMap(x, y, divideNum)
}

func divideNum(x, y Number) Number {
	if y.isZero() {
		switch {
		case x.isZero():
			return Num(0)
		case !x.IsReal():
			panic(Errorf(Domain, "complex %s divided by zero", x))
		case x.Re < 0:
			return Inf(-1)
		}
		return Inf(1)
	}
	return x.Div(y)
}
