// Copyright 2026 The Jtoy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "math"

// Monadic forms of the primitive verbs. The arithmetic monads apply
// elementwise; tally, shape-of, and integers act on the whole noun.

// negate implements monadic -
func negate(y Noun) Noun {
	return monadicMap(y, Number.Neg)
}

// not implements monadic -. over [0,1]: 1-y, with values outside the
// interval out of the domain.
func not(y Noun) Noun {
	return monadicMap(y, func(n Number) Number {
		if !n.IsReal() || n.Re < 0 || n.Re > 1 {
			panic(Errorf(Domain, "-. argument %s is outside [0,1]", n))
		}
		return Num(1 - n.Re)
	})
}

// signum implements monadic *
func signum(y Noun) Noun {
	return monadicMap(y, func(n Number) Number {
		if !n.IsReal() {
			panic(Errorf(Domain, "* argument %s is not real", n))
		}
		switch {
		case n.Re > 0:
			return Num(1)
		case n.Re < 0:
			return Num(-1)
		}
		return Num(0)
	})
}

// reciprocal implements monadic %, sharing the division edge cases of
// the dyad: %0 is _.
func reciprocal(y Noun) Noun {
	return monadicMap(y, func(n Number) Number {
		return divideNum(Num(1), n)
	})
}

// tally implements monadic #: the number of items along the leading
// axis, which for an atom is 1.
func tally(y Noun) Noun {
	if y.IsAtom() {
		return Atom(Num(1))
	}
	return Atom(Num(float64(y.Len())))
}

// shapeOf implements monadic $: an empty list for an atom, otherwise a
// one-element list holding the length.
func shapeOf(y Noun) Noun {
	if y.IsAtom() {
		return List(nil)
	}
	return List([]Number{Num(float64(y.Len()))})
}

// integers implements monadic i.: the list 0 1 ... y-1.
func integers(y Noun) Noun {
	if !y.IsAtom() {
		panic(Errorf(Domain, "i. argument must be an atom"))
	}
	n := y.At(0)
	if !n.IsReal() || classify(n.Re) != finite || n.Re != math.Trunc(n.Re) {
		panic(Errorf(Domain, "i. argument %s is not an integer", n))
	}
	if n.Re < 0 {
		panic(Errorf(Domain, "i. argument %s is negative", n))
	}
	if n.Re > maxAtoms {
		panic(Errorf(Domain, "i. result of %s atoms is too large", n))
	}
	count := int(n.Re)
	data := make([]Number, count)
	for i := range data {
		data[i] = Num(float64(i))
	}
	return Noun{shape: []int{count}, data: data}
}
