// Copyright 2026 The Jtoy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "strings"

// maxAtoms bounds the number of atoms a verb may allocate, so a stray
// expression cannot exhaust the machine's memory.
const maxAtoms = 100_000_000

// Noun is an immutable array of Numbers with a shape descriptor.
// The shape is empty for an atom and [n] for a flat list of n elements;
// higher ranks are not constructed. Verbs always build fresh Nouns and
// never alias an operand's storage.
type Noun struct {
	shape []int
	data  []Number
}

// Atom returns a rank-0 noun holding a single number.
func Atom(n Number) Noun {
	return Noun{data: []Number{n}}
}

// List returns a rank-1 noun holding a copy of the given numbers.
func List(nums []Number) Noun {
	data := make([]Number, len(nums))
	copy(data, nums)
	return Noun{shape: []int{len(data)}, data: data}
}

// IsAtom reports whether the noun has rank 0.
func (u Noun) IsAtom() bool {
	return len(u.shape) == 0
}

// Len returns the number of atoms held.
func (u Noun) Len() int {
	return len(u.data)
}

// Shape returns a copy of the shape descriptor.
func (u Noun) Shape() []int {
	if u.shape == nil {
		return nil
	}
	shape := make([]int, len(u.shape))
	copy(shape, u.shape)
	return shape
}

// At returns the i'th atom in index order.
func (u Noun) At(i int) Number {
	return u.data[i]
}

// String renders the noun in its canonical textual form: an atom as its
// number, a list as its numbers joined by single spaces.
func (u Noun) String() string {
	var b strings.Builder
	for i, n := range u.data {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(n.String())
	}
	return b.String()
}

// Concat joins two nouns into a single list, in order. This implements
// noun juxtaposition: 10 20 30 is scanned as three nouns and joined here.
func Concat(u, v Noun) Noun {
	data := make([]Number, 0, len(u.data)+len(v.data))
	data = append(data, u.data...)
	data = append(data, v.data...)
	return Noun{shape: []int{len(data)}, data: data}
}

// sameLength checks shape agreement for a dyadic elementwise
// application, before any per-element computation happens.
func (u Noun) sameLength(v Noun) {
	if !u.IsAtom() && !v.IsAtom() && u.Len() != v.Len() {
		panic(Errorf(Length, "shapes %d and %d do not conform", u.Len(), v.Len()))
	}
}

// monadicMap applies op to every atom of u, preserving shape.
func monadicMap(u Noun, op func(Number) Number) Noun {
	data := make([]Number, len(u.data))
	for i, n := range u.data {
		data[i] = op(n)
	}
	return Noun{shape: u.Shape(), data: data}
}

// dyadicMap applies op elementwise across u and v after checking
// conformability. An atom operand is extended across the other
// operand's length.
func dyadicMap(u, v Noun, op func(Number, Number) Number) Noun {
	u.sameLength(v)
	switch {
	case u.IsAtom() && !v.IsAtom():
		x := u.data[0]
		data := make([]Number, len(v.data))
		for i, y := range v.data {
			data[i] = op(x, y)
		}
		return Noun{shape: v.Shape(), data: data}
	case !u.IsAtom() && v.IsAtom():
		y := v.data[0]
		data := make([]Number, len(u.data))
		for i, x := range u.data {
			data[i] = op(x, y)
		}
		return Noun{shape: u.Shape(), data: data}
	}
	data := make([]Number, len(u.data))
	for i := range u.data {
		data[i] = op(u.data[i], v.data[i])
	}
	return Noun{shape: u.Shape(), data: data}
}
