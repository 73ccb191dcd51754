// Copyright 2026 The Jtoy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

// Verb is a primitive operation, applicable monadically (one operand)
// and/or dyadically (two operands). A spelling with no form in one of
// the slots raises an arity error when used that way.
type Verb struct {
	Spelling string
	monad    func(Noun) Noun
	dyad     func(Noun, Noun) Noun
}

func (v *Verb) String() string {
	return v.Spelling
}

// Monad applies the verb to one operand.
func (v *Verb) Monad(y Noun) Noun {
	if v.monad == nil {
		panic(Errorf(Arity, "%s has no monadic form", v.Spelling))
	}
	return v.monad(y)
}

// Dyad applies the verb to two operands.
func (v *Verb) Dyad(x, y Noun) Noun {
	if v.dyad == nil {
		panic(Errorf(Arity, "%s has no dyadic form", v.Spelling))
	}
	return v.dyad(x, y)
}

// verbs is the fixed primitive table, built once and read-only
// afterwards, so concurrent evaluations can share it freely.
var verbs map[string]*Verb

// To avoid initialization cycles when an op refers to another op,
// the table is populated in an init function.
func init() {
	verbs = make(map[string]*Verb)
	for _, v := range []*Verb{
		{Spelling: "-", monad: negate, dyad: minus},
		{Spelling: "-.", monad: not},
		{Spelling: "+", dyad: plus},
		{Spelling: "#", monad: tally}, // dyadic copy not yet defined
		{Spelling: "$", monad: shapeOf},
		{Spelling: "%", monad: reciprocal, dyad: divide},
		{Spelling: "*", monad: signum, dyad: times},
		{Spelling: "i.", monad: integers},
	} {
		verbs[v.Spelling] = v
	}
}

// LookupVerb returns the primitive with the given spelling, if any.
func LookupVerb(spelling string) (*Verb, bool) {
	v, ok := verbs[spelling]
	return v, ok
}

// KnownVerb reports whether spelling names a primitive. The scanner
// uses it to apply maximal munch across one- and two-character verbs.
func KnownVerb(spelling string) bool {
	_, ok := verbs[spelling]
	return ok
}
