// Copyright 2026 The Jtoy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Jtoy is an interpreter for a small subset of the J programming language:
a right-to-left, precedence-free, array-oriented expression language.
Every primitive verb applies to one operand (monadic) or two (dyadic)
and operates elementwise across flat numeric lists.

	   100 - 10 - 1
	91
	   10 11 12 13 14 - 7
	3 4 5 6 7
	   - i. 5
	0 _1 _2 _3 _4

Numbers use J notation: a leading underscore is the negative sign (_5),
a bare underscore is infinity and a double underscore negative infinity,
and exponents write their sign the same way (2e_4). NB. starts a
comment. Parentheses are the only grouping mechanism; there is no
operator precedence, and the rightmost complete subexpression always
evaluates first.

The implemented verbs are - (negate, minus), -. (not), + (plus),
# (tally), $ (shape-of), % (reciprocal, divide), * (signum, times), and
i. (integers).

Usage:

	jtoy [options] [file.ijs]

With no arguments jtoy reads and evaluates lines interactively. With a
file argument it evaluates each line of the file. The markdown options
treat a document's code blocks as J session transcripts, re-evaluating
the prompt-prefixed input lines and refreshing the output lines:

	-e expression
		evaluate the expression and exit
	-D file.md
		print a unified diff of stale example output, exit 1 if any
	-M file.md
		rewrite the file with fresh output, keeping file.md.old
	-extract file.md
		print the transcript embedded in the document
	-maxdepth n
		bound parenthesis nesting (default 100)
*/
package main
