// Copyright 2026 The Jtoy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parse evaluates one line of tokens at a time. The grammar has
// no precedence: scanning proceeds right to left over a working stack,
// and the rightmost complete subexpression reduces first, so
// 100 - 10 - 1 is 100 - (10 - 1). The rule set is small and closed:
//
//	Noun Noun       -> juxtaposition, concatenated into one list
//	Verb Noun       -> monadic application
//	Noun Verb Noun  -> dyadic application
//	( expression )  -> evaluated independently, substituted as a noun
//
// Problems surface as value.Error panics; the run package recovers them.
package parse

import (
	"fmt"

	"jtoy.io/jtoy/config"
	"jtoy.io/jtoy/scan"
	"jtoy.io/jtoy/value"
)

// Parser holds the state for parsing and evaluating one input stream.
type Parser struct {
	scanner  *scan.Scanner
	conf     *config.Config
	fileName string
	lineNum  int
	tokens   []scan.Token
}

// word is one reduced fragment on the evaluation stack: a noun, or a
// verb awaiting an operand.
type word struct {
	verb *value.Verb // nil for a noun
	noun value.Noun
}

func (w word) isNoun() bool {
	return w.verb == nil
}

func (w word) String() string {
	if w.isNoun() {
		return w.noun.String()
	}
	return w.verb.String()
}

// NewParser returns a new parser that will read from the scanner.
func NewParser(fileName string, scanner *scan.Scanner, conf *config.Config) *Parser {
	return &Parser{
		scanner:  scanner,
		conf:     conf,
		fileName: fileName,
	}
}

// Loc returns the current input location in "name:line: " form, or the
// empty string for anonymous input.
func (p *Parser) Loc() string {
	if p.fileName == "" {
		return ""
	}
	return fmt.Sprintf("%s:%d: ", p.fileName, p.lineNum)
}

func (p *Parser) errorf(kind value.Kind, format string, args ...interface{}) {
	p.tokens = nil
	panic(value.Errorf(kind, format, args...))
}

// Line reads one line of input and evaluates it. The returned boolean
// reports whether input remains; the noun is nil for an empty line.
func (p *Parser) Line() (*value.Noun, bool) {
	ok := p.readTokensToNewline()
	if len(p.tokens) == 0 {
		return nil, ok
	}
	n := p.eval(p.tokens, 0)
	return &n, ok
}

// readTokensToNewline buffers tokens up to the next newline.
// The boolean is false at EOF. Reading the whole line before evaluating
// keeps error recovery simple: a lex error discards the line.
func (p *Parser) readTokensToNewline() bool {
	p.tokens = p.tokens[:0]
	for {
		tok := p.scanner.Next()
		switch tok.Type {
		case scan.Error:
			p.errorf(value.Lex, "%s", tok.Text)
		case scan.Newline:
			return true
		case scan.EOF:
			return len(p.tokens) > 0
		}
		p.tokens = append(p.tokens, tok)
		p.lineNum = tok.Line
	}
}

// eval evaluates a complete token sequence to a single noun.
// depth counts parenthesis nesting.
func (p *Parser) eval(tokens []scan.Token, depth int) value.Noun {
	if depth > p.conf.MaxDepth() {
		p.errorf(value.Recursion, "parentheses nested deeper than %d", p.conf.MaxDepth())
	}
	words := p.words(tokens, depth)
	if p.conf.Debug("parse") {
		fmt.Fprintf(p.conf.Output(), "%sreduce %v\n", p.Loc(), words)
	}
	return p.reduce(words)
}

// words resolves tokens into nouns and verbs. A parenthesized
// subexpression is evaluated recursively and substituted as one noun.
func (p *Parser) words(tokens []scan.Token, depth int) []word {
	var words []word
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		switch tok.Type {
		case scan.Number:
			n, err := value.ParseNumber(tok.Text)
			if err != nil {
				p.errorf(value.Lex, "%s", err)
			}
			words = append(words, word{noun: value.Atom(n)})
		case scan.Verb:
			v, ok := value.LookupVerb(tok.Text)
			if !ok {
				p.errorf(value.Lex, "unknown verb %q", tok.Text)
			}
			words = append(words, word{verb: v})
		case scan.LeftParen:
			j := matchParen(tokens, i)
			if j < 0 {
				p.errorf(value.Parse, "unmatched (")
			}
			if j == i+1 {
				p.errorf(value.Parse, "nothing between parentheses")
			}
			n := p.eval(tokens[i+1:j], depth+1)
			words = append(words, word{noun: n})
			i = j
		case scan.RightParen:
			p.errorf(value.Parse, "unmatched )")
		default:
			p.errorf(value.Parse, "unexpected token %s", tok)
		}
	}
	return words
}

// matchParen returns the index of the right parenthesis matching the
// left parenthesis at index i, or -1.
func matchParen(tokens []scan.Token, i int) int {
	nesting := 0
	for j := i; j < len(tokens); j++ {
		switch tokens[j].Type {
		case scan.LeftParen:
			nesting++
		case scan.RightParen:
			nesting--
			if nesting == 0 {
				return j
			}
		}
	}
	return -1
}

// reduce applies the grammar rules over a right-to-left scan of words.
// The stack grows leftward: the top holds the leftmost word seen so far.
func (p *Parser) reduce(words []word) value.Noun {
	stack := make([]word, 0, len(words))
	for i := len(words) - 1; i >= 0; i-- {
		stack = append(stack, words[i])
		// A dyad or monad must not fire while a noun remains to the
		// left: that noun either juxtaposes with the top of the stack
		// or becomes the dyad's left operand.
		nextIsNoun := i > 0 && words[i-1].isNoun()
		stack = reduceStack(stack, nextIsNoun)
	}
	if len(stack) == 1 && stack[0].isNoun() {
		return stack[0].noun
	}
	// Something is stuck; the rightmost dangling verb explains why.
	for _, w := range stack {
		if !w.isNoun() {
			p.errorf(value.Arity, "missing operand for %s", w.verb)
		}
	}
	p.errorf(value.Parse, "invalid expression")
	panic("unreachable")
}

// reduceStack greedily applies every available reduction to the stack.
func reduceStack(stack []word, nextIsNoun bool) []word {
	for {
		n := len(stack)
		top := stack[n-1]
		if top.isNoun() {
			if n >= 2 && stack[n-2].isNoun() {
				// Juxtaposed nouns concatenate; the top is the left one.
				c := value.Concat(top.noun, stack[n-2].noun)
				stack = append(stack[:n-2], word{noun: c})
				continue
			}
			if !nextIsNoun && n >= 3 && !stack[n-2].isNoun() && stack[n-3].isNoun() {
				r := stack[n-2].verb.Dyad(top.noun, stack[n-3].noun)
				stack = append(stack[:n-3], word{noun: r})
				continue
			}
		} else if !nextIsNoun && n >= 2 && stack[n-2].isNoun() {
			r := top.verb.Monad(stack[n-2].noun)
			stack = append(stack[:n-2], word{noun: r})
			continue
		}
		return stack
	}
}
