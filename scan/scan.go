// Copyright 2026 The Jtoy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scan

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"jtoy.io/jtoy/config"
	"jtoy.io/jtoy/value"
)

// Token represents a token or text string returned from the scanner.
type Token struct {
	Type   Type   // The type of this item.
	Line   int    // The line number on which this token appears.
	Offset int    // The byte offset of this token within the line.
	Text   string // The text of this item.
}

// Type identifies the type of lex items.
type Type int

const (
	EOF   Type = iota // zero value so an exhausted scanner delivers EOF
	Error             // error occurred; value is text of error
	Newline
	Number     // numeric literal
	Verb       // primitive verb spelling
	LeftParen  // '('
	RightParen // ')'
)

func (t Type) String() string {
	switch t {
	case EOF:
		return "EOF"
	case Error:
		return "Error"
	case Newline:
		return "Newline"
	case Number:
		return "Number"
	case Verb:
		return "Verb"
	case LeftParen:
		return "LeftParen"
	case RightParen:
		return "RightParen"
	}
	return "Unknown"
}

func (t Token) String() string {
	switch {
	case t.Type == EOF:
		return "EOF"
	case t.Type == Error:
		return "error: " + t.Text
	}
	return fmt.Sprintf("%s: %q", t.Type, t.Text)
}

const eof = -1

// numeral is the set of bytes that may appear inside a numeric literal.
// Underscores mark negation and infinities, 'e' a decimal exponent.
// The literal is validated as a whole once its span is known.
const numeral = "0123456789_.e"

// verbStart is the set of punctuation bytes that may begin a verb.
const verbStart = "#$%&*+-/<=>?@~|,;:!"

// stateFn represents the state of the scanner as a function that returns the next state.
type stateFn func(*Scanner) stateFn

// Scanner holds the state of the scanner.
type Scanner struct {
	conf      *config.Config
	r         io.ByteReader
	done      bool
	name      string // the name of the input; used only for error reports
	buf       []byte // I/O buffer, re-used
	input     string // the line of text being scanned
	lastRune  rune   // most recent return from next()
	lastWidth int    // size of that rune
	line      int    // line number in input
	pos       int    // current position in the input
	start     int    // start position of this item
	token     Token
}

// New creates and returns a new scanner reading from r.
func New(conf *config.Config, name string, r io.ByteReader) *Scanner {
	return &Scanner{
		conf: conf,
		r:    r,
		name: name,
		line: 1,
	}
}

// loadLine reads the next line of input and stores it in (appends it to) the input.
// It strips carriage returns to make subsequent processing simpler.
func (l *Scanner) loadLine() {
	l.buf = l.buf[:0]
	for {
		c, err := l.r.ReadByte()
		if err != nil {
			l.done = true
			break
		}
		if c != '\r' {
			l.buf = append(l.buf, c)
		}
		if c == '\n' {
			break
		}
	}
	// Reset to beginning of input buffer if there is nothing pending.
	if l.start == l.pos {
		l.input = string(l.buf)
		l.start = 0
		l.pos = 0
	} else {
		l.input += string(l.buf)
	}
}

// readRune reads the next rune from the input.
func (l *Scanner) readRune() (rune, int) {
	if !l.done && l.pos == len(l.input) {
		l.loadLine()
	}
	if len(l.input) == l.pos {
		return eof, 0
	}
	return utf8.DecodeRuneInString(l.input[l.pos:])
}

// next returns the next rune in the input.
func (l *Scanner) next() rune {
	l.lastRune, l.lastWidth = l.readRune()
	l.pos += l.lastWidth
	return l.lastRune
}

// peek returns but does not consume the next rune in the input.
func (l *Scanner) peek() rune {
	r, _ := l.readRune()
	return r
}

// peek2 returns the next two runes ahead, but does not consume anything.
func (l *Scanner) peek2() (rune, rune) {
	pos := l.pos
	r1 := l.next()
	r2 := l.next()
	l.pos = pos
	return r1, r2
}

// backup steps back one rune. Should only be called once per call of next.
func (l *Scanner) backup() {
	if l.lastRune == eof {
		return
	}
	if l.pos > l.start {
		l.pos -= l.lastWidth
	}
}

// emit passes an item back to the client.
func (l *Scanner) emit(t Type) stateFn {
	tok := Token{t, l.line, l.start, l.input[l.start:l.pos]}
	if t == Newline {
		l.line++
	}
	if l.conf.Debug("tokens") {
		fmt.Fprintf(l.conf.Output(), "%s:%d: emit %s\n", l.name, tok.Line, tok)
	}
	l.token = tok
	l.start = l.pos
	return nil
}

// errorf returns an error token and empties the pending input.
func (l *Scanner) errorf(format string, args ...interface{}) stateFn {
	l.token = Token{Error, l.line, l.start, fmt.Sprintf(format, args...)}
	l.start = 0
	l.pos = 0
	l.input = l.input[:0]
	return nil
}

// acceptRun consumes a run of runes from the valid set.
func (l *Scanner) acceptRun(valid string) {
	for strings.ContainsRune(valid, l.next()) {
	}
	l.backup()
}

// Next returns the next token.
func (l *Scanner) Next() Token {
	l.lastRune = eof
	l.lastWidth = 0
	l.token = Token{EOF, l.line, l.pos, "EOF"}
	state := lexAny
	for {
		state = state(l)
		if state == nil {
			return l.token
		}
	}
}

// state functions

// lexAny scans non-space items.
func lexAny(l *Scanner) stateFn {
	switch r := l.next(); {
	case r == eof:
		return nil
	case r == '\n':
		return l.emit(Newline)
	case isSpace(r):
		return lexSpace
	case r == '(':
		return l.emit(LeftParen)
	case r == ')':
		return l.emit(RightParen)
	case r == 'N':
		// NB. starts a comment running to end of line.
		if r1, r2 := l.peek2(); r1 == 'B' && r2 == '.' {
			return lexComment
		}
		return l.errorf("unrecognized character %#U", r)
	case r == '_' || isDigit(r):
		l.backup()
		return lexNumber
	case strings.ContainsRune(verbStart, r):
		return lexVerb
	case isAlpha(r):
		// Alphabetic verbs are spelled with a trailing dot or colon, like i.
		if r1, _ := l.peek2(); r1 == '.' || r1 == ':' {
			return lexVerb
		}
		return l.errorf("unrecognized character %#U", r)
	default:
		return l.errorf("unrecognized character %#U", r)
	}
}

// lexSpace scans a run of space characters.
// One space has already been seen.
func lexSpace(l *Scanner) stateFn {
	for isSpace(l.peek()) {
		l.next()
	}
	// Skips over the pending input.
	l.start = l.pos
	return lexAny
}

// lexComment scans an NB. comment. The 'N' has been consumed.
func lexComment(l *Scanner) stateFn {
	for {
		r := l.peek()
		if r == eof || r == '\n' {
			break
		}
		l.next()
	}
	l.start = l.pos
	return lexAny
}

// lexNumber scans a numeric literal and validates it as a whole.
// The span has not been consumed yet.
func lexNumber(l *Scanner) stateFn {
	l.acceptRun(numeral)
	text := l.input[l.start:l.pos]
	if _, err := value.ParseNumber(text); err != nil {
		return l.errorf("%s", err.(value.Error).Msg)
	}
	return l.emit(Number)
}

// lexVerb completes scanning a verb spelling. The first character has
// been consumed. Maximal munch: a two-character spelling like -. is
// preferred over its one-character prefix when both are valid.
func lexVerb(l *Scanner) stateFn {
	if r := l.peek(); r == '.' || r == ':' {
		l.next()
		if value.KnownVerb(l.input[l.start:l.pos]) {
			return l.emit(Verb)
		}
		l.backup()
	}
	if value.KnownVerb(l.input[l.start:l.pos]) {
		return l.emit(Verb)
	}
	return l.errorf("unknown verb %q", l.input[l.start:l.pos])
}

// isSpace reports whether r is a space character.
func isSpace(r rune) bool {
	return r == ' ' || r == '\t'
}

// isDigit reports whether r is an ASCII digit.
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isAlpha reports whether r is an ASCII letter.
func isAlpha(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}
