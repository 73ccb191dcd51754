// Copyright 2026 The Jtoy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package run provides the execution control for jtoy.
// It is factored out of main so it can be used for tests and by the
// markdown rewriter.
package run

import (
	"fmt"
	"strings"

	"jtoy.io/jtoy/config"
	"jtoy.io/jtoy/parse"
	"jtoy.io/jtoy/scan"
	"jtoy.io/jtoy/value"
)

// Prompt is the three-space input prompt of a J session transcript.
const Prompt = "   "

// Session evaluates lines of J. Lines are independent: the language in
// scope has no cross-line state, so a Session is safe to reuse and
// separate evaluations may run concurrently.
type Session struct {
	conf *config.Config
}

func NewSession(conf *config.Config) *Session {
	return &Session{conf: conf}
}

// EvalLine parses and evaluates one line of input. The noun is nil when
// the line holds no expression. Any value.Error raised during scanning
// or reduction is recovered here and returned; no input can panic
// through this boundary.
func (s *Session) EvalLine(line string) (noun *value.Noun, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(value.Error); ok {
			noun = nil
			err = e
			return
		}
		panic(r)
	}()
	scanner := scan.New(s.conf, "", strings.NewReader(line))
	p := parse.NewParser("", scanner, s.conf)
	noun, _ = p.Line()
	return noun, nil
}

// EvalText evaluates one line and returns its textual output: the
// formatted noun, the error description, or the empty string for a line
// with no expression.
func (s *Session) EvalText(line string) string {
	noun, err := s.EvalLine(line)
	if err != nil {
		return err.Error()
	}
	if noun == nil {
		return ""
	}
	return noun.String()
}

// Transcript replays a J session transcript. Lines carrying the
// three-space prompt are inputs: each is copied through followed by its
// freshly computed output. Other lines are stale outputs and are
// dropped. An input whose result formats to the empty string (an empty
// list) still produces its blank output line.
func (s *Session) Transcript(text string) string {
	var out strings.Builder
	for _, line := range splitLines(text) {
		input, ok := strings.CutPrefix(line, Prompt)
		if !ok {
			continue
		}
		out.WriteString(line)
		out.WriteByte('\n')
		noun, err := s.EvalLine(input)
		if err != nil {
			out.WriteString(err.Error())
			out.WriteByte('\n')
			continue
		}
		if noun != nil {
			out.WriteString(noun.String())
			out.WriteByte('\n')
		}
	}
	return out.String()
}

// splitLines splits text into lines without the trailing empty string
// that Split leaves after a final newline.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Run runs the parser/evaluator until EOF or error, printing each
// result to the configured output. The return value says whether we
// completed without error: on an error it is false, the message has
// been printed to the error output, and the caller typically loops
// calling Run until it succeeds.
func Run(p *parse.Parser, conf *config.Config, interactive bool) (success bool) {
	writer := conf.Output()
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if err, ok := r.(value.Error); ok {
			fmt.Fprintf(conf.ErrOutput(), "%s%s\n", p.Loc(), err)
			success = false
			return
		}
		panic(r)
	}()
	for {
		if interactive {
			fmt.Fprint(writer, conf.Prompt())
		}
		noun, ok := p.Line()
		if noun != nil {
			fmt.Fprintln(writer, noun)
		}
		if !ok {
			return true
		}
	}
}
