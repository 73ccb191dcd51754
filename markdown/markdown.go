// Copyright 2026 The Jtoy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package markdown runs the J transcripts embedded in code blocks of a
// Markdown document and rewrites the document with freshly computed
// output. It performs no evaluation itself: every input line goes
// through a run.Session.
//
// Both fenced and four-space-indented code blocks are recognized.
// Within a block, lines carrying the three-space J prompt are inputs
// and the following flush lines are prior outputs, which are replaced.
package markdown

import (
	"os"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"jtoy.io/jtoy/config"
	"jtoy.io/jtoy/run"
)

const indent = "    "

// chunk is a section of the document: a run of prose lines kept
// verbatim, or a code block to be replayed.
type chunk struct {
	code  bool
	lines []string // prose verbatim; code dedented and unfenced
	fence string   // opening fence line, empty for an indented block
}

// Document is a parsed Markdown file containing J examples. The chunks,
// when reassembled without replaying, exactly reproduce the source.
type Document struct {
	chunks       []chunk
	finalNewline bool
}

// Parse splits a Markdown document into prose and code chunks.
// An unterminated fence runs to the end of the document.
func Parse(md string) *Document {
	doc := &Document{finalNewline: strings.HasSuffix(md, "\n")}
	lines := strings.Split(md, "\n")
	if doc.finalNewline {
		lines = lines[:len(lines)-1]
	}
	var prose []string
	flush := func() {
		if len(prose) > 0 {
			doc.chunks = append(doc.chunks, chunk{lines: prose})
			prose = nil
		}
	}
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		switch {
		case strings.HasPrefix(line, "```"):
			flush()
			c := chunk{code: true, fence: line}
			for i++; i < len(lines); i++ {
				if strings.HasPrefix(lines[i], "```") {
					break
				}
				c.lines = append(c.lines, lines[i])
			}
			doc.chunks = append(doc.chunks, c)
		case isIndented(line):
			flush()
			c := chunk{code: true}
			for ; i < len(lines); i++ {
				if isIndented(lines[i]) {
					c.lines = append(c.lines, dedent(lines[i]))
					continue
				}
				// A blank line continues the block only if more
				// indented lines follow.
				if lines[i] == "" && i+1 < len(lines) && isIndented(lines[i+1]) {
					c.lines = append(c.lines, "")
					continue
				}
				break
			}
			i--
			doc.chunks = append(doc.chunks, c)
		default:
			prose = append(prose, line)
		}
	}
	flush()
	return doc
}

func isIndented(line string) bool {
	return strings.HasPrefix(line, indent) || strings.HasPrefix(line, "\t")
}

func dedent(line string) string {
	if s, ok := strings.CutPrefix(line, indent); ok {
		return s
	}
	return strings.TrimPrefix(line, "\t")
}

// Transcript returns the concatenated text of all code chunks.
func (d *Document) Transcript() string {
	var b strings.Builder
	for _, c := range d.chunks {
		if !c.code {
			continue
		}
		for _, line := range c.lines {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Run replays every code chunk in the session and returns the
// reassembled document. A document whose outputs are already current is
// reproduced exactly.
func (d *Document) Run(s *run.Session) string {
	var out []string
	for _, c := range d.chunks {
		if !c.code {
			out = append(out, c.lines...)
			continue
		}
		replayed := splitLines(s.Transcript(strings.Join(c.lines, "\n") + "\n"))
		if c.fence != "" {
			out = append(out, c.fence)
			out = append(out, replayed...)
			out = append(out, "```")
			continue
		}
		for _, line := range replayed {
			if line == "" {
				out = append(out, "")
				continue
			}
			out = append(out, indent+line)
		}
	}
	text := strings.Join(out, "\n")
	if d.finalNewline {
		text += "\n"
	}
	return text
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// DiffFile replays the J examples in the named file and returns a
// unified diff of the changes, or the empty string when the document is
// up to date.
func DiffFile(conf *config.Config, path string) (string, error) {
	md, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	output := Parse(string(md)).Run(run.NewSession(conf))
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(md)),
		B:        difflib.SplitLines(output),
		FromFile: path,
		ToFile:   path + ".new",
		Context:  8,
	})
}

// UpdateFile replays the J examples in the named file and rewrites it
// with current output, keeping the previous version as path.old. An
// up-to-date file is left untouched.
func UpdateFile(conf *config.Config, path string) error {
	md, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	output := Parse(string(md)).Run(run.NewSession(conf))
	if output == string(md) {
		return nil
	}
	if err := os.Rename(path, path+".old"); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(output), 0o644)
}

// ExtractFile returns the J transcript embedded in the named file.
func ExtractFile(path string) (string, error) {
	md, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return Parse(string(md)).Transcript(), nil
}
