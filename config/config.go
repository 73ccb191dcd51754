// Copyright 2026 The Jtoy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the configuration for a jtoy session: the prompt,
// the output writers, the parenthesis recursion bound, and debugging
// switches. The zero value is ready to use.
package config

import (
	"io"
	"os"
)

// DefaultMaxDepth is the default bound on parenthesis nesting.
const DefaultMaxDepth = 100

type Config struct {
	prompt    string
	output    io.Writer
	errOutput io.Writer
	maxDepth  int
	debug     map[string]bool
}

// Output returns the writer used for computed results.
func (c *Config) Output() io.Writer {
	if c.output == nil {
		return os.Stdout
	}
	return c.output
}

func (c *Config) SetOutput(w io.Writer) {
	c.output = w
}

// ErrOutput returns the writer used for error messages.
func (c *Config) ErrOutput() io.Writer {
	if c.errOutput == nil {
		return os.Stderr
	}
	return c.errOutput
}

func (c *Config) SetErrOutput(w io.Writer) {
	c.errOutput = w
}

// Prompt returns the interactive input prompt, by default the three
// spaces of a J session transcript.
func (c *Config) Prompt() string {
	if c.prompt == "" {
		return "   "
	}
	return c.prompt
}

func (c *Config) SetPrompt(prompt string) {
	c.prompt = prompt
}

// MaxDepth returns the maximum allowed parenthesis nesting depth.
func (c *Config) MaxDepth() int {
	if c.maxDepth == 0 {
		return DefaultMaxDepth
	}
	return c.maxDepth
}

func (c *Config) SetMaxDepth(depth int) {
	c.maxDepth = depth
}

func (c *Config) Debug(s string) bool {
	return c.debug[s]
}

func (c *Config) SetDebug(s string, state bool) {
	if c.debug == nil {
		c.debug = make(map[string]bool)
	}
	c.debug[s] = state
}
