// Copyright 2026 The Jtoy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/peterh/liner"
	"golang.org/x/term"

	"jtoy.io/jtoy/config"
	"jtoy.io/jtoy/parse"
	"jtoy.io/jtoy/run"
	"jtoy.io/jtoy/scan"
)

// interact reads and evaluates input until EOF or interrupt. On a
// terminal it offers line editing and persistent history; piped input
// falls back to a plain read loop.
func interact(conf *config.Config) {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !liner.TerminalSupported() {
		scanner := scan.New(conf, "", bufio.NewReader(os.Stdin))
		parser := parse.NewParser("", scanner, conf)
		for !run.Run(parser, conf, false) {
		}
		return
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	history := historyPath()
	if history != "" {
		if f, err := os.Open(history); err == nil {
			line.ReadHistory(f)
			f.Close()
		}
	}

	session := run.NewSession(conf)
	for {
		text, err := line.Prompt(conf.Prompt())
		if err == liner.ErrPromptAborted || err == io.EOF {
			fmt.Fprintln(conf.Output())
			break
		}
		if err != nil {
			fmt.Fprintf(conf.ErrOutput(), "jtoy: %s\n", err)
			break
		}
		if text != "" {
			line.AppendHistory(text)
		}
		if out := session.EvalText(text); out != "" {
			fmt.Fprintln(conf.Output(), out)
		}
	}

	if history != "" {
		if f, err := os.Create(history); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".jtoy_history")
}
