// Copyright 2026 The Jtoy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"jtoy.io/jtoy/config"
	"jtoy.io/jtoy/markdown"
	"jtoy.io/jtoy/parse"
	"jtoy.io/jtoy/run"
	"jtoy.io/jtoy/scan"
)

var (
	execute   = flag.String("e", "", "evaluate `expression` and exit")
	diffMD    = flag.String("D", "", "print a diff of the J examples in the markdown `file`")
	updateMD  = flag.String("M", "", "bring the J examples in the markdown `file` up to date")
	extractMD = flag.String("extract", "", "print the J transcript embedded in the markdown `file`")
	maxdepth  = flag.Int("maxdepth", config.DefaultMaxDepth, "maximum parenthesis nesting `depth`")
	debugFlag = flag.String("debug", "", "comma-separated debug settings (tokens, parse)")
)

var conf config.Config

func main() {
	log.SetFlags(0)
	log.SetPrefix("jtoy: ")

	flag.Usage = usage
	flag.Parse()

	conf.SetMaxDepth(*maxdepth)
	for _, d := range splitComma(*debugFlag) {
		conf.SetDebug(d, true)
	}

	switch {
	case *execute != "":
		out := run.NewSession(&conf).EvalText(*execute)
		if out != "" {
			fmt.Fprintln(conf.Output(), out)
		}
		return
	case *diffMD != "":
		diff, err := markdown.DiffFile(&conf, *diffMD)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(diff)
		if diff != "" {
			os.Exit(1)
		}
		return
	case *updateMD != "":
		if err := markdown.UpdateFile(&conf, *updateMD); err != nil {
			log.Fatal(err)
		}
		return
	case *extractMD != "":
		transcript, err := markdown.ExtractFile(*extractMD)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(transcript)
		return
	}

	switch flag.NArg() {
	case 0:
		interact(&conf)
	case 1:
		name := flag.Arg(0)
		fd, err := os.Open(name)
		if err != nil {
			log.Fatal(err)
		}
		defer fd.Close()
		runFile(name, fd)
	default:
		flag.Usage()
	}
}

// runFile evaluates every line of the named reader, printing results
// and errors, continuing past failing lines.
func runFile(name string, fd *os.File) {
	scanner := scan.New(&conf, name, bufio.NewReader(fd))
	parser := parse.NewParser(name, scanner, &conf)
	for !run.Run(parser, &conf, false) {
	}
}

func splitComma(s string) []string {
	var out []string
	for s != "" {
		i := 0
		for i < len(s) && s[i] != ',' {
			i++
		}
		if i > 0 {
			out = append(out, s[:i])
		}
		if i == len(s) {
			break
		}
		s = s[i+1:]
	}
	return out
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: jtoy [options] [file.ijs]\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
	os.Exit(2)
}
