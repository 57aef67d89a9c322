// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Md2html converts blog Markdown to HTML fragments.
//
// Usage:
//
//	md2html [-v] [file...]
//
// Md2html reads the named files, or else standard input, as Markdown documents
// and prints the HTML for each block to standard output, one block per line.
//
// The -v flag reports blocks that could not be converted as written.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"rsc.io/blogmd"
)

var (
	vflag = flag.Bool("v", false, "report malformed blocks on standard error")
	exit  = 0
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: md2html [-v] [file...]\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	log.SetPrefix("md2html: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	w := bufio.NewWriter(os.Stdout)
	if flag.NArg() == 0 {
		if err := do(w, os.Stdin, "stdin"); err != nil {
			w.Flush()
			log.Fatal(err)
		}
	} else {
		for _, arg := range flag.Args() {
			f, err := os.Open(arg)
			if err != nil {
				log.Print(err)
				exit = 1
				continue
			}
			if err := do(w, f, arg); err != nil {
				log.Print(err)
				exit = 1
			}
			f.Close()
		}
	}
	if err := w.Flush(); err != nil {
		log.Fatal(err)
	}
	os.Exit(exit)
}

// do converts the Markdown read from r, writing one fragment per line to w.
func do(w io.Writer, r io.Reader, name string) error {
	p := blogmd.NewParser(blogmd.NewReader(r))
	if *vflag {
		p.Logf = func(format string, args ...any) {
			log.Printf("%s: "+format, append([]any{name}, args...)...)
		}
	}
	for frag, err := range p.All() {
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if _, err := fmt.Fprintln(w, frag); err != nil {
			return err
		}
	}
	return nil
}
