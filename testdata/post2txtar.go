// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// go run post2txtar.go [-goldmark] post.md... > posts.txt
//
// Post2txtar records the current conversion of each post as a golden
// test case. Check the resulting HTML by hand before committing it.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/txtar"
	"rsc.io/blogmd"
)

var goldmarkFlag = flag.Bool("goldmark", false, "mark the archive as agreeing with goldmark")

func main() {
	log.SetFlags(0)
	log.SetPrefix("post2txtar: ")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: post2txtar [-goldmark] file.md...\n")
		os.Exit(2)
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
	}

	comment := "// go run post2txtar.go " + strings.Join(os.Args[1:], " ") + "\n"
	if *goldmarkFlag {
		comment += "Goldmark: true\n"
	}
	a := &txtar.Archive{Comment: []byte(comment)}
	for _, file := range flag.Args() {
		data, err := os.ReadFile(file)
		if err != nil {
			log.Fatal(err)
		}
		frags, err := blogmd.Convert(blogmd.NewStringSource(string(data)))
		if err != nil {
			log.Fatalf("%s: %v", file, err)
		}
		var html strings.Builder
		for _, f := range frags {
			html.WriteString(f)
			html.WriteString("\n")
		}
		name := strings.TrimSuffix(filepath.Base(file), ".md")
		a.Files = append(a.Files,
			txtar.File{
				Name: name + ".md",
				Data: []byte(encode(string(data))),
			},
			txtar.File{
				Name: name + ".html",
				Data: []byte(encode(html.String())),
			},
		)
	}

	os.Stdout.Write(txtar.Format(a))
}

func encode(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "^M\n")
	s = strings.ReplaceAll(s, " \n", " ^J\n")
	s = strings.ReplaceAll(s, "\t\n", "\t^J\n")
	if s != "" && !strings.HasSuffix(s, "\n") {
		s += "^D\n"
	}
	return s
}
