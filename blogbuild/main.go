// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Blogbuild generates blog pages from Markdown posts.
//
// Usage:
//
//	blogbuild [-o dir] [-layout file] [-v] -post file.md
//	blogbuild [-o dir] [-layout file] [-v] -all [-dir dir]
//
// With -post, blogbuild converts the named post to HTML and writes
// it, wrapped in the page layout, to a file with the same base name
// and an .html extension. The page shows the date the post was last
// modified as its date of authorship. Blogbuild then rewrites the
// index.html listing the posts in the same directory, newest first.
//
// With -all, blogbuild does the same for every *.md file in the
// -dir directory (default "posts") before writing the index.
//
// Pages are written to the -o directory, or else next to their posts.
// The -layout flag names an html/template file to use for pages in place
// of the built-in layout; it is executed with a post's Title, TextTitle, Date and Body.
//
// The -v flag reports blocks that could not be converted as written.
package main

import (
	"flag"
	"fmt"
	"html/template"
	"log"
	"os"
)

var (
	postFlag   = flag.String("post", "", "build the post `file` and update the index")
	allFlag    = flag.Bool("all", false, "build all posts and the index")
	dirFlag    = flag.String("dir", "posts", "read posts from `dir` for -all")
	outFlag    = flag.String("o", "", "write pages to `dir`")
	layoutFlag = flag.String("layout", "", "use page layout template `file`")
	vflag      = flag.Bool("v", false, "report malformed blocks on standard error")
	exit       = 0
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: blogbuild [-o dir] [-layout file] [-v] -post file.md\n")
	fmt.Fprintf(os.Stderr, "       blogbuild [-o dir] [-layout file] [-v] -all [-dir dir]\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	log.SetPrefix("blogbuild: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 0 || (*postFlag == "") == !*allFlag {
		// -post and -all conflict, and one of them is required.
		usage()
	}

	b := &builder{outDir: *outFlag}
	var err error
	b.page, err = loadLayout(*layoutFlag)
	if err != nil {
		log.Fatal(err)
	}
	b.index = template.Must(template.New("index").Parse(indexLayout))
	if *vflag {
		b.logf = log.Printf
	}

	if *postFlag != "" {
		err = b.publish(*postFlag)
	} else {
		err = b.buildAll(*dirFlag)
	}
	if err != nil {
		log.Print(err)
		exit = 1
	}
	os.Exit(exit)
}

// loadLayout returns the page template in file,
// or the built-in page layout if file is empty.
func loadLayout(file string) (*template.Template, error) {
	if file == "" {
		return template.New("page").Parse(pageLayout)
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return template.New("page").Parse(string(data))
}
