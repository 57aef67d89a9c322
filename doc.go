// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package blogmd converts a small subset of Markdown into HTML
// fragments for a static blog.
//
// The input is a sequence of lines grouped into blocks:
//
//	# Heading               ⇒ <h1>Heading</h1>
//	> quoted text           ⇒ <blockquote>quoted text</blockquote>
//	- item                  ⇒ <ul><li>item</li></ul>
//	1. item                 ⇒ <ol><li>item</li></ol>
//	![alt](src)             ⇒ <img src="src" alt="alt"/>
//	```lang ... ```         ⇒ <pre><code class="language-lang">...</code></pre>
//	anything else           ⇒ <p>anything else</p>
//
// Paragraphs end at a blank line. Every other block ends at the first
// line that starts a different kind of block, except that a code block
// runs to its closing fence. Text inside headings, quotes, list items
// and paragraphs may use `code`, _italic_, *bold* and [link](href)
// markup; see [Inline].
//
// Malformed input is never an error. A block that does not have the
// form its first line promised is converted as a paragraph, an
// unclosed inline delimiter is kept as plain text, and a code block
// missing its closing fence is parsed again as ordinary text.
//
// There is no support for nested lists, tables, footnotes,
// reference links or raw HTML.
package blogmd

import "strings"

// Convert reads all of src and returns the HTML fragments for its blocks,
// in input order. If src fails, Convert returns the fragments
// completed before the failure along with the error.
func Convert(src LineSource) ([]string, error) {
	var frags []string
	for frag, err := range NewParser(src).All() {
		if err != nil {
			return frags, err
		}
		frags = append(frags, frag)
	}
	return frags, nil
}

// ToHTML converts the Markdown text md to HTML,
// concatenating the fragments for all its blocks.
func ToHTML(md string) string {
	var b strings.Builder
	p := NewParser(NewStringSource(md))
	for {
		frag, err := p.Next()
		if err != nil {
			// A string source fails only with io.EOF.
			break
		}
		b.WriteString(frag)
	}
	return b.String()
}
