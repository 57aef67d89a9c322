// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blogmd

import (
	"fmt"
	"strings"
	"testing"
)

var rep = strings.Repeat

// An empty out means the input is a single paragraph
// whose text comes through unchanged.
var bigTests = []struct {
	name string
	in   string
	out  string
}{
	{
		"nested bold italic",
		rep("*a _", 5000) + "b" + rep("_ a*", 5000),
		"<p>" + rep("<b>a <i>", 5000) + "b" + rep("</i> a</b>", 5000) + "</p>",
	},
	{
		"unclosed bold italic",
		rep("*a _", 5000),
		"",
	},
	{
		"unclosed italic bold",
		rep("_a *", 5000),
		"",
	},
	{
		"alternating bold",
		rep("*a ", 5000),
		"<p>" + strings.TrimSpace(rep("<b>a </b>a ", 2500)) + "</p>",
	},
	{
		"many link openers",
		rep("[a", 65000),
		"",
	},
	{
		"many link closers",
		rep("a]", 65000),
		"",
	},
	{
		"unclosed links",
		rep("[a](b", 30000),
		"",
	},
	{
		"unclosed links with angle",
		rep("[a](<b", 30000),
		"<p>" + rep("[a](&lt;b", 30000) + "</p>",
	},
	{
		"code spans",
		rep("`a", 60000),
		"<p>" + rep("<code>a</code>a", 30000) + "</p>",
	},
	{
		"long list",
		rep("- a\n", 30000),
		"<ul>" + rep("<li>a</li>", 30000) + "</ul>",
	},
	{
		"many paragraphs",
		rep("a\n\n", 30000),
		rep("<p>a</p>", 30000),
	},
	{
		"many headings",
		rep("## h\n", 30000),
		rep("<h2>h</h2>", 30000),
	},
	{
		"long code block",
		"```go\n" + rep("x\n", 30000) + "```\n",
		`<pre><code class="language-go">` + rep("x\n", 30000-1) + "x</code></pre>",
	},
	{
		"unterminated code block",
		"```go\n" + rep("x\n", 30000),
		"<p><code></code>`go" + rep("\nx", 30000) + "</p>",
	},
}

func compress(s string) string {
	var out []byte
	start := 0
S:
	for i := 0; i+4 < len(s); i++ {
		c := s[i]
		for j := i + 1; j < i+100 && j < len(s); j++ {
			if s[j] == c {
				n := 1
				w := j - i
				for j+w <= len(s) && s[i:i+w] == s[j:j+w] {
					j += w
					n++
				}
				if n > 2 {
					out = append(out, s[start:i]...)
					out = fmt.Appendf(out, "«%d:%s»", n, s[i:i+w])
					start = j
					i = start - 1
					continue S
				}
			}
		}
	}
	out = append(out, s[start:]...)
	return string(out)
}

func TestBig(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping in -short mode")
	}
	for _, tt := range bigTests {
		t.Run(tt.name, func(t *testing.T) {
			out := ToHTML(tt.in)
			if tt.out == "" {
				tt.out = "<p>" + strings.TrimSpace(tt.in) + "</p>"
			}
			if out != tt.out {
				t.Fatalf("%s: ToHTML(%q):\nhave %q\nwant %q", tt.name, compress(tt.in), compress(out), compress(tt.out))
			}
		})
	}
}

func bench(b *testing.B, text string) {
	for i := 0; i < b.N; i++ {
		_ = ToHTML(text)
	}
	b.SetBytes(int64(len(text)))
}

func BenchmarkBrackets(b *testing.B) {
	bench(b, rep("[", 10000)+"a"+rep("]", 10000))
}

func BenchmarkNested(b *testing.B) {
	bench(b, rep("*a _", 1000)+"b"+rep("_ a*", 1000))
}

func BenchmarkList(b *testing.B) {
	bench(b, rep("- a\n", 1000))
}

func BenchmarkPost(b *testing.B) {
	post := "# A post\n\nSome *bold* and _italic_ text with `code` and a [link](/x).\n\n" +
		"- one\n- two\n\n```go\nfmt.Println(1)\n```\n\n> quote\n\n![img](/i.png)\n"
	bench(b, rep(post, 100))
}
