// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blogmd

import (
	"strings"
)

// codeBlock converts a fenced code block:
//
//	```go
//	fmt.Println("hello")
//	```
//
// The opening fence must name a language, and the last line must be
// the closing fence. The lines between the fences are copied to the
// output exactly as written, with no inline conversion or escaping.
func codeBlock(lines []string) (string, bool) {
	if len(lines) < 2 {
		return "", false
	}
	lang, ok := trimFence(lines[0])
	if !ok || lang == "" {
		return "", false
	}
	if _, ok := trimFence(lines[len(lines)-1]); !ok {
		return "", false
	}

	var p printer
	p.html(`<pre><code class="language-`, lang, `">`)
	for i, line := range lines[1 : len(lines)-1] {
		if i > 0 {
			p.html("\n")
		}
		p.html(line)
	}
	p.html("</code></pre>")
	return p.String(), true
}

// trimFence trims a code fence from the start of s
// and returns the first word of the info string that follows it.
func trimFence(s string) (info string, ok bool) {
	t, ok := strings.CutPrefix(s, "```")
	if !ok {
		return "", false
	}
	info = trimSpaceTab(t)
	if i := strings.IndexAny(info, " \t"); i >= 0 {
		info = info[:i]
	}
	return info, true
}
