// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blogmd

import "strings"

// quote converts a block quote.
// The "> " prefix is removed from every line and the remaining
// text is converted as a single run of inline text.
func quote(lines []string) (string, bool) {
	text := make([]string, len(lines))
	for i, line := range lines {
		t, ok := strings.CutPrefix(line, "> ")
		if !ok {
			return "", false
		}
		text[i] = t
	}
	var p printer
	p.html("<blockquote>")
	p.inline(strings.Join(text, "\n"))
	p.html("</blockquote>")
	return p.String(), true
}
