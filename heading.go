// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blogmd

import "strconv"

// heading converts heading lines like "## Heading".
// Each line becomes its own <h1> through <h6> element.
func heading(lines []string) (string, bool) {
	var p printer
	for _, line := range lines {
		level, text, ok := trimATX(line)
		if !ok {
			return "", false
		}
		n := strconv.Itoa(level)
		p.html("<h", n, ">")
		p.inline(text)
		p.html("</h", n, ">")
	}
	return p.String(), true
}

// trimATX trims a heading prefix (1-6 #s followed by a space) from s,
// returning the heading level and the remaining text.
func trimATX(s string) (level int, text string, ok bool) {
	for level < len(s) && s[level] == '#' {
		level++
	}
	if level == 0 || level > 6 || level >= len(s) || s[level] != ' ' {
		return 0, "", false
	}
	return level, s[level+1:], true
}
