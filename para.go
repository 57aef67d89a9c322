// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blogmd

import "strings"

// paragraph converts lines into a <p> element.
// Paragraph conversion cannot fail; it is also the fallback
// for every other kind of block that turns out to be malformed.
// Lines containing only spaces and tabs make no paragraph at all,
// and paragraph returns "".
func paragraph(lines []string) string {
	// Join all the lines to produce the full string of the paragraph.
	// Leading and trailing blank lines, which come from the blank lines
	// that separate blocks, are trimmed.
	s := trimSpaceTabNewline(strings.Join(lines, "\n"))
	if s == "" {
		return ""
	}
	var p printer
	p.html("<p>")
	p.inline(s)
	p.html("</p>")
	return p.String()
}
