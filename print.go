// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blogmd

import "strings"

// A printer accumulates the HTML for a single fragment.
type printer struct {
	buf strings.Builder
}

// html writes raw HTML.
func (p *printer) html(list ...string) {
	for _, s := range list {
		p.buf.WriteString(s)
	}
}

// inline writes the inline conversion of Markdown text s,
// trimmed of surrounding spaces, tabs and newlines.
func (p *printer) inline(s string) {
	p.buf.WriteString(trimSpaceTabNewline(Inline(s)))
}

func (p *printer) String() string {
	return p.buf.String()
}
