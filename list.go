// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blogmd

import "strings"

// unorderedList converts lines starting with "- " into a <ul>,
// one item per line.
func unorderedList(lines []string) (string, bool) {
	items := make([]string, len(lines))
	for i, line := range lines {
		t, ok := strings.CutPrefix(line, "- ")
		if !ok {
			return "", false
		}
		items[i] = t
	}
	return listHTML("ul", items), true
}

// orderedList converts lines starting with a number, a dot and a space
// into an <ol>, one item per line.
// The numbers themselves are ignored: "1. 1. 1." and "1. 7. 3."
// both make a three-item list.
func orderedList(lines []string) (string, bool) {
	items := make([]string, len(lines))
	for i, line := range lines {
		t, ok := trimOrdered(line)
		if !ok {
			return "", false
		}
		items[i] = t
	}
	return listHTML("ol", items), true
}

// trimOrdered trims an ordered list marker (digits, ". ") from s.
func trimOrdered(s string) (string, bool) {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == 0 || !strings.HasPrefix(s[i:], ". ") {
		return "", false
	}
	return s[i+2:], true
}

func listHTML(tag string, items []string) string {
	var p printer
	p.html("<", tag, ">")
	for _, item := range items {
		p.html("<li>")
		p.inline(item)
		p.html("</li>")
	}
	p.html("</", tag, ">")
	return p.String()
}
