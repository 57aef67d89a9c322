// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blogmd

import "strings"

// image converts image lines of the form ![alt](src).
// Each line becomes its own <img> element.
// The alt text and source are copied without inline conversion.
func image(lines []string) (string, bool) {
	var p printer
	for _, line := range lines {
		alt, src, ok := parseImage(line)
		if !ok {
			return "", false
		}
		p.html(`<img src="`, src, `" alt="`, alt, `"/>`)
	}
	return p.String(), true
}

// parseImage parses s as exactly ![alt](src), with nothing after
// the closing parenthesis.
// The alt text ends at the first ] and the source at the first ).
func parseImage(s string) (alt, src string, ok bool) {
	s, ok = strings.CutPrefix(s, "![")
	if !ok {
		return "", "", false
	}
	alt, rest, ok := strings.Cut(s, "]")
	if !ok {
		return "", "", false
	}
	rest, ok = strings.CutPrefix(rest, "(")
	if !ok {
		return "", "", false
	}
	src, rest, ok = strings.Cut(rest, ")")
	if !ok || rest != "" {
		return "", "", false
	}
	return alt, src, true
}
