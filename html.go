// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blogmd

import "strings"

// angleEscaper escapes the angle brackets in Markdown source text
// so that they are never taken for HTML tags.
// Ampersands are left alone: text that already contains
// an entity like &lt; is not escaped a second time.
var angleEscaper = strings.NewReplacer(
	`<`, `&lt;`,
	`>`, `&gt;`,
)

// angleUnescaper reverses angleEscaper.
// Code spans use it to show their content literally.
var angleUnescaper = strings.NewReplacer(
	`&lt;`, `<`,
	`&gt;`, `>`,
)

// escapeAngles returns s with < and > replaced by entities.
func escapeAngles(s string) string {
	if !strings.ContainsAny(s, "<>") {
		return s
	}
	return angleEscaper.Replace(s)
}

// unescapeAngles returns s with &lt; and &gt; replaced by < and >.
func unescapeAngles(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	return angleUnescaper.Replace(s)
}
