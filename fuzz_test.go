// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blogmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
)

func FuzzInline(f *testing.F) {
	for _, tt := range inlineTests {
		f.Add(tt.in)
	}
	f.Fuzz(func(t *testing.T, s string) {
		out := Inline(s)
		if strings.ContainsAny(s, "`_*[") {
			return
		}
		want := strings.ReplaceAll(strings.ReplaceAll(s, "<", "&lt;"), ">", "&gt;")
		if out != want {
			t.Fatalf("Inline(%q) = %q, want %q", s, out, want)
		}
	})
}

// FuzzGoldmark compares paragraph splitting with goldmark,
// for input made only of lower-case letters and newlines,
// where the two must agree.
func FuzzGoldmark(f *testing.F) {
	f.Add("abc\ndef\n\nghi\n")
	f.Add("a\n\n\nb")
	f.Add("\n\nx\n")
	f.Add("")
	f.Fuzz(func(t *testing.T, s string) {
		for i := 0; i < len(s); i++ {
			if c := s[i]; c != '\n' && (c < 'a' || 'z' < c) {
				return
			}
		}

		frags, err := Convert(NewStringSource(s))
		if err != nil {
			t.Fatal(err)
		}
		out := normalizeGoldmark(joinFragments(frags))

		var buf bytes.Buffer
		if err := goldmark.Convert([]byte(s), &buf); err != nil {
			t.Fatal(err)
		}
		gout := normalizeGoldmark(buf.String())

		if out != gout {
			t.Fatalf("in: %q\nout: %q\ngout: %q", s, out, gout)
		}
	})
}
