// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blogmd

import "strings"

// Inline converts a single run of Markdown text to HTML.
// The text must not include a block marker such as "# " or "- ";
// the result is not wrapped in any block tag.
//
// Inline recognizes four kinds of markup:
//
//	`code`         ⇒ <code>code</code>
//	_italic_       ⇒ <i>italic</i>
//	*bold*         ⇒ <b>bold</b>
//	[text](href)   ⇒ <a href="href">text</a>
//
// Angle brackets are escaped as &lt; and &gt; before any markup is
// recognized; other characters, including &, are copied unchanged.
// A delimiter that is never closed is copied to the output as plain text,
// followed by whatever text came after it.
func Inline(text string) string {
	s := inlineScanner{s: escapeAngles(text)}
	var b strings.Builder
	b.Grow(len(s.s))
	s.text(&b)
	return b.String()
}

// Scanning Inlines
//
// The scanner makes one left-to-right pass over the escaped text.
// Each opening delimiter hands control to a function for that markup
// (code, italic, bold, link), which reads from the same cursor until it
// finds its closing delimiter and may itself call the functions for the
// markup allowed inside it:
//
//	italic: bold, link
//	bold:   italic, link
//	link:   code, italic, bold
//	code:   nothing
//
// Every call starts just past the delimiter that triggered it, so the
// cursor always moves forward and recursion depth is bounded by the
// length of the text. There is no backtracking: a span that reaches the
// end of the text unclosed is returned as its opening delimiter followed
// by the (already converted) text it consumed.

// An inlineScanner holds the cursor shared by the inline scanning functions.
type inlineScanner struct {
	s string // text with angle brackets escaped
	i int    // index of next byte to scan
}

// next returns the next byte and advances the cursor.
// At the end of the text it returns 0, false.
func (s *inlineScanner) next() (byte, bool) {
	if s.i >= len(s.s) {
		return 0, false
	}
	c := s.s[s.i]
	s.i++
	return c, true
}

// peek returns the next byte without advancing the cursor.
func (s *inlineScanner) peek() (byte, bool) {
	if s.i >= len(s.s) {
		return 0, false
	}
	return s.s[s.i], true
}

// text converts the remainder of the text, writing HTML to b.
func (s *inlineScanner) text(b *strings.Builder) {
	for {
		c, ok := s.next()
		if !ok {
			return
		}
		switch c {
		case '`':
			b.WriteString(s.code())
		case '_':
			b.WriteString(s.italic())
		case '*':
			b.WriteString(s.bold())
		case '[':
			b.WriteString(s.link())
		default:
			b.WriteByte(c)
		}
	}
}

// code scans a code span; the opening backtick has been consumed.
// Code span content is not scanned for markup.
func (s *inlineScanner) code() string {
	start := s.i
	for {
		c, ok := s.next()
		if !ok {
			return "`" + s.s[start:]
		}
		if c == '`' {
			return "<code>" + unescapeAngles(s.s[start:s.i-1]) + "</code>"
		}
	}
}

// italic scans _italic_ text; the opening underscore has been consumed.
func (s *inlineScanner) italic() string {
	var b strings.Builder
	for {
		c, ok := s.next()
		if !ok {
			return "_" + b.String()
		}
		switch c {
		case '_':
			return "<i>" + b.String() + "</i>"
		case '*':
			b.WriteString(s.bold())
		case '[':
			b.WriteString(s.link())
		default:
			b.WriteByte(c)
		}
	}
}

// bold scans *bold* text; the opening asterisk has been consumed.
func (s *inlineScanner) bold() string {
	var b strings.Builder
	for {
		c, ok := s.next()
		if !ok {
			return "*" + b.String()
		}
		switch c {
		case '*':
			return "<b>" + b.String() + "</b>"
		case '_':
			b.WriteString(s.italic())
		case '[':
			b.WriteString(s.link())
		default:
			b.WriteByte(c)
		}
	}
}

// link scans [text](href); the opening bracket has been consumed.
// The link text may contain code, italic and bold markup.
// The href is copied as is.
//
// If the closing bracket is not immediately followed by an open
// parenthesis, link returns the bracketed text and leaves the character
// after the bracket for the caller to scan.
func (s *inlineScanner) link() string {
	var text strings.Builder
	for {
		c, ok := s.next()
		if !ok {
			return "[" + text.String()
		}
		switch c {
		case '`':
			text.WriteString(s.code())
		case '_':
			text.WriteString(s.italic())
		case '*':
			text.WriteString(s.bold())
		case ']':
			if c, ok := s.peek(); !ok || c != '(' {
				return "[" + text.String() + "]"
			}
			s.i++
			start := s.i
			for {
				c, ok := s.next()
				if !ok {
					return "[" + text.String() + "](" + s.s[start:]
				}
				if c == ')' {
					return `<a href="` + s.s[start:s.i-1] + `">` + text.String() + "</a>"
				}
			}
		default:
			text.WriteByte(c)
		}
	}
}
