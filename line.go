// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blogmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// A LineSource supplies Markdown input one line at a time.
//
// ReadLine returns the next line with its line terminator removed.
// At the end of input it returns "", io.EOF, and it must keep doing so
// on later calls. Any other error is reported to the caller of
// [Parser.Next] and ends parsing.
type LineSource interface {
	ReadLine() (string, error)
}

// A LineError records a failure to read an input line.
type LineError struct {
	Line int // 1-based number of the line that could not be read
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// A Reader is a [LineSource] reading from an [io.Reader].
//
// A leading byte order mark selects UTF-8 or UTF-16 decoding and is removed.
// Without a byte order mark the input must be valid UTF-8;
// invalid bytes are reported as a read error rather than replaced.
type Reader struct {
	r   *bufio.Reader
	err error
}

// NewReader returns a [Reader] reading lines from r.
func NewReader(r io.Reader) *Reader {
	t := unicode.BOMOverride(encoding.UTF8Validator)
	return &Reader{r: bufio.NewReader(transform.NewReader(r, t))}
}

func (r *Reader) ReadLine() (string, error) {
	if r.err != nil {
		return "", r.err
	}
	s, err := r.r.ReadString('\n')
	if err != nil {
		r.err = err
		if err != io.EOF || s == "" {
			return "", err
		}
	}
	return trimNewline(s), nil
}

// A sliceSource is a [LineSource] over lines already in memory.
type sliceSource struct {
	lines []string
}

// Lines returns a [LineSource] that yields each element of lines in order.
// Trailing newline and carriage return characters are removed from each line.
func Lines(lines []string) LineSource {
	return &sliceSource{lines}
}

// NewStringSource returns a [LineSource] that yields the lines of text.
// A final line without a newline is still returned;
// a trailing newline does not produce an extra empty line.
func NewStringSource(text string) LineSource {
	if text == "" {
		return &sliceSource{}
	}
	text = strings.TrimSuffix(text, "\n")
	return &sliceSource{strings.Split(text, "\n")}
}

func (s *sliceSource) ReadLine() (string, error) {
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return trimNewline(line), nil
}

// trimNewline removes any trailing \n and \r characters from s.
func trimNewline(s string) string {
	j := len(s)
	for j > 0 && (s[j-1] == '\n' || s[j-1] == '\r') {
		j--
	}
	return s[:j]
}

func trimSpaceTab(s string) string {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	s = s[i:]
	j := len(s)
	for j > 0 && (s[j-1] == ' ' || s[j-1] == '\t') {
		j--
	}
	return s[:j]
}

func trimSpaceTabNewline(s string) string {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n') {
		i++
	}
	s = s[i:]
	j := len(s)
	for j > 0 && (s[j-1] == ' ' || s[j-1] == '\t' || s[j-1] == '\n') {
		j--
	}
	return s[:j]
}
