// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blogmd

import (
	"errors"
	"io"
	"iter"
	"strconv"
	"strings"
)

// A Kind identifies the kind of block the parser is assembling.
type Kind int

const (
	Idle Kind = iota // no block open
	UnorderedList
	OrderedList
	CodeBlock
	Heading
	Quote
	Image
	Paragraph

	blank // empty line; never a parser state
)

var kindNames = [...]string{
	Idle:          "Idle",
	UnorderedList: "UnorderedList",
	OrderedList:   "OrderedList",
	CodeBlock:     "CodeBlock",
	Heading:       "Heading",
	Quote:         "Quote",
	Image:         "Image",
	Paragraph:     "Paragraph",
	blank:         "blank",
}

func (k Kind) String() string {
	if 0 <= k && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// classify reports the kind of block that line starts or continues.
// The order of the tests matters: the first match wins.
func classify(line string) Kind {
	switch {
	case strings.HasPrefix(line, "- "):
		return UnorderedList
	case strings.HasPrefix(line, "1. "):
		return OrderedList
	case strings.HasPrefix(line, "```"):
		return CodeBlock
	case strings.HasPrefix(line, "#"):
		return Heading
	case strings.HasPrefix(line, "> "):
		return Quote
	case strings.HasPrefix(line, "!"):
		return Image
	case line == "":
		return blank
	}
	return Paragraph
}

// A Parser converts a sequence of Markdown lines into HTML fragments,
// one fragment per block.
//
// A Parser reads from its [LineSource] only as far as it must
// to complete the next block, so fragments can be consumed
// as the input is being produced.
type Parser struct {
	// Logf, if non-nil, is called to report input that could not be
	// converted as written: a block that failed validation and was
	// rendered as a paragraph instead, or a code block with no closing fence.
	Logf func(format string, args ...any)

	src    LineSource
	lineno int // number of lines read from src

	kind  Kind     // kind of open block
	buf   []string // lines of open block
	start int      // line number of buf[0]

	// Lines queued for a second pass after an unterminated code block.
	// The first queued line is the abandoned fence, which must
	// not be taken for a fence again.
	requeue     []string
	requeueLine int
	literal     bool

	eof bool
	err error
}

// NewParser returns a Parser reading lines from src.
func NewParser(src LineSource) *Parser {
	return &Parser{src: src}
}

// Next returns the HTML for the next block of the input.
// After the last block it returns "", [io.EOF].
// If the [LineSource] fails, Next returns a [*LineError]
// and keeps returning it on later calls.
func (p *Parser) Next() (string, error) {
	if p.err != nil {
		return "", p.err
	}
	for {
		line, lineno, err := p.readLine()
		if err == io.EOF {
			if p.kind == CodeBlock {
				p.rescan()
				continue
			}
			if frag := p.flush(Idle); frag != "" {
				return frag, nil
			}
			return "", io.EOF
		}
		if err != nil {
			p.err = &LineError{Line: lineno, Err: err}
			return "", p.err
		}
		if frag := p.addLine(line, lineno); frag != "" {
			return frag, nil
		}
	}
}

// All returns an iterator over the remaining fragments.
// Iteration stops after the last fragment or at the first error,
// which is yielded along with an empty fragment.
func (p *Parser) All() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for {
			frag, err := p.Next()
			if err == io.EOF {
				return
			}
			if !yield(frag, err) || err != nil {
				return
			}
		}
	}
}

// readLine returns the next line to process and its line number,
// taking requeued lines before reading more input.
func (p *Parser) readLine() (string, int, error) {
	if len(p.requeue) > 0 {
		line := p.requeue[0]
		p.requeue = p.requeue[1:]
		lineno := p.requeueLine
		p.requeueLine++
		return line, lineno, nil
	}
	if p.eof {
		return "", p.lineno, io.EOF
	}
	line, err := p.src.ReadLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			p.eof = true
			return "", p.lineno, io.EOF
		}
		return "", p.lineno + 1, err
	}
	p.lineno++
	return line, p.lineno, nil
}

// addLine adds line to the open block or starts a new block with it.
// It returns the HTML for the block that line completed, if any.
func (p *Parser) addLine(line string, lineno int) string {
	if p.kind == CodeBlock {
		p.buf = append(p.buf, line)
		if strings.HasPrefix(line, "```") {
			return p.flush(Idle)
		}
		return ""
	}

	k := classify(line)
	if p.literal {
		// The abandoned opening fence of an unterminated code block.
		k = Paragraph
		p.literal = false
	}
	if k == blank {
		if p.kind == Paragraph {
			return p.flush(Idle)
		}
		k = Paragraph
	}
	if k == p.kind {
		p.buf = append(p.buf, line)
		return ""
	}
	frag := p.flush(k)
	p.buf = append(p.buf, line)
	p.start = lineno
	return frag
}

// flush converts the open block to HTML and makes next the open kind,
// with an empty buffer.
// It returns "" when there was no block to convert.
func (p *Parser) flush(next Kind) string {
	kind, lines, start := p.kind, p.buf, p.start
	p.kind = next
	p.buf = nil
	if kind == Idle || len(lines) == 0 {
		return ""
	}
	html, ok := convertBlock(kind, lines)
	if !ok {
		p.logf("line %d: malformed %v block; converting as paragraph", start, kind)
		html = paragraph(lines)
	}
	return html
}

// rescan handles a code block left open at the end of the input.
// The block's lines are queued to be parsed again, with the opening
// fence treated as ordinary text, so that none of the text is lost.
func (p *Parser) rescan() {
	p.logf("line %d: code block has no closing fence", p.start)
	p.requeue = p.buf
	p.requeueLine = p.start
	p.literal = true
	p.kind = Idle
	p.buf = nil
}

func (p *Parser) logf(format string, args ...any) {
	if p.Logf != nil {
		p.Logf(format, args...)
	}
}

// A blockConverter converts the lines of a block to HTML,
// reporting whether the lines were valid for that kind of block.
type blockConverter func(lines []string) (html string, ok bool)

var blockConverters = [...]blockConverter{
	UnorderedList: unorderedList,
	OrderedList:   orderedList,
	CodeBlock:     codeBlock,
	Heading:       heading,
	Quote:         quote,
	Image:         image,
	Paragraph:     func(lines []string) (string, bool) { return paragraph(lines), true },
}

func convertBlock(kind Kind, lines []string) (string, bool) {
	if kind <= Idle || int(kind) >= len(blockConverters) || blockConverters[kind] == nil {
		return "", false
	}
	return blockConverters[kind](lines)
}
