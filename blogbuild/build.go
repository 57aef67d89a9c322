// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"golang.org/x/net/html"
	"rsc.io/blogmd"
)

// dateLayout formats the date a post was written,
// like "March  5, 2024".
const dateLayout = "January _2, 2006"

// A post is a converted blog post.
type post struct {
	Name      string        // base name of the post, without extension
	Title     template.HTML // HTML of the first <h1>, or Name
	TextTitle string        // Title with markup removed, for <title>
	Date      string        // authored-on date
	Body      template.HTML // concatenated fragments

	mtime time.Time
}

// A builder writes blog pages.
type builder struct {
	outDir string             // output directory; "" means next to each post
	page   *template.Template // layout for a post
	index  *template.Template // layout for the index
	logf   func(format string, args ...any)
}

// loadPost reads and converts the Markdown post in file.
func (b *builder) loadPost(file string) (*post, error) {
	info, err := os.Stat(file)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p := blogmd.NewParser(blogmd.NewReader(f))
	if b.logf != nil {
		p.Logf = func(format string, args ...any) {
			b.logf("%s: "+format, append([]any{file}, args...)...)
		}
	}
	var body strings.Builder
	name := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	title := template.HTML(template.HTMLEscapeString(name))
	haveTitle := false
	for frag, err := range p.All() {
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		if !haveTitle {
			if rest, ok := strings.CutPrefix(frag, "<h1>"); ok {
				t, _, _ := strings.Cut(rest, "</h1>")
				title = template.HTML(t)
				haveTitle = true
			}
		}
		body.WriteString(frag)
		body.WriteString("\n")
	}

	return &post{
		Name:      name,
		Title:     title,
		TextTitle: textContent(string(title)),
		Date:      info.ModTime().Format(dateLayout),
		Body:      template.HTML(body.String()),
		mtime:     info.ModTime(),
	}, nil
}

// textContent returns the text of the HTML fragment s,
// with tags removed and character references decoded.
func textContent(s string) string {
	z := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	for {
		switch z.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.Write(z.Text())
		}
	}
}

// buildPost converts the post in file and writes its page.
func (b *builder) buildPost(file string) (*post, error) {
	p, err := b.loadPost(file)
	if err != nil {
		return nil, err
	}
	if err := b.write(filepath.Join(b.dir(filepath.Dir(file)), p.Name+".html"), b.page, p); err != nil {
		return nil, err
	}
	return p, nil
}

// publish builds the post in file and then updates the index
// of the posts in the same directory, without rebuilding their pages.
func (b *builder) publish(file string) error {
	if _, err := b.buildPost(file); err != nil {
		return err
	}
	return b.eachPost(filepath.Dir(file), b.loadPost)
}

// buildAll builds every post in dir and then the index.
func (b *builder) buildAll(dir string) error {
	return b.eachPost(dir, b.buildPost)
}

// eachPost calls do for every *.md file in dir and writes
// an index of the posts it returns.
// A post that fails is reported in the returned error
// and left out of the index, but does not stop the others.
func (b *builder) eachPost(dir string, do func(file string) (*post, error)) error {
	files, err := filepath.Glob(filepath.Join(dir, "*.md"))
	if err != nil {
		return err
	}
	var posts []*post
	var errs []error
	for _, file := range files {
		p, err := do(file)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		posts = append(posts, p)
	}

	slices.SortStableFunc(posts, func(x, y *post) int {
		return y.mtime.Compare(x.mtime)
	})
	if err := b.write(filepath.Join(b.dir(dir), "index.html"), b.index, posts); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// dir returns the output directory for posts read from src.
func (b *builder) dir(src string) string {
	if b.outDir != "" {
		return b.outDir
	}
	return src
}

// write executes t with data and writes the result to file.
func (b *builder) write(file string, t *template.Template, data any) error {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	if err := os.MkdirAll(filepath.Dir(file), 0777); err != nil {
		return err
	}
	return os.WriteFile(file, buf.Bytes(), 0666)
}

const pageLayout = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.TextTitle}}</title>
</head>
<body>
<article>
<p class="date">{{.Date}}</p>
{{.Body}}</article>
</body>
</html>
`

const indexLayout = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Posts</title>
</head>
<body>
<ul>
{{range .}}<li><a href="{{.Name}}.html">{{.Title}}</a> <span class="date">{{.Date}}</span></li>
{{end}}</ul>
</body>
</html>
`
