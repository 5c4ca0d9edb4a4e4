// Package smbconf implements the line-oriented grammar of smb.conf:
// bracketed section headers followed by free-form content lines.
//
// The grammar is deliberately minimal. A boundary is a line whose trimmed
// form is "[" + nonblank content + "]"; everything else, including comments
// and blank lines, is opaque content that must survive a parse/render cycle
// byte for byte. There are no reject states: any input parses.
package smbconf

import (
	"regexp"
	"strings"
)

// pathLine matches "path = value" with flexible whitespace, case-insensitive.
var pathLine = regexp.MustCompile(`(?i)^\s*path\s*=\s*(.*)$`)

// Section is one bracketed block: the verbatim header line and the content
// lines up to (but not including) the next header.
type Section struct {
	// Name is the trimmed content between the brackets.
	Name string
	// Header is the original header line, preserved verbatim for rendering.
	Header string
	// Lines are the content lines following the header, verbatim.
	Lines []string
}

// Document is an ordered view of a config file: the lines before the first
// header (preserved verbatim) followed by the sections in file order.
// Duplicate section names are legal and stored independently.
type Document struct {
	Preamble []string
	Sections []Section

	// trailingNewline records whether the source text ended with a newline,
	// so removing the last section cannot strip the terminator of the line
	// before it.
	trailingNewline bool
}

// Parse splits text into a Document. It never fails; malformed input is
// simply content.
func Parse(text string) *Document {
	doc := &Document{}
	cur := -1

	lines := strings.Split(text, "\n")
	if text != "" && strings.HasSuffix(text, "\n") {
		doc.trailingNewline = true
		lines = lines[:len(lines)-1]
	}

	for _, line := range lines {
		if name, ok := headerName(line); ok {
			doc.Sections = append(doc.Sections, Section{Name: name, Header: line})
			cur = len(doc.Sections) - 1
			continue
		}
		if cur < 0 {
			doc.Preamble = append(doc.Preamble, line)
		} else {
			doc.Sections[cur].Lines = append(doc.Sections[cur].Lines, line)
		}
	}

	return doc
}

// Render reassembles the document: Render(Parse(text)) == text, and lines
// outside a removed section come back byte for byte, final newline included.
func (d *Document) Render() string {
	var lines []string
	lines = append(lines, d.Preamble...)
	for _, s := range d.Sections {
		lines = append(lines, s.Header)
		lines = append(lines, s.Lines...)
	}

	out := strings.Join(lines, "\n")
	if d.trailingNewline && len(lines) > 0 {
		out += "\n"
	}
	return out
}

// Remove drops the first section whose name equals name exactly and reports
// whether anything was removed. Matching is against the full trimmed header
// content: a header line with trailing text after the closing bracket is
// not a boundary and can never match.
func (d *Document) Remove(name string) bool {
	for i, s := range d.Sections {
		if s.Name == name {
			d.Sections = append(d.Sections[:i], d.Sections[i+1:]...)
			return true
		}
	}
	return false
}

// Path returns the value of the section's first "path = ..." line, trimmed.
// The second return is false when the section has no such line.
func (s Section) Path() (string, bool) {
	for _, line := range s.Lines {
		if m := pathLine.FindStringSubmatch(line); m != nil {
			return strings.TrimSpace(m[1]), true
		}
	}
	return "", false
}

// headerName reports whether line is a section boundary and returns the
// trimmed bracket content. A line like "[name] ; comment" is content, not
// a boundary: the trimmed line must end with the closing bracket.
func headerName(line string) (string, bool) {
	t := strings.TrimSpace(line)
	if len(t) < 3 || !strings.HasPrefix(t, "[") || !strings.HasSuffix(t, "]") {
		return "", false
	}
	name := strings.TrimSpace(t[1 : len(t)-1])
	if name == "" {
		return "", false
	}
	return name, true
}
