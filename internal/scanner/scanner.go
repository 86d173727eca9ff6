// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package scanner provides a streaming whitespace lexer for fifth.
package scanner

import (
	"bufio"
	"io"
	"strings"
	"unicode"
)

// Scanner splits fifth input into whitespace-delimited tokens. It never
// interprets token content; malformed tokens are rejected later by
// resolution.
type Scanner struct {
	reader *bufio.Reader
	buf    strings.Builder
	line   int // Current line number (1-based)
}

// Item is one scanned token and the line it started on.
type Item struct {
	Text string
	Line int
}

// New creates a new Scanner from an io.Reader.
func New(r io.Reader) *Scanner {
	return &Scanner{
		reader: bufio.NewReader(r),
		line:   1,
	}
}

// NewFromString creates a new Scanner from a string.
func NewFromString(s string) *Scanner {
	return New(strings.NewReader(s))
}

// Line returns the current line number (1-based).
func (s *Scanner) Line() int {
	return s.line
}

// Next returns the next token from the input. A nil item means end of
// input; empty or whitespace-only input yields no items.
func (s *Scanner) Next() (*Item, error) {
	s.buf.Reset()
	startLine := s.line

	for {
		r, _, err := s.reader.ReadRune()
		if err == io.EOF {
			if s.buf.Len() > 0 {
				return &Item{Text: s.buf.String(), Line: startLine}, nil
			}
			return nil, nil
		}
		if err != nil {
			return nil, err
		}

		// Whitespace and control characters delimit tokens.
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			if r == '\n' {
				s.line++
			}
			if s.buf.Len() > 0 {
				return &Item{Text: s.buf.String(), Line: startLine}, nil
			}
			startLine = s.line
			continue
		}

		s.buf.WriteRune(r)
	}
}
