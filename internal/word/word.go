// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package word defines fifth's stack cells, dictionary words, and the
// compiled node tree produced by control-flow resolution.
package word

import (
	"strconv"
	"strings"
)

// Cell is the fundamental stack value: a signed 64-bit integer, always
// passed by value.
type Cell int64

// Code identifies the native behavior of a primitive word. CodeNone marks
// user definitions.
type Code int

const (
	CodeNone Code = iota

	CodeAdd
	CodeSub
	CodeMul
	CodeDiv
	CodeMod
	CodeEq
	CodeLt
	CodeGt
	CodeDup
	CodeDrop
	CodeSwap
	CodeOver
	CodeRot
	CodeDepth
	CodeDot
	CodeEmit
	CodeCR
	CodeDotS
	CodeWords

	// CodeMarker tags control and definition words (: ; IF ELSE THEN BEGIN
	// UNTIL DO LOOP I). They live in the dictionary so lookup and WORDS see
	// them, but the resolver consumes them structurally; invoking one
	// directly is a compile error.
	CodeMarker

	CodeMax
)

// Word is a named executable unit: a primitive with a native Code, or a
// definition whose Body was resolved when it was defined. Redefining a name
// installs a new Word; bodies that captured the old one keep it by identity.
type Word struct {
	Name string
	Code Code
	Body []Node
}

// Primitive reports whether the word has native behavior.
func (w *Word) Primitive() bool { return w.Code != CodeNone }

func (w *Word) String() string { return w.Name }

// Node is one element of a resolved definition body or top-level control
// structure. Branch targets are resolved structurally: nesting in the tree
// is the nesting of the source.
type Node interface {
	String() string
	node()
}

// Push pushes a literal cell.
type Push struct{ Value Cell }

// Call executes a word captured by identity at resolution time.
type Call struct{ Word *Word }

// If pops a flag and runs Then when it is nonzero, Else otherwise.
type If struct{ Then, Else []Node }

// Until runs Body, pops a flag after each pass, and repeats while the flag
// is zero.
type Until struct{ Body []Node }

// Loop pops the limit, then the start, and runs Body once per index in
// start..limit-1.
type Loop struct{ Body []Node }

// Index pushes the innermost loop index.
type Index struct{}

func (Push) node()  {}
func (Call) node()  {}
func (If) node()    {}
func (Until) node() {}
func (Loop) node()  {}
func (Index) node() {}

func (p Push) String() string { return strconv.FormatInt(int64(p.Value), 10) }

func (c Call) String() string { return c.Word.Name }

func (n If) String() string {
	var sb strings.Builder
	sb.WriteString("IF ")
	sb.WriteString(Render(n.Then))
	if len(n.Else) > 0 {
		sb.WriteString(" ELSE ")
		sb.WriteString(Render(n.Else))
	}
	sb.WriteString(" THEN")
	return sb.String()
}

func (n Until) String() string {
	return "BEGIN " + Render(n.Body) + " UNTIL"
}

func (n Loop) String() string {
	return "DO " + Render(n.Body) + " LOOP"
}

func (Index) String() string { return "I" }

// Render joins the source rendering of nodes with single spaces.
func Render(nodes []Node) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = n.String()
	}
	return strings.Join(parts, " ")
}
