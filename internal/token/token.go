// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package token defines fifth's structural words and the name case policy.
package token

import "strings"

// Structural words are recognized by the control-flow resolver rather than
// ordinary dictionary dispatch. They still get dictionary entries so that
// lookup finds them and WORDS lists them.
const (
	Define    = ":"
	EndDefine = ";"
	If        = "IF"
	Else      = "ELSE"
	Then      = "THEN"
	Begin     = "BEGIN"
	Until     = "UNTIL"
	Do        = "DO"
	Loop      = "LOOP"
	Index     = "I"
)

// Comment words. A standalone "(" discards everything through the next
// standalone ")".
const (
	Comment    = "("
	EndComment = ")"
)

// Normalize applies the dictionary case policy: word names compare
// case-insensitively and are canonicalized to upper case.
func Normalize(name string) string {
	return strings.ToUpper(name)
}

// IsOpener reports whether name opens a control structure.
func IsOpener(name string) bool {
	switch name {
	case If, Begin, Do:
		return true
	}
	return false
}

// IsCloser reports whether name closes a control structure.
func IsCloser(name string) bool {
	switch name {
	case Then, Until, Loop:
		return true
	}
	return false
}

// IsStructural reports whether name is handled by the resolver instead of
// ordinary dictionary dispatch.
func IsStructural(name string) bool {
	switch name {
	case Define, EndDefine, If, Else, Then, Begin, Until, Do, Loop, Index:
		return true
	}
	return false
}
