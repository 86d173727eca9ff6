// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package eval implements the fifth evaluator.
package eval

import (
	"sync"

	"nickandperla.net/fifth/internal/token"
	"nickandperla.net/fifth/internal/word"
)

// Dictionary maps word names to their current definitions. Names compare
// case-insensitively (uppercase-normalized). Define shadows earlier entries
// with the same name; bodies that already captured the old *word.Word keep
// it by identity.
type Dictionary struct {
	mu    sync.RWMutex
	words map[string]*word.Word
	order []string // first-definition order, for WORDS
}

// NewDictionary creates an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{
		words: make(map[string]*word.Word),
	}
}

// Lookup returns the current word for name, or nil if not found.
func (d *Dictionary) Lookup(name string) *word.Word {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.words[token.Normalize(name)]
}

// Define installs w under name, shadowing any prior entry.
func (d *Dictionary) Define(name string, w *word.Word) {
	name = token.Normalize(name)
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.words[name]; !ok {
		d.order = append(d.order, name)
	}
	d.words[name] = w
}

// Has reports whether name is defined.
func (d *Dictionary) Has(name string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.words[token.Normalize(name)]
	return ok
}

// Names returns dictionary names in first-definition order.
func (d *Dictionary) Names() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// Len returns the number of defined names.
func (d *Dictionary) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.words)
}
