// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

//go:build js && wasm

package main

import "nickandperla.net/fifth/pkg/fifth"

func runREPL(runtime *fifth.Runtime, cfg Config) {
	// No interactive REPL in WASM mode; hosts call Interpret directly.
}
