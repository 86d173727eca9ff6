// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package stdlib embeds the fifth prelude source.
package stdlib

import _ "embed"

//go:embed prelude.fs
var Prelude string
