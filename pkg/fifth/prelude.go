// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package fifth

import "nickandperla.net/fifth/internal/stdlib"

// DefaultPrelude contains the derived words that are automatically loaded
// unless WithNoPrelude is given. They are written in fifth itself.
var DefaultPrelude = stdlib.Prelude
