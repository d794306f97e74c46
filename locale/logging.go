// Copyright 2026 the resgen contributors
// SPDX-License-Identifier: BSD-3-Clause

package locale

import (
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is the logger used by package locale.
var Logger zerolog.Logger = log.With().Str("sys", "locale").Logger()

// unknownOnce deduplicates WARN logs for unknown language codes.
// The key is code+"\x00"+reason.
var unknownOnce sync.Map

// warnUnknownOnce logs a degraded-lookup warning once per (code, reason)
// pair. Repeated misses for the same code stay quiet so a long build
// does not drown in identical diagnostics.
func warnUnknownOnce(code, reason string) {
	id := code + "\x00" + reason
	if _, loaded := unknownOnce.LoadOrStore(id, struct{}{}); !loaded {
		Logger.Warn().
			Str("lang", code).
			Msg(reason)
	}
}
