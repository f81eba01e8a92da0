// Copyright 2026, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package logutil

import (
	"log"

	"github.com/wavetermdev/waveanim/pkg/wavebase"
)

// DevPrintf logs using log.Printf only if running in dev mode (WAVEANIM_DEV set)
func DevPrintf(format string, v ...any) {
	if wavebase.IsDevMode() {
		log.Printf(format, v...)
	}
}
