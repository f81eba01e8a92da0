// Copyright 2026, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"

	"github.com/wavetermdev/waveanim/cmd/waveanim/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
