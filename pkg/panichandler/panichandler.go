// Copyright 2026, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package panichandler

import (
	"fmt"
	"log"
	"runtime/debug"
)

// set to false in tests that panic on purpose
var PrintStack = true

// PanicHandler logs a recovered panic and returns it as an error.
// it can be called directly with recover() (nil recoverVal returns nil).
//
//	defer func() {
//	    err = panichandler.PanicHandler("operation name", recover())
//	}()
func PanicHandler(debugStr string, recoverVal any) error {
	if recoverVal == nil {
		return nil
	}
	log.Printf("[panic] in %s: %v\n", debugStr, recoverVal)
	if PrintStack {
		debug.PrintStack()
	}
	if err, ok := recoverVal.(error); ok {
		return fmt.Errorf("panic in %s: %w", debugStr, err)
	}
	return fmt.Errorf("panic in %s: %v", debugStr, recoverVal)
}
