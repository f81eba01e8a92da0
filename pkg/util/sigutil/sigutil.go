// Copyright 2026, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package sigutil

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/wavetermdev/waveanim/pkg/panichandler"
)

// InstallShutdownSignalHandlers calls doShutdown (once) on SIGHUP, SIGTERM or SIGINT.
// the returned func stops listening and ends the handler goroutine.
func InstallShutdownSignalHandlers(doShutdown func(string)) func() {
	sigCh := make(chan os.Signal, 1)
	doneCh := make(chan struct{})
	signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		defer func() {
			panichandler.PanicHandler("InstallShutdownSignalHandlers", recover())
		}()
		select {
		case sig := <-sigCh:
			doShutdown(fmt.Sprintf("got signal %v", sig))
		case <-doneCh:
		}
	}()
	var stopOnce sync.Once
	return func() {
		stopOnce.Do(func() {
			signal.Stop(sigCh)
			close(doneCh)
		})
	}
}
