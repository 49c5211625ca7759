// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package signal

import (
	"os"
	"os/signal"
	"syscall"
)

// interruptSignals defines the signals that are handled to do a clean
// shutdown.
var interruptSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

// InterruptListener returns a channel that gets closed when an interrupt
// signal is received, at which point any in-flight nonce search should wind
// down. A second signal exits the process immediately.
func InterruptListener() <-chan struct{} {
	c := make(chan struct{})
	go func() {
		interruptChannel := make(chan os.Signal, 1)
		signal.Notify(interruptChannel, interruptSignals...)

		sig := <-interruptChannel
		log.Infof("Received signal (%s). Shutting down...", sig)
		close(c)

		// A repeated signal aborts without waiting for a clean wind
		// down.
		sig = <-interruptChannel
		log.Infof("Received signal (%s). Already shutting down...", sig)
		os.Exit(1)
	}()

	return c
}
