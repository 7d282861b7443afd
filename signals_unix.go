//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package main

import (
	"os/signal"
	"syscall"
)

// handleSignals stops the run between commands on SIGINT. The run loop
// reports ErrInterrupt and the process exits without the final dump.
func (ed *Editor) handleSignals() {
	signal.Notify(ed.sigch, syscall.SIGINT, syscall.SIGQUIT)
	for sig := range ed.sigch {
		switch sig {
		case syscall.SIGINT:
			ed.interrupt = true
		case syscall.SIGQUIT:
			// ignore
		}
	}
}
