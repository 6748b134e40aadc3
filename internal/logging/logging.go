// Copyright (c) 2025 The ledgerforge developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package logging assembles the btclog backend shared by every subsystem
// logger in the engine (blockchain.UseLogger, mining.UseLogger). Output is
// written to a rotating log file via jrick/logrotate so long-running test
// harnesses and embedders don't need to manage log files themselves.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/btcsuite/btclog"
	"github.com/jrick/logrotate/rotator"
)

// rollThreshold is the size in kilobytes (10 MiB) a log file reaches before
// logrotate rolls it.
const rollThreshold = 10 * 1024

// maxRolls is the number of rolled log files logrotate retains.
const maxRolls = 3

// NewBackend creates a btclog.Backend that writes to logFile, rotating it
// as it grows, and returns the backend along with a cleanup function that
// closes the rotator. Callers create subsystem loggers from the backend
// with Backend.Logger("TAG") and hand them to each package's UseLogger.
func NewBackend(logFile string) (*btclog.Backend, func(), error) {
	logDir := filepath.Dir(logFile)
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}

	r, err := rotator.New(logFile, rollThreshold, false, maxRolls)
	if err != nil {
		return nil, nil, fmt.Errorf("create log rotator: %w", err)
	}

	backend := btclog.NewBackend(r)
	cleanup := func() {
		r.Close()
	}
	return backend, cleanup, nil
}
