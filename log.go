// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2017 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/pkg/errors"

	"github.com/powcheck/powcheck/logs"
	"github.com/powcheck/powcheck/signal"
	"github.com/powcheck/powcheck/util/panics"
)

var (
	backendLog = logs.NewBackend()
	log        = backendLog.Logger("POWC")
	signalLog  = backendLog.Logger("SGNL")
	spawn      = panics.GoroutineWrapperFunc(log)
)

// initLog attaches the configured log files to the backend, sets the
// requested level on every subsystem logger and starts the backend.
func initLog(cfg *configFlags) error {
	signal.UseLogger(signalLog)

	if cfg.LogFile != "" {
		err := backendLog.AddLogFile(cfg.LogFile, logs.LevelTrace)
		if err != nil {
			return errors.Errorf("Error adding log file %s as log rotator for level %s: %s",
				cfg.LogFile, logs.LevelTrace, err)
		}
	}
	if cfg.ErrLogFile != "" {
		err := backendLog.AddLogFile(cfg.ErrLogFile, logs.LevelWarn)
		if err != nil {
			return errors.Errorf("Error adding log file %s as log rotator for level %s: %s",
				cfg.ErrLogFile, logs.LevelWarn, err)
		}
	}

	err := logs.SetLogLevels(cfg.LogLevel, log, signalLog)
	if err != nil {
		return err
	}

	return backendLog.Run()
}
