package main

import (
	"fmt"
	"io"

	"github.com/btcsuite/btclog"
	"github.com/venkatsvpr/lrumap"
)

// log is the command's logger. It stays disabled until setupLogging runs.
var log = btclog.Disabled

// setupLogging points the command and library loggers at w with the given
// level.
func setupLogging(w io.Writer, debugLevel string) error {
	level, ok := btclog.LevelFromString(debugLevel)
	if !ok {
		return fmt.Errorf("invalid debug level %q", debugLevel)
	}

	backend := btclog.NewBackend(w)

	log = backend.Logger("LRUC")
	log.SetLevel(level)

	libLog := backend.Logger(lrumap.Subsystem)
	libLog.SetLevel(level)
	lrumap.UseLogger(libLog)

	return nil
}
