package logging

import (
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	globalMu     sync.RWMutex
	globalLogger Logger = NewLogrusAdapter("info", "text")
)

// GetLogger returns the process-wide default logger.
// Packages that are not handed an explicit logger fall back to this one.
func GetLogger() Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalLogger
}

// SetGlobalLogger replaces the process-wide default logger.
func SetGlobalLogger(logger Logger) {
	if logger == nil {
		return
	}
	globalMu.Lock()
	globalLogger = logger
	globalMu.Unlock()
}

// SetAllLogLevels sets the global logrus level, which affects every adapter
// created from a bare logrus.New() as well as future ones.
func SetAllLogLevels(level logrus.Level) {
	logrus.SetLevel(level)
}
