package core

import "go.uber.org/zap"

// The diagnostic channel is informational only: failures are always reported
// through returned errors, and nothing in the library changes behavior based
// on whether a logger is installed.
var diag = zap.NewNop()

// SetLogger installs the logger used for diagnostic messages (stale cache
// accesses, undefined configuration values, prebuffer warnings). Passing nil
// restores the default no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}

	diag = l
}

// L returns the current diagnostic logger.
func L() *zap.Logger {
	return diag
}
