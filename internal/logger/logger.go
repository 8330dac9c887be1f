package logger

import "go.uber.org/zap"

// Log is the application-wide structured logger. Init must run before any
// handler uses it; tests may swap in zap.NewNop().
var Log *zap.Logger = zap.NewNop()

// Init replaces the no-op default with a production logger.
func Init() error {
	l, err := zap.NewProduction()
	if err != nil {
		return err
	}
	Log = l
	return nil
}

// Sync flushes buffered log entries.
func Sync() {
	_ = Log.Sync()
}
