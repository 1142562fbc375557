// Package logging provides the sugared, named logger used across trajgen's
// builders and solver dispatch. It is a trimmed adaptation of
// go.viam.com/rdk/logging: same Logger shape and zap core, without the
// network appender/registry machinery a standalone library has no use for.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

// Logger is the subset of go.viam.com/rdk/logging.Logger that trajgen needs:
// leveled, named, sugared logging plus sub-logger derivation.
type Logger interface {
	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
	Named(name string) Logger
	Sublogger(name string) Logger
	AsZap() *zap.SugaredLogger
}

type impl struct {
	*zap.SugaredLogger
}

func (l *impl) Debugw(msg string, kv ...interface{}) { l.SugaredLogger.Debugw(msg, kv...) }
func (l *impl) Infow(msg string, kv ...interface{})  { l.SugaredLogger.Infow(msg, kv...) }
func (l *impl) Warnw(msg string, kv ...interface{})  { l.SugaredLogger.Warnw(msg, kv...) }
func (l *impl) Errorw(msg string, kv ...interface{}) { l.SugaredLogger.Errorw(msg, kv...) }

func (l *impl) Named(name string) Logger {
	return &impl{l.SugaredLogger.Named(name)}
}

func (l *impl) Sublogger(name string) Logger {
	return l.Named(name)
}

func (l *impl) AsZap() *zap.SugaredLogger {
	return l.SugaredLogger
}

// NewLogger returns a production logger writing Info+ to stderr, named name.
func NewLogger(name string) Logger {
	base := zap.Must(zap.NewProduction())
	return &impl{base.Sugar().Named(name)}
}

// NewBlankLogger returns a logger that discards everything it is given.
// Used as the zero-value Options.Logger so callers never need a nil check.
func NewBlankLogger() Logger {
	return &impl{zap.NewNop().Sugar()}
}

// NewTestLogger returns a logger that writes to the test's own log output
// via zaptest, mirroring go.viam.com/rdk/logging.NewTestLogger.
func NewTestLogger(tb zaptest.TestingT) Logger {
	return &impl{zaptest.NewLogger(tb).Sugar()}
}
