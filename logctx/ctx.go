package logctx

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// Ctx is the LogCtx design-note value: a *zap.Logger plus the resource (a
// file handle, if any) it owns for the scope of one call.
type Ctx struct {
	log  *zap.Logger
	file *os.File
}

// Open builds a production Ctx that writes JSON-encoded lines to path at
// verbosity v. A path that can't be opened is non-fatal: Open returns a
// usable no-op Ctx (Silent, no file) alongside the open error, so callers
// may choose to ignore it per the module's error-handling design.
func Open(path string, v Verbosity) (*Ctx, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return &Ctx{log: zap.New(zapcore.NewNopCore())}, err
	}

	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(f), v.level())
	return &Ctx{log: zap.New(core), file: f}, nil
}

// NewObserved builds a Ctx backed by zaptest/observer, returning both the
// Ctx and the *observer.ObservedLogs a test can assert entries against.
func NewObserved(v Verbosity) (*Ctx, *observer.ObservedLogs) {
	core, logs := observer.New(v.level())
	return &Ctx{log: zap.New(core)}, logs
}

// Noop returns a Ctx that discards every entry, for callers that want a
// guaranteed-safe default without opening anything.
func Noop() *Ctx {
	return &Ctx{log: zap.New(zapcore.NewNopCore())}
}

// Close releases the owned file handle, if any. Safe to call on a Ctx that
// never opened a file.
func (c *Ctx) Close() error {
	if c.file == nil {
		return nil
	}
	return c.file.Close()
}

// Results logs one attempt-outcome line at Info level.
func (c *Ctx) Results(msg string, fields ...zap.Field) {
	c.log.Info(msg, fields...)
}

// Verbose logs a per-draw diagnostic line at Debug level.
func (c *Ctx) Verbose(msg string, fields ...zap.Field) {
	c.log.Debug(msg, fields...)
}
