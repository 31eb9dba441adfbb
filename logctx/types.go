package logctx

import "go.uber.org/zap/zapcore"

// Verbosity selects the zap level a Ctx logs at.
type Verbosity int

const (
	// Silent emits nothing.
	Silent Verbosity = iota
	// Results emits one line per attempt outcome.
	Results
	// Verbose emits per-draw diagnostics in addition to Results' output.
	Verbose
)

// level maps a Verbosity to the minimum zapcore.Level it enables; entries
// below that threshold are dropped. Silent maps to zapcore.InvalidLevel, which
// no real entry will ever meet or exceed.
func (v Verbosity) level() zapcore.Level {
	switch v {
	case Verbose:
		return zapcore.DebugLevel
	case Results:
		return zapcore.InfoLevel
	default:
		return zapcore.InvalidLevel
	}
}
