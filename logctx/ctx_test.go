package logctx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestObservedResultsCapturesInfoLevel(t *testing.T) {
	ctx, logs := NewObserved(Results)
	ctx.Results("placed atom", zap.Int("z", 6))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "placed atom", entries[0].Message)
}

func TestObservedSilentDropsEverything(t *testing.T) {
	ctx, logs := NewObserved(Silent)
	ctx.Results("should not appear")
	ctx.Verbose("should not appear either")

	assert.Equal(t, 0, logs.Len())
}

func TestObservedVerboseCapturesDebugAndInfo(t *testing.T) {
	ctx, logs := NewObserved(Verbose)
	ctx.Verbose("draw attempt")
	ctx.Results("attempt outcome")

	assert.Equal(t, 2, logs.Len())
}

func TestObservedResultsDropsVerbose(t *testing.T) {
	ctx, logs := NewObserved(Results)
	ctx.Verbose("should be dropped at Results level")
	ctx.Results("should appear")

	assert.Equal(t, 1, logs.Len())
}

func TestOpenWritesJSONLineToFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.log")

	ctx, err := Open(path, Results)
	require.NoError(t, err)
	ctx.Results("done")
	require.NoError(t, ctx.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestOpenOnBadPathReturnsNoopCtxAndError(t *testing.T) {
	ctx, err := Open(filepath.Join(t.TempDir(), "missing-dir", "run.log"), Results)
	assert.Error(t, err, "expected an error for an unwritable path")
	// A failed Open still returns a usable, safe-to-call Ctx.
	ctx.Results("silently discarded")
	assert.NoError(t, ctx.Close(), "Close on no-op Ctx should be a no-op")
}

func TestNoopDiscardsEverything(t *testing.T) {
	ctx := Noop()
	ctx.Results("discarded")
	ctx.Verbose("discarded")
	assert.NoError(t, ctx.Close())
}

func TestVerbosityLevelMapping(t *testing.T) {
	cases := []struct {
		v    Verbosity
		want zapcore.Level
	}{
		{Silent, zapcore.InvalidLevel},
		{Results, zapcore.InfoLevel},
		{Verbose, zapcore.DebugLevel},
	}
	for _, c := range cases {
		assert.Equalf(t, c.want, c.v.level(), "level(%v)", c.v)
	}
}
