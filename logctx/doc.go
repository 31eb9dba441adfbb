// Package logctx provides the LogCtx design-note value: a scoped, zap-backed
// log sink that owns its destination for exactly the lifetime of one
// spginit.InitCrystal call.
//
// Open builds a production Ctx writing JSON lines to a file; NewObserved
// builds an in-memory Ctx backed by zap/zaptest/observer so tests can assert
// on emitted entries without touching the filesystem. A Ctx is always
// usable — a failed Open degrades to a no-op sink rather than returning a
// nil value a caller might forget to check.
package logctx
