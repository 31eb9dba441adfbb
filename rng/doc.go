// Package rng defines the random-number capability used throughout spginit
// and ships one deterministic default implementation.
//
// The space-group placement engine never reaches for a process-global
// random stream: every component that needs randomness (latgen, assign,
// placement) takes a Source by reference. This makes solver
// determinism (spec property P4: fixed seed ⇒ byte-identical crystals)
// a consequence of the call graph rather than something callers have to
// remember to arrange.
//
// Complexity: every Source method is O(1).
package rng
