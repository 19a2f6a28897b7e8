// Package source holds the pieces shared by both configuration domains:
// the injected environment mapping, raw-text section detection, and the
// error kinds every resolver classifies its failures into.
//
// Resolvers never read the process environment themselves; the caller
// snapshots it once with EnvironMap(os.Environ()) and passes it down, so
// tests can exercise overrides without mutating global state.
package source
