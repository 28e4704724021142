// Package sim models how execution units sharing one memory location behave
// with and without a cache-coherence protocol.
//
// # Reading Guide
//
// Start with these three files to understand the core:
//   - store.go: SharedStore, the single source of truth, serialized by one guard
//   - unit.go: CoherentUnit and the simplified MSI state transitions
//   - incoherent.go: IncoherentUnit, the contrast case with no protocol at all
//
// # Architecture
//
// The protocol core (SharedStore, CacheLine, the two unit kinds, Counters)
// accepts deterministic call sequences so tests can replay exact scenarios.
// Everything that drives it lives beside it in this package but stays out of
// the core contract: workload.go generates per-unit op sequences from
// partitioned RNG streams, runner.go spawns one goroutine per unit and joins
// them, metrics.go aggregates counters after the join.
//
// The protocol is a deliberately simplified, non-broadcast approximation of
// MSI: a write never invalidates peer copies, it only pays message cost.
// Two coherent units can therefore still diverge after a write by one of
// them. That gap is the modeled behavior, pinned by tests, not a bug.
package sim
