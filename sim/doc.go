// Package sim provides the core engine for censored event-time studies:
// synthetic cohort generation under configurable censoring policies, and the
// exact log-likelihood accounting for the shifted-geometric adoption model.
//
// # Reading Guide
//
// Start with these three files to understand the engine:
//   - subject.go: Subject and Dataset values and their invariants
//   - simulate.go: seeded generation under the none/fixed/random censoring policies
//   - likelihood.go: per-subject log-likelihood contributions, full and naive
//
// # Architecture
//
// The sim package owns the pure core; supporting layers live in sub-packages:
//   - sim/study/: YAML study specifications, validation, and named presets
//   - sim/posterior/: Beta priors, the posterior model contract consumed by
//     inference engines, and the deterministic grid engine that serves as the
//     reference consumer
//   - sim/cohort/: delimited-text loading and saving of observed datasets
//
// Randomness is injected through PartitionedRNG (rng.go): group assignment,
// event times, and censoring times draw from isolated streams derived from one
// master seed, so runs are reproducible and runs that differ only in censoring
// policy stay comparable subject by subject.
//
// Every operation here is a pure function of explicit inputs. There is no
// package-level mutable state, no I/O, and no caching, so concurrent callers
// may invoke any of them independently without coordination.
package sim
