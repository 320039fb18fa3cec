// Package qdistill is a deterministic Monte-Carlo laboratory for
// entanglement purification and magic-state distillation: build a
// protocol circuit, sample it under depolarizing noise, post-select on
// its syndromes and compare the outcome against closed-form theory.
//
// 🚀 What is qdistill?
//
//	A small, reproducible simulation stack:
//		• qstate  — dense state-vector register: the protocol gate set plus
//		  Born-rule measurement in the Z and X frames
//		• noise   — per-gate depolarizing channel with uniform Pauli faults
//		• circuit — fixed protocol programs: BBPSSW purification, 3-to-1
//		  and two 15-to-1 magic-state distillers
//		• sampler — concurrent shot loop with seed-deterministic histograms
//		• distill — post-selection, fidelity estimation, analytic
//		  predictions and noise sweeps
//
// ✨ Why qdistill?
//
//   - Reproducible – every run is a pure function of its seed; the worker
//     count never changes a histogram
//   - Explicit failure – sentinel errors everywhere, errors.Is friendly
//   - Honest numbers – degenerate analyses are flagged in-value, and the
//     fidelity proxy documents what it cannot see
//
// Quick ASCII sketch of a distillation run:
//
//	prepare ──► encode ──► T…T ──► decode ──► measure
//	                                             │
//	                 accept (syndromes clean)? ──┴──► data histogram
//
// The cmd/qdistill binary wraps the stack in run, theory and sweep
// subcommands with YAML sweep configs.
//
//	go get github.com/katalvlaran/qdistill
package qdistill
