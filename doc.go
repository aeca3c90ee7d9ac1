// Package booldag is a small toolkit for Boolean functions built around
// two engines that share a notion of variable index and input vector but
// no runtime state.
//
// 🚀 What is booldag?
//
//	A pure-Go library that brings together:
//
//	  • A hash-consed decision DAG: literal construction, inversion,
//	    disjunction/conjunction, derived gates (xor/xnor/multiply),
//	    evaluation, and a textual codec for round-trip persistence.
//	  • A K-tree generalizer: build a compact classifier from disjoint
//	    zero/one sample sets that agrees with every training sample and
//	    extrapolates to unseen inputs via coverage-driven literal order.
//
// ✨ Why choose booldag?
//
//   - Deterministic    — no reordering heuristics, no GC surprises; a node's
//     identity is fixed for the lifetime of its arena.
//   - Explicit         — no ambient global state; every construction call
//     takes its arena as an argument.
//   - Extensible       — opt into structured logging and config loading
//     without touching the algorithmic core.
//
// Under the hood, everything is organized under four subpackages:
//
//	dag/       — Arena, Node, algebra (literal/invert/join/gates), Evaluate
//	dagsyntax/ — Print/Parse over the infix literal/apostrophe grammar
//	ktree/     — Build/Predict/String for the generalization tree
//	config/    — optional viper-backed defaults for parser strictness & logging
//
// Quick example — build `[0]'[1] + [0]`, print it, parse it back:
//
//	a := dag.NewArena()
//	l0, l1 := dag.Literal(a, 0, true), dag.Literal(a, 1, true)
//	n := dag.Disjoin(a, dag.Conjoin(a, dag.Invert(a, l0), l1), l0)
//	s := dagsyntax.Print(n)
//	back, _ := dagsyntax.Parse(a, s)
//	// back == n (same handle, by structural sharing)
//
// See DESIGN.md for the grounding ledger and SPEC_FULL.md for the full
// requirements this module implements.
package booldag
