// Package dag implements a shared-reduced, hash-consed binary decision
// graph over indexed Boolean variables.
//
// A Node is one of two terminals (Zero, One) or an internal node
// carrying a depth (the variable index it branches on) and a negative/
// positive child pair. Internal nodes are never constructed directly;
// they come exclusively from an Arena's interning table, which
// guarantees two invariants for the lifetime of the arena:
//
//   - Shared reduction: no two internal nodes in one arena ever share
//     the same (depth, negative, positive) triple — intern returns the
//     existing handle instead of allocating a duplicate.
//   - Subsumption: interning a (depth, child, child) triple whose two
//     children are identical returns that child directly, never a new
//     node.
//
// Variable ordering is NOT enforced: algebraic operators happen to
// produce results whose root depth is the minimum of the operand
// depths, but nothing stops a caller from building a DAG where a
// child's depth is smaller than its parent's. This is not a canonical
// ROBDD library: ordering discipline is left to callers that want it.
//
// Concurrency: an Arena is single-owner. Nothing here is safe to call
// from two goroutines against the same Arena at once, and the package
// does not attempt to detect that misuse — only cross-arena handle
// reuse is checked, because it is cheap (a pointer compare) and a much
// easier mistake to make by accident.
package dag
