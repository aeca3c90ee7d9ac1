// Package ktree implements a generalization tree synthesized from
// disjoint finite sets of satisfying ("ones") and dissatisfying
// ("zeros") Boolean-input vectors.
//
// A Tree is either a leaf carrying a single satisfiability flag, or an
// inner node carrying an ordered set of entries, each pairing a
// (coverage size, literal) sort key with a child Tree. Build grows a
// Tree from training samples by ordering, at each level, every
// remaining literal by how few of the remaining zeros it covers
// (ascending), routing each remaining one to the first (tightest)
// literal that covers it, and growing one child per literal.
//
// A Tree is read-only after Build returns: Predict and String never
// mutate it and are safe to call concurrently from multiple
// goroutines, unlike a dag.Arena.
package ktree
