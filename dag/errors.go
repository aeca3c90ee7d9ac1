package dag

import "errors"

// Sentinel errors for the dag package.
var (
	// ErrInputTooShort is returned by Evaluate when the supplied input
	// vector has no entry for the variable index of a node on the path
	// the evaluation actually walks. Indices on branches the walk does
	// not take are not checked.
	ErrInputTooShort = errors.New("dag: input vector shorter than referenced variable index")

	// ErrForeignNode indicates an operation received a node interned by
	// a different Arena than the one the operation was asked to build
	// into. Per spec this is technically undefined behavior — the
	// check exists because it is cheap (a single pointer compare) and
	// catches an easy mistake (e.g. mixing up two Arenas in a test)
	// before it can manifest as a corrupted result node.
	ErrForeignNode = errors.New("dag: node belongs to a different arena")
)
