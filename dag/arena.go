package dag

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/katalvlaran/booldag/internal/telemetry"
)

// Arena owns a hash-consed set of internal Nodes. Its sole public
// construction primitive is the set of package-level algebra functions
// (Literal, Invert, Disjoin, ...), which all intern into the Arena they
// are given. An Arena is never mutated concurrently; see doc.go.
type Arena struct {
	id     uuid.UUID
	nodes  []internalNode
	index  map[nodeKey]uint32
	logger telemetry.Logger

	hits   uint64
	misses uint64
}

// arenaConfig collects ArenaOption values before construction.
type arenaConfig struct {
	id     uuid.UUID
	logger telemetry.Logger
}

// ArenaOption configures a new Arena. See WithLogger and WithID.
type ArenaOption func(*arenaConfig)

// WithLogger attaches a structured logger for interning diagnostics
// (one debug line per newly-allocated internal node, one per cache
// hit is too noisy to be worth it — see Arena.Stats for hit counts
// instead). The default Arena logs nothing.
func WithLogger(l telemetry.Logger) ArenaOption {
	return func(c *arenaConfig) { c.logger = l }
}

// WithID pins the Arena's correlation ID instead of generating a
// random one. Useful for deterministic golden-file tests and for
// joining log lines from one build episode across dag and ktree.
func WithID(id uuid.UUID) ArenaOption {
	return func(c *arenaConfig) { c.id = id }
}

// NewArena creates an empty Arena. By default it is unlogged and
// carries a freshly generated correlation ID.
func NewArena(opts ...ArenaOption) *Arena {
	cfg := arenaConfig{
		id:     uuid.New(),
		logger: telemetry.Disabled(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Arena{
		id:     cfg.id,
		index:  make(map[nodeKey]uint32),
		logger: cfg.logger,
	}
}

// ID returns the Arena's correlation ID, stable for its lifetime.
func (a *Arena) ID() uuid.UUID { return a.id }

// Stats is a read-only snapshot of an Arena's interning traffic.
type Stats struct {
	// Nodes is the number of distinct internal nodes currently interned.
	Nodes int
	// Hits counts intern calls that returned an already-interned node.
	Hits uint64
	// Misses counts intern calls that allocated a new internal node.
	Misses uint64
}

// Stats reports the Arena's current node count and cache traffic. It
// takes no lock and is meant for diagnostics between operations, not
// for racing against concurrent mutation (there is none to race with,
// per the single-owner contract).
func (a *Arena) Stats() Stats {
	return Stats{Nodes: len(a.nodes), Hits: a.hits, Misses: a.misses}
}

// checkOwn panics if n is an internal node that does not belong to a.
// Passing handles across arenas has no well-defined meaning; this
// check catches the mistake loudly instead of silently corrupting a
// result — cheap enough (one pointer compare) to always perform.
func (a *Arena) checkOwn(n Node) {
	if n.kind == kindInternal && n.arena != a {
		panic(fmt.Errorf("%w: node interned by arena %s passed to arena %s", ErrForeignNode, n.arena.id, a.id))
	}
}

// intern returns the unique handle for (depth, neg, pos), creating it
// if absent. Subsumption (neg == pos) is checked before any lookup, so
// a collapsed request never touches the hash-cons table at all.
func (a *Arena) intern(depth uint32, neg, pos Node) Node {
	if neg == pos {
		return neg
	}

	key := nodeKey{depth: depth, neg: neg, pos: pos}
	if idx, ok := a.index[key]; ok {
		a.hits++
		return Node{kind: kindInternal, arena: a, idx: idx}
	}

	a.misses++
	a.nodes = append(a.nodes, internalNode{depth: depth, neg: neg, pos: pos})
	idx := uint32(len(a.nodes) - 1)
	a.index[key] = idx

	a.logger.Debug().
		Str("arena", a.id.String()).
		Uint32("depth", depth).
		Uint32("idx", idx).
		Msg("dag: interned new node")

	return Node{kind: kindInternal, arena: a, idx: idx}
}
