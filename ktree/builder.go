package ktree

import (
	"sort"

	"github.com/google/uuid"

	"github.com/katalvlaran/booldag/internal/telemetry"
)

// Tree is a generalization tree: either a leaf carrying a single
// satisfiability flag, or an inner node carrying entries sorted by
// ascending (coverage size, literal). See doc.go.
type Tree struct {
	id            uuid.UUID
	variableCount int

	leaf        bool
	satisfiable bool
	entries     []entry
}

// entry pairs one inner node's sort key with the child it routes to.
type entry struct {
	size  int
	lit   Literal
	child *Tree
}

// ID returns the root Tree's correlation ID. Only the Tree returned
// directly by Build carries a meaningful ID; children produced during
// recursion are never inspected independently by callers.
func (t *Tree) ID() uuid.UUID { return t.id }

// buildConfig collects BuildOption values before Build begins.
type buildConfig struct {
	logger telemetry.Logger
}

// BuildOption configures a single Build call. See WithLogger.
type BuildOption func(*buildConfig)

// WithLogger attaches a structured logger that reports, per inner node
// the recursion builds, the number of remaining literals and of zeros
// and ones reaching that node. The default Build logs nothing.
func WithLogger(l telemetry.Logger) BuildOption {
	return func(c *buildConfig) { c.logger = l }
}

// Build synthesizes a Tree that agrees with every sample in zeros and
// ones: it classifies every element of zeros as false and every
// element of ones as true, and extrapolates to unseen inputs via the
// coverage-driven literal ordering documented in doc.go.
//
// Build is total: it never returns an error, and an empty zeros or
// ones immediately yields a leaf.
func Build(variableCount int, zeros, ones []Input, opts ...BuildOption) *Tree {
	cfg := buildConfig{logger: telemetry.Disabled()}
	for _, opt := range opts {
		opt(&cfg)
	}

	root := buildRec(fullLiteralSet(variableCount), zeros, ones, cfg.logger)
	root.id = uuid.New()
	root.variableCount = variableCount

	return root
}

// fullLiteralSet returns {2i, 2i+1 : 0 <= i < variableCount}, the
// complete literal space a fresh Build call partitions over.
func fullLiteralSet(variableCount int) []Literal {
	lits := make([]Literal, 0, 2*variableCount)
	for i := 0; i < variableCount; i++ {
		lits = append(lits, NewLiteral(uint32(i), false))
		lits = append(lits, NewLiteral(uint32(i), true))
	}

	return lits
}

// candidate is one remaining literal's zero-coverage subset, before
// sorting and before ones have been partitioned against it.
type candidate struct {
	lit   Literal
	zeros []Input
}

// buildRec recursively grows a tree: a base-case leaf when either
// sample set is empty, otherwise a zero-coverage computation, an
// ascending (size, literal) sort, a greedy first-covering-literal
// assignment of every one, and one recursive child per sorted literal.
func buildRec(remaining []Literal, zeros, ones []Input, logger telemetry.Logger) *Tree {
	if len(zeros) == 0 || len(ones) == 0 {
		return &Tree{leaf: true, satisfiable: len(ones) > 0}
	}

	candidates := make([]candidate, len(remaining))
	for i, l := range remaining {
		var covered []Input
		for _, z := range zeros {
			if l.Covers(z) {
				covered = append(covered, z)
			}
		}
		candidates[i] = candidate{lit: l, zeros: covered}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if len(candidates[i].zeros) != len(candidates[j].zeros) {
			return len(candidates[i].zeros) < len(candidates[j].zeros)
		}

		return candidates[i].lit < candidates[j].lit
	})

	buckets := make(map[Literal][]Input, len(candidates))
	for _, o := range ones {
		for _, c := range candidates {
			if c.lit.Covers(o) {
				buckets[c.lit] = append(buckets[c.lit], o)
				break
			}
		}
	}

	logger.Debug().
		Int("remaining_literals", len(remaining)).
		Int("zeros", len(zeros)).
		Int("ones", len(ones)).
		Msg("ktree: partitioning level")

	entries := make([]entry, len(candidates))
	for i, c := range candidates {
		childRemaining := make([]Literal, 0, len(remaining))
		for _, l := range remaining {
			if l.Index() != c.lit.Index() {
				childRemaining = append(childRemaining, l)
			}
		}

		child := buildRec(childRemaining, c.zeros, buckets[c.lit], logger)
		entries[i] = entry{size: len(c.zeros), lit: c.lit, child: child}
	}

	return &Tree{entries: entries}
}
