package dag

// Literal constructs the node for a single signed variable reference.
// literal(index, true) is satisfied exactly when variable index is
// true; literal(index, false) is its negation. Complexity: O(1)
// amortized (one intern call).
func Literal(a *Arena, index uint32, sign bool) Node {
	var neg, pos Node
	if sign {
		neg, pos = Zero, One
	} else {
		neg, pos = One, Zero
	}

	return a.intern(index, neg, pos)
}

// Invert returns the node computing the logical negation of n. ZERO
// and ONE swap directly; an internal node is rebuilt with both children
// inverted (same depth, same child slots — only content changes), with
// a per-call memo cache keyed by the single operand handle so a shared
// subgraph is only inverted once per call.
func Invert(a *Arena, n Node) Node {
	a.checkOwn(n)
	cache := make(map[Node]Node)

	return invertRec(a, cache, n)
}

func invertRec(a *Arena, cache map[Node]Node, n Node) Node {
	switch {
	case n.IsZero():
		return One
	case n.IsOne():
		return Zero
	}

	if v, ok := cache[n]; ok {
		return v
	}

	neg, pos := a.childrenOf(n)
	result := a.intern(a.depthOf(n), invertRec(a, cache, neg), invertRec(a, cache, pos))
	cache[n] = result

	return result
}

// join is the shared engine behind both disjunction (ident=Zero,
// annih=One) and conjunction (ident=One, annih=Zero): identity and
// annihilator short-circuit, otherwise the two operands are aligned to
// their shallower depth and the result is interned from the
// recursively joined child pairs. cache is local to one top-level
// Disjoin/Conjoin call and keyed by the unordered operand pair.
func join(a *Arena, cache map[[2]Node]Node, ident, annih, x, y Node) Node {
	if x == ident {
		return y
	}
	if y == ident {
		return x
	}
	if x == annih || y == annih {
		return annih
	}

	key := pairKey(x, y)
	if v, ok := cache[key]; ok {
		return v
	}

	dx, dy := a.depthOf(x), a.depthOf(y)
	d := dx
	if dy < d {
		d = dy
	}

	xl, xr := x, x
	if dx == d {
		xl, xr = a.childrenOf(x)
	}
	yl, yr := y, y
	if dy == d {
		yl, yr = a.childrenOf(y)
	}

	result := a.intern(d, join(a, cache, ident, annih, xl, yl), join(a, cache, ident, annih, xr, yr))
	cache[key] = result

	return result
}

// Disjoin returns the logical OR of its operands, left-folded: the
// leading x, y parameters make the "at least two operands" requirement
// a compile-time property rather than a runtime check. One memo cache
// is shared across the whole fold, so a subgraph shared between fold
// steps is only rewritten once.
func Disjoin(a *Arena, x, y Node, rest ...Node) Node {
	a.checkOwn(x)
	a.checkOwn(y)

	cache := make(map[[2]Node]Node)
	result := join(a, cache, Zero, One, x, y)
	for _, n := range rest {
		a.checkOwn(n)
		result = join(a, cache, Zero, One, result, n)
	}

	return result
}

// Conjoin returns the logical AND of its operands, left-folded. See
// Disjoin for the variadic-arity contract and memoization scope.
func Conjoin(a *Arena, x, y Node, rest ...Node) Node {
	a.checkOwn(x)
	a.checkOwn(y)

	cache := make(map[[2]Node]Node)
	result := join(a, cache, One, Zero, x, y)
	for _, n := range rest {
		a.checkOwn(n)
		result = join(a, cache, One, Zero, result, n)
	}

	return result
}
