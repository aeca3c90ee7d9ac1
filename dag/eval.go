package dag

// Evaluate assigns a Boolean value to n under the given input vector,
// walking from n to a terminal by following input[depth(node)] at each
// internal node. It takes no *Arena argument: n already carries a
// reference to the arena that owns it.
//
// Returns ErrInputTooShort if input is too short to answer a branch
// the walk actually needs — the only way this operation can fail.
func Evaluate(n Node, input []bool) (bool, error) {
	for {
		switch {
		case n.IsZero():
			return false, nil
		case n.IsOne():
			return true, nil
		}

		a := n.arena
		in := a.nodes[n.idx]
		if int(in.depth) >= len(input) {
			return false, ErrInputTooShort
		}

		if input[in.depth] {
			n = in.pos
		} else {
			n = in.neg
		}
	}
}
