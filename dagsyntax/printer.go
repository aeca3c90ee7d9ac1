package dagsyntax

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/booldag/dag"
)

// Print renders n in the grammar documented in doc.go. Terminals print
// as the empty string; an internal node wraps its emission in
// parentheses only when both children are non-ZERO (otherwise there is
// nothing to disjoin, and the parens would be noise).
func Print(n dag.Node) string {
	var sb strings.Builder
	writeNode(&sb, n)

	return sb.String()
}

func writeNode(sb *strings.Builder, n dag.Node) {
	depth, ok := n.Depth()
	if !ok {
		// Zero or One: terminals carry no information outside context.
		return
	}

	neg, pos, _ := n.Children()
	negPresent := !neg.IsZero()
	posPresent := !pos.IsZero()

	if negPresent && posPresent {
		sb.WriteByte('(')
	}
	if negPresent {
		sb.WriteByte('[')
		sb.WriteString(strconv.FormatUint(uint64(depth), 10))
		sb.WriteString("]'")
		writeNode(sb, neg)
	}
	if negPresent && posPresent {
		sb.WriteByte('+')
	}
	if posPresent {
		sb.WriteByte('[')
		sb.WriteString(strconv.FormatUint(uint64(depth), 10))
		sb.WriteByte(']')
		writeNode(sb, pos)
	}
	if negPresent && posPresent {
		sb.WriteByte(')')
	}
}
