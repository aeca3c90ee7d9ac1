package dagsyntax

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/booldag/dag"
)

// Parse reads s as a single expression in the grammar documented in
// doc.go and interns the result into a. It is a streaming left fold:
// the accumulator starts at ONE (conjunction's identity) and every
// factor encountered is conjoined into it, except '+', which disjoins
// the accumulator so far with a recursive parse of everything after it
// and returns immediately.
func Parse(a *dag.Arena, s string, opts ...ParseOption) (dag.Node, error) {
	cfg := parseConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &parser{data: []byte(s), arena: a, allowWhitespace: cfg.allowWhitespace}
	n, err := p.parseExpr()
	if err != nil {
		return dag.Node{}, err
	}
	if p.pos != len(p.data) {
		return dag.Node{}, p.errorf("unexpected %q", p.data[p.pos])
	}

	return n, nil
}

type parser struct {
	data            []byte
	pos             int
	arena           *dag.Arena
	allowWhitespace bool
}

func (p *parser) peek() (byte, bool) {
	if p.pos >= len(p.data) {
		return 0, false
	}

	return p.data[p.pos], true
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return &ParseError{Offset: p.pos, Expected: fmt.Sprintf(format, args...)}
}

// maybeInvert consumes a trailing apostrophe, if present, and inverts
// n accordingly.
func (p *parser) maybeInvert(n dag.Node) dag.Node {
	if b, ok := p.peek(); ok && b == '\'' {
		p.pos++
		return dag.Invert(p.arena, n)
	}

	return n
}

func isASCIIWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// parseExpr parses one level of the grammar: everything up to a
// matching ')' or the end of the stream, folding factors together with
// conjunction and handing off to disjunction at the first '+'.
func (p *parser) parseExpr() (dag.Node, error) {
	acc := dag.One

	for {
		b, ok := p.peek()
		if !ok {
			return acc, nil
		}

		switch b {
		case ')':
			// The caller of the recursive descent (either '(' handling
			// or Parse itself) is responsible for consuming this.
			return acc, nil

		case '(':
			p.pos++
			sub, err := p.parseExpr()
			if err != nil {
				return dag.Node{}, err
			}

			closing, ok := p.peek()
			if !ok || closing != ')' {
				return dag.Node{}, p.errorf("expected ')'")
			}
			p.pos++

			sub = p.maybeInvert(sub)
			acc = dag.Conjoin(p.arena, acc, sub)

		case '[':
			p.pos++
			start := p.pos
			for {
				d, ok := p.peek()
				if !ok || d < '0' || d > '9' {
					break
				}
				p.pos++
			}
			if p.pos == start {
				return dag.Node{}, p.errorf("expected a variable index")
			}

			idx, err := strconv.ParseUint(string(p.data[start:p.pos]), 10, 32)
			if err != nil {
				return dag.Node{}, p.errorf("invalid variable index %q", string(p.data[start:p.pos]))
			}

			closing, ok := p.peek()
			if !ok || closing != ']' {
				return dag.Node{}, p.errorf("expected ']'")
			}
			p.pos++

			sub := dag.Literal(p.arena, uint32(idx), true)
			sub = p.maybeInvert(sub)
			acc = dag.Conjoin(p.arena, acc, sub)

		case '+':
			p.pos++
			rest, err := p.parseExpr()
			if err != nil {
				return dag.Node{}, err
			}

			return dag.Disjoin(p.arena, acc, rest), nil

		default:
			if p.allowWhitespace && isASCIIWhitespace(b) {
				p.pos++
				continue
			}

			return dag.Node{}, p.errorf("unexpected byte %q", b)
		}
	}
}
