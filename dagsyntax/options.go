package dagsyntax

// parseConfig collects ParseOption values before a Parse call begins.
type parseConfig struct {
	allowWhitespace bool
}

// ParseOption configures a single Parse call.
type ParseOption func(*parseConfig)

// WithPermissiveWhitespace makes Parse skip ASCII space, tab, CR and LF
// between tokens instead of rejecting them. Whitespace is accepted only
// when a caller opts in; no other unrecognized byte is ever silently
// skipped.
func WithPermissiveWhitespace() ParseOption {
	return func(c *parseConfig) { c.allowWhitespace = true }
}
