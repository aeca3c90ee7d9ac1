// Package dagsyntax implements the textual grammar for dag.Node values:
//
//	expr   := term ('+' term)*
//	term   := factor+
//	factor := '[' uint ']' "'"?      // literal; trailing ' negates it
//	        | '(' expr ')' "'"?      // grouped sub-expression; trailing ' negates the group
//
// Juxtaposition is conjunction, '+' is disjunction, and an empty
// production at any level parses as ONE (conjunction's identity).
//
// Print is total: every node has exactly one canonical rendering.
// Parse round-trips through Print (Parse(Print(n)) == n, in the arena
// that built n) for every internal node; the two terminals both print
// as the empty string, which parses as ONE, so a top-level ZERO does
// not round-trip. It does not hold the other way around — printing a
// parsed string can yield a different,
// more canonical string, because interning collapses equivalent
// sub-expressions the input string may have spelled out differently.
package dagsyntax
