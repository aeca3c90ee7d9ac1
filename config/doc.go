// Package config resolves a small set of process-wide knobs for
// callers that wire the dag, dagsyntax and ktree packages together end
// to end: parser strictness and logging level/format. None of those packages read configuration
// themselves — they take explicit options (ArenaOption, ParseOption,
// BuildOption) — so this package exists purely for callers that want a
// conventional env/file-backed configuration surface around them.
package config
