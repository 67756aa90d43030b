package color

import "github.com/atomikpanda/tint/internal/platform"

// Decision is the outcome of colour detection and the rule that produced it.
type Decision struct {
	Enabled bool
	Rule    string
}

// Detect reports whether colour should be emitted for snap.
func Detect(snap platform.Snapshot) bool {
	return Decide(snap).Enabled
}

// Decide evaluates the detection rules in order; the first match wins.
//
//  1. NO_COLOR in env or --no-color in args disables colour unconditionally.
//  2. FORCE_COLOR in env or --color in args enables it.
//  3. Windows, unless TERM=dumb.
//  4. A TTY on stdout with TERM set to something other than "dumb".
//  5. CI together with GITHUB_ACTIONS, GITLAB_CI or CIRCLECI.
//
// Anything else, including the zero Snapshot, disables colour.
func Decide(snap platform.Snapshot) Decision {
	term := snap.Get("TERM")
	dumb := term == "dumb"

	switch {
	case snap.Has("NO_COLOR") || snap.HasArg("--no-color"):
		return Decision{false, "disabled"}
	case snap.Has("FORCE_COLOR") || snap.HasArg("--color"):
		return Decision{true, "forced"}
	case snap.OS == "windows" && !dumb:
		return Decision{true, "windows"}
	case snap.StdoutTTY && term != "" && !dumb:
		return Decision{true, "terminal"}
	case snap.Has("CI") && (snap.Has("GITHUB_ACTIONS") || snap.Has("GITLAB_CI") || snap.Has("CIRCLECI")):
		return Decision{true, "ci"}
	default:
		return Decision{false, "unsupported"}
	}
}
