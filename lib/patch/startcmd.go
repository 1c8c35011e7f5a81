package patch

import (
	shellwords "github.com/mattn/go-shellwords"

	"github.com/gameserverhooks/starthook/lib/expand"
)

// StartCommandPlaceholder is the sentinel replacement-value spec that
// stands for the dynamically computed start command. It never resolves
// through the environment like an ordinary placeholder; adapters
// intercept it before expansion.
const StartCommandPlaceholder = "{{server.start.command}}"

// startCommandSegments are the environment variables assembled into the
// start command, in this fixed order. A segment whose variable is unset
// or empty is simply omitted.
var startCommandSegments = []string{
	"SERVER_EXECUTABLE",
	"SERVER_JVM_ARGS",
	"SERVER_MAIN",
	"SERVER_EXTRA_ARGS",
}

// BuildStartCommand assembles the start command argv. Each segment is
// shell-lexed so quoted arguments survive as single tokens. A segment
// that fails to lex logs a warning and is skipped rather than aborting
// the rule.
func BuildStartCommand(ex *expand.Expander) []any {
	var argv []any
	for _, name := range startCommandSegments {
		raw, ok := ex.Lookup(name)
		if !ok || raw == "" {
			continue
		}
		words, err := shellwords.Parse(raw)
		if err != nil {
			log.Warnf("Cannot shell-lex %s=%q: %s", name, raw, err)
			continue
		}
		for _, w := range words {
			argv = append(argv, w)
		}
	}
	return argv
}
