package patch

import (
	"os"
	"strings"

	"github.com/samber/oops"

	"github.com/gameserverhooks/starthook/lib/expand"
	"github.com/gameserverhooks/starthook/lib/rules"
)

// applyProperties rewrites a Java .properties file. Comments, blank
// lines, and unruled keys pass through verbatim and in place; ruled keys
// are rewritten as key=value where they stand; ruled keys the file never
// mentions are appended at the end in rule order.
func applyProperties(path string, find rules.Rules, ex *expand.Expander) error {
	log.Debugf("Parsing properties file: %s", path)

	var lines []string
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		lines = splitLines(string(data))
	case os.IsNotExist(err):
		log.Debugf("File %s not found, creating a new one", path)
	default:
		return oops.Wrapf(err, "reading %s", path)
	}

	// Later rules for the same key win, but the first rule's position in
	// the document decides append order.
	values := make(map[string]string, len(find))
	for _, rule := range find {
		values[rule.Path] = stringify(resolveValue(rule.Value, ex))
	}

	seen := make(map[string]bool, len(find))
	out := make([]string, 0, len(lines)+len(find))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "!") {
			out = append(out, line)
			continue
		}
		eq := strings.Index(trimmed, "=")
		if eq < 0 {
			out = append(out, line)
			continue
		}
		key := strings.TrimSpace(trimmed[:eq])
		value, ok := values[key]
		if !ok {
			out = append(out, line)
			continue
		}
		log.Debugf("Setting %q -> %q", key, value)
		out = append(out, key+"="+value)
		seen[key] = true
	}

	for _, rule := range find {
		if seen[rule.Path] {
			continue
		}
		seen[rule.Path] = true
		log.Debugf("Appending missing key %q -> %q", rule.Path, values[rule.Path])
		out = append(out, rule.Path+"="+values[rule.Path])
	}

	if err := os.WriteFile(path, []byte(joinLines(out)), 0o644); err != nil {
		return oops.Wrapf(err, "writing %s", path)
	}
	return nil
}
