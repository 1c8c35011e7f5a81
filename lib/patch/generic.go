package patch

import (
	"os"
	"strings"

	"github.com/samber/oops"

	"github.com/gameserverhooks/starthook/lib/expand"
	"github.com/gameserverhooks/starthook/lib/rules"
)

// applyGeneric rewrites a line-oriented file. A rule's key is a literal
// prefix: the first rule whose key prefixes a line's trimmed content
// replaces that whole line with the rule's expanded value. Untouched
// lines pass through verbatim; rules that never matched are appended.
// Unlike the other adapters, a missing target file is skipped, not
// created.
func applyGeneric(path string, find rules.Rules, ex *expand.Expander) error {
	log.Debugf("Parsing generic file: %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debugf("File %s not found, skipping", path)
			return nil
		}
		return oops.Wrapf(err, "reading %s", path)
	}

	lines := splitLines(string(data))
	matched := make([]bool, len(find))
	out := make([]string, 0, len(lines)+len(find))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		replaced := false
		for i, rule := range find {
			if !strings.HasPrefix(trimmed, rule.Path) {
				continue
			}
			value := strings.TrimRight(stringify(resolveValue(rule.Value, ex)), "\r\n")
			log.Debugf("Replacing line starting with %q -> %q", rule.Path, value)
			out = append(out, value)
			matched[i] = true
			replaced = true
			break
		}
		if !replaced {
			out = append(out, line)
		}
	}

	for i, rule := range find {
		if matched[i] {
			continue
		}
		value := strings.TrimRight(stringify(resolveValue(rule.Value, ex)), "\r\n")
		log.Debugf("Appending missing line %q -> %q", rule.Path, value)
		out = append(out, value)
	}

	if err := os.WriteFile(path, []byte(joinLines(out)), 0o644); err != nil {
		return oops.Wrapf(err, "writing %s", path)
	}
	return nil
}
