package document

import (
	"fmt"
	"sort"
	"strings"
)

// ConcreteRule is one write produced by wildcard expansion.
type ConcreteRule struct {
	Path  string
	Value any
}

// HasWildcard reports whether the path contains a * segment.
func HasWildcard(path string) bool {
	for _, seg := range SplitPath(path) {
		if seg == "*" {
			return true
		}
	}
	return false
}

// ExpandWildcard expands a path with a single * segment into one
// concrete rule per sibling key under the prefix. When spec is a map
// it is keyed by current value: the value already at each sibling's
// concrete path selects the replacement, and siblings whose current
// value has no entry are skipped. Any other spec is applied to every
// sibling identically.
//
// A prefix that does not resolve to a map produces no rules. Sibling
// keys are visited in sorted order so repeated runs write the same
// sequence.
func ExpandWildcard(doc Map, path string, spec any) []ConcreteRule {
	segments := SplitPath(path)
	star := -1
	for i, seg := range segments {
		if seg == "*" {
			star = i
			break
		}
	}
	if star < 0 {
		return nil
	}
	prefix := strings.Join(segments[:star], ".")
	suffix := strings.Join(segments[star+1:], ".")

	parent := any(doc)
	if prefix != "" {
		v, ok := Get(doc, prefix)
		if !ok {
			return nil
		}
		parent = v
	}
	siblings, ok := parent.(Map)
	if !ok {
		return nil
	}

	keys := make([]string, 0, len(siblings))
	for k := range siblings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	byCurrent, remap := spec.(Map)

	var rules []ConcreteRule
	for _, k := range keys {
		concrete := joinPath(prefix, k, suffix)
		if !remap {
			rules = append(rules, ConcreteRule{Path: concrete, Value: spec})
			continue
		}
		current, ok := Get(doc, concrete)
		if !ok {
			continue
		}
		replacement, ok := byCurrent[fmt.Sprintf("%v", current)]
		if !ok {
			continue
		}
		rules = append(rules, ConcreteRule{Path: concrete, Value: replacement})
	}
	return rules
}

func joinPath(parts ...string) string {
	nonEmpty := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, ".")
}
