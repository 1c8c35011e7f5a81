package document

import (
	"strconv"
	"strings"
)

// Map is a generic document node.
type Map = map[string]any

// segment is one step of a path expression: a plain key, or a key plus
// an array index (key[2]).
type segment struct {
	key      string
	index    int
	hasIndex bool
}

// SplitPath splits a path expression on dots, except dots inside an
// index bracket, so "a.b[2].c" yields ["a", "b[2]", "c"].
func SplitPath(path string) []string {
	var segments []string
	var b strings.Builder
	depth := 0
	for _, r := range path {
		switch {
		case r == '[':
			depth++
			b.WriteRune(r)
		case r == ']':
			if depth > 0 {
				depth--
			}
			b.WriteRune(r)
		case r == '.' && depth == 0:
			segments = append(segments, b.String())
			b.Reset()
		default:
			b.WriteRune(r)
		}
	}
	segments = append(segments, b.String())
	return segments
}

// parseSegment recognizes the key[index] form. Anything that is not a
// well-formed non-negative index (a[x], a[-1], a[]) is treated as a
// plain key, matching how the rule grammar has always behaved.
func parseSegment(raw string) segment {
	open := strings.IndexByte(raw, '[')
	if open <= 0 || !strings.HasSuffix(raw, "]") {
		return segment{key: raw}
	}
	idx, err := strconv.Atoi(raw[open+1 : len(raw)-1])
	if err != nil || idx < 0 {
		return segment{key: raw}
	}
	return segment{key: raw[:open], index: idx, hasIndex: true}
}

// Set writes value at the location path addresses, creating intermediate
// maps and arrays as needed. An intermediate that exists but is not the
// right kind of container is replaced with a fresh one (last writer
// wins). Arrays shorter than a requested index grow with empty-map
// placeholders for intermediate segments and nil for the final segment.
func Set(doc Map, path string, value any) {
	segments := SplitPath(path)
	current := doc

	for _, raw := range segments[:len(segments)-1] {
		seg := parseSegment(raw)
		if seg.hasIndex {
			arr, _ := current[seg.key].([]any)
			for len(arr) <= seg.index {
				arr = append(arr, Map{})
			}
			current[seg.key] = arr
			next, ok := arr[seg.index].(Map)
			if !ok {
				next = Map{}
				arr[seg.index] = next
			}
			current = next
		} else {
			next, ok := current[seg.key].(Map)
			if !ok {
				next = Map{}
				current[seg.key] = next
			}
			current = next
		}
	}

	seg := parseSegment(segments[len(segments)-1])
	if seg.hasIndex {
		arr, _ := current[seg.key].([]any)
		for len(arr) <= seg.index {
			arr = append(arr, nil)
		}
		arr[seg.index] = value
		current[seg.key] = arr
	} else {
		current[seg.key] = value
	}
}

// Get reads the value path addresses. It returns false the moment a key
// is missing, an index is out of range, or a container kind does not
// match the segment; it never modifies the document.
func Get(doc Map, path string) (any, bool) {
	var node any = doc
	for _, raw := range SplitPath(path) {
		seg := parseSegment(raw)
		m, ok := node.(Map)
		if !ok {
			return nil, false
		}
		child, ok := m[seg.key]
		if !ok {
			return nil, false
		}
		if seg.hasIndex {
			arr, ok := child.([]any)
			if !ok || seg.index >= len(arr) {
				return nil, false
			}
			child = arr[seg.index]
		}
		node = child
	}
	return node, true
}
