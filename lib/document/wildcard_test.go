package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExpandWildcardRemapByCurrentValue covers the migration use case:
// only siblings whose current value appears in the spec map get a rule.
func TestExpandWildcardRemapByCurrentValue(t *testing.T) {
	doc := Map{
		"servers": Map{
			"s1": Map{"mode": "old"},
			"s2": Map{"mode": "new"},
		},
	}
	rules := ExpandWildcard(doc, "servers.*.mode", Map{"old": "renamed"})
	require.Len(t, rules, 1)
	assert.Equal(t, "servers.s1.mode", rules[0].Path)
	assert.Equal(t, "renamed", rules[0].Value)

	for _, r := range rules {
		Set(doc, r.Path, r.Value)
	}
	got, _ := Get(doc, "servers.s1.mode")
	assert.Equal(t, "renamed", got)
	got, _ = Get(doc, "servers.s2.mode")
	assert.Equal(t, "new", got, "unmatched sibling stays untouched")
}

// TestExpandWildcardIdenticalValue tests the "patch every child the same
// way" form: a non-map spec is emitted for every sibling.
func TestExpandWildcardIdenticalValue(t *testing.T) {
	doc := Map{
		"worlds": Map{
			"nether": Map{},
			"end":    Map{},
		},
	}
	rules := ExpandWildcard(doc, "worlds.*.pvp", false)
	require.Len(t, rules, 2)
	// Sorted sibling order.
	assert.Equal(t, "worlds.end.pvp", rules[0].Path)
	assert.Equal(t, "worlds.nether.pvp", rules[1].Path)
	for _, r := range rules {
		assert.Equal(t, false, r.Value)
	}
}

// TestExpandWildcardPrefixNotMap tests that a prefix resolving to a
// non-map (or nothing) produces no rules.
func TestExpandWildcardPrefixNotMap(t *testing.T) {
	doc := Map{"servers": "scalar"}
	assert.Empty(t, ExpandWildcard(doc, "servers.*.mode", Map{"old": "new"}))
	assert.Empty(t, ExpandWildcard(doc, "absent.*.mode", Map{"old": "new"}))
}

// TestExpandWildcardMissingSuffix tests that siblings lacking the suffix
// path are skipped in remap mode.
func TestExpandWildcardMissingSuffix(t *testing.T) {
	doc := Map{
		"servers": Map{
			"s1": Map{"mode": "old"},
			"s2": Map{},
		},
	}
	rules := ExpandWildcard(doc, "servers.*.mode", Map{"old": "renamed"})
	require.Len(t, rules, 1)
	assert.Equal(t, "servers.s1.mode", rules[0].Path)
}

// TestExpandWildcardStringifiedCurrentValue tests that non-string current
// values match spec keys by their printed form.
func TestExpandWildcardStringifiedCurrentValue(t *testing.T) {
	doc := Map{
		"servers": Map{
			"s1": Map{"port": 25565},
		},
	}
	rules := ExpandWildcard(doc, "servers.*.port", Map{"25565": 25566})
	require.Len(t, rules, 1)
	assert.Equal(t, 25566, rules[0].Value)
}

func TestHasWildcard(t *testing.T) {
	assert.True(t, HasWildcard("a.*.c"))
	assert.True(t, HasWildcard("*.c"))
	assert.False(t, HasWildcard("a.b.c"))
	assert.False(t, HasWildcard("a.star*.c"), "* must be a whole segment")
}
