package expand

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testExpander(env Env) *Expander {
	return New(env)
}

// TestExpandAliasedPlaceholder tests that a logical name resolves through
// the alias table and that embedded placeholders do not trigger coercion
// of the surrounding string.
func TestExpandAliasedPlaceholder(t *testing.T) {
	e := testExpander(Env{"SERVER_PORT": "25565"})
	got := e.Expand("server-port={{server.build.default.port}}")
	assert.Equal(t, "server-port=25565", got)
}

// TestExpandWholeValueCoercion tests that a placeholder spanning the whole
// value coerces to a native integer.
func TestExpandWholeValueCoercion(t *testing.T) {
	e := testExpander(Env{"SERVER_PORT": "25565"})
	assert.Equal(t, 25565, e.Expand("{{SERVER_PORT}}"))
}

// TestExpandUnsetPlaceholderLeftLiteral tests the miss policy: an unset
// variable leaves the placeholder text untouched.
func TestExpandUnsetPlaceholderLeftLiteral(t *testing.T) {
	e := testExpander(Env{})
	assert.Equal(t, "{{NOT_SET}}", e.Expand("{{NOT_SET}}"))
}

// TestExpandWhitespaceTrimmedName tests that {{ name }} with padding
// resolves the trimmed name.
func TestExpandWhitespaceTrimmedName(t *testing.T) {
	e := testExpander(Env{"SERVER_MEMORY": "1024"})
	assert.Equal(t, 1024, e.Expand("{{ server.memory }}"))
}

// TestExpandRecursesContainers tests that maps and arrays are rebuilt
// with each leaf expanded.
func TestExpandRecursesContainers(t *testing.T) {
	e := testExpander(Env{"SERVER_IP": "0.0.0.0", "QUERY_ENABLED": "true"})
	in := map[string]any{
		"listeners": []any{
			map[string]any{"host": "{{SERVER_IP}}", "query": "{{QUERY_ENABLED}}"},
		},
		"count": 3,
	}
	got := e.Expand(in).(map[string]any)
	listener := got["listeners"].([]any)[0].(map[string]any)
	assert.Equal(t, "0.0.0.0", listener["host"])
	assert.Equal(t, true, listener["query"])
	assert.Equal(t, 3, got["count"])
}

// TestExpandNonStringLeafPassthrough tests that non-string scalars are
// returned unchanged.
func TestExpandNonStringLeafPassthrough(t *testing.T) {
	e := testExpander(Env{})
	assert.Equal(t, 42, e.Expand(42))
	assert.Equal(t, true, e.Expand(true))
	assert.Nil(t, e.Expand(nil))
}

// TestExpandMultiplePlaceholders tests several placeholders in one string.
func TestExpandMultiplePlaceholders(t *testing.T) {
	e := testExpander(Env{"SERVER_IP": "127.0.0.1", "SERVER_PORT": "25565"})
	got := e.Expand("{{SERVER_IP}}:{{SERVER_PORT}}")
	assert.Equal(t, "127.0.0.1:25565", got)
}

func TestToNative(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"true", true},
		{"TRUE", true},
		{"False", false},
		{"25565", 25565},
		{"007", 7},
		{"0", 0},
		{"-1", "-1"},
		{"1.5", "1.5"},
		{"", ""},
		{"yes", "yes"},
		{"25565x", "25565x"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToNative(tt.in), "ToNative(%q)", tt.in)
	}
}
