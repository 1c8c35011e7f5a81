package patch

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gameserverhooks/starthook/lib/expand"
)

// TestBuildStartCommandFixedOrder tests assembly order: executable, JVM
// args, main, trailing args.
func TestBuildStartCommandFixedOrder(t *testing.T) {
	ex := expand.New(expand.Env{
		"SERVER_EXECUTABLE": "/usr/bin/java",
		"SERVER_JVM_ARGS":   "-Xms128M -Xmx{{server.memory}}M",
		"SERVER_MAIN":       "-jar server.jar",
		"SERVER_EXTRA_ARGS": "--nogui",
	})
	argv := BuildStartCommand(ex)
	assert.Equal(t, []any{"/usr/bin/java", "-Xms128M", "-Xmx{{server.memory}}M", "-jar", "server.jar", "--nogui"}, argv)
}

// TestBuildStartCommandOmitsAbsentSegments tests that unset or empty
// segments drop out without placeholders.
func TestBuildStartCommandOmitsAbsentSegments(t *testing.T) {
	ex := expand.New(expand.Env{
		"SERVER_EXECUTABLE": "./bedrock_server",
		"SERVER_EXTRA_ARGS": "",
	})
	argv := BuildStartCommand(ex)
	assert.Equal(t, []any{"./bedrock_server"}, argv)
}

// TestBuildStartCommandQuotedArguments tests that shell quoting survives
// as single tokens.
func TestBuildStartCommandQuotedArguments(t *testing.T) {
	ex := expand.New(expand.Env{
		"SERVER_EXECUTABLE": "java",
		"SERVER_EXTRA_ARGS": `--world "my world"`,
	})
	argv := BuildStartCommand(ex)
	assert.Equal(t, []any{"java", "--world", "my world"}, argv)
}

// TestBuildStartCommandLexFailureSkipsSegment tests that an unlexable
// segment is skipped, not fatal.
func TestBuildStartCommandLexFailureSkipsSegment(t *testing.T) {
	ex := expand.New(expand.Env{
		"SERVER_EXECUTABLE": "java",
		"SERVER_EXTRA_ARGS": `--broken "unterminated`,
	})
	argv := BuildStartCommand(ex)
	assert.Equal(t, []any{"java"}, argv)
}

// TestResolveValueSentinel tests sentinel interception ahead of plain
// expansion.
func TestResolveValueSentinel(t *testing.T) {
	ex := expand.New(expand.Env{"SERVER_EXECUTABLE": "java"})
	v := resolveValue(StartCommandPlaceholder, ex)
	assert.Equal(t, []any{"java"}, v)

	v = resolveValue("{{SERVER_EXECUTABLE}}", ex)
	assert.Equal(t, "java", v)
}
