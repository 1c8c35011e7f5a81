package patch

import (
	"fmt"
	"strings"

	"github.com/gameserverhooks/starthook/lib/expand"
	"github.com/gameserverhooks/starthook/lib/rules"
	"github.com/gameserverhooks/starthook/lib/util/logger"
)

var log = logger.GetLogger()

// Parser is the closed set of file formats the hook can patch.
type Parser int

const (
	ParserUnsupported Parser = iota
	ParserYAML
	ParserProperties
	ParserGeneric
)

// ParserFromTag maps a rule document parser tag to its Parser. Unknown
// tags map to ParserUnsupported.
func ParserFromTag(tag string) Parser {
	switch strings.ToLower(tag) {
	case "yaml", "yml":
		return ParserYAML
	case "properties":
		return ParserProperties
	case "file":
		return ParserGeneric
	default:
		return ParserUnsupported
	}
}

func (p Parser) String() string {
	switch p {
	case ParserYAML:
		return "yaml"
	case ParserProperties:
		return "properties"
	case ParserGeneric:
		return "file"
	default:
		return "unsupported"
	}
}

// Apply patches the file at path with the given rules. File read/write
// errors propagate: a half-patched configuration is worse than a failed
// launch. ParserUnsupported logs a warning and does nothing.
func (p Parser) Apply(path string, find rules.Rules, ex *expand.Expander) error {
	switch p {
	case ParserYAML:
		return applyYAML(path, find, ex)
	case ParserProperties:
		return applyProperties(path, find, ex)
	case ParserGeneric:
		return applyGeneric(path, find, ex)
	default:
		log.Warnf("Parser for %s is not supported, skipping", path)
		return nil
	}
}

// resolveValue turns a replacement-value specification into the value to
// write: the start-command sentinel becomes the computed argv, anything
// else goes through placeholder expansion.
func resolveValue(spec any, ex *expand.Expander) any {
	if s, ok := spec.(string); ok && s == StartCommandPlaceholder {
		return BuildStartCommand(ex)
	}
	return ex.Expand(spec)
}

// stringify renders a resolved value for the line-oriented formats.
// Argv lists join with single spaces.
func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []any:
		parts := make([]string, len(t))
		for i, e := range t {
			parts[i] = stringify(e)
		}
		return strings.Join(parts, " ")
	default:
		return fmt.Sprintf("%v", t)
	}
}

// splitLines breaks file contents into lines without their trailing
// newline; a final newline does not produce a phantom empty line.
func splitLines(data string) []string {
	if data == "" {
		return nil
	}
	data = strings.TrimSuffix(data, "\n")
	lines := strings.Split(data, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// joinLines is the inverse of splitLines: every line gets exactly one
// trailing newline.
func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
