package expand

import (
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/gameserverhooks/starthook/lib/util/logger"
)

var log = logger.GetLogger()

// placeholderPattern matches {{ name }} tokens; the name is trimmed
// before lookup.
var placeholderPattern = regexp.MustCompile(`\{\{([^}]+)\}\}`)

// Env is a read-only environment snapshot. Capturing it once at process
// start keeps expansion a pure function and lets tests substitute a
// fixed mapping.
type Env map[string]string

// SnapshotEnv captures the live process environment.
func SnapshotEnv() Env {
	env := make(Env)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}
	return env
}

// DefaultAliases maps the logical placeholder names used in rule
// documents to the environment variables the container runtime injects.
var DefaultAliases = map[string]string{
	"server.build.default.port": "SERVER_PORT",
	"server.build.default.ip":   "SERVER_IP",
	"server.memory":             "SERVER_MEMORY",
	"server.uuid":               "P_SERVER_UUID",
	"server.location":           "P_SERVER_LOCATION",
}

// Expander substitutes placeholders against an environment snapshot.
type Expander struct {
	env     Env
	aliases map[string]string
}

// New returns an Expander over the given snapshot using DefaultAliases.
func New(env Env) *Expander {
	return &Expander{env: env, aliases: DefaultAliases}
}

// NewWithAliases returns an Expander with a custom alias table.
func NewWithAliases(env Env, aliases map[string]string) *Expander {
	return &Expander{env: env, aliases: aliases}
}

// Expand resolves placeholders in value. Strings are substituted and
// then coerced as a whole via ToNative; maps and arrays are rebuilt with
// every leaf expanded; other values pass through unchanged.
func (e *Expander) Expand(value any) any {
	switch v := value.(type) {
	case string:
		return ToNative(e.expandString(v))
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, elem := range v {
			out[k] = e.Expand(elem)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, elem := range v {
			out[i] = e.Expand(elem)
		}
		return out
	default:
		return value
	}
}

func (e *Expander) expandString(s string) string {
	return placeholderPattern.ReplaceAllStringFunc(s, func(match string) string {
		name := strings.TrimSpace(match[2 : len(match)-2])
		if val, ok := e.Lookup(name); ok {
			return val
		}
		// Unset variable: keep the placeholder text so the output makes
		// the unresolved reference visible to whoever reads the file.
		log.Warnf("Placeholder %q has no environment variable set, leaving it as-is", name)
		return match
	})
}

// Lookup resolves a placeholder name through the alias table and then
// the environment snapshot.
func (e *Expander) Lookup(name string) (string, bool) {
	envVar := name
	if alias, ok := e.aliases[name]; ok {
		envVar = alias
	}
	v, ok := e.env[envVar]
	return v, ok
}

// ToNative coerces a string to its native scalar. The checks are
// ordered and deliberately dumb: case-insensitive bool literals first,
// then all-decimal-digit integers (leading zeros are lost: "007"
// becomes 7), everything else stays a string. This is policy, not
// inference, and its boundary cases must stay exactly as they are for
// compatibility with existing rule documents.
func ToNative(s string) any {
	switch strings.ToLower(s) {
	case "true":
		return true
	case "false":
		return false
	}
	if isDigits(s) {
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
		// Overflow: too big to be a port or memory figure anyway.
	}
	return s
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
