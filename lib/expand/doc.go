// Package expand resolves {{name}} placeholders in rule values against a
// captured environment snapshot and coerces the result to a native scalar.
//
// Placeholder names go through the alias table first (logical names like
// server.memory map to SERVER_MEMORY), otherwise the name itself is used
// as the environment variable. A placeholder whose variable is unset is
// left literal in the output; see DESIGN.md for the rationale.
package expand
