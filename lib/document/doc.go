// Package document implements the generic nested-map/array model that
// rule paths address into.
//
// A document is the tree encoding/yaml-style decoders produce:
// map[string]any nodes, []any sequences, and scalar leaves. Paths are
// dotted expressions with optional bracket indices (server.players[0].name).
// Writes auto-vivify missing containers and grow short arrays; reads never
// modify the tree. A single * segment expands a rule across every sibling
// key under its prefix.
package document
