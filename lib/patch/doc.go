// Package patch holds the format adapters: the pieces that know how to
// read one kind of configuration file, apply a set of patch rules, and
// rewrite it in full.
//
// Three formats are supported, selected by the rule document's parser
// tag: YAML documents addressed by dotted path expressions, Java
// .properties files addressed by key, and generic line-oriented files
// addressed by literal line prefix. An unrecognized tag maps to
// ParserUnsupported, which logs and no-ops so one bad entry cannot sink
// the rest of the run.
package patch
