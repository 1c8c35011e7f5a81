package rules

import (
	"os"

	"github.com/samber/oops"
	"gopkg.in/yaml.v3"
)

// Phase names recognized in the rule document.
const (
	PhaseInstall  = "install"
	PhasePreStart = "pre_start"
)

// Document is the immutable top-level rule configuration, loaded once at
// process start.
type Document struct {
	Install  Phase `yaml:"install"`
	PreStart Phase `yaml:"pre_start"`
}

// Phase is the ordered set of target-file entries for one phase.
type Phase []FileEntry

// FileEntry identifies one target file, its parser tag, and its patch
// rules.
type FileEntry struct {
	Path   string
	Parser string
	Find   Rules
}

// Rules is an ordered set of patch rules for one file.
type Rules []Rule

// Rule maps a path expression (or line prefix, for generic targets) to a
// replacement-value specification.
type Rule struct {
	Path  string
	Value any
}

// Load reads and parses the rule document. Any failure here is fatal to
// the run: patching against a missing or garbled rule file would leave
// the server with a half-known configuration.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, oops.Wrapf(err, "rule document %s is unreadable", path)
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, oops.Wrapf(err, "rule document %s is not valid YAML", path)
	}
	return &doc, nil
}

// ByName returns the phase with the given name.
func (d *Document) ByName(name string) (Phase, bool) {
	switch name {
	case PhaseInstall:
		return d.Install, true
	case PhasePreStart:
		return d.PreStart, true
	default:
		return nil, false
	}
}

// UnmarshalYAML decodes a phase mapping while preserving the declared
// file order.
func (p *Phase) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return oops.Errorf("phase must be a mapping of file paths, got yaml kind %d", node.Kind)
	}
	for i := 0; i < len(node.Content); i += 2 {
		pathNode, entryNode := node.Content[i], node.Content[i+1]
		entry := FileEntry{Path: pathNode.Value}
		if entryNode.Kind != yaml.MappingNode {
			return oops.Errorf("entry for %s must be a mapping, got yaml kind %d", pathNode.Value, entryNode.Kind)
		}
		for j := 0; j < len(entryNode.Content); j += 2 {
			switch entryNode.Content[j].Value {
			case "parser":
				entry.Parser = entryNode.Content[j+1].Value
			case "find":
				if err := entryNode.Content[j+1].Decode(&entry.Find); err != nil {
					return oops.Wrapf(err, "find rules for %s", pathNode.Value)
				}
			}
		}
		*p = append(*p, entry)
	}
	return nil
}

// UnmarshalYAML decodes a find mapping while preserving the declared
// rule order.
func (r *Rules) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return oops.Errorf("find must be a mapping of path expressions, got yaml kind %d", node.Kind)
	}
	for i := 0; i < len(node.Content); i += 2 {
		var value any
		if err := node.Content[i+1].Decode(&value); err != nil {
			return oops.Wrapf(err, "rule value for %s", node.Content[i].Value)
		}
		*r = append(*r, Rule{Path: node.Content[i].Value, Value: value})
	}
	return nil
}
