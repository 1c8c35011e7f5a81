package patch

import (
	"bytes"
	"os"

	"github.com/samber/oops"
	"gopkg.in/yaml.v3"

	"github.com/gameserverhooks/starthook/lib/document"
	"github.com/gameserverhooks/starthook/lib/expand"
	"github.com/gameserverhooks/starthook/lib/rules"
)

// applyYAML loads the target into the generic document model (an absent
// file starts as an empty document), applies the rules in declared
// order, and rewrites the file. Re-serialization is canonical: original
// formatting and comments are not preserved.
func applyYAML(path string, find rules.Rules, ex *expand.Expander) error {
	log.Debugf("Parsing YAML file: %s", path)

	doc := document.Map{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return oops.Wrapf(err, "target %s is not valid YAML", path)
		}
		if doc == nil {
			// Empty or null document.
			doc = document.Map{}
		}
	case os.IsNotExist(err):
		log.Debugf("File %s not found, creating a new one", path)
	default:
		return oops.Wrapf(err, "reading %s", path)
	}

	for _, rule := range find {
		value := resolveValue(rule.Value, ex)
		if document.HasWildcard(rule.Path) {
			for _, cr := range document.ExpandWildcard(doc, rule.Path, value) {
				log.Debugf("Setting %q -> %v", cr.Path, cr.Value)
				document.Set(doc, cr.Path, cr.Value)
			}
			continue
		}
		log.Debugf("Setting %q -> %v", rule.Path, value)
		document.Set(doc, rule.Path, value)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return oops.Wrapf(err, "serializing %s", path)
	}
	if err := enc.Close(); err != nil {
		return oops.Wrapf(err, "serializing %s", path)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return oops.Wrapf(err, "writing %s", path)
	}
	return nil
}
