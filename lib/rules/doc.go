// Package rules loads the declarative rule document that drives file
// patching.
//
// The document is a YAML mapping of phase names to target files:
//
//	install:
//	  config/paper-global.yml:
//	    parser: yaml
//	    find:
//	      proxies.velocity.enabled: "{{VELOCITY_ENABLED}}"
//	pre_start:
//	  server.properties:
//	    parser: properties
//	    find:
//	      server-port: "{{server.build.default.port}}"
//
// Rule application order matters (later rules on overlapping paths win,
// files are processed in declared order), so phases and find-sets decode
// through yaml.Node into ordered slices rather than Go maps. JSON rule
// files parse too, YAML being a superset.
package rules
