// Package adaptive provides NamedMap, a name-keyed container with
// dual-format decoding.
//
// Configuration authors can write the terse form and tools can regenerate
// the detailed form; consuming code sees one map either way:
//
//	# terse, human-authored
//	capabilities: ["logger", "http"]
//
//	# detailed, tool-generated
//	capabilities:
//	  logger: { version: "1.0" }
//	  http: { version: "0.2" }
//
// The terse form needs a way to build a whole value out of a bare name; the
// element type supplies it by implementing FromNamer. The detailed form just
// decodes each value by its normal structural rules and works for any
// element type.
//
// Encoding is deliberately asymmetric: a NamedMap always encodes as the
// detailed mapping form, so every rewrite upgrades terse input to its
// explicit equivalent.
//
// # Decode paths
//
//   - Format-agnostic: adaptive.Decode / adaptive.Encode over a value.Value
//     tree, for maps embedded in larger documents.
//   - JSON: NamedMap implements json.Marshaler/json.Unmarshaler;
//     FromJSONString / ToJSONString for standalone documents.
//   - YAML: NamedMap implements yaml.Marshaler/yaml.Unmarshaler;
//     FromYAMLString / ToYAMLString.
//   - TOML: FromTOMLString / ToTOMLString (detailed form only at the top
//     level; TOML documents are tables).
//
// Decoding is all-or-nothing and performs no I/O, no logging, and no
// recovery; every failure is returned to the caller as a wrapped sentinel
// (ErrShape, ErrSequenceElement, ErrFromNameUnsupported) or the codec's own
// error.
package adaptive
