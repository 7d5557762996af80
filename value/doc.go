// Package value provides a small closed variant for structured data:
// null, bool, number, string, sequence, and mapping.
//
// It is the format-agnostic boundary between concrete wire formats and code
// that only cares about structural shape. Front ends for JSON (encoding/json),
// YAML (gopkg.in/yaml.v3), and TOML (go-toml/v2) convert between their native
// representations and Value; consumers dispatch on Kind and never touch
// format syntax.
//
// # Shape model
//
//   - Scalars: KindNull, KindBool, KindNumber (float64), KindString
//   - Containers: KindSequence ([]Value), KindMapping (map[string]Value)
//
// Numbers are float64 throughout, matching the JSON data model. Integers that
// a float64 cannot hold exactly are rejected on conversion instead of being
// rounded.
package value
