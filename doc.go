// Package calcrules provides an immutable, validated calculation-rules
// aggregate with a defaulted builder and a name-indexed property layer.
//
// The repository is organised as two small packages plus examples:
//
//   - engine: CalculationRules (the immutable aggregate), Builder (the
//     validating staging object), the fixed property table for name-based
//     get/set/coercion, and the typed errors the core surfaces.
//   - rules: the four sub-configuration value types the aggregate bundles
//     (pricing rules, market data selection rules, reporting rules, market
//     data build config), each with an empty singleton, canonical text
//     parse/render, and structural equality/hash.
//
// The core is deliberately a pure value-construction module: no file
// parsing, no persistence, no I/O, no internal concurrency. Construction
// either succeeds with a complete, immutable value or fails synchronously
// with a typed error.
//
// Start with the examples:
//   - examples/typed: the typed builder API and modify-and-rebuild
//   - examples/generic: driving the builder through the property layer
package calcrules
