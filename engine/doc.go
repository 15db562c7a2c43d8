// Package engine provides the validated calculation-rules aggregate and its
// builder.
//
// CalculationRules is an immutable value bundling the four sub-configurations
// that drive a calculation run: pricing rules, market data selection rules,
// reporting rules, and the market data build config. Every constructed
// instance holds all four; there is no partially-built aggregate.
//
// Construction always goes through a Builder:
//
//	b := engine.NewBuilder() // all four slots start at the empty defaults
//	if err := b.SetReporting(reporting); err != nil { ... }
//	cr, err := b.Build()
//
// Modify-and-rebuild goes back through a Builder seeded from the existing
// value; the original is never mutated:
//
//	b := cr.ToBuilder()
//	if err := b.SetPricing(pricing); err != nil { ... }
//	cr2, err := b.Build()
//
// Alongside the typed API there is a name-indexed property layer for generic
// tooling: PropertyNames, LookupProperty, and the Builder's Get, Set,
// SetString and SetAll. Dispatch is a fixed compile-time table, not runtime
// reflection.
//
// Errors are structured and synchronous: ValidationError for a missing
// required value, UnknownPropertyError for a name outside the fixed four,
// ParseError for malformed canonical text, WrongTypeError for a name-keyed
// set with the wrong dynamic type. Nothing is retried or logged internally.
//
// A built CalculationRules is safe to share across goroutines. A Builder is
// a plain mutable value with no internal locking; do not mutate one from
// multiple goroutines without external synchronization.
package engine
