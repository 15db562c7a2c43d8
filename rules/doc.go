// Package rules contains the four calculation sub-configuration value types:
//
//   - PricingRules: how calculations are performed (target -> function group)
//   - MarketDataRules: which market data each calculation uses
//   - ReportingRules: how results are reported (reporting currency)
//   - MarketDataConfig: settings for building non-observable market data
//
// Every type follows the same contract so that generic tooling (the engine
// package's property layer) can treat them uniformly:
//
//   - an Empty* singleton, the canonical zero-configuration value
//   - a Parse* function that accepts the canonical text form
//   - a String method that produces the canonical text form
//     (the empty value always renders as "EMPTY")
//   - structural Equal and a deterministic Hash consistent with Equal
//
// Values are immutable after construction: fields are unexported and
// accessors return copies. Parse and String round-trip exactly:
// Parse*(v.String()) yields a value equal to v.
package rules
