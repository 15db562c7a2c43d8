package engine

import (
	"strings"

	"github.com/allenareeckal/calcrules/rules"
)

// CalculationRules bundles the four sub-configurations that define how the
// calculation engine performs a run:
//
//   - pricing: how calculations are performed (model and function bindings)
//   - marketDataSelection: which market data each calculation uses
//   - reporting: how results are reported (reporting currency)
//   - marketDataBuild: settings for building non-observable market data
//
// A CalculationRules is immutable and all four fields are always non-nil.
// Producing a changed value goes through ToBuilder, never in-place mutation.
type CalculationRules struct {
	pricing             *rules.PricingRules
	marketDataSelection *rules.MarketDataRules
	reporting           *rules.ReportingRules
	marketDataBuild     *rules.MarketDataConfig
}

// NewCalculationRules constructs an aggregate from the four
// sub-configurations. Every argument must be non-nil; a nil argument fails
// with ValidationError naming the field. Builder.Build delegates here.
func NewCalculationRules(
	pricing *rules.PricingRules,
	marketDataSelection *rules.MarketDataRules,
	reporting *rules.ReportingRules,
	marketDataBuild *rules.MarketDataConfig,
) (*CalculationRules, error) {
	if pricing == nil {
		return nil, ValidationError{Field: PropertyPricing}
	}
	if marketDataSelection == nil {
		return nil, ValidationError{Field: PropertyMarketDataSelection}
	}
	if reporting == nil {
		return nil, ValidationError{Field: PropertyReporting}
	}
	if marketDataBuild == nil {
		return nil, ValidationError{Field: PropertyMarketDataBuild}
	}
	return &CalculationRules{
		pricing:             pricing,
		marketDataSelection: marketDataSelection,
		reporting:           reporting,
		marketDataBuild:     marketDataBuild,
	}, nil
}

// Pricing returns the pricing rules.
func (c *CalculationRules) Pricing() *rules.PricingRules { return c.pricing }

// MarketDataSelection returns the market data selection rules.
func (c *CalculationRules) MarketDataSelection() *rules.MarketDataRules {
	return c.marketDataSelection
}

// Reporting returns the reporting rules.
func (c *CalculationRules) Reporting() *rules.ReportingRules { return c.reporting }

// MarketDataBuild returns the market data build config.
func (c *CalculationRules) MarketDataBuild() *rules.MarketDataConfig {
	return c.marketDataBuild
}

// Get returns a field by property name. Unknown names fail with
// UnknownPropertyError.
func (c *CalculationRules) Get(name string) (any, error) {
	p, ok := lookupProperty(name)
	if !ok {
		return nil, UnknownPropertyError{Name: name}
	}
	return p.get(c), nil
}

// ToBuilder returns a Builder seeded with this instance's field values.
// No defaults are applied; building it unchanged reproduces an equal value.
func (c *CalculationRules) ToBuilder() *Builder {
	return &Builder{
		pricing:             c.pricing,
		marketDataSelection: c.marketDataSelection,
		reporting:           c.reporting,
		marketDataBuild:     c.marketDataBuild,
	}
}

// Equal reports structural equality: all four fields pairwise equal.
func (c *CalculationRules) Equal(o *CalculationRules) bool {
	if c == nil || o == nil {
		return c == o
	}
	return c.pricing.Equal(o.pricing) &&
		c.marketDataSelection.Equal(o.marketDataSelection) &&
		c.reporting.Equal(o.reporting) &&
		c.marketDataBuild.Equal(o.marketDataBuild)
}

// Hash returns a deterministic, order-sensitive combination of the four
// field hashes. Equal values always hash equally.
func (c *CalculationRules) Hash() uint32 {
	h := uint32(17)
	h = h*31 + c.pricing.Hash()
	h = h*31 + c.marketDataSelection.Hash()
	h = h*31 + c.reporting.Hash()
	h = h*31 + c.marketDataBuild.Hash()
	return h
}

// String renders the aggregate with each field in the fixed property order,
// using each sub-configuration's own canonical rendering.
func (c *CalculationRules) String() string {
	var b strings.Builder
	b.WriteString("CalculationRules{")
	b.WriteString(PropertyPricing)
	b.WriteByte('=')
	b.WriteString(c.pricing.String())
	b.WriteString(", ")
	b.WriteString(PropertyMarketDataSelection)
	b.WriteByte('=')
	b.WriteString(c.marketDataSelection.String())
	b.WriteString(", ")
	b.WriteString(PropertyReporting)
	b.WriteByte('=')
	b.WriteString(c.reporting.String())
	b.WriteString(", ")
	b.WriteString(PropertyMarketDataBuild)
	b.WriteByte('=')
	b.WriteString(c.marketDataBuild.String())
	b.WriteByte('}')
	return b.String()
}
