package engine

import (
	"reflect"

	"github.com/allenareeckal/calcrules/rules"
)

// The fixed, closed set of property names, in canonical order.
const (
	PropertyPricing             = "pricing"
	PropertyMarketDataSelection = "marketDataSelection"
	PropertyReporting           = "reporting"
	PropertyMarketDataBuild     = "marketDataBuild"
)

// Property describes one named field of CalculationRules for generic
// tooling: its name, the string form of its Go type, and the accessors the
// engine dispatches through. Dispatch is this fixed table; there is no
// runtime reflection on the aggregate or the builder.
type Property struct {
	// Name is the property name, one of the Property* constants.
	Name string
	// Type is the Go type the property holds, e.g. "*rules.PricingRules".
	Type string

	get        func(*CalculationRules) any
	builderGet func(*Builder) any
	set        func(*Builder, any) error
	parse      func(string) (any, error)
}

// properties is the compile-time property table, in canonical order.
var properties = []Property{
	{
		Name: PropertyPricing,
		Type: "*rules.PricingRules",
		get:  func(c *CalculationRules) any { return c.pricing },
		builderGet: func(b *Builder) any {
			if b.pricing == nil {
				return nil
			}
			return b.pricing
		},
		set: func(b *Builder, v any) error {
			p, ok := v.(*rules.PricingRules)
			if !ok {
				return WrongTypeError{Name: PropertyPricing, GotType: typeName(v)}
			}
			return b.SetPricing(p)
		},
		parse: func(text string) (any, error) {
			v, err := rules.ParsePricingRules(text)
			if err != nil {
				return nil, err
			}
			return v, nil
		},
	},
	{
		Name: PropertyMarketDataSelection,
		Type: "*rules.MarketDataRules",
		get:  func(c *CalculationRules) any { return c.marketDataSelection },
		builderGet: func(b *Builder) any {
			if b.marketDataSelection == nil {
				return nil
			}
			return b.marketDataSelection
		},
		set: func(b *Builder, v any) error {
			m, ok := v.(*rules.MarketDataRules)
			if !ok {
				return WrongTypeError{Name: PropertyMarketDataSelection, GotType: typeName(v)}
			}
			return b.SetMarketDataSelection(m)
		},
		parse: func(text string) (any, error) {
			v, err := rules.ParseMarketDataRules(text)
			if err != nil {
				return nil, err
			}
			return v, nil
		},
	},
	{
		Name: PropertyReporting,
		Type: "*rules.ReportingRules",
		get:  func(c *CalculationRules) any { return c.reporting },
		builderGet: func(b *Builder) any {
			if b.reporting == nil {
				return nil
			}
			return b.reporting
		},
		set: func(b *Builder, v any) error {
			r, ok := v.(*rules.ReportingRules)
			if !ok {
				return WrongTypeError{Name: PropertyReporting, GotType: typeName(v)}
			}
			return b.SetReporting(r)
		},
		parse: func(text string) (any, error) {
			v, err := rules.ParseReportingRules(text)
			if err != nil {
				return nil, err
			}
			return v, nil
		},
	},
	{
		Name: PropertyMarketDataBuild,
		Type: "*rules.MarketDataConfig",
		get:  func(c *CalculationRules) any { return c.marketDataBuild },
		builderGet: func(b *Builder) any {
			if b.marketDataBuild == nil {
				return nil
			}
			return b.marketDataBuild
		},
		set: func(b *Builder, v any) error {
			m, ok := v.(*rules.MarketDataConfig)
			if !ok {
				return WrongTypeError{Name: PropertyMarketDataBuild, GotType: typeName(v)}
			}
			return b.SetMarketDataBuild(m)
		},
		parse: func(text string) (any, error) {
			v, err := rules.ParseMarketDataConfig(text)
			if err != nil {
				return nil, err
			}
			return v, nil
		},
	},
}

// propertyIndex maps names to table entries; built once at package init.
var propertyIndex = func() map[string]*Property {
	idx := make(map[string]*Property, len(properties))
	for i := range properties {
		idx[properties[i].Name] = &properties[i]
	}
	return idx
}()

// lookupProperty returns the table entry for a name.
func lookupProperty(name string) (*Property, bool) {
	p, ok := propertyIndex[name]
	return p, ok
}

// PropertyNames returns the four property names in canonical order.
func PropertyNames() []string {
	names := make([]string, len(properties))
	for i, p := range properties {
		names[i] = p.Name
	}
	return names
}

// Properties returns metadata for the four properties in canonical order.
// The returned slice is a copy.
func Properties() []Property {
	out := make([]Property, len(properties))
	copy(out, properties)
	return out
}

// LookupProperty returns metadata for a property name.
func LookupProperty(name string) (Property, bool) {
	p, ok := propertyIndex[name]
	if !ok {
		return Property{}, false
	}
	return *p, true
}

// typeName reports the dynamic type of a rejected value for WrongTypeError.
// The nil case is handled before set dispatch, so v is never nil here.
func typeName(v any) string {
	return reflect.TypeOf(v).String()
}
