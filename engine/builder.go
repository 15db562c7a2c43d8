package engine

import (
	"strings"

	"github.com/allenareeckal/calcrules/rules"
)

// Builder is the mutable staging value used to assemble a CalculationRules.
//
// A fresh Builder starts with every slot populated by the corresponding
// sub-configuration's empty value, so NewBuilder().Build() always succeeds.
// A Builder obtained from CalculationRules.ToBuilder starts with that
// instance's values instead.
//
// Setters hard-reject nil, so a populated slot can never be driven back to
// absent. A failed set leaves the slot unchanged. Build does not consume or
// freeze the Builder: it may be mutated and built again, and each Build
// returns an independent snapshot of the values at that moment.
//
// A Builder is not safe for concurrent mutation.
type Builder struct {
	pricing             *rules.PricingRules
	marketDataSelection *rules.MarketDataRules
	reporting           *rules.ReportingRules
	marketDataBuild     *rules.MarketDataConfig
}

// NewBuilder returns a Builder with all four slots set to the empty defaults.
func NewBuilder() *Builder {
	return &Builder{
		pricing:             rules.EmptyPricingRules(),
		marketDataSelection: rules.EmptyMarketDataRules(),
		reporting:           rules.EmptyReportingRules(),
		marketDataBuild:     rules.EmptyMarketDataConfig(),
	}
}

// SetPricing replaces the pricing rules. Nil fails with ValidationError and
// leaves the slot unchanged.
func (b *Builder) SetPricing(v *rules.PricingRules) error {
	if v == nil {
		return ValidationError{Field: PropertyPricing}
	}
	b.pricing = v
	return nil
}

// SetMarketDataSelection replaces the market data selection rules. Nil fails
// with ValidationError and leaves the slot unchanged.
func (b *Builder) SetMarketDataSelection(v *rules.MarketDataRules) error {
	if v == nil {
		return ValidationError{Field: PropertyMarketDataSelection}
	}
	b.marketDataSelection = v
	return nil
}

// SetReporting replaces the reporting rules. Nil fails with ValidationError
// and leaves the slot unchanged.
func (b *Builder) SetReporting(v *rules.ReportingRules) error {
	if v == nil {
		return ValidationError{Field: PropertyReporting}
	}
	b.reporting = v
	return nil
}

// SetMarketDataBuild replaces the market data build config. Nil fails with
// ValidationError and leaves the slot unchanged.
func (b *Builder) SetMarketDataBuild(v *rules.MarketDataConfig) error {
	if v == nil {
		return ValidationError{Field: PropertyMarketDataBuild}
	}
	b.marketDataBuild = v
	return nil
}

// Get returns the current slot value by property name. Unknown names fail
// with UnknownPropertyError.
func (b *Builder) Get(name string) (any, error) {
	p, ok := lookupProperty(name)
	if !ok {
		return nil, UnknownPropertyError{Name: name}
	}
	return p.builderGet(b), nil
}

// Set replaces a slot by property name with the same nil enforcement as the
// typed setters. It fails with UnknownPropertyError for an unrecognized
// name, ValidationError for a nil value, and WrongTypeError when the value's
// dynamic type does not match the property.
func (b *Builder) Set(name string, value any) error {
	p, ok := lookupProperty(name)
	if !ok {
		return UnknownPropertyError{Name: name}
	}
	if value == nil {
		return ValidationError{Field: name}
	}
	return p.set(b, value)
}

// SetString parses text with the field's canonical parse rule, then behaves
// as Set. Malformed text fails with ParseError carrying the field name and
// the offending text.
func (b *Builder) SetString(name, text string) error {
	p, ok := lookupProperty(name)
	if !ok {
		return UnknownPropertyError{Name: name}
	}
	v, err := p.parse(text)
	if err != nil {
		return ParseError{Field: name, Text: text, Err: err}
	}
	return p.set(b, v)
}

// SetAll applies Set for every entry and stops at the first failure.
// Application is not transactional: entries are applied in map iteration
// order (randomized by Go), so a failure leaves an unspecified subset of the
// preceding entries already applied.
func (b *Builder) SetAll(values map[string]any) error {
	for name, v := range values {
		if err := b.Set(name, v); err != nil {
			return err
		}
	}
	return nil
}

// Build produces an immutable CalculationRules from the current slot values.
// The slot invariants make failure unreachable through this API, but any
// ValidationError from construction is surfaced rather than swallowed.
func (b *Builder) Build() (*CalculationRules, error) {
	return NewCalculationRules(b.pricing, b.marketDataSelection, b.reporting, b.marketDataBuild)
}

// String renders the Builder's current slots in the fixed property order.
// Nil slots (possible only on a zero-value Builder) render as <nil>.
func (b *Builder) String() string {
	var sb strings.Builder
	sb.WriteString("Builder{")
	for i, p := range properties {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.Name)
		sb.WriteByte('=')
		sb.WriteString(renderSlot(p.builderGet(b)))
	}
	sb.WriteByte('}')
	return sb.String()
}

// renderSlot renders a slot value for Builder.String, tolerating nil.
func renderSlot(v any) string {
	type stringer interface{ String() string }
	switch s := v.(type) {
	case nil:
		return "<nil>"
	case stringer:
		return s.String()
	default:
		return "<nil>"
	}
}
