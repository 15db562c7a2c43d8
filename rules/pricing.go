package rules

import (
	"hash/fnv"
	"slices"
	"strings"
)

const pricingRulesType = "PricingRules"

// Binding associates a calculation target with the pricing function group
// used to price it.
type Binding struct {
	// Target names what is being priced (e.g. a product type).
	Target string
	// Group names the pricing function group to apply.
	Group string
}

// PricingRules defines how calculations are performed: an ordered set of
// bindings from calculation target to pricing function group. Order matters;
// the first matching binding wins when the rules are consumed.
type PricingRules struct {
	bindings []Binding
}

var emptyPricingRules = &PricingRules{}

// EmptyPricingRules returns the canonical empty value: no bindings.
func EmptyPricingRules() *PricingRules { return emptyPricingRules }

// NewPricingRules builds pricing rules from bindings, in order.
//
// Each binding's Target and Group must be a valid token. With no bindings
// the empty singleton is returned.
func NewPricingRules(bindings ...Binding) (*PricingRules, error) {
	if len(bindings) == 0 {
		return emptyPricingRules, nil
	}
	for _, bd := range bindings {
		if !isToken(bd.Target) {
			return nil, ValueError{Type: pricingRulesType, Reason: "binding target " + quoteToken(bd.Target) + " is not a valid token"}
		}
		if !isToken(bd.Group) {
			return nil, ValueError{Type: pricingRulesType, Reason: "binding group " + quoteToken(bd.Group) + " is not a valid token"}
		}
	}
	cp := make([]Binding, len(bindings))
	copy(cp, bindings)
	return &PricingRules{bindings: cp}, nil
}

// ParsePricingRules parses the canonical text form:
// "EMPTY" or "PricingRules[target:group, target:group]".
func ParsePricingRules(text string) (*PricingRules, error) {
	if text == emptyText {
		return emptyPricingRules, nil
	}
	entries, err := splitCanonical(pricingRulesType, text)
	if err != nil {
		return nil, err
	}
	bindings := make([]Binding, 0, len(entries))
	for _, e := range entries {
		target, group, ok := strings.Cut(e, ":")
		if !ok {
			return nil, SyntaxError{Type: pricingRulesType, Text: text, Reason: "entry " + quoteToken(e) + " is missing the ':' separator"}
		}
		if !isToken(target) || !isToken(group) {
			return nil, SyntaxError{Type: pricingRulesType, Text: text, Reason: "entry " + quoteToken(e) + " has an invalid token"}
		}
		bindings = append(bindings, Binding{Target: target, Group: group})
	}
	return &PricingRules{bindings: bindings}, nil
}

// IsEmpty reports whether the rules contain no bindings.
func (p *PricingRules) IsEmpty() bool { return len(p.bindings) == 0 }

// Bindings returns a copy of the bindings in order.
func (p *PricingRules) Bindings() []Binding {
	return slices.Clone(p.bindings)
}

// Equal reports structural equality: same bindings in the same order.
func (p *PricingRules) Equal(o *PricingRules) bool {
	if p == nil || o == nil {
		return p == o
	}
	return slices.Equal(p.bindings, o.bindings)
}

// Hash returns a deterministic hash consistent with Equal.
func (p *PricingRules) Hash() uint32 {
	h := fnv.New32a()
	for _, bd := range p.bindings {
		h.Write([]byte(bd.Target))
		h.Write([]byte{0})
		h.Write([]byte(bd.Group))
		h.Write([]byte{0})
	}
	return h.Sum32()
}

// String renders the canonical text form.
func (p *PricingRules) String() string {
	if len(p.bindings) == 0 {
		return emptyText
	}
	entries := make([]string, len(p.bindings))
	for i, bd := range p.bindings {
		entries[i] = bd.Target + ":" + bd.Group
	}
	return joinCanonical(pricingRulesType, entries)
}
