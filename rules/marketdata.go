package rules

import (
	"hash/fnv"
	"slices"
	"strings"
)

const marketDataRulesType = "MarketDataRules"

// SelectionRule associates a calculation matcher with the named set of
// market data mappings to use when the matcher applies.
type SelectionRule struct {
	// Matcher names the calculations the rule applies to.
	Matcher string
	// Mappings names the market data mappings selected for those calculations.
	Mappings string
}

// MarketDataRules defines which market data is used by each calculation:
// an ordered set of selection rules. Order matters; the first matching rule
// wins when the rules are consumed.
type MarketDataRules struct {
	rules []SelectionRule
}

var emptyMarketDataRules = &MarketDataRules{}

// EmptyMarketDataRules returns the canonical empty value: no selection rules.
func EmptyMarketDataRules() *MarketDataRules { return emptyMarketDataRules }

// NewMarketDataRules builds market data rules from selection rules, in order.
//
// Each rule's Matcher and Mappings must be a valid token. With no rules the
// empty singleton is returned.
func NewMarketDataRules(rules ...SelectionRule) (*MarketDataRules, error) {
	if len(rules) == 0 {
		return emptyMarketDataRules, nil
	}
	for _, r := range rules {
		if !isToken(r.Matcher) {
			return nil, ValueError{Type: marketDataRulesType, Reason: "rule matcher " + quoteToken(r.Matcher) + " is not a valid token"}
		}
		if !isToken(r.Mappings) {
			return nil, ValueError{Type: marketDataRulesType, Reason: "rule mappings " + quoteToken(r.Mappings) + " is not a valid token"}
		}
	}
	cp := make([]SelectionRule, len(rules))
	copy(cp, rules)
	return &MarketDataRules{rules: cp}, nil
}

// ParseMarketDataRules parses the canonical text form:
// "EMPTY" or "MarketDataRules[matcher=>mappings, matcher=>mappings]".
func ParseMarketDataRules(text string) (*MarketDataRules, error) {
	if text == emptyText {
		return emptyMarketDataRules, nil
	}
	entries, err := splitCanonical(marketDataRulesType, text)
	if err != nil {
		return nil, err
	}
	parsed := make([]SelectionRule, 0, len(entries))
	for _, e := range entries {
		matcher, mappings, ok := strings.Cut(e, "=>")
		if !ok {
			return nil, SyntaxError{Type: marketDataRulesType, Text: text, Reason: "entry " + quoteToken(e) + " is missing the '=>' separator"}
		}
		if !isToken(matcher) || !isToken(mappings) {
			return nil, SyntaxError{Type: marketDataRulesType, Text: text, Reason: "entry " + quoteToken(e) + " has an invalid token"}
		}
		parsed = append(parsed, SelectionRule{Matcher: matcher, Mappings: mappings})
	}
	return &MarketDataRules{rules: parsed}, nil
}

// IsEmpty reports whether there are no selection rules.
func (m *MarketDataRules) IsEmpty() bool { return len(m.rules) == 0 }

// Rules returns a copy of the selection rules in order.
func (m *MarketDataRules) Rules() []SelectionRule {
	return slices.Clone(m.rules)
}

// Equal reports structural equality: same rules in the same order.
func (m *MarketDataRules) Equal(o *MarketDataRules) bool {
	if m == nil || o == nil {
		return m == o
	}
	return slices.Equal(m.rules, o.rules)
}

// Hash returns a deterministic hash consistent with Equal.
func (m *MarketDataRules) Hash() uint32 {
	h := fnv.New32a()
	for _, r := range m.rules {
		h.Write([]byte(r.Matcher))
		h.Write([]byte{0})
		h.Write([]byte(r.Mappings))
		h.Write([]byte{0})
	}
	return h.Sum32()
}

// String renders the canonical text form.
func (m *MarketDataRules) String() string {
	if len(m.rules) == 0 {
		return emptyText
	}
	entries := make([]string, len(m.rules))
	for i, r := range m.rules {
		entries[i] = r.Matcher + "=>" + r.Mappings
	}
	return joinCanonical(marketDataRulesType, entries)
}
