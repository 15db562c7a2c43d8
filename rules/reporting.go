package rules

import (
	"hash/fnv"
	"strings"
)

const reportingRulesType = "ReportingRules"

// ReportingRules defines how calculation results are reported. The only
// setting is the optional reporting currency; the empty value reports
// results in their natural currency.
type ReportingRules struct {
	currency string // "" means no reporting currency
}

var emptyReportingRules = &ReportingRules{}

// EmptyReportingRules returns the canonical empty value: no reporting currency.
func EmptyReportingRules() *ReportingRules { return emptyReportingRules }

// NewReportingRules builds reporting rules with a fixed reporting currency.
// The currency must be a three-letter uppercase ISO code.
func NewReportingRules(currency string) (*ReportingRules, error) {
	if !isCurrencyCode(currency) {
		return nil, ValueError{Type: reportingRulesType, Reason: "currency " + quoteToken(currency) + " is not a three-letter uppercase code"}
	}
	return &ReportingRules{currency: currency}, nil
}

// ParseReportingRules parses the canonical text form:
// "EMPTY", "ReportingRules[currency=USD]", or a bare currency code "USD".
func ParseReportingRules(text string) (*ReportingRules, error) {
	if text == emptyText {
		return emptyReportingRules, nil
	}
	if isCurrencyCode(text) {
		return &ReportingRules{currency: text}, nil
	}
	entries, err := splitCanonical(reportingRulesType, text)
	if err != nil {
		return nil, err
	}
	if len(entries) != 1 {
		return nil, SyntaxError{Type: reportingRulesType, Text: text, Reason: "expected a single currency entry"}
	}
	code, ok := strings.CutPrefix(entries[0], "currency=")
	if !ok {
		return nil, SyntaxError{Type: reportingRulesType, Text: text, Reason: "entry " + quoteToken(entries[0]) + " is missing the 'currency=' key"}
	}
	if !isCurrencyCode(code) {
		return nil, SyntaxError{Type: reportingRulesType, Text: text, Reason: "currency " + quoteToken(code) + " is not a three-letter uppercase code"}
	}
	return &ReportingRules{currency: code}, nil
}

// IsEmpty reports whether no reporting currency is set.
func (r *ReportingRules) IsEmpty() bool { return r.currency == "" }

// Currency returns the reporting currency and whether one is set.
func (r *ReportingRules) Currency() (string, bool) {
	return r.currency, r.currency != ""
}

// Equal reports structural equality.
func (r *ReportingRules) Equal(o *ReportingRules) bool {
	if r == nil || o == nil {
		return r == o
	}
	return r.currency == o.currency
}

// Hash returns a deterministic hash consistent with Equal.
func (r *ReportingRules) Hash() uint32 {
	h := fnv.New32a()
	h.Write([]byte(r.currency))
	return h.Sum32()
}

// String renders the canonical text form.
func (r *ReportingRules) String() string {
	if r.currency == "" {
		return emptyText
	}
	return joinCanonical(reportingRulesType, []string{"currency=" + r.currency})
}

// isCurrencyCode reports whether s is exactly three uppercase ASCII letters.
func isCurrencyCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for i := 0; i < 3; i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
