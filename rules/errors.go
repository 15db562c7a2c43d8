package rules

import "strconv"

// SyntaxError is returned when a canonical text form cannot be parsed.
//
// Type is the value type being parsed (e.g. "PricingRules"), Text is the
// offending input, Reason describes what went wrong.
type SyntaxError struct {
	Type   string
	Text   string
	Reason string
}

// Error implements the error interface.
func (e SyntaxError) Error() string {
	// Example: rules: cannot parse "bogus" as PricingRules: missing ':' separator
	return "rules: cannot parse " + strconv.Quote(e.Text) + " as " + e.Type + ": " + e.Reason
}

// ValueError is returned by constructors when a component value is invalid
// (empty tokens, characters that would not round-trip through the canonical
// text form, malformed currency codes).
type ValueError struct {
	Type   string
	Reason string
}

// Error implements the error interface.
func (e ValueError) Error() string {
	// Example: rules: invalid PricingRules: binding target is empty
	return "rules: invalid " + e.Type + ": " + e.Reason
}

// quoteToken quotes a token for error messages.
func quoteToken(s string) string { return strconv.Quote(s) }

// isToken reports whether s is non-empty and safe to embed in the canonical
// text form (letters, digits, '.', '_', '-' and '/').
func isToken(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '.' || r == '_' || r == '-' || r == '/':
		default:
			return false
		}
	}
	return true
}
