package rules

import "strings"

// emptyText is the canonical rendering of every type's empty value.
const emptyText = "EMPTY"

// splitCanonical strips the "Type[" prefix and "]" suffix from a canonical
// text form and splits the body into its ", "-separated entries. Entries are
// built from tokens (see isToken), so the separator can never appear inside
// an entry.
func splitCanonical(typeName, text string) ([]string, error) {
	body, ok := strings.CutPrefix(text, typeName+"[")
	if !ok {
		return nil, SyntaxError{Type: typeName, Text: text, Reason: "expected " + emptyText + " or " + typeName + "[...]"}
	}
	body, ok = strings.CutSuffix(body, "]")
	if !ok {
		return nil, SyntaxError{Type: typeName, Text: text, Reason: "missing closing ']'"}
	}
	if body == "" {
		// The empty value renders as EMPTY, never as Type[].
		return nil, SyntaxError{Type: typeName, Text: text, Reason: "entry list is empty"}
	}
	return strings.Split(body, ", "), nil
}

// joinCanonical renders entries as "Type[a, b, c]".
func joinCanonical(typeName string, entries []string) string {
	var b strings.Builder
	b.WriteString(typeName)
	b.WriteByte('[')
	for i, e := range entries {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e)
	}
	b.WriteByte(']')
	return b.String()
}
