package rules

import (
	"hash/fnv"
	"maps"
	"slices"
	"strings"
)

const marketDataConfigType = "MarketDataConfig"

// MarketDataConfig holds the settings needed to build non-observable market
// data (curves, surfaces) as a set of keyed values. Keys are unique; the
// canonical text form and the hash order keys lexically so both are
// deterministic regardless of construction order.
type MarketDataConfig struct {
	values map[string]string
}

var emptyMarketDataConfig = &MarketDataConfig{}

// EmptyMarketDataConfig returns the canonical empty value: no settings.
func EmptyMarketDataConfig() *MarketDataConfig { return emptyMarketDataConfig }

// NewMarketDataConfig builds a config from keyed settings. Keys and values
// must be valid tokens. With no settings the empty singleton is returned.
func NewMarketDataConfig(values map[string]string) (*MarketDataConfig, error) {
	if len(values) == 0 {
		return emptyMarketDataConfig, nil
	}
	for k, v := range values {
		if !isToken(k) {
			return nil, ValueError{Type: marketDataConfigType, Reason: "key " + quoteToken(k) + " is not a valid token"}
		}
		if !isToken(v) {
			return nil, ValueError{Type: marketDataConfigType, Reason: "value " + quoteToken(v) + " for key " + quoteToken(k) + " is not a valid token"}
		}
	}
	return &MarketDataConfig{values: maps.Clone(values)}, nil
}

// ParseMarketDataConfig parses the canonical text form:
// "EMPTY" or "MarketDataConfig[key=value, key=value]".
func ParseMarketDataConfig(text string) (*MarketDataConfig, error) {
	if text == emptyText {
		return emptyMarketDataConfig, nil
	}
	entries, err := splitCanonical(marketDataConfigType, text)
	if err != nil {
		return nil, err
	}
	values := make(map[string]string, len(entries))
	for _, e := range entries {
		k, v, ok := strings.Cut(e, "=")
		if !ok {
			return nil, SyntaxError{Type: marketDataConfigType, Text: text, Reason: "entry " + quoteToken(e) + " is missing the '=' separator"}
		}
		if !isToken(k) || !isToken(v) {
			return nil, SyntaxError{Type: marketDataConfigType, Text: text, Reason: "entry " + quoteToken(e) + " has an invalid token"}
		}
		if _, dup := values[k]; dup {
			return nil, SyntaxError{Type: marketDataConfigType, Text: text, Reason: "duplicate key " + quoteToken(k)}
		}
		values[k] = v
	}
	return &MarketDataConfig{values: values}, nil
}

// IsEmpty reports whether the config has no settings.
func (c *MarketDataConfig) IsEmpty() bool { return len(c.values) == 0 }

// Len returns the number of settings.
func (c *MarketDataConfig) Len() int { return len(c.values) }

// Value returns the setting for a key and whether it is present.
func (c *MarketDataConfig) Value(key string) (string, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Keys returns the setting keys in lexical order.
func (c *MarketDataConfig) Keys() []string {
	keys := make([]string, 0, len(c.values))
	for k := range c.values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Values returns a copy of all settings.
func (c *MarketDataConfig) Values() map[string]string {
	if len(c.values) == 0 {
		return map[string]string{}
	}
	return maps.Clone(c.values)
}

// Equal reports structural equality: same keys with the same values.
func (c *MarketDataConfig) Equal(o *MarketDataConfig) bool {
	if c == nil || o == nil {
		return c == o
	}
	return maps.Equal(c.values, o.values)
}

// Hash returns a deterministic hash consistent with Equal.
func (c *MarketDataConfig) Hash() uint32 {
	h := fnv.New32a()
	for _, k := range c.Keys() {
		h.Write([]byte(k))
		h.Write([]byte{0})
		h.Write([]byte(c.values[k]))
		h.Write([]byte{0})
	}
	return h.Sum32()
}

// String renders the canonical text form, keys in lexical order.
func (c *MarketDataConfig) String() string {
	if len(c.values) == 0 {
		return emptyText
	}
	keys := c.Keys()
	entries := make([]string, len(keys))
	for i, k := range keys {
		entries[i] = k + "=" + c.values[k]
	}
	return joinCanonical(marketDataConfigType, entries)
}
