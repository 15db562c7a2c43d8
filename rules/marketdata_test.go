package rules

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEmptyMarketDataRules verifies the empty singleton and its rendering.
func TestEmptyMarketDataRules(t *testing.T) {
	t.Parallel()

	e := EmptyMarketDataRules()
	assert.Same(t, e, EmptyMarketDataRules())
	assert.True(t, e.IsEmpty())
	assert.Equal(t, "EMPTY", e.String())

	p, err := NewMarketDataRules()
	require.NoError(t, err)
	assert.Same(t, e, p)
}

// TestMarketDataRules_RoundTrip verifies the canonical text form round-trips
// and order is preserved.
func TestMarketDataRules_RoundTrip(t *testing.T) {
	t.Parallel()

	m, err := NewMarketDataRules(
		SelectionRule{Matcher: "Swap", Mappings: "eur-curves"},
		SelectionRule{Matcher: "Fra", Mappings: "usd-curves"},
	)
	require.NoError(t, err)
	assert.Equal(t, "MarketDataRules[Swap=>eur-curves, Fra=>usd-curves]", m.String())

	parsed, err := ParseMarketDataRules(m.String())
	require.NoError(t, err)
	assert.True(t, m.Equal(parsed))
	assert.Equal(t, m.Hash(), parsed.Hash())

	empty, err := ParseMarketDataRules("EMPTY")
	require.NoError(t, err)
	assert.Same(t, EmptyMarketDataRules(), empty)
}

// TestMarketDataRules_Rules verifies accessors return copies.
func TestMarketDataRules_Rules(t *testing.T) {
	t.Parallel()

	m, err := NewMarketDataRules(SelectionRule{Matcher: "Swap", Mappings: "eur-curves"})
	require.NoError(t, err)

	got := m.Rules()
	got[0].Mappings = "mangled"
	assert.Equal(t, "eur-curves", m.Rules()[0].Mappings)
}

// TestMarketDataRules_Invalid verifies constructor and parse failures.
func TestMarketDataRules_Invalid(t *testing.T) {
	t.Parallel()

	_, err := NewMarketDataRules(SelectionRule{Matcher: "", Mappings: "x"})
	var verr ValueError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "MarketDataRules", verr.Type)

	for _, text := range []string{"", "MarketDataRules[]", "MarketDataRules[Swap]", "MarketDataRules[Swap:eur]"} {
		_, err := ParseMarketDataRules(text)
		var serr SyntaxError
		require.True(t, errors.As(err, &serr), "text %q: expected SyntaxError, got: %v", text, err)
		assert.Equal(t, text, serr.Text)
	}
}

// TestMarketDataRules_Equal verifies order-sensitive structural equality.
func TestMarketDataRules_Equal(t *testing.T) {
	t.Parallel()

	a, err := NewMarketDataRules(SelectionRule{Matcher: "Swap", Mappings: "m1"})
	require.NoError(t, err)
	b, err := NewMarketDataRules(SelectionRule{Matcher: "Swap", Mappings: "m1"})
	require.NoError(t, err)
	c, err := NewMarketDataRules(SelectionRule{Matcher: "Swap", Mappings: "m2"})
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.False(t, a.Equal(c))

	var nilRules *MarketDataRules
	assert.True(t, nilRules.Equal(nil))
	assert.False(t, a.Equal(nil))
}
