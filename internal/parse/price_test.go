package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestParsePrice(t *testing.T) {
	testCases := []struct {
		name     string
		note     *string
		expected Price
		expectOK bool
	}{
		{
			name:     "Price note",
			note:     strPtr("~price 25 chaos"),
			expected: Price{Amount: 25, Currency: CurrencyChaos},
			expectOK: true,
		},
		{
			name:     "Buyout note",
			note:     strPtr("~b/o 3 exa"),
			expected: Price{Amount: 3, Currency: CurrencyExalted},
			expectOK: true,
		},
		{
			name:     "Decimal amount",
			note:     strPtr("~price 1.5 chaos"),
			expected: Price{Amount: 1.5, Currency: CurrencyChaos},
			expectOK: true,
		},
		{
			name:     "Exactly at ceiling",
			note:     strPtr("~price 10000 alt"),
			expected: Price{Amount: 10000, Currency: CurrencyAlteration},
			expectOK: true,
		},
		{
			name:     "Over ceiling",
			note:     strPtr("~price 15000 exalted"),
			expectOK: false,
		},
		{
			name:     "Full currency name",
			note:     strPtr("~b/o 2 Exalted Orb"),
			expected: Price{Amount: 2, Currency: CurrencyExalted},
			expectOK: true,
		},
		{
			name:     "Unknown full currency name",
			note:     strPtr("~price 1 Mirror of Kalandra"),
			expectOK: false,
		},
		{
			name:     "Unknown currency",
			note:     strPtr("~price 5 mirror"),
			expectOK: false,
		},
		{
			name:     "Nil note",
			note:     nil,
			expectOK: false,
		},
		{
			name:     "Empty note",
			note:     strPtr(""),
			expectOK: false,
		},
		{
			name:     "Plain tab name",
			note:     strPtr("dump tab"),
			expectOK: false,
		},
		{
			name:     "Prefix not at start",
			note:     strPtr("selling ~price 2 chaos"),
			expectOK: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, ok := ParsePrice(tc.note)
			assert.Equal(t, tc.expectOK, ok)
			if tc.expectOK {
				assert.Equal(t, tc.expected, p)
			} else {
				assert.Equal(t, Price{}, p)
			}
		})
	}
}

func TestPriceOr(t *testing.T) {
	fallback := Price{Amount: 1, Currency: CurrencyChaos}

	p, ok := PriceOr(strPtr("~price 4 alch"), fallback, true)
	assert.True(t, ok)
	assert.Equal(t, Price{Amount: 4, Currency: CurrencyAlchemy}, p)

	p, ok = PriceOr(nil, fallback, true)
	assert.True(t, ok)
	assert.Equal(t, fallback, p)

	_, ok = PriceOr(nil, Price{}, false)
	assert.False(t, ok)
}

func TestCurrencyNames(t *testing.T) {
	assert.Equal(t, CurrencyChaos, CurrencyFromShortName("chaos"))
	assert.Equal(t, CurrencyUnknown, CurrencyFromShortName("mirror"))
	assert.Equal(t, "divine", CurrencyDivine.ShortName())
	assert.Equal(t, "unknown", CurrencyUnknown.String())

	short, ok := ShortNameFromFullName("Gemcutter's Prism")
	assert.True(t, ok)
	assert.Equal(t, CurrencyGemcutter, CurrencyFromShortName(short))
}

func TestLeagueFromName(t *testing.T) {
	assert.Equal(t, LeagueBreachHardcore, LeagueFromName("Hardcore Breach"))
	assert.Equal(t, LeagueUnknown, LeagueFromName("Nowhere"))
	assert.Equal(t, "Standard", LeagueStandard.Name())
	assert.Equal(t, "", LeagueUnknown.Name())
}
