package parse

import (
	"regexp"
	"strconv"
	"strings"
)

// MaxPriceAmount is the sanity ceiling for listing prices. Larger amounts are
// treated as unparseable.
const MaxPriceAmount = 10000

var (
	priceRe         = regexp.MustCompile(`^(~b/o|~price)\s+(\d+(?:\.\d+)?)\s+([a-z]+)`)
	fullNamePriceRe = regexp.MustCompile(`^(~b/o|~price)\s+(\d+(?:\.\d+)?)\s+(.+?)$`)
)

// Price is a listing price: an amount of one currency.
type Price struct {
	Amount   float64
	Currency Currency
}

// ParsePrice extracts a price from an item note or a stash tab name.
//
// The note must start with "~b/o" or "~price", followed by a decimal amount and a
// currency short name ("chaos") or its in-game name ("Chaos Orb"). A nil or empty
// note, an unknown currency, or an amount over MaxPriceAmount yields ok=false; a
// missing price is never reported as zero.
func ParsePrice(note *string) (Price, bool) {
	if note == nil {
		return Price{}, false
	}
	text := strings.TrimSpace(*note)

	amountText, currency := "", CurrencyUnknown
	if m := priceRe.FindStringSubmatch(text); m != nil {
		amountText, currency = m[2], CurrencyFromShortName(m[3])
	}
	if currency == CurrencyUnknown {
		m := fullNamePriceRe.FindStringSubmatch(text)
		if m == nil {
			return Price{}, false
		}
		short, ok := ShortNameFromFullName(m[3])
		if !ok {
			return Price{}, false
		}
		amountText, currency = m[2], CurrencyFromShortName(short)
	}

	amount, err := strconv.ParseFloat(amountText, 64)
	if err != nil || amount > MaxPriceAmount {
		return Price{}, false
	}

	return Price{Amount: amount, Currency: currency}, true
}

// PriceOr returns the note's price when it has one, else the fallback.
func PriceOr(note *string, fallback Price, hasFallback bool) (Price, bool) {
	if p, ok := ParsePrice(note); ok {
		return p, true
	}
	return fallback, hasFallback
}
