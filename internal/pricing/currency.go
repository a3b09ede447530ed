// Package pricing turns a planned trip into a per-person and group quote in
// Saudi riyals, Pakistani rupees and US dollars.
package pricing

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Currency is an ISO 4217 code accepted by the calculator.
type Currency string

const (
	SAR Currency = "SAR"
	PKR Currency = "PKR"
	USD Currency = "USD"
)

// Currencies lists the supported currencies in display order.
var Currencies = []Currency{SAR, PKR, USD}

// ParseCurrency validates an ISO code and checks that the calculator can
// convert it. Empty input means SAR.
func ParseCurrency(s string) (Currency, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return SAR, nil
	}
	unit, err := currency.ParseISO(strings.ToUpper(s))
	if err != nil {
		return "", fmt.Errorf("invalid currency %q: %w", s, err)
	}
	c := Currency(unit.String())
	for _, known := range Currencies {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("unsupported currency %s (expected SAR, PKR or USD)", c)
}

// Rates are the two exchange rates the calculator converts through.
type Rates struct {
	SARToPKR float64 `json:"SAR_to_PKR"`
	USDToSAR float64 `json:"USD_to_SAR"`
}

// DefaultRates are used until the user sets their own.
func DefaultRates() Rates {
	return Rates{SARToPKR: 75, USDToSAR: 3.75}
}

// orDefault replaces unset or non-positive rates with the defaults.
func (r Rates) orDefault() Rates {
	d := DefaultRates()
	if r.SARToPKR <= 0 {
		r.SARToPKR = d.SARToPKR
	}
	if r.USDToSAR <= 0 {
		r.USDToSAR = d.USDToSAR
	}
	return r
}

// ToSAR converts amount in c to riyals.
func (r Rates) ToSAR(amount float64, c Currency) float64 {
	r = r.orDefault()
	switch c {
	case USD:
		return amount * r.USDToSAR
	case PKR:
		return amount / r.SARToPKR
	}
	return amount
}

// FromSAR converts riyals to c.
func (r Rates) FromSAR(sar float64, c Currency) float64 {
	r = r.orDefault()
	switch c {
	case USD:
		return sar / r.USDToSAR
	case PKR:
		return sar * r.SARToPKR
	}
	return sar
}

// Money is an amount in a given currency.
type Money struct {
	Amount   float64  `json:"amount"`
	Currency Currency `json:"currency"`
}

var printer = message.NewPrinter(language.English)

// FormatAmount renders an amount with its code and thousands separators,
// e.g. "SAR 12,345.50".
func FormatAmount(amount float64, c Currency) string {
	return printer.Sprintf("%s %.2f", string(c), amount)
}
