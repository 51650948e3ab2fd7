// Package core provides money parsing and handling utilities.
//
// This file contains the amount parser used by every entry point and the
// locale-aware currency formatter used for display.
package core

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"tripspend/internal/cache"
)

// ParseAmount converts a decimal string to a strictly positive amount.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators. Only
// plain digits are allowed, so NaN, Inf and exponent forms are rejected and
// the result is always finite. Zero, signed values and malformed input
// return ErrInvalidAmount.
//
// Examples:
//
//	ParseAmount("12.34") -> 12.34, nil
//	ParseAmount("12,34") -> 12.34, nil
//	ParseAmount("0")     -> 0, ErrInvalidAmount
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return decimal.Zero, ErrInvalidAmount
	}
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return decimal.Zero, ErrInvalidAmount
	}
	if parts[0] == "" {
		parts[0] = "0"
	}
	for _, p := range parts {
		for _, r := range p {
			if !unicode.IsDigit(r) || r > unicode.MaxASCII {
				return decimal.Zero, ErrInvalidAmount
			}
		}
	}
	v, err := decimal.NewFromString(strings.Join(parts, "."))
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if !v.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}
	return v, nil
}

type unitLookup struct {
	unit currency.Unit
	ok   bool
}

// Formatter renders amounts with locale-aware currency formatting.
type Formatter struct {
	printer *message.Printer
	units   cache.Cache[unitLookup]
}

// NewFormatter returns a formatter for the given BCP 47 locale; an
// unparseable locale falls back to English.
func NewFormatter(locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Formatter{
		printer: message.NewPrinter(tag),
		units:   cache.NewLRUCache[unitLookup](64, 24*time.Hour),
	}
}

// Format renders amount in the given ISO 4217 currency. Codes the
// formatting facility does not recognize fall back to "<CODE> <amount>"
// with two decimals.
func (f *Formatter) Format(amount decimal.Decimal, code string) string {
	u, ok := f.lookup(code)
	if !ok {
		return fmt.Sprintf("%s %s", code, amount.StringFixed(2))
	}
	return f.printer.Sprintf("%v", currency.Symbol(u.Amount(amount.InexactFloat64())))
}

func (f *Formatter) lookup(code string) (currency.Unit, bool) {
	key := strings.ToUpper(strings.TrimSpace(code))
	if hit, ok := f.units.Get(key); ok {
		return hit.unit, hit.ok
	}
	u, err := currency.ParseISO(key)
	res := unitLookup{unit: u, ok: err == nil && len(key) == 3}
	f.units.Set(key, res)
	return res.unit, res.ok
}
