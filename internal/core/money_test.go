package core

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in  string
		out string
		ok  bool
	}{
		{"1", "1", true},
		{"40", "40", true},
		{"1.23", "1.23", true},
		{"1,23", "1.23", true},
		{".5", "0.5", true},
		{" 2.50 ", "2.5", true},
		{"0.001", "0.001", true},
		{"0", "", false},
		{"0.00", "", false},
		{"-1", "", false},
		{"+1", "", false},
		{"abc", "", false},
		{"1.2.3", "", false},
		{"NaN", "", false},
		{"Inf", "", false},
		{"1e3", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.ok {
			require.NoError(t, err, "%q", tc.in)
			assert.Equal(t, tc.out, got.String(), "%q", tc.in)
		} else {
			assert.ErrorIs(t, err, ErrInvalidAmount, "%q", tc.in)
		}
	}
}

func TestFormatterFallsBackForUnknownCode(t *testing.T) {
	f := NewFormatter("en")

	assert.Equal(t, "EURO 12.50", f.Format(decimal.RequireFromString("12.5"), "EURO"))
	assert.Equal(t, "ZZ 3.00", f.Format(decimal.NewFromInt(3), "ZZ"))
	// cached miss keeps falling back
	assert.Equal(t, "ZZ 4.00", f.Format(decimal.NewFromInt(4), "ZZ"))
}

func TestFormatterKnownCurrency(t *testing.T) {
	f := NewFormatter("en")

	out := f.Format(decimal.NewFromInt(40), "EUR")
	assert.Contains(t, out, "40")
	assert.NotEqual(t, "EUR 40.00", out)
}

func TestNewFormatterBadLocale(t *testing.T) {
	f := NewFormatter("not a locale!!")
	assert.Contains(t, f.Format(decimal.NewFromInt(7), "USD"), "7")
}
