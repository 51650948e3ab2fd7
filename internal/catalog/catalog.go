// Package catalog provides the category and payment-method suggestions
// offered when recording an expense. Suggestions never constrain what a
// record may contain.
package catalog

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

const (
	categoriesFile = "seed_categories.txt"
	paymentsFile   = "seed_payments.txt"
)

var defaults = map[string]struct{ categories, payments []string }{
	"en": {
		categories: []string{"Food", "Transport", "Lodging", "Tickets", "Shopping", "Other"},
		payments:   []string{"Cash", "Card", "Mobile pay"},
	},
	"zh-TW": {
		categories: []string{"餐飲", "交通", "住宿", "門票", "購物", "其他"},
		payments:   []string{"現金", "信用卡", "行動支付"},
	},
}

// Catalog is an ordered, de-duplicated list of suggestions.
type Catalog struct {
	cats     []string
	payments []string
}

func New(cats, payments []string) *Catalog {
	return &Catalog{cats: dedupe(cats), payments: dedupe(payments)}
}

// Defaults returns the built-in suggestions for locale, English when the
// locale is unknown.
func Defaults(locale string) *Catalog {
	d, ok := defaults[locale]
	if !ok {
		d = defaults["en"]
	}
	return New(d.categories, d.payments)
}

// NewFromFiles reads seed files from base. A missing or empty file keeps
// the locale defaults for that list.
func NewFromFiles(base, locale string) *Catalog {
	c := Defaults(locale)
	if cats := readLines(filepath.Join(base, categoriesFile)); len(cats) > 0 {
		c.cats = cats
	}
	if pays := readLines(filepath.Join(base, paymentsFile)); len(pays) > 0 {
		c.payments = pays
	}
	return c
}

func (c *Catalog) Categories() []string {
	return append([]string(nil), c.cats...)
}

func (c *Catalog) Payments() []string {
	return append([]string(nil), c.payments...)
}

// DefaultPayment is the payment method preselected for a new expense.
func (c *Catalog) DefaultPayment() string {
	if len(c.payments) == 0 {
		return ""
	}
	return c.payments[0]
}

func readLines(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return dedupe(out)
}

// dedupe drops blanks and repeats, preserving input order.
func dedupe(in []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
