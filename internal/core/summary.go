package core

import (
	"sort"

	"github.com/shopspring/decimal"
)

// MaxTileCategories bounds the category list shown on a currency tile.
const MaxTileCategories = 3

// CategoryAmount represents an amount aggregated by category name.
type CategoryAmount struct {
	Name   string
	Amount decimal.Decimal
}

// AggregateView is derived from a Document and never persisted.
type AggregateView struct {
	TotalsByCurrency map[string]decimal.Decimal
	TotalsByCategory map[string]map[string]decimal.Decimal
	Currencies       []string // first-seen order
	DateCount        int
	EntryCount       int

	categoryOrder map[string][]string
}

// CurrencyTile is the per-currency summary shown in the overview.
type CurrencyTile struct {
	Currency      string
	Total         decimal.Decimal
	HasBudget     bool
	Remaining     decimal.Decimal // zero unless HasBudget; never negative
	TopCategories []CategoryAmount
}

// ComputeAggregate recomputes every statistic from scratch.
func ComputeAggregate(doc Document) AggregateView {
	view := AggregateView{
		TotalsByCurrency: make(map[string]decimal.Decimal),
		TotalsByCategory: make(map[string]map[string]decimal.Decimal),
		Currencies:       []string{},
		EntryCount:       len(doc.Expenses),
		categoryOrder:    make(map[string][]string),
	}
	dates := make(map[string]struct{})

	for _, e := range doc.Expenses {
		dates[e.Date] = struct{}{}

		total, seen := view.TotalsByCurrency[e.Currency]
		if !seen {
			view.Currencies = append(view.Currencies, e.Currency)
			view.TotalsByCategory[e.Currency] = make(map[string]decimal.Decimal)
		}
		view.TotalsByCurrency[e.Currency] = total.Add(e.Amount)

		cats := view.TotalsByCategory[e.Currency]
		catTotal, catSeen := cats[e.Category]
		if !catSeen {
			view.categoryOrder[e.Currency] = append(view.categoryOrder[e.Currency], e.Category)
		}
		cats[e.Category] = catTotal.Add(e.Amount)
	}

	view.DateCount = len(dates)
	return view
}

// Categories returns the categories of a currency sorted by total
// descending; equal totals keep first-seen order.
func (v AggregateView) Categories(code string) []CategoryAmount {
	cats := v.TotalsByCategory[code]
	order := v.categoryOrder[code]
	if len(order) != len(cats) {
		// view built by hand; fall back to name order for determinism
		order = order[:0:0]
		for name := range cats {
			order = append(order, name)
		}
		sort.Strings(order)
	}

	out := make([]CategoryAmount, 0, len(order))
	for _, name := range order {
		out = append(out, CategoryAmount{Name: name, Amount: cats[name]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Amount.GreaterThan(out[j].Amount)
	})
	return out
}

// Tiles groups the view by currency. Remaining budget is only reported for
// the profile currency when a budget is set, and is clamped at zero.
func Tiles(profile TripProfile, view AggregateView) []CurrencyTile {
	budget, hasBudget := profile.BudgetAmount()

	tiles := make([]CurrencyTile, 0, len(view.Currencies))
	for _, code := range view.Currencies {
		total := view.TotalsByCurrency[code]
		tile := CurrencyTile{Currency: code, Total: total}

		if hasBudget && code == profile.Currency {
			tile.HasBudget = true
			tile.Remaining = decimal.Max(decimal.Zero, budget.Sub(total))
		}

		cats := view.Categories(code)
		if len(cats) > MaxTileCategories {
			cats = cats[:MaxTileCategories]
		}
		tile.TopCategories = cats
		tiles = append(tiles, tile)
	}
	return tiles
}

// SortByDateDesc returns a copy ordered by ISO date descending. The sort is
// stable, so records sharing a date keep their insertion order.
func SortByDateDesc(records []ExpenseRecord) []ExpenseRecord {
	out := make([]ExpenseRecord, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}
